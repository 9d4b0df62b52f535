package discord_bot

import (
	"github.com/bwmarrin/discordgo"
)

const reactionPageSize = 100

// API is the part of the Discord REST surface the bot talks to.
//
//go:generate mockery --name=API --output=../../../mocks/discord --filename=api.go
type API interface {
	Defer(i *discordgo.Interaction) error
	EditReply(i *discordgo.Interaction, edit *discordgo.WebhookEdit) (*discordgo.Message, error)
	DeleteReply(i *discordgo.Interaction) error
	FollowUp(i *discordgo.Interaction, params *discordgo.WebhookParams) error
	React(channelID string, messageID string, emoji string) error
	Reactors(channelID string, messageID string, emoji string, afterID string) ([]*discordgo.User, error)
	Send(channelID string, content string) error
	MemberName(guildID string, userID string) (string, error)
}

type sessionAPI struct {
	s *discordgo.Session
}

func NewAPI(s *discordgo.Session) API {
	return &sessionAPI{s: s}
}

func (a *sessionAPI) Defer(i *discordgo.Interaction) error {
	return a.s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

func (a *sessionAPI) EditReply(i *discordgo.Interaction, edit *discordgo.WebhookEdit) (*discordgo.Message, error) {
	return a.s.InteractionResponseEdit(i, edit)
}

func (a *sessionAPI) DeleteReply(i *discordgo.Interaction) error {
	return a.s.InteractionResponseDelete(i)
}

func (a *sessionAPI) FollowUp(i *discordgo.Interaction, params *discordgo.WebhookParams) error {
	_, err := a.s.FollowupMessageCreate(i, true, params)
	return err
}

func (a *sessionAPI) React(channelID, messageID, emoji string) error {
	return a.s.MessageReactionAdd(channelID, messageID, emoji)
}

func (a *sessionAPI) Reactors(channelID, messageID, emoji, afterID string) ([]*discordgo.User, error) {
	return a.s.MessageReactions(channelID, messageID, emoji, reactionPageSize, "", afterID)
}

func (a *sessionAPI) Send(channelID, content string) error {
	_, err := a.s.ChannelMessageSend(channelID, content)
	return err
}

func (a *sessionAPI) MemberName(guildID, userID string) (string, error) {
	m, err := a.s.GuildMember(guildID, userID)
	if err != nil {
		return "", err
	}
	return m.DisplayName(), nil
}
