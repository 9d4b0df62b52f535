package discord_bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/dxmate/dxmate-bot/internal/model"
)

// channelBallot reads reactions of a posted report and announces into its channel.
type channelBallot struct {
	api       API
	channelID string
}

func (b *channelBallot) Reactors(ctx context.Context, id model.ReportID, key model.SlotKey) ([]string, error) {
	var (
		ids   []string
		after string
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := b.api.Reactors(b.channelID, string(id), string(key), after)
		if err != nil {
			return nil, err
		}
		for _, u := range page {
			if !u.Bot {
				ids = append(ids, u.ID)
			}
		}
		if len(page) < reactionPageSize {
			return ids, nil
		}
		after = page[len(page)-1].ID
	}
}

func (b *channelBallot) Announce(_ context.Context, content string) error {
	return b.api.Send(b.channelID, content)
}

// interactionSurface is the deferred reply of one /matchmake invocation.
type interactionSurface struct {
	channelBallot
	interaction *discordgo.Interaction
}

func newInteractionSurface(api API, i *discordgo.Interaction) *interactionSurface {
	return &interactionSurface{
		channelBallot: channelBallot{api: api, channelID: i.ChannelID},
		interaction:   i,
	}
}

func (s *interactionSurface) ChannelID() string {
	return s.channelID
}

func (s *interactionSurface) Progress(_ context.Context, p model.Progress) error {
	_, err := s.api.EditReply(s.interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{progressEmbed(p)},
	})
	return err
}

// Notify replaces the reply with a plain text message.
func (s *interactionSurface) Notify(_ context.Context, content string) error {
	_, err := s.api.EditReply(s.interaction, &discordgo.WebhookEdit{
		Content: &content,
		Embeds:  &[]*discordgo.MessageEmbed{},
	})
	return err
}

func (s *interactionSurface) Withdraw(_ context.Context) error {
	return s.api.DeleteReply(s.interaction)
}

// Summary turns the reply into the completion card; its message ID identifies the report.
func (s *interactionSurface) Summary(_ context.Context, summary model.MatchSummary) (model.ReportID, error) {
	msg, err := s.api.EditReply(s.interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{summaryEmbed(summary)},
	})
	if err != nil {
		return "", err
	}
	return model.ReportID(msg.ID), nil
}

func (s *interactionSurface) OpenBallot(_ context.Context, id model.ReportID, keys []model.SlotKey) error {
	for _, k := range keys {
		if err := s.api.React(s.channelID, string(id), string(k)); err != nil {
			return err
		}
	}
	return nil
}
