package discord_bot

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/dxmate/dxmate-bot/internal/model"
	usecase_matchmake "github.com/dxmate/dxmate-bot/internal/usecase/matchmake"
	usecase_player "github.com/dxmate/dxmate-bot/internal/usecase/player"
	usecase_room "github.com/dxmate/dxmate-bot/internal/usecase/room"
)

const (
	msgRegistered        = "✅ Successfully registered."
	msgAlreadyRegistered = "Player with this Discord ID is already registered."
	msgNotRegistered     = `You are not registered yet. You can register using "/register".`
	msgInvalidCode       = "Invalid Slippi Connect Code. Enter it like ABC#123."
)

func (b *Bot) reply(i *discordgo.Interaction, content string) error {
	_, err := b.api.EditReply(i, &discordgo.WebhookEdit{Content: &content})
	return err
}

func (b *Bot) replyEmbed(i *discordgo.Interaction, e *discordgo.MessageEmbed) error {
	_, err := b.api.EditReply(i, &discordgo.WebhookEdit{Embeds: &[]*discordgo.MessageEmbed{e}})
	return err
}

// matchmake blocks for the whole session. Refusals and expired sessions were
// already answered in the reply.
func (b *Bot) matchmake(ctx context.Context, i *discordgo.Interaction) error {
	mode, err := model.ParseMatchMode(stringOption(i, optionMode))
	if err != nil {
		return err
	}

	err = b.matchmaker.Matchmake(ctx, actorOf(i), mode, newInteractionSurface(b.api, i))
	switch {
	case err == nil,
		errors.Is(err, usecase_matchmake.ErrAlreadyInMatch),
		errors.Is(err, usecase_matchmake.ErrNotRegistered),
		errors.Is(err, usecase_matchmake.ErrNotEligible),
		errors.Is(err, usecase_room.ErrSessionTimedOut),
		errors.Is(err, usecase_room.ErrSessionAborted):
		return nil
	case errors.Is(err, context.Canceled):
		b.logger.Info("matchmaking interrupted by shutdown", "interaction_id", i.ID)
		return nil
	}
	return err
}

func (b *Bot) register(ctx context.Context, i *discordgo.Interaction) error {
	_, err := b.players.Register(ctx, actorOf(i).ID, stringOption(i, optionConnectCode), stringOption(i, optionRegion))
	switch {
	case err == nil:
		return b.reply(i, msgRegistered)
	case errors.Is(err, usecase_player.ErrAlreadyRegistered):
		return b.reply(i, msgAlreadyRegistered)
	case errors.Is(err, usecase_player.ErrInvalidInput):
		return b.reply(i, msgInvalidCode)
	}
	return err
}

func (b *Bot) profile(ctx context.Context, i *discordgo.Interaction) error {
	p, err := b.players.Profile(ctx, actorOf(i))
	if errors.Is(err, usecase_player.ErrNotRegistered) {
		return b.reply(i, msgNotRegistered)
	}
	if err != nil {
		return err
	}
	return b.replyEmbed(i, profileEmbed(p))
}

func (b *Bot) leaderboard(ctx context.Context, i *discordgo.Interaction) error {
	format, err := model.ParseFormat(stringOption(i, optionMode))
	if err != nil {
		return err
	}

	entries, err := b.players.Leaderboard(ctx, format)
	if err != nil {
		return err
	}

	rows := make([]leaderboardRow, 0, len(entries))
	for _, e := range entries {
		name, err := b.api.MemberName(i.GuildID, e.DiscordID)
		if err != nil || name == "" {
			name = e.DiscordID
		}
		rows = append(rows, leaderboardRow{Name: name, RankPoint: e.RankPoint})
	}
	return b.replyEmbed(i, leaderboardEmbed(format, rows))
}
