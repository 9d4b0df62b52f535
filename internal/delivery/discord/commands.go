package discord_bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/dxmate/dxmate-bot/internal/model"
)

const (
	CommandMatchmake   = "matchmake"
	CommandLeaderboard = "leaderboard"
	CommandProfile     = "profile"
	CommandRegister    = "register"

	optionMode        = "mode"
	optionConnectCode = "slippi_connect_code"
	optionRegion      = "region"
)

// Commands is the slash command table deployed to the guild.
func Commands() []*discordgo.ApplicationCommand {
	modes := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(model.MatchModes))
	for _, m := range model.MatchModes {
		modes = append(modes, &discordgo.ApplicationCommandOptionChoice{Name: m.Name(), Value: string(m)})
	}

	formats := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(model.Formats))
	for _, f := range model.Formats {
		formats = append(formats, &discordgo.ApplicationCommandOptionChoice{Name: f.Title(), Value: string(f)})
	}

	regions := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(model.Regions))
	for _, r := range model.Regions {
		regions = append(regions, &discordgo.ApplicationCommandOptionChoice{Name: r.Name(), Value: string(r)})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandMatchmake,
			Description: "Start matchmaking.",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionMode,
				Description: "Select a match mode.",
				Required:    true,
				Choices:     modes,
			}},
		},
		{
			Name:        CommandLeaderboard,
			Description: "Displays the top 16 leaderboard.",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionMode,
				Description: "Select match mode you want to display.",
				Required:    true,
				Choices:     formats,
			}},
		},
		{
			Name:        CommandProfile,
			Description: "Displays your DXmate player profile.",
		},
		{
			Name:        CommandRegister,
			Description: "Register a new DXmate player.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionConnectCode,
					Description: "Enter your Slippi Connect Code (e.g. ABC#123).",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionRegion,
					Description: "Select your region.",
					Required:    true,
					Choices:     regions,
				},
			},
		},
	}
}
