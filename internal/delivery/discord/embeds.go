package discord_bot

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/dxmate/dxmate-bot/internal/model"
)

const embedColor = 0x0099FF

func field(name, value string, inline bool) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: inline}
}

func progressEmbed(p model.Progress) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			field("Match Mode", p.Mode.Name(), true),
			field("Players", fmt.Sprintf("%d/%d", len(p.Players), p.Capacity), true),
			field("Status", "Searching opponent...", true),
		},
	}
}

func summaryEmbed(s model.MatchSummary) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{
		Color: embedColor,
		Title: s.Mode.Name(),
	}

	for i, p := range s.Players {
		e.Fields = append(e.Fields, field("Player "+string(model.NumberSlot(i+1)), p.DiscordUser.Mention(), true))
		if s.Mode.IsSingles() {
			e.Fields = append(e.Fields, field("Slippi Connect Code", p.Player.SlippiConnectCode, true))
		} else {
			e.Fields = append(e.Fields, field("Team", p.Team.Label(), true))
		}
		e.Fields = append(e.Fields, field("Rank", p.Rank.String(), true))
	}

	e.Fields = append(e.Fields,
		field("Set Length", s.SetLength, true),
		field("Starter Stage", s.StarterStage, true),
	)
	if s.DoublesConnectCode != "" {
		e.Fields = append(e.Fields, field("Doubles Connect Code", s.DoublesConnectCode, true))
	}
	return e
}

func profileEmbed(p model.Profile) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color: embedColor,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    p.User.Name,
			IconURL: p.User.AvatarURL,
		},
		Fields: []*discordgo.MessageEmbedField{
			field("Slippi Connect Code", p.Player.SlippiConnectCode, true),
			field("Current Region", p.Player.Region.Name(), true),
			field("Singles Rank", p.SinglesRank.Name, true),
			field("Singles Rank Points", strconv.Itoa(p.SinglesRank.Points)+" RP", true),
			field("Ranked Singles Count", strconv.Itoa(p.Player.RankedModeMatchCount.Singles), true),
			field("Doubles Rank", p.DoublesRank.Name, true),
			field("Doubles Rank Points", strconv.Itoa(p.DoublesRank.Points)+" RP", true),
			field("Ranked Doubles Count", strconv.Itoa(p.Player.RankedModeMatchCount.Doubles), true),
		},
	}
}

type leaderboardRow struct {
	Name      string
	RankPoint int
}

func leaderboardEmbed(format model.Format, rows []leaderboardRow) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{
		Color: embedColor,
		Title: format.Title() + " Top 16",
	}
	for i, r := range rows {
		e.Fields = append(e.Fields, field(fmt.Sprintf("#%d %s", i+1, r.Name), fmt.Sprintf("%d RP", r.RankPoint), false))
	}
	return e
}
