package main

import (
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/dxmate/dxmate-bot/internal/config"
	discord_bot "github.com/dxmate/dxmate-bot/internal/delivery/discord"
)

// Replaces every guild slash command with the bot's command table.
func main() {
	cfg := config.Load()
	if cfg.Discord.AppID == "" || cfg.Discord.GuildID == "" {
		log.Fatal("DISCORD_BOT_CLIENT_ID and DXMATE_DISCORD_SERVER_GUILD_ID are required")
	}

	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("failed to create discord session: %v", err)
	}

	commands := discord_bot.Commands()
	log.Printf("started refreshing %d application (/) commands", len(commands))

	created, err := session.ApplicationCommandBulkOverwrite(cfg.Discord.AppID, cfg.Discord.GuildID, commands)
	if err != nil {
		log.Fatalf("failed to deploy commands: %v", err)
	}
	log.Printf("successfully reloaded %d application (/) commands", len(created))
}
