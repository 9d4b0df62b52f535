package discord_bot

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/dxmate/dxmate-bot/internal/model"
	usecase_matchmake "github.com/dxmate/dxmate-bot/internal/usecase/matchmake"
)

const genericErrorMessage = "There was an error while executing this command!"

//go:generate mockery --name=Matchmaker --output=../../../mocks/discord --filename=matchmaker.go
type Matchmaker interface {
	Matchmake(ctx context.Context, actor model.DiscordUser, mode model.MatchMode, surface usecase_matchmake.Surface) error
}

//go:generate mockery --name=PlayerService --output=../../../mocks/discord --filename=player_service.go
type PlayerService interface {
	Register(ctx context.Context, discordID, connectCode, region string) (model.Registration, error)
	Profile(ctx context.Context, user model.DiscordUser) (model.Profile, error)
	Leaderboard(ctx context.Context, format model.Format) ([]model.LeaderboardEntry, error)
}

type handlerFunc func(ctx context.Context, i *discordgo.Interaction) error

type Bot struct {
	api        API
	matchmaker Matchmaker
	players    PlayerService
	handlers   map[string]handlerFunc
	inflight   sync.WaitGroup
	logger     *slog.Logger
}

type Option func(*Bot)

func WithLogger(l *slog.Logger) Option {
	return func(b *Bot) {
		b.logger = l
	}
}

func New(api API, matchmaker Matchmaker, players PlayerService, opts ...Option) *Bot {
	b := &Bot{
		api:        api,
		matchmaker: matchmaker,
		players:    players,
		logger:     slog.Default(),
	}
	b.handlers = map[string]handlerFunc{
		CommandMatchmake:   b.matchmake,
		CommandLeaderboard: b.leaderboard,
		CommandProfile:     b.profile,
		CommandRegister:    b.register,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// InteractionHandler returns the discordgo event handler. Every command runs
// in its own goroutine under ctx; Wait blocks until they have all returned.
func (b *Bot) InteractionHandler(ctx context.Context) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(_ *discordgo.Session, e *discordgo.InteractionCreate) {
		if e.Type != discordgo.InteractionApplicationCommand {
			return
		}
		b.inflight.Add(1)
		go func() {
			defer b.inflight.Done()
			b.Dispatch(ctx, e.Interaction)
		}()
	}
}

func (b *Bot) Wait() {
	b.inflight.Wait()
}

// Dispatch defers the reply, runs the command and turns any error that was
// not already answered into the generic ephemeral follow-up.
func (b *Bot) Dispatch(ctx context.Context, i *discordgo.Interaction) {
	name := i.ApplicationCommandData().Name
	log := b.logger.With("command", name, "interaction_id", i.ID)

	handler, ok := b.handlers[name]
	if !ok {
		log.Warn("unknown command")
		return
	}

	if err := b.api.Defer(i); err != nil {
		log.Error("failed to defer reply", "error", err)
		return
	}

	log.Info("received command", "discord_id", actorOf(i).ID)
	if err := handler(ctx, i); err != nil {
		log.Error("command failed", "error", err)
		if err := b.api.FollowUp(i, &discordgo.WebhookParams{
			Content: genericErrorMessage,
			Flags:   discordgo.MessageFlagsEphemeral,
		}); err != nil {
			log.Error("failed to send error follow-up", "error", err)
		}
		return
	}
	log.Info("command completed")
}

// Ballot reattaches to a report posted in channelID, used on resume.
func (b *Bot) Ballot(channelID string) usecase_matchmake.Ballot {
	return &channelBallot{api: b.api, channelID: channelID}
}

func actorOf(i *discordgo.Interaction) model.DiscordUser {
	u := i.User
	if i.Member != nil && i.Member.User != nil {
		u = i.Member.User
	}
	if u == nil {
		return model.DiscordUser{}
	}
	name := u.GlobalName
	if name == "" {
		name = u.Username
	}
	return model.DiscordUser{ID: u.ID, Name: name, AvatarURL: u.AvatarURL("512")}
}

func stringOption(i *discordgo.Interaction, name string) string {
	for _, o := range i.ApplicationCommandData().Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionString {
			return o.StringValue()
		}
	}
	return ""
}
