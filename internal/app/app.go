package app

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/dxmate/dxmate-bot/internal/config"
	discord_bot "github.com/dxmate/dxmate-bot/internal/delivery/discord"
	grpc_health "github.com/dxmate/dxmate-bot/internal/delivery/grpc/health"
	http_ballot "github.com/dxmate/dxmate-bot/internal/delivery/http/ballot"
	http_health "github.com/dxmate/dxmate-bot/internal/delivery/http/health"
	http_init "github.com/dxmate/dxmate-bot/internal/delivery/http/init"
	ws_session "github.com/dxmate/dxmate-bot/internal/delivery/ws/session"
	infra_dxmate "github.com/dxmate/dxmate-bot/internal/infra/dxmate"
	infra_postgres_history "github.com/dxmate/dxmate-bot/internal/infra/postgres/history"
	infra_pg_init "github.com/dxmate/dxmate-bot/internal/infra/postgres/init"
	infra_redis_ballot_set "github.com/dxmate/dxmate-bot/internal/infra/redis/ballot_set"
	infra_redis_init "github.com/dxmate/dxmate-bot/internal/infra/redis/init"
	infra_redis_rank_cache "github.com/dxmate/dxmate-bot/internal/infra/redis/rank_cache"
	usecase_matchmake "github.com/dxmate/dxmate-bot/internal/usecase/matchmake"
	usecase_player "github.com/dxmate/dxmate-bot/internal/usecase/player"
	usecase_rank "github.com/dxmate/dxmate-bot/internal/usecase/rank"
	usecase_room "github.com/dxmate/dxmate-bot/internal/usecase/room"
	usecase_settlement "github.com/dxmate/dxmate-bot/internal/usecase/settlement"
	usecase_vote "github.com/dxmate/dxmate-bot/internal/usecase/vote"
	"golang.org/x/sync/errgroup"
)

const (
	rankCacheKey = "rank_cache"
	ballotSetKey = "pending_ballots"
)

func Go(cfg *config.Config) {
	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	defer redisConn.Close()

	directory := infra_dxmate.New(cfg.DXmateAPI.BaseURL, cfg.DXmateAPI.Timeout, infra_dxmate.WithLogger(logger))
	rankCache := infra_redis_rank_cache.New(redisConn, rankCacheKey, cfg.Redis.RankTTL)
	ballots := infra_redis_ballot_set.New(redisConn, ballotSetKey, infra_redis_ballot_set.WithLogger(logger))

	checks := map[string]http_health.Check{
		"redis": func(context.Context) error { return redisConn.Ping().Err() },
	}

	var (
		settlementOpts []usecase_settlement.Option
		historyReader  http_ballot.HistoryReader
	)
	if cfg.Postgres.Enabled() {
		pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
		defer pgConn.Close()

		history := infra_postgres_history.New(pgConn)
		settlementOpts = append(settlementOpts, usecase_settlement.WithHistory(history))
		historyReader = history
		checks["postgres"] = pgConn.PingContext
	} else {
		logger.Info("match history disabled, DB_HOST is empty")
	}

	rankUC := usecase_rank.New(directory, usecase_rank.WithCache(rankCache))
	roomUC := usecase_room.New(directory,
		usecase_room.WithPollInterval(cfg.Matchmaking.PollInterval),
		usecase_room.WithMaxEmptyTicks(cfg.Matchmaking.MaxEmptyTicks),
	)
	voteUC := usecase_vote.New(directory, usecase_vote.WithPollInterval(cfg.Matchmaking.PollInterval))
	settlementUC := usecase_settlement.New(directory, directory, rankUC, directory, settlementOpts...)
	playerUC := usecase_player.New(directory, rankUC)

	hub := ws_session.NewHub(logger)
	coordinator := usecase_matchmake.New(directory, rankUC, roomUC, voteUC, settlementUC,
		usecase_matchmake.WithBallotRegistry(ballots),
		usecase_matchmake.WithEventPublisher(hub),
		usecase_matchmake.WithUnrankedMinMatches(cfg.Matchmaking.UnrankedMinMatches),
	)

	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("failed to create discord session: %v", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions

	g, gctx := errgroup.WithContext(ctx)

	health := grpc_health.New()
	bot := discord_bot.New(discord_bot.NewAPI(session), coordinator, playerUC)
	session.AddHandler(bot.InteractionHandler(gctx))
	session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		logger.Info("DXmate Bot is ready!", "user", r.User.Username, "guilds", len(r.Guilds))
		health.SetServing(true)
	})
	session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) {
		logger.Warn("discord gateway disconnected")
		health.SetServing(false)
	})

	if err := session.Open(); err != nil {
		log.Fatalf("failed to open discord session: %v", err)
	}

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_health.New(checks))
	controllerPool.Add(http_ballot.New(ballots, historyReader))
	controllerPool.Add(ws_session.NewController(hub))
	controllerPool.Register()

	g.Go(func() error {
		return controllerPool.RunAll(gctx, cfg.HTTP.Host, cfg.HTTP.Port)
	})
	g.Go(func() error {
		return health.Run(gctx, cfg.GRPC.Port)
	})
	g.Go(func() error {
		if err := coordinator.Resume(gctx, bot.Ballot); err != nil {
			logger.Error("failed to resume open ballots", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", "error", err)
	}

	// sessions return once gctx is done; their ballots stay tracked for the next run
	bot.Wait()
	if err := session.Close(); err != nil {
		logger.Warn("failed to close discord session", "error", err)
	}
	logger.Info("DXmate Bot stopped")
}

func newLogger(cfg config.Log) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
