package usecase_player

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/dxmate/dxmate-bot/internal/model"
)

var (
	ErrInternal          = errors.New("internal error")
	ErrAlreadyRegistered = errors.New("player is already registered")
	ErrNotRegistered     = errors.New("player is not registered")
	ErrInvalidInput      = errors.New("invalid registration")
)

const LeaderboardSize = 16

//go:generate mockery --name=Directory --output=../../../mocks/player --filename=directory.go
type Directory interface {
	IsRegistered(ctx context.Context, discordID string) (bool, error)
	Register(ctx context.Context, reg model.Registration) error
	GetPlayer(ctx context.Context, discordID string) (model.PlayerRecord, error)
	Leaderboard(ctx context.Context, format model.Format) ([]model.LeaderboardEntry, error)
}

//go:generate mockery --name=RankLookup --output=../../../mocks/player --filename=rank_lookup.go
type RankLookup interface {
	Rank(ctx context.Context, skill model.Skill) (model.Rank, error)
}

type Usecase struct {
	directory Directory
	ranks     RankLookup
	logger    *slog.Logger
}

func New(directory Directory, ranks RankLookup) *Usecase {
	return &Usecase{
		directory: directory,
		ranks:     ranks,
		logger:    slog.Default(),
	}
}

func (u *Usecase) Register(ctx context.Context, discordID, connectCode, region string) (model.Registration, error) {
	r, err := model.ParseRegion(strings.ToLower(strings.TrimSpace(region)))
	if err != nil {
		return model.Registration{}, errors.Join(ErrInvalidInput, err)
	}
	code := strings.ToUpper(strings.TrimSpace(connectCode))
	if !validConnectCode(code) {
		return model.Registration{}, errors.Join(ErrInvalidInput, errors.New("connect code must look like ABCD#123"))
	}

	registered, err := u.directory.IsRegistered(ctx, discordID)
	if err != nil {
		return model.Registration{}, errors.Join(ErrInternal, err)
	}
	if registered {
		return model.Registration{}, ErrAlreadyRegistered
	}

	reg := model.Registration{DiscordID: discordID, SlippiConnectCode: code, Region: r}
	if err := u.directory.Register(ctx, reg); err != nil {
		return model.Registration{}, errors.Join(ErrInternal, err)
	}
	u.logger.Info("player registered", "discord_id", discordID, "region", r)
	return reg, nil
}

// validConnectCode accepts Slippi codes: up to 7 letters or digits, '#', digits.
func validConnectCode(code string) bool {
	tag, num, ok := strings.Cut(code, "#")
	if !ok || tag == "" || num == "" || len(tag)+len(num) > 7 {
		return false
	}
	for _, c := range tag {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	for _, c := range num {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (u *Usecase) Profile(ctx context.Context, user model.DiscordUser) (model.Profile, error) {
	registered, err := u.directory.IsRegistered(ctx, user.ID)
	if err != nil {
		return model.Profile{}, errors.Join(ErrInternal, err)
	}
	if !registered {
		return model.Profile{}, ErrNotRegistered
	}

	p, err := u.directory.GetPlayer(ctx, user.ID)
	if err != nil {
		return model.Profile{}, errors.Join(ErrInternal, err)
	}

	singles, err := u.ranks.Rank(ctx, p.Skill.Singles)
	if err != nil {
		return model.Profile{}, errors.Join(ErrInternal, err)
	}
	doubles, err := u.ranks.Rank(ctx, p.Skill.Doubles)
	if err != nil {
		return model.Profile{}, errors.Join(ErrInternal, err)
	}

	return model.Profile{
		User:        user,
		Player:      p,
		SinglesRank: singles,
		DoublesRank: doubles,
	}, nil
}

// Leaderboard returns at most LeaderboardSize entries in the order served.
func (u *Usecase) Leaderboard(ctx context.Context, format model.Format) ([]model.LeaderboardEntry, error) {
	entries, err := u.directory.Leaderboard(ctx, format)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	if len(entries) > LeaderboardSize {
		entries = entries[:LeaderboardSize]
	}
	return entries, nil
}
