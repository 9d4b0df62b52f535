package usecase_rank

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dxmate/dxmate-bot/internal/model"
)

var ErrInternal = errors.New("internal error")

//go:generate mockery --name=Rater --output=../../../mocks/rank --filename=rater.go
type Rater interface {
	Rank(ctx context.Context, skill model.Skill) (model.Rank, error)
}

//go:generate mockery --name=Cache --output=../../../mocks/rank --filename=cache.go
type Cache interface {
	Get(ctx context.Context, skill model.Skill) (model.Rank, bool, error)
	Set(ctx context.Context, skill model.Skill, rank model.Rank) error
}

// Usecase resolves rank tiers through the rating service with a read-through cache.
type Usecase struct {
	rater  Rater
	cache  Cache
	logger *slog.Logger
}

type Option func(*Usecase)

func WithCache(c Cache) Option {
	return func(u *Usecase) {
		u.cache = c
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = l
	}
}

func New(rater Rater, opts ...Option) *Usecase {
	u := &Usecase{
		rater:  rater,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Cache failures only cost a round trip to the rating service.
func (u *Usecase) Rank(ctx context.Context, skill model.Skill) (model.Rank, error) {
	if u.cache != nil {
		rank, ok, err := u.cache.Get(ctx, skill)
		if err != nil {
			u.logger.Warn("rank cache read failed", "error", err)
		}
		if ok {
			return rank, nil
		}
	}

	rank, err := u.rater.Rank(ctx, skill)
	if err != nil {
		return model.Rank{}, errors.Join(ErrInternal, err)
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, skill, rank); err != nil {
			u.logger.Warn("rank cache write failed", "error", err)
		}
	}
	return rank, nil
}
