package usecase_vote

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dxmate/dxmate-bot/internal/model"
	"github.com/jonboulle/clockwork"
)

var (
	ErrInternal   = errors.New("internal error")
	ErrBallotGone = errors.New("ballot no longer exists")
)

const DefaultPollInterval = 5 * time.Second

//go:generate mockery --name=ReportReader --output=../../../mocks/vote --filename=report_reader.go
type ReportReader interface {
	GetReport(ctx context.Context, id model.ReportID) (*model.ReportData, error)
}

// BallotReader lists who reacted to a posted report with a given key.
//
//go:generate mockery --name=BallotReader --output=../../../mocks/vote --filename=ballot_reader.go
type BallotReader interface {
	Reactors(ctx context.Context, id model.ReportID, key model.SlotKey) ([]string, error)
}

type Usecase struct {
	reports  ReportReader
	clock    clockwork.Clock
	interval time.Duration
	logger   *slog.Logger
}

type Option func(*Usecase)

func WithClock(c clockwork.Clock) Option {
	return func(u *Usecase) {
		u.clock = c
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(u *Usecase) {
		if d > 0 {
			u.interval = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = l
	}
}

func New(reports ReportReader, opts ...Option) *Usecase {
	u := &Usecase{
		reports:  reports,
		clock:    clockwork.NewRealClock(),
		interval: DefaultPollInterval,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Await polls the ballot on every tick until one outcome is unanimous.
// There is no deadline: it returns only on quorum, when the report is gone
// (ErrBallotGone) or when ctx is done.
func (u *Usecase) Await(ctx context.Context, id model.ReportID, ballot BallotReader) (model.ReportData, model.Outcome, error) {
	log := u.logger.With("report_id", id)

	for {
		select {
		case <-ctx.Done():
			return model.ReportData{}, model.Outcome{}, ctx.Err()
		case <-u.clock.After(u.interval):
		}

		data, err := u.reports.GetReport(ctx, id)
		if err != nil {
			log.Warn("failed to fetch report", "error", err)
			continue
		}
		if data == nil {
			return model.ReportData{}, model.Outcome{}, ErrBallotGone
		}

		reactions, err := u.reactions(ctx, id, data.MatchMode, ballot)
		if err != nil {
			log.Warn("failed to read reactions", "error", err)
			continue
		}

		if outcome, ok := Resolve(data.MatchMode, Tally(*data, reactions)); ok {
			log.Info("ballot resolved", "mode", data.MatchMode, "outcome", outcome)
			return *data, outcome, nil
		}
	}
}

func (u *Usecase) reactions(ctx context.Context, id model.ReportID, mode model.MatchMode, ballot BallotReader) (map[model.SlotKey][]string, error) {
	reactions := make(map[model.SlotKey][]string, len(mode.BallotKeys()))
	for _, key := range mode.BallotKeys() {
		users, err := ballot.Reactors(ctx, id, key)
		if err != nil {
			return nil, errors.Join(ErrInternal, err)
		}
		reactions[key] = users
	}
	return reactions, nil
}

// Tally counts, per key, the distinct report participants that reacted with it.
func Tally(data model.ReportData, reactions map[model.SlotKey][]string) map[model.SlotKey]int {
	participants := make(map[string]struct{})
	for _, id := range data.Participants() {
		participants[id] = struct{}{}
	}

	counts := make(map[model.SlotKey]int, len(reactions))
	for key, users := range reactions {
		seen := make(map[string]struct{}, len(users))
		for _, u := range users {
			if _, ok := participants[u]; !ok {
				continue
			}
			if _, dup := seen[u]; dup {
				continue
			}
			seen[u] = struct{}{}
		}
		counts[key] = len(seen)
	}
	return counts
}

// Resolve picks the outcome that every participant agreed on. Cancellation
// beats a decisive key; decisive keys are tried in the mode's declared order.
func Resolve(mode model.MatchMode, counts map[model.SlotKey]int) (model.Outcome, bool) {
	quorum := mode.Capacity()
	if counts[model.SlotCancel] >= quorum {
		return model.Cancelled(), true
	}
	for _, key := range mode.SlotKeys() {
		if counts[key] >= quorum {
			return model.Decisive(key), true
		}
	}
	return model.Outcome{}, false
}
