package usecase_settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dxmate/dxmate-bot/internal/model"
	"github.com/jonboulle/clockwork"
)

var (
	ErrSettlement    = errors.New("settlement failed")
	ErrNotApplied    = errors.New("nothing was applied")
	ErrMalformedSlot = errors.New("unexpected slot layout")
)

//go:generate mockery --name=PlayerStore --output=../../../mocks/settlement --filename=player_store.go
type PlayerStore interface {
	GetPlayer(ctx context.Context, discordID string) (model.PlayerRecord, error)
	UpdatePlayerSkill(ctx context.Context, format model.Format, discordID string, skill model.Skill) error
	AddRankedMatchCount(ctx context.Context, format model.Format, discordID string) error
}

//go:generate mockery --name=RatingService --output=../../../mocks/settlement --filename=rating_service.go
type RatingService interface {
	UpdateSinglesSkill(ctx context.Context, winner, loser model.Skill) (model.Skill, model.Skill, error)
	UpdateDoublesSkill(ctx context.Context, winners, losers [2]model.Skill) ([2]model.Skill, [2]model.Skill, error)
}

//go:generate mockery --name=RankLookup --output=../../../mocks/settlement --filename=rank_lookup.go
type RankLookup interface {
	Rank(ctx context.Context, skill model.Skill) (model.Rank, error)
}

//go:generate mockery --name=Cleaner --output=../../../mocks/settlement --filename=cleaner.go
type Cleaner interface {
	DeleteRoom(ctx context.Context, id model.RoomID) error
	DeleteReport(ctx context.Context, id model.ReportID) error
}

//go:generate mockery --name=HistoryRecorder --output=../../../mocks/settlement --filename=history_recorder.go
type HistoryRecorder interface {
	Record(ctx context.Context, r model.MatchRecord) error
}

// Announcer posts to the channel the ballot lives in.
//
//go:generate mockery --name=Announcer --output=../../../mocks/settlement --filename=announcer.go
type Announcer interface {
	Announce(ctx context.Context, content string) error
}

type Usecase struct {
	players PlayerStore
	rating  RatingService
	ranks   RankLookup
	cleaner Cleaner
	history HistoryRecorder
	clock   clockwork.Clock
	logger  *slog.Logger
}

type Option func(*Usecase)

func WithHistory(h HistoryRecorder) Option {
	return func(u *Usecase) {
		u.history = h
	}
}

func WithClock(c clockwork.Clock) Option {
	return func(u *Usecase) {
		u.clock = c
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = l
	}
}

func New(
	players PlayerStore,
	rating RatingService,
	ranks RankLookup,
	cleaner Cleaner,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		players: players,
		rating:  rating,
		ranks:   ranks,
		cleaner: cleaner,
		clock:   clockwork.NewRealClock(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Settle applies a resolved outcome, tears the match down and announces it.
// Steps are not rolled back: a failure leaves every earlier step applied and
// is returned wrapped in ErrSettlement. A failure before the first write is
// also wrapped in ErrNotApplied and may be retried as a whole.
func (u *Usecase) Settle(ctx context.Context, report model.Report, outcome model.Outcome, announcer Announcer) (model.Settlement, error) {
	st := model.Settlement{Report: report, Outcome: outcome}
	log := u.logger.With("report_id", report.ID, "room_id", report.Data.RoomID, "outcome", outcome)

	if !outcome.IsCancelled() {
		winners, losers, err := u.applyRatings(ctx, report.Data, outcome.Winner)
		if err != nil {
			return st, err
		}
		st.Winners, st.Losers = winners, losers
	}

	if err := u.cleaner.DeleteRoom(ctx, report.Data.RoomID); err != nil {
		if outcome.IsCancelled() {
			return st, unapplied("delete room", err)
		}
		return st, step("delete room", err)
	}
	if err := u.cleaner.DeleteReport(ctx, report.ID); err != nil {
		return st, step("delete report", err)
	}

	if u.history != nil {
		if err := u.history.Record(ctx, model.NewMatchRecord(st, u.clock.Now())); err != nil {
			log.Warn("failed to record match history", "error", err)
		}
	}

	if err := announcer.Announce(ctx, st.Summary()); err != nil {
		return st, step("announce", err)
	}

	log.Info("match settled")
	return st, nil
}

func (u *Usecase) applyRatings(ctx context.Context, data model.ReportData, winner model.SlotKey) ([]model.RankChange, []model.RankChange, error) {
	format := data.MatchMode.Format()
	winnerIDs, loserIDs := data.Split(winner)

	before := make(map[string]model.Skill, len(winnerIDs)+len(loserIDs))
	for _, id := range append(append([]string{}, winnerIDs...), loserIDs...) {
		p, err := u.players.GetPlayer(ctx, id)
		if err != nil {
			return nil, nil, unapplied("fetch player "+id, err)
		}
		before[id] = p.Skill.For(format)
	}

	after, err := u.rate(ctx, format, winnerIDs, loserIDs, before)
	if err != nil {
		return nil, nil, err
	}

	for _, id := range append(append([]string{}, winnerIDs...), loserIDs...) {
		if err := u.players.UpdatePlayerSkill(ctx, format, id, after[id]); err != nil {
			return nil, nil, step("persist skill of "+id, err)
		}
		if err := u.players.AddRankedMatchCount(ctx, format, id); err != nil {
			return nil, nil, step("count match of "+id, err)
		}
	}

	winners, err := u.rankChanges(ctx, winnerIDs, before, after)
	if err != nil {
		return nil, nil, err
	}
	losers, err := u.rankChanges(ctx, loserIDs, before, after)
	if err != nil {
		return nil, nil, err
	}
	return winners, losers, nil
}

func (u *Usecase) rate(ctx context.Context, format model.Format, winnerIDs, loserIDs []string, before map[string]model.Skill) (map[string]model.Skill, error) {
	after := make(map[string]model.Skill, len(before))

	switch {
	case format == model.FormatSingles && len(winnerIDs) == 1 && len(loserIDs) == 1:
		w, l, err := u.rating.UpdateSinglesSkill(ctx, before[winnerIDs[0]], before[loserIDs[0]])
		if err != nil {
			return nil, unapplied("update singles skill", err)
		}
		after[winnerIDs[0]], after[loserIDs[0]] = w, l
	case format == model.FormatDoubles && len(winnerIDs) == 2 && len(loserIDs) == 2:
		w, l, err := u.rating.UpdateDoublesSkill(ctx,
			[2]model.Skill{before[winnerIDs[0]], before[winnerIDs[1]]},
			[2]model.Skill{before[loserIDs[0]], before[loserIDs[1]]},
		)
		if err != nil {
			return nil, unapplied("update doubles skill", err)
		}
		after[winnerIDs[0]], after[winnerIDs[1]] = w[0], w[1]
		after[loserIDs[0]], after[loserIDs[1]] = l[0], l[1]
	default:
		return nil, step("rate", fmt.Errorf("%w: %d winners, %d losers in %s", ErrMalformedSlot, len(winnerIDs), len(loserIDs), format))
	}
	return after, nil
}

func (u *Usecase) rankChanges(ctx context.Context, ids []string, before, after map[string]model.Skill) ([]model.RankChange, error) {
	changes := make([]model.RankChange, 0, len(ids))
	for _, id := range ids {
		from, err := u.ranks.Rank(ctx, before[id])
		if err != nil {
			return nil, step("rank before", err)
		}
		to, err := u.ranks.Rank(ctx, after[id])
		if err != nil {
			return nil, step("rank after", err)
		}
		changes = append(changes, model.RankChange{DiscordID: id, Before: from, After: to})
	}
	return changes, nil
}

func step(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrSettlement, name, err)
}

func unapplied(name string, err error) error {
	return fmt.Errorf("%w: %w: %s: %w", ErrSettlement, ErrNotApplied, name, err)
}
