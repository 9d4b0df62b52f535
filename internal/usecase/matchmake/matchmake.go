package usecase_matchmake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dxmate/dxmate-bot/internal/model"
	usecase_room "github.com/dxmate/dxmate-bot/internal/usecase/room"
	usecase_settlement "github.com/dxmate/dxmate-bot/internal/usecase/settlement"
	usecase_vote "github.com/dxmate/dxmate-bot/internal/usecase/vote"
	"github.com/jonboulle/clockwork"
)

var (
	ErrInternal       = errors.New("internal error")
	ErrAlreadyInMatch = errors.New("player is already in a match")
	ErrNotRegistered  = errors.New("player is not registered")
	ErrNotEligible    = errors.New("player has not played enough ranked matches")
)

const DefaultUnrankedMinMatches = 10

//go:generate mockery --name=Directory --output=../../../mocks/matchmake --filename=directory.go
type Directory interface {
	CheckInMatch(ctx context.Context, discordID string) (bool, error)
	GetPlayer(ctx context.Context, discordID string) (model.PlayerRecord, error)
	CreateTeam(ctx context.Context, players []model.RoomPlayer) ([]model.RoomPlayer, error)
	CreateDoublesConnectCode(ctx context.Context) (string, error)
	DeleteRoom(ctx context.Context, id model.RoomID) error
	SaveReport(ctx context.Context, r model.Report) error
	DeleteReport(ctx context.Context, id model.ReportID) error
}

//go:generate mockery --name=RankLookup --output=../../../mocks/matchmake --filename=rank_lookup.go
type RankLookup interface {
	Rank(ctx context.Context, skill model.Skill) (model.Rank, error)
}

//go:generate mockery --name=RoomFlow --output=../../../mocks/matchmake --filename=room_flow.go
type RoomFlow interface {
	Join(ctx context.Context, criteria model.RoomCriteria) (model.Session, error)
	WaitFull(ctx context.Context, s model.Session, progress usecase_room.ProgressFunc) (*model.Room, error)
}

//go:generate mockery --name=OutcomeResolver --output=../../../mocks/matchmake --filename=outcome_resolver.go
type OutcomeResolver interface {
	Await(ctx context.Context, id model.ReportID, ballot usecase_vote.BallotReader) (model.ReportData, model.Outcome, error)
}

//go:generate mockery --name=Settler --output=../../../mocks/matchmake --filename=settler.go
type Settler interface {
	Settle(ctx context.Context, report model.Report, outcome model.Outcome, announcer usecase_settlement.Announcer) (model.Settlement, error)
}

//go:generate mockery --name=BallotRegistry --output=../../../mocks/matchmake --filename=ballot_registry.go
type BallotRegistry interface {
	Track(ctx context.Context, b model.Ballot) error
	Untrack(ctx context.Context, id model.ReportID) error
	Pending(ctx context.Context) ([]model.Ballot, error)
}

//go:generate mockery --name=EventPublisher --output=../../../mocks/matchmake --filename=event_publisher.go
type EventPublisher interface {
	Publish(e model.SessionEvent)
}

// Ballot is a posted report as seen from chat: its reactions and its channel.
//
//go:generate mockery --name=Ballot --output=../../../mocks/matchmake --filename=ballot.go
type Ballot interface {
	Reactors(ctx context.Context, id model.ReportID, key model.SlotKey) ([]string, error)
	Announce(ctx context.Context, content string) error
}

// Surface is the chat conversation a matchmake request came from.
//
//go:generate mockery --name=Surface --output=../../../mocks/matchmake --filename=surface.go
type Surface interface {
	Ballot
	Progress(ctx context.Context, p model.Progress) error
	Notify(ctx context.Context, content string) error
	Withdraw(ctx context.Context) error
	Summary(ctx context.Context, s model.MatchSummary) (model.ReportID, error)
	OpenBallot(ctx context.Context, id model.ReportID, keys []model.SlotKey) error
	ChannelID() string
}

// BallotOpener reattaches to a ballot posted in the given channel.
type BallotOpener func(channelID string) Ballot

type Coordinator struct {
	directory Directory
	ranks     RankLookup
	rooms     RoomFlow
	votes     OutcomeResolver
	settler   Settler

	registry           BallotRegistry
	events             EventPublisher
	unrankedMinMatches int
	clock              clockwork.Clock
	logger             *slog.Logger
}

type Option func(*Coordinator)

func WithBallotRegistry(r BallotRegistry) Option {
	return func(c *Coordinator) {
		c.registry = r
	}
}

func WithEventPublisher(p EventPublisher) Option {
	return func(c *Coordinator) {
		c.events = p
	}
}

func WithUnrankedMinMatches(n int) Option {
	return func(c *Coordinator) {
		if n >= 0 {
			c.unrankedMinMatches = n
		}
	}
}

func WithClock(cl clockwork.Clock) Option {
	return func(c *Coordinator) {
		c.clock = cl
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = l
	}
}

func New(
	directory Directory,
	ranks RankLookup,
	rooms RoomFlow,
	votes OutcomeResolver,
	settler Settler,
	opts ...Option,
) *Coordinator {
	c := &Coordinator{
		directory:          directory,
		ranks:              ranks,
		rooms:              rooms,
		votes:              votes,
		settler:            settler,
		unrankedMinMatches: DefaultUnrankedMinMatches,
		clock:              clockwork.NewRealClock(),
		logger:             slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Matchmake runs one actor's session from the room search to settlement.
// Guests return once the room is full; the host keeps going through the
// ballot until it resolves. User-facing refusals are sent through the
// surface and returned as sentinel errors.
func (c *Coordinator) Matchmake(ctx context.Context, actor model.DiscordUser, mode model.MatchMode, surface Surface) error {
	log := c.logger.With("discord_id", actor.ID, "mode", mode)

	inMatch, err := c.directory.CheckInMatch(ctx, actor.ID)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if inMatch {
		c.notify(ctx, surface, actor.Mention()+" You are already in a match.")
		return ErrAlreadyInMatch
	}

	player, err := c.directory.GetPlayer(ctx, actor.ID)
	if errors.Is(err, model.ErrNotFound) {
		c.notify(ctx, surface, `You are not registered yet. You can register using "/register".`)
		return ErrNotRegistered
	}
	if err != nil {
		return errors.Join(ErrInternal, err)
	}

	format := mode.Format()
	if !mode.IsRanked() && player.RankedModeMatchCount.For(format) < c.unrankedMinMatches {
		c.notify(ctx, surface, fmt.Sprintf("To participate in %s, you must play at least %d matches in Ranked %s.",
			mode.Name(), c.unrankedMinMatches, format.Title()))
		return ErrNotEligible
	}

	rank, err := c.ranks.Rank(ctx, player.Skill.For(format))
	if err != nil {
		return errors.Join(ErrInternal, err)
	}

	s, err := c.rooms.Join(ctx, model.RoomCriteria{
		MatchMode:   mode,
		DiscordUser: actor,
		Player:      player,
		Rank:        rank,
	})
	if err != nil {
		return err
	}
	log = log.With("session_id", s.ID, "room_id", s.RoomID, "role", s.Role)
	c.publish(model.SessionEvent{Type: model.EventSessionSearching, SessionID: s.ID, MatchMode: mode, RoomID: s.RoomID})

	room, err := c.rooms.WaitFull(ctx, s, surface.Progress)
	switch {
	case errors.Is(err, usecase_room.ErrSessionTimedOut):
		c.publish(model.SessionEvent{Type: model.EventSessionTimedOut, SessionID: s.ID, MatchMode: mode, RoomID: s.RoomID})
		c.notify(ctx, surface, actor.Mention()+" No opponent was found. The matchmaking session has expired.")
		return err
	case errors.Is(err, usecase_room.ErrSessionAborted):
		if s.IsHost() {
			c.notify(ctx, surface, actor.Mention()+" The matchmaking room no longer exists. The session has ended.")
		} else {
			c.notify(ctx, surface, actor.Mention()+" The matchmaking session was closed by the host.")
		}
		return err
	case err != nil:
		return err
	}
	c.publish(model.SessionEvent{Type: model.EventSessionFull, SessionID: s.ID, MatchMode: mode, RoomID: s.RoomID, Players: len(room.Players)})

	if !s.IsHost() {
		log.Info("room filled, withdrawing guest reply")
		if err := surface.Withdraw(ctx); err != nil {
			log.Warn("failed to withdraw reply", "error", err)
		}
		return nil
	}

	return c.host(ctx, s, room, surface)
}

// host composes the match, and for ranked modes posts the ballot and waits on it.
// If composition fails the host drops the full room, and the saved report if
// there is one; nobody else would.
func (c *Coordinator) host(ctx context.Context, s model.Session, room *model.Room, surface Surface) error {
	players := room.Players
	connectCode := ""
	if !s.Mode.IsSingles() {
		teamed, err := c.directory.CreateTeam(ctx, players)
		if err != nil {
			return c.abandon(ctx, s.RoomID, "", err)
		}
		players = teamed

		connectCode, err = c.directory.CreateDoublesConnectCode(ctx)
		if err != nil {
			return c.abandon(ctx, s.RoomID, "", err)
		}
	}

	messageID, err := surface.Summary(ctx, model.NewMatchSummary(s.Mode, players, connectCode))
	if err != nil {
		return c.abandon(ctx, s.RoomID, "", err)
	}

	if !s.Mode.IsRanked() {
		if err := c.directory.DeleteRoom(ctx, s.RoomID); err != nil {
			return errors.Join(ErrInternal, err)
		}
		return nil
	}

	report := model.Report{ID: messageID, Data: model.NewReportData(s.RoomID, s.Mode, players)}
	if err := c.directory.SaveReport(ctx, report); err != nil {
		return c.abandon(ctx, s.RoomID, "", err)
	}
	if err := surface.OpenBallot(ctx, report.ID, s.Mode.BallotKeys()); err != nil {
		return c.abandon(ctx, s.RoomID, report.ID, err)
	}

	if c.registry != nil {
		b := model.Ballot{ReportID: report.ID, ChannelID: surface.ChannelID(), MatchMode: s.Mode, OpenedAt: c.clock.Now()}
		if err := c.registry.Track(ctx, b); err != nil {
			c.logger.Warn("failed to track ballot", "report_id", report.ID, "error", err)
		}
	}
	c.publish(model.SessionEvent{Type: model.EventBallotOpened, SessionID: s.ID, MatchMode: s.Mode, RoomID: s.RoomID, ReportID: report.ID})

	return c.settle(ctx, report.ID, s.Mode, surface)
}

func (c *Coordinator) abandon(ctx context.Context, roomID model.RoomID, reportID model.ReportID, cause error) error {
	ctx = context.WithoutCancel(ctx)
	log := c.logger.With("room_id", roomID, "cause", cause)

	if reportID != "" {
		if err := c.directory.DeleteReport(ctx, reportID); err != nil {
			log.Warn("failed to delete report", "report_id", reportID, "error", err)
		}
	}
	if err := c.directory.DeleteRoom(ctx, roomID); err != nil {
		log.Warn("failed to release room", "error", err)
	}
	return errors.Join(ErrInternal, cause)
}

// settle waits for the ballot and applies it. A cancelled ctx leaves the
// ballot tracked so it can be resumed. A settlement that failed before
// changing anything goes back to polling.
func (c *Coordinator) settle(ctx context.Context, id model.ReportID, mode model.MatchMode, ballot Ballot) error {
	for {
		data, outcome, err := c.votes.Await(ctx, id, ballot)
		if errors.Is(err, usecase_vote.ErrBallotGone) {
			c.logger.Info("ballot disappeared before quorum", "report_id", id)
			c.untrack(ctx, id)
			return nil
		}
		if err != nil {
			return err
		}

		st, err := c.settler.Settle(ctx, model.Report{ID: id, Data: data}, outcome, ballot)
		if errors.Is(err, usecase_settlement.ErrNotApplied) {
			c.logger.Warn("settlement not applied, polling again", "report_id", id, "error", err)
			continue
		}
		c.untrack(ctx, id)
		if err != nil {
			return errors.Join(ErrInternal, err)
		}

		e := model.SessionEvent{Type: model.EventMatchSettled, MatchMode: mode, RoomID: data.RoomID, ReportID: id}
		if st.Outcome.IsCancelled() {
			e.Type = model.EventMatchCancelled
		}
		c.publish(e)
		return nil
	}
}

func (c *Coordinator) untrack(ctx context.Context, id model.ReportID) {
	if c.registry == nil {
		return
	}
	if err := c.registry.Untrack(context.WithoutCancel(ctx), id); err != nil {
		c.logger.Warn("failed to untrack ballot", "report_id", id, "error", err)
	}
}

func (c *Coordinator) notify(ctx context.Context, surface Surface, content string) {
	if err := surface.Notify(ctx, content); err != nil {
		c.logger.Warn("failed to notify user", "error", err)
	}
}

func (c *Coordinator) publish(e model.SessionEvent) {
	if c.events == nil {
		return
	}
	e.At = c.clock.Now()
	c.events.Publish(e)
}
