package usecase_room

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dxmate/dxmate-bot/internal/model"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

var (
	ErrInternal        = errors.New("internal error")
	ErrSessionTimedOut = errors.New("matchmaking session timed out")
	ErrSessionAborted  = errors.New("matchmaking session aborted")
)

const (
	DefaultPollInterval  = 5 * time.Second
	DefaultMaxEmptyTicks = 25
)

//go:generate mockery --name=Directory --output=../../../mocks/room --filename=directory.go
type Directory interface {
	SearchRoom(ctx context.Context, criteria model.RoomCriteria) (model.RoomID, error)
	CreateRoom(ctx context.Context, criteria model.RoomCriteria) (model.RoomID, error)
	GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error)
	DeleteRoom(ctx context.Context, id model.RoomID) error
}

// ProgressFunc renders the room while it fills.
type ProgressFunc func(ctx context.Context, p model.Progress) error

type Usecase struct {
	directory     Directory
	clock         clockwork.Clock
	interval      time.Duration
	maxEmptyTicks int
	logger        *slog.Logger
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

func WithMaxEmptyTicks(n int) Option {
	return func(u *Usecase) {
		if n > 0 {
			u.maxEmptyTicks = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = l
	}
}

func New(directory Directory, opts ...Option) *Usecase {
	u := &Usecase{
		directory:     directory,
		clock:         clockwork.NewRealClock(),
		interval:      DefaultPollInterval,
		maxEmptyTicks: DefaultMaxEmptyTicks,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Join finds a compatible open room or creates one. Creating it makes the
// actor the host of the session.
func (u *Usecase) Join(ctx context.Context, criteria model.RoomCriteria) (model.Session, error) {
	roomID, err := u.directory.SearchRoom(ctx, criteria)
	if err != nil {
		return model.Session{}, errors.Join(ErrInternal, err)
	}

	created := false
	if roomID == model.EmptyRoomID {
		roomID, err = u.directory.CreateRoom(ctx, criteria)
		if err != nil {
			return model.Session{}, errors.Join(ErrInternal, err)
		}
		created = true
	}

	s := model.Session{
		ID:     uuid.New(),
		Mode:   criteria.MatchMode,
		RoomID: roomID,
		Role:   model.ResolveRole(created),
		Actor:  criteria.DiscordUser,
		Player: criteria.Player,
		Rank:   criteria.Rank,
	}
	u.logger.Info("joined room",
		"session_id", s.ID,
		"room_id", s.RoomID,
		"mode", s.Mode,
		"role", s.Role,
	)
	return s, nil
}

// WaitFull samples the room once right away and then on every tick until it
// is full. The host deletes the room after maxEmptyTicks ticks without change
// and gets ErrSessionTimedOut. Anyone still waiting on a room that
// disappeared gets ErrSessionAborted.
func (u *Usecase) WaitFull(ctx context.Context, s model.Session, progress ProgressFunc) (*model.Room, error) {
	w := newFillWait(s, u.maxEmptyTicks)
	log := u.logger.With("session_id", s.ID, "room_id", s.RoomID, "role", s.Role)

	for first := true; ; first = false {
		if !first {
			select {
			case <-ctx.Done():
				u.release(s)
				return nil, ctx.Err()
			case <-u.clock.After(u.interval):
			}
		}

		room, err := u.directory.GetRoom(ctx, s.RoomID)
		if err != nil {
			log.Warn("failed to fetch room", "error", err)
		}

		if w.observe(room, err) && progress != nil {
			if err := progress(ctx, w.progress()); err != nil {
				log.Warn("failed to render progress", "error", err)
			}
		}

		switch w.state {
		case StateFull:
			log.Info("room is full", "players", len(w.last.Players))
			return w.last, nil
		case StateAborted:
			log.Info("room is gone")
			return nil, ErrSessionAborted
		case StateTimedOut:
			log.Info("matchmaking timed out", "ticks", w.emptyTicks)
			if err := u.directory.DeleteRoom(ctx, s.RoomID); err != nil {
				return nil, errors.Join(ErrSessionTimedOut, err)
			}
			return nil, ErrSessionTimedOut
		}
	}
}

// release drops the host's unfilled room when the wait is abandoned.
func (u *Usecase) release(s model.Session) {
	if !s.IsHost() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), u.interval)
	defer cancel()
	if err := u.directory.DeleteRoom(ctx, s.RoomID); err != nil {
		u.logger.Warn("failed to release room", "room_id", s.RoomID, "error", err)
	}
}
