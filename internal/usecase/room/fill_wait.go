package usecase_room

import "github.com/dxmate/dxmate-bot/internal/model"

type State string

const (
	StateSearching State = "searching"
	StateFull      State = "full"
	StateTimedOut  State = "timed_out"
	StateAborted   State = "aborted"
)

// fillWait folds room snapshots into the searching state machine.
type fillWait struct {
	session       model.Session
	maxEmptyTicks int

	state      State
	last       *model.Room
	emptyTicks int
}

func newFillWait(s model.Session, maxEmptyTicks int) *fillWait {
	return &fillWait{
		session:       s,
		maxEmptyTicks: maxEmptyTicks,
		state:         StateSearching,
	}
}

// observe applies one sample and reports whether it should be rendered.
// A failed fetch counts as an unchanged tick.
func (w *fillWait) observe(room *model.Room, fetchErr error) bool {
	if w.state != StateSearching {
		return false
	}

	render := false
	switch {
	case fetchErr != nil:
		w.emptyTicks++
	case room == nil:
		w.state = StateAborted
		return false
	case room.IsFull(w.session.Capacity()):
		w.last = room
		w.state = StateFull
		return false
	case !room.Equal(w.last):
		w.last = room
		w.emptyTicks = 0
		render = true
	default:
		w.emptyTicks++
	}

	// only the host may garbage-collect the room
	if w.session.IsHost() && w.emptyTicks >= w.maxEmptyTicks {
		w.state = StateTimedOut
	}
	return render
}

func (w *fillWait) progress() model.Progress {
	p := model.Progress{
		Mode:     w.session.Mode,
		Capacity: w.session.Capacity(),
	}
	if w.last != nil {
		p.Players = w.last.Players
	}
	return p
}
