package model

type SlotKey string

const (
	SlotOne    SlotKey = "1️⃣"
	SlotTwo    SlotKey = "2️⃣"
	SlotRed    SlotKey = "🔴"
	SlotBlue   SlotKey = "🔵"
	SlotCancel SlotKey = "❌"
)

var numberSlots = []SlotKey{SlotOne, SlotTwo, "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣"}

// NumberSlot returns the key of the 1-based port n, or "" when n is out of range.
func NumberSlot(n int) SlotKey {
	if n < 1 || n > len(numberSlots) {
		return ""
	}
	return numberSlots[n-1]
}

func TeamSlot(t Team) SlotKey {
	if t == TeamRed {
		return SlotRed
	}
	return SlotBlue
}

type OutcomeKind int

const (
	OutcomeDecisive OutcomeKind = iota + 1
	OutcomeCancelled
)

// Outcome is either Decisive with a winning slot or Cancelled.
type Outcome struct {
	Kind   OutcomeKind
	Winner SlotKey
}

func Decisive(winner SlotKey) Outcome {
	return Outcome{Kind: OutcomeDecisive, Winner: winner}
}

func Cancelled() Outcome {
	return Outcome{Kind: OutcomeCancelled}
}

func (o Outcome) IsCancelled() bool {
	return o.Kind == OutcomeCancelled
}

func (o Outcome) String() string {
	if o.IsCancelled() {
		return "cancelled"
	}
	return "decisive:" + string(o.Winner)
}
