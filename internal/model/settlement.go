package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RankChange struct {
	DiscordID string
	Before    Rank
	After     Rank
}

// Settlement is the applied result of one resolved ballot.
type Settlement struct {
	Report  Report
	Outcome Outcome
	Winners []RankChange
	Losers  []RankChange
}

func (s Settlement) Summary() string {
	if s.Outcome.IsCancelled() {
		return fmt.Sprintf("%s\nThe %s match was cancelled.", s.Report.Data.Lineup(), s.Report.Data.MatchMode.Name())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** result\n", s.Report.Data.MatchMode.Name())
	for _, c := range s.Winners {
		fmt.Fprintf(&b, "🏆 %s: %s → %s\n", Mention(c.DiscordID), c.Before, c.After)
	}
	for _, c := range s.Losers {
		fmt.Fprintf(&b, "%s: %s → %s\n", Mention(c.DiscordID), c.Before, c.After)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// MatchRecord is one row of match history.
type MatchRecord struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ReportID  ReportID  `db:"report_id" json:"reportId"`
	RoomID    RoomID    `db:"room_id" json:"roomId"`
	MatchMode MatchMode `db:"match_mode" json:"matchMode"`
	Outcome   string    `db:"outcome" json:"outcome"`
	Winners   []string  `db:"-" json:"winners"`
	Losers    []string  `db:"-" json:"losers"`
	SettledAt time.Time `db:"settled_at" json:"settledAt"`
}

func NewMatchRecord(s Settlement, at time.Time) MatchRecord {
	rec := MatchRecord{
		ID:        uuid.New(),
		ReportID:  s.Report.ID,
		RoomID:    s.Report.Data.RoomID,
		MatchMode: s.Report.Data.MatchMode,
		Outcome:   s.Outcome.String(),
		SettledAt: at,
	}
	for _, c := range s.Winners {
		rec.Winners = append(rec.Winners, c.DiscordID)
	}
	for _, c := range s.Losers {
		rec.Losers = append(rec.Losers, c.DiscordID)
	}
	return rec
}
