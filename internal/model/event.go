package model

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventSessionSearching EventType = "SESSION_SEARCHING"
	EventSessionFull      EventType = "SESSION_FULL"
	EventSessionTimedOut  EventType = "SESSION_TIMED_OUT"
	EventBallotOpened     EventType = "BALLOT_OPENED"
	EventMatchSettled     EventType = "MATCH_SETTLED"
	EventMatchCancelled   EventType = "MATCH_CANCELLED"
)

type SessionEvent struct {
	Type      EventType `json:"type"`
	SessionID uuid.UUID `json:"sessionId,omitempty"`
	MatchMode MatchMode `json:"matchMode"`
	RoomID    RoomID    `json:"roomId,omitempty"`
	ReportID  ReportID  `json:"reportId,omitempty"`
	Players   int       `json:"players,omitempty"`
	At        time.Time `json:"at"`
}
