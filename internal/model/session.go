package model

import "github.com/google/uuid"

type Role string

const (
	RoleHost  Role = "host"
	RoleGuest Role = "guest"
)

// ResolveRole: the actor that had to create the room hosts it.
func ResolveRole(created bool) Role {
	if created {
		return RoleHost
	}
	return RoleGuest
}

// Session is one matchmaking attempt of one actor. It is passed by value and
// never changes after the room was found or created.
type Session struct {
	ID     uuid.UUID
	Mode   MatchMode
	RoomID RoomID
	Role   Role
	Actor  DiscordUser
	Player PlayerRecord
	Rank   Rank
}

func (s Session) Capacity() int {
	return s.Mode.Capacity()
}

func (s Session) IsHost() bool {
	return s.Role == RoleHost
}

func (s Session) Criteria() RoomCriteria {
	return RoomCriteria{
		MatchMode:   s.Mode,
		DiscordUser: s.Actor,
		Player:      s.Player,
		Rank:        s.Rank,
	}
}

// Progress is what a waiting actor is shown while the room fills.
type Progress struct {
	Mode     MatchMode
	Players  []RoomPlayer
	Capacity int
}
