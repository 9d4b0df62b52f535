package model

import "slices"

type RoomID string

const EmptyRoomID RoomID = ""

type Team string

const (
	TeamRed  Team = "red"
	TeamBlue Team = "blue"
)

func (t Team) Label() string {
	switch t {
	case TeamRed:
		return string(SlotRed) + " RED"
	case TeamBlue:
		return string(SlotBlue) + " BLUE"
	}
	return "-"
}

// RoomPlayer is one participant as stored by the directory.
type RoomPlayer struct {
	DiscordUser DiscordUser  `json:"discordUserData"`
	Player      PlayerRecord `json:"dxmatePlayerData"`
	Rank        Rank         `json:"rankData"`
	Team        Team         `json:"team,omitempty"`
	IsHost      bool         `json:"isHost,omitempty"`
}

// Room is a read-only snapshot; players are kept in join order.
type Room struct {
	Players []RoomPlayer `json:"players"`
}

func (r *Room) IsFull(capacity int) bool {
	return r != nil && len(r.Players) >= capacity
}

func (r *Room) Equal(o *Room) bool {
	if r == nil || o == nil {
		return r == o
	}
	return slices.Equal(r.Players, o.Players)
}

func (r *Room) PlayerIDs() []string {
	ids := make([]string, 0, len(r.Players))
	for _, p := range r.Players {
		ids = append(ids, p.DiscordUser.ID)
	}
	return ids
}

// RoomCriteria is what search and create send to the directory.
type RoomCriteria struct {
	MatchMode   MatchMode    `json:"matchMode"`
	DiscordUser DiscordUser  `json:"discordUserData"`
	Player      PlayerRecord `json:"dxmatePlayerData"`
	Rank        Rank         `json:"rankData"`
}
