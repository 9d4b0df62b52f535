package model

const (
	DefaultSetLength    = "Best of 5"
	DefaultStarterStage = "Battlefield"
)

// MatchSummary is the completion card the host posts once the room is full.
type MatchSummary struct {
	Mode               MatchMode
	Players            []RoomPlayer
	SetLength          string
	StarterStage       string
	DoublesConnectCode string
}

func NewMatchSummary(mode MatchMode, players []RoomPlayer, connectCode string) MatchSummary {
	return MatchSummary{
		Mode:               mode,
		Players:            players,
		SetLength:          DefaultSetLength,
		StarterStage:       DefaultStarterStage,
		DoublesConnectCode: connectCode,
	}
}
