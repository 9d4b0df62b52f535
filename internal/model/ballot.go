package model

import "time"

// Ballot is a posted report still waiting for quorum.
type Ballot struct {
	ReportID  ReportID  `json:"reportId"`
	ChannelID string    `json:"channelId"`
	MatchMode MatchMode `json:"matchMode"`
	OpenedAt  time.Time `json:"openedAt"`
}
