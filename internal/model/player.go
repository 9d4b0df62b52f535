package model

import (
	"errors"
	"fmt"
)

var (
	ErrDirectoryUnavailable = errors.New("dxmate directory unavailable")
	ErrNotFound             = errors.New("resource not found")
	ErrUnknownRegion        = errors.New("unknown region")
)

type DiscordUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

func (u DiscordUser) Mention() string {
	return Mention(u.ID)
}

func Mention(id string) string {
	return "<@" + id + ">"
}

type Skill struct {
	Mu    float64 `json:"mu"`
	Sigma float64 `json:"sigma"`
}

type SkillSet struct {
	Singles Skill `json:"singles"`
	Doubles Skill `json:"doubles"`
}

func (s SkillSet) For(f Format) Skill {
	if f == FormatSingles {
		return s.Singles
	}
	return s.Doubles
}

type MatchCount struct {
	Singles int `json:"singles"`
	Doubles int `json:"doubles"`
}

func (c MatchCount) For(f Format) int {
	if f == FormatSingles {
		return c.Singles
	}
	return c.Doubles
}

type PlayerRecord struct {
	DiscordID            string     `json:"discordId,omitempty"`
	SlippiConnectCode    string     `json:"slippiConnectCode"`
	Region               Region     `json:"region,omitempty"`
	Skill                SkillSet   `json:"skill"`
	RankedModeMatchCount MatchCount `json:"rankedModeMatchCount"`
}

type Rank struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

func (r Rank) String() string {
	return fmt.Sprintf("%s %d RP", r.Name, r.Points)
}

type Region string

var Regions = []Region{"na", "lac", "eu", "mena", "ssa", "rca", "sa", "ea", "sea", "sp"}

var regionNames = map[Region]string{
	"na":   "North America",
	"lac":  "Latin America & the Caribbean",
	"eu":   "Europe",
	"mena": "Middle East & North Africa",
	"ssa":  "Sub-Saharan Africa",
	"rca":  "Russia & Central Asia",
	"sa":   "South Asia",
	"ea":   "East Asia",
	"sea":  "Southeast Asia",
	"sp":   "South Pacific",
}

func ParseRegion(s string) (Region, error) {
	r := Region(s)
	if _, ok := regionNames[r]; !ok {
		return "", errors.Join(ErrUnknownRegion, errors.New(s))
	}
	return r, nil
}

func (r Region) Name() string {
	if n, ok := regionNames[r]; ok {
		return n
	}
	return string(r)
}

type Registration struct {
	DiscordID         string `json:"discordId"`
	SlippiConnectCode string `json:"slippiConnectCode"`
	Region            Region `json:"region"`
}

type LeaderboardEntry struct {
	DiscordID string `json:"discordId"`
	RankPoint int    `json:"rankPoint"`
}

type Profile struct {
	User        DiscordUser
	Player      PlayerRecord
	SinglesRank Rank
	DoublesRank Rank
}
