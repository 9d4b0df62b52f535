package model

import (
	"errors"
	"strings"
)

var ErrUnknownMode = errors.New("unknown match mode")

type MatchMode string

const (
	RankedSingles   MatchMode = "ranked_singles"
	RankedDoubles   MatchMode = "ranked_doubles"
	UnrankedSingles MatchMode = "unranked_singles"
	UnrankedDoubles MatchMode = "unranked_doubles"
)

var MatchModes = []MatchMode{RankedSingles, RankedDoubles, UnrankedSingles, UnrankedDoubles}

var modeNames = map[MatchMode]string{
	RankedSingles:   "Ranked Singles",
	RankedDoubles:   "Ranked Doubles",
	UnrankedSingles: "Unranked Singles",
	UnrankedDoubles: "Unranked Doubles",
}

func ParseMatchMode(s string) (MatchMode, error) {
	m := MatchMode(s)
	if _, ok := modeNames[m]; !ok {
		return "", errors.Join(ErrUnknownMode, errors.New(s))
	}
	return m, nil
}

func (m MatchMode) IsSingles() bool {
	return strings.Contains(string(m), string(FormatSingles))
}

// IsRanked reports whether outcomes of the mode move skill ratings.
func (m MatchMode) IsRanked() bool {
	return strings.HasPrefix(string(m), "ranked")
}

// Capacity is the number of players that fills a room of this mode.
func (m MatchMode) Capacity() int {
	if m.IsSingles() {
		return 2
	}
	return 4
}

func (m MatchMode) Format() Format {
	if m.IsSingles() {
		return FormatSingles
	}
	return FormatDoubles
}

func (m MatchMode) Name() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return string(m)
}

// SlotKeys returns the decisive outcome keys in declared order.
func (m MatchMode) SlotKeys() []SlotKey {
	if m.IsSingles() {
		return []SlotKey{SlotOne, SlotTwo}
	}
	return []SlotKey{SlotRed, SlotBlue}
}

// BallotKeys returns every key a participant may vote with, cancel last.
func (m MatchMode) BallotKeys() []SlotKey {
	return append(m.SlotKeys(), SlotCancel)
}

// Format is the rating pool a mode draws from.
type Format string

const (
	FormatSingles Format = "singles"
	FormatDoubles Format = "doubles"
)

var Formats = []Format{FormatSingles, FormatDoubles}

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatSingles, FormatDoubles:
		return f, nil
	}
	return "", errors.Join(ErrUnknownMode, errors.New(s))
}

func (f Format) Title() string {
	if f == FormatSingles {
		return "Singles"
	}
	return "Doubles"
}
