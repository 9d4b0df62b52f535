package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedReport = errors.New("malformed report data")

type ReportID string

// Report is the ballot of a full room; its ID is the result message ID.
type Report struct {
	ID   ReportID
	Data ReportData
}

// ReportData maps every slot key of the mode to the identities voting for it.
// Singles slots hold one identity, doubles slots hold a pair.
type ReportData struct {
	RoomID    RoomID
	MatchMode MatchMode
	Slots     map[SlotKey][]string
}

// NewReportData lays players out in join order: numbered ports for singles,
// red and blue pairs for doubles.
func NewReportData(roomID RoomID, mode MatchMode, players []RoomPlayer) ReportData {
	d := ReportData{
		RoomID:    roomID,
		MatchMode: mode,
		Slots:     make(map[SlotKey][]string, len(mode.SlotKeys())),
	}
	for i, p := range players {
		key := NumberSlot(i + 1)
		if !mode.IsSingles() {
			key = TeamSlot(p.Team)
		}
		d.Slots[key] = append(d.Slots[key], p.DiscordUser.ID)
	}
	return d
}

// Participants returns every identity on the ballot in slot order.
func (d ReportData) Participants() []string {
	var ids []string
	for _, k := range d.MatchMode.SlotKeys() {
		ids = append(ids, d.Slots[k]...)
	}
	return ids
}

// Split returns the identities of the winning slot and of every other slot.
func (d ReportData) Split(winner SlotKey) (winners, losers []string) {
	for _, k := range d.MatchMode.SlotKeys() {
		if k == winner {
			winners = append(winners, d.Slots[k]...)
			continue
		}
		losers = append(losers, d.Slots[k]...)
	}
	return winners, losers
}

// Lineup renders the slots with mentions, e.g. "🔴 <@a> <@b> vs 🔵 <@c> <@d>".
func (d ReportData) Lineup() string {
	parts := make([]string, 0, len(d.Slots))
	for _, k := range d.MatchMode.SlotKeys() {
		mentions := make([]string, 0, len(d.Slots[k]))
		for _, id := range d.Slots[k] {
			mentions = append(mentions, Mention(id))
		}
		parts = append(parts, string(k)+" "+strings.Join(mentions, " "))
	}
	return strings.Join(parts, " vs ")
}

func (d ReportData) MarshalJSON() ([]byte, error) {
	flat := map[string]any{
		"roomId":    d.RoomID,
		"matchMode": d.MatchMode,
	}
	for _, k := range d.MatchMode.SlotKeys() {
		ids := d.Slots[k]
		if d.MatchMode.IsSingles() {
			if len(ids) != 1 {
				return nil, fmt.Errorf("%w: slot %s holds %d players", ErrMalformedReport, k, len(ids))
			}
			flat[string(k)] = ids[0]
			continue
		}
		flat[string(k)] = ids
	}
	return json.Marshal(flat)
}

func (d *ReportData) UnmarshalJSON(b []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(b, &flat); err != nil {
		return errors.Join(ErrMalformedReport, err)
	}

	var head struct {
		RoomID    RoomID    `json:"roomId"`
		MatchMode MatchMode `json:"matchMode"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return errors.Join(ErrMalformedReport, err)
	}
	if _, err := ParseMatchMode(string(head.MatchMode)); err != nil {
		return errors.Join(ErrMalformedReport, err)
	}

	d.RoomID = head.RoomID
	d.MatchMode = head.MatchMode
	d.Slots = make(map[SlotKey][]string, 2)
	for _, k := range head.MatchMode.SlotKeys() {
		raw, ok := flat[string(k)]
		if !ok {
			return fmt.Errorf("%w: missing slot %s", ErrMalformedReport, k)
		}
		if head.MatchMode.IsSingles() {
			var id string
			if err := json.Unmarshal(raw, &id); err != nil {
				return errors.Join(ErrMalformedReport, err)
			}
			d.Slots[k] = []string{id}
			continue
		}
		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			return errors.Join(ErrMalformedReport, err)
		}
		d.Slots[k] = ids
	}
	return nil
}
