package model

import (
	"encoding/json"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ModelSuite struct {
	suite.Suite
}

func roomPlayer(id string, team Team) RoomPlayer {
	return RoomPlayer{DiscordUser: DiscordUser{ID: id, Name: id}, Team: team}
}

func (s *ModelSuite) TestCapacity(t provider.T) {
	t.Run("Should seat two in singles and four in doubles", func(t provider.T) {
		for _, m := range MatchModes {
			want := 4
			if m == RankedSingles || m == UnrankedSingles {
				want = 2
			}
			assert.Equal(t, want, m.Capacity(), string(m))
		}
	})

	t.Run("Should tell ranked modes apart", func(t provider.T) {
		assert.True(t, RankedSingles.IsRanked())
		assert.True(t, RankedDoubles.IsRanked())
		assert.False(t, UnrankedSingles.IsRanked())
		assert.False(t, UnrankedDoubles.IsRanked())
	})

	t.Run("Should reject unknown mode", func(t provider.T) {
		_, err := ParseMatchMode("ranked_triples")
		assert.ErrorIs(t, err, ErrUnknownMode)
	})
}

func (s *ModelSuite) TestReportData(t provider.T) {
	t.Run("Should map singles ports in join order", func(t provider.T) {
		d := NewReportData("room", RankedSingles, []RoomPlayer{roomPlayer("A", ""), roomPlayer("B", "")})

		assert.Equal(t, []string{"A"}, d.Slots[SlotOne])
		assert.Equal(t, []string{"B"}, d.Slots[SlotTwo])

		winners, losers := d.Split(SlotOne)
		assert.Equal(t, []string{"A"}, winners)
		assert.Equal(t, []string{"B"}, losers)
	})

	t.Run("Should group doubles players by team", func(t provider.T) {
		d := NewReportData("room", RankedDoubles, []RoomPlayer{
			roomPlayer("a", TeamRed), roomPlayer("c", TeamBlue),
			roomPlayer("b", TeamRed), roomPlayer("d", TeamBlue),
		})

		assert.Equal(t, []string{"a", "b"}, d.Slots[SlotRed])
		assert.Equal(t, []string{"c", "d"}, d.Slots[SlotBlue])
		assert.Equal(t, []string{"a", "b", "c", "d"}, d.Participants())
		assert.Equal(t, "🔴 <@a> <@b> vs 🔵 <@c> <@d>", d.Lineup())
	})

	t.Run("Should encode slots as flat keys", func(t provider.T) {
		d := NewReportData("room", RankedSingles, []RoomPlayer{roomPlayer("A", ""), roomPlayer("B", "")})

		b, err := json.Marshal(d)
		require.NoError(t, err)
		assert.JSONEq(t, `{"roomId":"room","matchMode":"ranked_singles","1️⃣":"A","2️⃣":"B"}`, string(b))

		var back ReportData
		require.NoError(t, json.Unmarshal(b, &back))
		assert.Equal(t, d, back)
	})

	t.Run("Should decode doubles pairs", func(t provider.T) {
		var d ReportData
		err := json.Unmarshal([]byte(`{"roomId":"r","matchMode":"ranked_doubles","🔴":["a","b"],"🔵":["c","d"]}`), &d)

		require.NoError(t, err)
		assert.Equal(t, []string{"c", "d"}, d.Slots[SlotBlue])
	})

	t.Run("Should reject report without slots", func(t provider.T) {
		var d ReportData
		err := json.Unmarshal([]byte(`{"roomId":"r","matchMode":"ranked_singles","1️⃣":"a"}`), &d)

		assert.ErrorIs(t, err, ErrMalformedReport)
	})
}

func (s *ModelSuite) TestRoom(t provider.T) {
	t.Run("Should compare snapshots by players", func(t provider.T) {
		a := &Room{Players: []RoomPlayer{roomPlayer("A", "")}}
		b := &Room{Players: []RoomPlayer{roomPlayer("A", "")}}
		c := &Room{Players: []RoomPlayer{roomPlayer("A", ""), roomPlayer("B", "")}}

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
		assert.False(t, a.Equal(nil))
		assert.True(t, c.IsFull(RankedSingles.Capacity()))
		assert.False(t, a.IsFull(RankedSingles.Capacity()))
	})
}

func (s *ModelSuite) TestSettlementSummary(t provider.T) {
	t.Run("Should list rank movement with the winner first", func(t provider.T) {
		st := Settlement{
			Report:  Report{ID: "m", Data: NewReportData("r", RankedSingles, []RoomPlayer{roomPlayer("A", ""), roomPlayer("B", "")})},
			Outcome: Decisive(SlotTwo),
			Winners: []RankChange{{DiscordID: "B", Before: Rank{"Silver", 1000}, After: Rank{"Silver", 1020}}},
			Losers:  []RankChange{{DiscordID: "A", Before: Rank{"Gold", 1500}, After: Rank{"Gold", 1480}}},
		}

		assert.Equal(t,
			"**Ranked Singles** result\n🏆 <@B>: Silver 1000 RP → Silver 1020 RP\n<@A>: Gold 1500 RP → Gold 1480 RP",
			st.Summary())
	})
}

func TestModelSuite(t *testing.T) {
	suite.RunSuite(t, new(ModelSuite))
}
