package usecase_matchmake

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dxmate/dxmate-bot/internal/model"
	usecase_room "github.com/dxmate/dxmate-bot/internal/usecase/room"
	usecase_settlement "github.com/dxmate/dxmate-bot/internal/usecase/settlement"
	usecase_vote "github.com/dxmate/dxmate-bot/internal/usecase/vote"
	matchmake_mocks "github.com/dxmate/dxmate-bot/mocks/matchmake"
	room_mocks "github.com/dxmate/dxmate-bot/mocks/room"
	settlement_mocks "github.com/dxmate/dxmate-bot/mocks/settlement"
	vote_mocks "github.com/dxmate/dxmate-bot/mocks/vote"
	"github.com/jonboulle/clockwork"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type CoordinatorSuite struct {
	suite.Suite
}

type resources struct {
	directory *matchmake_mocks.Directory
	ranks     *matchmake_mocks.RankLookup
	rooms     *room_mocks.Directory
	reports   *vote_mocks.ReportReader
	settler   *matchmake_mocks.Settler
	registry  *matchmake_mocks.BallotRegistry
	events    *matchmake_mocks.EventPublisher
	surface   *matchmake_mocks.Surface

	clock       *clockwork.FakeClock
	coordinator *Coordinator
	ctx         context.Context

	mu        sync.Mutex
	published []model.EventType
}

func initResources(t provider.T) *resources {
	r := &resources{
		directory: matchmake_mocks.NewDirectory(t),
		ranks:     matchmake_mocks.NewRankLookup(t),
		rooms:     room_mocks.NewDirectory(t),
		reports:   vote_mocks.NewReportReader(t),
		settler:   matchmake_mocks.NewSettler(t),
		registry:  matchmake_mocks.NewBallotRegistry(t),
		events:    matchmake_mocks.NewEventPublisher(t),
		surface:   matchmake_mocks.NewSurface(t),
		clock:     clockwork.NewFakeClock(),
		ctx:       context.Background(),
	}
	r.events.On("Publish", mock.Anything).Run(func(args mock.Arguments) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.published = append(r.published, args.Get(0).(model.SessionEvent).Type)
	}).Maybe()

	r.coordinator = New(
		r.directory,
		r.ranks,
		usecase_room.New(r.rooms, usecase_room.WithClock(r.clock)),
		usecase_vote.New(r.reports, usecase_vote.WithClock(r.clock)),
		r.settler,
		WithBallotRegistry(r.registry),
		WithEventPublisher(r.events),
		WithClock(r.clock),
	)
	return r
}

func (r *resources) publishedTypes() []model.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.EventType(nil), r.published...)
}

func (r *resources) run(ctx context.Context, actor model.DiscordUser, mode model.MatchMode) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- r.coordinator.Matchmake(ctx, actor, mode, r.surface)
	}()
	return done
}

func (r *resources) tick(t provider.T, n int) {
	for i := 0; i < n; i++ {
		r.parked(t)
		r.clock.Advance(usecase_room.DefaultPollInterval)
	}
}

func (r *resources) parked(t provider.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, r.clock.BlockUntilContext(ctx, 1), "session is not waiting for a tick")
}

func finished(t provider.T, done <-chan error) error {
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatalf("session did not finish")
		return nil
	}
}

// registered stubs the pre-session checks for a player with n ranked matches.
func (r *resources) registered(actor model.DiscordUser, n int) model.PlayerRecord {
	p := model.PlayerRecord{
		DiscordID:            actor.ID,
		SlippiConnectCode:    actor.Name + "#1",
		Skill:                model.SkillSet{Singles: model.Skill{Mu: 25, Sigma: 8}, Doubles: model.Skill{Mu: 20, Sigma: 6}},
		RankedModeMatchCount: model.MatchCount{Singles: n, Doubles: n},
	}
	r.directory.On("CheckInMatch", r.ctx, actor.ID).Return(false, nil).Once()
	r.directory.On("GetPlayer", r.ctx, actor.ID).Return(p, nil).Once()
	r.ranks.On("Rank", r.ctx, mock.Anything).Return(model.Rank{Name: "Silver", Points: 1100}, nil).Once()
	return p
}

func (r *resources) reacted(key model.SlotKey, users ...string) *mock.Call {
	return r.surface.On("Reactors", mock.Anything, model.ReportID("msg-1"), key).Return(users, nil)
}

var (
	alice = model.DiscordUser{ID: "A", Name: "alice"}
	bob   = model.DiscordUser{ID: "B", Name: "bob"}
)

func roomOf(players ...model.DiscordUser) *model.Room {
	room := &model.Room{}
	for _, p := range players {
		room.Players = append(room.Players, model.RoomPlayer{DiscordUser: p})
	}
	return room
}

func (s *CoordinatorSuite) TestHost(t provider.T) {
	t.Run("Should post one report and settle the unanimous winner", func(t provider.T) {
		r := initResources(t)
		r.registered(alice, 0)
		r.rooms.On("SearchRoom", r.ctx, mock.Anything).Return(model.EmptyRoomID, nil).Once()
		r.rooms.On("CreateRoom", r.ctx, mock.Anything).Return(model.RoomID("room-1"), nil).Once()
		r.rooms.On("GetRoom", r.ctx, model.RoomID("room-1")).Return(roomOf(alice), nil).Twice()
		r.rooms.On("GetRoom", r.ctx, model.RoomID("room-1")).Return(roomOf(alice, bob), nil).Once()
		r.surface.On("Progress", r.ctx, mock.Anything).Return(nil).Once()

		full := roomOf(alice, bob)
		want := model.Report{ID: "msg-1", Data: model.NewReportData("room-1", model.RankedSingles, full.Players)}
		r.surface.On("Summary", r.ctx, mock.MatchedBy(func(s model.MatchSummary) bool {
			return s.Mode == model.RankedSingles && len(s.Players) == 2 && s.SetLength == "Best of 5"
		})).Return(model.ReportID("msg-1"), nil).Once()
		r.directory.On("SaveReport", r.ctx, want).Return(nil).Once()
		r.surface.On("OpenBallot", r.ctx, model.ReportID("msg-1"),
			[]model.SlotKey{model.SlotOne, model.SlotTwo, model.SlotCancel}).Return(nil).Once()
		r.surface.On("ChannelID").Return("chan-1").Once()
		r.registry.On("Track", r.ctx, mock.MatchedBy(func(b model.Ballot) bool {
			return b.ReportID == "msg-1" && b.ChannelID == "chan-1" && b.MatchMode == model.RankedSingles
		})).Return(nil).Once()

		r.reports.On("GetReport", r.ctx, model.ReportID("msg-1")).Return(&want.Data, nil).Twice()
		r.reacted(model.SlotOne, "A").Once()
		r.reacted(model.SlotOne, "A", "B").Once()
		r.reacted(model.SlotTwo).Twice()
		r.reacted(model.SlotCancel).Twice()
		r.settler.On("Settle", r.ctx, want, model.Decisive(model.SlotOne), r.surface).
			Return(model.Settlement{Report: want, Outcome: model.Decisive(model.SlotOne)}, nil).Once()
		r.registry.On("Untrack", mock.Anything, model.ReportID("msg-1")).Return(nil).Once()

		done := r.run(r.ctx, alice, model.RankedSingles)
		r.tick(t, 2) // room fills
		r.tick(t, 2) // second poll reaches quorum
		err := finished(t, done)

		require.NoError(t, err)
		assert.Equal(t, []model.EventType{
			model.EventSessionSearching,
			model.EventSessionFull,
			model.EventBallotOpened,
			model.EventMatchSettled,
		}, r.publishedTypes())
	})

	t.Run("Should give up an empty room after 25 ticks without a report", func(t provider.T) {
		r := initResources(t)
		r.registered(alice, 0)
		r.rooms.On("SearchRoom", r.ctx, mock.Anything).Return(model.EmptyRoomID, nil).Once()
		r.rooms.On("CreateRoom", r.ctx, mock.Anything).Return(model.RoomID("room-1"), nil).Once()
		r.rooms.On("GetRoom", r.ctx, model.RoomID("room-1")).Return(roomOf(alice), nil).Times(26)
		r.rooms.On("DeleteRoom", r.ctx, model.RoomID("room-1")).Return(nil).Once()
		r.surface.On("Progress", r.ctx, mock.Anything).Return(nil).Once()
		r.surface.On("Notify", r.ctx, "<@A> No opponent was found. The matchmaking session has expired.").Return(nil).Once()

		done := r.run(r.ctx, alice, model.RankedDoubles)
		r.tick(t, 25)
		err := finished(t, done)

		assert.ErrorIs(t, err, usecase_room.ErrSessionTimedOut)
		r.directory.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
		r.surface.AssertNotCalled(t, "Summary", mock.Anything, mock.Anything)
		assert.Contains(t, r.publishedTypes(), model.EventSessionTimedOut)
	})

	t.Run("Should tear unranked room down right after the summary", func(t provider.T) {
		r := initResources(t)
		r.registered(alice, 10)
		r.rooms.On("SearchRoom", r.ctx, mock.Anything).Return(model.EmptyRoomID, nil).Once()
		r.rooms.On("CreateRoom", r.ctx, mock.Anything).Return(model.RoomID("room-1"), nil).Once()
		r.rooms.On("GetRoom", r.ctx, model.RoomID("room-1")).Return(roomOf(alice, bob), nil).Once()
		r.surface.On("Summary", r.ctx, mock.Anything).Return(model.ReportID("msg-1"), nil).Once()
		r.directory.On("DeleteRoom", r.ctx, model.RoomID("room-1")).Return(nil).Once()

		err := finished(t, r.run(r.ctx, alice, model.UnrankedSingles))

		require.NoError(t, err)
		r.directory.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
		r.surface.AssertNotCalled(t, "OpenBallot", mock.Anything, mock.Anything, mock.Anything)
		r.reports.AssertNotCalled(t, "GetReport", mock.Anything, mock.Anything)
	})

	t.Run("Should form teams and a connect code for doubles", func(t provider.T) {
		r := initResources(t)
		c, d := model.DiscordUser{ID: "C"}, model.DiscordUser{ID: "D"}
		full := roomOf(alice, bob, c, d)
		teamed := []model.RoomPlayer{
			{DiscordUser: alice, Team: model.TeamRed},
			{DiscordUser: bob, Team: model.TeamBlue},
			{DiscordUser: c, Team: model.TeamBlue},
			{DiscordUser: d, Team: model.TeamRed},
		}
		r.registered(alice, 12)
		r.rooms.On("SearchRoom", r.ctx, mock.Anything).Return(model.EmptyRoomID, nil).Once()
		r.rooms.On("CreateRoom", r.ctx, mock.Anything).Return(model.RoomID("room-1"), nil).Once()
		r.rooms.On("GetRoom", r.ctx, model.RoomID("room-1")).Return(full, nil).Once()
		r.directory.On("CreateTeam", r.ctx, full.Players).Return(teamed, nil).Once()
		r.directory.On("CreateDoublesConnectCode", r.ctx).Return("DXMT#777", nil).Once()
		r.surface.On("Summary", r.ctx, model.NewMatchSummary(model.UnrankedDoubles, teamed, "DXMT#777")).
			Return(model.ReportID("msg-1"), nil).Once()
		r.directory.On("DeleteRoom", r.ctx, model.RoomID("room-1")).Return(nil).Once()

		err := finished(t, r.run(r.ctx, alice, model.UnrankedDoubles))

		require.NoError(t, err)
	})
}

func (s *CoordinatorSuite) TestGuest(t provider.T) {
	t.Run("Should withdraw silently once the room is full", func(t provider.T) {
		r := initResources(t)
		r.registered(bob, 0)
		r.rooms.On("SearchRoom", r.ctx, mock.Anything).Return(model.RoomID("room-1"), nil).Once()
		r.rooms.On("GetRoom", r.ctx, model.RoomID("room-1")).Return(roomOf(alice), nil).Once()
		r.rooms.On("GetRoom", r.ctx, model.RoomID("room-1")).Return(roomOf(alice, bob), nil).Once()
		r.surface.On("Progress", r.ctx, mock.Anything).Return(nil).Once()
		r.surface.On("Withdraw", r.ctx).Return(nil).Once()

		done := r.run(r.ctx, bob, model.RankedSingles)
		r.tick(t, 1)
		err := finished(t, done)

		require.NoError(t, err)
		r.surface.AssertNotCalled(t, "Summary", mock.Anything, mock.Anything)
		r.directory.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
	})

	t.Run("Should notify when the host closed the room", func(t provider.T) {
		r := initResources(t)
		r.registered(bob, 0)
		r.rooms.On("SearchRoom", r.ctx, mock.Anything).Return(model.RoomID("room-1"), nil).Once()
		r.rooms.On("GetRoom", r.ctx, model.RoomID("room-1")).Return(roomOf(alice), nil).Once()
		r.rooms.On("GetRoom", r.ctx, model.RoomID("room-1")).Return(nil, nil).Once()
		r.surface.On("Progress", r.ctx, mock.Anything).Return(nil).Once()
		r.surface.On("Notify", r.ctx, "<@B> The matchmaking session was closed by the host.").Return(nil).Once()

		done := r.run(r.ctx, bob, model.RankedSingles)
		r.tick(t, 1)
		err := finished(t, done)

		assert.ErrorIs(t, err, usecase_room.ErrSessionAborted)
		r.rooms.AssertNotCalled(t, "DeleteRoom", mock.Anything, mock.Anything)
	})
}

func (s *CoordinatorSuite) TestRefusals(t provider.T) {
	t.Run("Should refuse a player already in a match", func(t provider.T) {
		r := initResources(t)
		r.directory.On("CheckInMatch", r.ctx, "A").Return(true, nil).Once()
		r.surface.On("Notify", r.ctx, "<@A> You are already in a match.").Return(nil).Once()

		err := r.coordinator.Matchmake(r.ctx, alice, model.RankedSingles, r.surface)

		assert.ErrorIs(t, err, ErrAlreadyInMatch)
		r.rooms.AssertNotCalled(t, "SearchRoom", mock.Anything, mock.Anything)
	})

	t.Run("Should refuse unranked play before ten ranked matches", func(t provider.T) {
		r := initResources(t)
		r.directory.On("CheckInMatch", r.ctx, "A").Return(false, nil).Once()
		r.directory.On("GetPlayer", r.ctx, "A").Return(model.PlayerRecord{
			RankedModeMatchCount: model.MatchCount{Singles: 30, Doubles: 9},
		}, nil).Once()
		r.surface.On("Notify", r.ctx,
			"To participate in Unranked Doubles, you must play at least 10 matches in Ranked Doubles.").Return(nil).Once()

		err := r.coordinator.Matchmake(r.ctx, alice, model.UnrankedDoubles, r.surface)

		assert.ErrorIs(t, err, ErrNotEligible)
	})

	t.Run("Should point unknown players to registration", func(t provider.T) {
		r := initResources(t)
		r.directory.On("CheckInMatch", r.ctx, "A").Return(false, nil).Once()
		r.directory.On("GetPlayer", r.ctx, "A").Return(model.PlayerRecord{}, model.ErrNotFound).Once()
		r.surface.On("Notify", r.ctx, mock.Anything).Return(nil).Once()

		err := r.coordinator.Matchmake(r.ctx, alice, model.RankedSingles, r.surface)

		assert.ErrorIs(t, err, ErrNotRegistered)
	})

	t.Run("Should surface directory outage as internal error", func(t provider.T) {
		r := initResources(t)
		r.directory.On("CheckInMatch", r.ctx, "A").Return(false, model.ErrDirectoryUnavailable).Once()

		err := r.coordinator.Matchmake(r.ctx, alice, model.RankedSingles, r.surface)

		assert.ErrorIs(t, err, ErrInternal)
		assert.ErrorIs(t, err, model.ErrDirectoryUnavailable)
	})
}

func (s *CoordinatorSuite) TestResume(t provider.T) {
	t.Run("Should cancel a resumed doubles ballot and mention both pairs", func(t provider.T) {
		r := initResources(t)
		data := model.NewReportData("room-2", model.RankedDoubles, []model.RoomPlayer{
			{DiscordUser: model.DiscordUser{ID: "a"}, Team: model.TeamRed},
			{DiscordUser: model.DiscordUser{ID: "c"}, Team: model.TeamBlue},
			{DiscordUser: model.DiscordUser{ID: "b"}, Team: model.TeamRed},
			{DiscordUser: model.DiscordUser{ID: "d"}, Team: model.TeamBlue},
		})
		ballot := matchmake_mocks.NewBallot(t)
		cleaner := settlement_mocks.NewCleaner(t)
		r.coordinator.settler = usecase_settlement.New(
			settlement_mocks.NewPlayerStore(t),
			settlement_mocks.NewRatingService(t),
			settlement_mocks.NewRankLookup(t),
			cleaner,
			usecase_settlement.WithClock(r.clock),
		)

		r.registry.On("Pending", r.ctx).Return([]model.Ballot{
			{ReportID: "msg-2", ChannelID: "chan-9", MatchMode: model.RankedDoubles},
		}, nil).Once()
		r.reports.On("GetReport", r.ctx, model.ReportID("msg-2")).Return(&data, nil).Once()
		ballot.On("Reactors", r.ctx, model.ReportID("msg-2"), model.SlotRed).Return([]string{"a"}, nil).Once()
		ballot.On("Reactors", r.ctx, model.ReportID("msg-2"), model.SlotBlue).Return([]string{"c"}, nil).Once()
		ballot.On("Reactors", r.ctx, model.ReportID("msg-2"), model.SlotCancel).Return([]string{"bot", "a", "b", "c", "d"}, nil).Once()
		cleaner.On("DeleteRoom", r.ctx, model.RoomID("room-2")).Return(nil).Once()
		cleaner.On("DeleteReport", r.ctx, model.ReportID("msg-2")).Return(nil).Once()
		ballot.On("Announce", r.ctx, "🔴 <@a> <@b> vs 🔵 <@c> <@d>\nThe Ranked Doubles match was cancelled.").Return(nil).Once()
		r.registry.On("Untrack", mock.Anything, model.ReportID("msg-2")).Return(nil).Once()

		var opened []string
		done := make(chan error, 1)
		go func() {
			done <- r.coordinator.Resume(r.ctx, func(channelID string) Ballot {
				opened = append(opened, channelID)
				return ballot
			})
		}()
		r.tick(t, 1)
		err := finished(t, done)

		require.NoError(t, err)
		assert.Equal(t, []string{"chan-9"}, opened)
		assert.Equal(t, []model.EventType{model.EventMatchCancelled}, r.publishedTypes())
	})

	t.Run("Should keep ballot tracked when shutting down mid-vote", func(t provider.T) {
		r := initResources(t)
		ctx, cancel := context.WithCancel(r.ctx)
		ballot := matchmake_mocks.NewBallot(t)
		r.registry.On("Pending", ctx).Return([]model.Ballot{
			{ReportID: "msg-3", ChannelID: "chan-9", MatchMode: model.RankedSingles},
		}, nil).Once()

		done := make(chan error, 1)
		go func() {
			done <- r.coordinator.Resume(ctx, func(string) Ballot { return ballot })
		}()
		r.parked(t)
		cancel()
		err := finished(t, done)

		require.NoError(t, err)
		r.registry.AssertNotCalled(t, "Untrack", mock.Anything, mock.Anything)
		r.settler.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should forget a ballot whose report is gone", func(t provider.T) {
		r := initResources(t)
		ballot := matchmake_mocks.NewBallot(t)
		r.registry.On("Pending", r.ctx).Return([]model.Ballot{
			{ReportID: "msg-4", ChannelID: "chan-9", MatchMode: model.RankedSingles},
		}, nil).Once()
		r.reports.On("GetReport", r.ctx, model.ReportID("msg-4")).Return(nil, nil).Once()
		r.registry.On("Untrack", mock.Anything, model.ReportID("msg-4")).Return(nil).Once()

		done := make(chan error, 1)
		go func() {
			done <- r.coordinator.Resume(r.ctx, func(string) Ballot { return ballot })
		}()
		r.tick(t, 1)

		require.NoError(t, finished(t, done))
	})
}

func TestCoordinatorSuite(t *testing.T) {
	suite.RunSuite(t, new(CoordinatorSuite))
}
