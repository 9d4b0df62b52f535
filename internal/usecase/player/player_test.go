package usecase_player

import (
	"context"
	"testing"

	"github.com/dxmate/dxmate-bot/internal/model"
	player_mocks "github.com/dxmate/dxmate-bot/mocks/player"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type UsecasePlayerSuite struct {
	suite.Suite

	directory *player_mocks.Directory
	ranks     *player_mocks.RankLookup
	usecase   *Usecase
	ctx       context.Context
}

func (s *UsecasePlayerSuite) BeforeEach(t provider.T) {
	s.directory = player_mocks.NewDirectory(t)
	s.ranks = player_mocks.NewRankLookup(t)
	s.usecase = New(s.directory, s.ranks)
	s.ctx = context.Background()
}

func (s *UsecasePlayerSuite) TestRegister(t provider.T) {
	t.Run("Should register normalized connect code", func(t provider.T) {
		want := model.Registration{DiscordID: "7", SlippiConnectCode: "ABC#123", Region: "eu"}
		s.directory.On("IsRegistered", s.ctx, "7").Return(false, nil).Once()
		s.directory.On("Register", s.ctx, want).Return(nil).Once()

		got, err := s.usecase.Register(s.ctx, "7", " abc#123 ", "EU")

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Should refuse second registration", func(t provider.T) {
		s.directory.On("IsRegistered", s.ctx, "8").Return(true, nil).Once()

		_, err := s.usecase.Register(s.ctx, "8", "ABC#123", "na")

		assert.ErrorIs(t, err, ErrAlreadyRegistered)
	})

	t.Run("Should reject unknown region and malformed codes", func(t provider.T) {
		_, err := s.usecase.Register(s.ctx, "9", "ABC#123", "mars")
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.ErrorIs(t, err, model.ErrUnknownRegion)

		for _, code := range []string{"ABC123", "#123", "ABC#", "TOOLONG#12", "AB-C#1"} {
			_, err := s.usecase.Register(s.ctx, "9", code, "na")
			assert.ErrorIs(t, err, ErrInvalidInput, code)
		}
	})
}

func (s *UsecasePlayerSuite) TestProfile(t provider.T) {
	user := model.DiscordUser{ID: "7", Name: "seven"}

	t.Run("Should collect ranks of both formats", func(t provider.T) {
		p := model.PlayerRecord{
			SlippiConnectCode: "ABC#123",
			Region:            "ea",
			Skill:             model.SkillSet{Singles: model.Skill{Mu: 1}, Doubles: model.Skill{Mu: 2}},
		}
		s.directory.On("IsRegistered", s.ctx, "7").Return(true, nil).Once()
		s.directory.On("GetPlayer", s.ctx, "7").Return(p, nil).Once()
		s.ranks.On("Rank", s.ctx, model.Skill{Mu: 1}).Return(model.Rank{Name: "Bronze", Points: 100}, nil).Once()
		s.ranks.On("Rank", s.ctx, model.Skill{Mu: 2}).Return(model.Rank{Name: "Silver", Points: 900}, nil).Once()

		got, err := s.usecase.Profile(s.ctx, user)

		require.NoError(t, err)
		assert.Equal(t, "Bronze", got.SinglesRank.Name)
		assert.Equal(t, "Silver", got.DoublesRank.Name)
		assert.Equal(t, user, got.User)
	})

	t.Run("Should tell unregistered players apart", func(t provider.T) {
		s.directory.On("IsRegistered", s.ctx, "7").Return(false, nil).Once()

		_, err := s.usecase.Profile(s.ctx, user)

		assert.ErrorIs(t, err, ErrNotRegistered)
	})
}

func (s *UsecasePlayerSuite) TestLeaderboard(t provider.T) {
	t.Run("Should cap the board at sixteen", func(t provider.T) {
		entries := make([]model.LeaderboardEntry, 20)
		for i := range entries {
			entries[i] = model.LeaderboardEntry{DiscordID: string(rune('a' + i)), RankPoint: 2000 - i}
		}
		s.directory.On("Leaderboard", s.ctx, model.FormatDoubles).Return(entries, nil).Once()

		got, err := s.usecase.Leaderboard(s.ctx, model.FormatDoubles)

		require.NoError(t, err)
		assert.Len(t, got, LeaderboardSize)
		assert.Equal(t, entries[0], got[0])
	})
}

func TestUsecasePlayerSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecasePlayerSuite))
}
