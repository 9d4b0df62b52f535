package http_ballot

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dxmate/dxmate-bot/internal/model"
	http_mocks "github.com/dxmate/dxmate-bot/mocks/http"
	"github.com/gin-gonic/gin"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type BallotControllerSuite struct {
	suite.Suite
}

type resources struct {
	ballots *http_mocks.BallotLister
	history *http_mocks.HistoryReader
	engine  *gin.Engine
}

func initResources(t provider.T) *resources {
	gin.SetMode(gin.TestMode)
	r := &resources{
		ballots: http_mocks.NewBallotLister(t),
		history: http_mocks.NewHistoryReader(t),
		engine:  gin.New(),
	}
	New(r.ballots, r.history).RegisterRoutes(r.engine.Group("/api/v1"))
	return r
}

func (r *resources) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (s *BallotControllerSuite) TestPending(t provider.T) {
	t.Run("Should list pending ballots", func(t provider.T) {
		r := initResources(t)
		opened := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		r.ballots.On("Pending", mock.Anything).Return([]model.Ballot{
			{ReportID: "msg-1", ChannelID: "chan-1", MatchMode: model.RankedSingles, OpenedAt: opened},
		}, nil).Once()

		rec := r.get("/api/v1/ballots")

		require.Equal(t, http.StatusOK, rec.Code)
		var body PendingResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Ballots, 1)
		assert.Equal(t, model.ReportID("msg-1"), body.Ballots[0].ReportID)
		assert.True(t, opened.Equal(body.Ballots[0].OpenedAt))
	})

	t.Run("Should render an empty list instead of null", func(t provider.T) {
		r := initResources(t)
		r.ballots.On("Pending", mock.Anything).Return(nil, nil).Once()

		rec := r.get("/api/v1/ballots")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ballots":[]}`, rec.Body.String())
	})

	t.Run("Should answer 500 when the registry fails", func(t provider.T) {
		r := initResources(t)
		r.ballots.On("Pending", mock.Anything).Return(nil, errors.New("redis down")).Once()

		rec := r.get("/api/v1/ballots")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func (s *BallotControllerSuite) TestMatches(t provider.T) {
	t.Run("Should pass the requested limit", func(t provider.T) {
		r := initResources(t)
		r.history.On("Recent", mock.Anything, 5).Return([]model.MatchRecord{
			{ReportID: "msg-1", MatchMode: model.RankedDoubles, Outcome: "cancelled"},
		}, nil).Once()

		rec := r.get("/api/v1/matches?limit=5")

		require.Equal(t, http.StatusOK, rec.Code)
		var body MatchesResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Matches, 1)
		assert.Equal(t, "cancelled", body.Matches[0].Outcome)
	})

	t.Run("Should default the limit", func(t provider.T) {
		r := initResources(t)
		r.history.On("Recent", mock.Anything, defaultHistoryLimit).Return(nil, nil).Once()

		rec := r.get("/api/v1/matches")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"matches":[]}`, rec.Body.String())
	})

	t.Run("Should reject an out of range limit", func(t provider.T) {
		r := initResources(t)

		for _, q := range []string{"0", "-3", "101", "ten"} {
			rec := r.get("/api/v1/matches?limit=" + q)
			assert.Equal(t, http.StatusBadRequest, rec.Code, q)
		}
	})

	t.Run("Should not expose history route when history is disabled", func(t provider.T) {
		gin.SetMode(gin.TestMode)
		engine := gin.New()
		New(http_mocks.NewBallotLister(t), nil).RegisterRoutes(engine.Group("/api/v1"))

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/matches", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBallotControllerSuite(t *testing.T) {
	suite.RunSuite(t, new(BallotControllerSuite))
}
