package ws_session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dxmate/dxmate-bot/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type HubSuite struct {
	suite.Suite
}

type resources struct {
	hub    *Hub
	server *httptest.Server
}

func initResources() *resources {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	hub := NewHub(nil)
	NewController(hub).RegisterRoutes(engine.Group("/api/v1"))
	return &resources{hub: hub, server: httptest.NewServer(engine)}
}

func (s *resources) dial(t provider.T, query string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/api/v1/ws/sessions" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func (s *resources) waitSubscribers(t provider.T, n int) {
	require.Eventually(t, func() bool { return s.hub.Subscribers() == n }, 2*time.Second, 10*time.Millisecond)
}

func read(t provider.T, conn *websocket.Conn) model.SessionEvent {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var e model.SessionEvent
	require.NoError(t, json.Unmarshal(msg, &e))
	return e
}

func (s *HubSuite) TestPublish(t provider.T) {
	t.Run("Should deliver only events of the subscribed mode", func(t provider.T) {
		s := initResources()
		defer s.server.Close()

		conn := s.dial(t, "?mode=ranked_singles")
		defer conn.Close()
		s.waitSubscribers(t, 1)

		s.hub.Publish(model.SessionEvent{Type: model.EventSessionFull, MatchMode: model.RankedDoubles})
		s.hub.Publish(model.SessionEvent{Type: model.EventBallotOpened, MatchMode: model.RankedSingles, ReportID: "msg-1"})

		e := read(t, conn)
		assert.Equal(t, model.EventBallotOpened, e.Type)
		assert.Equal(t, model.ReportID("msg-1"), e.ReportID)
	})

	t.Run("Should deliver every mode to unfiltered subscribers", func(t provider.T) {
		s := initResources()
		defer s.server.Close()

		conn := s.dial(t, "")
		defer conn.Close()
		s.waitSubscribers(t, 1)

		s.hub.Publish(model.SessionEvent{Type: model.EventSessionSearching, MatchMode: model.UnrankedDoubles})

		assert.Equal(t, model.UnrankedDoubles, read(t, conn).MatchMode)
	})
}

func (s *HubSuite) TestSubscribe(t provider.T) {
	t.Run("Should reject unknown mode filter", func(t provider.T) {
		s := initResources()
		defer s.server.Close()

		resp, err := http.Get(s.server.URL + "/api/v1/ws/sessions?mode=free_for_all")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Should forget subscriber once it disconnects", func(t provider.T) {
		s := initResources()
		defer s.server.Close()

		conn := s.dial(t, "?mode=unranked_singles")
		s.waitSubscribers(t, 1)

		require.NoError(t, conn.Close())

		s.waitSubscribers(t, 0)
	})
}

func TestHubSuite(t *testing.T) {
	suite.RunSuite(t, new(HubSuite))
}
