package ws_session

import (
	"log/slog"
	"net/http"

	"github.com/dxmate/dxmate-bot/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Controller struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewController(hub *Hub) *Controller {
	return &Controller{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// read-only event stream, no credentials involved
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws/sessions", c.subscribe)
}

// subscribe upgrades the request and streams session events.
// Optional query: ?mode=ranked_singles
func (c *Controller) subscribe(ctx *gin.Context) {
	var mode model.MatchMode
	if raw := ctx.Query("mode"); raw != "" {
		m, err := model.ParseMatchMode(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "unknown match mode"})
			return
		}
		mode = m
	}

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	client := &Client{
		hub:  c.hub,
		conn: conn,
		send: make(chan []byte, sendBuffer),
		mode: mode,
	}
	c.hub.register(client)

	go c.hub.writeLoop(client)
	go c.hub.readLoop(client)
}
