package http_ballot

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	http_common "github.com/dxmate/dxmate-bot/internal/delivery/http/common"
	"github.com/dxmate/dxmate-bot/internal/model"
	"github.com/gin-gonic/gin"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

//go:generate mockery --name=BallotLister --output=../../../../mocks/http --filename=ballot_lister.go
type BallotLister interface {
	Pending(ctx context.Context) ([]model.Ballot, error)
}

//go:generate mockery --name=HistoryReader --output=../../../../mocks/http --filename=history_reader.go
type HistoryReader interface {
	Recent(ctx context.Context, limit int) ([]model.MatchRecord, error)
}

type Controller struct {
	ballots BallotLister
	history HistoryReader
	logger  *slog.Logger
}

// New builds the controller; history may be nil when match history is disabled.
func New(ballots BallotLister, history HistoryReader) *Controller {
	return &Controller{
		ballots: ballots,
		history: history,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ballots", c.pending)
	if c.history != nil {
		router.GET("/matches", c.matches)
	}
}

type PendingResponseDTO struct {
	Ballots []model.Ballot `json:"ballots"`
}

// pending lists ranked ballots still waiting for quorum.
func (c *Controller) pending(ctx *gin.Context) {
	ballots, err := c.ballots.Pending(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to list pending ballots", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}
	if ballots == nil {
		ballots = []model.Ballot{}
	}

	ctx.JSON(http.StatusOK, PendingResponseDTO{Ballots: ballots})
}

type MatchesResponseDTO struct {
	Matches []model.MatchRecord `json:"matches"`
}

// matches returns the latest settled matches, newest first. Query: ?limit=N
func (c *Controller) matches(ctx *gin.Context) {
	limit := defaultHistoryLimit
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxHistoryLimit {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "limit must be between 1 and " + strconv.Itoa(maxHistoryLimit),
			})
			return
		}
		limit = n
	}

	records, err := c.history.Recent(ctx.Request.Context(), limit)
	if err != nil {
		c.logger.Error("failed to read match history", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}
	if records == nil {
		records = []model.MatchRecord{}
	}

	ctx.JSON(http.StatusOK, MatchesResponseDTO{Matches: records})
}
