package http_health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type HealthSuite struct {
	suite.Suite
}

func getHealth(t provider.T, checks map[string]Check) (int, HealthResponseDTO) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	New(checks).RegisterRoutes(engine.Group("/api/v1"))

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	var body HealthResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func (s *HealthSuite) TestHealth(t provider.T) {
	ok := func(context.Context) error { return nil }

	t.Run("Should report ok when every check passes", func(t provider.T) {
		code, body := getHealth(t, map[string]Check{"redis": ok, "postgres": ok})

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", body.Status)
		assert.Equal(t, map[string]string{"redis": "ok", "postgres": "ok"}, body.Checks)
	})

	t.Run("Should report degraded with the failing check", func(t provider.T) {
		code, body := getHealth(t, map[string]Check{
			"redis":    ok,
			"postgres": func(context.Context) error { return errors.New("connection refused") },
		})

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "degraded", body.Status)
		assert.Equal(t, "connection refused", body.Checks["postgres"])
	})

	t.Run("Should be ok without checks", func(t provider.T) {
		code, body := getHealth(t, nil)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", body.Status)
	})
}

func TestHealthSuite(t *testing.T) {
	suite.RunSuite(t, new(HealthSuite))
}
