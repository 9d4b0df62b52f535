package config

import (
	"os"
	"testing"
	"time"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type ConfigSuite struct {
	suite.Suite
}

func setenv(t provider.T, key, value string) {
	prev, had := os.LookupEnv(key)
	_ = os.Setenv(key, value)
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, prev)
			return
		}
		_ = os.Unsetenv(key)
	})
}

func (s *ConfigSuite) TestFromEnv(t provider.T) {
	t.Run("Should fall back to matchmaking defaults", func(t provider.T) {
		cfg := FromEnv()

		assert.Equal(t, 5*time.Second, cfg.Matchmaking.PollInterval)
		assert.Equal(t, 25, cfg.Matchmaking.MaxEmptyTicks)
		assert.Equal(t, 10, cfg.Matchmaking.UnrankedMinMatches)
		assert.Equal(t, 10*time.Second, cfg.DXmateAPI.Timeout)
		assert.False(t, cfg.Postgres.Enabled())
	})
}

func (s *ConfigSuite) TestParsers(t provider.T) {
	t.Run("Should keep default on malformed values", func(t provider.T) {
		setenv(t, "DXMATE_TEST_INT", "five")
		setenv(t, "DXMATE_TEST_DURATION", "soon")

		assert.Equal(t, 7, getint("DXMATE_TEST_INT", 7))
		assert.Equal(t, time.Second, getduration("DXMATE_TEST_DURATION", time.Second))
	})

	t.Run("Should parse configured values", func(t provider.T) {
		setenv(t, "DXMATE_TEST_INT", "3")
		setenv(t, "DXMATE_TEST_DURATION", "250ms")

		assert.Equal(t, 3, getint("DXMATE_TEST_INT", 7))
		assert.Equal(t, 250*time.Millisecond, getduration("DXMATE_TEST_DURATION", time.Second))
	})
}

func TestConfigSuite(t *testing.T) {
	suite.RunSuite(t, new(ConfigSuite))
}
