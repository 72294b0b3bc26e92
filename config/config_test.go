package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("SPOONACULAR_API_KEY", "test-key")
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 12, cfg.Search.PageSize)
		assert.Equal(t, 10*time.Second, cfg.Spoonacular.Timeout)
		assert.Equal(t, 2, cfg.Spoonacular.Retries)
		assert.Equal(t, "sr_session", cfg.Session.CookieName)
		assert.True(t, cfg.RateLimit.Enabled)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("APP_SEARCH_PAGE_SIZE", "6")
		t.Setenv("APP_SERVER_PORT", "9090")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 6, cfg.Search.PageSize)
		assert.Equal(t, 9090, cfg.Server.Port)
	})

	t.Run("fails without api key", func(t *testing.T) {
		t.Setenv("SPOONACULAR_API_KEY", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api key")
	})
}

func TestValidate(t *testing.T) {
	valid := &Config{
		Server:      ServerConfig{Port: 8080},
		Spoonacular: SpoonacularConfig{APIKey: "key"},
		Auth:        AuthConfig{JWTSecret: "secret"},
		Search:      SearchConfig{PageSize: 12},
	}
	require.NoError(t, Validate(valid))

	t.Run("rejects zero page size", func(t *testing.T) {
		cfg := *valid
		cfg.Search.PageSize = 0
		assert.Error(t, Validate(&cfg))
	})

	t.Run("rejects missing jwt secret", func(t *testing.T) {
		cfg := *valid
		cfg.Auth.JWTSecret = ""
		assert.Error(t, Validate(&cfg))
	})
}
