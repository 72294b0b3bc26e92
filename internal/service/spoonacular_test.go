package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartrecipes/backend/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *SpoonacularClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.SpoonacularConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	}
	return NewSpoonacularClient(cfg, nil, zap.NewNop())
}

func TestSpoonacularClient_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the expected query parameters", func(t *testing.T) {
		var query map[string]string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			query = map[string]string{}
			for key := range r.URL.Query() {
				query[key] = r.URL.Query().Get(key)
			}
			assert.Equal(t, "/recipes/complexSearch", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"results":[{"id":1,"title":"Omelette"}],"totalResults":30}`))
		})

		resp, err := client.Search(ctx, []string{"egg", "flour"}, "vegetarian", 12, 12)
		require.NoError(t, err)

		assert.Equal(t, "test-key", query["apiKey"])
		assert.Equal(t, "egg,flour", query["includeIngredients"])
		assert.Equal(t, "12", query["number"])
		assert.Equal(t, "12", query["offset"])
		assert.Equal(t, "true", query["fillIngredients"])
		assert.Equal(t, "true", query["addRecipeNutrition"])
		assert.Equal(t, "vegetarian", query["diet"])

		assert.Equal(t, 30, resp.TotalResults)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "Omelette", resp.Results[0].Title)
	})

	t.Run("omits the diet parameter when none is given", func(t *testing.T) {
		var hasDiet bool
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, hasDiet = r.URL.Query()["diet"]
			w.Write([]byte(`{"results":[],"totalResults":0}`))
		})

		_, err := client.Search(ctx, []string{"egg"}, "", 12, 0)
		require.NoError(t, err)
		assert.False(t, hasDiet)
	})

	t.Run("rejected keys read as an authentication failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.Search(ctx, []string{"egg"}, "", 12, 0)
		assert.ErrorIs(t, err, ErrUpstreamAuth)
	})

	t.Run("exhausted quotas read as a quota failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
		})

		_, err := client.Search(ctx, []string{"egg"}, "", 12, 0)
		assert.ErrorIs(t, err, ErrUpstreamQuota)
	})

	t.Run("unparseable bodies read as malformed responses", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results": not json`))
		})

		_, err := client.Search(ctx, []string{"egg"}, "", 12, 0)
		assert.ErrorIs(t, err, ErrUpstreamMalformed)
	})

	t.Run("an unreachable upstream reads as a network failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		cfg := config.SpoonacularConfig{BaseURL: server.URL, APIKey: "k", Timeout: time.Second}
		client := NewSpoonacularClient(cfg, nil, zap.NewNop())

		_, err := client.Search(ctx, []string{"egg"}, "", 12, 0)
		assert.ErrorIs(t, err, ErrNetworkFailure)
	})
}

func TestSpoonacularClient_Detail(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches the information endpoint for the recipe", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/recipes/42/information", r.URL.Path)
			assert.Equal(t, "true", r.URL.Query().Get("includeNutrition"))
			w.Write([]byte(`{
				"id": 42,
				"title": "Shakshuka",
				"readyInMinutes": 35,
				"vegetarian": true,
				"extendedIngredients": [{"name": "eggs", "original": "4 eggs"}],
				"nutrition": {"nutrients": [{"name": "Calories", "amount": 301.4}]}
			}`))
		})

		record, err := client.Detail(ctx, 42)
		require.NoError(t, err)

		assert.Equal(t, "Shakshuka", record.Title)
		assert.Equal(t, 35, record.ReadyInMinutes)
		assert.True(t, record.Vegetarian)
		require.Len(t, record.ExtendedIngredients, 1)
		require.NotNil(t, record.Nutrition)
		assert.InDelta(t, 301.4, record.Nutrition.Nutrients[0].Amount, 0.001)
	})

	t.Run("missing recipes map to not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.Detail(ctx, 999)
		assert.ErrorIs(t, err, ErrRecipeNotFound)
	})
}
