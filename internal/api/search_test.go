package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartrecipes/backend/internal/service"
	"github.com/smartrecipes/backend/internal/types"
)

type fakeSearchService struct {
	page     *types.SearchPage
	card     *types.RecipeCard
	searches []string
	err      error

	gotIngredients string
	gotDiet        string
	gotPage        int
	gotDirection   string
	gotRecipeID    int64
}

func (f *fakeSearchService) Search(ctx context.Context, sessionID, rawIngredients, diet string, page int) (*types.SearchPage, error) {
	f.gotIngredients = rawIngredients
	f.gotDiet = diet
	f.gotPage = page
	return f.page, f.err
}

func (f *fakeSearchService) Navigate(ctx context.Context, sessionID, direction string) (*types.SearchPage, error) {
	f.gotDirection = direction
	return f.page, f.err
}

func (f *fakeSearchService) RecipeByID(ctx context.Context, sessionID string, id int64) (*types.RecipeCard, error) {
	f.gotRecipeID = id
	return f.card, f.err
}

func (f *fakeSearchService) RecentSearches(ctx context.Context, sessionID string) ([]string, error) {
	return f.searches, f.err
}

func searchRouter(svc service.ISearchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewSearchHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSearchHandler_Search(t *testing.T) {
	t.Run("returns the assembled page", func(t *testing.T) {
		svc := &fakeSearchService{page: &types.SearchPage{
			Recipes:     []types.RecipeCard{{ID: 1, Title: "Omelette"}},
			CurrentPage: 2,
			TotalPages:  3,
		}}
		router := searchRouter(svc)

		w := doJSON(t, router, http.MethodPost, "/api/v1/search",
			`{"ingredients": "egg, flour", "diet": "vegetarian", "page": 2}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "egg, flour", svc.gotIngredients)
		assert.Equal(t, "vegetarian", svc.gotDiet)
		assert.Equal(t, 2, svc.gotPage)

		var page types.SearchPage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, 3, page.TotalPages)
		require.Len(t, page.Recipes, 1)
		assert.Equal(t, "Omelette", page.Recipes[0].Title)
	})

	t.Run("missing ingredients fail validation", func(t *testing.T) {
		router := searchRouter(&fakeSearchService{})

		w := doJSON(t, router, http.MethodPost, "/api/v1/search", `{"diet": "vegan"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("upstream quota exhaustion maps to service unavailable", func(t *testing.T) {
		router := searchRouter(&fakeSearchService{err: service.ErrUpstreamQuota})

		w := doJSON(t, router, http.MethodPost, "/api/v1/search", `{"ingredients": "egg"}`)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "quota")
	})

	t.Run("upstream timeout maps to gateway timeout", func(t *testing.T) {
		router := searchRouter(&fakeSearchService{err: service.ErrNetworkTimeout})

		w := doJSON(t, router, http.MethodPost, "/api/v1/search", `{"ingredients": "egg"}`)
		assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	})
}

func TestSearchHandler_Navigate(t *testing.T) {
	t.Run("forwards the direction", func(t *testing.T) {
		svc := &fakeSearchService{page: &types.SearchPage{CurrentPage: 3, TotalPages: 3}}
		router := searchRouter(svc)

		w := doJSON(t, router, http.MethodPost, "/api/v1/search/navigate", `{"direction": "next"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "next", svc.gotDirection)
	})

	t.Run("rejects unknown directions", func(t *testing.T) {
		router := searchRouter(&fakeSearchService{})

		w := doJSON(t, router, http.MethodPost, "/api/v1/search/navigate", `{"direction": "sideways"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("navigation without a search in progress is a client error", func(t *testing.T) {
		router := searchRouter(&fakeSearchService{err: service.ErrNoActiveSearch})

		w := doJSON(t, router, http.MethodPost, "/api/v1/search/navigate", `{"direction": "prev"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSearchHandler_GetRecipe(t *testing.T) {
	t.Run("returns the recipe card", func(t *testing.T) {
		svc := &fakeSearchService{card: &types.RecipeCard{ID: 42, Title: "Shakshuka"}}
		router := searchRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(42), svc.gotRecipeID)
		assert.Contains(t, w.Body.String(), "Shakshuka")
	})

	t.Run("rejects a non-numeric id", func(t *testing.T) {
		router := searchRouter(&fakeSearchService{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown recipes map to not found", func(t *testing.T) {
		router := searchRouter(&fakeSearchService{err: service.ErrRecipeNotFound})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSearchHandler_History(t *testing.T) {
	svc := &fakeSearchService{searches: []string{"egg, flour", "tomato"}}
	router := searchRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search/history", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Searches []string `json:"searches"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"egg, flour", "tomato"}, body.Searches)
}
