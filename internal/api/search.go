package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smartrecipes/backend/internal/middleware"
	"github.com/smartrecipes/backend/internal/service"
	"github.com/smartrecipes/backend/internal/types"
)

// SearchHandler serves ingredient search, page navigation and recipe
// detail lookups.
type SearchHandler struct {
	search service.ISearchService
}

// NewSearchHandler creates a new SearchHandler instance
func NewSearchHandler(search service.ISearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// RegisterRoutes wires the search routes into the given group.
func (h *SearchHandler) RegisterRoutes(router *gin.RouterGroup) {
	search := router.Group("/search")
	{
		search.POST("", h.Search)
		search.POST("/navigate", h.Navigate)
		search.GET("/history", h.History)
	}
	router.GET("/recipes/:id", h.GetRecipe)
}

// Search starts a new search from the submitted ingredient list.
func (h *SearchHandler) Search(c *gin.Context) {
	var req types.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter at least one ingredient."})
		return
	}

	page, err := h.search.Search(c.Request.Context(), middleware.SessionID(c), req.Ingredients, req.Diet, req.Page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Navigate moves the active search one page forward or back.
func (h *SearchHandler) Navigate(c *gin.Context) {
	var req types.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Direction must be 'next' or 'prev'."})
		return
	}

	page, err := h.search.Navigate(c.Request.Context(), middleware.SessionID(c), req.Direction)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// History returns the session's recent search terms.
func (h *SearchHandler) History(c *gin.Context) {
	terms, err := h.search.RecentSearches(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"searches": terms})
}

// GetRecipe returns the full card for one recipe.
func (h *SearchHandler) GetRecipe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe id."})
		return
	}

	card, err := h.search.RecipeByID(c.Request.Context(), middleware.SessionID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}
