package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smartrecipes/backend/internal/middleware"
	"github.com/smartrecipes/backend/internal/service"
	"github.com/smartrecipes/backend/internal/types"
)

// FavoriteHandler serves the authenticated favorites routes.
type FavoriteHandler struct {
	favorites service.IFavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler instance
func NewFavoriteHandler(favorites service.IFavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// RegisterRoutes wires the favorites routes into the given group.
func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup, validator middleware.TokenValidator) {
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		protected.POST("/recipes/:id/favorite", h.Favorite)
		protected.DELETE("/recipes/:id/favorite", h.Unfavorite)
		protected.GET("/favorites", h.List)
	}
}

// Favorite pins a recipe for the authenticated user.
func (h *FavoriteHandler) Favorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe id."})
		return
	}

	var req types.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.favorites.Favorite(c.Request.Context(), userID, recipeID, req.Title, req.ImageURL); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Recipe favorited."})
}

// Unfavorite removes a pinned recipe.
func (h *FavoriteHandler) Unfavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe id."})
		return
	}

	if err := h.favorites.Unfavorite(c.Request.Context(), userID, recipeID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe unfavorited."})
}

// List returns the authenticated user's favorites.
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	favorites, err := h.favorites.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	return userID, true
}
