package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartrecipes/backend/internal/nutrition"
	"github.com/smartrecipes/backend/internal/service"
	"github.com/smartrecipes/backend/internal/types"
)

// CaloriesHandler serves lookups against the static calorie dataset.
type CaloriesHandler struct {
	dataset *nutrition.CalorieDataset
}

// NewCaloriesHandler creates a new CaloriesHandler instance
func NewCaloriesHandler(dataset *nutrition.CalorieDataset) *CaloriesHandler {
	return &CaloriesHandler{dataset: dataset}
}

// RegisterRoutes wires the calorie routes into the given group.
func (h *CaloriesHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/calories", h.Lookup)
}

// Lookup resolves each submitted ingredient against the dataset and returns
// the per-item breakdown plus totals over the known items.
func (h *CaloriesHandler) Lookup(c *gin.Context) {
	var req types.CaloriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter at least one ingredient."})
		return
	}

	items := service.ParseIngredients(req.Ingredients)
	if len(items) == 0 {
		respondError(c, service.ErrNoIngredients)
		return
	}

	total, breakdown := h.dataset.Lookup(items)
	c.JSON(http.StatusOK, gin.H{
		"total":     total,
		"breakdown": breakdown,
	})
}
