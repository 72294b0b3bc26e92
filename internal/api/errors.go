package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartrecipes/backend/internal/service"
)

// respondError maps each failure kind to its own status and user-facing
// message, so upstream auth, quota and network problems are not presented
// uniformly.
func respondError(c *gin.Context, err error) {
	status, message := http.StatusInternalServerError, "Something went wrong. Please try again."

	switch {
	case errors.Is(err, service.ErrNoIngredients):
		status, message = http.StatusBadRequest, "Please enter at least one ingredient."
	case errors.Is(err, service.ErrNoActiveSearch):
		status, message = http.StatusBadRequest, "No active search. Enter ingredients to start one."
	case errors.Is(err, service.ErrUpstreamAuth):
		status, message = http.StatusBadGateway, "The recipe service rejected our credentials. Please try again later."
	case errors.Is(err, service.ErrUpstreamQuota):
		status, message = http.StatusServiceUnavailable, "The recipe search quota has been reached. Please try again later."
	case errors.Is(err, service.ErrNetworkTimeout):
		status, message = http.StatusGatewayTimeout, "The recipe service took too long to respond. Please try again."
	case errors.Is(err, service.ErrNetworkFailure):
		status, message = http.StatusBadGateway, "Could not reach the recipe service. Please try again."
	case errors.Is(err, service.ErrUpstreamMalformed):
		status, message = http.StatusBadGateway, "The recipe service returned an unexpected response."
	case errors.Is(err, service.ErrUpstreamFailure):
		status, message = http.StatusBadGateway, "The recipe service request failed. Please try again."
	case errors.Is(err, service.ErrRecipeNotFound):
		status, message = http.StatusNotFound, "Recipe not found."
	case errors.Is(err, service.ErrUserExists):
		status, message = http.StatusConflict, "An account with this email already exists."
	case errors.Is(err, service.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "Invalid email or password."
	case errors.Is(err, service.ErrVerificationInvalid):
		status, message = http.StatusBadRequest, "The verification code is invalid or expired."
	}

	c.JSON(status, gin.H{"error": message})
}
