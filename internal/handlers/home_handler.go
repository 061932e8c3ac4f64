package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finanzapp/internal/errors"
)

// APIVersion is reported by the welcome endpoint
const APIVersion = "1.0"

// WelcomeResponse describes the API entry point
type WelcomeResponse struct {
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// Welcome handles the root endpoint
// @Summary     API welcome
// @Description Welcome message and the list of resource endpoints
// @Tags        meta
// @Produce     json
// @Success     200 {object} WelcomeResponse
// @Router      / [get]
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, WelcomeResponse{
		Message: "Welcome to the FinanzApp API",
		Version: APIVersion,
		Endpoints: []string{
			"/api/users",
			"/api/categories",
			"/api/transactions",
		},
	})
}

// Health handles the liveness probe
// @Summary     Health check
// @Tags        meta
// @Produce     json
// @Success     200 {object} map[string]string
// @Router      /api/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NotFound answers requests for unknown routes with the standard error body
func NotFound(c *gin.Context) {
	respondWithError(c, apperrors.ErrNotFound)
}
