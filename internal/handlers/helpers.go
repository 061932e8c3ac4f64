package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "finanzapp/internal/errors"
	"finanzapp/internal/validator"
)

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// bindJSON decodes the request body into req and runs binding validation.
// Failures are reported as ErrInvalidInput naming the offending fields.
func bindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, validator.Describe(err))
	}
	return nil
}

// respondWithError hands err to the ErrorHandler middleware, which renders
// the JSON error body, and stops the handler chain.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorBody is the payload of every error response
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is returned after a resource is created
type CreatedResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}
