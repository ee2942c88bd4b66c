package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/banking-whatsapp/accounts-service/internal/apperrors"
	"github.com/banking-whatsapp/accounts-service/internal/dto"
	"github.com/banking-whatsapp/accounts-service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error to an HTTP status and writes the uniform
// error body. Internal failures never leak their message to the client.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, apperrors.ErrInvalidTransactionType),
		errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	default:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 600 {
			status = appErr.Code
		}
		logger.Error("Request failed", slog.String("error", err.Error()))
	}

	if status < http.StatusInternalServerError {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}

	c.JSON(status, dto.ErrorResponse{
		Status:    strconv.Itoa(status),
		Message:   message,
		Path:      c.Request.URL.Path,
		Timestamp: dto.NewDateTime(time.Now().UTC()),
	})
}

// respondBindError writes a 400 for malformed or invalid request payloads.
func respondBindError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))

	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Status:    strconv.Itoa(http.StatusBadRequest),
		Message:   "Invalid request: " + err.Error(),
		Path:      c.Request.URL.Path,
		Timestamp: dto.NewDateTime(time.Now().UTC()),
	})
}
