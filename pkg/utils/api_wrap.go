package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, "success", message, data)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, "success", message, data)
}

func RespondError(c *gin.Context, code int, message string) {
	respond(c, code, "error", message, nil)
}

func respond(c *gin.Context, code int, status, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Status:  status,
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

// HandleServiceError maps service errors onto the response envelope.
func HandleServiceError(c *gin.Context, err error) {
	var validationErr *ValidationError

	switch {
	case errors.As(err, &validationErr):
		respond(c, http.StatusUnprocessableEntity, "error", "Trip draft is incomplete",
			gin.H{"reasons": validationErr.Reasons})
	case errors.Is(err, ErrInvalidDuration):
		RespondError(c, http.StatusBadRequest, "Trip must last at least one day")
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, ErrBookingNotFound):
		RespondError(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, ErrDraftNotFound):
		RespondError(c, http.StatusNotFound, "Draft not found or expired")
	case errors.Is(err, ErrInvalidStep):
		RespondError(c, http.StatusBadRequest, "Step must be between 1 and 4")
	case errors.Is(err, ErrInvalidDay):
		RespondError(c, http.StatusBadRequest, "Day is outside the itinerary")
	case errors.Is(err, ErrInvalidTab):
		RespondError(c, http.StatusBadRequest, "Tab must be upcoming, ongoing, completed or cancelled")
	case errors.Is(err, ErrInvalidStatusTransition):
		RespondError(c, http.StatusConflict, "Booking cannot change to that status")
	case errors.Is(err, ErrOrphanBooking):
		loggerFrom(c).Error("booking stored without index entry", zap.Error(err))
		RespondError(c, http.StatusServiceUnavailable, "Booking saved but not yet listed; retry reconciliation later")
	case errors.Is(err, ErrStorageUnavailable):
		loggerFrom(c).Error("storage error", zap.Error(err))
		RespondError(c, http.StatusServiceUnavailable, "Storage temporarily unavailable")
	default:
		loggerFrom(c).Error("unexpected error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func loggerFrom(c *gin.Context) *zap.Logger {
	if l, ok := c.Get("logger"); ok {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}
