package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveError(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("trace_id", "trace-1")
	HandleServiceError(c, err)
	return w
}

func TestHandleServiceErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NewValidationError("destination is required"), http.StatusUnprocessableEntity},
		{ErrInvalidDuration, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{fmt.Errorf("get: %w", ErrBookingNotFound), http.StatusNotFound},
		{ErrDraftNotFound, http.StatusNotFound},
		{ErrInvalidStep, http.StatusBadRequest},
		{ErrInvalidDay, http.StatusBadRequest},
		{ErrInvalidTab, http.StatusBadRequest},
		{ErrInvalidStatusTransition, http.StatusConflict},
		{&OrphanBookingError{BookingID: "b1", Key: "trip:o:b1", Err: errors.New("down")}, http.StatusServiceUnavailable},
		{StorageError("save booking", errors.New("down")), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := serveError(tt.err)
			assert.Equal(t, tt.want, w.Code)

			var resp APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, tt.want, resp.Code)
			assert.Equal(t, "trace-1", resp.TraceID)
		})
	}
}

func TestHandleServiceErrorReasons(t *testing.T) {
	w := serveError(NewValidationError("select travel dates", "add at least one traveler"))

	var resp struct {
		Data struct {
			Reasons []string `json:"reasons"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"select travel dates", "add at least one traveler"}, resp.Data.Reasons)
}

func TestErrorIdentity(t *testing.T) {
	orphan := &OrphanBookingError{Err: errors.New("down")}
	assert.ErrorIs(t, orphan, ErrOrphanBooking)
	assert.ErrorIs(t, orphan, ErrStorageUnavailable)

	assert.ErrorIs(t, NewValidationError("x"), ErrValidationFailed)

	cause := errors.New("conn refused")
	err := StorageError("list", cause)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, cause)
}
