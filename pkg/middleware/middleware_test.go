package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"tripwise/pkg/utils"
)

var secret = []byte("middleware-secret")

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, OwnerID(c))
	})
	r.GET("/", handlers...)
	return r
}

func get(r http.Handler, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	r := newRouter(JWTAuthMiddleware(secret))

	token, err := utils.CreateToken(secret, "owner-1", time.Hour)
	require.NoError(t, err)

	w := get(r, map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "owner-1", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, get(r, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, map[string]string{"Authorization": token}).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, map[string]string{"Authorization": "Bearer nope"}).Code)
}

func TestOwnerRateLimiter(t *testing.T) {
	limiter := NewOwnerRateLimiter(2)
	setOwner := func(c *gin.Context) {
		if owner := c.GetHeader("X-Owner"); owner != "" {
			c.Set(OwnerIDKey, owner)
		}
	}
	r := newRouter(setOwner, limiter.Middleware(zap.NewNop()))

	a := map[string]string{"X-Owner": "a"}
	assert.Equal(t, http.StatusOK, get(r, a).Code)
	assert.Equal(t, http.StatusOK, get(r, a).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, a).Code)

	// buckets are per owner
	assert.Equal(t, http.StatusOK, get(r, map[string]string{"X-Owner": "b"}).Code)

	// anonymous callers share a bucket by client address
	assert.Equal(t, http.StatusOK, get(r, nil).Code)
	assert.Equal(t, http.StatusOK, get(r, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, nil).Code)
}

func TestTraceIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		_, hasLogger := c.Get("logger")
		assert.True(t, hasLogger)
		c.String(http.StatusOK, c.GetString("trace_id"))
	})

	id := uuid.NewString()
	w := get(r, map[string]string{"X-Trace-ID": id})
	assert.Equal(t, id, w.Body.String())

	w = get(r, map[string]string{"X-Trace-ID": "not-a-uuid"})
	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", w.Body.String())
}
