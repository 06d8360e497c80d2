package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWithTimeout_recovers_panicking_handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/boom", withTimeout(func(c *gin.Context) {
		panic("boom")
	}, time.Second))

	r := httptest.NewRecorder()
	router.ServeHTTP(r, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, r.Code)
}

func TestWithTimeout_times_out_slow_handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/slow", withTimeout(func(c *gin.Context) {
		time.Sleep(200 * time.Millisecond)
	}, 20*time.Millisecond))

	r := httptest.NewRecorder()
	router.ServeHTTP(r, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusRequestTimeout, r.Code)
}
