package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(cors.New(corsConfig()))
	router.GET("/api/admin/students", func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})
	return router
}

func preflight(router *gin.Engine, origin string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/admin/students", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	router.ServeHTTP(w, req)
	return w
}

func TestCORSPreflightAllowedOrigins(t *testing.T) {
	router := newCORSTestRouter()

	for _, origin := range allowedOrigins {
		t.Run(origin, func(t *testing.T) {
			w := preflight(router, origin)

			assert.Equal(t, http.StatusNoContent, w.Code)
			// With credentials enabled the allowed origin is echoed back
			assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
			assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
		})
	}
}

func TestCORSPreflightRejectsUnknownOrigin(t *testing.T) {
	router := newCORSTestRouter()

	w := preflight(router, "https://evil.example.com")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSSimpleRequestCarriesAllowOriginHeader(t *testing.T) {
	router := newCORSTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/students", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
