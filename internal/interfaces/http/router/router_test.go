package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingRoutes struct {
	registered bool
}

func (r *pingRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	r.registered = true
	rg.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}

func TestRouter_Setup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("mounts registrars under the api prefix", func(t *testing.T) {
		engine := gin.New()
		routes := &pingRoutes{}
		NewRouter(engine).Register(routes).Setup()

		assert.True(t, routes.registered)

		req := httptest.NewRequest("GET", "/api/ping", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pong", w.Body.String())
	})

	t.Run("honors a custom prefix", func(t *testing.T) {
		engine := gin.New()
		NewRouter(engine, WithPrefix("/api/v2")).Register(&pingRoutes{}).Setup()

		req := httptest.NewRequest("GET", "/api/v2/ping", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("registers multiple registrars", func(t *testing.T) {
		engine := gin.New()
		first := &pingRoutes{}
		NewRouter(engine).Register(first).Setup()

		found := false
		for _, route := range engine.Routes() {
			if route.Path == "/api/ping" && route.Method == "GET" {
				found = true
			}
		}
		assert.True(t, found)
	})
}
