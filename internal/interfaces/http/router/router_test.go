package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.Status(http.StatusOK)
}

func TestRouter_MountsUnderVersionPrefix(t *testing.T) {
	engine := gin.New()

	group := NewDomainGroup("inventory", "/inventory")
	group.GET("/products", okHandler)

	NewRouter(engine).Register(group).Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/inventory/products", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/inventory/products", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_CustomAPIVersion(t *testing.T) {
	engine := gin.New()

	group := NewDomainGroup("system", "/system")
	group.GET("/ping", okHandler)

	NewRouter(engine, WithAPIVersion("v2")).Register(group).Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v2/system/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDomainGroup_AllVerbs(t *testing.T) {
	engine := gin.New()

	group := NewDomainGroup("inbound", "/inbound")
	group.GET("/purchase-orders", okHandler).
		POST("/purchase-orders", okHandler).
		PUT("/purchase-orders/:id", okHandler).
		PATCH("/purchase-orders/:id", okHandler).
		DELETE("/purchase-orders/:id", okHandler)

	NewRouter(engine).Register(group).Setup()

	for _, method := range []string{"GET", "POST"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(method, "/api/v1/inbound/purchase-orders", nil))
		assert.Equal(t, http.StatusOK, w.Code, method)
	}
	for _, method := range []string{"PUT", "PATCH", "DELETE"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(method, "/api/v1/inbound/purchase-orders/42", nil))
		assert.Equal(t, http.StatusOK, w.Code, method)
	}
}

func TestDomainGroup_Subgroups(t *testing.T) {
	engine := gin.New()

	inventory := NewDomainGroup("inventory", "/inventory")
	stock := inventory.Group("stock", "/stock")
	stock.POST("/adjustments", okHandler)

	NewRouter(engine).Register(inventory).Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/inventory/stock/adjustments", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDomainGroup_Middleware(t *testing.T) {
	engine := gin.New()

	var sawMiddleware bool
	group := NewDomainGroup("inventory", "/inventory")
	group.Use(func(c *gin.Context) {
		sawMiddleware = true
		c.Next()
	})
	group.GET("/products", okHandler)

	NewRouter(engine).Register(group).Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/inventory/products", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, sawMiddleware)
	assert.Equal(t, "inventory", group.Name())
	assert.Equal(t, "/inventory", group.Prefix())
}
