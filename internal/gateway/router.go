// Package gateway is the public HTTP surface of the storefront. It owns the
// customer cart sessions and the admin login, and reaches the catalog, order
// and settings services over gRPC.
package gateway

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dwikikusuma/storefront/api/catalogv1"
	"github.com/dwikikusuma/storefront/api/orderv1"
	"github.com/dwikikusuma/storefront/api/settingsv1"
	"github.com/dwikikusuma/storefront/internal/admin/auth"
	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/metrics"
	"github.com/gin-gonic/gin"
)

const (
	cartCookie  = "storefront_sid"
	adminCookie = "storefront_admin"
)

type Deps struct {
	Catalog  catalogv1.CatalogServiceClient
	Orders   orderv1.OrderServiceClient
	Settings settingsv1.SettingsServiceClient
	Cart     *cartapp.Service
	Auth     *auth.Authenticator

	Log     *slog.Logger
	Metrics *metrics.ServerMetrics

	// Ready reports whether upstream dependencies are reachable; nil means
	// always ready.
	Ready func(ctx context.Context) error

	AllowedOrigin string
	CookieSecure  bool
	SessionTTL    time.Duration
	RPCTimeout    time.Duration
}

type Handler struct {
	Deps
}

func NewRouter(d Deps) *gin.Engine {
	if d.Log == nil {
		d.Log = logger.Discard()
	}
	if d.RPCTimeout <= 0 {
		d.RPCTimeout = 5 * time.Second
	}
	if d.SessionTTL <= 0 {
		d.SessionTTL = 24 * time.Hour
	}
	h := &Handler{Deps: d}

	r := gin.New()
	r.Use(gin.Recovery(), h.requestLog(), h.observe(), h.cors())

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/readyz", h.readyz)
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	api := r.Group("/api")
	api.GET("/products", h.listProducts)
	api.GET("/products/:id", h.getProduct)
	api.GET("/settings", h.getSettings)

	shop := api.Group("", h.cartSession())
	shop.GET("/cart", h.getCart)
	shop.POST("/cart/items", h.addCartItem)
	shop.PUT("/cart/items/:id", h.setCartQuantity)
	shop.DELETE("/cart/items/:id", h.removeCartItem)
	shop.DELETE("/cart", h.clearCart)
	shop.POST("/checkout", h.checkout)

	admin := api.Group("/admin")
	admin.POST("/login", h.login)
	admin.GET("/check-auth", h.checkAuth)

	gated := admin.Group("", h.requireAdmin())
	gated.POST("/logout", h.logout)
	gated.GET("/products", h.listProducts)
	gated.POST("/products", h.createProduct)
	gated.PUT("/products/:id", h.updateProduct)
	gated.DELETE("/products/:id", h.deleteProduct)
	gated.GET("/orders", h.listOrders)
	gated.PUT("/orders/:id/status", h.setOrderStatus)
	gated.GET("/settings", h.getSettings)
	gated.PUT("/settings", h.updateSettings)
	gated.GET("/dashboard/stats", h.dashboardStats)

	return r
}

func (h *Handler) rpcContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.RPCTimeout)
}

func (h *Handler) readyz(c *gin.Context) {
	if h.Ready != nil {
		ctx, cancel := h.rpcContext(c)
		defer cancel()
		if err := h.Ready(ctx); err != nil {
			h.Log.WarnContext(ctx, "not ready", slog.Any("err", err))
			c.Status(http.StatusServiceUnavailable)
			return
		}
	}
	c.Status(http.StatusOK)
}
