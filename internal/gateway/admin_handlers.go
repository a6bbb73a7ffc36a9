package gateway

import (
	"net/http"

	"github.com/dwikikusuma/storefront/api/catalogv1"
	"github.com/dwikikusuma/storefront/api/orderv1"
	"github.com/dwikikusuma/storefront/internal/admin/auth"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "username and password are required")
		return
	}

	token, id, err := h.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.Log.InfoContext(c.Request.Context(), "admin login rejected", "username", req.Username)
		h.fail(c, err)
		return
	}

	h.setCookie(c, adminCookie, token, int(h.SessionTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "admin": id, "token": token})
}

func (h *Handler) logout(c *gin.Context) {
	h.Auth.Logout(c.Request.Context(), adminToken(c))
	h.setCookie(c, adminCookie, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (h *Handler) checkAuth(c *gin.Context) {
	id, ok := h.Auth.Check(c.Request.Context(), adminToken(c))
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "admin": id})
}

func (h *Handler) listOrders(c *gin.Context) {
	ctx, cancel := h.rpcContext(c)
	defer cancel()

	resp, err := h.Orders.ListOrders(ctx, &orderv1.ListOrdersRequest{Status: c.Query("status")})
	if err != nil {
		h.fail(c, err)
		return
	}
	orders := resp.Orders
	if orders == nil {
		orders = []*orderv1.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) setOrderStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "status is required")
		return
	}

	ctx, cancel := h.rpcContext(c)
	defer cancel()

	resp, err := h.Orders.SetOrderStatus(ctx, &orderv1.SetOrderStatusRequest{ID: c.Param("id"), Status: req.Status})
	if err != nil {
		h.fail(c, err)
		return
	}

	if id, ok := c.Get(ctxAdmin); ok {
		h.Log.InfoContext(ctx, "order status changed",
			"order_id", resp.Order.ID, "status", resp.Order.Status, "by", id.(auth.Identity).Username)
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Order status updated successfully",
		"order_id": resp.Order.ID,
		"status":   resp.Order.Status,
		"order":    resp.Order,
	})
}

type statsJSON struct {
	TotalProducts int             `json:"total_products"`
	TotalOrders   int64           `json:"total_orders"`
	PendingOrders int64           `json:"pending_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

func (h *Handler) dashboardStats(c *gin.Context) {
	ctx, cancel := h.rpcContext(c)
	defer cancel()

	var (
		products *catalogv1.ListProductsResponse
		orders   *orderv1.GetStatsResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = h.Catalog.ListProducts(gctx, &catalogv1.ListProductsRequest{})
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = h.Orders.GetStats(gctx, &orderv1.GetStatsRequest{})
		return err
	})
	if err := g.Wait(); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, statsJSON{
		TotalProducts: len(products.Products),
		TotalOrders:   orders.TotalOrders,
		PendingOrders: orders.PendingOrders,
		TotalRevenue:  orders.Revenue,
	})
}
