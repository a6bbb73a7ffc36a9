package gateway

import (
	"net/http"
	"strings"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	ordergrpc "github.com/dwikikusuma/storefront/internal/order/grpc"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type cartLineJSON struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url"`
	Category  string          `json:"category"`
	Quantity  int32           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type cartJSON struct {
	Items []cartLineJSON  `json:"items"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

func toCartJSON(v cartapp.View) cartJSON {
	items := make([]cartLineJSON, 0, len(v.Lines))
	for _, l := range v.Lines {
		items = append(items, cartLineJSON{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.UnitPrice,
			ImageURL:  l.ImageURL,
			Category:  l.Category,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal(),
		})
	}
	return cartJSON{Items: items, Total: v.Total, Count: v.Count}
}

func sessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}

func (h *Handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, toCartJSON(h.Cart.Cart(c.Request.Context(), sessionID(c))))
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

func (h *Handler) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "product_id is required")
		return
	}

	ctx, cancel := h.rpcContext(c)
	defer cancel()

	v, err := h.Cart.AddItem(ctx, sessionID(c), req.ProductID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartJSON(v))
}

const idempotencyHeader = "Idempotency-Key"

type setQuantityRequest struct {
	Quantity *int32 `json:"quantity"`
}

func (h *Handler) setCartQuantity(c *gin.Context) {
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		badRequest(c, "quantity is required")
		return
	}
	if *req.Quantity < 1 || *req.Quantity > cartdomain.MaxQuantity {
		h.fail(c, cartapp.ErrInvalidQuantity)
		return
	}

	v, err := h.Cart.SetQuantity(c.Request.Context(), sessionID(c), c.Param("id"), *req.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartJSON(v))
}

func (h *Handler) removeCartItem(c *gin.Context) {
	c.JSON(http.StatusOK, toCartJSON(h.Cart.RemoveItem(c.Request.Context(), sessionID(c), c.Param("id"))))
}

func (h *Handler) clearCart(c *gin.Context) {
	h.Cart.Clear(c.Request.Context(), sessionID(c))
	c.JSON(http.StatusOK, toCartJSON(cartapp.View{}))
}

type checkoutRequest struct {
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	ZipCode      string `json:"zip_code"`
}

func (h *Handler) checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}

	ctx, cancel := h.rpcContext(c)
	defer cancel()

	order, replayed, err := h.Cart.Checkout(ctx, sessionID(c), strings.TrimSpace(c.GetHeader(idempotencyHeader)), checkoutdomain.Form{
		Name:    req.CustomerName,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		Zip:     req.ZipCode,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	code := http.StatusCreated
	if replayed {
		code = http.StatusOK
	}
	c.JSON(code, gin.H{
		"message":  "Order placed successfully",
		"order_id": order.ID,
		"order":    ordergrpc.ToProto(order),
		"replayed": replayed,
	})
}
