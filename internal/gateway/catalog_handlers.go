package gateway

import (
	"net/http"
	"strings"

	"github.com/dwikikusuma/storefront/api/catalogv1"
	"github.com/dwikikusuma/storefront/api/settingsv1"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listProducts(c *gin.Context) {
	ctx, cancel := h.rpcContext(c)
	defer cancel()

	resp, err := h.Catalog.ListProducts(ctx, &catalogv1.ListProductsRequest{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	products := resp.Products
	if products == nil {
		products = []*catalogv1.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) getProduct(c *gin.Context) {
	ctx, cancel := h.rpcContext(c)
	defer cancel()

	resp, err := h.Catalog.GetProduct(ctx, &catalogv1.GetProductRequest{ID: c.Param("id")})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.Product)
}

func (h *Handler) createProduct(c *gin.Context) {
	var fields catalogv1.ProductFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		badRequest(c, "invalid body")
		return
	}
	if fields.Name == nil || strings.TrimSpace(*fields.Name) == "" || fields.Price == nil {
		badRequest(c, "name and price are required")
		return
	}

	ctx, cancel := h.rpcContext(c)
	defer cancel()

	resp, err := h.Catalog.CreateProduct(ctx, &catalogv1.CreateProductRequest{Fields: fields})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "product": resp.Product})
}

func (h *Handler) updateProduct(c *gin.Context) {
	var fields catalogv1.ProductFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		badRequest(c, "invalid body")
		return
	}

	ctx, cancel := h.rpcContext(c)
	defer cancel()

	resp, err := h.Catalog.UpdateProduct(ctx, &catalogv1.UpdateProductRequest{ID: c.Param("id"), Fields: fields})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": resp.Product})
}

func (h *Handler) deleteProduct(c *gin.Context) {
	ctx, cancel := h.rpcContext(c)
	defer cancel()

	if _, err := h.Catalog.DeleteProduct(ctx, &catalogv1.DeleteProductRequest{ID: c.Param("id")}); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *Handler) getSettings(c *gin.Context) {
	ctx, cancel := h.rpcContext(c)
	defer cancel()

	resp, err := h.Settings.GetSettings(ctx, &settingsv1.GetSettingsRequest{})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, settingsOrEmpty(resp.Settings))
}

func (h *Handler) updateSettings(c *gin.Context) {
	var body map[string]string
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "settings must be a JSON object of strings")
		return
	}

	ctx, cancel := h.rpcContext(c)
	defer cancel()

	resp, err := h.Settings.UpdateSettings(ctx, &settingsv1.UpdateSettingsRequest{Settings: body})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully", "settings": settingsOrEmpty(resp.Settings)})
}

func settingsOrEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
