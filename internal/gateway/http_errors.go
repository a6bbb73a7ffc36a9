package gateway

import (
	"errors"
	"net/http"

	"github.com/dwikikusuma/storefront/internal/admin/auth"
	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// httpStatusFromGRPC maps an upstream error to an HTTP status, a stable error
// code and a client-facing message.
func httpStatusFromGRPC(err error) (int, string, string) {
	st, ok := status.FromError(err)
	if !ok {
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}

	switch st.Code() {
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return http.StatusBadRequest, "INVALID_ARGUMENT", st.Message()
	case codes.NotFound:
		return http.StatusNotFound, "NOT_FOUND", st.Message()
	case codes.AlreadyExists:
		return http.StatusConflict, "ALREADY_EXISTS", st.Message()
	case codes.Unauthenticated:
		return http.StatusUnauthorized, "UNAUTHENTICATED", st.Message()
	case codes.PermissionDenied:
		return http.StatusForbidden, "PERMISSION_DENIED", st.Message()
	case codes.Unavailable, codes.DeadlineExceeded:
		return http.StatusServiceUnavailable, "UNAVAILABLE", "service unavailable"
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	var vErr *checkoutdomain.ValidationError
	var sErr *checkoutdomain.SubmissionError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "code": "INVALID_ARGUMENT", "field": vErr.Field})
		return
	case errors.Is(err, cartapp.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "INVALID_ARGUMENT", "field": "quantity"})
		return
	case errors.Is(err, cartapp.ErrProductNotFound), errors.Is(err, cartapp.ErrNotInCart):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": "NOT_FOUND"})
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials", "code": "UNAUTHENTICATED"})
		return
	case errors.As(err, &sErr):
		err = sErr.Err
	}

	code, name, msg := httpStatusFromGRPC(err)
	if code >= http.StatusInternalServerError {
		h.Log.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "err", err)
	}
	c.JSON(code, gin.H{"error": msg, "code": name})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg, "code": "INVALID_ARGUMENT"})
}
