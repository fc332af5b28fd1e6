package httpserver

import (
	"errors"
	"net/http"

	"medicart/internal/domain"
	cartsvc "medicart/internal/service/cart"
	checkoutsvc "medicart/internal/service/checkout"
	ordersvc "medicart/internal/service/order"
	walletsvc "medicart/internal/service/wallet"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// writeError maps service errors onto the API error taxonomy. Anything
// unrecognized is an upstream failure and deliberately hides its detail.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid_amount", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientBalance):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "insufficient_balance", Message: err.Error()})
	case errors.Is(err, domain.ErrWalletNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "wallet_not_found", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "not_found", Message: err.Error()})
	case errors.Is(err, cartsvc.ErrInvalidInput),
		errors.Is(err, checkoutsvc.ErrInvalidInput),
		errors.Is(err, walletsvc.ErrInvalidInput),
		errors.Is(err, ordersvc.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "validation_error", Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "upstream_failure", Message: "internal error"})
	}
}

func validationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: "validation_error", Message: message})
}

// requireUserID pulls the mandatory userId query parameter, writing a 400
// when it is missing.
func requireUserID(c *gin.Context) (string, bool) {
	userID := c.Query("userId")
	if userID == "" {
		validationError(c, "userId query parameter required")
		return "", false
	}
	return userID, true
}
