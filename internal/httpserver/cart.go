package httpserver

import (
	"net/http"

	"medicart/internal/domain"
	cartsvc "medicart/internal/service/cart"

	"github.com/gin-gonic/gin"
)

type addCartRequest struct {
	UserID          string         `json:"userId"`
	ProductID       string         `json:"productId"`
	Quantity        int            `json:"quantity"`
	SelectedPackage domain.Package `json:"selectedPackage"`
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Success bool          `json:"success"`
	Cart    []cartsvc.Item `json:"cart"`
}

func getCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		items, err := svc.Get(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func addCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			validationError(c, "invalid request body")
			return
		}
		items, err := svc.Add(c.Request.Context(), req.UserID, req.ProductID, req.Quantity, req.SelectedPackage)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cartResponse{Success: true, Cart: items})
	}
}

// updateCartItemHandler sets an item's quantity. A non-positive quantity
// removes the item instead of leaving a zero-quantity row; that policy
// lives here at the call site, not in the store.
func updateCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		itemID := c.Param("id")

		var req updateCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			validationError(c, "invalid request body")
			return
		}

		var (
			items []cartsvc.Item
			err   error
		)
		if req.Quantity <= 0 {
			items, err = svc.Remove(c.Request.Context(), userID, itemID)
		} else {
			items, err = svc.UpdateQuantity(c.Request.Context(), userID, itemID, req.Quantity)
		}
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cartResponse{Success: true, Cart: items})
	}
}

func removeCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		items, err := svc.Remove(c.Request.Context(), userID, c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cartResponse{Success: true, Cart: items})
	}
}

func clearCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		svc.Clear(userID)
		c.Status(http.StatusNoContent)
	}
}
