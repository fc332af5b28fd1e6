package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type creditWalletRequest struct {
	UserID      string `json:"userId"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

func getWalletHandler(svc WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		summary, err := svc.Get(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

func creditWalletHandler(svc WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req creditWalletRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			validationError(c, "invalid request body")
			return
		}
		wallet, err := svc.Credit(c.Request.Context(), req.UserID, req.Amount, req.Description)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, wallet)
	}
}
