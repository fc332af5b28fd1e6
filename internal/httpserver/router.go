package httpserver

import (
	"context"
	"log"

	cartsvc "medicart/internal/service/cart"
	checkoutsvc "medicart/internal/service/checkout"
	walletsvc "medicart/internal/service/wallet"

	"medicart/internal/domain"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps holds the services the router dispatches to. Interfaces are
// declared here, on the consumer side, so handler tests can stub them.
type Deps struct {
	CartSvc     CartService
	CheckoutSvc CheckoutService
	OrderSvc    OrderService
	ProductSvc  ProductService
	WalletSvc   WalletService
}

type CartService interface {
	Get(ctx context.Context, userID string) ([]cartsvc.Item, error)
	Add(ctx context.Context, userID, productID string, quantity int, pkg domain.Package) ([]cartsvc.Item, error)
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) ([]cartsvc.Item, error)
	Remove(ctx context.Context, userID, itemID string) ([]cartsvc.Item, error)
	Clear(userID string)
}

type CheckoutService interface {
	PlaceOrder(ctx context.Context, in checkoutsvc.Input) (*domain.Order, error)
}

type OrderService interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	Get(ctx context.Context, userID, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

type WalletService interface {
	Get(ctx context.Context, userID string) (*walletsvc.Summary, error)
	Credit(ctx context.Context, userID, amount, description string) (*domain.Wallet, error)
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = allowedOrigins
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/products", listProductsHandler(deps.ProductSvc))
	router.GET("/products/:id", getProductHandler(deps.ProductSvc))

	router.GET("/cart", getCartHandler(deps.CartSvc))
	router.POST("/cart", addCartItemHandler(deps.CartSvc))
	router.PATCH("/cart/:id", updateCartItemHandler(deps.CartSvc))
	router.DELETE("/cart/:id", removeCartItemHandler(deps.CartSvc))
	router.DELETE("/cart", clearCartHandler(deps.CartSvc))

	router.POST("/orders", placeOrderHandler(deps.CheckoutSvc))
	router.GET("/orders", listOrdersHandler(deps.OrderSvc))
	router.GET("/orders/:id", getOrderHandler(deps.OrderSvc))
	router.PATCH("/admin/orders/:id/status", updateOrderStatusHandler(deps.OrderSvc))

	router.GET("/wallet", getWalletHandler(deps.WalletSvc))
	router.POST("/wallet/credit", creditWalletHandler(deps.WalletSvc))

	return router
}
