package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"medicart/internal/cartstore"
	"medicart/internal/config"
	"medicart/internal/db"
	"medicart/internal/httpserver"
	orderrepo "medicart/internal/repository/order"
	productrepo "medicart/internal/repository/product"
	walletrepo "medicart/internal/repository/wallet"
	cartsvc "medicart/internal/service/cart"
	checkoutsvc "medicart/internal/service/checkout"
	ordersvc "medicart/internal/service/order"
	productsvc "medicart/internal/service/product"
	walletsvc "medicart/internal/service/wallet"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	products := productrepo.NewPostgres(dbpool, logger)
	orders := orderrepo.NewPostgres(dbpool, logger)
	wallets := walletrepo.NewPostgres(dbpool, logger)

	carts := cartstore.New()
	cartService := cartsvc.New(carts, products)
	checkoutService := checkoutsvc.New(orders, cartService, logger)
	orderService := ordersvc.New(orders)
	productService := productsvc.New(products)
	walletService := walletsvc.New(wallets)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CartSvc:     cartService,
		CheckoutSvc: checkoutService,
		OrderSvc:    orderService,
		ProductSvc:  productService,
		WalletSvc:   walletService,
	}, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
