package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"medicart/internal/domain"
	walletsvc "medicart/internal/service/wallet"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type stubWallet struct {
	summary    *walletsvc.Summary
	wallet     *domain.Wallet
	err        error
	lastAmount string
}

func (s *stubWallet) Get(_ context.Context, _ string) (*walletsvc.Summary, error) {
	return s.summary, s.err
}

func (s *stubWallet) Credit(_ context.Context, _, amount, _ string) (*domain.Wallet, error) {
	s.lastAmount = amount
	return s.wallet, s.err
}

func walletRouter(t *testing.T, svc *stubWallet) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return buildRouter(logDiscard(), nil, Deps{WalletSvc: svc}, []string{"http://localhost:3000"})
}

func TestGetWallet(t *testing.T) {
	svc := &stubWallet{summary: &walletsvc.Summary{
		UserID:       "u1",
		Balance:      decimal.RequireFromString("1500"),
		Transactions: []domain.WalletTransaction{},
	}}
	router := walletRouter(t, svc)

	rec := doJSON(t, router, http.MethodGet, "/wallet?userId=u1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got struct {
		UserID  string `json:"userId"`
		Balance string `json:"balance"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.UserID != "u1" || got.Balance != "1500" {
		t.Fatalf("unexpected payload: %+v (%s)", got, rec.Body.String())
	}
}

func TestGetWalletNotFound(t *testing.T) {
	router := walletRouter(t, &stubWallet{err: domain.ErrWalletNotFound})

	rec := doJSON(t, router, http.MethodGet, "/wallet?userId=ghost", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp := decodeError(t, rec.Body.Bytes()); resp.Error != "wallet_not_found" {
		t.Fatalf("expected wallet_not_found, got %q", resp.Error)
	}
}

func TestCreditWallet(t *testing.T) {
	svc := &stubWallet{wallet: &domain.Wallet{UserID: "u1", Balance: decimal.RequireFromString("250")}}
	router := walletRouter(t, svc)

	rec := doJSON(t, router, http.MethodPost, "/wallet/credit",
		`{"userId":"u1","amount":"250","description":"affiliate payout"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastAmount != "250" {
		t.Fatalf("amount not forwarded: %q", svc.lastAmount)
	}
}

func TestCreditWalletBadAmount(t *testing.T) {
	router := walletRouter(t, &stubWallet{err: domain.ErrInvalidAmount})

	rec := doJSON(t, router, http.MethodPost, "/wallet/credit",
		`{"userId":"u1","amount":"-10"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp := decodeError(t, rec.Body.Bytes()); resp.Error != "invalid_amount" {
		t.Fatalf("expected invalid_amount, got %q", resp.Error)
	}
}
