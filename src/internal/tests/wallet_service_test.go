package services_test

import (
	"context"
	"testing"

	"github.com/payza/wallet-backend/src/internal/domain"
	"github.com/payza/wallet-backend/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func TestWalletServiceBalances(t *testing.T) {
	wallets := &fakeWalletRepo{userWallets: []domain.Wallet{
		{ID: "w1", Currency: "USD", Balance: decimal.RequireFromString("120.50"), Status: domain.WalletStatusActive},
		{ID: "w2", Currency: "BTC", Balance: decimal.RequireFromString("0.25"), Status: domain.WalletStatusActive},
	}}
	svc := services.NewWalletService(wallets, &fakeTransactionRepo{})

	response, err := svc.Balances(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.Data == nil || len(*response.Data) != 2 {
		t.Fatalf("expected 2 balances, got %v", response.Data)
	}
	rows := *response.Data
	if rows[0].Currency != "USD" || !rows[0].Amount.Equal(decimal.RequireFromString("120.50")) {
		t.Fatalf("unexpected first balance: %+v", rows[0])
	}
}

func TestWalletServiceOverviewGroupsAndConverts(t *testing.T) {
	wallets := &fakeWalletRepo{userWallets: []domain.Wallet{
		{ID: "w1", Currency: "USD", Balance: decimal.RequireFromString("100"), Status: domain.WalletStatusActive},
		{ID: "w2", Currency: "UZS", Balance: decimal.RequireFromString("126000"), Status: domain.WalletStatusActive},
		{ID: "w3", Currency: "BTC", Balance: decimal.RequireFromString("0.001"), Status: domain.WalletStatusActive},
	}}
	transactions := &fakeTransactionRepo{
		listRows: []domain.Transaction{
			{ID: "t1", RecipientIdentifier: "bob@example.com", SourceCurrency: "USD",
				Amount: decimal.RequireFromString("25"), Status: domain.TransactionStatusSuccess},
		},
		listTotal: 1,
	}
	svc := services.NewWalletService(wallets, transactions)

	response, err := svc.Overview(context.Background(), "user-1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data := response.Data
	if data == nil {
		t.Fatal("expected overview data")
	}

	if len(data.TraditionalBalances) != 2 {
		t.Fatalf("expected 2 fiat balances, got %d", len(data.TraditionalBalances))
	}
	if len(data.CryptoBalances) != 1 || data.CryptoBalances[0].Currency != "BTC" {
		t.Fatalf("expected BTC under crypto balances, got %v", data.CryptoBalances)
	}

	if data.Summary.TotalBalanceUSD.LessThanOrEqual(decimal.RequireFromString("100")) {
		t.Fatalf("total %s should exceed the bare USD balance", data.Summary.TotalBalanceUSD)
	}
	if data.Summary.TotalBalanceUSD.Exponent() < -2 {
		t.Fatalf("total %s must be rounded to cents", data.Summary.TotalBalanceUSD)
	}

	if len(data.RecentTransactions) != 1 {
		t.Fatalf("expected 1 recent transaction, got %d", len(data.RecentTransactions))
	}
	recent := data.RecentTransactions[0]
	if recent.Type != "send" || recent.Currency != "USD" {
		t.Fatalf("unexpected recent transaction: %+v", recent)
	}
}
