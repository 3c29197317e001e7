package services

import (
	"context"
	"fmt"

	"github.com/payza/wallet-backend/src/internal/adapter/http/models"
	"github.com/payza/wallet-backend/src/internal/adapter/repository/repo_interfaces"
	"github.com/payza/wallet-backend/src/internal/commons"
	"github.com/payza/wallet-backend/src/internal/currency"
	"github.com/payza/wallet-backend/src/internal/logger"
	"github.com/payza/wallet-backend/src/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

var _ service_interfaces.WalletService = (*WalletService)(nil)

type WalletService struct {
	walletRepo      repo_interfaces.WalletRepository
	transactionRepo repo_interfaces.TransactionRepository
}

func NewWalletService(walletRepo repo_interfaces.WalletRepository, transactionRepo repo_interfaces.TransactionRepository) *WalletService {
	return &WalletService{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *WalletService) Balances(ctx context.Context, userID string) (commons.Response[[]models.WalletBalance], error) {
	wallets, err := s.walletRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("wallet service balances failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[[]models.WalletBalance]("failed to get balances", "Unable to fetch balances right now"), err
	}

	balances := make([]models.WalletBalance, 0, len(wallets))
	for _, wallet := range wallets {
		balances = append(balances, models.WalletBalance{
			ID:       wallet.ID,
			Currency: wallet.Currency,
			Amount:   wallet.Balance,
			Status:   string(wallet.Status),
		})
	}

	return commons.SuccessResponse("balances fetched", balances), nil
}

func (s *WalletService) Overview(ctx context.Context, userID string, recentLimit int) (commons.Response[models.WalletOverviewResponse], error) {
	wallets, err := s.walletRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("wallet service overview balances failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[models.WalletOverviewResponse]("failed to get overview", "Unable to fetch overview right now"), err
	}

	recent, _, err := s.transactionRepo.List(ctx, userID,
		repo_interfaces.TransactionFilter{},
		repo_interfaces.Page{Limit: recentLimit, Offset: 0},
	)
	if err != nil {
		logger.Error("wallet service overview transactions failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[models.WalletOverviewResponse]("failed to get overview", "Unable to fetch overview right now"), err
	}

	var traditional, crypto []models.WalletBalance
	totalUSD := decimal.Zero
	for _, wallet := range wallets {
		balance := models.WalletBalance{
			ID:       wallet.ID,
			Currency: wallet.Currency,
			Amount:   wallet.Balance,
			Status:   string(wallet.Status),
		}
		if currency.IsCrypto(wallet.Currency) {
			crypto = append(crypto, balance)
		} else {
			traditional = append(traditional, balance)
		}
		totalUSD = totalUSD.Add(currency.ToUSD(wallet.Balance, wallet.Currency))
	}

	recentRows := make([]models.RecentTransaction, 0, len(recent))
	for _, transaction := range recent {
		recentRows = append(recentRows, models.RecentTransaction{
			ID:          transaction.ID,
			Type:        "send",
			Description: fmt.Sprintf("Transfer to %s", transaction.RecipientIdentifier),
			Method:      fmt.Sprintf("%s Wallet", transaction.SourceCurrency),
			Date:        transaction.CreatedAt,
			Amount:      transaction.Amount,
			Currency:    transaction.SourceCurrency,
			Status:      string(transaction.Status),
		})
	}

	response := models.WalletOverviewResponse{
		Summary: models.WalletOverviewSummary{
			TotalBalanceUSD: totalUSD.Round(2),
		},
		TraditionalBalances: traditional,
		CryptoBalances:      crypto,
		RecentTransactions:  recentRows,
	}
	return commons.SuccessResponse("overview fetched", response), nil
}
