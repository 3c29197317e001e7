package services

import (
	"context"
	"errors"
	"strings"

	"github.com/payza/wallet-backend/src/internal/adapter/http/models"
	"github.com/payza/wallet-backend/src/internal/adapter/repository/repo_interfaces"
	"github.com/payza/wallet-backend/src/internal/commons"
	"github.com/payza/wallet-backend/src/internal/currency"
	"github.com/payza/wallet-backend/src/internal/domain"
	"github.com/payza/wallet-backend/src/internal/logger"
	"github.com/payza/wallet-backend/src/internal/usecase/service_interfaces"
	"github.com/lib/pq"
)

var _ service_interfaces.TransferService = (*TransferService)(nil)

// TransferService coordinates one money movement inside a single database
// transaction: idempotency fast path, locked wallet read, balance check, fee
// computation, ledger insert, debit, audit events, commit. Any failure rolls
// the whole unit of work back; nothing partial ever persists.
type TransferService struct {
	txManager       repo_interfaces.TxManager
	walletRepo      repo_interfaces.WalletRepository
	transactionRepo repo_interfaces.TransactionRepository
	eventRepo       repo_interfaces.TransactionEventRepository
	feesService     service_interfaces.FeesService
}

func NewTransferService(
	txManager repo_interfaces.TxManager,
	walletRepo repo_interfaces.WalletRepository,
	transactionRepo repo_interfaces.TransactionRepository,
	eventRepo repo_interfaces.TransactionEventRepository,
	feesService service_interfaces.FeesService,
) *TransferService {
	return &TransferService{
		txManager:       txManager,
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		eventRepo:       eventRepo,
		feesService:     feesService,
	}
}

func (s *TransferService) CreateTransfer(ctx context.Context, userID string, req models.CreateTransactionRequest, idempotencyKey string) (commons.Response[models.CreateTransactionResponse], error) {
	logger.Info("transfer service create transfer request", logger.Fields{
		"userId":  userID,
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		transfersTotal.WithLabelValues(outcomeRejected).Inc()
		return commons.ErrorResponse[models.CreateTransactionResponse]("validation failed", err.Error()), err
	}

	sourceCurrency := currency.Normalize(req.SourceCurrency)
	recipient := strings.TrimSpace(req.RecipientIdentifier)
	key := strings.TrimSpace(idempotencyKey)

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		transfersTotal.WithLabelValues(outcomeFailed).Inc()
		return commons.ErrorResponse[models.CreateTransactionResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if key != "" {
		existing, lookupErr := s.transactionRepo.FindByIdempotencyKey(ctx, tx, userID, key)
		if lookupErr == nil {
			if err = tx.Commit(); err != nil {
				transfersTotal.WithLabelValues(outcomeFailed).Inc()
				return commons.ErrorResponse[models.CreateTransactionResponse]("failed to process transfer", "Unable to process transfer right now"), err
			}
			transfersTotal.WithLabelValues(outcomeReused).Inc()
			return s.reusedResponse(existing), nil
		}
		if !errors.Is(lookupErr, commons.ErrRecordNotFound) {
			err = lookupErr
			transfersTotal.WithLabelValues(outcomeFailed).Inc()
			return commons.ErrorResponse[models.CreateTransactionResponse]("failed to process transfer", "Unable to process transfer right now"), err
		}
	}

	wallet, err := s.walletRepo.GetActiveForUpdate(ctx, tx, userID, sourceCurrency)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			err = commons.ErrWalletNotFound
			transfersTotal.WithLabelValues(outcomeRejected).Inc()
			return commons.ErrorResponse[models.CreateTransactionResponse](commons.ErrWalletNotFound.Error()), err
		}
		transfersTotal.WithLabelValues(outcomeFailed).Inc()
		return commons.ErrorResponse[models.CreateTransactionResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	if wallet.Balance.LessThan(req.Amount) {
		err = commons.ErrInsufficientBalance
		transfersTotal.WithLabelValues(outcomeRejected).Inc()
		return commons.ErrorResponse[models.CreateTransactionResponse](commons.ErrInsufficientBalance.Error()), err
	}

	fee, net, err := s.feesService.Compute(req.Amount, sourceCurrency)
	if err != nil {
		transfersTotal.WithLabelValues(outcomeRejected).Inc()
		return commons.ErrorResponse[models.CreateTransactionResponse](commons.ErrInvalidAmount.Error()), err
	}

	record := domain.Transaction{
		SenderUserID:        userID,
		RecipientIdentifier: recipient,
		SourceCurrency:      sourceCurrency,
		DestinationCurrency: sourceCurrency,
		Amount:              req.Amount,
		FeeAmount:           fee,
		NetAmount:           net,
		Status:              domain.TransactionStatusSuccess,
		SourceWalletID:      wallet.ID,
	}
	if key != "" {
		record.IdempotencyKey = &key
	}

	created, err := s.transactionRepo.Create(ctx, tx, record)
	if err != nil {
		if isUniqueViolation(err) && key != "" {
			// Lost the insert race to a concurrent request with the same
			// key. The failed unit of work is useless now; resolve the
			// winner's row on the pool instead.
			_ = tx.Rollback()
			existing, lookupErr := s.transactionRepo.FindByIdempotencyKey(ctx, nil, userID, key)
			if lookupErr == nil {
				err = nil
				transfersTotal.WithLabelValues(outcomeReused).Inc()
				return s.reusedResponse(existing), nil
			}
			logger.Error("transfer service duplicate resolution failed", lookupErr, logger.Fields{
				"userId": userID,
			})
		}
		transfersTotal.WithLabelValues(outcomeFailed).Inc()
		return commons.ErrorResponse[models.CreateTransactionResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	if err = s.walletRepo.Debit(ctx, tx, wallet.ID, req.Amount); err != nil {
		transfersTotal.WithLabelValues(outcomeFailed).Inc()
		return commons.ErrorResponse[models.CreateTransactionResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	if err = s.eventRepo.Append(ctx, tx, created.ID, domain.EventTransactionCreated, map[string]any{
		"userId":   userID,
		"amount":   req.Amount,
		"currency": sourceCurrency,
	}); err != nil {
		transfersTotal.WithLabelValues(outcomeFailed).Inc()
		return commons.ErrorResponse[models.CreateTransactionResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}
	if err = s.eventRepo.Append(ctx, tx, created.ID, domain.EventTransactionCompleted, map[string]any{
		"status": string(domain.TransactionStatusSuccess),
	}); err != nil {
		transfersTotal.WithLabelValues(outcomeFailed).Inc()
		return commons.ErrorResponse[models.CreateTransactionResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	if err = tx.Commit(); err != nil {
		transfersTotal.WithLabelValues(outcomeFailed).Inc()
		return commons.ErrorResponse[models.CreateTransactionResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	logger.Info("transfer service create transfer success", logger.Fields{
		"transactionId": created.ID,
		"userId":        userID,
		"currency":      sourceCurrency,
	})

	transfersTotal.WithLabelValues(outcomeCreated).Inc()
	response := models.CreateTransactionResponse{
		Transaction: models.NewTransactionResponse(created),
		Reused:      false,
	}
	return commons.SuccessResponse("transaction created", response), nil
}

func (s *TransferService) ListTransfers(ctx context.Context, userID string, query models.ListTransactionsQuery) (commons.Response[models.ListTransactionsResponse], error) {
	filter := repo_interfaces.TransactionFilter{
		Status:   query.Status,
		Currency: query.Currency,
		Search:   query.Search,
		From:     query.From,
		To:       query.To,
	}
	page := repo_interfaces.Page{Limit: query.Limit, Offset: query.Offset}

	transactions, total, err := s.transactionRepo.List(ctx, userID, filter, page)
	if err != nil {
		logger.Error("transfer service list failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[models.ListTransactionsResponse]("failed to list transactions", "Unable to fetch transactions right now"), err
	}

	rows := make([]models.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		rows = append(rows, models.NewTransactionResponse(transaction))
	}

	response := models.ListTransactionsResponse{
		Transactions: rows,
		Total:        total,
		Limit:        query.Limit,
		Offset:       query.Offset,
		HasMore:      query.Offset+query.Limit < total,
	}
	return commons.SuccessResponse("transactions fetched", response), nil
}

func (s *TransferService) GetTransfer(ctx context.Context, userID, id string) (commons.Response[models.TransactionResponse], error) {
	transaction, err := s.transactionRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransactionResponse]("Transaction not found"), err
		}
		logger.Error("transfer service get failed", err, logger.Fields{
			"userId":        userID,
			"transactionId": id,
		})
		return commons.ErrorResponse[models.TransactionResponse]("failed to get transaction", "Unable to fetch transaction right now"), err
	}

	return commons.SuccessResponse("transaction fetched", models.NewTransactionResponse(transaction)), nil
}

func (s *TransferService) reusedResponse(existing domain.Transaction) commons.Response[models.CreateTransactionResponse] {
	logger.Info("transfer service reusing prior transaction", logger.Fields{
		"transactionId": existing.ID,
		"userId":        existing.SenderUserID,
	})
	response := models.CreateTransactionResponse{
		Transaction: models.NewTransactionResponse(existing),
		Reused:      true,
	}
	return commons.SuccessResponse("transaction already processed", response)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "23505"
	}
	return false
}
