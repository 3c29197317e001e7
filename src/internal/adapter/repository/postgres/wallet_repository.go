package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/payza/wallet-backend/src/internal/adapter/repository/repo_interfaces"
	"github.com/payza/wallet-backend/src/internal/commons"
	"github.com/payza/wallet-backend/src/internal/domain"
	"github.com/payza/wallet-backend/src/internal/logger"
	"github.com/shopspring/decimal"
)

type WalletRepository struct {
	db *sql.DB
}

func NewWalletRepository(db *sql.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// GetActiveForUpdate takes an exclusive row lock for the remainder of q's
// transaction, serializing debits against the same wallet.
func (r *WalletRepository) GetActiveForUpdate(ctx context.Context, q repo_interfaces.Querier, userID, currency string) (domain.Wallet, error) {
	const query = `
SELECT id, user_id, currency, balance, status, created_at, updated_at
FROM wallets
WHERE user_id = $1 AND currency = $2 AND status = 'active'
LIMIT 1
FOR UPDATE`

	var wallet domain.Wallet
	if err := q.QueryRowContext(ctx, query, userID, currency).Scan(
		&wallet.ID,
		&wallet.UserID,
		&wallet.Currency,
		&wallet.Balance,
		&wallet.Status,
		&wallet.CreatedAt,
		&wallet.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.Wallet{}, commons.ErrRecordNotFound
		}
		logger.Error("wallet repository get for update failed", err, logger.Fields{
			"userId":   userID,
			"currency": currency,
		})
		return domain.Wallet{}, fmt.Errorf("get wallet for update: %w", err)
	}

	return wallet, nil
}

func (r *WalletRepository) Debit(ctx context.Context, q repo_interfaces.Querier, walletID string, amount decimal.Decimal) error {
	const query = `
UPDATE wallets
SET balance = balance - $2::numeric,
    updated_at = NOW()
WHERE id = $1`

	result, err := q.ExecContext(ctx, query, walletID, amount)
	if err != nil {
		logger.Error("wallet repository debit failed", err, logger.Fields{
			"walletId": walletID,
			"amount":   amount,
		})
		return fmt.Errorf("debit wallet: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("debit wallet rows affected: %w", err)
	}
	if rows == 0 {
		return commons.ErrRecordNotFound
	}

	return nil
}

func (r *WalletRepository) CreateDefaults(ctx context.Context, q repo_interfaces.Querier, userID string, currencies []string) error {
	const query = `
INSERT INTO wallets (user_id, currency, balance, status)
VALUES ($1, $2, 0, 'active')
ON CONFLICT (user_id, currency) DO NOTHING`

	for _, currency := range currencies {
		if _, err := q.ExecContext(ctx, query, userID, currency); err != nil {
			logger.Error("wallet repository create default failed", err, logger.Fields{
				"userId":   userID,
				"currency": currency,
			})
			return fmt.Errorf("create default wallet %s: %w", currency, err)
		}
	}

	return nil
}

func (r *WalletRepository) ListByUser(ctx context.Context, userID string) ([]domain.Wallet, error) {
	const query = `
SELECT id, user_id, currency, balance, status, created_at, updated_at
FROM wallets
WHERE user_id = $1
ORDER BY currency`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		logger.Error("wallet repository list failed", err, logger.Fields{
			"userId": userID,
		})
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		var wallet domain.Wallet
		if err := rows.Scan(
			&wallet.ID,
			&wallet.UserID,
			&wallet.Currency,
			&wallet.Balance,
			&wallet.Status,
			&wallet.CreatedAt,
			&wallet.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan wallet: %w", err)
		}
		wallets = append(wallets, wallet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallets: %w", err)
	}

	return wallets, nil
}
