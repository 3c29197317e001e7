package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/payza/wallet-backend/src/internal/adapter/repository/repo_interfaces"
	"github.com/payza/wallet-backend/src/internal/commons"
	"github.com/payza/wallet-backend/src/internal/domain"
	"github.com/payza/wallet-backend/src/internal/logger"
)

const transactionColumns = `id,
       sender_user_id,
       recipient_identifier,
       source_currency,
       destination_currency,
       amount,
       fee_amount,
       net_amount,
       status,
       source_wallet_id,
       idempotency_key,
       created_at`

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, q repo_interfaces.Querier, transaction domain.Transaction) (domain.Transaction, error) {
	logger.Info("transaction repository create", logger.Fields{
		"senderUserId":        transaction.SenderUserID,
		"recipientIdentifier": transaction.RecipientIdentifier,
		"sourceCurrency":      transaction.SourceCurrency,
		"status":              transaction.Status,
	})

	const query = `
INSERT INTO transactions (
	sender_user_id,
	recipient_identifier,
	source_currency,
	destination_currency,
	amount,
	fee_amount,
	net_amount,
	status,
	source_wallet_id,
	idempotency_key
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
)
RETURNING id, created_at`

	if err := q.QueryRowContext(
		ctx,
		query,
		transaction.SenderUserID,
		transaction.RecipientIdentifier,
		transaction.SourceCurrency,
		transaction.DestinationCurrency,
		transaction.Amount,
		transaction.FeeAmount,
		transaction.NetAmount,
		transaction.Status,
		transaction.SourceWalletID,
		transaction.IdempotencyKey,
	).Scan(&transaction.ID, &transaction.CreatedAt); err != nil {
		logger.Error("transaction repository create failed", err, logger.Fields{
			"senderUserId": transaction.SenderUserID,
		})
		return domain.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	logger.Info("transaction repository create success", logger.Fields{
		"transactionId": transaction.ID,
		"senderUserId":  transaction.SenderUserID,
	})

	return transaction, nil
}

// FindByIdempotencyKey runs on q when a unit of work is open, or on the pool
// when q is nil (the post-conflict fallback path).
func (r *TransactionRepository) FindByIdempotencyKey(ctx context.Context, q repo_interfaces.Querier, userID, key string) (domain.Transaction, error) {
	if q == nil {
		q = r.db
	}

	query := `
SELECT ` + transactionColumns + `
FROM transactions
WHERE sender_user_id = $1 AND idempotency_key = $2
LIMIT 1`

	transaction, err := scanTransaction(q.QueryRowContext(ctx, query, userID, key))
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Transaction{}, commons.ErrRecordNotFound
		}
		logger.Error("transaction repository idempotency lookup failed", err, logger.Fields{
			"senderUserId": userID,
		})
		return domain.Transaction{}, fmt.Errorf("find transaction by idempotency key: %w", err)
	}

	return transaction, nil
}

func (r *TransactionRepository) List(ctx context.Context, userID string, filter repo_interfaces.TransactionFilter, page repo_interfaces.Page) ([]domain.Transaction, int, error) {
	where := []string{"sender_user_id = $1"}
	args := []any{userID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Currency != "" {
		args = append(args, filter.Currency)
		where = append(where, fmt.Sprintf("source_currency = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, fmt.Sprintf("recipient_identifier ILIKE $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where = append(where, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where = append(where, fmt.Sprintf("created_at < $%d", len(args)))
	}

	condition := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM transactions WHERE ` + condition
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		logger.Error("transaction repository count failed", err, logger.Fields{
			"senderUserId": userID,
		})
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	args = append(args, page.Limit)
	limitPos := len(args)
	args = append(args, page.Offset)
	offsetPos := len(args)

	// id breaks created_at ties so repeated reads page deterministically.
	listQuery := fmt.Sprintf(`
SELECT %s
FROM transactions
WHERE %s
ORDER BY created_at DESC, id DESC
LIMIT $%d OFFSET $%d`, transactionColumns, condition, limitPos, offsetPos)

	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		logger.Error("transaction repository list failed", err, logger.Fields{
			"senderUserId": userID,
		})
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transactions: %w", err)
	}

	return transactions, total, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, userID, id string) (domain.Transaction, error) {
	query := `
SELECT ` + transactionColumns + `
FROM transactions
WHERE sender_user_id = $1 AND id = $2
LIMIT 1`

	transaction, err := scanTransaction(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Transaction{}, commons.ErrRecordNotFound
		}
		logger.Error("transaction repository get failed", err, logger.Fields{
			"senderUserId":  userID,
			"transactionId": id,
		})
		return domain.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}

	return transaction, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (domain.Transaction, error) {
	var (
		transaction    domain.Transaction
		idempotencyKey sql.NullString
	)

	if err := row.Scan(
		&transaction.ID,
		&transaction.SenderUserID,
		&transaction.RecipientIdentifier,
		&transaction.SourceCurrency,
		&transaction.DestinationCurrency,
		&transaction.Amount,
		&transaction.FeeAmount,
		&transaction.NetAmount,
		&transaction.Status,
		&transaction.SourceWalletID,
		&idempotencyKey,
		&transaction.CreatedAt,
	); err != nil {
		return domain.Transaction{}, err
	}

	if idempotencyKey.Valid {
		value := idempotencyKey.String
		transaction.IdempotencyKey = &value
	}

	return transaction, nil
}
