package models

import (
	"errors"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/payza/wallet-backend/src/internal/currency"
	"github.com/payza/wallet-backend/src/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	recipientPattern      = regexp.MustCompile(`^[\pL\pN\s@+_.\-():#]+$`)
	currencyPattern       = regexp.MustCompile(`^[A-Za-z]{2,10}$`)
	idempotencyKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{8,128}$`)
)

var maxTransferAmount = decimal.NewFromInt(10_000_000)

type CreateTransactionRequest struct {
	RecipientIdentifier string          `json:"recipientIdentifier"`
	SourceCurrency      string          `json:"sourceCurrency"`
	Amount              decimal.Decimal `json:"amount"`
}

func (r CreateTransactionRequest) Validate() error {
	var errs []string

	recipient := strings.TrimSpace(r.RecipientIdentifier)
	if len(recipient) < 2 || len(recipient) > 255 {
		errs = append(errs, "recipientIdentifier must be between 2 and 255 characters")
	} else if !recipientPattern.MatchString(recipient) {
		errs = append(errs, "recipientIdentifier contains invalid characters")
	}

	code := currency.Normalize(r.SourceCurrency)
	if !currencyPattern.MatchString(code) {
		errs = append(errs, "sourceCurrency must be 2 to 10 letters")
	} else if !currency.IsSupported(code) {
		errs = append(errs, "sourceCurrency is not supported")
	}

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	} else if r.Amount.GreaterThan(maxTransferAmount) {
		errs = append(errs, "amount exceeds the maximum transfer size")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// ValidateIdempotencyKey checks the documented Idempotency-Key header format.
// An absent key is valid; every request is then treated as unique.
func ValidateIdempotencyKey(key string) error {
	if key == "" {
		return nil
	}
	if !idempotencyKeyPattern.MatchString(key) {
		return errors.New("Idempotency-Key must be 8 to 128 characters of [A-Za-z0-9._:-]")
	}
	return nil
}

type TransactionResponse struct {
	ID                  string          `json:"id"`
	RecipientIdentifier string          `json:"recipientIdentifier"`
	SourceCurrency      string          `json:"sourceCurrency"`
	Amount              decimal.Decimal `json:"amount"`
	FeeAmount           decimal.Decimal `json:"feeAmount"`
	NetAmount           decimal.Decimal `json:"netAmount"`
	Status              string          `json:"status"`
	CreatedAt           time.Time       `json:"createdAt"`
}

func NewTransactionResponse(transaction domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                  transaction.ID,
		RecipientIdentifier: transaction.RecipientIdentifier,
		SourceCurrency:      transaction.SourceCurrency,
		Amount:              transaction.Amount,
		FeeAmount:           transaction.FeeAmount,
		NetAmount:           transaction.NetAmount,
		Status:              string(transaction.Status),
		CreatedAt:           transaction.CreatedAt,
	}
}

type CreateTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Reused      bool                `json:"reused"`
}

type ListTransactionsQuery struct {
	Limit    int
	Offset   int
	Status   domain.TransactionStatus
	Currency string
	Search   string
	From     *time.Time
	To       *time.Time
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
	maxListOffset    = 5000
	maxDateRange     = 366 * 24 * time.Hour
)

// ParseListTransactionsQuery validates and normalizes the listing query
// string. The "to" date is inclusive: the returned bound is the start of the
// following day and the repository filters with created_at < bound.
func ParseListTransactionsQuery(values url.Values) (ListTransactionsQuery, error) {
	query := ListTransactionsQuery{Limit: defaultListLimit}

	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxListLimit {
			return ListTransactionsQuery{}, errors.New("limit must be an integer between 1 and 100")
		}
		query.Limit = limit
	}

	if raw := strings.TrimSpace(values.Get("offset")); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 || offset > maxListOffset {
			return ListTransactionsQuery{}, errors.New("offset must be an integer between 0 and 5000")
		}
		query.Offset = offset
	}

	if raw := strings.TrimSpace(values.Get("status")); raw != "" {
		status := domain.TransactionStatus(raw)
		if !status.Valid() {
			return ListTransactionsQuery{}, errors.New("status must be one of pending, processing, success, failed")
		}
		query.Status = status
	}

	if raw := strings.TrimSpace(values.Get("sourceCurrency")); raw != "" {
		if !currencyPattern.MatchString(raw) {
			return ListTransactionsQuery{}, errors.New("sourceCurrency must be 2 to 10 letters")
		}
		query.Currency = currency.Normalize(raw)
	}

	if raw := strings.TrimSpace(values.Get("search")); raw != "" {
		if len(raw) < 2 || len(raw) > 120 || !recipientPattern.MatchString(raw) {
			return ListTransactionsQuery{}, errors.New("search must be 2 to 120 valid characters")
		}
		query.Search = raw
	}

	if raw := strings.TrimSpace(values.Get("from")); raw != "" {
		from, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return ListTransactionsQuery{}, errors.New("from must be a YYYY-MM-DD date")
		}
		query.From = &from
	}

	if raw := strings.TrimSpace(values.Get("to")); raw != "" {
		to, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return ListTransactionsQuery{}, errors.New("to must be a YYYY-MM-DD date")
		}
		bound := to.Add(24 * time.Hour)
		query.To = &bound
	}

	if query.From != nil && query.To != nil {
		if query.To.Before(*query.From) {
			return ListTransactionsQuery{}, errors.New("from date must be earlier than or equal to to date")
		}
		if query.To.Sub(*query.From) > maxDateRange+24*time.Hour {
			return ListTransactionsQuery{}, errors.New("date range is too large")
		}
	}

	return query, nil
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
	HasMore      bool                  `json:"hasMore"`
}
