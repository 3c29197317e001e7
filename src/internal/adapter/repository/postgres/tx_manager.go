package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/payza/wallet-backend/src/internal/adapter/repository/repo_interfaces"
)

// TxManager hands out units of work from an explicitly injected pool. There
// is no package-level database handle anywhere in this codebase.
type TxManager struct {
	db *sql.DB
}

func NewTxManager(db *sql.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) Begin(ctx context.Context) (repo_interfaces.Tx, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return tx, nil
}
