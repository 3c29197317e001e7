package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/payza/wallet-backend/src/internal/adapter/repository/repo_interfaces"
	"github.com/payza/wallet-backend/src/internal/commons"
	"github.com/payza/wallet-backend/src/internal/domain"
	"github.com/payza/wallet-backend/src/internal/logger"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, q repo_interfaces.Querier, user domain.User) (domain.User, error) {
	const query = `
INSERT INTO users (full_name, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at`

	if err := q.QueryRowContext(
		ctx,
		query,
		user.FullName,
		user.Email,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		logger.Error("user repository create failed", err, logger.Fields{
			"email": user.Email,
		})
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const query = `
SELECT id, full_name, email, password_hash, created_at, updated_at
FROM users
WHERE email = $1
LIMIT 1`

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	const query = `
SELECT id, full_name, email, password_hash, created_at, updated_at
FROM users
WHERE id = $1
LIMIT 1`

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) scanUser(row *sql.Row) (domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.User{}, commons.ErrRecordNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
