package repo_interfaces

import (
	"context"

	"github.com/payza/wallet-backend/src/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, q Querier, user domain.User) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
}
