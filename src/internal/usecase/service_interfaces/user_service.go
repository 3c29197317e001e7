package service_interfaces

import (
	"context"

	"github.com/payza/wallet-backend/src/internal/adapter/http/models"
	"github.com/payza/wallet-backend/src/internal/commons"
)

type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (commons.Response[models.AuthResponse], error)
	Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.AuthResponse], error)
}
