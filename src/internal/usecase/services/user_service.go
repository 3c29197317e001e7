package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/payza/wallet-backend/src/internal/adapter/http/models"
	"github.com/payza/wallet-backend/src/internal/adapter/repository/repo_interfaces"
	"github.com/payza/wallet-backend/src/internal/commons"
	"github.com/payza/wallet-backend/src/internal/currency"
	"github.com/payza/wallet-backend/src/internal/domain"
	"github.com/payza/wallet-backend/src/internal/logger"
	"github.com/payza/wallet-backend/src/internal/usecase/service_interfaces"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var _ service_interfaces.UserService = (*UserService)(nil)

type UserService struct {
	txManager  repo_interfaces.TxManager
	userRepo   repo_interfaces.UserRepository
	walletRepo repo_interfaces.WalletRepository
	jwtSecret  []byte
	jwtIssuer  string
	tokenTTL   time.Duration
}

func NewUserService(
	txManager repo_interfaces.TxManager,
	userRepo repo_interfaces.UserRepository,
	walletRepo repo_interfaces.WalletRepository,
	jwtSecret string,
	jwtIssuer string,
	tokenTTL time.Duration,
) *UserService {
	return &UserService{
		txManager:  txManager,
		userRepo:   userRepo,
		walletRepo: walletRepo,
		jwtSecret:  []byte(jwtSecret),
		jwtIssuer:  jwtIssuer,
		tokenTTL:   tokenTTL,
	}
}

// Register creates the user and the fixed initial wallet set in one unit of
// work, so a half-provisioned account can never be observed.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (commons.Response[models.AuthResponse], error) {
	logger.Info("user service register request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.AuthResponse]("validation failed", err.Error()), err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return commons.ErrorResponse[models.AuthResponse](commons.ErrEmailAlreadyUsed.Error()), commons.ErrEmailAlreadyUsed
	} else if !errors.Is(err, commons.ErrRecordNotFound) {
		return commons.ErrorResponse[models.AuthResponse]("failed to register", "Unable to register right now"), err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("user service hash password failed", err, nil)
		return commons.ErrorResponse[models.AuthResponse]("failed to register", "Unable to register right now"), err
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return commons.ErrorResponse[models.AuthResponse]("failed to register", "Unable to register right now"), err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	created, err := s.userRepo.Create(ctx, tx, domain.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return commons.ErrorResponse[models.AuthResponse]("failed to register", "Unable to register right now"), err
	}

	if err = s.walletRepo.CreateDefaults(ctx, tx, created.ID, currency.DefaultWalletCurrencies); err != nil {
		return commons.ErrorResponse[models.AuthResponse]("failed to register", "Unable to register right now"), err
	}

	if err = tx.Commit(); err != nil {
		return commons.ErrorResponse[models.AuthResponse]("failed to register", "Unable to register right now"), err
	}

	token, err := s.signAccessToken(created)
	if err != nil {
		logger.Error("user service sign token failed", err, logger.Fields{
			"userId": created.ID,
		})
		return commons.ErrorResponse[models.AuthResponse]("failed to register", "Unable to register right now"), err
	}

	logger.Info("user service register success", logger.Fields{
		"userId": created.ID,
	})

	return commons.SuccessResponse("registration successful", models.AuthResponse{
		Token: token,
		User:  mapUserResponse(created),
	}), nil
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.AuthResponse], error) {
	logger.Info("user service login request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.AuthResponse]("validation failed", err.Error()), err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AuthResponse](commons.ErrInvalidCredentials.Error()), commons.ErrInvalidCredentials
		}
		return commons.ErrorResponse[models.AuthResponse]("failed to login", "Unable to login right now"), err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return commons.ErrorResponse[models.AuthResponse](commons.ErrInvalidCredentials.Error()), commons.ErrInvalidCredentials
	}

	token, err := s.signAccessToken(user)
	if err != nil {
		logger.Error("user service sign token failed", err, logger.Fields{
			"userId": user.ID,
		})
		return commons.ErrorResponse[models.AuthResponse]("failed to login", "Unable to login right now"), err
	}

	logger.Info("user service login success", logger.Fields{
		"userId": user.ID,
	})

	return commons.SuccessResponse("login successful", models.AuthResponse{
		Token: token,
		User:  mapUserResponse(user),
	}), nil
}

func (s *UserService) signAccessToken(user domain.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		Issuer:    s.jwtIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func mapUserResponse(user domain.User) models.UserResponse {
	return models.UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
