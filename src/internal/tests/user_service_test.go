package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/payza/wallet-backend/src/internal/adapter/http/models"
	"github.com/payza/wallet-backend/src/internal/adapter/repository/repo_interfaces"
	"github.com/payza/wallet-backend/src/internal/commons"
	"github.com/payza/wallet-backend/src/internal/domain"
	"github.com/payza/wallet-backend/src/internal/usecase/services"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail map[string]domain.User
	created *domain.User
}

func (r *fakeUserRepo) Create(ctx context.Context, q repo_interfaces.Querier, user domain.User) (domain.User, error) {
	user.ID = "10000000-0000-0000-0000-000000000001"
	user.CreatedAt = time.Now().UTC()
	r.created = &user
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if user, ok := r.byEmail[email]; ok {
		return user, nil
	}
	return domain.User{}, commons.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	return domain.User{}, commons.ErrRecordNotFound
}

func newUserService(users *fakeUserRepo, wallets *fakeWalletRepo, tx *fakeTx) *services.UserService {
	return services.NewUserService(
		&fakeTxManager{tx: tx},
		users,
		wallets,
		"test-secret",
		"payza-wallet-backend",
		time.Hour,
	)
}

func TestUserServiceRegisterValidationError(t *testing.T) {
	svc := newUserService(&fakeUserRepo{}, &fakeWalletRepo{}, &fakeTx{})

	_, err := svc.Register(context.Background(), models.RegisterRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty register request")
	}
}

func TestUserServiceRegisterProvisionsDefaultWallets(t *testing.T) {
	users := &fakeUserRepo{}
	wallets := &fakeWalletRepo{}
	tx := &fakeTx{}
	svc := newUserService(users, wallets, tx)

	response, err := svc.Register(context.Background(), models.RegisterRequest{
		FullName: "Alice Example",
		Email:    "Alice@Example.com",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.Data == nil || response.Data.Token == "" {
		t.Fatal("expected an access token in the response")
	}

	if users.created == nil {
		t.Fatal("expected the user to be created")
	}
	if users.created.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", users.created.Email)
	}
	if users.created.PasswordHash == "correct horse battery" {
		t.Fatal("password must never be stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(users.created.PasswordHash), []byte("correct horse battery")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}

	expected := map[string]bool{"USD": true, "UZS": true, "USDT": true, "BTC": true}
	if len(wallets.defaults) != len(expected) {
		t.Fatalf("expected %d default wallets, got %v", len(expected), wallets.defaults)
	}
	for _, code := range wallets.defaults {
		if !expected[code] {
			t.Fatalf("unexpected default wallet currency %q", code)
		}
	}

	if tx.commits != 1 {
		t.Fatalf("user and wallets must be committed together, commits=%d", tx.commits)
	}

	claims := jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(response.Data.Token, &claims, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithIssuer("payza-wallet-backend"))
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Subject != users.created.ID {
		t.Fatalf("token subject %q does not match user %q", claims.Subject, users.created.ID)
	}
}

func TestUserServiceRegisterDuplicateEmail(t *testing.T) {
	users := &fakeUserRepo{byEmail: map[string]domain.User{
		"alice@example.com": {ID: "u1", Email: "alice@example.com"},
	}}
	svc := newUserService(users, &fakeWalletRepo{}, &fakeTx{})

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		FullName: "Alice Example",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	if !errors.Is(err, commons.ErrEmailAlreadyUsed) {
		t.Fatalf("expected email-already-used, got %v", err)
	}
	if users.created != nil {
		t.Fatal("no user may be created for a duplicate email")
	}
}

func TestUserServiceLoginSuccess(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse battery"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	users := &fakeUserRepo{byEmail: map[string]domain.User{
		"alice@example.com": {
			ID:           "u1",
			Email:        "alice@example.com",
			PasswordHash: string(hash),
		},
	}}
	svc := newUserService(users, &fakeWalletRepo{}, &fakeTx{})

	response, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "ALICE@example.com",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.Data == nil || response.Data.Token == "" {
		t.Fatal("expected an access token in the response")
	}
}

func TestUserServiceLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse battery"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	users := &fakeUserRepo{byEmail: map[string]domain.User{
		"alice@example.com": {ID: "u1", Email: "alice@example.com", PasswordHash: string(hash)},
	}}
	svc := newUserService(users, &fakeWalletRepo{}, &fakeTx{})

	_, err = svc.Login(context.Background(), models.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, commons.ErrInvalidCredentials) {
		t.Fatalf("expected invalid-credentials, got %v", err)
	}
}

func TestUserServiceLoginUnknownEmail(t *testing.T) {
	svc := newUserService(&fakeUserRepo{}, &fakeWalletRepo{}, &fakeTx{})

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "irrelevant",
	})
	if !errors.Is(err, commons.ErrInvalidCredentials) {
		t.Fatalf("expected invalid-credentials, got %v", err)
	}
}
