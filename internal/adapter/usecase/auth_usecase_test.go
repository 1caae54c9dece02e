package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"adrewards/internal/config/configs"
	"adrewards/internal/core/domain"
	"adrewards/internal/core/port"
	"adrewards/internal/core/port/mocks"
)

var testAuthConfig = configs.Auth{
	Secret:      "0123456789abcdef0123456789abcdef",
	ExpireHours: 1,
	BcryptCost:  bcrypt.MinCost,
}

// denyAll is a limiter that rejects every attempt.
type denyAll struct{}

func (denyAll) Allow(context.Context, string) (bool, error) { return false, nil }

func TestRegisterAndIdentify(t *testing.T) {
	users := mocks.NewMockUserRepository(t)

	var created *domain.User
	users.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(ctx context.Context, u *domain.User) { created = u }).
		Return(nil)

	svc := NewAuthUseCase(users, nil, testAuthConfig)
	result, err := svc.Register(context.Background(), "Someone@Example.com", "password123")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected a token")
	}
	if created.Email != "someone@example.com" {
		t.Fatalf("email not normalised: %q", created.Email)
	}
	if created.Role != domain.RoleUser {
		t.Fatalf("role = %q, want user", created.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	users.EXPECT().Get(mock.Anything, created.ID).Return(created, nil)
	user, err := svc.Identify(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("Identify error: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("identified user %q, want %q", user.ID, created.ID)
	}
}

func TestRegisterValidation(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	svc := NewAuthUseCase(users, nil, testAuthConfig)

	var ve port.ValidationError
	if _, err := svc.Register(context.Background(), "not-an-email", "password123"); !errors.As(err, &ve) {
		t.Fatalf("expected validation error for bad email, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "a@b.com", "short"); !errors.As(err, &ve) {
		t.Fatalf("expected validation error for short password, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	stored := &domain.User{ID: "u1", Email: "a@b.com", PasswordHash: string(hash), Role: domain.RoleUser}

	t.Run("correct password", func(t *testing.T) {
		users := mocks.NewMockUserRepository(t)
		users.EXPECT().GetByEmail(mock.Anything, "a@b.com").Return(stored, nil)

		svc := NewAuthUseCase(users, nil, testAuthConfig)
		result, err := svc.Login(context.Background(), "a@b.com", "password123", "1.2.3.4")
		if err != nil {
			t.Fatalf("Login error: %v", err)
		}
		if result.User.ID != "u1" || result.Token == "" {
			t.Fatalf("unexpected result: %+v", result)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		users := mocks.NewMockUserRepository(t)
		users.EXPECT().GetByEmail(mock.Anything, "a@b.com").Return(stored, nil)

		svc := NewAuthUseCase(users, nil, testAuthConfig)
		if _, err := svc.Login(context.Background(), "a@b.com", "nope-nope", "1.2.3.4"); !errors.Is(err, port.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		users := mocks.NewMockUserRepository(t)
		users.EXPECT().GetByEmail(mock.Anything, "nobody@b.com").Return(nil, nil)

		svc := NewAuthUseCase(users, nil, testAuthConfig)
		if _, err := svc.Login(context.Background(), "nobody@b.com", "password123", "1.2.3.4"); !errors.Is(err, port.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("rate limited", func(t *testing.T) {
		users := mocks.NewMockUserRepository(t)
		svc := NewAuthUseCase(users, denyAll{}, testAuthConfig)
		if _, err := svc.Login(context.Background(), "a@b.com", "password123", "1.2.3.4"); !errors.Is(err, port.ErrRateLimited) {
			t.Fatalf("expected ErrRateLimited, got %v", err)
		}
	})
}

func TestIdentifyRejectsBadTokens(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	svc := NewAuthUseCase(users, nil, testAuthConfig)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Identify(context.Background(), token); !errors.Is(err, port.ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}

	// token signed with a different secret
	other := NewAuthUseCase(users, nil, configs.Auth{Secret: "another-secret-another-secret-00", ExpireHours: 1})
	result, err := other.issue(&domain.User{ID: "u1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}
	if _, err := svc.Identify(context.Background(), result.Token); !errors.Is(err, port.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}
