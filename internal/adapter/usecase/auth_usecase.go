package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"adrewards/internal/config/configs"
	"adrewards/internal/core/domain"
	"adrewards/internal/core/port"
)

// LoginLimiter bounds login attempts per key. A limiter that always
// allows is a valid implementation.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// tokenClaims is the payload of issued bearer tokens.
type tokenClaims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthUseCase registers users, verifies credentials and issues HS256
// bearer tokens. It is the identity provider behind the Authorization
// header: Identify resolves a presented token back to its user.
type AuthUseCase struct {
	users   port.UserRepository
	limiter LoginLimiter
	cfg     configs.Auth

	now func() time.Time
}

// NewAuthUseCase creates the authenticator. limiter may be nil.
func NewAuthUseCase(users port.UserRepository, limiter LoginLimiter, cfg configs.Auth) *AuthUseCase {
	return &AuthUseCase{users: users, limiter: limiter, cfg: cfg, now: time.Now}
}

// Register creates a user with a bcrypt-hashed password and returns a
// fresh token. Email uniqueness is enforced by the repository.
func (u *AuthUseCase) Register(ctx context.Context, email, password string) (*port.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, port.ValidationError("a valid email is required")
	}
	if len(password) < 8 {
		return nil, port.ValidationError("password must be at least 8 characters")
	}

	cost := u.cfg.BcryptCost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    u.now(),
	}
	if err = u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return u.issue(user)
}

// Login verifies credentials and returns a fresh token. Attempts are
// rate limited per email+IP before the password check, so a blocked
// caller learns nothing about whether the account exists.
func (u *AuthUseCase) Login(ctx context.Context, email, password, ip string) (*port.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if u.limiter != nil {
		ok, err := u.limiter.Allow(ctx, email+":"+ip)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, port.ErrRateLimited
		}
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, port.ErrInvalidCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, port.ErrInvalidCredentials
	}
	return u.issue(user)
}

// Identify resolves a bearer token to its user. The user row is loaded
// on every call so revoked accounts stop authenticating immediately.
func (u *AuthUseCase) Identify(ctx context.Context, token string) (*domain.User, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := parser.ParseWithClaims(token, &tokenClaims{}, func(*jwt.Token) (interface{}, error) {
		return []byte(u.cfg.Secret), nil
	})
	if err != nil {
		return nil, port.ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, port.ErrInvalidToken
	}

	user, err := u.users.Get(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, port.ErrInvalidToken
	}
	return user, nil
}

func (u *AuthUseCase) issue(user *domain.User) (*port.AuthResult, error) {
	now := u.now()
	expiresAt := now.Add(u.cfg.TokenTTL())
	claims := tokenClaims{
		UserID: user.ID,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.cfg.Secret))
	if err != nil {
		return nil, err
	}
	return &port.AuthResult{User: user, Token: signed, ExpiresAt: expiresAt}, nil
}
