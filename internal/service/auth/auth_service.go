// Package auth handles sign-up, login and password recovery, and issues the
// bearer tokens the API accepts.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	Login(ctx context.Context, input LoginInput) (*Token, error)
	ForgotPassword(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	ParseToken(token string) (*Claims, error)
}

// Accounts is the part of the user service auth builds on.
type Accounts interface {
	Save(ctx context.Context, user *domain.User) error
	HashPassword(plain string) (string, error)
}

type Credentials interface {
	FindByEmailActive(ctx context.Context, email string) (*domain.User, error)
	SetPassword(ctx context.Context, id int64, hash string, forgotten bool) error
}

type Cooldown interface {
	AcquireResetCooldown(ctx context.Context, email string, ttl time.Duration) (bool, error)
	ReleaseResetCooldown(ctx context.Context, email string) error
}

type ResetNotifier interface {
	NotifyPasswordReset(ctx context.Context, user *domain.User, temporaryPassword string) error
}

type SignupInput struct {
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Name     string     `json:"name"`
	IDNumber string     `json:"idNumber"`
	Birthday *time.Time `json:"birthday,omitempty"`
	Phone    *string    `json:"phone,omitempty"`
	Gender   *string    `json:"gender,omitempty"`
	Address  *string    `json:"address,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordInput struct {
	Email       string `json:"email"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type Token struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        *domain.User `json:"user"`
}

type Claims struct {
	UserID int64       `json:"uid"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

type AuthService struct {
	accounts      Accounts
	credentials   Credentials
	cooldown      Cooldown
	notifier      ResetNotifier
	secret        []byte
	tokenTTL      time.Duration
	resetCooldown time.Duration
	log           logger.Logger
	now           func() time.Time
}

type Option func(*AuthService)

func WithLogger(log logger.Logger) Option {
	return func(s *AuthService) {
		s.log = log
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *AuthService) {
		s.now = now
	}
}

func NewAuthService(
	accounts Accounts,
	credentials Credentials,
	cooldown Cooldown,
	notifier ResetNotifier,
	secret string,
	tokenTTL, resetCooldown time.Duration,
	opts ...Option,
) *AuthService {
	s := &AuthService{
		accounts:      accounts,
		credentials:   credentials,
		cooldown:      cooldown,
		notifier:      notifier,
		secret:        []byte(secret),
		tokenTTL:      tokenTTL,
		resetCooldown: resetCooldown,
		log:           logger.NewNop(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Signup always creates a USER account.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	user := &domain.User{
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
		Name:     input.Name,
		IDNumber: input.IDNumber,
		Birthday: input.Birthday,
		Phone:    input.Phone,
		Address:  input.Address,
		Role:     domain.RoleUser,
	}
	if input.Gender != nil {
		g := domain.Gender(*input.Gender)
		user.Gender = &g
	}
	if err := s.accounts.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*Token, error) {
	user, err := s.verify(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// ForgotPassword replaces the password with a temporary one and mails it.
// Requests for the same address are rate limited by the reset cooldown.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.credentials.FindByEmailActive(ctx, email)
	if err != nil {
		return err
	}

	acquired, err := s.cooldown.AcquireResetCooldown(ctx, user.Email, s.resetCooldown)
	if err != nil {
		return fmt.Errorf("acquire reset cooldown: %w", err)
	}
	if !acquired {
		return fmt.Errorf("%w: a reset was requested recently", domain.ErrTooManyRequests)
	}

	temporary := temporaryPassword()
	hash, err := s.accounts.HashPassword(temporary)
	if err != nil {
		s.release(ctx, user.Email)
		return err
	}
	if err := s.credentials.SetPassword(ctx, user.ID, hash, true); err != nil {
		s.release(ctx, user.Email)
		return err
	}
	if err := s.notifier.NotifyPasswordReset(ctx, user, temporary); err != nil {
		s.release(ctx, user.Email)
		return err
	}

	s.log.Info("password reset issued", "user_id", user.ID)
	return nil
}

func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	if len(input.NewPassword) < 6 {
		return fmt.Errorf("%w: password must have at least 6 characters", domain.ErrValidation)
	}
	user, err := s.verify(ctx, input.Email, input.OldPassword)
	if err != nil {
		return err
	}
	hash, err := s.accounts.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	return s.credentials.SetPassword(ctx, user.ID, hash, false)
}

func (s *AuthService) ParseToken(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}
	return claims, nil
}

func (s *AuthService) verify(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.credentials.FindByEmailActive(ctx, strings.TrimSpace(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: wrong email or password", domain.ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: wrong email or password", domain.ErrUnauthorized)
	}
	return user, nil
}

func (s *AuthService) issue(user *domain.User) (*Token, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.tokenTTL)
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &Token{AccessToken: signed, TokenType: "Bearer", ExpiresAt: expiresAt, User: user}, nil
}

func (s *AuthService) release(ctx context.Context, email string) {
	if err := s.cooldown.ReleaseResetCooldown(ctx, email); err != nil {
		s.log.Warn("failed to release reset cooldown", "error", err)
	}
}

// temporaryPassword returns 12 random hex characters.
func temporaryPassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

var _ AuthUseCase = (*AuthService)(nil)
