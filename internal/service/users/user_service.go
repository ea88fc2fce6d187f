package users

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airops/internal/audit"
	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/repository"
	"github.com/Domenick1991/airops/internal/service/batch"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type UserUseCase interface {
	FindAll(ctx context.Context, page domain.PageRequest) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
	EditMany(ctx context.Context, users []domain.User) domain.BatchResult
}

type UserService struct {
	repo     repository.UserRepository
	validate *validator.Validate
	hashCost int
}

type UserServiceOption func(*UserService)

// WithHashCost overrides the bcrypt cost, mostly to keep tests fast.
func WithHashCost(cost int) UserServiceOption {
	return func(s *UserService) {
		s.hashCost = cost
	}
}

func NewUserService(repo repository.UserRepository, validate *validator.Validate, opts ...UserServiceOption) *UserService {
	s := &UserService{repo: repo, validate: validate, hashCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *UserService) FindAll(ctx context.Context, page domain.PageRequest) ([]domain.User, error) {
	return s.repo.FindAllActive(ctx, page)
}

func (s *UserService) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByIDActive(ctx, id)
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmailActive(ctx, email)
}

// Save creates a user from the plain-text password in user.Password, or
// overwrites an existing one. Only an admin may grant ADMIN; other callers
// always create USER accounts. An update must come from an admin or from the
// user itself, and only an admin changes the role. The stored hash and
// IsForgotten flag are kept whatever the caller sent; passwords change only
// through HashPassword and the repository's SetPassword.
func (s *UserService) Save(ctx context.Context, user *domain.User) error {
	admin := isAdmin(ctx)
	if user.Role == "" || (user.Role == domain.RoleAdmin && !admin) {
		user.Role = domain.RoleUser
	}
	if user.IsNew() {
		if err := domain.Validate(s.validate, user); err != nil {
			return err
		}
		user.IsDeleted = false
		return s.create(ctx, user)
	}

	if err := authorizeEdit(ctx, user.ID); err != nil {
		return err
	}
	if err := domain.Validate(s.validate, user); err != nil {
		return err
	}
	stored, err := s.repo.FindByIDActive(ctx, user.ID)
	if err != nil {
		return err
	}
	if !admin {
		user.Role = stored.Role
	}
	user.IsDeleted = false
	user.Password = stored.Password
	user.IsForgotten = stored.IsForgotten
	return s.repo.Save(ctx, user)
}

func isAdmin(ctx context.Context) bool {
	actor, ok := audit.ActorFrom(ctx)
	return ok && actor.Role == string(domain.RoleAdmin)
}

// authorizeEdit lets admins touch any account and users only their own.
func authorizeEdit(ctx context.Context, id int64) error {
	actor, ok := audit.ActorFrom(ctx)
	if !ok {
		return fmt.Errorf("%w: sign in to edit an account", domain.ErrUnauthorized)
	}
	if actor.Role != string(domain.RoleAdmin) && actor.ID != id {
		return fmt.Errorf("%w: account %d belongs to another user", domain.ErrForbidden, id)
	}
	return nil
}

func (s *UserService) create(ctx context.Context, user *domain.User) error {
	if len(user.Password) < 6 {
		return fmt.Errorf("%w: password must have at least 6 characters", domain.ErrValidation)
	}
	exists, err := s.repo.ExistsByEmailActive(ctx, user.Email)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: email %s is already registered", domain.ErrConflict, user.Email)
	}
	hash, err := s.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hash
	user.IsForgotten = false
	return s.repo.Save(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := authorizeEdit(ctx, id); err != nil {
		return err
	}
	user, err := s.repo.FindByIDActive(ctx, id)
	if err != nil {
		return err
	}
	user.IsDeleted = true
	return s.repo.Save(ctx, user)
}

func (s *UserService) EditMany(ctx context.Context, users []domain.User) domain.BatchResult {
	return batch.Apply(ctx, users, func(u *domain.User) int64 { return u.ID }, s.Save)
}

func (s *UserService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

var _ UserUseCase = (*UserService)(nil)
