package users

import (
	"context"
	"testing"

	"github.com/Domenick1991/airops/internal/audit"
	"github.com/Domenick1991/airops/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAllActive(ctx context.Context, page domain.PageRequest) ([]domain.User, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDActive(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmailActive(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByIDActive(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmailActive(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetPassword(ctx context.Context, id int64, hash string, forgotten bool) error {
	args := m.Called(ctx, id, hash, forgotten)
	return args.Error(0)
}

func newService(repo *MockUserRepository) *UserService {
	return NewUserService(repo, domain.NewValidator(), WithHashCost(bcrypt.MinCost))
}

func adminCtx() context.Context {
	return audit.WithActor(context.Background(), audit.Actor{ID: 1, Email: "ops@example.com", Role: "ADMIN"})
}

func userCtx(id int64) context.Context {
	return audit.WithActor(context.Background(), audit.Actor{ID: id, Email: "a@example.com", Role: "USER"})
}

func TestUserService_Save_CreateHashesPassword(t *testing.T) {
	repo := &MockUserRepository{}
	service := newService(repo)
	ctx := context.Background()

	user := &domain.User{Email: "alice@example.com", Password: "hunter22", Name: "Alice", IDNumber: "0123"}
	repo.On("ExistsByEmailActive", ctx, "alice@example.com").Return(false, nil).Once()
	repo.On("Save", ctx, user).Return(nil).Once()

	require.NoError(t, service.Save(ctx, user))

	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "hunter22", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter22")))
	repo.AssertExpectations(t)
}

func TestUserService_Save_CreateRequiresPassword(t *testing.T) {
	repo := &MockUserRepository{}
	service := newService(repo)

	err := service.Save(context.Background(), &domain.User{Email: "a@example.com", Name: "A", IDNumber: "1"})

	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUserService_Save_CreateDuplicateEmail(t *testing.T) {
	repo := &MockUserRepository{}
	service := newService(repo)
	ctx := context.Background()

	repo.On("ExistsByEmailActive", ctx, "a@example.com").Return(true, nil).Once()

	err := service.Save(ctx, &domain.User{Email: "a@example.com", Password: "secret1", Name: "A", IDNumber: "1"})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserService_Save_UpdateKeepsPassword(t *testing.T) {
	repo := &MockUserRepository{}
	service := newService(repo)
	ctx := adminCtx()

	stored := &domain.User{Record: domain.Record{ID: 7}, Email: "a@example.com", Password: "$2a$stored", IsForgotten: true}
	repo.On("FindByIDActive", ctx, int64(7)).Return(stored, nil).Once()
	repo.On("Save", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == 7 && u.Password == "$2a$stored" && u.IsForgotten && u.Name == "Renamed"
	})).Return(nil).Once()

	edit := &domain.User{Record: domain.Record{ID: 7}, Email: "a@example.com", Password: "", Name: "Renamed", IDNumber: "1", Role: domain.RoleUser}

	require.NoError(t, service.Save(ctx, edit))
	repo.AssertExpectations(t)
}

func TestUserService_Save_UpdateIgnoresSuppliedPassword(t *testing.T) {
	repo := &MockUserRepository{}
	service := newService(repo)
	ctx := adminCtx()

	stored := &domain.User{Record: domain.Record{ID: 7}, Password: "$2a$stored"}
	repo.On("FindByIDActive", ctx, int64(7)).Return(stored, nil).Once()
	repo.On("Save", ctx, mock.MatchedBy(func(u *domain.User) bool { return u.Password == "$2a$stored" })).Return(nil).Once()

	edit := &domain.User{Record: domain.Record{ID: 7}, Email: "a@example.com", Password: "bypass", Name: "A", IDNumber: "1"}

	require.NoError(t, service.Save(ctx, edit))
	repo.AssertExpectations(t)
}

func TestUserService_Save_UpdateMissing(t *testing.T) {
	repo := &MockUserRepository{}
	service := newService(repo)
	ctx := adminCtx()

	repo.On("FindByIDActive", ctx, int64(7)).Return(nil, domain.ErrNotFound).Once()

	err := service.Save(ctx, &domain.User{Record: domain.Record{ID: 7}, Email: "a@example.com", Name: "A", IDNumber: "1"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserService_Delete_Twice(t *testing.T) {
	repo := &MockUserRepository{}
	service := newService(repo)
	ctx := adminCtx()

	stored := &domain.User{Record: domain.Record{ID: 7}}
	repo.On("FindByIDActive", ctx, int64(7)).Return(stored, nil).Once()
	repo.On("Save", ctx, stored).Return(nil).Once()
	repo.On("FindByIDActive", ctx, int64(7)).Return(nil, domain.ErrNotFound).Once()

	require.NoError(t, service.Delete(ctx, 7))
	assert.ErrorIs(t, service.Delete(ctx, 7), domain.ErrNotFound)
}

func TestUserService_Save_CreateByAnonymousCannotGrantAdmin(t *testing.T) {
	repo := &MockUserRepository{}
	service := newService(repo)
	ctx := context.Background()

	user := &domain.User{Email: "eve@example.com", Password: "secret1", Name: "Eve", IDNumber: "9", Role: domain.RoleAdmin}
	repo.On("ExistsByEmailActive", ctx, "eve@example.com").Return(false, nil).Once()
	repo.On("Save", ctx, mock.MatchedBy(func(u *domain.User) bool { return u.Role == domain.RoleUser })).Return(nil).Once()

	require.NoError(t, service.Save(ctx, user))

	assert.Equal(t, domain.RoleUser, user.Role)
	repo.AssertExpectations(t)
}

func TestUserService_Save_CreateByAdminGrantsAdmin(t *testing.T) {
	repo := &MockUserRepository{}
	service := newService(repo)
	ctx := adminCtx()

	user := &domain.User{Email: "ops2@example.com", Password: "secret1", Name: "Ops", IDNumber: "2", Role: domain.RoleAdmin}
	repo.On("ExistsByEmailActive", ctx, "ops2@example.com").Return(false, nil).Once()
	repo.On("Save", ctx, user).Return(nil).Once()

	require.NoError(t, service.Save(ctx, user))

	assert.Equal(t, domain.RoleAdmin, user.Role)
}

func TestUserService_Save_SelfUpdateKeepsStoredRole(t *testing.T) {
	repo := &MockUserRepository{}
	service := newService(repo)
	ctx := userCtx(7)

	stored := &domain.User{Record: domain.Record{ID: 7}, Email: "a@example.com", Role: domain.RoleUser, Password: "$2a$stored"}
	repo.On("FindByIDActive", ctx, int64(7)).Return(stored, nil).Once()
	repo.On("Save", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleUser && u.Name == "Renamed"
	})).Return(nil).Once()

	edit := &domain.User{Record: domain.Record{ID: 7}, Email: "a@example.com", Name: "Renamed", IDNumber: "1", Role: domain.RoleAdmin}

	require.NoError(t, service.Save(ctx, edit))
	assert.Equal(t, domain.RoleUser, edit.Role)
	repo.AssertExpectations(t)
}

func TestUserService_Save_UpdateAuthorization(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want error
	}{
		{name: "anonymous", ctx: context.Background(), want: domain.ErrUnauthorized},
		{name: "another user", ctx: userCtx(8), want: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockUserRepository{}
			service := newService(repo)

			edit := &domain.User{Record: domain.Record{ID: 7}, Email: "thief@example.com", Name: "A", IDNumber: "1"}
			err := service.Save(tt.ctx, edit)

			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, service.Delete(tt.ctx, 7), tt.want)
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}
