package planes

import (
	"context"
	"testing"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPlaneRepository struct {
	mock.Mock
}

func (m *MockPlaneRepository) FindAllActive(ctx context.Context, page domain.PageRequest) ([]domain.Plane, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Plane), args.Error(1)
}

func (m *MockPlaneRepository) FindByIDActive(ctx context.Context, id int64) (*domain.Plane, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plane), args.Error(1)
}

func (m *MockPlaneRepository) ExistsByIDActive(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaneRepository) Search(ctx context.Context, filter domain.PlaneFilter, page domain.PageRequest) ([]domain.Plane, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.Plane), args.Error(1)
}

func (m *MockPlaneRepository) Save(ctx context.Context, plane *domain.Plane) error {
	args := m.Called(ctx, plane)
	return args.Error(0)
}

func TestPlaneService_Save_Create(t *testing.T) {
	repo := &MockPlaneRepository{}
	service := NewPlaneService(repo, domain.NewValidator())
	ctx := context.Background()

	plane := &domain.Plane{Name: "A321", Producer: "Airbus"}
	repo.On("Save", ctx, plane).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Plane).ID = 1
	}).Return(nil).Once()

	err := service.Save(ctx, plane)

	require.NoError(t, err)
	assert.Equal(t, int64(1), plane.ID)
	repo.AssertExpectations(t)
}

func TestPlaneService_Save_Invalid(t *testing.T) {
	repo := &MockPlaneRepository{}
	service := NewPlaneService(repo, domain.NewValidator())

	err := service.Save(context.Background(), &domain.Plane{Producer: "Airbus"})

	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPlaneService_Save_UpdateCannotDelete(t *testing.T) {
	repo := &MockPlaneRepository{}
	service := NewPlaneService(repo, domain.NewValidator())
	ctx := context.Background()

	plane := &domain.Plane{Record: domain.Record{ID: 4, IsDeleted: true}, Name: "B737"}
	repo.On("Save", ctx, mock.MatchedBy(func(p *domain.Plane) bool {
		return p.ID == 4 && !p.IsDeleted
	})).Return(nil).Once()

	require.NoError(t, service.Save(ctx, plane))
	repo.AssertExpectations(t)
}

func TestPlaneService_Delete(t *testing.T) {
	repo := &MockPlaneRepository{}
	service := NewPlaneService(repo, domain.NewValidator())
	ctx := context.Background()

	stored := &domain.Plane{Record: domain.Record{ID: 4}, Name: "B737"}
	repo.On("FindByIDActive", ctx, int64(4)).Return(stored, nil).Once()
	repo.On("Save", ctx, mock.MatchedBy(func(p *domain.Plane) bool { return p.IsDeleted })).Return(nil).Once()

	require.NoError(t, service.Delete(ctx, 4))
	repo.AssertExpectations(t)
}

func TestPlaneService_Delete_AlreadyDeleted(t *testing.T) {
	repo := &MockPlaneRepository{}
	service := NewPlaneService(repo, domain.NewValidator())
	ctx := context.Background()

	repo.On("FindByIDActive", ctx, int64(4)).Return(nil, domain.ErrNotFound).Once()

	err := service.Delete(ctx, 4)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPlaneService_EditMany_BestEffort(t *testing.T) {
	repo := &MockPlaneRepository{}
	service := NewPlaneService(repo, domain.NewValidator())
	ctx := context.Background()

	planes := []domain.Plane{
		{Record: domain.Record{ID: 1}, Name: "A320"},
		{Record: domain.Record{ID: 2}},
		{Record: domain.Record{ID: 3}, Name: "A350"},
	}
	repo.On("Save", ctx, mock.MatchedBy(func(p *domain.Plane) bool { return p.ID == 1 })).Return(nil).Once()
	repo.On("Save", ctx, mock.MatchedBy(func(p *domain.Plane) bool { return p.ID == 3 })).Return(domain.ErrNotFound).Once()

	result := service.EditMany(ctx, planes)

	assert.Equal(t, []int64{1}, result.Succeeded)
	require.Len(t, result.Failed, 2)
	assert.Equal(t, 1, result.Failed[0].Index)
	assert.ErrorIs(t, result.Failed[0].Unwrap(), domain.ErrValidation)
	assert.Equal(t, int64(3), result.Failed[1].ID)
	assert.ErrorIs(t, result.Failed[1].Unwrap(), domain.ErrNotFound)
	repo.AssertExpectations(t)
}
