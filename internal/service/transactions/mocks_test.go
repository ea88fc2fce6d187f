package transactions

import (
	"context"
	"time"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindAllActive(ctx context.Context, page domain.PageRequest) ([]domain.Transaction, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByIDActive(ctx context.Context, id int64) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ExistsByIDActive(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) FindByStatusActive(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByStatusDueBefore(ctx context.Context, status domain.TransactionStatus, instant time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, status, instant)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByFlightActive(ctx context.Context, flightID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Search(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Save(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) FindAllActive(ctx context.Context, page domain.PageRequest) ([]domain.Flight, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) FindByIDActive(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) ExistsByIDActive(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlightRepository) FindByStatusActive(ctx context.Context, status domain.FlightStatus) ([]domain.Flight, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Search(ctx context.Context, filter domain.FlightFilter, page domain.PageRequest) ([]domain.Flight, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Save(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

// existsRepository answers ExistsByIDActive from a fixed set; the seat and
// user mocks only need that method.
type existsRepository struct {
	mock.Mock
}

func (m *existsRepository) ExistsByIDActive(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockSeatRepository struct {
	existsRepository
}

func (m *MockSeatRepository) FindAllActive(context.Context, domain.PageRequest) ([]domain.Seat, error) {
	return nil, nil
}

func (m *MockSeatRepository) FindByIDActive(context.Context, int64) (*domain.Seat, error) {
	return nil, domain.ErrNotFound
}

func (m *MockSeatRepository) Search(context.Context, domain.SeatFilter, domain.PageRequest) ([]domain.Seat, error) {
	return nil, nil
}

func (m *MockSeatRepository) Save(context.Context, *domain.Seat) error {
	return nil
}

type MockUserRepository struct {
	existsRepository
}

func (m *MockUserRepository) FindAllActive(context.Context, domain.PageRequest) ([]domain.User, error) {
	return nil, nil
}

func (m *MockUserRepository) FindByIDActive(context.Context, int64) (*domain.User, error) {
	return nil, domain.ErrNotFound
}

func (m *MockUserRepository) FindByEmailActive(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}

func (m *MockUserRepository) ExistsByEmailActive(context.Context, string) (bool, error) {
	return false, nil
}

func (m *MockUserRepository) Save(context.Context, *domain.User) error {
	return nil
}

func (m *MockUserRepository) SetPassword(context.Context, int64, string, bool) error {
	return nil
}
