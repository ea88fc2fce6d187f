package api

import (
	"context"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/service/auth"
	"github.com/Domenick1991/airops/internal/service/flights"
	"github.com/Domenick1991/airops/internal/service/lifecycle"
	"github.com/stretchr/testify/mock"
)

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) FindAll(ctx context.Context, page domain.PageRequest) ([]domain.Flight, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) FindByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) FindByStatus(ctx context.Context, status domain.FlightStatus) ([]domain.Flight, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Search(ctx context.Context, filter domain.FlightFilter, page domain.PageRequest) ([]domain.Flight, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Save(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlightUseCase) EditMany(ctx context.Context, items []domain.Flight) domain.BatchResult {
	args := m.Called(ctx, items)
	return args.Get(0).(domain.BatchResult)
}

func (m *MockFlightUseCase) Delay(ctx context.Context, input flights.DelayInput) (*flights.DelayResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flights.DelayResult), args.Error(1)
}

func (m *MockFlightUseCase) DelayHistory(ctx context.Context, flightID int64) ([]domain.FlightDelay, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).([]domain.FlightDelay), args.Error(1)
}

type MockTransactionUseCase struct {
	mock.Mock
}

func (m *MockTransactionUseCase) FindAll(ctx context.Context, page domain.PageRequest) ([]domain.Transaction, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionUseCase) FindByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionUseCase) FindByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionUseCase) FindByFlight(ctx context.Context, flightID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionUseCase) Search(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionUseCase) Save(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionUseCase) EditMany(ctx context.Context, items []domain.Transaction) domain.BatchResult {
	args := m.Called(ctx, items)
	return args.Get(0).(domain.BatchResult)
}

type MockLifecycleUseCase struct {
	mock.Mock
}

func (m *MockLifecycleUseCase) report(args mock.Arguments) (*lifecycle.Report, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lifecycle.Report), args.Error(1)
}

func (m *MockLifecycleUseCase) SweepLate(ctx context.Context) (*lifecycle.Report, error) {
	return m.report(m.Called(ctx))
}

func (m *MockLifecycleUseCase) DelayFlight(ctx context.Context, flightID int64) (*lifecycle.Report, error) {
	return m.report(m.Called(ctx, flightID))
}

func (m *MockLifecycleUseCase) NotifyLate(ctx context.Context) (*lifecycle.Report, error) {
	return m.report(m.Called(ctx))
}

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) user(args mock.Arguments) (*domain.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) FindAll(ctx context.Context, page domain.PageRequest) ([]domain.User, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserUseCase) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockUserUseCase) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.user(m.Called(ctx, email))
}

func (m *MockUserUseCase) Save(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserUseCase) EditMany(ctx context.Context, items []domain.User) domain.BatchResult {
	args := m.Called(ctx, items)
	return args.Get(0).(domain.BatchResult)
}

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Signup(ctx context.Context, input auth.SignupInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthUseCase) Login(ctx context.Context, input auth.LoginInput) (*auth.Token, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Token), args.Error(1)
}

func (m *MockAuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockAuthUseCase) ChangePassword(ctx context.Context, input auth.ChangePasswordInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockAuthUseCase) ParseToken(token string) (*auth.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}
