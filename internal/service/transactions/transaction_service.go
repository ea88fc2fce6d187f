package transactions

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/repository"
	"github.com/Domenick1991/airops/internal/service/batch"
	"github.com/Domenick1991/airops/internal/service/lifecycle"
	"github.com/go-playground/validator/v10"
)

type TransactionUseCase interface {
	FindAll(ctx context.Context, page domain.PageRequest) ([]domain.Transaction, error)
	FindByID(ctx context.Context, id int64) (*domain.Transaction, error)
	FindByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error)
	FindByFlight(ctx context.Context, flightID int64) ([]domain.Transaction, error)
	Search(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) ([]domain.Transaction, error)
	Save(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, id int64) error
	EditMany(ctx context.Context, txs []domain.Transaction) domain.BatchResult
}

type TransactionService struct {
	repo     repository.TransactionRepository
	flights  repository.FlightRepository
	seats    repository.SeatRepository
	users    repository.UserRepository
	validate *validator.Validate
}

func NewTransactionService(
	repo repository.TransactionRepository,
	flights repository.FlightRepository,
	seats repository.SeatRepository,
	users repository.UserRepository,
	validate *validator.Validate,
) *TransactionService {
	return &TransactionService{repo: repo, flights: flights, seats: seats, users: users, validate: validate}
}

func (s *TransactionService) FindAll(ctx context.Context, page domain.PageRequest) ([]domain.Transaction, error) {
	return s.repo.FindAllActive(ctx, page)
}

func (s *TransactionService) FindByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	return s.repo.FindByIDActive(ctx, id)
}

func (s *TransactionService) FindByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction status %q", domain.ErrValidation, status)
	}
	return s.repo.FindByStatusActive(ctx, status)
}

func (s *TransactionService) FindByFlight(ctx context.Context, flightID int64) ([]domain.Transaction, error) {
	return s.repo.FindByFlightActive(ctx, flightID)
}

func (s *TransactionService) Search(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) ([]domain.Transaction, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction status %q", domain.ErrValidation, filter.Status)
	}
	return s.repo.Search(ctx, filter, page)
}

// Save checks that the flight, the seat and the user (when set) are active.
// A new transaction starts PENDING unless a status is given, and its due date
// defaults to the flight's departure. Changing the status of an existing
// transaction must follow the lifecycle transitions.
func (s *TransactionService) Save(ctx context.Context, tx *domain.Transaction) error {
	if tx.IsNew() && tx.Status == "" {
		tx.Status = domain.TransactionStatusPending
	}
	if err := domain.Validate(s.validate, tx); err != nil {
		return err
	}

	flight, err := s.flights.FindByIDActive(ctx, tx.FlightID)
	if err != nil {
		return relationError("flight", tx.FlightID, err)
	}
	if ok, err := s.seats.ExistsByIDActive(ctx, tx.SeatID); err != nil {
		return err
	} else if !ok {
		return relationError("seat", tx.SeatID, domain.ErrNotFound)
	}
	if tx.UserID != nil {
		if ok, err := s.users.ExistsByIDActive(ctx, *tx.UserID); err != nil {
			return err
		} else if !ok {
			return relationError("user", *tx.UserID, domain.ErrNotFound)
		}
	}

	if !tx.IsNew() {
		stored, err := s.repo.FindByIDActive(ctx, tx.ID)
		if err != nil {
			return err
		}
		if stored.Status != tx.Status && !lifecycle.CanTransition(stored.Status, tx.Status) {
			return fmt.Errorf("%w: transaction cannot move from %s to %s", domain.ErrValidation, stored.Status, tx.Status)
		}
	}

	if tx.DueDate.IsZero() {
		tx.DueDate = flight.StartTime
	}
	tx.IsDeleted = false
	return s.repo.Save(ctx, tx)
}

func relationError(kind string, id int64, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %s %d does not exist", domain.ErrValidation, kind, id)
	}
	return err
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	tx, err := s.repo.FindByIDActive(ctx, id)
	if err != nil {
		return err
	}
	tx.IsDeleted = true
	return s.repo.Save(ctx, tx)
}

func (s *TransactionService) EditMany(ctx context.Context, txs []domain.Transaction) domain.BatchResult {
	return batch.Apply(ctx, txs, func(tx *domain.Transaction) int64 { return tx.ID }, s.Save)
}

var _ TransactionUseCase = (*TransactionService)(nil)
