package seats

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/repository"
	"github.com/Domenick1991/airops/internal/service/batch"
	"github.com/go-playground/validator/v10"
)

type SeatUseCase interface {
	FindAll(ctx context.Context, page domain.PageRequest) ([]domain.Seat, error)
	FindByID(ctx context.Context, id int64) (*domain.Seat, error)
	Search(ctx context.Context, filter domain.SeatFilter, page domain.PageRequest) ([]domain.Seat, error)
	Save(ctx context.Context, seat *domain.Seat) error
	Delete(ctx context.Context, id int64) error
	EditMany(ctx context.Context, seats []domain.Seat) domain.BatchResult
}

type SeatService struct {
	repo     repository.SeatRepository
	planes   repository.PlaneRepository
	validate *validator.Validate
}

func NewSeatService(repo repository.SeatRepository, planes repository.PlaneRepository, validate *validator.Validate) *SeatService {
	return &SeatService{repo: repo, planes: planes, validate: validate}
}

func (s *SeatService) FindAll(ctx context.Context, page domain.PageRequest) ([]domain.Seat, error) {
	return s.repo.FindAllActive(ctx, page)
}

func (s *SeatService) FindByID(ctx context.Context, id int64) (*domain.Seat, error) {
	return s.repo.FindByIDActive(ctx, id)
}

func (s *SeatService) Search(ctx context.Context, filter domain.SeatFilter, page domain.PageRequest) ([]domain.Seat, error) {
	return s.repo.Search(ctx, filter, page)
}

// Save requires the seat's plane to be active.
func (s *SeatService) Save(ctx context.Context, seat *domain.Seat) error {
	if err := domain.Validate(s.validate, seat); err != nil {
		return err
	}
	ok, err := s.planes.ExistsByIDActive(ctx, seat.PlaneID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: plane %d does not exist", domain.ErrValidation, seat.PlaneID)
	}
	seat.IsDeleted = false
	return s.repo.Save(ctx, seat)
}

func (s *SeatService) Delete(ctx context.Context, id int64) error {
	seat, err := s.repo.FindByIDActive(ctx, id)
	if err != nil {
		return err
	}
	seat.IsDeleted = true
	return s.repo.Save(ctx, seat)
}

func (s *SeatService) EditMany(ctx context.Context, seats []domain.Seat) domain.BatchResult {
	return batch.Apply(ctx, seats, func(seat *domain.Seat) int64 { return seat.ID }, s.Save)
}

var _ SeatUseCase = (*SeatService)(nil)
