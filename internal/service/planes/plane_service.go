package planes

import (
	"context"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/repository"
	"github.com/Domenick1991/airops/internal/service/batch"
	"github.com/go-playground/validator/v10"
)

type PlaneUseCase interface {
	FindAll(ctx context.Context, page domain.PageRequest) ([]domain.Plane, error)
	FindByID(ctx context.Context, id int64) (*domain.Plane, error)
	Search(ctx context.Context, filter domain.PlaneFilter, page domain.PageRequest) ([]domain.Plane, error)
	Save(ctx context.Context, plane *domain.Plane) error
	Delete(ctx context.Context, id int64) error
	EditMany(ctx context.Context, planes []domain.Plane) domain.BatchResult
}

type PlaneService struct {
	repo     repository.PlaneRepository
	validate *validator.Validate
}

func NewPlaneService(repo repository.PlaneRepository, validate *validator.Validate) *PlaneService {
	return &PlaneService{repo: repo, validate: validate}
}

func (s *PlaneService) FindAll(ctx context.Context, page domain.PageRequest) ([]domain.Plane, error) {
	return s.repo.FindAllActive(ctx, page)
}

func (s *PlaneService) FindByID(ctx context.Context, id int64) (*domain.Plane, error) {
	return s.repo.FindByIDActive(ctx, id)
}

func (s *PlaneService) Search(ctx context.Context, filter domain.PlaneFilter, page domain.PageRequest) ([]domain.Plane, error) {
	return s.repo.Search(ctx, filter, page)
}

func (s *PlaneService) Save(ctx context.Context, plane *domain.Plane) error {
	if err := domain.Validate(s.validate, plane); err != nil {
		return err
	}
	plane.IsDeleted = false
	return s.repo.Save(ctx, plane)
}

func (s *PlaneService) Delete(ctx context.Context, id int64) error {
	plane, err := s.repo.FindByIDActive(ctx, id)
	if err != nil {
		return err
	}
	plane.IsDeleted = true
	return s.repo.Save(ctx, plane)
}

func (s *PlaneService) EditMany(ctx context.Context, planes []domain.Plane) domain.BatchResult {
	return batch.Apply(ctx, planes, func(p *domain.Plane) int64 { return p.ID }, s.Save)
}

var _ PlaneUseCase = (*PlaneService)(nil)
