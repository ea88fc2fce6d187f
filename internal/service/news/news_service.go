package news

import (
	"context"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/repository"
	"github.com/Domenick1991/airops/internal/service/batch"
	"github.com/go-playground/validator/v10"
)

type NewsUseCase interface {
	FindAll(ctx context.Context, page domain.PageRequest) ([]domain.News, error)
	FindByID(ctx context.Context, id int64) (*domain.News, error)
	Search(ctx context.Context, filter domain.NewsFilter, page domain.PageRequest) ([]domain.News, error)
	Save(ctx context.Context, news *domain.News) error
	Delete(ctx context.Context, id int64) error
	EditMany(ctx context.Context, items []domain.News) domain.BatchResult
}

type NewsService struct {
	repo     repository.NewsRepository
	validate *validator.Validate
}

func NewNewsService(repo repository.NewsRepository, validate *validator.Validate) *NewsService {
	return &NewsService{repo: repo, validate: validate}
}

func (s *NewsService) FindAll(ctx context.Context, page domain.PageRequest) ([]domain.News, error) {
	return s.repo.FindAllActive(ctx, page)
}

func (s *NewsService) FindByID(ctx context.Context, id int64) (*domain.News, error) {
	return s.repo.FindByIDActive(ctx, id)
}

func (s *NewsService) Search(ctx context.Context, filter domain.NewsFilter, page domain.PageRequest) ([]domain.News, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, domain.ErrValidation
	}
	return s.repo.Search(ctx, filter, page)
}

func (s *NewsService) Save(ctx context.Context, news *domain.News) error {
	if err := domain.Validate(s.validate, news); err != nil {
		return err
	}
	news.IsDeleted = false
	return s.repo.Save(ctx, news)
}

func (s *NewsService) Delete(ctx context.Context, id int64) error {
	news, err := s.repo.FindByIDActive(ctx, id)
	if err != nil {
		return err
	}
	news.IsDeleted = true
	return s.repo.Save(ctx, news)
}

func (s *NewsService) EditMany(ctx context.Context, items []domain.News) domain.BatchResult {
	return batch.Apply(ctx, items, func(n *domain.News) int64 { return n.ID }, s.Save)
}

var _ NewsUseCase = (*NewsService)(nil)
