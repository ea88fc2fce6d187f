package repository

import (
	"context"

	"github.com/Domenick1991/airops/internal/audit"
	"github.com/Domenick1991/airops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NewsRepository interface {
	FindAllActive(ctx context.Context, page domain.PageRequest) ([]domain.News, error)
	FindByIDActive(ctx context.Context, id int64) (*domain.News, error)
	ExistsByIDActive(ctx context.Context, id int64) (bool, error)
	Search(ctx context.Context, filter domain.NewsFilter, page domain.PageRequest) ([]domain.News, error)
	Save(ctx context.Context, news *domain.News) error
}

type PGNewsRepository struct {
	db DBTX
}

func NewNewsRepository(db *pgxpool.Pool) NewsRepository {
	return &PGNewsRepository{db: db}
}

const newsColumns = `id, title, author, category, summary, content, picture_link, created_by, created_at, updated_by, updated_at, is_deleted`

func scanNews(row pgx.Row) (domain.News, error) {
	var n domain.News
	err := row.Scan(&n.ID, &n.Title, &n.Author, &n.Category, &n.Summary, &n.Content, &n.PictureLink,
		&n.CreatedBy, &n.CreatedAt, &n.UpdatedBy, &n.UpdatedAt, &n.IsDeleted)
	return n, err
}

func (r *PGNewsRepository) FindAllActive(ctx context.Context, page domain.PageRequest) ([]domain.News, error) {
	return r.Search(ctx, domain.NewsFilter{}, page)
}

func (r *PGNewsRepository) FindByIDActive(ctx context.Context, id int64) (*domain.News, error) {
	q := activeQuery("").equals("id", id)
	n, err := scanNews(r.db.QueryRow(ctx, `SELECT `+newsColumns+` FROM news`+q.where(), q.args...))
	if err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

func (r *PGNewsRepository) ExistsByIDActive(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM news WHERE id=$1 AND is_deleted = FALSE)`, id).Scan(&exists)
	return exists, translate(err)
}

// Search lists news newest first.
func (r *PGNewsRepository) Search(ctx context.Context, filter domain.NewsFilter, page domain.PageRequest) ([]domain.News, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	q := activeQuery("").contains("title", filter.Title)
	if filter.Category != "" {
		q.equals("category", filter.Category)
	}
	sql := `SELECT ` + newsColumns + ` FROM news` + q.where() + ` ORDER BY id DESC` + q.page(page)
	rows, err := r.db.Query(ctx, sql, q.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.News, error) {
		return scanNews(row)
	})
}

func (r *PGNewsRepository) Save(ctx context.Context, n *domain.News) error {
	author := audit.Stamp(ctx)
	if n.IsNew() {
		row := r.db.QueryRow(ctx, `INSERT INTO news (title, author, category, summary, content, picture_link,
			created_by, created_at, updated_by, updated_at, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), $7, now(), FALSE)
		RETURNING id, created_by, created_at, updated_by, updated_at, is_deleted`,
			n.Title, n.Author, n.Category, n.Summary, n.Content, n.PictureLink, author)
		return translate(row.Scan(&n.ID, &n.CreatedBy, &n.CreatedAt, &n.UpdatedBy, &n.UpdatedAt, &n.IsDeleted))
	}

	row := r.db.QueryRow(ctx, `UPDATE news SET title=$1, author=$2, category=$3, summary=$4, content=$5, picture_link=$6,
			is_deleted=$7, updated_by=$8, updated_at=now()
		WHERE id=$9 AND is_deleted = FALSE
		RETURNING created_by, created_at, updated_by, updated_at`,
		n.Title, n.Author, n.Category, n.Summary, n.Content, n.PictureLink, n.IsDeleted, author, n.ID)
	return translate(row.Scan(&n.CreatedBy, &n.CreatedAt, &n.UpdatedBy, &n.UpdatedAt))
}

var _ NewsRepository = (*PGNewsRepository)(nil)
