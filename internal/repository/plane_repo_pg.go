package repository

import (
	"context"

	"github.com/Domenick1991/airops/internal/audit"
	"github.com/Domenick1991/airops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlaneRepository interface {
	FindAllActive(ctx context.Context, page domain.PageRequest) ([]domain.Plane, error)
	FindByIDActive(ctx context.Context, id int64) (*domain.Plane, error)
	ExistsByIDActive(ctx context.Context, id int64) (bool, error)
	Search(ctx context.Context, filter domain.PlaneFilter, page domain.PageRequest) ([]domain.Plane, error)
	Save(ctx context.Context, plane *domain.Plane) error
}

type PGPlaneRepository struct {
	db DBTX
}

func NewPlaneRepository(db *pgxpool.Pool) PlaneRepository {
	return &PGPlaneRepository{db: db}
}

const planeColumns = `id, name, producer, diagram_link, summary, created_by, created_at, updated_by, updated_at, is_deleted`

func scanPlane(row pgx.Row) (domain.Plane, error) {
	var p domain.Plane
	err := row.Scan(&p.ID, &p.Name, &p.Producer, &p.DiagramLink, &p.Summary,
		&p.CreatedBy, &p.CreatedAt, &p.UpdatedBy, &p.UpdatedAt, &p.IsDeleted)
	return p, err
}

func (r *PGPlaneRepository) FindAllActive(ctx context.Context, page domain.PageRequest) ([]domain.Plane, error) {
	return r.Search(ctx, domain.PlaneFilter{}, page)
}

func (r *PGPlaneRepository) FindByIDActive(ctx context.Context, id int64) (*domain.Plane, error) {
	q := activeQuery("").equals("id", id)
	p, err := scanPlane(r.db.QueryRow(ctx, `SELECT `+planeColumns+` FROM planes`+q.where(), q.args...))
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PGPlaneRepository) ExistsByIDActive(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM planes WHERE id=$1 AND is_deleted = FALSE)`, id).Scan(&exists)
	return exists, translate(err)
}

func (r *PGPlaneRepository) Search(ctx context.Context, filter domain.PlaneFilter, page domain.PageRequest) ([]domain.Plane, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	q := activeQuery("").contains("name", filter.Name)
	sql := `SELECT ` + planeColumns + ` FROM planes` + q.where() + ` ORDER BY id` + q.page(page)
	rows, err := r.db.Query(ctx, sql, q.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Plane, error) {
		return scanPlane(row)
	})
}

func (r *PGPlaneRepository) Save(ctx context.Context, p *domain.Plane) error {
	author := audit.Stamp(ctx)
	if p.IsNew() {
		row := r.db.QueryRow(ctx, `INSERT INTO planes (name, producer, diagram_link, summary, created_by, created_at, updated_by, updated_at, is_deleted)
		VALUES ($1, $2, $3, $4, $5, now(), $5, now(), FALSE)
		RETURNING id, created_by, created_at, updated_by, updated_at, is_deleted`,
			p.Name, p.Producer, p.DiagramLink, p.Summary, author)
		return translate(row.Scan(&p.ID, &p.CreatedBy, &p.CreatedAt, &p.UpdatedBy, &p.UpdatedAt, &p.IsDeleted))
	}

	row := r.db.QueryRow(ctx, `UPDATE planes SET name=$1, producer=$2, diagram_link=$3, summary=$4, is_deleted=$5,
			updated_by=$6, updated_at=now()
		WHERE id=$7 AND is_deleted = FALSE
		RETURNING created_by, created_at, updated_by, updated_at`,
		p.Name, p.Producer, p.DiagramLink, p.Summary, p.IsDeleted, author, p.ID)
	return translate(row.Scan(&p.CreatedBy, &p.CreatedAt, &p.UpdatedBy, &p.UpdatedAt))
}

var _ PlaneRepository = (*PGPlaneRepository)(nil)
