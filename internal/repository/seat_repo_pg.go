package repository

import (
	"context"

	"github.com/Domenick1991/airops/internal/audit"
	"github.com/Domenick1991/airops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SeatRepository interface {
	FindAllActive(ctx context.Context, page domain.PageRequest) ([]domain.Seat, error)
	FindByIDActive(ctx context.Context, id int64) (*domain.Seat, error)
	ExistsByIDActive(ctx context.Context, id int64) (bool, error)
	Search(ctx context.Context, filter domain.SeatFilter, page domain.PageRequest) ([]domain.Seat, error)
	Save(ctx context.Context, seat *domain.Seat) error
}

type PGSeatRepository struct {
	db DBTX
}

func NewSeatRepository(db *pgxpool.Pool) SeatRepository {
	return &PGSeatRepository{db: db}
}

const seatColumns = `id, name, plane_id, type, have_window, picture_link, summary, created_by, created_at, updated_by, updated_at, is_deleted`

func scanSeat(row pgx.Row) (domain.Seat, error) {
	var s domain.Seat
	err := row.Scan(&s.ID, &s.Name, &s.PlaneID, &s.Type, &s.HaveWindow, &s.PictureLink, &s.Summary,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedBy, &s.UpdatedAt, &s.IsDeleted)
	return s, err
}

func (r *PGSeatRepository) FindAllActive(ctx context.Context, page domain.PageRequest) ([]domain.Seat, error) {
	return r.Search(ctx, domain.SeatFilter{}, page)
}

func (r *PGSeatRepository) FindByIDActive(ctx context.Context, id int64) (*domain.Seat, error) {
	q := activeQuery("").equals("id", id)
	s, err := scanSeat(r.db.QueryRow(ctx, `SELECT `+seatColumns+` FROM seats`+q.where(), q.args...))
	if err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *PGSeatRepository) ExistsByIDActive(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM seats WHERE id=$1 AND is_deleted = FALSE)`, id).Scan(&exists)
	return exists, translate(err)
}

func (r *PGSeatRepository) Search(ctx context.Context, filter domain.SeatFilter, page domain.PageRequest) ([]domain.Seat, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	q := seatQuery(filter)
	sql := `SELECT ` + seatColumns + ` FROM seats` + q.where() + ` ORDER BY id` + q.page(page)
	rows, err := r.db.Query(ctx, sql, q.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Seat, error) {
		return scanSeat(row)
	})
}

func seatQuery(filter domain.SeatFilter) *query {
	q := activeQuery("").contains("name", filter.Name)
	if filter.PlaneID > 0 {
		q.equals("plane_id", filter.PlaneID)
	}
	if filter.HaveWindow != nil {
		q.equals("have_window", *filter.HaveWindow)
	}
	return q
}

func (r *PGSeatRepository) Save(ctx context.Context, s *domain.Seat) error {
	author := audit.Stamp(ctx)
	if s.IsNew() {
		row := r.db.QueryRow(ctx, `INSERT INTO seats (name, plane_id, type, have_window, picture_link, summary,
			created_by, created_at, updated_by, updated_at, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), $7, now(), FALSE)
		RETURNING id, created_by, created_at, updated_by, updated_at, is_deleted`,
			s.Name, s.PlaneID, s.Type, s.HaveWindow, s.PictureLink, s.Summary, author)
		return translate(row.Scan(&s.ID, &s.CreatedBy, &s.CreatedAt, &s.UpdatedBy, &s.UpdatedAt, &s.IsDeleted))
	}

	row := r.db.QueryRow(ctx, `UPDATE seats SET name=$1, plane_id=$2, type=$3, have_window=$4, picture_link=$5, summary=$6,
			is_deleted=$7, updated_by=$8, updated_at=now()
		WHERE id=$9 AND is_deleted = FALSE
		RETURNING created_by, created_at, updated_by, updated_at`,
		s.Name, s.PlaneID, s.Type, s.HaveWindow, s.PictureLink, s.Summary, s.IsDeleted, author, s.ID)
	return translate(row.Scan(&s.CreatedBy, &s.CreatedAt, &s.UpdatedBy, &s.UpdatedAt))
}

var _ SeatRepository = (*PGSeatRepository)(nil)
