package repository

import (
	"context"

	"github.com/Domenick1991/airops/internal/audit"
	"github.com/Domenick1991/airops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	FindAllActive(ctx context.Context, page domain.PageRequest) ([]domain.Flight, error)
	FindByIDActive(ctx context.Context, id int64) (*domain.Flight, error)
	ExistsByIDActive(ctx context.Context, id int64) (bool, error)
	FindByStatusActive(ctx context.Context, status domain.FlightStatus) ([]domain.Flight, error)
	Search(ctx context.Context, filter domain.FlightFilter, page domain.PageRequest) ([]domain.Flight, error)
	Save(ctx context.Context, flight *domain.Flight) error
}

type PGFlightRepository struct {
	db DBTX
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, name, plane_id, start_time, end_time, status, departure, departure_code, arrival, arrival_code, gate,
	created_by, created_at, updated_by, updated_at, is_deleted`

func scanFlight(row pgx.Row) (domain.Flight, error) {
	var f domain.Flight
	err := row.Scan(&f.ID, &f.Name, &f.PlaneID, &f.StartTime, &f.EndTime, &f.Status, &f.Departure, &f.DepartureCode,
		&f.Arrival, &f.ArrivalCode, &f.Gate, &f.CreatedBy, &f.CreatedAt, &f.UpdatedBy, &f.UpdatedAt, &f.IsDeleted)
	return f, err
}

func (r *PGFlightRepository) FindAllActive(ctx context.Context, page domain.PageRequest) ([]domain.Flight, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	q := activeQuery("")
	tail := q.where() + " ORDER BY id" + q.page(page)
	return r.list(ctx, tail, q.args)
}

func (r *PGFlightRepository) FindByIDActive(ctx context.Context, id int64) (*domain.Flight, error) {
	q := activeQuery("").equals("id", id)
	f, err := scanFlight(r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights`+q.where(), q.args...))
	if err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

func (r *PGFlightRepository) ExistsByIDActive(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM flights WHERE id=$1 AND is_deleted = FALSE)`, id).Scan(&exists)
	return exists, translate(err)
}

func (r *PGFlightRepository) FindByStatusActive(ctx context.Context, status domain.FlightStatus) ([]domain.Flight, error) {
	q := activeQuery("").equals("status", status)
	return r.list(ctx, q.where()+" ORDER BY start_time, id", q.args)
}

func (r *PGFlightRepository) Search(ctx context.Context, filter domain.FlightFilter, page domain.PageRequest) ([]domain.Flight, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	q := activeQuery("").
		contains("name", filter.Name).
		contains("departure", filter.Departure).
		contains("arrival", filter.Arrival).
		within("start_time", filter.From, filter.To)
	tail := q.where() + " ORDER BY start_time, id" + q.page(page)
	return r.list(ctx, tail, q.args)
}

// Save inserts a new flight when it has no id and otherwise overwrites every
// column of the active row with that id.
func (r *PGFlightRepository) Save(ctx context.Context, f *domain.Flight) error {
	author := audit.Stamp(ctx)
	if f.IsNew() {
		row := r.db.QueryRow(ctx, `INSERT INTO flights (name, plane_id, start_time, end_time, status, departure, departure_code,
			arrival, arrival_code, gate, created_by, created_at, updated_by, updated_at, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), $11, now(), FALSE)
		RETURNING id, created_by, created_at, updated_by, updated_at, is_deleted`,
			f.Name, f.PlaneID, f.StartTime, f.EndTime, f.Status, f.Departure, f.DepartureCode, f.Arrival, f.ArrivalCode, f.Gate, author)
		return translate(row.Scan(&f.ID, &f.CreatedBy, &f.CreatedAt, &f.UpdatedBy, &f.UpdatedAt, &f.IsDeleted))
	}

	row := r.db.QueryRow(ctx, `UPDATE flights SET name=$1, plane_id=$2, start_time=$3, end_time=$4, status=$5, departure=$6,
			departure_code=$7, arrival=$8, arrival_code=$9, gate=$10, is_deleted=$11, updated_by=$12, updated_at=now()
		WHERE id=$13 AND is_deleted = FALSE
		RETURNING created_by, created_at, updated_by, updated_at`,
		f.Name, f.PlaneID, f.StartTime, f.EndTime, f.Status, f.Departure, f.DepartureCode, f.Arrival, f.ArrivalCode, f.Gate,
		f.IsDeleted, author, f.ID)
	return translate(row.Scan(&f.CreatedBy, &f.CreatedAt, &f.UpdatedBy, &f.UpdatedAt))
}

func (r *PGFlightRepository) list(ctx context.Context, tail string, args []any) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights`+tail, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Flight, error) {
		return scanFlight(row)
	})
}

var _ FlightRepository = (*PGFlightRepository)(nil)
