package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/airops/internal/audit"
	"github.com/Domenick1991/airops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository interface {
	FindAllActive(ctx context.Context, page domain.PageRequest) ([]domain.Transaction, error)
	FindByIDActive(ctx context.Context, id int64) (*domain.Transaction, error)
	ExistsByIDActive(ctx context.Context, id int64) (bool, error)
	FindByStatusActive(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error)
	FindByStatusDueBefore(ctx context.Context, status domain.TransactionStatus, instant time.Time) ([]domain.Transaction, error)
	FindByFlightActive(ctx context.Context, flightID int64) ([]domain.Transaction, error)
	Search(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) ([]domain.Transaction, error)
	Save(ctx context.Context, tx *domain.Transaction) error
}

type PGTransactionRepository struct {
	db DBTX
}

func NewTransactionRepository(db *pgxpool.Pool) TransactionRepository {
	return &PGTransactionRepository{db: db}
}

// Reads join the booking with summaries of its user, flight and seat. A user
// that has been soft-deleted is not joined, so such a booking has no recipient.
const transactionSelect = `SELECT t.id, t.user_id, t.flight_id, t.seat_id, t.status, t.due_date,
		t.created_by, t.created_at, t.updated_by, t.updated_at, t.is_deleted,
		u.id, u.email, u.name,
		f.name, f.start_time, f.end_time, f.status, f.departure, f.departure_code, f.arrival, f.arrival_code, f.gate,
		s.name, s.type
	FROM transactions t
	LEFT JOIN users u ON u.id = t.user_id AND u.is_deleted = FALSE
	LEFT JOIN flights f ON f.id = t.flight_id
	LEFT JOIN seats s ON s.id = t.seat_id`

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var (
		t domain.Transaction

		userID                     *int64
		userEmail, userName        *string
		flightName, flightStatus   *string
		flightStart, flightEnd     *time.Time
		departure, departureCode   *string
		arrival, arrivalCode, gate *string
		seatName, seatType         *string
	)
	err := row.Scan(&t.ID, &t.UserID, &t.FlightID, &t.SeatID, &t.Status, &t.DueDate,
		&t.CreatedBy, &t.CreatedAt, &t.UpdatedBy, &t.UpdatedAt, &t.IsDeleted,
		&userID, &userEmail, &userName,
		&flightName, &flightStart, &flightEnd, &flightStatus, &departure, &departureCode, &arrival, &arrivalCode, &gate,
		&seatName, &seatType)
	if err != nil {
		return t, err
	}

	if userID != nil {
		t.User = &domain.User{Email: deref(userEmail), Name: deref(userName)}
		t.User.ID = *userID
	}
	if flightName != nil {
		t.Flight = &domain.Flight{
			Name:          *flightName,
			Status:        domain.FlightStatus(deref(flightStatus)),
			Departure:     deref(departure),
			DepartureCode: deref(departureCode),
			Arrival:       deref(arrival),
			ArrivalCode:   deref(arrivalCode),
			Gate:          deref(gate),
		}
		t.Flight.ID = t.FlightID
		if flightStart != nil {
			t.Flight.StartTime = *flightStart
		}
		if flightEnd != nil {
			t.Flight.EndTime = *flightEnd
		}
	}
	if seatName != nil {
		t.Seat = &domain.Seat{Name: *seatName, Type: domain.SeatType(deref(seatType))}
		t.Seat.ID = t.SeatID
	}
	return t, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *PGTransactionRepository) FindAllActive(ctx context.Context, page domain.PageRequest) ([]domain.Transaction, error) {
	return r.Search(ctx, domain.TransactionFilter{}, page)
}

func (r *PGTransactionRepository) FindByIDActive(ctx context.Context, id int64) (*domain.Transaction, error) {
	q := activeQuery("t").equals("t.id", id)
	t, err := scanTransaction(r.db.QueryRow(ctx, transactionSelect+q.where(), q.args...))
	if err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *PGTransactionRepository) ExistsByIDActive(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM transactions WHERE id=$1 AND is_deleted = FALSE)`, id).Scan(&exists)
	return exists, translate(err)
}

func (r *PGTransactionRepository) FindByStatusActive(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error) {
	q := activeQuery("t").equals("t.status", status)
	return r.list(ctx, q.where()+" ORDER BY t.id", q.args)
}

// FindByStatusDueBefore returns active bookings in status whose due date is
// strictly before instant.
func (r *PGTransactionRepository) FindByStatusDueBefore(ctx context.Context, status domain.TransactionStatus, instant time.Time) ([]domain.Transaction, error) {
	q := activeQuery("t").equals("t.status", status).before("t.due_date", instant)
	return r.list(ctx, q.where()+" ORDER BY t.due_date, t.id", q.args)
}

func (r *PGTransactionRepository) FindByFlightActive(ctx context.Context, flightID int64) ([]domain.Transaction, error) {
	q := activeQuery("t").equals("t.flight_id", flightID)
	return r.list(ctx, q.where()+" ORDER BY t.id", q.args)
}

func (r *PGTransactionRepository) Search(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) ([]domain.Transaction, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	q := activeQuery("t").
		contains("f.name", filter.FlightName).
		within("t.created_at", filter.CreatedFrom, filter.CreatedTo)
	if filter.Status != "" {
		q.equals("t.status", filter.Status)
	}
	tail := q.where() + " ORDER BY t.id" + q.page(page)
	return r.list(ctx, tail, q.args)
}

func (r *PGTransactionRepository) Save(ctx context.Context, t *domain.Transaction) error {
	author := audit.Stamp(ctx)
	if t.IsNew() {
		row := r.db.QueryRow(ctx, `INSERT INTO transactions (user_id, flight_id, seat_id, status, due_date,
			created_by, created_at, updated_by, updated_at, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, now(), $6, now(), FALSE)
		RETURNING id, created_by, created_at, updated_by, updated_at, is_deleted`,
			t.UserID, t.FlightID, t.SeatID, t.Status, t.DueDate, author)
		return translate(row.Scan(&t.ID, &t.CreatedBy, &t.CreatedAt, &t.UpdatedBy, &t.UpdatedAt, &t.IsDeleted))
	}

	row := r.db.QueryRow(ctx, `UPDATE transactions SET user_id=$1, flight_id=$2, seat_id=$3, status=$4, due_date=$5,
			is_deleted=$6, updated_by=$7, updated_at=now()
		WHERE id=$8 AND is_deleted = FALSE
		RETURNING created_by, created_at, updated_by, updated_at`,
		t.UserID, t.FlightID, t.SeatID, t.Status, t.DueDate, t.IsDeleted, author, t.ID)
	return translate(row.Scan(&t.CreatedBy, &t.CreatedAt, &t.UpdatedBy, &t.UpdatedAt))
}

func (r *PGTransactionRepository) list(ctx context.Context, tail string, args []any) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, transactionSelect+tail, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		return scanTransaction(row)
	})
}

var _ TransactionRepository = (*PGTransactionRepository)(nil)
