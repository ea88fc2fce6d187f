package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveQuery_AlwaysFiltersDeleted(t *testing.T) {
	assert.Equal(t, " WHERE is_deleted = FALSE", activeQuery("").where())
	assert.Equal(t, " WHERE t.is_deleted = FALSE", activeQuery("t").where())
}

func TestQuery_CombinesConditions(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	q := activeQuery("").
		contains("name", "VN").
		contains("departure", "").
		within("start_time", &from, &to).
		equals("status", domain.FlightStatusOpen)

	assert.Equal(t, " WHERE is_deleted = FALSE AND name ILIKE $1 AND start_time >= $2 AND start_time <= $3 AND status = $4", q.where())
	assert.Equal(t, []any{"%VN%", from, to, domain.FlightStatusOpen}, q.args)
}

func TestQuery_OpenBounds(t *testing.T) {
	to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	q := activeQuery("t").within("t.created_at", nil, &to)

	assert.Equal(t, " WHERE t.is_deleted = FALSE AND t.created_at <= $1", q.where())
	assert.Len(t, q.args, 1)
}

func TestQuery_Before(t *testing.T) {
	now := time.Now()

	q := activeQuery("t").equals("t.status", domain.TransactionStatusAccepted).before("t.due_date", now)

	assert.Equal(t, " WHERE t.is_deleted = FALSE AND t.status = $1 AND t.due_date < $2", q.where())
}

func TestQuery_Page(t *testing.T) {
	q := activeQuery("").equals("plane_id", int64(3))

	tail := q.page(domain.PageRequest{Page: 2, Size: 10})

	assert.Equal(t, " LIMIT $2 OFFSET $3", tail)
	assert.Equal(t, []any{int64(3), 10, 20}, q.args)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
	assert.Equal(t, "plain", escapeLike("plain"))
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(pgx.ErrNoRows), domain.ErrNotFound)
	assert.ErrorIs(t, translate(fmt.Errorf("scan: %w", pgx.ErrNoRows)), domain.ErrNotFound)

	unique := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_users_email"}
	err := translate(unique)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "idx_users_email")

	fk := &pgconn.PgError{Code: pgForeignKeyViolation, Detail: "Key (flight_id)=(9) is not present"}
	assert.ErrorIs(t, translate(fk), domain.ErrValidation)

	other := errors.New("connection reset")
	assert.Equal(t, other, translate(other))
}
