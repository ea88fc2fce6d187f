package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the part of *pgxpool.Pool the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ DBTX = (*pgxpool.Pool)(nil)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// query accumulates a conjunctive WHERE clause with positional arguments.
// Every query built with activeQuery starts from the soft-delete predicate so
// deleted rows never reach a read path.
type query struct {
	conds []string
	args  []any
}

func activeQuery(alias string) *query {
	q := &query{}
	q.conds = append(q.conds, column(alias, "is_deleted")+" = FALSE")
	return q
}

func column(alias, name string) string {
	if alias == "" {
		return name
	}
	return alias + "." + name
}

func (q *query) arg(v any) string {
	q.args = append(q.args, v)
	return "$" + strconv.Itoa(len(q.args))
}

func (q *query) equals(col string, v any) *query {
	q.conds = append(q.conds, col+" = "+q.arg(v))
	return q
}

// contains adds a case-insensitive substring match. Empty needles are ignored.
func (q *query) contains(col, needle string) *query {
	if needle == "" {
		return q
	}
	q.conds = append(q.conds, col+" ILIKE "+q.arg("%"+escapeLike(needle)+"%"))
	return q
}

// within adds inclusive bounds; nil bounds are open.
func (q *query) within(col string, from, to *time.Time) *query {
	if from != nil {
		q.conds = append(q.conds, col+" >= "+q.arg(*from))
	}
	if to != nil {
		q.conds = append(q.conds, col+" <= "+q.arg(*to))
	}
	return q
}

func (q *query) before(col string, t time.Time) *query {
	q.conds = append(q.conds, col+" < "+q.arg(t))
	return q
}

func (q *query) where() string {
	return " WHERE " + strings.Join(q.conds, " AND ")
}

func (q *query) page(p domain.PageRequest) string {
	return " LIMIT " + q.arg(p.Limit()) + " OFFSET " + q.arg(p.Offset())
}

// escapeLike neutralises LIKE wildcards in user input.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// translate maps driver errors onto the domain error taxonomy. Anything not
// recognised is returned unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.Detail)
		}
	}
	return err
}
