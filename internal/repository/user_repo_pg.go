package repository

import (
	"context"

	"github.com/Domenick1991/airops/internal/audit"
	"github.com/Domenick1991/airops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	FindAllActive(ctx context.Context, page domain.PageRequest) ([]domain.User, error)
	FindByIDActive(ctx context.Context, id int64) (*domain.User, error)
	FindByEmailActive(ctx context.Context, email string) (*domain.User, error)
	ExistsByIDActive(ctx context.Context, id int64) (bool, error)
	ExistsByEmailActive(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, user *domain.User) error
	SetPassword(ctx context.Context, id int64, hash string, forgotten bool) error
}

type PGUserRepository struct {
	db DBTX
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

const userColumns = `id, email, password, name, id_number, birthday, phone, gender, address, role, is_forgotten,
	created_by, created_at, updated_by, updated_at, is_deleted`

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.IDNumber, &u.Birthday, &u.Phone, &u.Gender, &u.Address,
		&u.Role, &u.IsForgotten, &u.CreatedBy, &u.CreatedAt, &u.UpdatedBy, &u.UpdatedAt, &u.IsDeleted)
	return u, err
}

func (r *PGUserRepository) FindAllActive(ctx context.Context, page domain.PageRequest) ([]domain.User, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	q := activeQuery("")
	sql := `SELECT ` + userColumns + ` FROM users` + q.where() + ` ORDER BY id` + q.page(page)
	rows, err := r.db.Query(ctx, sql, q.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		return scanUser(row)
	})
}

func (r *PGUserRepository) FindByIDActive(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, activeQuery("").equals("id", id))
}

// FindByEmailActive matches the address exactly.
func (r *PGUserRepository) FindByEmailActive(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, activeQuery("").equals("email", email))
}

func (r *PGUserRepository) findOne(ctx context.Context, q *query) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users`+q.where(), q.args...))
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *PGUserRepository) ExistsByIDActive(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id=$1 AND is_deleted = FALSE)`, id).Scan(&exists)
	return exists, translate(err)
}

func (r *PGUserRepository) ExistsByEmailActive(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1 AND is_deleted = FALSE)`, email).Scan(&exists)
	return exists, translate(err)
}

func (r *PGUserRepository) Save(ctx context.Context, u *domain.User) error {
	author := audit.Stamp(ctx)
	if u.IsNew() {
		row := r.db.QueryRow(ctx, `INSERT INTO users (email, password, name, id_number, birthday, phone, gender, address, role,
			is_forgotten, created_by, created_at, updated_by, updated_at, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), $11, now(), FALSE)
		RETURNING id, created_by, created_at, updated_by, updated_at, is_deleted`,
			u.Email, u.Password, u.Name, u.IDNumber, u.Birthday, u.Phone, u.Gender, u.Address, u.Role, u.IsForgotten, author)
		return translate(row.Scan(&u.ID, &u.CreatedBy, &u.CreatedAt, &u.UpdatedBy, &u.UpdatedAt, &u.IsDeleted))
	}

	row := r.db.QueryRow(ctx, `UPDATE users SET email=$1, password=$2, name=$3, id_number=$4, birthday=$5, phone=$6,
			gender=$7, address=$8, role=$9, is_forgotten=$10, is_deleted=$11, updated_by=$12, updated_at=now()
		WHERE id=$13 AND is_deleted = FALSE
		RETURNING created_by, created_at, updated_by, updated_at`,
		u.Email, u.Password, u.Name, u.IDNumber, u.Birthday, u.Phone, u.Gender, u.Address, u.Role, u.IsForgotten,
		u.IsDeleted, author, u.ID)
	return translate(row.Scan(&u.CreatedBy, &u.CreatedAt, &u.UpdatedBy, &u.UpdatedAt))
}

func (r *PGUserRepository) SetPassword(ctx context.Context, id int64, hash string, forgotten bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET password=$1, is_forgotten=$2, updated_by=$3, updated_at=now()
		WHERE id=$4 AND is_deleted = FALSE`, hash, forgotten, audit.Stamp(ctx), id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ UserRepository = (*PGUserRepository)(nil)
