package students

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studentsapi/internal/common"
	"github.com/dmitrijs2005/studentsapi/internal/dbx"
	"github.com/dmitrijs2005/studentsapi/internal/server/models"
)

const columns = `id, firstname, lastname, email, address, score, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStudent(row scanner) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(&s.ID, &s.Firstname, &s.Lastname, &s.Email, &s.Address, &s.Score, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func wrap(err error, email string) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return common.ErrorNotFound
	case dbx.IsUniqueViolation(err):
		return fmt.Errorf("%w: email %s is already taken", common.ErrorConflict, email)
	default:
		return fmt.Errorf("db error: %w", err)
	}
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + columns + ` FROM students WHERE id = $1`

	s, err := scanStudent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, wrap(err, "")
	}
	return s, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `SELECT ` + columns + ` FROM students WHERE email = $1`

	s, err := scanStudent(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, wrap(err, email)
	}
	return s, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT ` + columns + ` FROM students ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, s *models.Student) (*models.Student, error) {
	query :=
		`INSERT INTO students (firstname, lastname, email, address, score)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING ` + columns

	stored, err := scanStudent(r.db.QueryRowContext(ctx, query,
		s.Firstname, s.Lastname, s.Email, s.Address, s.Score))
	if err != nil {
		return nil, wrap(err, s.Email)
	}
	return stored, nil
}

// UpdateFields leaves a column untouched when its field is nil: the nil
// pointer binds as NULL and COALESCE keeps the current value.
func (r *PostgresRepository) UpdateFields(ctx context.Context, id int64, f models.StudentFields) (*models.Student, error) {
	query :=
		`UPDATE students SET
		   firstname  = COALESCE($2, firstname),
		   lastname   = COALESCE($3, lastname),
		   email      = COALESCE($4, email),
		   address    = COALESCE($5, address),
		   score      = COALESCE($6, score),
		   updated_at = now()
		 WHERE id = $1
		 RETURNING ` + columns

	email := ""
	if f.Email != nil {
		email = *f.Email
	}

	stored, err := scanStudent(r.db.QueryRowContext(ctx, query,
		id, f.Firstname, f.Lastname, f.Email, f.Address, f.Score))
	if err != nil {
		return nil, wrap(err, email)
	}
	return stored, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM students WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
