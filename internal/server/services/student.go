package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studentsapi/internal/common"
	"github.com/dmitrijs2005/studentsapi/internal/dbx"
	"github.com/dmitrijs2005/studentsapi/internal/server/models"
	"github.com/dmitrijs2005/studentsapi/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/studentsapi/internal/server/repositories/students"
)

// StudentService enforces the student record rules: ids must resolve and no
// two students share an email. Every mutation runs in one transaction.
type StudentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewStudentService(db *sql.DB, m repomanager.RepositoryManager) *StudentService {
	return &StudentService{db: db, repomanager: m}
}

func notFound(id int64) error {
	return fmt.Errorf("%w: student with id %d not found", common.ErrorNotFound, id)
}

func emailTaken(email string) error {
	return fmt.Errorf("%w: email %s is already taken", common.ErrorConflict, email)
}

// passthrough keeps the known kinds as they are and wraps everything else.
func passthrough(err error, op string) error {
	if errors.Is(err, common.ErrorConflict) || errors.Is(err, common.ErrorNotFound) {
		return err
	}
	return fmt.Errorf("error %s student: %w", op, err)
}

func findOne(ctx context.Context, repo students.Repository, id int64) (*models.Student, error) {
	st, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, notFound(id)
		}
		return nil, fmt.Errorf("error loading student: %w", err)
	}
	return st, nil
}

func findOneByEmail(ctx context.Context, repo students.Repository, email string) (*models.Student, error) {
	st, err := repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading student: %w", err)
	}
	return st, nil
}

func (s *StudentService) FindOne(ctx context.Context, id int64) (*models.Student, error) {
	return findOne(ctx, s.repomanager.Students(s.db), id)
}

// FindOneByEmail returns nil without error when no student has that email.
func (s *StudentService) FindOneByEmail(ctx context.Context, email string) (*models.Student, error) {
	return findOneByEmail(ctx, s.repomanager.Students(s.db), email)
}

// FindAll returns every student in id order.
func (s *StudentService) FindAll(ctx context.Context) ([]*models.Student, error) {
	list, err := s.repomanager.Students(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return list, nil
}

// Create stores a new student. All five attributes are required; an email
// already in use is common.ErrorConflict and nothing is written.
func (s *StudentService) Create(ctx context.Context, f models.StudentFields) (*models.Student, error) {
	if f.Firstname == nil || f.Lastname == nil || f.Email == nil || f.Address == nil || f.Score == nil {
		return nil, fmt.Errorf("%w: firstname, lastname, email, address and score are required", common.ErrorValidation)
	}

	var created *models.Student
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Students(tx)

		existing, err := findOneByEmail(ctx, repo, *f.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return emailTaken(*f.Email)
		}

		created, err = repo.Insert(ctx, f.NewStudent())
		if err != nil {
			return passthrough(err, "creating")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies the set fields of f to student id and returns the stored
// record. Taking an email owned by another student is common.ErrorConflict;
// re-assigning the student's own email is allowed.
func (s *StudentService) Update(ctx context.Context, id int64, f models.StudentFields) (*models.Student, error) {
	var updated *models.Student
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Students(tx)

		current, err := findOne(ctx, repo, id)
		if err != nil {
			return err
		}

		if f.Email != nil {
			owner, err := findOneByEmail(ctx, repo, *f.Email)
			if err != nil {
				return err
			}
			if owner != nil && owner.ID != current.ID {
				return emailTaken(*f.Email)
			}
		}

		if f.Empty() {
			updated = current
			return nil
		}

		if _, err := repo.UpdateFields(ctx, id, f); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return notFound(id)
			}
			return passthrough(err, "updating")
		}

		updated, err = findOne(ctx, repo, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes student id and returns its last stored values.
func (s *StudentService) Delete(ctx context.Context, id int64) (*models.Student, error) {
	var deleted *models.Student
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Students(tx)

		current, err := findOne(ctx, repo, id)
		if err != nil {
			return err
		}

		if err := repo.Delete(ctx, id); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return notFound(id)
			}
			return passthrough(err, "deleting")
		}

		deleted = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
