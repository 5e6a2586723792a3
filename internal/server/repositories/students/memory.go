package students

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/studentsapi/internal/common"
	"github.com/dmitrijs2005/studentsapi/internal/server/models"
)

// MemoryRepository keeps students in process memory. Ids start at 1 and are
// never reused; the email index plays the part of the unique constraint.
type MemoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]models.Student
	byEmail map[string]int64
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[int64]models.Student),
		byEmail: make(map[string]int64),
		now:     time.Now,
	}
}

func conflict(email string) error {
	return fmt.Errorf("%w: email %s is already taken", common.ErrorConflict, email)
}

func (r *MemoryRepository) Get(_ context.Context, id int64) (*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &s, nil
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	s := r.byID[id]
	return &s, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Student, 0, len(r.byID))
	for _, s := range r.byID {
		result = append(result, &s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *MemoryRepository) Insert(_ context.Context, s *models.Student) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[s.Email]; taken {
		return nil, conflict(s.Email)
	}

	r.nextID++
	now := r.now().UTC()
	stored := *s
	stored.ID = r.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.byID[stored.ID] = stored
	r.byEmail[stored.Email] = stored.ID

	out := stored
	return &out, nil
}

func (r *MemoryRepository) UpdateFields(_ context.Context, id int64, f models.StudentFields) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if f.Email != nil {
		if owner, taken := r.byEmail[*f.Email]; taken && owner != id {
			return nil, conflict(*f.Email)
		}
	}

	oldEmail := stored.Email
	f.Apply(&stored)
	stored.UpdatedAt = r.now().UTC()

	if stored.Email != oldEmail {
		delete(r.byEmail, oldEmail)
		r.byEmail[stored.Email] = id
	}
	r.byID[id] = stored

	out := stored
	return &out, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, s.Email)
	return nil
}
