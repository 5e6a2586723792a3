package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/studentsapi/internal/common"
	"github.com/dmitrijs2005/studentsapi/internal/server/models"
)

type MemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]models.Session
	now      func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sessions: make(map[string]models.Session),
		now:      time.Now,
	}
}

func (r *MemoryRepository) Create(_ context.Context, userID int64, tokenHash string, expiresAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := models.Session{TokenHash: tokenHash, UserID: userID, CreatedAt: r.now().UTC()}
	if expiresAt != nil {
		e := *expiresAt
		s.ExpiresAt = &e
	}
	r.sessions[tokenHash] = s
	return nil
}

func (r *MemoryRepository) Find(_ context.Context, tokenHash string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[tokenHash]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &s, nil
}

func (r *MemoryRepository) Delete(_ context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[tokenHash]; !ok {
		return common.ErrorNotFound
	}
	delete(r.sessions, tokenHash)
	return nil
}

// Len returns the number of stored sessions.
func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
