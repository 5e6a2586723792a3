package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/studentsapi/internal/common"
	"github.com/dmitrijs2005/studentsapi/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	u, err := r.Create(ctx, &models.User{Name: "Alice", Email: "a@a", PasswordHash: "h"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	byEmail, err := r.GetByEmail(ctx, "a@a")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byID, err := r.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", byID.Name)

	// returned values are copies
	byID.Name = "changed"
	again, _ := r.GetByID(ctx, u.ID)
	assert.Equal(t, "Alice", again.Name)
}

func TestMemoryRepository_Errors(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	_, err := r.Create(ctx, &models.User{Email: "a@a"})
	require.NoError(t, err)

	_, err = r.Create(ctx, &models.User{Email: "a@a"})
	assert.ErrorIs(t, err, common.ErrorConflict)

	_, err = r.GetByEmail(ctx, "ghost@x")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.GetByID(ctx, 99)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
