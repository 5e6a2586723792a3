package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/studentsapi/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	exp := time.Now().Add(time.Hour)
	require.NoError(t, r.Create(ctx, 1, "h1", &exp))
	require.NoError(t, r.Create(ctx, 1, "h2", nil))
	assert.Equal(t, 2, r.Len())

	s, err := r.Find(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.UserID)
	require.NotNil(t, s.ExpiresAt)
	assert.True(t, s.ExpiresAt.Equal(exp))

	require.NoError(t, r.Delete(ctx, "h1"))
	assert.ErrorIs(t, r.Delete(ctx, "h1"), common.ErrorNotFound)

	_, err = r.Find(ctx, "h1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Equal(t, 1, r.Len())
}
