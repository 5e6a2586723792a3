package students

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/studentsapi/internal/common"
	"github.com/dmitrijs2005/studentsapi/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newStudent(email string) *models.Student {
	return &models.Student{Firstname: "a", Lastname: "b", Email: email, Address: "e", Score: 5}
}

func TestMemoryRepository_InsertAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	a, err := r.Insert(ctx, newStudent("a@a"))
	require.NoError(t, err)
	b, err := r.Insert(ctx, newStudent("b@b"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	assert.False(t, a.CreatedAt.IsZero())
	assert.Equal(t, a.CreatedAt, a.UpdatedAt)
}

func TestMemoryRepository_InsertDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	_, err := r.Insert(ctx, newStudent("c@d"))
	require.NoError(t, err)
	_, err = r.Insert(ctx, newStudent("c@d"))
	assert.ErrorIs(t, err, common.ErrorConflict)

	all, _ := r.List(ctx)
	assert.Len(t, all, 1)
}

func TestMemoryRepository_UpdateFields(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	a, _ := r.Insert(ctx, newStudent("a@a"))
	b, _ := r.Insert(ctx, newStudent("b@b"))

	got, err := r.UpdateFields(ctx, a.ID, models.StudentFields{Firstname: ptr("f")})
	require.NoError(t, err)
	assert.Equal(t, "f", got.Firstname)
	assert.Equal(t, "a@a", got.Email)

	_, err = r.UpdateFields(ctx, b.ID, models.StudentFields{Email: ptr("a@a")})
	assert.ErrorIs(t, err, common.ErrorConflict)

	// own email is not a conflict
	_, err = r.UpdateFields(ctx, a.ID, models.StudentFields{Email: ptr("a@a")})
	require.NoError(t, err)

	// moving an email frees the old one
	_, err = r.UpdateFields(ctx, b.ID, models.StudentFields{Email: ptr("z@z")})
	require.NoError(t, err)
	_, err = r.FindByEmail(ctx, "b@b")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	moved, err := r.FindByEmail(ctx, "z@z")
	require.NoError(t, err)
	assert.Equal(t, b.ID, moved.ID)

	_, err = r.UpdateFields(ctx, 99, models.StudentFields{Firstname: ptr("x")})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_DeleteReleasesEmail(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	a, _ := r.Insert(ctx, newStudent("c@d"))
	require.NoError(t, r.Delete(ctx, a.ID))
	assert.ErrorIs(t, r.Delete(ctx, a.ID), common.ErrorNotFound)

	_, err := r.Get(ctx, a.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	again, err := r.Insert(ctx, newStudent("c@d"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), again.ID, "ids are not reused")
}

func TestMemoryRepository_ListOrderedAndIsolated(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	for _, e := range []string{"a@a", "b@b", "c@c"} {
		_, err := r.Insert(ctx, newStudent(e))
		require.NoError(t, err)
	}
	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, s := range list {
		assert.Equal(t, int64(i+1), s.ID)
	}

	list[0].Firstname = "mutated"
	fresh, _ := r.Get(ctx, 1)
	assert.Equal(t, "a", fresh.Firstname)
}

func TestMemoryRepository_ConcurrentInsertSameEmail(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Insert(ctx, newStudent("race@x"))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, common.ErrorConflict)
	}
	assert.Equal(t, 1, ok)
}
