package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCollaboratorRepository_UpsertIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	r := NewCollaboratorRepository(db)
	ctx := context.Background()

	t1 := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	t2 := time.Now().UTC().Truncate(time.Second)

	assert.NoError(t, r.Upsert(ctx, 1, 100, t1))
	// повторное погашение той же парой — обновляется только accessed_at
	assert.NoError(t, r.Upsert(ctx, 1, 100, t2))

	all, err := r.ListByList(ctx, 1)
	assert.NoError(t, err)
	if assert.Len(t, all, 1) {
		assert.Equal(t, int64(100), all[0].AccountID)
		assert.False(t, all[0].IsOwner)
		assert.WithinDuration(t, t2, all[0].AccessedAt, time.Second)
	}
}

func TestCollaboratorRepository_SeparateAccountsSeparateRows(t *testing.T) {
	db := newTestDB(t)
	r := NewCollaboratorRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	assert.NoError(t, r.Upsert(ctx, 1, 100, now))
	assert.NoError(t, r.Upsert(ctx, 1, 101, now))
	assert.NoError(t, r.Upsert(ctx, 2, 100, now))

	all, err := r.ListByList(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := r.GetByListAndAccount(ctx, 2, 100)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), got.BucketListID)

	_, err = r.GetByListAndAccount(ctx, 2, 101)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}
