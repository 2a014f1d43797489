package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestBucketList_ListOwnedPagination(t *testing.T) {
	_, lists, _ := newTestServices(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c", "d", "e"} {
		_, err := lists.Create(ctx, 1, title, "")
		assert.NoError(t, err)
	}

	// skip, затем limit
	page, err := lists.ListOwned(ctx, 1, 1, 2)
	assert.NoError(t, err)
	if assert.Len(t, page, 2) {
		assert.Equal(t, "b", page[0].Title)
		assert.Equal(t, "c", page[1].Title)
	}

	// skip за пределами — пусто
	page, err = lists.ListOwned(ctx, 1, 10, 2)
	assert.NoError(t, err)
	assert.Empty(t, page)

	// limit 0 трактуется как "без ограничения"
	page, err = lists.ListOwned(ctx, 1, 0, 0)
	assert.NoError(t, err)
	assert.Len(t, page, 5)
}

func TestBucketList_UpdatePartial(t *testing.T) {
	_, lists, _ := newTestServices(t)
	ctx := context.Background()

	l, err := lists.Create(ctx, 1, "Trip", "old desc")
	assert.NoError(t, err)

	// патч только заголовка: описание не трогается
	got, err := lists.Update(ctx, l.ID, 1, BucketListUpdate{Title: strptr("Big Trip")})
	assert.NoError(t, err)
	assert.Equal(t, "Big Trip", got.Title)
	assert.Equal(t, "old desc", got.Description)
}

func TestBucketList_UpdatePrivacyOwnerOnly(t *testing.T) {
	_, lists, _ := newTestServices(t)
	ctx := context.Background()

	l, err := lists.Create(ctx, 1, "Trip", "")
	assert.NoError(t, err)
	shared, err := lists.Share(ctx, l.ID, 1)
	assert.NoError(t, err)

	_, err = lists.Redeem(ctx, *shared.ShareToken, 2)
	assert.NoError(t, err)

	// коллаборатор меняет заголовок — можно
	got, err := lists.Update(ctx, l.ID, 2, BucketListUpdate{Title: strptr("renamed")})
	assert.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)

	// но флаг приватности — только владелец
	_, err = lists.Update(ctx, l.ID, 2, BucketListUpdate{IsPrivate: boolptr(true)})
	assert.ErrorIs(t, err, ErrForbidden)

	// владелец переводит в private — токен сбрасывается вместе с флагом
	got, err = lists.Update(ctx, l.ID, 1, BucketListUpdate{IsPrivate: boolptr(true)})
	assert.NoError(t, err)
	assert.True(t, got.IsPrivate)
	assert.Nil(t, got.ShareToken)
}

func TestBucketList_DeleteOwnerOnlyAndCascade(t *testing.T) {
	_, lists, items := newTestServices(t)
	ctx := context.Background()

	l, err := lists.Create(ctx, 1, "Trip", "")
	assert.NoError(t, err)
	shared, err := lists.Share(ctx, l.ID, 1)
	assert.NoError(t, err)
	_, err = lists.Redeem(ctx, *shared.ShareToken, 2)
	assert.NoError(t, err)

	_, err = items.Create(ctx, l.ID, 1, "pack bags")
	assert.NoError(t, err)

	// коллаборатор удалить список не может
	assert.ErrorIs(t, lists.Delete(ctx, l.ID, 2), ErrForbidden)
	// посторонний получает NotFound
	assert.ErrorIs(t, lists.Delete(ctx, l.ID, 3), ErrNotFound)

	// владелец удаляет; элементы и допуски уходят каскадом
	assert.NoError(t, lists.Delete(ctx, l.ID, 1))
	_, _, err = lists.Evaluate(ctx, l.ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	// бывший коллаборатор тоже больше ничего не видит
	_, _, err = lists.Evaluate(ctx, l.ID, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBucketList_CollaboratorsVisibleToBothRoles(t *testing.T) {
	_, lists, _ := newTestServices(t)
	ctx := context.Background()

	l, err := lists.Create(ctx, 1, "Trip", "")
	assert.NoError(t, err)
	shared, err := lists.Share(ctx, l.ID, 1)
	assert.NoError(t, err)
	_, err = lists.Redeem(ctx, *shared.ShareToken, 2)
	assert.NoError(t, err)

	// владелец видит допуски
	byOwner, err := lists.ListCollaborators(ctx, l.ID, 1)
	assert.NoError(t, err)
	assert.Len(t, byOwner, 1)

	// коллаборатор тоже
	byCollab, err := lists.ListCollaborators(ctx, l.ID, 2)
	assert.NoError(t, err)
	assert.Len(t, byCollab, 1)

	// посторонний — нет
	_, err = lists.ListCollaborators(ctx, l.ID, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}
