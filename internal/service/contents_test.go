package service

import (
	"context"
	"testing"

	"second-brain/api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentCreateAndList(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)
	owner := mustRegister(t, NewAccounts(store, testHasher()), "alice")
	c := NewContents(store)

	first, err := c.Create(ctx, owner, NewContent{Link: "https://x.com/1", Type: "tweet", Title: "first", Tags: "a,b"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, owner, first.UserID)
	assert.Equal(t, model.ContentTweet, first.Type)

	second, err := c.Create(ctx, owner, NewContent{Link: "https://youtu.be/2", Type: "video", Title: "second"})
	require.NoError(t, err)

	list, err := c.ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, "a,b", list[0].Tags)
}

func TestContentListIsOwnerScoped(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)
	accounts := NewAccounts(store, testHasher())
	alice := mustRegister(t, accounts, "alice")
	bob := mustRegister(t, accounts, "bob")
	c := NewContents(store)

	_, err := c.Create(ctx, alice, NewContent{Link: "https://x.com/1", Type: "tweet", Title: "mine"})
	require.NoError(t, err)

	list, err := c.ListByOwner(ctx, bob)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestContentCreateValidation(t *testing.T) {
	c := NewContents(testStore(t))
	ctx := context.Background()

	_, err := c.Create(ctx, "u", NewContent{Link: "https://x.com/1", Type: "podcast", Title: "t"})
	assert.ErrorIs(t, err, ErrInvalidContentType)

	_, err = c.Create(ctx, "u", NewContent{Link: "https://x.com/1", Type: "tweet", Title: " "})
	assert.ErrorIs(t, err, ErrInvalidContent)

	_, err = c.Create(ctx, "u", NewContent{Link: "not a link", Type: "tweet", Title: "t"})
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestContentDelete(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)
	accounts := NewAccounts(store, testHasher())
	alice := mustRegister(t, accounts, "alice")
	bob := mustRegister(t, accounts, "bob")
	c := NewContents(store)

	item, err := c.Create(ctx, alice, NewContent{Link: "https://x.com/1", Type: "tweet", Title: "t"})
	require.NoError(t, err)

	assert.ErrorIs(t, c.Delete(ctx, bob, item.ID), ErrContentNotFound, "only the owner may delete")

	list, err := c.ListByOwner(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, c.Delete(ctx, alice, item.ID))
	assert.ErrorIs(t, c.Delete(ctx, alice, item.ID), ErrContentNotFound)
	assert.ErrorIs(t, c.Delete(ctx, alice, ""), ErrContentNotFound)
	assert.ErrorIs(t, c.Delete(ctx, alice, "garbage"), ErrContentNotFound)

	list, err = c.ListByOwner(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, list)
}
