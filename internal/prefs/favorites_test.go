package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFavorites_ToggleRoundTrip(t *testing.T) {
	ctx := context.Background()
	fav := NewFavorites(NewMemoryFavorites())

	active, err := fav.Toggle(ctx, "cliente-1", 42)
	assert.NoError(t, err)
	assert.True(t, active)

	ids, err := fav.List(ctx, "cliente-1")
	assert.NoError(t, err)
	assert.Equal(t, []uint{42}, ids)

	active, err = fav.Toggle(ctx, "cliente-1", 42)
	assert.NoError(t, err)
	assert.False(t, active)

	ids, err = fav.List(ctx, "cliente-1")
	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFavorites_KeysAreIsolated(t *testing.T) {
	ctx := context.Background()
	fav := NewFavorites(NewMemoryFavorites())

	_, err := fav.Toggle(ctx, "cliente-1", 7)
	assert.NoError(t, err)

	ids, err := fav.List(ctx, "cliente-2")
	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFavorites_ListNeverNil(t *testing.T) {
	ids, err := NewFavorites(NewMemoryFavorites()).List(context.Background(), "ninguem")
	assert.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}
