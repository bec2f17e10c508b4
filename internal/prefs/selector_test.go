package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelector_CurrentFallsBackToDefaultStore(t *testing.T) {
	sel := NewSelector(NewMemorySelection())

	current, err := sel.Current(context.Background(), "novo-visitante")

	assert.NoError(t, err)
	assert.Equal(t, uint(1), current.ID)
	assert.Equal(t, "Mooca", current.Name)
}

func TestSelector_SelectPersistsAndNotifies(t *testing.T) {
	ctx := context.Background()
	sel := NewSelector(NewMemorySelection())

	var gotKey string
	var gotStore SelectedStore
	sel.OnChange(func(clientKey string, store SelectedStore) {
		gotKey = clientKey
		gotStore = store
	})

	chosen := SelectedStore{ID: 3, Name: "Ipiranga"}
	assert.NoError(t, sel.Select(ctx, "cliente-1", chosen))

	assert.Equal(t, "cliente-1", gotKey)
	assert.Equal(t, chosen, gotStore)

	current, err := sel.Current(ctx, "cliente-1")
	assert.NoError(t, err)
	assert.Equal(t, chosen, current)
}

func TestSelector_SelectionDoesNotLeakBetweenClients(t *testing.T) {
	ctx := context.Background()
	sel := NewSelector(NewMemorySelection())

	assert.NoError(t, sel.Select(ctx, "cliente-1", SelectedStore{ID: 4, Name: "Santos"}))

	current, err := sel.Current(ctx, "cliente-2")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), current.ID)
}
