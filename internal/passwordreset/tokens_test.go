package passwordreset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chateaupet/petshop-api/internal/httperr"
)

func TestMemoryTokens_IssueAndConsume(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTokens()

	token, err := store.Issue(ctx, "user-abc")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := store.Consume(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "user-abc", userID)
}

func TestMemoryTokens_ConsumeIsOneShot(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTokens()

	token, err := store.Issue(ctx, "user-abc")
	assert.NoError(t, err)

	_, err = store.Consume(ctx, token)
	assert.NoError(t, err)

	_, err = store.Consume(ctx, token)
	assert.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "token_invalido"))
}

func TestMemoryTokens_UnknownToken(t *testing.T) {
	_, err := NewMemoryTokens().Consume(context.Background(), "nao-existe")

	assert.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "token_invalido"))
}

func TestMemoryTokens_TokensAreUnique(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTokens()

	a, err := store.Issue(ctx, "user-1")
	assert.NoError(t, err)
	b, err := store.Issue(ctx, "user-2")
	assert.NoError(t, err)

	assert.NotEqual(t, a, b)
}
