package prefs

import (
	"context"
	"errors"
)

// As preferências que antes viviam no localStorage do navegador: a loja
// selecionada e a lista de favoritos. Cada cliente é identificado por uma
// chave opaca (header X-Client-Key) para que o estado sobreviva entre
// visitas sem exigir login. O backend de persistência é injetado: Redis
// em produção, memória nos testes.

var ErrNotFound = errors.New("prefs: not found")

// SelectedStore é o par {id, nome} que o seletor de loja persiste.
type SelectedStore struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type FavoritesStore interface {
	List(ctx context.Context, clientKey string) ([]uint, error)
	Add(ctx context.Context, clientKey string, productID uint) error
	Remove(ctx context.Context, clientKey string, productID uint) error
	Contains(ctx context.Context, clientKey string, productID uint) (bool, error)
}

type SelectionStore interface {
	Get(ctx context.Context, clientKey string) (SelectedStore, error)
	Set(ctx context.Context, clientKey string, store SelectedStore) error
}
