package prefs

import "context"

// Favorites aplica a semântica de toggle do botão de coração sobre
// qualquer FavoritesStore.
type Favorites struct {
	store FavoritesStore
}

func NewFavorites(store FavoritesStore) *Favorites {
	return &Favorites{store: store}
}

func (f *Favorites) List(ctx context.Context, clientKey string) ([]uint, error) {
	return f.store.List(ctx, clientKey)
}

// Toggle adiciona o produto quando ausente e remove quando presente.
// Devolve true quando o produto ficou favoritado.
func (f *Favorites) Toggle(ctx context.Context, clientKey string, productID uint) (bool, error) {
	has, err := f.store.Contains(ctx, clientKey, productID)
	if err != nil {
		return false, err
	}

	if has {
		if err := f.store.Remove(ctx, clientKey, productID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := f.store.Add(ctx, clientKey, productID); err != nil {
		return false, err
	}
	return true, nil
}
