package prefs

import (
	"context"
	"sync"

	"github.com/chateaupet/petshop-api/internal/geo"
)

// ChangeListener recebe a nova seleção sempre que um cliente troca de loja.
// É o equivalente do evento chateauStoreChanged disparado na página.
type ChangeListener func(clientKey string, store SelectedStore)

// Selector guarda a loja ativa de cada cliente e avisa os interessados
// quando ela muda.
type Selector struct {
	store SelectionStore

	mu        sync.RWMutex
	listeners []ChangeListener
}

func NewSelector(store SelectionStore) *Selector {
	return &Selector{store: store}
}

// Current devolve a loja salva ou a loja padrão quando não há seleção.
func (s *Selector) Current(ctx context.Context, clientKey string) (SelectedStore, error) {
	sel, err := s.store.Get(ctx, clientKey)
	if err == ErrNotFound {
		fallback := geo.FallbackStores()[0]
		return SelectedStore{ID: fallback.ID, Name: fallback.Name}, nil
	}
	if err != nil {
		return SelectedStore{}, err
	}
	return sel, nil
}

// Select persiste a escolha e notifica os listeners registrados.
func (s *Selector) Select(ctx context.Context, clientKey string, store SelectedStore) error {
	if err := s.store.Set(ctx, clientKey, store); err != nil {
		return err
	}

	s.mu.RLock()
	listeners := make([]ChangeListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(clientKey, store)
	}
	return nil
}

func (s *Selector) OnChange(fn ChangeListener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}
