package prefs

import (
	"context"
	"sync"
)

// Implementações em memória, usadas nos testes e como fallback quando o
// Redis não está configurado.

type MemoryFavorites struct {
	mu   sync.RWMutex
	sets map[string]map[uint]struct{}
}

func NewMemoryFavorites() *MemoryFavorites {
	return &MemoryFavorites{sets: make(map[string]map[uint]struct{})}
}

func (m *MemoryFavorites) List(_ context.Context, clientKey string) ([]uint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := []uint{}
	for id := range m.sets[clientKey] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *MemoryFavorites) Add(_ context.Context, clientKey string, productID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sets[clientKey] == nil {
		m.sets[clientKey] = make(map[uint]struct{})
	}
	m.sets[clientKey][productID] = struct{}{}
	return nil
}

func (m *MemoryFavorites) Remove(_ context.Context, clientKey string, productID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sets[clientKey], productID)
	return nil
}

func (m *MemoryFavorites) Contains(_ context.Context, clientKey string, productID uint) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.sets[clientKey][productID]
	return ok, nil
}

type MemorySelection struct {
	mu     sync.RWMutex
	stores map[string]SelectedStore
}

func NewMemorySelection() *MemorySelection {
	return &MemorySelection{stores: make(map[string]SelectedStore)}
}

func (m *MemorySelection) Get(_ context.Context, clientKey string) (SelectedStore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sel, ok := m.stores[clientKey]
	if !ok {
		return SelectedStore{}, ErrNotFound
	}
	return sel, nil
}

func (m *MemorySelection) Set(_ context.Context, clientKey string, store SelectedStore) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stores[clientKey] = store
	return nil
}
