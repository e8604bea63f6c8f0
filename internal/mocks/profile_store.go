package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/store"
)

// MockProfileStore implements store.ProfileStore in memory.
type MockProfileStore struct {
	CreateFn       func(ctx context.Context, profile *domain.Profile) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	DeleteFn       func(ctx context.Context, id uuid.UUID) error
	DeleteByUserFn func(ctx context.Context, userID uuid.UUID) (int64, error)

	mu       sync.Mutex
	profiles map[uuid.UUID]domain.Profile
	seq      int
	order    map[uuid.UUID]int

	// Calls counts every store operation, including overridden ones.
	Calls int
}

var _ store.ProfileStore = (*MockProfileStore)(nil)

// NewMockProfileStore creates an empty profile store.
func NewMockProfileStore() *MockProfileStore {
	return &MockProfileStore{
		profiles: make(map[uuid.UUID]domain.Profile),
		order:    make(map[uuid.UUID]int),
	}
}

// WithTx returns the same store; the mock has no transactions.
func (m *MockProfileStore) WithTx(_ *sql.Tx) store.ProfileStore {
	return m
}

// Add stores a profile directly, bypassing Create.
func (m *MockProfileStore) Add(p domain.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(p)
}

// Get returns a stored profile without counting a call.
func (m *MockProfileStore) Get(id uuid.UUID) (domain.Profile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	return p, ok
}

// CountByUser returns how many profiles userID owns.
func (m *MockProfileStore) CountByUser(userID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, p := range m.profiles {
		if p.UserID == userID {
			n++
		}
	}
	return n
}

// CallCount returns how many operations were invoked.
func (m *MockProfileStore) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

func (m *MockProfileStore) put(p domain.Profile) {
	m.seq++
	m.profiles[p.ID] = p
	m.order[p.ID] = m.seq
}

func (m *MockProfileStore) record() {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
}

// Create implements store.ProfileStore.
func (m *MockProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	m.record()
	if m.CreateFn != nil {
		return m.CreateFn(ctx, profile)
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(*profile)
	return nil
}

// GetByID implements store.ProfileStore.
func (m *MockProfileStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	m.record()
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return nil, store.ErrProfileNotFound
	}
	return &p, nil
}

// ListByUser implements store.ProfileStore, in insertion order.
func (m *MockProfileStore) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Profile, error) {
	m.record()

	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Profile{}
	for _, p := range m.profiles {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return m.order[out[i].ID] < m.order[out[j].ID] })
	return out, nil
}

// Delete implements store.ProfileStore.
func (m *MockProfileStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.record()
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[id]; !ok {
		return store.ErrProfileNotFound
	}
	delete(m.profiles, id)
	delete(m.order, id)
	return nil
}

// DeleteByUser implements store.ProfileStore.
func (m *MockProfileStore) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	m.record()
	if m.DeleteByUserFn != nil {
		return m.DeleteByUserFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, p := range m.profiles {
		if p.UserID == userID {
			delete(m.profiles, id)
			delete(m.order, id)
			n++
		}
	}
	return n, nil
}
