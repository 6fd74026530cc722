// Package assessment defines the storage contract for self-assessment
// records. The scorer and recommender never touch storage themselves; they
// take already-materialized values, so both are unit-testable against the
// in-memory store alone.
package assessment

import (
	"context"
	"errors"
	"sync"

	"mindmend/internal/domain"
)

var ErrNotFound = errors.New("assessment not found")

// Repository is the single-record-per-user store. Write overwrites wholesale;
// there is no partial update.
type Repository interface {
	Read(ctx context.Context, userID string) (domain.Assessment, error)
	Write(ctx context.Context, a domain.Assessment) error
	Exists(ctx context.Context, userID string) (bool, error)
	Clear(ctx context.Context, userID string) error
}

// Memory is an in-memory Repository for fixtures and tests.
type Memory struct {
	mu      sync.RWMutex
	records map[string]domain.Assessment
}

func NewMemory() *Memory {
	return &Memory{records: map[string]domain.Assessment{}}
}

func (m *Memory) Read(_ context.Context, userID string) (domain.Assessment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.records[userID]
	if !ok {
		return domain.Assessment{}, ErrNotFound
	}
	return a, nil
}

func (m *Memory) Write(_ context.Context, a domain.Assessment) error {
	if a.UserID == "" {
		return errors.New("user_id required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[a.UserID] = a
	return nil
}

func (m *Memory) Exists(_ context.Context, userID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.records[userID]
	return ok, nil
}

func (m *Memory) Clear(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, userID)
	return nil
}
