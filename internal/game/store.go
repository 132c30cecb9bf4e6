package game

import (
	"context"
	"sync"
)

// SessionPersistence — put/get a session snapshot. The only implementation
// is in-memory: snapshots exist so a dropped connection can resume within
// the process lifetime, nothing survives a restart.
type SessionPersistence interface {
	Save(ctx context.Context, sessionID string, snap SessionSnapshot) error
	Load(ctx context.Context, sessionID string) (SessionSnapshot, bool, error)
}

type MemorySnapshotStore struct {
	mu sync.Mutex
	m  map[string]SessionSnapshot
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{m: make(map[string]SessionSnapshot)}
}

func (s *MemorySnapshotStore) Save(ctx context.Context, sessionID string, snap SessionSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[sessionID] = snap
	return nil
}

func (s *MemorySnapshotStore) Load(ctx context.Context, sessionID string) (SessionSnapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.m[sessionID]
	return snap, ok, nil
}

func (s *MemorySnapshotStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, sessionID)
	return nil
}
