package game

import (
	"context"
	"sync"
)

// SessionService keeps live sessions in memory and restores dropped ones
// from the snapshot store.
type SessionService struct {
	mu sync.Mutex
	in map[string]*Session

	cfg     Config
	persist SessionPersistence
}

func NewSessionService(cfg Config, persist SessionPersistence) *SessionService {
	return &SessionService{
		in:      make(map[string]*Session),
		cfg:     cfg,
		persist: persist,
	}
}

// Create starts a new game with a random secret.
func (s *SessionService) Create(ctx context.Context, sessionID string) (*Session, error) {
	sess, err := NewSession(sessionID, s.cfg, RandomSecret())
	if err != nil {
		return nil, err
	}

	// every state change saves a snapshot
	sess.onPersist = func(snap SessionSnapshot) {
		_ = s.persist.Save(ctx, sessionID, snap)
	}

	sess.mu.Lock()
	snap := sess.snapshotLocked()
	sess.mu.Unlock()
	if err := s.persist.Save(ctx, sessionID, snap); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.in[sessionID] = sess
	s.mu.Unlock()

	return sess, nil
}

func (s *SessionService) GetOrLoad(ctx context.Context, sessionID string) (*Session, bool, error) {
	s.mu.Lock()
	sess, ok := s.in[sessionID]
	s.mu.Unlock()
	if ok {
		return sess, true, nil
	}

	snap, found, err := s.persist.Load(ctx, sessionID)
	if err != nil || !found {
		return nil, false, err
	}

	sess, err = restoreSession(snap)
	if err != nil {
		return nil, false, err
	}
	sess.onPersist = func(snap SessionSnapshot) {
		_ = s.persist.Save(ctx, sessionID, snap)
	}

	s.mu.Lock()
	s.in[sessionID] = sess
	s.mu.Unlock()

	return sess, true, nil
}
