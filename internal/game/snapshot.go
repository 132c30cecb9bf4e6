package game

import "fmt"

// SessionSnapshot is the serializable state of a session. The candidate set
// is not stored: restore rebuilds it by replaying the recorded guesses
// through a fresh engine, so it can never drift from the history.
type SessionSnapshot struct {
	SessionID string    `json:"sessionId"`
	Phase     string    `json:"phase"`
	Secret    string    `json:"secret"`
	HintPool  string    `json:"hintPool"`
	Opening   string    `json:"opening,omitempty"`
	History   []Attempt `json:"history"`
}

func (s *Session) snapshotLocked() SessionSnapshot {
	snap := SessionSnapshot{
		SessionID: s.id,
		Phase:     s.phase,
		Secret:    s.secret.String(),
		HintPool:  s.hintPool,
		History:   append([]Attempt(nil), s.history...),
	}
	if s.hasOpening {
		snap.Opening = s.opening.String()
	}
	return snap
}

func restoreSession(snap SessionSnapshot) (*Session, error) {
	secret, err := ParseNumber(snap.Secret)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: secret: %w", snap.SessionID, err)
	}

	s, err := NewSession(snap.SessionID, Config{
		HintPool:     snap.HintPool,
		OpeningGuess: snap.Opening,
	}, secret)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", snap.SessionID, err)
	}

	for _, at := range snap.History {
		guess, err := ParseNumber(at.Guess)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: turn %d: %w", snap.SessionID, at.Turn, err)
		}
		if err := s.engine.Prune(guess, Feedback{Bulls: at.Bulls, Cows: at.Cows}); err != nil {
			return nil, fmt.Errorf("snapshot %s: turn %d: %w", snap.SessionID, at.Turn, err)
		}
	}

	s.phase = snap.Phase
	s.history = append([]Attempt(nil), snap.History...)
	return s, nil
}
