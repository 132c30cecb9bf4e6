package game

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Hint pool modes.
const (
	PoolCandidates = "candidates"
	PoolUniverse   = "universe"
)

type Config struct {
	HintPool     string // candidates|universe (default candidates)
	OpeningGuess string // canned first hint while the set is still full; "" disables
}

// Session is one single-player game: the session holds the secret, the
// player guesses, and the attached solver engine tracks what the guesses
// have revealed so far.
type Session struct {
	id string
	mu sync.Mutex

	phase string // playing|finished

	secret Number
	engine *Engine

	hintPool   string
	opening    Number
	hasOpening bool

	history []Attempt

	conn      *ClientConn
	onPersist func(SessionSnapshot)
}

func NewSession(id string, cfg Config, secret Number) (*Session, error) {
	if !secret.valid() {
		return nil, ErrInvalidNumber
	}

	pool := cfg.HintPool
	if pool == "" {
		pool = PoolCandidates
	}
	if pool != PoolCandidates && pool != PoolUniverse {
		return nil, fmt.Errorf("unknown hint pool %q", pool)
	}

	s := &Session{
		id:       id,
		phase:    "playing",
		secret:   secret,
		engine:   NewEngine(),
		hintPool: pool,
	}

	if cfg.OpeningGuess != "" {
		op, err := ParseNumber(cfg.OpeningGuess)
		if err != nil {
			return nil, fmt.Errorf("opening guess %q: %w", cfg.OpeningGuess, err)
		}
		s.opening = op
		s.hasOpening = true
	}
	return s, nil
}

// Attach binds a connection to the session (replacing a previous one on
// reconnect).
func (s *Session) Attach(cc *ClientConn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn = cc
}

func (s *Session) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn = nil
}

// Guess resolves raw against the secret, records the attempt and prunes the
// engine with the real feedback. Returns ErrInvalidNumber for malformed
// input.
func (s *Session) Guess(raw string) (Attempt, error) {
	n, err := ParseNumber(raw)
	if err != nil {
		return Attempt{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != "playing" {
		return Attempt{}, errors.New("game already finished")
	}

	before, err := s.engine.Uncertainty()
	if err != nil {
		return Attempt{}, err
	}

	fb := bullsCows(s.secret, n)
	if err := s.engine.Prune(n, fb); err != nil {
		return Attempt{}, err
	}

	// The feedback came from the real secret, so the secret survived the
	// prune and the set is non-empty.
	after, _ := s.engine.Uncertainty()

	at := Attempt{
		Turn:       len(s.history) + 1,
		Guess:      n.String(),
		Bulls:      fb.Bulls,
		Cows:       fb.Cows,
		Remaining:  s.engine.Size(),
		GainedBits: before - after,
	}
	s.history = append(s.history, at)

	if fb.Solved() {
		s.phase = "finished"
	}

	s.sendLocked(Envelope{Type: "guess_result", Payload: mustJSON(at)})
	if s.phase == "finished" {
		s.sendLocked(Envelope{Type: "game_finished", Payload: mustJSON(FinishedPayload{
			Secret: s.secret.String(),
			Turns:  len(s.history),
		})})
	}
	s.sendStateLocked()
	s.persistLocked()
	return at, nil
}

// Hint returns the guess the engine expects to reveal the most bits.
// poolOverride may name a pool mode to use instead of the session default.
func (s *Session) Hint(poolOverride string) (HintPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != "playing" {
		return HintPayload{}, errors.New("game already finished")
	}

	pool := s.hintPool
	if poolOverride != "" {
		if poolOverride != PoolCandidates && poolOverride != PoolUniverse {
			return HintPayload{}, fmt.Errorf("unknown hint pool %q", poolOverride)
		}
		pool = poolOverride
	}

	started := time.Now()

	// Opening book: on the untouched universe every scan is both slow and
	// pointless, the best opener is known.
	if s.hasOpening && s.engine.Size() == UniverseSize {
		gain, err := s.engine.ExpectedGain(s.opening)
		if err != nil {
			return HintPayload{}, err
		}
		return HintPayload{
			Guess:        s.opening.String(),
			ExpectedBits: gain,
			Pool:         "opening",
			ElapsedMs:    time.Since(started).Milliseconds(),
		}, nil
	}

	var numbers []Number
	switch pool {
	case PoolCandidates:
		numbers = s.engine.Candidates()
	case PoolUniverse:
		numbers = Universe()
	}

	best, gain, err := s.engine.SuggestBestGuess(numbers)
	if err != nil {
		return HintPayload{}, err
	}
	return HintPayload{
		Guess:        best.String(),
		ExpectedBits: gain,
		Pool:         pool,
		ElapsedMs:    time.Since(started).Milliseconds(),
	}, nil
}

// State returns a snapshot of the session for display; valid until the next
// Guess.
func (s *Session) State() StatePayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildStateLocked()
}

func (s *Session) SendState() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendStateLocked()
}

func (s *Session) SendError(code, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendLocked(Envelope{Type: "error", Payload: mustJSON(ErrorPayload{Code: code, Message: message})})
}

func (s *Session) buildStateLocked() StatePayload {
	var bits float64
	if u, err := s.engine.Uncertainty(); err == nil {
		bits = u
	}

	st := StatePayload{
		SessionID:       s.id,
		Phase:           s.phase,
		Turn:            len(s.history) + 1,
		Remaining:       s.engine.Size(),
		UncertaintyBits: bits,
		History:         append([]Attempt(nil), s.history...),
	}
	if s.phase == "finished" {
		st.Secret = s.secret.String()
	}
	return st
}

func (s *Session) sendStateLocked() {
	s.sendLocked(Envelope{Type: "state", Payload: mustJSON(s.buildStateLocked())})
}

func (s *Session) sendLocked(env Envelope) {
	if s.conn == nil {
		return
	}
	s.conn.Send(env)
}

func (s *Session) persistLocked() {
	if s.onPersist == nil {
		return
	}
	s.onPersist(s.snapshotLocked())
}
