package game

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Engine tracks the set of Numbers still consistent with every feedback
// observation received so far. The set starts as the full universe, shrinks
// monotonically under Prune and never re-grows.
//
// Engine is not safe for concurrent use; each game owns its own instance.
type Engine struct {
	candidates []Number
}

// NewEngine returns an engine whose candidate set is the full universe.
func NewEngine() *Engine {
	return &Engine{candidates: Universe()}
}

// Size returns the number of remaining candidates.
func (e *Engine) Size() int { return len(e.candidates) }

// Candidates returns a snapshot of the remaining candidates, valid until the
// next Prune.
func (e *Engine) Candidates() []Number {
	out := make([]Number, len(e.candidates))
	copy(out, e.candidates)
	return out
}

// Uncertainty returns the remaining uncertainty in bits: log2 of the
// candidate set size. Zero when a single candidate remains.
func (e *Engine) Uncertainty() (float64, error) {
	if len(e.candidates) == 0 {
		return 0, ErrEmptyCandidateSet
	}
	return math.Log2(float64(len(e.candidates))), nil
}

// ExpectedGain returns the expected information (in bits) revealed by playing
// guess, assuming the secret is uniform over the current candidates: the
// Shannon entropy of the partition of candidates by the feedback they would
// produce. The guess need not itself be a candidate.
func (e *Engine) ExpectedGain(guess Number) (float64, error) {
	if len(e.candidates) == 0 {
		return 0, ErrEmptyCandidateSet
	}
	if !guess.valid() {
		return 0, ErrInvalidNumber
	}
	counts := make(map[Feedback]int, 16)
	for _, c := range e.candidates {
		counts[bullsCows(c, guess)]++
	}
	total := float64(len(e.candidates))
	var h float64
	for _, n := range counts {
		p := float64(n) / total
		h -= p * math.Log2(p)
	}
	return h, nil
}

// SuggestBestGuess evaluates ExpectedGain for every Number in pool and
// returns the first one (in pool order) with the maximum gain, together with
// that gain. The pool is typically the current candidates, or the full
// universe for exploratory guessing.
//
// Evaluation is read-only over the candidate set, so the pool is scanned
// with a bounded worker group; gains land in pool positions, which keeps the
// first-wins tie-break deterministic.
func (e *Engine) SuggestBestGuess(pool []Number) (Number, float64, error) {
	if len(e.candidates) == 0 {
		return Number{}, 0, ErrEmptyCandidateSet
	}
	if len(pool) == 0 {
		return Number{}, 0, ErrEmptyPool
	}

	gains := make([]float64, len(pool))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	const chunk = 128
	for start := 0; start < len(pool); start += chunk {
		end := min(start+chunk, len(pool))
		g.Go(func() error {
			for i := start; i < end; i++ {
				gain, err := e.ExpectedGain(pool[i])
				if err != nil {
					return err
				}
				gains[i] = gain
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Number{}, 0, err
	}

	best := 0
	for i := 1; i < len(pool); i++ {
		if gains[i] > gains[best] {
			best = i
		}
	}
	return pool[best], gains[best], nil
}

// Prune keeps only the candidates that would have produced observed for
// guess. Irreversible. Pruning with feedback that no candidate can produce
// empties the set; that is not rejected here — the next Uncertainty or
// ExpectedGain call reports ErrEmptyCandidateSet.
func (e *Engine) Prune(guess Number, observed Feedback) error {
	if !guess.valid() {
		return ErrInvalidNumber
	}
	kept := e.candidates[:0]
	for _, c := range e.candidates {
		if bullsCows(c, guess) == observed {
			kept = append(kept, c)
		}
	}
	e.candidates = kept
	return nil
}
