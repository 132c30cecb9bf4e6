package game

import (
	"fmt"
	"math/bits"
)

// Feedback is the (bulls, cows) outcome of comparing a guess to a secret.
type Feedback struct {
	Bulls int `json:"bulls"`
	Cows  int `json:"cows"`
}

// Solved reports whether the guess matched the secret exactly.
func (f Feedback) Solved() bool { return f.Bulls == 4 }

func (f Feedback) String() string {
	return fmt.Sprintf("%dB%dC", f.Bulls, f.Cows)
}

// Evaluate compares guess to secret and returns bulls (right digit, right
// position) and cows (right digit, wrong position). Both arguments must be
// valid Numbers; otherwise ErrInvalidNumber.
func Evaluate(secret, guess Number) (Feedback, error) {
	if !secret.valid() || !guess.valid() {
		return Feedback{}, ErrInvalidNumber
	}
	return bullsCows(secret, guess), nil
}

// bullsCows assumes both arguments are valid. Digits are distinct within
// each Number, so cows = |digit-set intersection| - bulls.
func bullsCows(secret, guess Number) Feedback {
	bulls := 0
	for i := 0; i < 4; i++ {
		if secret[i] == guess[i] {
			bulls++
		}
	}
	common := bits.OnesCount16(secret.mask() & guess.mask())
	return Feedback{Bulls: bulls, Cows: common - bulls}
}
