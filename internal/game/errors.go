package game

import "errors"

var (
	// ErrInvalidNumber — the value is not 4 distinct digits in 0-9.
	ErrInvalidNumber = errors.New("number must be 4 distinct digits (0-9)")

	// ErrEmptyCandidateSet — no candidate is consistent with the feedback
	// received so far; some earlier feedback was contradictory.
	ErrEmptyCandidateSet = errors.New("candidate set is empty (contradictory feedback)")

	// ErrEmptyPool — SuggestBestGuess was given nothing to choose from.
	ErrEmptyPool = errors.New("guess pool is empty")
)
