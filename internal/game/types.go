package game

import "encoding/json"

// Envelope WS envelope: {"type":"...","payload":{...}}
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// GuessPayload incoming
type GuessPayload struct {
	Guess string `json:"guess"`
}

// HintRequestPayload incoming; pool may override the session default.
type HintRequestPayload struct {
	Pool string `json:"pool,omitempty"` // candidates|universe
}

// Attempt outgoing: one resolved guess.
type Attempt struct {
	Turn       int     `json:"turn"`
	Guess      string  `json:"guess"`
	Bulls      int     `json:"bulls"`
	Cows       int     `json:"cows"`
	Remaining  int     `json:"remaining"`  // candidates left after this guess
	GainedBits float64 `json:"gainedBits"` // uncertainty removed by this guess
}

// HintPayload outgoing: the engine's recommended next guess.
type HintPayload struct {
	Guess        string  `json:"guess"`
	ExpectedBits float64 `json:"expectedBits"`
	Pool         string  `json:"pool"`
	ElapsedMs    int64   `json:"elapsedMs"`
}

type StatePayload struct {
	SessionID       string    `json:"sessionId"`
	Phase           string    `json:"phase"` // playing|finished
	Turn            int       `json:"turn"`
	Remaining       int       `json:"remaining"`
	UncertaintyBits float64   `json:"uncertaintyBits"`
	History         []Attempt `json:"history"`
	Secret          string    `json:"secret,omitempty"` // revealed only after finished
}

type FinishedPayload struct {
	Secret string `json:"secret"`
	Turns  int    `json:"turns"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
