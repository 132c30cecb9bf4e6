package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestConn() *ClientConn {
	return &ClientConn{
		ws:   nil,
		send: make(chan []byte, 256),
	}
}

func readEnvelopesNonBlocking(c *ClientConn) []Envelope {
	var envs []Envelope
	for {
		select {
		case msg := <-c.send:
			var env Envelope
			if json.Unmarshal(msg, &env) == nil {
				envs = append(envs, env)
			}
		default:
			return envs
		}
	}
}

func newTestSession(t *testing.T, secret string) *Session {
	t.Helper()
	s, err := NewSession("s1", Config{OpeningGuess: "0123"}, mustNumber(t, secret))
	require.NoError(t, err)
	return s
}

func TestSession_Scenarios(t *testing.T) {
	type scenario struct {
		name string
		run  func(t *testing.T)
	}

	cases := []scenario{
		{
			name: "winning guess finishes the game and reveals the secret",
			run: func(t *testing.T) {
				s := newTestSession(t, "1234")
				c := newTestConn()
				s.Attach(c)

				at, err := s.Guess("1234")
				require.NoError(t, err)
				require.Equal(t, 4, at.Bulls)
				require.Equal(t, 0, at.Cows)
				require.Equal(t, 1, at.Remaining)

				st := s.State()
				require.Equal(t, "finished", st.Phase)
				require.Equal(t, "1234", st.Secret)
				require.Zero(t, st.UncertaintyBits)

				var sawFinished bool
				for _, env := range readEnvelopesNonBlocking(c) {
					if env.Type == "game_finished" {
						sawFinished = true
						var p FinishedPayload
						require.NoError(t, json.Unmarshal(env.Payload, &p))
						require.Equal(t, "1234", p.Secret)
						require.Equal(t, 1, p.Turns)
					}
				}
				require.True(t, sawFinished, "expected a game_finished envelope")
			},
		},
		{
			name: "wrong guess records attempt, prunes and reports gained bits",
			run: func(t *testing.T) {
				s := newTestSession(t, "1234")

				at, err := s.Guess("5678")
				require.NoError(t, err)
				require.Equal(t, 0, at.Bulls)
				require.Equal(t, 0, at.Cows)
				require.Equal(t, 360, at.Remaining)
				require.Greater(t, at.GainedBits, 0.0)

				st := s.State()
				require.Equal(t, "playing", st.Phase)
				require.Empty(t, st.Secret, "secret must stay hidden while playing")
				require.Equal(t, 2, st.Turn)
				require.Len(t, st.History, 1)
				require.Equal(t, 360, st.Remaining)
			},
		},
		{
			name: "invalid guess rejected without touching state",
			run: func(t *testing.T) {
				s := newTestSession(t, "1234")

				_, err := s.Guess("1123")
				require.ErrorIs(t, err, ErrInvalidNumber)
				_, err = s.Guess("12x4")
				require.ErrorIs(t, err, ErrInvalidNumber)

				st := s.State()
				require.Empty(t, st.History)
				require.Equal(t, UniverseSize, st.Remaining)
			},
		},
		{
			name: "guess after finished is an error",
			run: func(t *testing.T) {
				s := newTestSession(t, "1234")
				_, err := s.Guess("1234")
				require.NoError(t, err)

				_, err = s.Guess("5678")
				require.Error(t, err)
			},
		},
		{
			name: "first hint comes from the opening book",
			run: func(t *testing.T) {
				s := newTestSession(t, "1234")

				hint, err := s.Hint("")
				require.NoError(t, err)
				require.Equal(t, "0123", hint.Guess)
				require.Equal(t, "opening", hint.Pool)
				require.Greater(t, hint.ExpectedBits, 0.0)
			},
		},
		{
			name: "later hints search the configured pool",
			run: func(t *testing.T) {
				s := newTestSession(t, "1234")
				_, err := s.Guess("5678")
				require.NoError(t, err)

				hint, err := s.Hint("")
				require.NoError(t, err)
				require.Equal(t, PoolCandidates, hint.Pool)

				suggested := mustNumber(t, hint.Guess)
				require.Contains(t, s.engine.Candidates(), suggested)
			},
		},
		{
			name: "hint pool override validated",
			run: func(t *testing.T) {
				s := newTestSession(t, "1234")
				_, err := s.Hint("bogus")
				require.Error(t, err)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.run(t)
		})
	}
}
