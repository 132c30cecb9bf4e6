package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshot_SaveLoadReplay(t *testing.T) {
	ctx := context.Background()
	persist := NewMemorySnapshotStore()

	cfg := Config{OpeningGuess: "0123"}
	svc1 := NewSessionService(cfg, persist)

	const sessionID = "s-test-1"

	sess, err := svc1.Create(ctx, sessionID)
	require.NoError(t, err)

	// play a turn so the snapshot carries history
	at, err := sess.Guess("0123")
	require.NoError(t, err)
	stBefore := sess.State()

	// a second service sharing the store stands in for a restarted handler
	svc2 := NewSessionService(cfg, persist)
	restored, found, err := svc2.GetOrLoad(ctx, sessionID)
	require.NoError(t, err)
	require.True(t, found)

	stAfter := restored.State()
	require.Equal(t, stBefore.Phase, stAfter.Phase)
	require.Equal(t, stBefore.Turn, stAfter.Turn)
	require.Equal(t, stBefore.History, stAfter.History)

	// the candidate set was rebuilt by replaying the recorded guesses
	require.Equal(t, at.Remaining, stAfter.Remaining)
	require.InDelta(t, stBefore.UncertaintyBits, stAfter.UncertaintyBits, 1e-9)
	require.Equal(t, sess.secret, restored.secret)
}

func TestSnapshot_UnknownSessionNotFound(t *testing.T) {
	svc := NewSessionService(Config{}, NewMemorySnapshotStore())
	_, found, err := svc.GetOrLoad(context.Background(), "nope")
	require.NoError(t, err)
	require.False(t, found)
}

func TestSnapshot_CorruptSecretRejected(t *testing.T) {
	ctx := context.Background()
	persist := NewMemorySnapshotStore()
	require.NoError(t, persist.Save(ctx, "bad", SessionSnapshot{
		SessionID: "bad",
		Phase:     "playing",
		Secret:    "1123",
	}))

	svc := NewSessionService(Config{}, persist)
	_, _, err := svc.GetOrLoad(ctx, "bad")
	require.ErrorIs(t, err, ErrInvalidNumber)
}
