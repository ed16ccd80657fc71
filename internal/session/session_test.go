package session

import (
	"context"
	"testing"

	"github.com/alexanderramin/tailquest/internal/domain"
	"github.com/alexanderramin/tailquest/internal/progress"
	"github.com/alexanderramin/tailquest/internal/repository"
	"github.com/alexanderramin/tailquest/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRecorder struct {
	calls []string
}

func (r *countingRecorder) RecordCompletion(_ context.Context, topic string) bool {
	r.calls = append(r.calls, topic)
	return true
}

func newSession(t *testing.T) (*Session, *countingRecorder) {
	t.Helper()
	rec := &countingRecorder{}
	return New(testutil.NewTestCatalog(t), rec), rec
}

func TestNew_StartsIdle(t *testing.T) {
	s, _ := newSession(t)
	assert.Equal(t, domain.PhaseIdle, s.Phase())

	_, err := s.Submit(context.Background(), "p-4")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = s.Current()
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestStart_UnknownTopic(t *testing.T) {
	s, _ := newSession(t)
	err := s.Start("Grid", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTopic)
	assert.Equal(t, domain.PhaseIdle, s.Phase())
}

func TestStart_IndexHandling(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		wantPhase domain.Phase
		wantIndex int
	}{
		{"first", 0, domain.PhaseInChallenge, 0},
		{"middle", 2, domain.PhaseInChallenge, 2},
		{"negative clamps", -5, domain.PhaseInChallenge, 0},
		{"at end completes", 3, domain.PhaseTopicComplete, 3},
		{"past end completes", 42, domain.PhaseTopicComplete, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newSession(t)
			require.NoError(t, s.Start("Spacing Basics", tt.index))
			assert.Equal(t, tt.wantPhase, s.Phase())
			assert.Equal(t, tt.wantIndex, s.Snapshot().Index)
		})
	}
}

func TestSubmit_CorrectAwardsOnce(t *testing.T) {
	s, rec := newSession(t)
	ctx := context.Background()
	require.NoError(t, s.Start("Spacing Basics", 0))

	res, err := s.Submit(ctx, "  p-4 ")
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.True(t, res.Recorded)
	assert.Equal(t, 10, res.Score)
	assert.Equal(t, "p-4 is the answer.", res.Explanation)
	assert.Equal(t, domain.PhaseCorrect, s.Phase())

	_, err = s.Submit(ctx, "p-4")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, 10, s.Snapshot().Score)
	assert.Equal(t, 1, s.Snapshot().Completed)
	assert.Equal(t, []string{"Spacing Basics"}, rec.calls)
}

func TestSubmit_WrongCyclesHints(t *testing.T) {
	s, rec := newSession(t)
	ctx := context.Background()
	require.NoError(t, s.Start("Spacing Basics", 0))

	want := []string{"Use p- for padding on all sides", "The value 4 is 1rem", "Use p- for padding on all sides"}
	for i, hint := range want {
		before := s.Snapshot()
		res, err := s.Submit(ctx, "padding-4")
		require.NoError(t, err)
		assert.False(t, res.Correct)
		assert.Equal(t, hint, res.Hint, "attempt %d", i)

		after := s.Snapshot()
		assert.Equal(t, before.Score, after.Score)
		assert.Equal(t, before.Index, after.Index)
		assert.Equal(t, (before.HintCursor+1)%2, after.HintCursor)
	}
	assert.Equal(t, domain.PhaseInChallenge, s.Phase())
	assert.Empty(t, rec.calls)
}

func TestSubmit_WrongWithoutHints(t *testing.T) {
	cat := testutil.NewTestCatalog(t, testutil.NewTestTopic("Bare", testutil.WithChallenge("flex")))
	s := New(cat, nil)
	require.NoError(t, s.Start("Bare", 0))

	res, err := s.Submit(context.Background(), "block")
	require.NoError(t, err)
	assert.Equal(t, "", res.Hint)
	assert.Equal(t, 0, s.Snapshot().HintCursor)
}

func TestHint_DoesNotMoveCursor(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.Start("Spacing Basics", 0))

	h1, err := s.Hint()
	require.NoError(t, err)
	h2, err := s.Hint()
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.Equal(t, 0, s.Snapshot().HintCursor)
}

func TestAdvance_OnlyFromCorrect(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.Start("Spacing Basics", 0))

	_, err := s.Advance()
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = s.Submit(context.Background(), "padding")
	require.NoError(t, err)
	_, err = s.Submit(context.Background(), "p-4")
	require.NoError(t, err)

	phase, err := s.Advance()
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseInChallenge, phase)
	assert.Equal(t, 1, s.Snapshot().Index)
	assert.Equal(t, 0, s.Snapshot().HintCursor, "cursor resets on advance")
}

func TestRestart_KeepsScore(t *testing.T) {
	s, _ := newSession(t)
	ctx := context.Background()
	require.NoError(t, s.Start("Flexbox", 0))
	_, err := s.Submit(ctx, "flex")
	require.NoError(t, err)

	assert.ErrorIs(t, s.Restart(), domain.ErrInvalidTransition, "restart not allowed from correct")

	_, err = s.Advance()
	require.NoError(t, err)
	require.Equal(t, domain.PhaseTopicComplete, s.Phase())

	require.NoError(t, s.Restart())
	snap := s.Snapshot()
	assert.Equal(t, domain.PhaseInChallenge, snap.Phase)
	assert.Equal(t, 0, snap.Index)
	assert.Equal(t, 10, snap.Score)
	assert.Equal(t, 1, snap.Completed)
}

func TestRestart_FromIdleFails(t *testing.T) {
	s, _ := newSession(t)
	assert.ErrorIs(t, s.Restart(), domain.ErrInvalidTransition)
}

func TestAccuracy(t *testing.T) {
	s, _ := newSession(t)
	assert.Equal(t, 0.0, s.Accuracy())
	assert.Equal(t, 0, s.AccuracyPercent())

	s = New(testutil.NewTestCatalog(t), nil, WithInitialScore(30, 3))
	assert.InDelta(t, 0.6, s.Accuracy(), 1e-9)
	assert.Equal(t, 60, s.AccuracyPercent())
}

func TestTopicPercent(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.Start("Spacing Basics", 1))
	assert.Equal(t, 33, s.TopicPercent())

	require.NoError(t, s.Start("Spacing Basics", 3))
	assert.Equal(t, 100, s.TopicPercent())
}

func TestScenario_SpacingBasicsWithProgressStore(t *testing.T) {
	ctx := context.Background()
	cat := testutil.NewTestCatalog(t)
	store := progress.Load(ctx, repository.NewMemoryKVStore(), cat, nil)
	s := New(cat, store)

	require.NoError(t, s.Start("Spacing Basics", 0))
	for i, answer := range []string{"p-4", "mt-4", "px-4"} {
		res, err := s.Submit(ctx, answer)
		require.NoError(t, err)
		require.True(t, res.Correct, "answer %d", i)
		_, err = s.Advance()
		require.NoError(t, err)
	}

	snap := s.Snapshot()
	assert.Equal(t, domain.PhaseTopicComplete, snap.Phase)
	assert.Equal(t, 30, snap.Score)
	assert.Equal(t, 3, snap.Completed)
	assert.Equal(t, domain.ProgressRecord{Topic: "Spacing Basics", Completed: 3, Total: 3}, store.TopicProgress("Spacing Basics"))
}

func TestScenario_ReplayDivergesFromStore(t *testing.T) {
	ctx := context.Background()
	cat := testutil.NewTestCatalog(t)
	store := progress.Load(ctx, repository.NewMemoryKVStore(), cat, nil)
	s := New(cat, store)

	require.NoError(t, s.Start("Flexbox", 0))
	for round := 0; round < 2; round++ {
		_, err := s.Submit(ctx, "flex")
		require.NoError(t, err)
		_, err = s.Advance()
		require.NoError(t, err)
		require.NoError(t, s.Restart())
	}

	assert.Equal(t, 2, s.Snapshot().Completed)
	assert.Equal(t, 20, s.Snapshot().Score)
	assert.Equal(t, 1, store.TopicProgress("Flexbox").Completed)
}
