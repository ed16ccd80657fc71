package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/tailquest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChallengeView_AdvanceOutsideCorrectSurfacesError(t *testing.T) {
	v := newChallengeView(&SharedState{App: testApp(t)}, "Spacing Basics", 0)
	require.Equal(t, domain.PhaseInChallenge, v.sess.Phase())

	v.advance()

	require.Error(t, v.err)
	assert.ErrorIs(t, v.err, domain.ErrInvalidTransition)
	assert.Contains(t, v.View(), "cannot advance")
}

func TestChallengeView_AdvanceAfterCorrect(t *testing.T) {
	v := newChallengeView(&SharedState{App: testApp(t)}, "Spacing Basics", 0)
	_, err := v.sess.Submit(context.Background(), "p-4")
	require.NoError(t, err)
	v.feedback = "stale"

	v.advance()

	assert.NoError(t, v.err)
	assert.Empty(t, v.feedback)
	assert.Equal(t, 1, v.sess.Snapshot().Index)
}
