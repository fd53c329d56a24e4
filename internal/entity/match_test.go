package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatch(t *testing.T) {
	t.Run("Local match starts unlocked with X to move", func(t *testing.T) {
		// When: creating a local match with a requested O role
		match, err := NewMatch("", ModeLocal, PlayerO, DefaultBoardSize)

		// Then: the role is ignored and X moves first
		require.NoError(t, err)
		assert.Equal(t, PlayerX, match.Turn)
		assert.Equal(t, PlayerX, match.HumanMark)
		assert.Equal(t, PhaseAwaitingInput, match.Phase)
		assert.False(t, match.IsLocked())
		assert.Empty(t, match.Winner)
	})

	t.Run("Remote match keeps the chosen role", func(t *testing.T) {
		match, err := NewMatch("m1", ModeAssistedRemote, PlayerO, DefaultBoardSize)

		require.NoError(t, err)
		assert.Equal(t, "m1", match.ID)
		assert.Equal(t, PlayerO, match.HumanMark)
		assert.Equal(t, PlayerX, match.OpponentMark())
		assert.True(t, match.IsRemote())
	})

	t.Run("Unknown mode is rejected", func(t *testing.T) {
		_, err := NewMatch("", Mode("online"), PlayerX, DefaultBoardSize)

		require.ErrorIs(t, err, ErrUnknownMode)
	})

	t.Run("Remote match needs a valid role", func(t *testing.T) {
		_, err := NewMatch("m1", ModeAssistedRemote, EmptyCell, DefaultBoardSize)

		require.ErrorIs(t, err, ErrInvalidMark)
	})
}

func TestMatch_Transition(t *testing.T) {
	tests := []struct {
		from, to Phase
		allowed  bool
	}{
		{from: PhaseAwaitingInput, to: PhaseAwaitingRemote, allowed: true},
		{from: PhaseAwaitingInput, to: PhaseFrozen, allowed: true},
		{from: PhaseAwaitingRemote, to: PhaseAwaitingInput, allowed: true},
		{from: PhaseAwaitingRemote, to: PhaseFrozen, allowed: true},
		{from: PhaseAwaitingInput, to: PhaseAwaitingInput, allowed: false},
		{from: PhaseAwaitingRemote, to: PhaseAwaitingRemote, allowed: false},
		{from: PhaseFrozen, to: PhaseAwaitingInput, allowed: false},
		{from: PhaseFrozen, to: PhaseAwaitingRemote, allowed: false},
		{from: PhaseFrozen, to: PhaseFrozen, allowed: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" -> "+string(tt.to), func(t *testing.T) {
			match := &Match{Phase: tt.from}

			err := match.Transition(tt.to)

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, match.Phase)
				return
			}

			require.ErrorIs(t, err, ErrIllegalTransition)
			assert.Equal(t, tt.from, match.Phase)
		})
	}
}

func TestMatch_Freeze(t *testing.T) {
	t.Run("Freezing sets the winner once", func(t *testing.T) {
		// Given: a running match
		match, err := NewMatch("", ModeLocal, PlayerX, DefaultBoardSize)
		require.NoError(t, err)

		// When: freezing with X
		require.NoError(t, match.Freeze(PlayerX, []int{0, 1, 2, 3, 4}))

		// Then: the match is locked for good and a second freeze fails
		assert.True(t, match.IsFrozen())
		assert.True(t, match.IsLocked())
		require.ErrorIs(t, match.Freeze(PlayerO, nil), ErrIllegalTransition)
		assert.Equal(t, PlayerX, match.Winner)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, match.WinningCells)
	})
}

func TestMatch_Copy(t *testing.T) {
	match, err := NewMatch("", ModeLocal, PlayerX, DefaultBoardSize)
	require.NoError(t, err)

	snapshot := match.Copy()
	require.NoError(t, match.Board.Place(0, PlayerX))

	assert.True(t, snapshot.Board.IsEmpty(0))
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, EmptyCell, EmptyCell.Opponent())
}
