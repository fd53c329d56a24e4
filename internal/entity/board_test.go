package entity

import (
	"testing"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()

	board, err := NewBoard(DefaultBoardSize)
	require.NoError(t, err)

	return board
}

func placeAll(t *testing.T, board *Board, mark Mark, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		require.NoError(t, board.Place(cell, mark))
	}
}

func TestNewBoard(t *testing.T) {
	t.Run("Creates an empty N x N board", func(t *testing.T) {
		// When: creating a reference board
		board, err := NewBoard(DefaultBoardSize)

		// Then: it holds N*N empty cells
		require.NoError(t, err)
		assert.Len(t, board.Cells, 400)
		assert.True(t, board.IsBlank())
	})

	t.Run("Rejects boards smaller than the win length", func(t *testing.T) {
		// When: creating a 4x4 board
		_, err := NewBoard(4)

		// Then: ErrInvalidBoardSize is returned
		require.ErrorIs(t, err, ErrInvalidBoardSize)
	})
}

func TestBoard_IndexCoords(t *testing.T) {
	board := newTestBoard(t)

	// index = row*N + col and back
	assert.Equal(t, 210, board.Index(10, 10))

	row, col := board.Coords(210)
	assert.Equal(t, 10, row)
	assert.Equal(t, 10, col)

	row, col = board.Coords(399)
	assert.Equal(t, 19, row)
	assert.Equal(t, 19, col)
}

func TestBoard_Place(t *testing.T) {
	t.Run("Places a mark on an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := newTestBoard(t)

		// When: X is placed at 42
		err := board.Place(42, PlayerX)

		// Then: the cell holds X
		require.NoError(t, err)
		assert.Equal(t, PlayerX, board.Get(42))
	})

	t.Run("Never overwrites an occupied cell", func(t *testing.T) {
		// Given: a board where cell 7 holds X
		board := newTestBoard(t)
		placeAll(t, board, PlayerX, 7)

		// When: O tries the same cell
		err := board.Place(7, PlayerO)

		// Then: ErrCellOccupied is returned and X remains
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, PlayerX, board.Get(7))
	})

	t.Run("Rejects out of range cells", func(t *testing.T) {
		board := newTestBoard(t)

		require.ErrorIs(t, board.Place(-1, PlayerX), ErrInvalidCell)
		require.ErrorIs(t, board.Place(400, PlayerX), ErrInvalidCell)
	})

	t.Run("Rejects the empty mark", func(t *testing.T) {
		board := newTestBoard(t)

		require.ErrorIs(t, board.Place(3, EmptyCell), ErrInvalidMark)
		assert.True(t, board.IsEmpty(3))
	})
}

func TestBoard_CheckWin(t *testing.T) {
	tests := []struct {
		name  string
		cells []int
		last  int
	}{
		{name: "horizontal", cells: []int{0, 1, 2, 3, 4}, last: 4},
		{name: "vertical", cells: []int{5, 25, 45, 65, 85}, last: 45},
		{name: "diagonal down", cells: []int{0, 21, 42, 63, 84}, last: 0},
		{name: "diagonal up", cells: []int{80, 61, 42, 23, 4}, last: 61},
		{name: "bottom right corner", cells: []int{315, 336, 357, 378, 399}, last: 399},
	}

	for _, tt := range tests {
		t.Run("Five in a row wins: "+tt.name, func(t *testing.T) {
			// Given: five collinear X marks
			board := newTestBoard(t)
			placeAll(t, board, PlayerX, tt.cells...)

			// When: checking from one of them
			cells, won := board.CheckWin(tt.last, PlayerX)

			// Then: the win is detected and the line is reported
			require.True(t, won)
			assert.ElementsMatch(t, tt.cells, cells)
			assert.Equal(t, tt.last, cells[0])
		})

		t.Run("Four in a row does not win: "+tt.name, func(t *testing.T) {
			// Given: only four of the five marks
			board := newTestBoard(t)
			placeAll(t, board, PlayerX, tt.cells[:4]...)

			// When: checking from the last of them
			_, won := board.CheckWin(tt.cells[3], PlayerX)

			// Then: no win
			assert.False(t, won)
		})
	}

	t.Run("Scenario A: row 0 with O interleaving elsewhere", func(t *testing.T) {
		// Given: X at 0..4 and O marks on row 1
		board := newTestBoard(t)
		for i := 0; i < 5; i++ {
			require.NoError(t, board.Place(i, PlayerX))
			if i < 4 {
				require.NoError(t, board.Place(20+i, PlayerO))
			}
		}

		// When: checking the last X placement
		cells, won := board.CheckWin(4, PlayerX)

		// Then: the winning set is exactly the row
		require.True(t, won)
		assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, cells)
	})

	t.Run("Runs do not wrap across rows", func(t *testing.T) {
		// Given: X at the end of row 0 and the start of row 1 (contiguous indices)
		board := newTestBoard(t)
		placeAll(t, board, PlayerX, 17, 18, 19, 20, 21)

		// When: checking from the row break
		_, won := board.CheckWin(19, PlayerX)

		// Then: no horizontal win is reported
		assert.False(t, won)
	})

	t.Run("A foreign mark halts the run", func(t *testing.T) {
		// Given: X X O X X X on row 0
		board := newTestBoard(t)
		placeAll(t, board, PlayerX, 0, 1, 3, 4, 5)
		placeAll(t, board, PlayerO, 2)

		// When: checking from 3
		_, won := board.CheckWin(3, PlayerX)

		// Then: the run 3-5 is too short
		assert.False(t, won)
	})

	t.Run("Runs longer than five still win", func(t *testing.T) {
		board := newTestBoard(t)
		placeAll(t, board, PlayerO, 40, 41, 42, 44, 45, 46)
		placeAll(t, board, PlayerO, 43)

		cells, won := board.CheckWin(43, PlayerO)

		require.True(t, won)
		assert.Len(t, cells, 7)
	})

	t.Run("Horizontal is reported before vertical", func(t *testing.T) {
		// Given: a cross of X through 210
		board := newTestBoard(t)
		placeAll(t, board, PlayerX, 208, 209, 211, 212, 170, 190, 230, 250)
		placeAll(t, board, PlayerX, 210)

		// When: checking the centre
		cells, won := board.CheckWin(210, PlayerX)

		// Then: the horizontal line is the reported one
		require.True(t, won)
		assert.ElementsMatch(t, []int{208, 209, 210, 211, 212}, cells)
	})

	t.Run("Checks the given symbol only", func(t *testing.T) {
		board := newTestBoard(t)
		placeAll(t, board, PlayerX, 0, 1, 2, 3, 4)

		_, won := board.CheckWin(4, PlayerO)

		assert.False(t, won)
	})

	t.Run("Out of range origin is not a win", func(t *testing.T) {
		board := newTestBoard(t)

		_, won := board.CheckWin(-1, PlayerX)
		assert.False(t, won)

		_, won = board.CheckWin(400, PlayerX)
		assert.False(t, won)
	})
}

func TestBoard_IsFull(t *testing.T) {
	board, err := NewBoard(5)
	require.NoError(t, err)

	for i := range board.Cells {
		assert.False(t, board.IsFull())
		mark := PlayerX
		if i%2 == 1 {
			mark = PlayerO
		}
		require.NoError(t, board.Place(i, mark))
	}

	assert.True(t, board.IsFull())
	assert.Empty(t, board.EmptyCells())
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board with one mark
	board := newTestBoard(t)
	placeAll(t, board, PlayerX, 10)

	// When: the clone is modified
	clone := board.Clone()
	placeAll(t, clone, PlayerO, 11)

	// Then: the original stays untouched
	assert.True(t, board.IsEmpty(11))
	assert.Equal(t, PlayerX, clone.Get(10))
}
