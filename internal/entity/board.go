package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
)

// Mark is the symbol occupying a board cell.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const (
	DefaultBoardSize = 20
	WinLength        = 5

	// NoMove is sent to the move service when no human move precedes the request.
	NoMove = -1
)

var (
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrInvalidMark      = errors.New("invalid mark")
	ErrInvalidBoardSize = errors.New("invalid board size")
)

// direction is one of the four undirected lines through a cell.
type direction struct {
	dRow, dCol int
}

// lineDirections are checked in this order; the first winning one is reported.
var lineDirections = [4]direction{
	{dRow: 0, dCol: 1},  // horizontal
	{dRow: 1, dCol: 0},  // vertical
	{dRow: 1, dCol: 1},  // diagonal down
	{dRow: -1, dCol: 1}, // diagonal up
}

func (that Mark) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - returns the other mark. Empty stays empty.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

type Board struct {
	Size  int    `json:"size"`
	Cells []Mark `json:"cells"`
}

func NewBoard(size int) (*Board, error) {
	if size < WinLength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoardSize, size)
	}

	return &Board{
		Size:  size,
		Cells: make([]Mark, size*size),
	}, nil
}

func (that *Board) Index(row, col int) int {
	return row*that.Size + col
}

func (that *Board) Coords(index int) (int, int) {
	return index / that.Size, index % that.Size
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.Size && col >= 0 && col < that.Size
}

func (that *Board) ValidIndex(index int) bool {
	return index >= 0 && index < len(that.Cells)
}

func (that *Board) Get(index int) Mark {
	if !that.ValidIndex(index) {
		return EmptyCell
	}
	return that.Cells[index]
}

func (that *Board) IsEmpty(index int) bool {
	return that.ValidIndex(index) && that.Cells[index] == EmptyCell
}

// Place - puts mark on an empty cell. A placed mark is never overwritten.
func (that *Board) Place(index int, mark Mark) error {
	if !that.ValidIndex(index) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, index)
	}

	if !mark.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}

	if that.Cells[index] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	that.Cells[index] = mark

	return nil
}

// CheckWin - reports whether mark at index completes a run of at least WinLength cells.
// Detection is anchored at index; the returned cells start with the origin.
func (that *Board) CheckWin(index int, mark Mark) ([]int, bool) {
	if !that.ValidIndex(index) || !mark.IsValid() {
		return nil, false
	}

	row, col := that.Coords(index)

	for _, dir := range lineDirections {
		cells := []int{index}
		cells = append(cells, that.extend(row, col, dir.dRow, dir.dCol, mark)...)
		cells = append(cells, that.extend(row, col, -dir.dRow, -dir.dCol, mark)...)

		if len(cells) >= WinLength {
			return cells, true
		}
	}

	return nil, false
}

// extend - walks away from (row, col) while cells hold mark, at most WinLength-1 steps.
// The first out-of-range or foreign cell stops the walk for good.
func (that *Board) extend(row, col, dRow, dCol int, mark Mark) []int {
	var cells []int

	for step := 1; step < WinLength; step++ {
		r, c := row+step*dRow, col+step*dCol
		if !that.InBounds(r, c) {
			break
		}

		idx := that.Index(r, c)
		if that.Cells[idx] != mark {
			break
		}

		cells = append(cells, idx)
	}

	return cells
}

func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, len(that.Cells))
	for i, cell := range that.Cells {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}
	return cells
}

func (that *Board) IsFull() bool {
	for _, cell := range that.Cells {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

func (that *Board) IsBlank() bool {
	for _, cell := range that.Cells {
		if cell != EmptyCell {
			return false
		}
	}
	return true
}

func (that *Board) Clone() *Board {
	cells := make([]Mark, len(that.Cells))
	copy(cells, that.Cells)

	return &Board{
		Size:  that.Size,
		Cells: cells,
	}
}
