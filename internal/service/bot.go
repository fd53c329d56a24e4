package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rocketscienceinc/gomoku/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// Decision is a chosen move together with the log lines produced while choosing it.
type Decision struct {
	Move int
	Log  []string
}

type BotService interface {
	ChooseMove(board *entity.Board) (Decision, error)
}

type botService struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewBotService() BotService {
	return NewBotServiceWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewBotServiceWithSource - deterministic bot for tests.
func NewBotServiceWithSource(source rand.Source) BotService {
	return &botService{
		rnd: rand.New(source), //nolint: gosec // it's ok
	}
}

// ChooseMove - opens in the centre, then answers next to existing stones.
func (that *botService) ChooseMove(board *entity.Board) (Decision, error) {
	if board.IsBlank() {
		center := board.Index(board.Size/2, board.Size/2)
		return Decision{
			Move: center,
			Log:  []string{"info opening in the centre", fmt.Sprintf("bestmove %d", center)},
		}, nil
	}

	// on a non-blank grid every empty region borders a stone
	candidates := neighbourCells(board)
	if len(candidates) == 0 {
		return Decision{}, ErrNoAvailableMoves
	}

	log := []string{fmt.Sprintf("info candidates %d", len(candidates))}
	chosenCell := candidates[that.intn(len(candidates))]
	log = append(log, fmt.Sprintf("bestmove %d", chosenCell))

	return Decision{Move: chosenCell, Log: log}, nil
}

func (that *botService) intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Intn(n)
}

// neighbourCells - empty cells touching at least one occupied cell, in index order.
func neighbourCells(board *entity.Board) []int {
	var cells []int

	for _, index := range board.EmptyCells() {
		row, col := board.Coords(index)
		if hasNeighbour(board, row, col) {
			cells = append(cells, index)
		}
	}

	return cells
}

func hasNeighbour(board *entity.Board, row, col int) bool {
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}

			r, c := row+dRow, col+dCol
			if board.InBounds(r, c) && !board.IsEmpty(board.Index(r, c)) {
				return true
			}
		}
	}

	return false
}
