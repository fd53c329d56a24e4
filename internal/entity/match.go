package entity

import (
	"errors"
	"fmt"
)

type Mode string

const (
	ModeLocal          Mode = "local"
	ModeAssistedRemote Mode = "remote"
)

// Phase is the input-acceptance state of a match.
type Phase string

const (
	PhaseAwaitingInput  Phase = "awaiting_input"
	PhaseAwaitingRemote Phase = "awaiting_remote"
	PhaseFrozen         Phase = "frozen"
)

var (
	ErrIllegalTransition = errors.New("illegal phase transition")
	ErrUnknownMode       = errors.New("unknown match mode")
)

var allowedTransitions = map[Phase][]Phase{
	PhaseAwaitingInput:  {PhaseAwaitingRemote, PhaseFrozen},
	PhaseAwaitingRemote: {PhaseAwaitingInput, PhaseFrozen},
	PhaseFrozen:         nil,
}

func (that Mode) IsValid() bool {
	return that == ModeLocal || that == ModeAssistedRemote
}

// Match is one game from an empty board to a win. Rematches get a new Match.
type Match struct {
	ID           string `json:"id,omitempty"`
	Board        *Board `json:"board"`
	Mode         Mode   `json:"mode"`
	Turn         Mark   `json:"turn"`
	HumanMark    Mark   `json:"human_mark"`
	Phase        Phase  `json:"phase"`
	Winner       Mark   `json:"winner,omitempty"`
	WinningCells []int  `json:"winning_cells,omitempty"`
}

func NewMatch(id string, mode Mode, humanMark Mark, boardSize int) (*Match, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	if mode == ModeLocal {
		humanMark = PlayerX
	}

	if !humanMark.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMark, humanMark)
	}

	board, err := NewBoard(boardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Match{
		ID:        id,
		Board:     board,
		Mode:      mode,
		Turn:      PlayerX,
		HumanMark: humanMark,
		Phase:     PhaseAwaitingInput,
	}, nil
}

func (that *Match) IsLocked() bool {
	return that.Phase != PhaseAwaitingInput
}

func (that *Match) IsFrozen() bool {
	return that.Phase == PhaseFrozen
}

func (that *Match) IsRemote() bool {
	return that.Mode == ModeAssistedRemote
}

func (that *Match) OpponentMark() Mark {
	return that.HumanMark.Opponent()
}

// Transition - moves the match to the next phase if the state machine allows it.
func (that *Match) Transition(next Phase) error {
	for _, allowed := range allowedTransitions[that.Phase] {
		if allowed == next {
			that.Phase = next
			return nil
		}
	}

	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, that.Phase, next)
}

// Freeze - ends the match. Winner is set once and never cleared.
func (that *Match) Freeze(winner Mark, cells []int) error {
	if err := that.Transition(PhaseFrozen); err != nil {
		return err
	}

	that.Winner = winner
	that.WinningCells = cells

	return nil
}

// Copy - deep copy safe to hand out to renderers.
func (that *Match) Copy() Match {
	out := *that
	out.Board = that.Board.Clone()
	if that.WinningCells != nil {
		out.WinningCells = append([]int(nil), that.WinningCells...)
	}
	return out
}
