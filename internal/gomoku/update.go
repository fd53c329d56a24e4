package gomoku

import "github.com/rocketscienceinc/gomoku/internal/entity"

// CellChange is one cell that received a mark.
type CellChange struct {
	Index int         `json:"index"`
	Mark  entity.Mark `json:"mark"`
}

// Update describes one state change for the presentation layer.
type Update struct {
	// Reset is set when the board was replaced by a fresh match.
	Reset        bool         `json:"reset,omitempty"`
	Changes      []CellChange `json:"changes,omitempty"`
	WinningCells []int        `json:"winning_cells,omitempty"`
	Turn         entity.Mark  `json:"turn"`
	Locked       bool         `json:"locked"`
	GameOver     bool         `json:"game_over"`
	Winner       entity.Mark  `json:"winner,omitempty"`
}

func newUpdate(match *entity.Match, changes ...CellChange) Update {
	update := Update{
		Changes:  changes,
		Turn:     match.Turn,
		Locked:   match.IsLocked(),
		GameOver: match.IsFrozen(),
		Winner:   match.Winner,
	}

	if match.WinningCells != nil {
		update.WinningCells = append([]int(nil), match.WinningCells...)
	}

	return update
}
