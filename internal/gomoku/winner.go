package gomoku

import "github.com/rocketscienceinc/gomoku/internal/entity"

// DisplayedWinner - translates a winner reported by the move service into the mark the
// human sees. The service labels the side submitting human moves as X whatever role the
// human picked, so the label is flipped when the human plays O.
func DisplayedWinner(human, service entity.Mark) entity.Mark {
	if human == entity.PlayerO {
		return service.Opponent()
	}
	return service
}
