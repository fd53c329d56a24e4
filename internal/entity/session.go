package entity

import "time"

// MoveReply is the move service answer to a submitted move. Winner uses the
// service convention: X is the side submitting human moves.
type MoveReply struct {
	Move   *int `json:"move,omitempty"`
	Win    bool `json:"win"`
	Winner Mark `json:"winner,omitempty"`
}

func (that *MoveReply) HasMove() bool {
	return that.Move != nil
}

// Session is the move service state of one match.
type Session struct {
	ID        string    `json:"id"`
	Board     *Board    `json:"board"`
	Finished  bool      `json:"finished"`
	Winner    Mark      `json:"winner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSession(id string, boardSize int, now time.Time) (*Session, error) {
	board, err := NewBoard(boardSize)
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:        id,
		Board:     board,
		CreatedAt: now,
	}, nil
}

func (that *Session) Finish(winner Mark) {
	that.Finished = true
	that.Winner = winner
}
