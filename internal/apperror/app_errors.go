package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("match is already finished")
	ErrGameIsNotStarted = errors.New("match is not started")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrMatchNotFound    = errors.New("match not found")

	// ErrInvalidMove - click on an occupied cell or while input is locked.
	ErrInvalidMove = errors.New("invalid move")
	// ErrTransportFailure - the round trip to the move service failed or timed out.
	ErrTransportFailure = errors.New("move service request failed")
	// ErrProtocolAnomaly - the move service answered with neither a move nor a usable win.
	ErrProtocolAnomaly = errors.New("unexpected move service response")
)
