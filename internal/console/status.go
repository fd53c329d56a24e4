package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
)

const (
	LogMove   = "move"
	LogBot    = "bot"
	LogSystem = "system"
)

var logColors = map[string]string{
	LogMove:   "yellow",
	LogBot:    "gray",
	LogSystem: "aqua",
}

// Status - one line describing whose turn it is or who won.
func Status(update gomoku.Update) string {
	switch {
	case update.GameOver && update.Winner != entity.EmptyCell:
		return fmt.Sprintf("%s Wins!", update.Winner)
	case update.GameOver:
		return "game over"
	case update.Locked:
		return fmt.Sprintf("turn: %s (waiting for the move service)", update.Turn)
	default:
		return fmt.Sprintf("turn: %s", update.Turn)
	}
}

// LogKind - classifies a feed line the way the log panel colours it.
func LogKind(line string) string {
	switch {
	case strings.HasPrefix(line, "bestmove"):
		return LogMove
	case strings.HasPrefix(line, "info"):
		return LogBot
	default:
		return LogSystem
	}
}

func formatLogLine(line string) string {
	return fmt.Sprintf("[%s]%s[-]", logColors[LogKind(line)], tview.Escape(line))
}

func describeError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrGameIsNotStarted):
		return "no match yet, press n to start one"
	case errors.Is(err, apperror.ErrGameFinished):
		return "the match is over, press n for a rematch"
	case errors.Is(err, apperror.ErrInvalidMove):
		return "that cell is not available right now"
	case errors.Is(err, apperror.ErrTransportFailure):
		return fmt.Sprintf("move service unavailable, try again (%v)", err)
	case errors.Is(err, apperror.ErrProtocolAnomaly):
		return fmt.Sprintf("unexpected answer from the move service (%v)", err)
	default:
		return err.Error()
	}
}
