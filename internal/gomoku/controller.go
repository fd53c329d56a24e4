package gomoku

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

const DefaultRequestTimeout = 10 * time.Second

var (
	ErrServiceRequired = errors.New("assisted remote mode requires a move service")
	ErrMatchReplaced   = errors.New("match was replaced")
)

// MoveService is the remote move-decision service. Winners in replies follow the
// service convention (X is the side submitting human moves).
type MoveService interface {
	StartMatch(ctx context.Context) (string, error)
	SubmitMove(ctx context.Context, matchID string, lastHumanIndex int) (*entity.MoveReply, error)
	ResetMatch(ctx context.Context, matchID string) error
}

type Settings struct {
	Mode           entity.Mode
	BoardSize      int
	HumanMark      entity.Mark
	RequestTimeout time.Duration
}

// Controller owns the current match. The mutex guards the match and is never held
// across a move service call; the match phase keeps input out while a call is in flight.
type Controller struct {
	logger   *slog.Logger
	service  MoveService
	settings Settings

	mu       sync.Mutex
	match    *entity.Match
	listener func(matchID string)
}

func NewController(logger *slog.Logger, service MoveService, settings Settings) (*Controller, error) {
	if !settings.Mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownMode, settings.Mode)
	}

	if settings.Mode == entity.ModeAssistedRemote {
		if service == nil {
			return nil, ErrServiceRequired
		}

		if !settings.HumanMark.IsValid() {
			return nil, fmt.Errorf("%w: %q", entity.ErrInvalidMark, settings.HumanMark)
		}
	}

	if settings.BoardSize == 0 {
		settings.BoardSize = entity.DefaultBoardSize
	}

	if settings.RequestTimeout <= 0 {
		settings.RequestTimeout = DefaultRequestTimeout
	}

	return &Controller{
		logger:   logger.With("component", "match_controller", "mode", settings.Mode),
		service:  service,
		settings: settings,
	}, nil
}

// Start - begins a new match. In remote mode the service allocates the match id and,
// when the human plays O, answers the opening move before input is accepted.
func (that *Controller) Start(ctx context.Context) (Update, error) {
	if that.settings.Mode == entity.ModeLocal {
		return that.begin(ctx, "")
	}

	reqCtx, cancel := context.WithTimeout(ctx, that.settings.RequestTimeout)
	defer cancel()

	matchID, err := that.service.StartMatch(reqCtx)
	if err != nil {
		return Update{}, fmt.Errorf("%w: start match: %w", apperror.ErrTransportFailure, err)
	}

	that.logger.Info("remote match started", "matchID", matchID, "humanMark", that.settings.HumanMark)

	that.mu.Lock()
	listener := that.listener
	that.mu.Unlock()

	if listener != nil {
		listener(matchID)
	}

	return that.begin(ctx, matchID)
}

// OnMatchStarted - registers fn to be called with every new remote match id, before the
// opening move is requested.
func (that *Controller) OnMatchStarted(fn func(matchID string)) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.listener = fn
}

// Rematch - replaces the current match with a fresh one. In remote mode the service is
// asked to reset its state first and the human keeps the same role.
func (that *Controller) Rematch(ctx context.Context) (Update, error) {
	that.mu.Lock()
	current := that.match
	if current != nil && current.Phase == entity.PhaseAwaitingRemote {
		update := newUpdate(current)
		that.mu.Unlock()
		return update, fmt.Errorf("%w: move service request in flight", apperror.ErrInvalidMove)
	}
	that.mu.Unlock()

	if current == nil || that.settings.Mode == entity.ModeLocal {
		return that.Start(ctx)
	}

	reqCtx, cancel := context.WithTimeout(ctx, that.settings.RequestTimeout)
	defer cancel()

	if err := that.service.ResetMatch(reqCtx, current.ID); err != nil {
		that.logger.Warn("failed to reset remote match", "matchID", current.ID, "error", err)
		return Update{}, fmt.Errorf("%w: reset match: %w", apperror.ErrTransportFailure, err)
	}

	return that.begin(ctx, current.ID)
}

// Click - handles a human click on index.
func (that *Controller) Click(ctx context.Context, index int) (Update, error) {
	that.mu.Lock()

	match := that.match
	if match == nil {
		that.mu.Unlock()
		return Update{}, apperror.ErrGameIsNotStarted
	}

	if err := validateClick(match, index); err != nil {
		update := newUpdate(match)
		that.mu.Unlock()
		return update, err
	}

	if !match.IsRemote() {
		defer that.mu.Unlock()
		return that.playLocal(match, index)
	}

	human := match.HumanMark
	if err := match.Board.Place(index, human); err != nil {
		update := newUpdate(match)
		that.mu.Unlock()
		return update, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	match.Turn = match.OpponentMark()
	if err := match.Transition(entity.PhaseAwaitingRemote); err != nil {
		that.mu.Unlock()
		return Update{}, err
	}
	that.mu.Unlock()

	update, err := that.roundTrip(ctx, match, index)
	if errors.Is(err, ErrMatchReplaced) {
		return update, err
	}

	update.Changes = append([]CellChange{{Index: index, Mark: human}}, update.Changes...)

	return update, err
}

// Snapshot - returns a copy of the current match.
func (that *Controller) Snapshot() (entity.Match, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.match == nil {
		return entity.Match{}, false
	}

	return that.match.Copy(), true
}

func (that *Controller) begin(ctx context.Context, matchID string) (Update, error) {
	match, err := entity.NewMatch(matchID, that.settings.Mode, that.settings.HumanMark, that.settings.BoardSize)
	if err != nil {
		return Update{}, fmt.Errorf("failed to create match: %w", err)
	}

	that.mu.Lock()
	that.match = match

	if !match.IsRemote() || match.HumanMark == entity.PlayerX {
		update := newUpdate(match)
		update.Reset = true
		that.mu.Unlock()
		return update, nil
	}

	// the service moves first when the human plays O
	match.Turn = match.OpponentMark()
	if err = match.Transition(entity.PhaseAwaitingRemote); err != nil {
		that.mu.Unlock()
		return Update{}, err
	}
	that.mu.Unlock()

	update, err := that.roundTrip(ctx, match, entity.NoMove)
	update.Reset = true

	return update, err
}

// validateClick - checks that the match accepts input on index.
func validateClick(match *entity.Match, index int) error {
	if match.IsFrozen() {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrGameFinished)
	}

	if match.IsLocked() {
		return fmt.Errorf("%w: input is locked", apperror.ErrInvalidMove)
	}

	if !match.Board.IsEmpty(index) {
		return fmt.Errorf("%w: cell %d is not available", apperror.ErrInvalidMove, index)
	}

	return nil
}

// playLocal - places the mark whose turn it is and either ends the match or passes the turn.
func (that *Controller) playLocal(match *entity.Match, index int) (Update, error) {
	mark := match.Turn
	if err := match.Board.Place(index, mark); err != nil {
		return newUpdate(match), fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	change := CellChange{Index: index, Mark: mark}

	if cells, won := match.Board.CheckWin(index, mark); won {
		that.freeze(match, mark, cells)
		return newUpdate(match, change), nil
	}

	match.Turn = toggleMark(mark)

	return newUpdate(match, change), nil
}

func toggleMark(currentMark entity.Mark) entity.Mark {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}

// roundTrip - submits lastHumanIndex and applies the answer. The match must be in
// PhaseAwaitingRemote; it leaves that phase whatever the outcome.
func (that *Controller) roundTrip(ctx context.Context, match *entity.Match, lastHumanIndex int) (Update, error) {
	log := that.logger.With("method", "roundTrip", "matchID", match.ID, "index", lastHumanIndex)

	reqCtx, cancel := context.WithTimeout(ctx, that.settings.RequestTimeout)
	defer cancel()

	reply, err := that.service.SubmitMove(reqCtx, match.ID, lastHumanIndex)

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.match != match {
		log.Warn("match replaced while waiting for the move service")
		return newUpdate(that.match), fmt.Errorf("%w: %w", apperror.ErrInvalidMove, ErrMatchReplaced)
	}

	if err != nil {
		log.Error("move service request failed", "error", err)
		that.release(match)
		return newUpdate(match), fmt.Errorf("%w: %w", apperror.ErrTransportFailure, err)
	}

	update, err := that.applyReply(match, lastHumanIndex, reply)
	if err != nil {
		log.Warn("unexpected move service reply", "error", err)
	}

	return update, err
}

// applyReply - handles a reply in order of precedence: the human's own winning move,
// then a service move (winning or not), then anything else as a protocol anomaly.
func (that *Controller) applyReply(match *entity.Match, lastHumanIndex int, reply *entity.MoveReply) (Update, error) {
	if reply == nil {
		that.release(match)
		return newUpdate(match), fmt.Errorf("%w: empty reply", apperror.ErrProtocolAnomaly)
	}

	if reply.Win && !reply.Winner.IsValid() {
		that.release(match)
		return newUpdate(match), fmt.Errorf("%w: win without a winner", apperror.ErrProtocolAnomaly)
	}

	if reply.Win && reply.Winner == entity.PlayerX && lastHumanIndex != entity.NoMove {
		cells, _ := match.Board.CheckWin(lastHumanIndex, match.HumanMark)
		that.freeze(match, DisplayedWinner(match.HumanMark, reply.Winner), cells)
		return newUpdate(match), nil
	}

	if reply.HasMove() {
		move := *reply.Move
		opponent := match.OpponentMark()

		if err := match.Board.Place(move, opponent); err != nil {
			that.release(match)
			return newUpdate(match), fmt.Errorf("%w: move %d: %w", apperror.ErrProtocolAnomaly, move, err)
		}

		change := CellChange{Index: move, Mark: opponent}
		cells, won := match.Board.CheckWin(move, opponent)

		if reply.Win {
			that.freeze(match, DisplayedWinner(match.HumanMark, reply.Winner), cells)
			return newUpdate(match, change), nil
		}

		if won {
			that.logger.Warn("local line found but the move service reported no win", "matchID", match.ID, "move", move)
		}

		that.release(match)

		return newUpdate(match, change), nil
	}

	that.release(match)

	if reply.Win {
		return newUpdate(match), fmt.Errorf("%w: win reported without a move", apperror.ErrProtocolAnomaly)
	}

	return newUpdate(match), fmt.Errorf("%w: neither move nor win", apperror.ErrProtocolAnomaly)
}

// release - hands the turn back to the human and reopens input.
func (that *Controller) release(match *entity.Match) {
	match.Turn = match.HumanMark
	if err := match.Transition(entity.PhaseAwaitingInput); err != nil {
		that.logger.Error("failed to unlock match", "matchID", match.ID, "error", err)
	}
}

func (that *Controller) freeze(match *entity.Match, winner entity.Mark, cells []int) {
	if err := match.Freeze(winner, cells); err != nil {
		that.logger.Error("failed to freeze match", "matchID", match.ID, "error", err)
		return
	}

	that.logger.Info("match finished", "matchID", match.ID, "winner", winner)
}
