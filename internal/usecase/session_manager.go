package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/pkg"
	"github.com/rocketscienceinc/gomoku/internal/service"
)

type sessionRepo interface {
	Save(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// logPublisher receives the bot log lines of a match.
type logPublisher interface {
	Publish(matchID, line string)
}

// SessionManager is the move service: it keeps one session per match and answers
// human moves with bot moves. The side submitting moves is always X.
type SessionManager struct {
	logger    *slog.Logger
	repo      sessionRepo
	bot       service.BotService
	publisher logPublisher
	boardSize int

	// serializes read-modify-write of sessions
	mu sync.Mutex
}

func NewSessionManager(logger *slog.Logger, repo sessionRepo, bot service.BotService, publisher logPublisher, boardSize int) *SessionManager {
	if boardSize == 0 {
		boardSize = entity.DefaultBoardSize
	}

	return &SessionManager{
		logger:    logger.With("component", "session_manager"),
		repo:      repo,
		bot:       bot,
		publisher: publisher,
		boardSize: boardSize,
	}
}

// StartMatch - creates a session under a new id.
func (that *SessionManager) StartMatch(ctx context.Context) (string, error) {
	session, err := that.createSession(ctx, pkg.GenerateMatchID())
	if err != nil {
		return "", err
	}

	that.logger.Info("match started", "matchID", session.ID)

	return session.ID, nil
}

// ResetMatch - replaces the session of matchID with an empty one under the same id.
// An expired or unknown id gets a fresh session as well.
func (that *SessionManager) ResetMatch(ctx context.Context, matchID string) error {
	if matchID == "" {
		return fmt.Errorf("%w: empty match id", apperror.ErrMatchNotFound)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.repo.DeleteByID(ctx, matchID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	if _, err := that.createSession(ctx, matchID); err != nil {
		return err
	}

	that.logger.Info("match reset", "matchID", matchID)

	return nil
}

// SubmitMove - records the human move (entity.NoMove asks for the opening) and answers
// with the bot move.
func (that *SessionManager) SubmitMove(ctx context.Context, matchID string, index int) (*entity.MoveReply, error) {
	log := that.logger.With("method", "SubmitMove", "matchID", matchID, "index", index)

	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.repo.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.Finished {
		return nil, apperror.ErrGameFinished
	}

	if index == entity.NoMove {
		if !session.Board.IsBlank() {
			return nil, fmt.Errorf("%w: opening requested on a started match", apperror.ErrInvalidMove)
		}
	} else {
		if err = session.Board.Place(index, entity.PlayerX); err != nil {
			return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
		}

		if _, won := session.Board.CheckWin(index, entity.PlayerX); won {
			session.Finish(entity.PlayerX)
			log.Info("human won")

			return that.reply(ctx, session, index)
		}

		if session.Board.IsFull() {
			log.Info("board is full")

			if err = that.repo.Save(ctx, session); err != nil {
				return nil, fmt.Errorf("failed to save session: %w", err)
			}

			return &entity.MoveReply{}, nil
		}
	}

	decision, err := that.bot.ChooseMove(session.Board)
	if err != nil {
		return nil, fmt.Errorf("failed to choose move: %w", err)
	}

	for _, line := range decision.Log {
		that.publisher.Publish(matchID, line)
	}

	if err = session.Board.Place(decision.Move, entity.PlayerO); err != nil {
		return nil, fmt.Errorf("bot failed to make turn: %w", err)
	}

	if _, won := session.Board.CheckWin(decision.Move, entity.PlayerO); won {
		session.Finish(entity.PlayerO)
		log.Info("bot won", "move", decision.Move)
	}

	return that.reply(ctx, session, decision.Move)
}

func (that *SessionManager) reply(ctx context.Context, session *entity.Session, move int) (*entity.MoveReply, error) {
	if err := that.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &entity.MoveReply{
		Move:   &move,
		Win:    session.Finished,
		Winner: session.Winner,
	}, nil
}

func (that *SessionManager) createSession(ctx context.Context, matchID string) (*entity.Session, error) {
	session, err := entity.NewSession(matchID, that.boardSize, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err = that.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}
