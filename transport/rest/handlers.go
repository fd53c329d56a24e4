package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

type matchUseCase interface {
	StartMatch(ctx context.Context) (string, error)
	SubmitMove(ctx context.Context, matchID string, index int) (*entity.MoveReply, error)
	ResetMatch(ctx context.Context, matchID string) error
}

// MatchRequest is the body of /move and /reset. Index is required by /move only.
type MatchRequest struct {
	MatchID string `json:"match_id"`
	Index   *int   `json:"index,omitempty"`
}

type MatchResponse struct {
	MatchID string `json:"match_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MatchHandler interface {
	Start(ctx echo.Context) error
	Move(ctx echo.Context) error
	Reset(ctx echo.Context) error
}

type matchHandler struct {
	logger  *slog.Logger
	matches matchUseCase
}

func NewMatchHandler(logger *slog.Logger, matches matchUseCase) MatchHandler {
	return &matchHandler{
		logger:  logger.With("component", "match_handler"),
		matches: matches,
	}
}

func (that *matchHandler) Start(ctx echo.Context) error {
	matchID, err := that.matches.StartMatch(ctx.Request().Context())
	if err != nil {
		that.logger.Error("failed to start match", "error", err)
		return that.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MatchResponse{MatchID: matchID})
}

func (that *matchHandler) Move(ctx echo.Context) error {
	log := that.logger.With("method", "Move")

	var req MatchRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if req.MatchID == "" || req.Index == nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "match_id and index are required"})
	}

	reply, err := that.matches.SubmitMove(ctx.Request().Context(), req.MatchID, *req.Index)
	if err != nil {
		log.Warn("move rejected", "matchID", req.MatchID, "index", *req.Index, "error", err)
		return that.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, reply)
}

func (that *matchHandler) Reset(ctx echo.Context) error {
	var req MatchRequest
	if err := ctx.Bind(&req); err != nil || req.MatchID == "" {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "match_id is required"})
	}

	if err := that.matches.ResetMatch(ctx.Request().Context(), req.MatchID); err != nil {
		that.logger.Warn("failed to reset match", "matchID", req.MatchID, "error", err)
		return that.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MatchResponse{MatchID: req.MatchID})
}

func (that *matchHandler) fail(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, apperror.ErrMatchNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: apperror.ErrMatchNotFound.Error()})
	case errors.Is(err, apperror.ErrInvalidMove):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: apperror.ErrInvalidMove.Error()})
	case errors.Is(err, apperror.ErrGameFinished):
		return ctx.JSON(http.StatusConflict, ErrorResponse{Error: apperror.ErrGameFinished.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
	}
}
