package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
	mockedRest "github.com/rocketscienceinc/gomoku/mocks/rest"
)

var errRedisDown = errors.New("redis down")

func newTestServer(t *testing.T) (*mockedRest.MockmatchUseCase, http.Handler) {
	t.Helper()

	matches := mockedRest.NewMockmatchUseCase(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return matches, New(logger, matches).Handler()
}

func do(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestPing(t *testing.T) {
	_, handler := newTestServer(t)

	rec := do(handler, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestMatchHandler_Start(t *testing.T) {
	t.Run("Returns the new match id", func(t *testing.T) {
		matches, handler := newTestServer(t)
		matches.EXPECT().StartMatch(mock.Anything).Return("m1", nil).Once()

		rec := do(handler, http.MethodPost, "/start", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"match_id":"m1"}`, rec.Body.String())
	})

	t.Run("Storage failure is a 500", func(t *testing.T) {
		matches, handler := newTestServer(t)
		matches.EXPECT().StartMatch(mock.Anything).Return("", errRedisDown).Once()

		rec := do(handler, http.MethodPost, "/start", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestMatchHandler_Move(t *testing.T) {
	t.Run("Returns the service reply", func(t *testing.T) {
		// Given: a use case answering 211
		matches, handler := newTestServer(t)
		move := 211
		matches.EXPECT().SubmitMove(mock.Anything, "m1", 210).Return(&entity.MoveReply{Move: &move}, nil).Once()

		// When: posting the human move
		rec := do(handler, http.MethodPost, "/move", `{"match_id":"m1","index":210}`)

		// Then: the reply is encoded as is
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"move":211,"win":false}`, rec.Body.String())
	})

	t.Run("Opening request passes -1 through", func(t *testing.T) {
		matches, handler := newTestServer(t)
		move := 210
		matches.EXPECT().SubmitMove(mock.Anything, "m1", entity.NoMove).Return(&entity.MoveReply{Move: &move}, nil).Once()

		rec := do(handler, http.MethodPost, "/move", `{"match_id":"m1","index":-1}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Human win keeps winner and move", func(t *testing.T) {
		matches, handler := newTestServer(t)
		move := 4
		matches.EXPECT().SubmitMove(mock.Anything, "m1", 4).
			Return(&entity.MoveReply{Move: &move, Win: true, Winner: entity.PlayerX}, nil).
			Once()

		rec := do(handler, http.MethodPost, "/move", `{"match_id":"m1","index":4}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"move":4,"win":true,"winner":"X"}`, rec.Body.String())
	})

	t.Run("Missing index is a bad request", func(t *testing.T) {
		_, handler := newTestServer(t)

		rec := do(handler, http.MethodPost, "/move", `{"match_id":"m1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	errorTests := []struct {
		name string
		err  error
		code int
	}{
		{name: "not found", err: fmt.Errorf("failed to get session: %w", apperror.ErrMatchNotFound), code: http.StatusNotFound},
		{name: "invalid move", err: fmt.Errorf("%w: cell 3", apperror.ErrInvalidMove), code: http.StatusBadRequest},
		{name: "finished", err: apperror.ErrGameFinished, code: http.StatusConflict},
		{name: "storage", err: errRedisDown, code: http.StatusInternalServerError},
	}

	for _, tt := range errorTests {
		t.Run("Maps "+tt.name, func(t *testing.T) {
			matches, handler := newTestServer(t)
			matches.EXPECT().SubmitMove(mock.Anything, "m1", 3).Return(nil, tt.err).Once()

			rec := do(handler, http.MethodPost, "/move", `{"match_id":"m1","index":3}`)

			assert.Equal(t, tt.code, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestMatchHandler_Reset(t *testing.T) {
	t.Run("Resets the match under the same id", func(t *testing.T) {
		matches, handler := newTestServer(t)
		matches.EXPECT().ResetMatch(mock.Anything, "m1").Return(nil).Once()

		rec := do(handler, http.MethodPost, "/reset", `{"match_id":"m1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"match_id":"m1"}`, rec.Body.String())
	})

	t.Run("Unknown match is a 404", func(t *testing.T) {
		matches, handler := newTestServer(t)
		matches.EXPECT().ResetMatch(mock.Anything, "gone").Return(apperror.ErrMatchNotFound).Once()

		rec := do(handler, http.MethodPost, "/reset", `{"match_id":"gone"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Missing id is a bad request", func(t *testing.T) {
		_, handler := newTestServer(t)

		rec := do(handler, http.MethodPost, "/reset", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
