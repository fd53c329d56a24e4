package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku/internal/entity"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL+"/", srv.Client())
}

func TestClient_StartMatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/start", r.URL.Path)
		_, _ = w.Write([]byte(`{"match_id":"m1"}`))
	})

	matchID, err := client.StartMatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "m1", matchID)
}

func TestClient_SubmitMove(t *testing.T) {
	t.Run("Sends the index and decodes the reply", func(t *testing.T) {
		// Given: a service answering 211
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var req matchRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "m1", req.MatchID)
			assert.Equal(t, 210, *req.Index)
			_, _ = w.Write([]byte(`{"win":false,"move":211}`))
		})

		// When: submitting 210
		reply, err := client.SubmitMove(context.Background(), "m1", 210)

		// Then: the move is decoded
		require.NoError(t, err)
		require.True(t, reply.HasMove())
		assert.Equal(t, 211, *reply.Move)
		assert.False(t, reply.Win)
	})

	t.Run("The opening sentinel is sent explicitly", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var raw map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
			assert.InDelta(t, -1, raw["index"], 0)
			_, _ = w.Write([]byte(`{"win":false,"move":210}`))
		})

		_, err := client.SubmitMove(context.Background(), "m1", entity.NoMove)

		require.NoError(t, err)
	})

	t.Run("A win without a move decodes with no move", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"win":true,"winner":"X"}`))
		})

		reply, err := client.SubmitMove(context.Background(), "m1", 4)

		require.NoError(t, err)
		assert.False(t, reply.HasMove())
		assert.Equal(t, entity.PlayerX, reply.Winner)
	})

	t.Run("Error status carries the service message", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"match not found"}`))
		})

		_, err := client.SubmitMove(context.Background(), "m1", 4)

		require.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), "match not found")
	})

	t.Run("Context deadline aborts the call", func(t *testing.T) {
		// Given: a service that holds the answer until the test ends
		release := make(chan struct{})
		client := newTestClient(t, func(_ http.ResponseWriter, r *http.Request) {
			_, _ = io.Copy(io.Discard, r.Body)
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
		// runs before the server is closed
		t.Cleanup(func() { close(release) })

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := client.SubmitMove(ctx, "m1", 4)

		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestClient_ResetMatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reset", r.URL.Path)
		_, _ = w.Write([]byte(`{"match_id":"m1"}`))
	})

	require.NoError(t, client.ResetMatch(context.Background(), "m1"))
}
