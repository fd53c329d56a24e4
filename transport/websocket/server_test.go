package websocket

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFeed(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := NewHub(logger)

	srv := httptest.NewServer(New(logger, hub).Handler())
	t.Cleanup(srv.Close)

	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))

	return msg
}

func join(t *testing.T, conn *websocket.Conn, matchID string) {
	t.Helper()

	payload, err := json.Marshal(JoinPayload{MatchID: matchID})
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Message{Action: ActionJoinGame, Payload: payload}))

	ack := readMessage(t, conn)
	require.Equal(t, ActionJoinGame, ack.Action)
}

func TestServer_Feed(t *testing.T) {
	t.Run("Joined subscribers receive bot log lines", func(t *testing.T) {
		// Given: a subscriber joined to m1
		hub, srv := newTestFeed(t)
		conn := dial(t, srv)
		join(t, conn, "m1")

		// When: a line is published for m1
		hub.Publish("m1", "bestmove 210")

		// Then: it arrives as bot_log
		msg := readMessage(t, conn)
		assert.Equal(t, ActionBotLog, msg.Action)

		var payload LogPayload
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.Equal(t, "bestmove 210", payload.Log)
	})

	t.Run("Lines of other matches are not delivered", func(t *testing.T) {
		hub, srv := newTestFeed(t)
		conn := dial(t, srv)
		join(t, conn, "m1")

		hub.Publish("m2", "info other")
		hub.Publish("m1", "info mine")

		var payload LogPayload
		require.NoError(t, json.Unmarshal(readMessage(t, conn).Payload, &payload))
		assert.Equal(t, "info mine", payload.Log)
	})

	t.Run("Joining again moves the subscriber", func(t *testing.T) {
		hub, srv := newTestFeed(t)
		conn := dial(t, srv)
		join(t, conn, "m1")
		join(t, conn, "m2")

		assert.Equal(t, 0, hub.Subscribers("m1"))
		assert.Equal(t, 1, hub.Subscribers("m2"))
	})

	t.Run("Unknown actions get an error reply", func(t *testing.T) {
		_, srv := newTestFeed(t)
		conn := dial(t, srv)

		require.NoError(t, conn.WriteJSON(Message{Action: "dance"}))

		assert.Equal(t, ActionError, readMessage(t, conn).Action)
	})

	t.Run("Disconnect leaves the room", func(t *testing.T) {
		hub, srv := newTestFeed(t)
		conn := dial(t, srv)
		join(t, conn, "m1")

		require.NoError(t, conn.Close())

		assert.Eventually(t, func() bool { return hub.Subscribers("m1") == 0 }, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("Ping answers pong", func(t *testing.T) {
		_, srv := newTestFeed(t)

		resp, err := http.Get(srv.URL + "/ping")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "pong", string(body))
	})
}

func TestHub_PublishDropsForSlowSubscribers(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	sub := &subscriber{send: make(chan []byte, 1)}
	hub.join(sub, "m1")

	hub.Publish("m1", "first")
	hub.Publish("m1", "second")

	assert.Len(t, sub.send, 1)
}
