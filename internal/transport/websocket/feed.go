package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
)

const (
	actionJoinGame = "join_game"
	actionBotLog   = "bot_log"

	lineBufferSize = 64
	maxRetryDelay  = 5 * time.Second
	joinTimeout    = 2 * time.Second
)

type message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type joinPayload struct {
	MatchID string `json:"match_id"`
}

type logPayload struct {
	Log string `json:"log"`
}

// Feed follows the bot log of one match. Lines are informational only.
type Feed struct {
	logger *slog.Logger
	url    string
	dialer *websocket.Dialer
}

func NewFeed(logger *slog.Logger, url string) *Feed {
	return &Feed{
		logger: logger.With("component", "feed"),
		url:    url,
		dialer: websocket.DefaultDialer,
	}
}

// Subscribe - streams the log lines of matchID until ctx ends, reconnecting with
// backoff when the connection drops. The channel is closed on exit.
// It returns once the hub acknowledged the join, or after joinTimeout.
func (that *Feed) Subscribe(ctx context.Context, matchID string) <-chan string {
	lines := make(chan string, lineBufferSize)
	joined := make(chan struct{})

	var once sync.Once
	ack := func() { once.Do(func() { close(joined) }) }

	go func() {
		defer close(lines)

		policy := backoff.NewExponentialBackOff()
		policy.MaxInterval = maxRetryDelay
		policy.MaxElapsedTime = 0

		err := backoff.RetryNotify(func() error {
			return that.follow(ctx, matchID, lines, ack)
		}, backoff.WithContext(policy, ctx), func(err error, wait time.Duration) {
			that.logger.Debug("feed disconnected", "matchID", matchID, "retryIn", wait, "error", err)
		})
		if err != nil && ctx.Err() == nil {
			that.logger.Warn("feed stopped", "matchID", matchID, "error", err)
		}
	}()

	select {
	case <-joined:
	case <-ctx.Done():
	case <-time.After(joinTimeout):
		that.logger.Debug("feed join not acknowledged yet", "matchID", matchID)
	}

	return lines
}

func (that *Feed) follow(ctx context.Context, matchID string, lines chan<- string, ack func()) error {
	conn, _, err := that.dialer.DialContext(ctx, that.url, nil)
	if err != nil {
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		return fmt.Errorf("failed to dial feed: %w", err)
	}

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer func() {
		stop()
		_ = conn.Close()
	}()

	payload, err := json.Marshal(joinPayload{MatchID: matchID})
	if err != nil {
		return backoff.Permanent(err)
	}

	if err = conn.WriteJSON(message{Action: actionJoinGame, Payload: payload}); err != nil {
		return fmt.Errorf("failed to join match feed: %w", err)
	}

	for {
		var msg message
		if err = conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return fmt.Errorf("failed to read feed: %w", err)
		}

		if msg.Action == actionJoinGame {
			ack()
			continue
		}

		if msg.Action != actionBotLog {
			continue
		}

		var line logPayload
		if err = json.Unmarshal(msg.Payload, &line); err != nil {
			continue
		}

		select {
		case lines <- line.Log:
		default:
		}
	}
}
