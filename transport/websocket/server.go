package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gomoku/pkg/handlers"
)

const (
	sendBufferSize  = 32
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	logger   *slog.Logger
	hub      *Hub
	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, hub *Hub) *Server {
	return &Server{
		logger: logger.With("component", "websocket"),
		hub:    hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)
	mux.HandleFunc("/ping", handlers.PingHandler)

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	sub := &subscriber{send: make(chan []byte, sendBufferSize)}

	go that.writePump(conn, sub)
	that.readPump(conn, sub)
}

// readPump - handles join requests until the connection drops.
func (that *Server) readPump(conn *websocket.Conn, sub *subscriber) {
	log := that.logger.With("method", "readPump")

	defer func() {
		that.hub.leave(sub)
		close(sub.send)
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var message Message
		if err := conn.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("connection closed", "error", err)
			}
			return
		}

		switch message.Action {
		case ActionJoinGame:
			var payload JoinPayload
			if err := json.Unmarshal(message.Payload, &payload); err != nil || payload.MatchID == "" {
				that.reply(sub, ActionError, ErrorPayload{Error: "match_id is required"})
				continue
			}

			that.hub.join(sub, payload.MatchID)
			that.reply(sub, ActionJoinGame, payload)
			log.Debug("subscriber joined", "matchID", payload.MatchID)
		default:
			that.reply(sub, ActionError, ErrorPayload{Error: "unknown action " + message.Action})
		}
	}
}

func (that *Server) writePump(conn *websocket.Conn, sub *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case msg, ok := <-sub.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (that *Server) reply(sub *subscriber, action string, payload any) {
	msg, err := encode(action, payload)
	if err != nil {
		that.logger.Error("failed to encode reply", "error", err)
		return
	}

	select {
	case sub.send <- msg:
	default:
	}
}
