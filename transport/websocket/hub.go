package websocket

import (
	"log/slog"
	"sync"
)

// Hub fans bot log lines out to the subscribers of each match.
type Hub struct {
	logger *slog.Logger

	mu    sync.RWMutex
	rooms map[string]map[*subscriber]struct{}
}

type subscriber struct {
	send    chan []byte
	matchID string
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger.With("component", "feed_hub"),
		rooms:  make(map[string]map[*subscriber]struct{}),
	}
}

// Publish - delivers line to everyone watching matchID. Subscribers with a full
// buffer miss the line.
func (that *Hub) Publish(matchID, line string) {
	msg, err := encode(ActionBotLog, LogPayload{Log: line})
	if err != nil {
		that.logger.Error("failed to encode log line", "error", err)
		return
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	for sub := range that.rooms[matchID] {
		select {
		case sub.send <- msg:
		default:
			that.logger.Debug("dropped log line for slow subscriber", "matchID", matchID)
		}
	}
}

// Subscribers - number of connections watching matchID.
func (that *Hub) Subscribers(matchID string) int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.rooms[matchID])
}

func (that *Hub) join(sub *subscriber, matchID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.removeLocked(sub)

	room, ok := that.rooms[matchID]
	if !ok {
		room = make(map[*subscriber]struct{})
		that.rooms[matchID] = room
	}

	room[sub] = struct{}{}
	sub.matchID = matchID
}

func (that *Hub) leave(sub *subscriber) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.removeLocked(sub)
}

func (that *Hub) removeLocked(sub *subscriber) {
	if sub.matchID == "" {
		return
	}

	room := that.rooms[sub.matchID]
	delete(room, sub)

	if len(room) == 0 {
		delete(that.rooms, sub.matchID)
	}

	sub.matchID = ""
}
