package websocket

import "encoding/json"

const (
	ActionJoinGame = "join_game"
	ActionBotLog   = "bot_log"
	ActionError    = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type JoinPayload struct {
	MatchID string `json:"match_id"`
}

type LogPayload struct {
	Log string `json:"log"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

func encode(action string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Message{Action: action, Payload: raw})
}
