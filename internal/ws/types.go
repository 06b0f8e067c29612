package ws

import (
	"encoding/json"
)

// MessageType tags the websocket envelope around the protocol traffic.
type MessageType string

const (
	MessageTypeRequest  MessageType = "request"
	MessageTypeResponse MessageType = "response"
	MessageTypeError    MessageType = "error"
)

// Message wraps one protocol request or response on a websocket
// connection.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}
