// Package protocol defines the wire contract shared by the line-protocol
// binary, the HTTP adapter and the websocket adapter: one request object
// in, one response object out, no batching.
package protocol

import "github.com/matchboard/gamelogic/internal/chess"

// Action names one engine operation.
type Action string

const (
	ActionInitialize  Action = "initialize"
	ActionValidate    Action = "validate"
	ActionApply       Action = "apply"
	ActionCheckWinner Action = "check_winner"
	ActionIsGameOver  Action = "is_game_over"
	ActionIsDraw      Action = "is_draw"
)

// GameTypeChess is the only game type this engine serves. Requests that
// omit game_type default to it.
const GameTypeChess = "chess"

// Request is one engine call. State and Move are only required by the
// actions that read them; PlayerID uses the wire encoding 1=white,
// 2=black.
type Request struct {
	Action   Action          `json:"action"`
	GameType string          `json:"game_type,omitempty"`
	State    *chess.Position `json:"state,omitempty"`
	Move     *chess.Move     `json:"move,omitempty"`
	PlayerID int             `json:"player_id,omitempty"`
}

// Responses for the boolean/classification actions. initialize and apply
// answer with a full serialized chess.Position instead.

type ValidateResponse struct {
	Valid bool `json:"valid"`
}

type WinnerResponse struct {
	Winner *int `json:"winner"`
}

type GameOverResponse struct {
	GameOver bool `json:"game_over"`
}

type DrawResponse struct {
	IsDraw bool `json:"is_draw"`
}

// ErrorResponse covers every failure: malformed requests, unknown
// actions or game types, and engine faults. Transports must emit it
// instead of crashing.
type ErrorResponse struct {
	Error string `json:"error"`
}
