package service

import (
	"github.com/pkg/errors"

	"github.com/matchboard/gamelogic/internal/chess"
	"github.com/matchboard/gamelogic/internal/protocol"
)

// GameLogic is one game's rule set as the dispatcher sees it. Every
// method is a pure function of the supplied state; implementations hold
// no per-match state. Errors from ValidateMove and ApplyMove are engine
// faults, never plain rule rejections.
type GameLogic interface {
	Initialize() chess.Position
	ValidateMove(state chess.Position, move chess.Move, player chess.Color) (bool, error)
	ApplyMove(state chess.Position, move chess.Move, player chess.Color) (chess.Position, error)
	CheckWinner(state chess.Position) *chess.Color
	IsGameOver(state chess.Position) bool
	IsDraw(state chess.Position) bool
}

// ErrUnknownGameType rejects requests for games this engine does not
// implement.
var ErrUnknownGameType = errors.New("unknown game type")

// NewGameLogic returns the rule set for a game type. An empty game type
// defaults to chess.
func NewGameLogic(gameType string) (GameLogic, error) {
	switch gameType {
	case "", protocol.GameTypeChess:
		return ChessLogic{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownGameType, "%q", gameType)
}
