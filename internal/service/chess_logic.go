package service

import "github.com/matchboard/gamelogic/internal/chess"

// ChessLogic adapts the chess engine to the GameLogic interface.
type ChessLogic struct{}

func (ChessLogic) Initialize() chess.Position {
	return chess.NewPosition()
}

// ValidateMove answers false for every rule rejection and propagates only
// engine faults, so a corrupt position is never misreported as a plain
// illegal move.
func (ChessLogic) ValidateMove(state chess.Position, move chess.Move, player chess.Color) (bool, error) {
	err := state.Validate(move, player)
	if err == nil {
		return true, nil
	}
	if chess.IsFault(err) {
		return false, err
	}
	return false, nil
}

// ApplyMove plays the move without re-validating it; callers are expected
// to have accepted it through ValidateMove first.
func (ChessLogic) ApplyMove(state chess.Position, move chess.Move, player chess.Color) (chess.Position, error) {
	return state.Apply(move, player)
}

func (ChessLogic) CheckWinner(state chess.Position) *chess.Color {
	if winner, ok := state.Winner(); ok {
		return &winner
	}
	return nil
}

func (ChessLogic) IsGameOver(state chess.Position) bool {
	return state.GameOver()
}

func (ChessLogic) IsDraw(state chess.Position) bool {
	return state.Draw()
}
