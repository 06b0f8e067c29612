package service

import (
	"github.com/pkg/errors"

	"github.com/matchboard/gamelogic/internal/chess"
	"github.com/matchboard/gamelogic/internal/protocol"
)

// EngineService resolves protocol requests against the game logic. It
// holds no state: every request carries its own position snapshot, so a
// single instance is safe for concurrent callers.
type EngineService struct{}

func NewEngineService() *EngineService {
	return &EngineService{}
}

// Dispatch resolves one request into one JSON-marshalable response value.
// It never panics and never lets an error escape: every failure comes
// back as an ErrorResponse so transports can stay a thin write-through.
func (s *EngineService) Dispatch(req protocol.Request) any {
	resp, err := s.dispatch(req)
	if err != nil {
		return protocol.ErrorResponse{Error: err.Error()}
	}
	return resp
}

func (s *EngineService) dispatch(req protocol.Request) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("engine panic: %v", r)
		}
	}()

	logic, err := NewGameLogic(req.GameType)
	if err != nil {
		return nil, err
	}

	switch req.Action {
	case protocol.ActionInitialize:
		return logic.Initialize(), nil

	case protocol.ActionValidate:
		state, move, err := requireStateAndMove(req)
		if err != nil {
			return nil, err
		}
		valid, err := logic.ValidateMove(*state, *move, chess.Color(req.PlayerID))
		if err != nil {
			return nil, err
		}
		return protocol.ValidateResponse{Valid: valid}, nil

	case protocol.ActionApply:
		state, move, err := requireStateAndMove(req)
		if err != nil {
			return nil, err
		}
		next, err := logic.ApplyMove(*state, *move, chess.Color(req.PlayerID))
		if err != nil {
			return nil, err
		}
		return next, nil

	case protocol.ActionCheckWinner:
		state, err := requireState(req)
		if err != nil {
			return nil, err
		}
		var winner *int
		if w := logic.CheckWinner(*state); w != nil {
			id := int(*w)
			winner = &id
		}
		return protocol.WinnerResponse{Winner: winner}, nil

	case protocol.ActionIsGameOver:
		state, err := requireState(req)
		if err != nil {
			return nil, err
		}
		return protocol.GameOverResponse{GameOver: logic.IsGameOver(*state)}, nil

	case protocol.ActionIsDraw:
		state, err := requireState(req)
		if err != nil {
			return nil, err
		}
		return protocol.DrawResponse{IsDraw: logic.IsDraw(*state)}, nil
	}
	return nil, errors.Errorf("invalid action: %q", req.Action)
}

func requireState(req protocol.Request) (*chess.Position, error) {
	if req.State == nil {
		return nil, errors.Errorf("action %q requires a state", req.Action)
	}
	return req.State, nil
}

func requireStateAndMove(req protocol.Request) (*chess.Position, *chess.Move, error) {
	state, err := requireState(req)
	if err != nil {
		return nil, nil, err
	}
	if req.Move == nil {
		return nil, nil, errors.Errorf("action %q requires a move", req.Action)
	}
	return state, req.Move, nil
}
