// Package chess implements the rules engine: position representation,
// attack detection, move validation, move application and game-status
// classification. Every operation is a pure function over an immutable
// Position snapshot, so the package is safe for concurrent callers.
package chess

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// PieceType is the wire name of a piece kind.
type PieceType string

const (
	Pawn   PieceType = "pawn"
	Rook   PieceType = "rook"
	Knight PieceType = "knight"
	Bishop PieceType = "bishop"
	Queen  PieceType = "queen"
	King   PieceType = "king"
)

// Color identifies a side using the wire encoding: 1 is white, 2 is black.
type Color int

const (
	White Color = 1
	Black Color = 2
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return fmt.Sprintf("color(%d)", int(c))
}

// Piece is an immutable value; cells are replaced, never edited in place.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

// Square is a board coordinate. Row 0 is rank 8 (black's back rank),
// row 7 is rank 1. It serializes as a [row, col] pair.
type Square struct {
	Row int
	Col int
}

func (s Square) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{s.Row, s.Col})
}

func (s *Square) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return errors.Wrap(err, "square must be a [row, col] pair")
	}
	s.Row, s.Col = pair[0], pair[1]
	return nil
}

func (s Square) onBoard() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// Move is a candidate or applied move. Promotion is consulted only when a
// pawn reaches the last rank; empty means queen.
type Move struct {
	From      Square    `json:"from"`
	To        Square    `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
