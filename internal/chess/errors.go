package chess

import "github.com/pkg/errors"

// Validation failures. Each names the first rule a candidate move broke;
// none of them indicate anything wrong with the engine itself.
var (
	ErrNotYourTurn     = errors.New("not this player's turn")
	ErrOutOfBounds     = errors.New("square outside the board")
	ErrSameSquare      = errors.New("from and to are the same square")
	ErrEmptySquare     = errors.New("no piece at the from-square")
	ErrNotOwnPiece     = errors.New("piece belongs to the opponent")
	ErrKingCapture     = errors.New("capturing a king is never legal")
	ErrOwnCapture      = errors.New("destination holds a piece of the same color")
	ErrBadPattern      = errors.New("move does not fit the piece's movement pattern")
	ErrCastlingIllegal = errors.New("castling conditions not met")
	ErrKingExposed     = errors.New("move would leave own king in check")
)

// Engine faults mean the position itself is corrupt (for example no king
// of a side on the board). They must never be confused with a plain
// illegal-move rejection.
var (
	ErrEngineFault = errors.New("engine fault")
	ErrKingMissing = errors.Wrap(ErrEngineFault, "king missing from board")
)

// IsFault reports whether err is engine corruption rather than a rule
// rejection.
func IsFault(err error) bool {
	return errors.Is(err, ErrEngineFault)
}
