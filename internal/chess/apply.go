package chess

import "github.com/pkg/errors"

// promotable is the set of piece types a pawn may become. Anything else
// named by a move (including "king") falls back to queen so the
// one-king-per-side invariant can never be broken by a promotion.
func promotable(t PieceType) bool {
	switch t {
	case Rook, Knight, Bishop, Queen:
		return true
	}
	return false
}

// Apply plays an already-validated move for side and returns the
// successor position. It is an unconditional transformation: legality is
// the caller's responsibility (run Validate first), and Apply never
// re-checks it. The receiver is left untouched. Errors are engine faults
// only, never rule rejections.
func (p Position) Apply(move Move, side Color) (Position, error) {
	if !move.From.onBoard() || !move.To.onBoard() {
		return Position{}, errors.Wrapf(ErrEngineFault, "apply with off-board move %+v", move)
	}

	next := p.clone()
	piece := next.Board[move.From.Row][move.From.Col]
	if piece == nil {
		return Position{}, errors.Wrapf(ErrEngineFault, "apply with empty from-square %+v", move.From)
	}
	target := next.Board[move.To.Row][move.To.Col]
	if target != nil {
		next.recordCapture(*target)
	}

	// En passant: a diagonal pawn move onto the target square with nothing
	// on it removes the pawn that made the double step.
	if piece.Type == Pawn && target == nil && move.From.Col != move.To.Col &&
		next.EnPassantTarget != nil && *next.EnPassantTarget == move.To {
		victimSq := Square{Row: move.To.Row - pawnDirection(side), Col: move.To.Col}
		if victim := next.pieceAt(victimSq); victim != nil {
			next.recordCapture(*victim)
			next.Board[victimSq.Row][victimSq.Col] = nil
		}
	}

	next.Board[move.To.Row][move.To.Col] = piece
	next.Board[move.From.Row][move.From.Col] = nil

	switch piece.Type {
	case King:
		next.clearCastlingRights(side)
		next.setKingSquare(side, move.To)
		if abs(move.To.Col-move.From.Col) == 2 {
			next.relocateCastlingRook(move)
		}
	case Rook:
		next.clearRookRights(move.From, side)
	}

	// The en passant target lives for exactly one ply.
	next.EnPassantTarget = nil
	if piece.Type == Pawn && abs(move.To.Row-move.From.Row) == 2 {
		next.EnPassantTarget = &Square{
			Row: (move.From.Row + move.To.Row) / 2,
			Col: move.From.Col,
		}
	}

	if piece.Type == Pawn && move.To.Row == promotionRow(side) {
		promoted := move.Promotion
		if !promotable(promoted) {
			promoted = Queen
		}
		next.Board[move.To.Row][move.To.Col] = &Piece{Type: promoted, Color: side}
	}

	next.CurrentPlayer = side.Opponent()
	next.MovesCount++
	applied := move
	next.LastMove = &applied
	next.MoveHistory = append(next.MoveHistory, move)

	if err := next.refreshStatus(); err != nil {
		return Position{}, err
	}
	return next, nil
}

func (p *Position) recordCapture(piece Piece) {
	if piece.Color == White {
		p.CapturedPieces.White = append(p.CapturedPieces.White, piece)
	} else {
		p.CapturedPieces.Black = append(p.CapturedPieces.Black, piece)
	}
}

// relocateCastlingRook moves the rook over the square the king crossed.
// Only called for a two-square king move.
func (p *Position) relocateCastlingRook(move Move) {
	row := move.To.Row
	if move.To.Col > move.From.Col {
		p.Board[row][5] = p.Board[row][7]
		p.Board[row][7] = nil
	} else {
		p.Board[row][3] = p.Board[row][0]
		p.Board[row][0] = nil
	}
}

func (p *Position) clearCastlingRights(side Color) {
	if side == White {
		p.CastlingRights.WhiteKingside = false
		p.CastlingRights.WhiteQueenside = false
	} else {
		p.CastlingRights.BlackKingside = false
		p.CastlingRights.BlackQueenside = false
	}
}

// clearRookRights drops the wing flag when a rook leaves its original
// corner. Both row and column are checked: a rook moving along the first
// rank from elsewhere must not clear anything.
func (p *Position) clearRookRights(from Square, side Color) {
	homeRow := 0
	if side == White {
		homeRow = 7
	}
	if from.Row != homeRow {
		return
	}
	switch from.Col {
	case 0:
		if side == White {
			p.CastlingRights.WhiteQueenside = false
		} else {
			p.CastlingRights.BlackQueenside = false
		}
	case 7:
		if side == White {
			p.CastlingRights.WhiteKingside = false
		} else {
			p.CastlingRights.BlackKingside = false
		}
	}
}

// refreshStatus recomputes the derived fields after a move: both check
// flags and the game status for the new side to move.
func (p *Position) refreshStatus() error {
	whiteCheck, err := p.KingInCheck(White)
	if err != nil {
		return err
	}
	blackCheck, err := p.KingInCheck(Black)
	if err != nil {
		return err
	}
	p.CheckStatus = CheckStatus{White: whiteCheck, Black: blackCheck}

	status, err := p.Evaluate()
	if err != nil {
		return err
	}
	p.GameStatus = status
	return nil
}
