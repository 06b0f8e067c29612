package chess

// Validate checks whether side may play move in this position. A nil
// return means the move is legal. Rule rejections come back as the
// sentinel errors in errors.go, naming the first check that failed;
// malformed coordinates are rejections, not faults. A fault return
// (IsFault) means the position itself is corrupt.
func (p Position) Validate(move Move, side Color) error {
	if side != p.CurrentPlayer {
		return ErrNotYourTurn
	}
	if !move.From.onBoard() || !move.To.onBoard() {
		return ErrOutOfBounds
	}
	if move.From == move.To {
		return ErrSameSquare
	}

	piece := p.pieceAt(move.From)
	if piece == nil {
		return ErrEmptySquare
	}
	if piece.Color != side {
		return ErrNotOwnPiece
	}

	// The game must end by checkmate before a king could ever be taken;
	// this guards the invariant rather than implementing a rule.
	if target := p.pieceAt(move.To); target != nil && target.Type == King {
		return ErrKingCapture
	}

	if err := p.validatePattern(move, *piece); err != nil {
		return err
	}
	return p.validateKingSafety(move, *piece, side)
}

func (p Position) validatePattern(move Move, piece Piece) error {
	if target := p.pieceAt(move.To); target != nil && target.Color == piece.Color {
		return ErrOwnCapture
	}

	rowDiff := move.To.Row - move.From.Row
	colDiff := move.To.Col - move.From.Col
	absRow, absCol := abs(rowDiff), abs(colDiff)

	switch piece.Type {
	case Pawn:
		return p.validatePawnMove(move, piece.Color)
	case Rook:
		if move.From.Row != move.To.Row && move.From.Col != move.To.Col {
			return ErrBadPattern
		}
		if !p.pathClear(move.From, move.To) {
			return ErrBadPattern
		}
		return nil
	case Knight:
		if (absRow == 2 && absCol == 1) || (absRow == 1 && absCol == 2) {
			return nil
		}
		return ErrBadPattern
	case Bishop:
		if absRow != absCol {
			return ErrBadPattern
		}
		if !p.pathClear(move.From, move.To) {
			return ErrBadPattern
		}
		return nil
	case Queen:
		if move.From.Row != move.To.Row && move.From.Col != move.To.Col && absRow != absCol {
			return ErrBadPattern
		}
		if !p.pathClear(move.From, move.To) {
			return ErrBadPattern
		}
		return nil
	case King:
		if absRow <= 1 && absCol <= 1 {
			return nil
		}
		if absRow == 0 && absCol == 2 {
			return p.validateCastling(move, piece.Color)
		}
		return ErrBadPattern
	}
	return ErrBadPattern
}

func (p Position) validatePawnMove(move Move, side Color) error {
	dir := pawnDirection(side)
	rowDiff := move.To.Row - move.From.Row
	colDiff := abs(move.To.Col - move.From.Col)
	target := p.pieceAt(move.To)

	// Forward pushes must land on an empty square; the double step also
	// needs an empty square in between.
	if colDiff == 0 {
		if target != nil {
			return ErrBadPattern
		}
		if rowDiff == dir {
			return nil
		}
		if rowDiff == 2*dir && move.From.Row == pawnStartRow(side) {
			mid := Square{Row: move.From.Row + dir, Col: move.From.Col}
			if p.pieceAt(mid) != nil {
				return ErrBadPattern
			}
			return nil
		}
		return ErrBadPattern
	}

	// Diagonal steps only capture: either an enemy piece on the square or
	// the current en passant target.
	if colDiff == 1 && rowDiff == dir {
		if target != nil {
			return nil
		}
		if p.EnPassantTarget != nil && *p.EnPassantTarget == move.To {
			return nil
		}
		return ErrBadPattern
	}
	return ErrBadPattern
}

// validateCastling assumes a two-square horizontal king move and checks
// the remaining conditions: the wing's rights flag, an empty path between
// king and rook, and no attacked square anywhere on the king's own path,
// including the square it starts on and the one it lands on.
func (p Position) validateCastling(move Move, side Color) error {
	kingside := move.To.Col > move.From.Col

	switch {
	case side == White && kingside:
		if !p.CastlingRights.WhiteKingside {
			return ErrCastlingIllegal
		}
	case side == White && !kingside:
		if !p.CastlingRights.WhiteQueenside {
			return ErrCastlingIllegal
		}
	case side == Black && kingside:
		if !p.CastlingRights.BlackKingside {
			return ErrCastlingIllegal
		}
	default:
		if !p.CastlingRights.BlackQueenside {
			return ErrCastlingIllegal
		}
	}

	rookCol := 0
	if kingside {
		rookCol = 7
	}
	row := move.From.Row

	lo, hi := move.From.Col, rookCol
	if lo > hi {
		lo, hi = hi, lo
	}
	for col := lo + 1; col < hi; col++ {
		if p.Board[row][col] != nil {
			return ErrCastlingIllegal
		}
	}

	opponent := side.Opponent()
	lo, hi = move.From.Col, move.To.Col
	if lo > hi {
		lo, hi = hi, lo
	}
	for col := lo; col <= hi; col++ {
		if p.SquareAttacked(Square{Row: row, Col: col}, opponent) {
			return ErrCastlingIllegal
		}
	}
	return nil
}

// validateKingSafety is the decisive legality filter: the move is played
// on a scratch copy (piece relocation plus king-cache update only) and
// rejected if it leaves side's own king attacked. This is what prunes
// pinned-piece moves and moves that ignore an existing check.
func (p Position) validateKingSafety(move Move, piece Piece, side Color) error {
	sim := p
	sim.Board[move.To.Row][move.To.Col] = sim.Board[move.From.Row][move.From.Col]
	sim.Board[move.From.Row][move.From.Col] = nil
	if piece.Type == King {
		sim.setKingSquare(side, move.To)
	}

	inCheck, err := sim.KingInCheck(side)
	if err != nil {
		return err
	}
	if inCheck {
		return ErrKingExposed
	}
	return nil
}
