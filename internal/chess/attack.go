package chess

import "github.com/pkg/errors"

// SquareAttacked reports whether any piece of the attacking color could
// capture on the target square with its next move. It scans the whole
// board: sliding pieces are tested along their full ray and stop at the
// first blocker, so checks from rooks, bishops and queens at any range
// are detected.
func (p Position) SquareAttacked(target Square, by Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := p.Board[row][col]
			if piece == nil || piece.Color != by {
				continue
			}
			if p.pieceAttacks(Square{Row: row, Col: col}, target, *piece) {
				return true
			}
		}
	}
	return false
}

// pieceAttacks tests the geometric attack pattern only. Pawns attack
// diagonally regardless of whether a capture is available, and forward
// pawn pushes are not attacks.
func (p Position) pieceAttacks(from, to Square, piece Piece) bool {
	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col
	absRow, absCol := abs(rowDiff), abs(colDiff)

	switch piece.Type {
	case Pawn:
		return rowDiff == pawnDirection(piece.Color) && absCol == 1
	case Rook:
		if from.Row != to.Row && from.Col != to.Col {
			return false
		}
		return p.pathClear(from, to)
	case Knight:
		return (absRow == 2 && absCol == 1) || (absRow == 1 && absCol == 2)
	case Bishop:
		if absRow != absCol {
			return false
		}
		return p.pathClear(from, to)
	case Queen:
		if from.Row == to.Row || from.Col == to.Col || absRow == absCol {
			return p.pathClear(from, to)
		}
		return false
	case King:
		return absRow <= 1 && absCol <= 1 && absRow+absCol > 0
	}
	return false
}

// pathClear walks the squares strictly between from and to along a
// straight or diagonal line and reports whether they are all empty.
func (p Position) pathClear(from, to Square) bool {
	rowStep, colStep := 0, 0
	if to.Row > from.Row {
		rowStep = 1
	} else if to.Row < from.Row {
		rowStep = -1
	}
	if to.Col > from.Col {
		colStep = 1
	} else if to.Col < from.Col {
		colStep = -1
	}

	cur := Square{Row: from.Row + rowStep, Col: from.Col + colStep}
	for cur != to {
		if p.Board[cur.Row][cur.Col] != nil {
			return false
		}
		cur.Row += rowStep
		cur.Col += colStep
	}
	return true
}

// KingInCheck reports whether side's king is attacked. If the cached king
// square does not actually hold that king, the true square is re-derived
// from the board before testing, so a stale cache can never make this
// check the wrong square. A board with no king of the side is a fault.
func (p Position) KingInCheck(side Color) (bool, error) {
	sq := p.kingSquare(side)
	piece := p.pieceAt(sq)
	if piece == nil || piece.Type != King || piece.Color != side {
		found, ok := p.findKing(side)
		if !ok {
			return false, errors.Wrapf(ErrKingMissing, "no %s king", side)
		}
		sq = found
	}
	return p.SquareAttacked(sq, side.Opponent()), nil
}

func (p Position) findKing(side Color) (Square, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := p.Board[row][col]
			if piece != nil && piece.Type == King && piece.Color == side {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}
