package chess

import "testing"

func TestSquareAttackedSliders(t *testing.T) {
	p := emptyPosition(White)
	place(&p, 7, 0, Rook, White)

	if !p.SquareAttacked(sq(0, 0), White) {
		t.Fatal("rook should attack along the full open file")
	}
	if !p.SquareAttacked(sq(7, 7), White) {
		t.Fatal("rook should attack along the full open rank")
	}
	if p.SquareAttacked(sq(0, 7), White) {
		t.Fatal("rook must not attack diagonally")
	}

	// A blocker cuts the ray: squares behind it are safe, the blocker's
	// own square is still attacked.
	place(&p, 4, 0, Pawn, Black)
	if p.SquareAttacked(sq(0, 0), White) {
		t.Fatal("rook attack should stop at the first occupied square")
	}
	if !p.SquareAttacked(sq(4, 0), White) {
		t.Fatal("the blocking piece itself is attacked")
	}
}

func TestSquareAttackedBishopAndQueen(t *testing.T) {
	p := emptyPosition(White)
	place(&p, 7, 2, Bishop, White)
	place(&p, 0, 0, Queen, Black)

	if !p.SquareAttacked(sq(2, 7), White) {
		t.Fatal("bishop should attack along the full open diagonal")
	}
	if p.SquareAttacked(sq(5, 2), White) {
		t.Fatal("bishop must not attack along a file")
	}
	if !p.SquareAttacked(sq(7, 7), Black) {
		t.Fatal("queen should attack along the long diagonal")
	}
	if !p.SquareAttacked(sq(0, 6), Black) {
		t.Fatal("queen should attack along the rank")
	}
}

func TestSquareAttackedPawn(t *testing.T) {
	p := emptyPosition(White)
	place(&p, 4, 4, Pawn, White)
	place(&p, 3, 3, Pawn, Black)

	// White pawns attack toward row 0, black pawns toward row 7, and the
	// forward square is never attacked.
	if !p.SquareAttacked(sq(3, 3), White) || !p.SquareAttacked(sq(3, 5), White) {
		t.Fatal("white pawn should attack both forward diagonals")
	}
	if p.SquareAttacked(sq(3, 4), White) {
		t.Fatal("pawn must not attack straight ahead")
	}
	if !p.SquareAttacked(sq(4, 2), Black) || !p.SquareAttacked(sq(4, 4), Black) {
		t.Fatal("black pawn should attack both forward diagonals")
	}
}

func TestSquareAttackedKnightAndKing(t *testing.T) {
	p := emptyPosition(White)
	place(&p, 4, 4, Knight, White)
	place(&p, 0, 0, King, Black)

	for _, target := range []Square{sq(2, 3), sq(2, 5), sq(6, 3), sq(6, 5), sq(3, 2), sq(5, 2), sq(3, 6), sq(5, 6)} {
		if !p.SquareAttacked(target, White) {
			t.Fatalf("knight should attack %+v", target)
		}
	}
	if p.SquareAttacked(sq(3, 4), White) {
		t.Fatal("knight must not attack adjacent squares")
	}

	if !p.SquareAttacked(sq(1, 1), Black) {
		t.Fatal("king should attack adjacent squares")
	}
	if p.SquareAttacked(sq(2, 2), Black) {
		t.Fatal("king must not attack at range")
	}
}

func TestKingInCheckFromRange(t *testing.T) {
	// A rook on the far side of the board: the regression the
	// adjacency-only check detector missed.
	p := emptyPosition(White)
	place(&p, 7, 4, King, White)
	place(&p, 0, 4, King, Black)
	place(&p, 3, 4, Rook, Black)

	inCheck, err := p.KingInCheck(White)
	if err != nil {
		t.Fatal(err)
	}
	if !inCheck {
		t.Fatal("white king should be in check from the distant rook")
	}

	// Interpose a pawn and the check disappears.
	place(&p, 5, 4, Pawn, White)
	inCheck, err = p.KingInCheck(White)
	if err != nil {
		t.Fatal(err)
	}
	if inCheck {
		t.Fatal("blocked rook cannot give check")
	}
}

func TestKingInCheckRederivesStaleCache(t *testing.T) {
	p := emptyPosition(White)
	place(&p, 7, 4, King, White)
	place(&p, 0, 4, King, Black)
	place(&p, 3, 4, Rook, Black)

	// Poison the cache; the detector must fall back to the real square.
	p.KingPositions.White = sq(2, 2)

	inCheck, err := p.KingInCheck(White)
	if err != nil {
		t.Fatal(err)
	}
	if !inCheck {
		t.Fatal("stale king cache must not hide a check")
	}
}

func TestKingInCheckMissingKingIsFault(t *testing.T) {
	p := emptyPosition(White)
	place(&p, 4, 4, Pawn, White)

	_, err := p.KingInCheck(White)
	if err == nil {
		t.Fatal("expected a fault for a board with no king")
	}
	if !IsFault(err) {
		t.Fatalf("expected an engine fault, got %v", err)
	}
}
