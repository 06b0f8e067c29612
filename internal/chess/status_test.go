package chess

import "testing"

func TestEvaluateStartingPositionActive(t *testing.T) {
	status, err := NewPosition().Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusActive {
		t.Fatalf("got %s, want %s", status, StatusActive)
	}
}

func TestFoolsMate(t *testing.T) {
	p := NewPosition()
	p = mustApply(t, p, mv(6, 5, 5, 5), White) // f3
	p = mustApply(t, p, mv(1, 4, 3, 4), Black) // e5
	p = mustApply(t, p, mv(6, 6, 4, 6), White) // g4
	p = mustApply(t, p, mv(0, 3, 4, 7), Black) // Qh4#

	if p.GameStatus != StatusCheckmate {
		t.Fatalf("got status %s, want %s", p.GameStatus, StatusCheckmate)
	}
	if !p.CheckStatus.White {
		t.Fatal("white must be flagged in check")
	}

	winner, ok := p.Winner()
	if !ok || winner != Black {
		t.Fatalf("winner: got %v ok=%v, want black", winner, ok)
	}
	if !p.GameOver() {
		t.Fatal("checkmate ends the game")
	}
	if p.Draw() {
		t.Fatal("checkmate is not a draw")
	}

	hasMove, err := p.hasLegalMove(White)
	if err != nil {
		t.Fatal(err)
	}
	if hasMove {
		t.Fatal("white must have no legal reply to mate")
	}
}

func TestStalemate(t *testing.T) {
	// Black king cornered on h8; the queen move to g6 covers every
	// escape square without giving check.
	p := emptyPosition(White)
	place(&p, 5, 6, King, White)
	place(&p, 3, 5, Queen, White)
	place(&p, 0, 7, King, Black)

	p = mustApply(t, p, mv(3, 5, 2, 6), White) // Qg6

	if p.GameStatus != StatusStalemate {
		t.Fatalf("got status %s, want %s", p.GameStatus, StatusStalemate)
	}
	if p.CheckStatus.Black {
		t.Fatal("stalemate means the black king is not in check")
	}
	if !p.GameOver() {
		t.Fatal("stalemate ends the game")
	}
	if !p.Draw() {
		t.Fatal("stalemate is a draw")
	}
	if _, ok := p.Winner(); ok {
		t.Fatal("stalemate has no winner")
	}
}

func TestEvaluateCheckWithEscape(t *testing.T) {
	p := emptyPosition(Black)
	place(&p, 0, 4, King, Black)
	place(&p, 4, 4, Rook, White)
	place(&p, 7, 0, King, White)

	status, err := p.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusCheck {
		t.Fatalf("got %s, want %s", status, StatusCheck)
	}
}

func TestEvaluateFaultsWithoutKing(t *testing.T) {
	p := emptyPosition(White)
	place(&p, 6, 0, Pawn, White)

	if _, err := p.Evaluate(); err == nil || !IsFault(err) {
		t.Fatalf("expected an engine fault, got %v", err)
	}
}
