package chess

// Evaluate classifies the position for the side to move: check and a
// legal reply means check, check with no reply is checkmate, no check and
// no reply is stalemate, anything else is active.
func (p Position) Evaluate() (Status, error) {
	inCheck, err := p.KingInCheck(p.CurrentPlayer)
	if err != nil {
		return "", err
	}
	hasMove, err := p.hasLegalMove(p.CurrentPlayer)
	if err != nil {
		return "", err
	}

	switch {
	case inCheck && hasMove:
		return StatusCheck, nil
	case inCheck && !hasMove:
		return StatusCheckmate, nil
	case !inCheck && !hasMove:
		return StatusStalemate, nil
	}
	return StatusActive, nil
}

// hasLegalMove probes every own piece against every destination until one
// full-legality validation succeeds. At most 64x64 probes, each doing
// cheap geometric work plus one simulated check test; fine for
// interactive play.
func (p Position) hasLegalMove(side Color) (bool, error) {
	for fromRow := 0; fromRow < 8; fromRow++ {
		for fromCol := 0; fromCol < 8; fromCol++ {
			piece := p.Board[fromRow][fromCol]
			if piece == nil || piece.Color != side {
				continue
			}
			for toRow := 0; toRow < 8; toRow++ {
				for toCol := 0; toCol < 8; toCol++ {
					move := Move{
						From: Square{Row: fromRow, Col: fromCol},
						To:   Square{Row: toRow, Col: toCol},
					}
					err := p.Validate(move, side)
					if err == nil {
						return true, nil
					}
					if IsFault(err) {
						return false, err
					}
				}
			}
		}
	}
	return false, nil
}

// Winner returns the side that delivered mate. The second return is false
// while the game is not decided.
func (p Position) Winner() (Color, bool) {
	if p.GameStatus != StatusCheckmate {
		return 0, false
	}
	// The side to move is the one with no escape; the mover is its opponent.
	return p.CurrentPlayer.Opponent(), true
}

// GameOver reports whether no further move can be played.
func (p Position) GameOver() bool {
	return p.GameStatus == StatusCheckmate || p.GameStatus == StatusStalemate
}

// Draw reports a drawn game. Stalemate is the only draw tracked here;
// repetition and fifty-move draws are outside this engine's rules.
func (p Position) Draw() bool {
	return p.GameStatus == StatusStalemate
}
