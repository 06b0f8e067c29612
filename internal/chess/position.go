package chess

// Board is the 8x8 grid. A nil cell is an empty square.
type Board [8][8]*Piece

// CapturedPieces lists captured pieces by their own color: White holds
// the white pieces that have been captured.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

// CastlingRights are only ever cleared, never restored.
type CastlingRights struct {
	WhiteKingside  bool `json:"white_kingside"`
	WhiteQueenside bool `json:"white_queenside"`
	BlackKingside  bool `json:"black_kingside"`
	BlackQueenside bool `json:"black_queenside"`
}

// KingPositions caches each king's square. The Move Applier keeps it in
// sync with the board; readers re-derive it if it ever looks stale.
type KingPositions struct {
	White Square `json:"white"`
	Black Square `json:"black"`
}

type CheckStatus struct {
	White bool `json:"white"`
	Black bool `json:"black"`
}

// Status classifies a position for the side to move.
type Status string

const (
	StatusActive    Status = "active"
	StatusCheck     Status = "check"
	StatusCheckmate Status = "checkmate"
	StatusStalemate Status = "stalemate"
)

// Position is a complete snapshot of a game. It is passed by value and
// never mutated: Apply returns a successor, Validate and Evaluate only
// read it. The JSON tags are the wire format consumed by the session
// layer, so a Position marshals directly into a state payload.
type Position struct {
	Board           Board          `json:"board"`
	CurrentPlayer   Color          `json:"current_player"`
	MovesCount      int            `json:"moves_count"`
	CapturedPieces  CapturedPieces `json:"captured_pieces"`
	CastlingRights  CastlingRights `json:"castling_rights"`
	EnPassantTarget *Square        `json:"en_passant_target"`
	KingPositions   KingPositions  `json:"king_positions"`
	CheckStatus     CheckStatus    `json:"check_status"`
	GameStatus      Status         `json:"game_status"`
	LastMove        *Move          `json:"last_move"`
	MoveHistory     []Move         `json:"move_history"`
}

// NewPosition returns the standard starting position: white to move,
// full castling rights, no en passant target.
func NewPosition() Position {
	p := Position{
		CurrentPlayer: White,
		CapturedPieces: CapturedPieces{
			White: []Piece{},
			Black: []Piece{},
		},
		CastlingRights: CastlingRights{
			WhiteKingside:  true,
			WhiteQueenside: true,
			BlackKingside:  true,
			BlackQueenside: true,
		},
		KingPositions: KingPositions{
			White: Square{Row: 7, Col: 4},
			Black: Square{Row: 0, Col: 4},
		},
		GameStatus:  StatusActive,
		MoveHistory: []Move{},
	}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < 8; col++ {
		p.Board[0][col] = &Piece{Type: backRank[col], Color: Black}
		p.Board[1][col] = &Piece{Type: Pawn, Color: Black}
		p.Board[6][col] = &Piece{Type: Pawn, Color: White}
		p.Board[7][col] = &Piece{Type: backRank[col], Color: White}
	}
	return p
}

// clone deep-copies the slice and pointer fields so the successor shares
// nothing mutable with its parent. Pieces themselves are immutable, so
// sharing the cell pointers is safe.
func (p Position) clone() Position {
	next := p
	next.CapturedPieces.White = append([]Piece(nil), p.CapturedPieces.White...)
	next.CapturedPieces.Black = append([]Piece(nil), p.CapturedPieces.Black...)
	next.MoveHistory = append([]Move(nil), p.MoveHistory...)
	if p.EnPassantTarget != nil {
		sq := *p.EnPassantTarget
		next.EnPassantTarget = &sq
	}
	if p.LastMove != nil {
		m := *p.LastMove
		next.LastMove = &m
	}
	return next
}

func (p *Position) pieceAt(sq Square) *Piece {
	if !sq.onBoard() {
		return nil
	}
	return p.Board[sq.Row][sq.Col]
}

func (p *Position) kingSquare(side Color) Square {
	if side == White {
		return p.KingPositions.White
	}
	return p.KingPositions.Black
}

func (p *Position) setKingSquare(side Color, sq Square) {
	if side == White {
		p.KingPositions.White = sq
	} else {
		p.KingPositions.Black = sq
	}
}

func pawnDirection(side Color) int {
	if side == White {
		return -1
	}
	return 1
}

func pawnStartRow(side Color) int {
	if side == White {
		return 6
	}
	return 1
}

func promotionRow(side Color) int {
	if side == White {
		return 0
	}
	return 7
}
