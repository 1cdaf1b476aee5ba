package rules

import (
	"fmt"
	"strings"
)

const (
	files = "abcdefgh"
	ranks = "87654321"
)

// String returns the algebraic square name ("e4"), or "invalid" off the board.
func (p Position) String() string {
	if !p.Valid() {
		return "invalid"
	}
	return string(files[p.Col]) + string(ranks[p.Row])
}

// ParsePosition converts "e4" into a Position.
func ParsePosition(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%q: %w", s, ErrInvalidSquare)
	}
	col := strings.IndexByte(files, s[0])
	row := strings.IndexByte(ranks, s[1])
	if col < 0 || row < 0 {
		return Position{}, fmt.Errorf("%q: %w", s, ErrInvalidSquare)
	}
	return Position{Row: row, Col: col}, nil
}

var promotionLetters = map[PieceType]byte{Queen: 'q', Rook: 'r', Bishop: 'b', Knight: 'n'}

// String renders the move in coordinate form ("e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion || m.PromotionPiece != NoPieceType {
		promo := m.PromotionPiece
		if promo == NoPieceType {
			promo = Queen
		}
		s += string(promotionLetters[promo])
	}
	return s
}

// ParseMove builds a move request from coordinate text (e2e4, e7e8n).
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 4 || len(s) > 5 {
		return Move{}, fmt.Errorf("%q: %w", s, ErrInvalidMove)
	}
	from, err := ParsePosition(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%q: %w", s, ErrInvalidMove)
	}
	to, err := ParsePosition(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%q: %w", s, ErrInvalidMove)
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			m.PromotionPiece = Queen
		case 'r':
			m.PromotionPiece = Rook
		case 'b':
			m.PromotionPiece = Bishop
		case 'n':
			m.PromotionPiece = Knight
		default:
			return Move{}, fmt.Errorf("%q: bad promotion piece: %w", s, ErrInvalidMove)
		}
	}
	return m, nil
}

var pieceLetters = map[PieceType]byte{Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q', King: 'k'}

// Letter returns the FEN letter of the piece (upper case for white), or '.' when empty.
func (p Piece) Letter() byte {
	l, ok := pieceLetters[p.Type]
	if !ok {
		return '.'
	}
	if p.Color == White {
		return l - 'a' + 'A'
	}
	return l
}

func pieceFromLetter(ch byte) (Piece, bool) {
	color := Black
	if ch >= 'A' && ch <= 'Z' {
		color = White
		ch = ch - 'A' + 'a'
	}
	for t, l := range pieceLetters {
		if l == ch {
			return Piece{Type: t, Color: color}, true
		}
	}
	return NoPiece, false
}
