package rules

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Color is the side owning a piece or the side to move.
type Color uint8

const (
	White Color = iota
	Black
)

// Opposite returns the other side.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece is an immutable (type, color) pair. The zero Piece marks an empty square.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// IsEmpty reports whether p is the empty square marker.
func (p Piece) IsEmpty() bool { return p.Type == NoPieceType }

// Position addresses a board square. Row 0 is black's back rank (rank 8),
// row 7 is white's (rank 1); Col 0 is the a-file.
type Position struct {
	Row int
	Col int
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < 8 && p.Col >= 0 && p.Col < 8
}

// Move records what happened on a ply. Before application only From, To and
// (optionally) PromotionPiece are meaningful; ApplyMove fills in the rest.
type Move struct {
	From     Position
	To       Position
	Piece    Piece
	Captured Piece

	IsCheck        bool
	IsCheckmate    bool
	IsPromotion    bool
	PromotionPiece PieceType
	IsCastling     bool
	IsEnPassant    bool
}

// IsCapture reports whether the move took a piece, en passant included.
func (m Move) IsCapture() bool { return !m.Captured.IsEmpty() }

// CastlingRights are only ever cleared within a game, never set again.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// Index packs the four flags into 0..15 (K=1, Q=2, k=4, q=8).
func (cr CastlingRights) Index() int {
	idx := 0
	if cr.WhiteKingSide {
		idx |= 1
	}
	if cr.WhiteQueenSide {
		idx |= 2
	}
	if cr.BlackKingSide {
		idx |= 4
	}
	if cr.BlackQueenSide {
		idx |= 8
	}
	return idx
}

// AllCastlingRights is the starting configuration.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Difficulty selects the opponent strategy.
type Difficulty uint8

const (
	Beginner Difficulty = iota
	Intermediate
	Advanced
	Expert
)

var difficultyNames = [...]string{"beginner", "intermediate", "advanced", "expert"}

func (d Difficulty) String() string {
	if int(d) < len(difficultyNames) {
		return difficultyNames[d]
	}
	return "unknown"
}

// ParseDifficulty maps a tier name back to its Difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	for i, name := range difficultyNames {
		if name == s {
			return Difficulty(i), true
		}
	}
	return Beginner, false
}

// GameMode says who plays the black pieces.
type GameMode uint8

const (
	ModeVsComputer GameMode = iota
	ModeTwoPlayer
)

func (m GameMode) String() string {
	if m == ModeTwoPlayer {
		return "two-player"
	}
	return "vs-computer"
}

// Options are display-only flags carried along for the UI. The engine never reads them.
type Options struct {
	ShowCoordinates bool
	HighlightMoves  bool
	ShowThreats     bool
	FlipBoard       bool
}

// Option tweaks the display flags of a new game.
type Option func(*Options)

// WithCoordinates shows or hides the rank and file labels.
func WithCoordinates(show bool) Option { return func(o *Options) { o.ShowCoordinates = show } }

// WithMoveHighlights marks the legal destinations of the selected piece.
func WithMoveHighlights(show bool) Option { return func(o *Options) { o.HighlightMoves = show } }

// WithThreats marks the side to move's pieces that are under attack.
func WithThreats(show bool) Option { return func(o *Options) { o.ShowThreats = show } }

// WithFlippedBoard draws the board from black's side.
func WithFlippedBoard(flip bool) Option { return func(o *Options) { o.FlipBoard = flip } }

// GameState is an immutable snapshot of a game. Every transition builds a new
// value; MoveHistory is shared copy-on-append and must not be written to.
type GameState struct {
	Board         Board
	CurrentPlayer Color
	MoveHistory   []Move

	IsCheck     bool
	IsCheckmate bool
	IsStalemate bool

	// Caches of the king squares; kept in sync with Board by every transition.
	WhiteKingPosition Position
	BlackKingPosition Position

	CastlingRights  CastlingRights
	EnPassantTarget Position
	HasEnPassant    bool

	Difficulty Difficulty
	Mode       GameMode
	Options    Options

	// StartFEN is empty for games created by NewGame.
	StartFEN string
}

// IsOver reports whether the side to move has no legal reply.
func (s GameState) IsOver() bool { return s.IsCheckmate || s.IsStalemate }

// KingPosition returns the cached king square of the given color.
func (s GameState) KingPosition(c Color) Position {
	if c == White {
		return s.WhiteKingPosition
	}
	return s.BlackKingPosition
}
