package domain

// Player is one of the two sides. The zero value means no player and is
// what an empty cell holds.
type Player uint8

const (
	NoPlayer Player = iota
	X
	O
)

// Other returns the opposing side.
func (p Player) Other() Player {
	if p == X {
		return O
	}
	return X
}

func (p Player) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Board is a fixed 3x3 board stored row-major.
type Board [9]Player

// Empty reports whether cell i holds no mark.
func (b Board) Empty(i int) bool { return b[i] == NoPlayer }

// Line is an index triple on the board.
type Line [3]int

// Contains reports whether index i is part of the line.
func (l Line) Contains(i int) bool {
	return l[0] == i || l[1] == i || l[2] == i
}

// WinLines lists every winning pattern in detection order.
var WinLines = [8]Line{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

// GameState is an immutable snapshot of a match. Treat values as read-only;
// ApplyMove always returns a new value instead of changing its argument.
type GameState struct {
	Board       Board
	NextPlayer  Player
	Winner      Player
	WinningLine *Line
	IsDraw      bool
}

// Terminal reports whether the game has ended in a win or a draw.
func (s GameState) Terminal() bool {
	return s.Winner != NoPlayer || s.IsDraw
}

// New returns a fresh game with X to move.
func New() GameState {
	return GameState{NextPlayer: X}
}

// ApplyMove places the next player's mark at index and returns the resulting
// state. Moves on a finished game, an occupied cell or an index outside 0..8
// are ignored and s is returned as is.
func ApplyMove(s GameState, index int) GameState {
	if s.Terminal() || index < 0 || index >= len(s.Board) || !s.Board.Empty(index) {
		return s
	}

	next := GameState{
		Board:      s.Board,
		NextPlayer: s.NextPlayer.Other(),
	}
	next.Board[index] = s.NextPlayer

	// a win on the last free cell is still a win
	if winner, line := CalculateWinner(next.Board); winner != NoPlayer {
		next.Winner = winner
		next.WinningLine = line
		return next
	}
	next.IsDraw = IsBoardFull(next.Board)
	return next
}

// CalculateWinner returns the owner of the first completed line in WinLines
// order together with a copy of that line, or NoPlayer and nil.
func CalculateWinner(b Board) (Player, *Line) {
	for _, ln := range WinLines {
		p := b[ln[0]]
		if p != NoPlayer && b[ln[1]] == p && b[ln[2]] == p {
			found := ln
			return p, &found
		}
	}
	return NoPlayer, nil
}

// IsBoardFull reports whether every cell is occupied.
func IsBoardFull(b Board) bool {
	for i := range b {
		if b.Empty(i) {
			return false
		}
	}
	return true
}
