package web

import (
	"fmt"

	"github.com/jaminalder/ocean-tic-tac-toe/internal/domain"
)

type cellView struct {
	Index     int
	Row       int // 1-based, for aria-rowindex
	Col       int // 1-based, for aria-colindex
	Mark      string
	MarkClass string
	Label     string
	Winning   bool
	Disabled  bool
}

// boardView is everything the board fragment needs to render one state.
type boardView struct {
	Cells      []cellView
	Status     string
	Badge      string
	BadgeClass string
	GameOver   bool
	ResetLabel string
}

func newBoardView(s domain.GameState) boardView {
	v := boardView{GameOver: s.Terminal(), ResetLabel: "Reset"}
	switch {
	case s.Winner != domain.NoPlayer:
		v.Status = fmt.Sprintf("Player %s wins!", s.Winner)
		v.Badge = "Winner: " + s.Winner.String()
		v.BadgeClass = markClass(s.Winner)
	case s.IsDraw:
		v.Status = "It's a draw."
		v.Badge = "Draw"
		v.BadgeClass = "draw"
	default:
		v.Status = fmt.Sprintf("Next: Player %s", s.NextPlayer)
		v.Badge = "Turn: " + s.NextPlayer.String()
		v.BadgeClass = markClass(s.NextPlayer)
	}
	if v.GameOver {
		v.ResetLabel = "New Game"
	}

	v.Cells = make([]cellView, len(s.Board))
	for i, p := range s.Board {
		c := cellView{
			Index:     i,
			Row:       i/3 + 1,
			Col:       i%3 + 1,
			Mark:      p.String(),
			MarkClass: markClass(p),
			Label:     fmt.Sprintf("Cell %d", i+1),
			Winning:   s.WinningLine != nil && s.WinningLine.Contains(i),
			Disabled:  v.GameOver || p != domain.NoPlayer,
		}
		if c.Mark != "" {
			c.Label += ": " + c.Mark
		}
		v.Cells[i] = c
	}
	return v
}

func markClass(p domain.Player) string {
	switch p {
	case domain.X:
		return "mark-x"
	case domain.O:
		return "mark-o"
	default:
		return ""
	}
}

// stateView is the JSON shape served by /state.
type stateView struct {
	Board       []string `json:"board"`
	NextPlayer  string   `json:"nextPlayer"`
	Winner      *string  `json:"winner"`
	WinningLine []int    `json:"winningLine"`
	IsDraw      bool     `json:"isDraw"`
	Status      string   `json:"status"`
}

func newStateView(s domain.GameState) stateView {
	v := stateView{
		Board:      make([]string, len(s.Board)),
		NextPlayer: s.NextPlayer.String(),
		IsDraw:     s.IsDraw,
		Status:     newBoardView(s).Status,
	}
	for i, p := range s.Board {
		v.Board[i] = p.String()
	}
	if s.Winner != domain.NoPlayer {
		w := s.Winner.String()
		v.Winner = &w
	}
	if s.WinningLine != nil {
		v.WinningLine = s.WinningLine[:]
	}
	return v
}
