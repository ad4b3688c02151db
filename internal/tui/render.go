package tui

import (
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

const title = "<<MINE SWEEPER>>"

// Render draws the board the way the player sees it: closed cells are "_",
// an opened mine is "B" and an opened clear cell shows its count. Columns
// are lettered from A, rows numbered from 1.
func Render(g *mines.Grid) string {
	var b strings.Builder

	b.WriteString(title + "\n\n")

	b.WriteString("  ")
	for col := range g.Width() {
		b.WriteByte(byte('A' + col))
	}
	b.WriteByte('\n')

	for row := range g.Height() {
		b.WriteString(strconv.Itoa(row+1) + " ")
		for col := range g.Width() {
			b.WriteString(cellText(g.Cell(mines.Point{Row: row, Col: col})))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func cellText(c mines.Cell) string {
	switch {
	case !c.Opened():
		return "_"
	case c.Mined():
		return "B"
	default:
		return strconv.Itoa(c.AdjacentMineCount())
	}
}
