package mines

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Cell is either a mine or a clear cell that knows how many of its
// neighbours are mines.
type Cell struct {
	mined    bool
	adjacent uint8
	opened   bool
}

func (c Cell) Mined() bool {
	return c.mined
}

func (c Cell) Opened() bool {
	return c.opened
}

// Adjacent returns the number of mined neighbours. ok is false for a mine.
func (c Cell) Adjacent() (n int, ok bool) {
	if c.mined {
		return 0, false
	}
	return int(c.adjacent), true
}

// AdjacentMineCount flattens the cell into a single number: -1 for a mine,
// 0 to 8 otherwise.
func (c Cell) AdjacentMineCount() int {
	if c.mined {
		return -1
	}
	return int(c.adjacent)
}

// Cell implements [fmt.Stringer]
func (c Cell) String() string {
	if c.mined {
		return "*"
	}
	return strconv.Itoa(int(c.adjacent))
}

// Grid is the board of a single game. Cells are stored row by row.
type Grid struct {
	params      GameParams
	cells       []Cell
	initialized bool
}

// NewGrid allocates an empty board: no mines, every cell closed.
func NewGrid(params GameParams) (*Grid, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	grid := &Grid{
		params: params,
		cells:  make([]Cell, params.Width*params.Height),
	}
	return grid, nil
}

func (g *Grid) Params() GameParams { return g.params }
func (g *Grid) Width() int         { return g.params.Width }
func (g *Grid) Height() int        { return g.params.Height }
func (g *Grid) MineCount() int     { return g.params.MineCount }

// Initialized reports whether the mines have been placed.
func (g *Grid) Initialized() bool {
	return g.initialized
}

func (g *Grid) index(p Point) int {
	return p.Row*g.params.Width + p.Col
}

// panics [AssertionError]
func (g *Grid) mustIndex(p Point, op string) int {
	if !g.params.ValidatePoint(p) {
		panic(assertionf("%s: point %v outside %dx%d board",
			op, p, g.params.Width, g.params.Height))
	}
	return g.index(p)
}

// Cell returns a copy of the cell at p.
//
// panics [AssertionError]
func (g *Grid) Cell(p Point) Cell {
	return g.cells[g.mustIndex(p, "cell")]
}

// Grid implements [fmt.Stringer]. Closed cells are wrapped in brackets.
func (g *Grid) String() string {
	var b strings.Builder
	for p := range g.Points() {
		c := g.cells[g.index(p)]
		if c.opened {
			b.WriteString(" " + c.String() + " ")
		} else {
			b.WriteString("[" + c.String() + "]")
		}
		if p.Col == g.params.Width-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

type cellJSON struct {
	AroundBombs int  `json:"around_bombs"`
	Opened      bool `json:"opened"`
}

type gridJSON struct {
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	MineCount int          `json:"mine_count"`
	Cells     [][]cellJSON `json:"cells"`
}

// [Grid] implements [json.Marshaler]
func (g *Grid) MarshalJSON() ([]byte, error) {
	rows := make([][]cellJSON, g.params.Height)
	for p := range g.Points() {
		c := g.cells[g.index(p)]
		rows[p.Row] = append(rows[p.Row], cellJSON{
			AroundBombs: c.AdjacentMineCount(),
			Opened:      c.opened,
		})
	}
	return json.Marshal(gridJSON{
		Width:     g.params.Width,
		Height:    g.params.Height,
		MineCount: g.params.MineCount,
		Cells:     rows,
	})
}
