package mines

// Outcome is the result of opening a cell.
type Outcome int

const (
	Continue    Outcome = iota // a clear cell was opened
	Mine                       // the player hit a mine
	AlreadyOpen                // nothing happened
)

// Outcome implements [fmt.Stringer]
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Mine:
		return "mine"
	case AlreadyOpen:
		return "already open"
	default:
		return "unknown"
	}
}

// Open opens the cell at p. A cell without mined neighbours opens all of its
// neighbours as well, so a whole empty region and its numbered border are
// revealed at once.
//
// panics [AssertionError]
func (g *Grid) Open(p Point) Outcome {
	g.mustIndex(p, "open")
	return g.open(p)
}

func (g *Grid) open(p Point) Outcome {
	c := &g.cells[g.index(p)]
	// The only thing stopping the flood fill from cycling.
	if c.opened {
		return AlreadyOpen
	}
	c.opened = true

	if c.mined {
		return Mine
	}
	if c.adjacent == 0 {
		for q := range g.neighbours(p) {
			g.open(q)
		}
	}
	return Continue
}

// IsCleared reports whether exactly as many cells are still closed as there
// are mines on the board.
func (g *Grid) IsCleared() bool {
	covered := 0
	for _, c := range g.cells {
		if !c.opened {
			covered++
		}
	}
	return covered == g.params.MineCount
}
