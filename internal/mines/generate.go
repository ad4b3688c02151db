package mines

// Rand is the random source used to place mines. [math/rand/v2.Rand]
// satisfies it.
type Rand interface {
	Uint32() uint32
}

// Initialize places the mines and records every clear cell's neighbour
// count. safe is guaranteed to stay clear. A grid may only be initialized
// once.
//
// panics [AssertionError]
func (g *Grid) Initialize(safe Point, r Rand) {
	if g.initialized {
		panic(AssertionError{"grid already initialized"})
	}
	g.mustIndex(safe, "initialize")

	width, height, mineCount := g.params.Unpack()

	/*
	 * Draw a random square and keep it only if it is neither mined
	 * already nor the square the player is about to open. Draws are
	 * reduced modulo the board size and rejected draws are simply
	 * repeated.
	 */
	for placed := 0; placed < mineCount; {
		p := Point{
			Row: int(r.Uint32() % uint32(height)),
			Col: int(r.Uint32() % uint32(width)),
		}
		c := &g.cells[g.index(p)]
		if c.mined || p == safe {
			continue
		}
		c.mined = true
		placed++
	}

	for p := range g.Points() {
		c := &g.cells[g.index(p)]
		if c.mined {
			continue
		}
		var n uint8
		for q := range g.neighbours(p) {
			if g.cells[g.index(q)].mined {
				n++
			}
		}
		c.adjacent = n
	}

	g.initialized = true
}
