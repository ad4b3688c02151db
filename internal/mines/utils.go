package mines

import "iter"

// Points yields every cell position in row-major order.
func (g *Grid) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for row := range g.params.Height {
			for col := range g.params.Width {
				if !yield(Point{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// neighbours yields the up to 8 cells around p that lie on the board.
func (g *Grid) neighbours(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				q := Point{Row: p.Row + dy, Col: p.Col + dx}
				if g.params.ValidatePoint(q) && !yield(q) {
					return
				}
			}
		}
	}
}
