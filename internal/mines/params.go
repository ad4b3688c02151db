package mines

import (
	"errors"
	"fmt"
)

var ErrInvalidParams = errors.New("invalid game params")

type GameParams struct {
	Width, Height, MineCount int
}

// Classic is the board the terminal game is played on.
var Classic = GameParams{Width: 8, Height: 8, MineCount: 8}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

// GameParams implements [fmt.Stringer]
func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: board size %dx%d", ErrInvalidParams, p.Width, p.Height)
	}
	if p.MineCount < 0 || p.MineCount >= p.Width*p.Height {
		return fmt.Errorf(
			"%w: mine count %d must be in [0, %d)",
			ErrInvalidParams, p.MineCount, p.Width*p.Height,
		)
	}
	return nil
}

func (p GameParams) ValidatePoint(pt Point) bool {
	return 0 <= pt.Row && pt.Row < p.Height && 0 <= pt.Col && pt.Col < p.Width
}

// Point addresses a cell. Row and Col are zero-based.
type Point struct {
	Row, Col int
}

// Point implements [fmt.Stringer]
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}
