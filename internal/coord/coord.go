// Package coord translates board coordinates typed by the player, such as
// "C5", into grid points.
package coord

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

var ErrBadInput = errors.New("bad input")

type ParseError struct {
	Input  string
	Reason string
}

// [*ParseError] implements [error]
func (e *ParseError) Error() string {
	return fmt.Sprintf("bad input %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrBadInput
}

var location = regexp.MustCompile(`^[A-H][1-8]$`)

// Parse reads a column letter A-H followed by a row digit 1-8, in either
// case. "A1" is the top left cell.
func Parse(s string) (mines.Point, error) {
	if len(s) != 2 {
		return mines.Point{}, &ParseError{Input: s, Reason: "must be two characters"}
	}
	upper := strings.ToUpper(s)
	if !location.MatchString(upper) {
		return mines.Point{}, &ParseError{
			Input:  s,
			Reason: "must be a column A-H followed by a row 1-8",
		}
	}
	p := mines.Point{
		Row: int(upper[1] - '1'),
		Col: int(upper[0] - 'A'),
	}
	return p, nil
}

// Format is the inverse of [Parse].
func Format(p mines.Point) string {
	return string(rune('A'+p.Col)) + strconv.Itoa(p.Row+1)
}
