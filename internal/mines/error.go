package mines

import "fmt"

// AssertionError is raised (as a panic) when a caller breaks the contract of
// a grid operation, e.g. by opening a cell outside the board.
type AssertionError struct {
	message string
}

func assertionf(format string, args ...any) AssertionError {
	return AssertionError{fmt.Sprintf(format, args...)}
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
