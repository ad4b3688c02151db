package game

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-tui/internal/coord"
	"github.com/vancomm/minesweeper-tui/internal/mines"
)

var (
	ErrOutOfBounds = errors.New("point outside the board")
	ErrGameOver    = errors.New("game is over")
)

type State int

const (
	Playing State = iota
	Lost
	Won
)

// State implements [fmt.Stringer]
func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Session is one game from the first click to a win or a loss. Mines are
// placed on the first open so that it can never hit one.
type Session struct {
	grid  *mines.Grid
	rnd   mines.Rand
	state State
	log   logrus.FieldLogger
}

func NewSession(params mines.GameParams, rnd mines.Rand, log logrus.FieldLogger) (*Session, error) {
	grid, err := mines.NewGrid(params)
	if err != nil {
		return nil, fmt.Errorf("unable to create grid: %w", err)
	}
	session := &Session{
		grid: grid,
		rnd:  rnd,
		log:  log.WithField("params", params.String()),
	}
	return session, nil
}

// Grid exposes the board for rendering. Callers must not mutate it.
func (s *Session) Grid() *mines.Grid {
	return s.grid
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Over() bool {
	return s.state != Playing
}

func (s *Session) Open(p mines.Point) (mines.Outcome, error) {
	if s.Over() {
		return mines.AlreadyOpen, ErrGameOver
	}
	if !s.grid.Params().ValidatePoint(p) {
		return mines.AlreadyOpen, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}

	if !s.grid.Initialized() {
		s.grid.Initialize(p, s.rnd)
		s.log.WithField("safe", coord.Format(p)).Debug("mines placed")
	}

	outcome := s.grid.Open(p)
	switch {
	case outcome == mines.Mine:
		s.state = Lost
	case s.grid.IsCleared():
		s.state = Won
	}

	s.log.WithFields(logrus.Fields{
		"point":   coord.Format(p),
		"outcome": outcome.String(),
		"state":   s.state.String(),
	}).Info("cell opened")

	if s.Over() {
		s.logSnapshot()
	}

	return outcome, nil
}

func (s *Session) logSnapshot() {
	snapshot, err := json.Marshal(s.grid)
	if err != nil {
		s.log.WithError(err).Error("unable to encode grid snapshot")
		return
	}
	s.log.WithFields(logrus.Fields{
		"state": s.state.String(),
		"grid":  string(snapshot),
	}).Debug("game over")
}
