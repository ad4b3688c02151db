package game

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

func newSession(t *testing.T, seed uint64) (*Session, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s, err := NewSession(mines.Classic, rand.New(rand.NewPCG(seed, 2)), logger)
	require.NoError(t, err)
	return s, hook
}

// playing returns a session that is still going after its first open at
// (0, 0).
func playing(t *testing.T) (*Session, *test.Hook) {
	t.Helper()
	for seed := range uint64(100) {
		s, hook := newSession(t, seed)
		_, err := s.Open(mines.Point{Row: 0, Col: 0})
		require.NoError(t, err)
		if !s.Over() {
			return s, hook
		}
	}
	t.Fatal("every game was cleared by its first open")
	return nil, nil
}

func firstMine(t *testing.T, g *mines.Grid) mines.Point {
	t.Helper()
	for p := range g.Points() {
		if g.Cell(p).Mined() {
			return p
		}
	}
	t.Fatal("no mines on the board")
	return mines.Point{}
}

func TestNewSessionRejectsInvalidParams(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, err := NewSession(mines.GameParams{Width: 2, Height: 2, MineCount: 4}, rand.New(rand.NewPCG(1, 2)), logger)
	assert.ErrorIs(t, err, mines.ErrInvalidParams)
}

func TestFirstOpenIsSafe(t *testing.T) {
	for seed := range uint64(100) {
		s, _ := newSession(t, seed)
		require.False(t, s.Grid().Initialized())

		p := mines.Point{Row: int(seed % 8), Col: int(seed / 8 % 8)}
		outcome, err := s.Open(p)
		require.NoError(t, err)

		assert.Equal(t, mines.Continue, outcome)
		assert.True(t, s.Grid().Initialized())
		assert.NotEqual(t, Lost, s.State())
		assert.True(t, s.Grid().Cell(p).Opened())
	}
}

func TestOpenOutOfBounds(t *testing.T) {
	s, hook := newSession(t, 1)

	_, err := s.Open(mines.Point{Row: 8, Col: 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.False(t, s.Grid().Initialized())
	assert.Empty(t, hook.AllEntries())
}

func TestOpenAlreadyOpen(t *testing.T) {
	s, _ := playing(t)

	outcome, err := s.Open(mines.Point{Row: 0, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, mines.AlreadyOpen, outcome)
	assert.Equal(t, Playing, s.State())
}

func TestLose(t *testing.T) {
	s, hook := playing(t)

	mine := firstMine(t, s.Grid())
	outcome, err := s.Open(mine)
	require.NoError(t, err)
	assert.Equal(t, mines.Mine, outcome)
	assert.Equal(t, Lost, s.State())
	assert.True(t, s.Over())

	assert.True(t, s.Grid().Cell(mine).Opened())
	for p := range s.Grid().Points() {
		if p != mine && s.Grid().Cell(p).Mined() {
			assert.False(t, s.Grid().Cell(p).Opened(), "mine at %v opened", p)
		}
	}

	_, err = s.Open(mines.Point{Row: 7, Col: 7})
	assert.ErrorIs(t, err, ErrGameOver)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.DebugLevel, last.Level)
	assert.Equal(t, "game over", last.Message)
	assert.Equal(t, "lost", last.Data["state"])
	assert.True(t, json.Valid([]byte(last.Data["grid"].(string))))
}

func TestWin(t *testing.T) {
	s, hook := newSession(t, 7)

	_, err := s.Open(mines.Point{Row: 4, Col: 4})
	require.NoError(t, err)

	for p := range s.Grid().Points() {
		if s.Over() {
			break
		}
		if s.Grid().Cell(p).Mined() {
			continue
		}
		outcome, err := s.Open(p)
		require.NoError(t, err)
		require.NotEqual(t, mines.Mine, outcome)
	}

	assert.Equal(t, Won, s.State())
	assert.True(t, s.Grid().IsCleared())

	_, err = s.Open(mines.Point{Row: 0, Col: 0})
	assert.ErrorIs(t, err, ErrGameOver)

	var opened int
	for _, entry := range hook.AllEntries() {
		if entry.Message == "cell opened" {
			opened++
			assert.Equal(t, logrus.InfoLevel, entry.Level)
			assert.Equal(t, "8x8(8)", entry.Data["params"])
		}
	}
	assert.Positive(t, opened)
	assert.Equal(t, "won", hook.LastEntry().Data["state"])
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "playing", Playing.String())
	assert.Equal(t, "lost", Lost.String())
	assert.Equal(t, "won", Won.String())
	assert.Equal(t, "unknown", State(9).String())
}
