package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-tui/internal/coord"
	"github.com/vancomm/minesweeper-tui/internal/game"
)

const (
	lostMessage = "GAME OVER"
	wonMessage  = "GAME CLEAR"
)

// UI is the terminal front of a game session. The player types a cell such
// as "C5" and presses Enter; once the game is decided the next key press
// quits.
type UI struct {
	app     *tview.Application
	board   *tview.TextView
	input   *tview.InputField
	status  *tview.TextView
	session *game.Session
	log     logrus.FieldLogger
}

func New(session *game.Session, log logrus.FieldLogger) *UI {
	ui := &UI{
		session: session,
		log:     log,
	}

	ui.board = tview.NewTextView().
		SetText(Render(session.Grid()))

	ui.input = tview.NewInputField().
		SetLabel("> ").
		SetFieldWidth(3).
		SetAcceptanceFunc(tview.InputFieldMaxLength(2)).
		SetDoneFunc(ui.done)

	ui.status = tview.NewTextView()

	// title, blank line, column header and one line per row
	boardHeight := session.Grid().Height() + 3

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(ui.board, boardHeight, 0, false).
		AddItem(ui.input, 1, 0, true).
		AddItem(ui.status, 1, 0, false)

	ui.app = tview.NewApplication().
		SetRoot(layout, true).
		SetInputCapture(ui.capture)

	return ui
}

// Run blocks until the player quits or ctx is done. A ctx that is already
// done stops the app as soon as its event loop starts.
func (ui *UI) Run(ctx context.Context) error {
	release := context.AfterFunc(ctx, func() {
		ui.app.QueueUpdate(ui.app.Stop)
	})
	defer release()
	return ui.app.Run()
}

func (ui *UI) capture(event *tcell.EventKey) *tcell.EventKey {
	if ui.session.Over() {
		ui.app.Stop()
		return nil
	}
	return event
}

func (ui *UI) done(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	ui.Submit(ui.input.GetText())
	ui.input.SetText("")
}

// Submit handles one line of player input. Anything that is not a cell
// coordinate is dropped.
func (ui *UI) Submit(text string) {
	if ui.session.Over() {
		return
	}

	p, err := coord.Parse(text)
	if err != nil {
		ui.log.WithError(err).Debug("input discarded")
		return
	}

	if _, err := ui.session.Open(p); err != nil {
		ui.log.WithError(err).WithField("point", text).Warn("unable to open cell")
		return
	}

	ui.board.SetText(Render(ui.session.Grid()))

	switch ui.session.State() {
	case game.Lost:
		ui.status.SetTextColor(tcell.ColorRed).SetText(lostMessage)
	case game.Won:
		ui.status.SetTextColor(tcell.ColorGreen).SetText(wonMessage)
	}
}
