package main

import (
	"context"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-tui/internal/config"
	"github.com/vancomm/minesweeper-tui/internal/game"
	"github.com/vancomm/minesweeper-tui/internal/mines"
	"github.com/vancomm/minesweeper-tui/internal/tui"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	app, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to load config:", err)
		os.Exit(1)
	}

	log, err := app.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to set up logging:", err)
		os.Exit(1)
	}
	log.WithFields(app.Fields()).Debug("config")

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	session, err := game.NewSession(mines.Classic, createRand(), log)
	if err != nil {
		log.WithError(err).Error("unable to start a game")
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}

	ui := tui.New(session, log)

	log.Info("game started")

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		defer stop()
		return ui.Run(gCtx)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("terminal failure")
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}

	log.WithFields(logrus.Fields{
		"state": session.State().String(),
	}).Info("game finished")
}
