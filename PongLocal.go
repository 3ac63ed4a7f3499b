package main

import (
	"CanvasPong/core"
	"CanvasPong/logger"
	"CanvasPong/terminal"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell"
)

var screen tcell.Screen

func initScreen() {
	var err error
	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if e := screen.Init(); e != nil {
		fmt.Fprintf(os.Stderr, "%v\n", e)
		os.Exit(1)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.HideCursor()
}

func initGameState(props core.Properties) *core.Match {
	keys := core.NewKeys(props.KeyHold)
	return core.NewMatch(props.Canvas, keys)
}

func startGameLoop(match *core.Match, props core.Properties) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := terminal.NewLoop(screen, match, props.FramePeriod())
	return loop.Run(ctx)
}

func start() {
	env := core.Env()
	props, err := core.ReadProperties("./", env)
	if err != nil {
		logger.Log.Error(err.Error())
		os.Exit(1)
	}

	//畫面初始化後不再輸出到終端機
	initScreen()
	logger.Log.Echo = false
	match := initGameState(props)

	err = startGameLoop(match, props)
	screen.Fini()
	if err != nil {
		logger.Log.Error(err.Error())
		os.Exit(1)
	}
}
