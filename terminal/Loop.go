package terminal

import (
	"CanvasPong/core"
	"CanvasPong/logger"
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell"
)

// Loop drives a match at a fixed frame rate: update, render, show.
type Loop struct {
	screen  tcell.Screen
	surface *Screen
	match   *core.Match
	period  time.Duration
}

func NewLoop(screen tcell.Screen, match *core.Match, period time.Duration) *Loop {
	return &Loop{
		screen:  screen,
		surface: NewScreen(screen, match.Canvas),
		match:   match,
		period:  period,
	}
}

// Frame runs one update-then-render pass.
func (l *Loop) Frame(now time.Time) {
	l.match.Update(now)
	l.match.Render(l.surface)
	l.surface.Show()
}

// Run blocks until ctx is cancelled or a quit key is pressed.
func (l *Loop) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inputDone := l.listenInput(cancel)

	ticker := time.NewTicker(l.period)
	defer ticker.Stop()

	logger.Log.Info(fmt.Sprintf(logger.LoopStartMsg, int(time.Second/l.period)))

	for {
		select {
		case <-ctx.Done():
			//通知輸入的goroutine結束
			_ = l.screen.PostEvent(tcell.NewEventInterrupt(nil))
			<-inputDone
			logger.Log.Info(logger.LoopStopMsg)
			return nil
		case now := <-ticker.C:
			l.Frame(now)
		}
	}
}

// listenInput polls terminal events on its own goroutine and stores key presses.
func (l *Loop) listenInput(quit context.CancelFunc) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			switch ev := l.screen.PollEvent().(type) {
			case nil, *tcell.EventInterrupt:
				return
			case *tcell.EventResize:
				cols, rows := ev.Size()
				logger.Log.Debug(fmt.Sprintf(logger.ScreenResizeMsg, cols, rows))
				l.screen.Sync()
			case *tcell.EventKey:
				if IsQuit(ev) {
					logger.Log.Info(logger.QuitKeyMsg)
					quit()
					return
				}
				HandleKey(l.match.Keys, ev)
			}
		}
	}()

	return done
}
