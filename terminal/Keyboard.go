package terminal

import (
	"CanvasPong/core"

	"github.com/gdamore/tcell"
)

// KeyName converts a terminal key event to the key names the game binds.
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

func IsQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

// HandleKey records a key press. Terminals never send key-up,
// so a press counts as held until the keys' hold window runs out.
func HandleKey(keys *core.Keys, ev *tcell.EventKey) bool {
	in, ok := core.InputForKey(KeyName(ev))
	if !ok {
		return false
	}
	keys.Tap(in, ev.When())
	return true
}
