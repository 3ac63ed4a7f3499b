package terminal

import (
	"CanvasPong/core"
	"testing"
	"time"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"
)

func TestKeyName(t *testing.T) {
	testCases := []struct {
		name     string
		ev       *tcell.EventKey
		expected string
	}{
		{"A", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), "a"},
		{"D", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), "d"},
		{"Space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), " "},
		{"Left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "ArrowLeft"},
		{"Right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), "ArrowRight"},
		{"Up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, KeyName(tc.ev))
		})
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, IsQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, IsQuit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.False(t, IsQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
}

func TestHandleKey(t *testing.T) {
	keys := core.NewKeys(time.Minute)

	assert.True(t, HandleKey(keys, tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)))
	assert.True(t, HandleKey(keys, tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))
	assert.False(t, HandleKey(keys, tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))

	assert.Equal(t, core.KeyState{Left1: true, Right2: true}, keys.Snapshot(time.Now()))
}
