package core

import (
	"sync"
	"time"
)

// Input is one of the five logical game inputs.
type Input int

const (
	InputLeft1 Input = iota
	InputRight1
	InputLeft2
	InputRight2
	InputRestart
	inputCount
)

var keyNames = map[string]Input{
	"a":          InputLeft1,
	"d":          InputRight1,
	"ArrowLeft":  InputLeft2,
	"ArrowRight": InputRight2,
	" ":          InputRestart,
}

// InputForKey maps a key name to its game input.
func InputForKey(key string) (Input, bool) {
	in, ok := keyNames[key]
	return in, ok
}

// KeyState is a frame's view of which inputs are held.
type KeyState struct {
	Left1, Right1 bool
	Left2, Right2 bool
	Restart       bool
}

// Keys is written by the input goroutine and read by the frame loop.
// Set is for hosts that report key-up; Tap is for hosts that only report
// presses, where a key stays held for the hold window after its last press.
type Keys struct {
	mu     sync.Mutex
	hold   time.Duration
	held   [inputCount]bool
	tapped [inputCount]time.Time
}

func NewKeys(hold time.Duration) *Keys {
	return &Keys{hold: hold}
}

func (k *Keys) Set(in Input, pressed bool) {
	if in < 0 || in >= inputCount {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	k.held[in] = pressed
	if !pressed {
		k.tapped[in] = time.Time{}
	}
}

func (k *Keys) Tap(in Input, at time.Time) {
	if in < 0 || in >= inputCount {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	k.tapped[in] = at
}

// SetKey is Set by key name. Unknown keys are ignored.
func (k *Keys) SetKey(key string, pressed bool) {
	if in, ok := InputForKey(key); ok {
		k.Set(in, pressed)
	}
}

func (k *Keys) Snapshot(now time.Time) KeyState {
	k.mu.Lock()
	defer k.mu.Unlock()

	var down [inputCount]bool
	for i := range down {
		down[i] = k.held[i] || k.isTapHeld(Input(i), now)
	}

	return KeyState{
		Left1:   down[InputLeft1],
		Right1:  down[InputRight1],
		Left2:   down[InputLeft2],
		Right2:  down[InputRight2],
		Restart: down[InputRestart],
	}
}

func (k *Keys) isTapHeld(in Input, now time.Time) bool {
	at := k.tapped[in]
	if at.IsZero() {
		return false
	}
	return now.Sub(at) <= k.hold
}
