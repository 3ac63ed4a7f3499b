package terminal

import (
	"CanvasPong/core"
	"testing"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func testCanvas(t *testing.T) core.Canvas {
	t.Helper()
	canvas, err := core.NewCanvas(800, 600)
	require.NoError(t, err)
	return canvas
}

func cellAt(t *testing.T, s tcell.SimulationScreen, col, row int) rune {
	t.Helper()
	cells, width, _ := s.GetContents()
	cell := cells[row*width+col]
	if len(cell.Runes) == 0 {
		return ' '
	}
	return cell.Runes[0]
}

func TestScreen_FillRect(t *testing.T) {
	sim := newSimScreen(t, 80, 30)
	screen := NewScreen(sim, testCanvas(t))

	screen.FillRect(100, 100, 200, 100, core.ColorWhite)
	screen.Show()

	assert.Equal(t, rune(PaddleSymbol), cellAt(t, sim, 10, 5))
	assert.Equal(t, rune(PaddleSymbol), cellAt(t, sim, 29, 9))
	assert.NotEqual(t, rune(PaddleSymbol), cellAt(t, sim, 30, 5))
	assert.NotEqual(t, rune(PaddleSymbol), cellAt(t, sim, 9, 5))
	assert.NotEqual(t, rune(PaddleSymbol), cellAt(t, sim, 10, 10))
}

func TestScreen_FillRectAtLeastOneCell(t *testing.T) {
	sim := newSimScreen(t, 80, 30)
	screen := NewScreen(sim, testCanvas(t))

	screen.FillRect(0, 0, 1, 1, core.ColorWhite)
	screen.Show()

	assert.Equal(t, rune(PaddleSymbol), cellAt(t, sim, 0, 0))
	assert.NotEqual(t, rune(PaddleSymbol), cellAt(t, sim, 1, 0))
}

func TestScreen_FillCircle(t *testing.T) {
	sim := newSimScreen(t, 80, 30)
	screen := NewScreen(sim, testCanvas(t))

	screen.FillCircle(400, 300, 25, core.ColorWhite)
	screen.Show()

	assert.Equal(t, rune(BallSymbol), cellAt(t, sim, 40, 15))
	assert.NotEqual(t, rune(BallSymbol), cellAt(t, sim, 45, 15))
	assert.NotEqual(t, rune(BallSymbol), cellAt(t, sim, 40, 18))
}

func TestScreen_TinyCircleStillVisible(t *testing.T) {
	sim := newSimScreen(t, 80, 30)
	screen := NewScreen(sim, testCanvas(t))

	screen.FillCircle(400, 300, 0, core.ColorWhite)
	screen.Show()

	assert.Equal(t, rune(BallSymbol), cellAt(t, sim, 40, 15))
}

func TestScreen_DrawText(t *testing.T) {
	sim := newSimScreen(t, 80, 30)
	screen := NewScreen(sim, testCanvas(t))

	screen.DrawText(400, 300, "Hi!", core.ColorWhite, core.PromptFontSize)
	screen.Show()

	assert.Equal(t, 'H', cellAt(t, sim, 39, 15))
	assert.Equal(t, 'i', cellAt(t, sim, 40, 15))
	assert.Equal(t, '!', cellAt(t, sim, 41, 15))
}

func TestScreen_DrawScoreDigits(t *testing.T) {
	sim := newSimScreen(t, 80, 30)
	screen := NewScreen(sim, testCanvas(t))

	screen.DrawText(150, 200, "1", core.ColorWhite, core.ScoreFontSize)
	screen.Show()

	// glyph '1' centered on column 15, top row 8
	assert.Equal(t, rune(BallSymbol), cellAt(t, sim, 15, 8))
	assert.NotEqual(t, rune(BallSymbol), cellAt(t, sim, 14, 8))
	assert.Equal(t, rune(BallSymbol), cellAt(t, sim, 14, 9))
	assert.Equal(t, rune(BallSymbol), cellAt(t, sim, 16, 12))
}

func TestScreen_FillBackgroundClears(t *testing.T) {
	sim := newSimScreen(t, 80, 30)
	screen := NewScreen(sim, testCanvas(t))
	screen.FillRect(0, 0, 800, 600, core.ColorWhite)

	screen.FillBackground(core.ColorBlack)
	screen.Show()

	assert.Equal(t, ' ', cellAt(t, sim, 0, 0))
	assert.Equal(t, ' ', cellAt(t, sim, 79, 29))
}

func TestScreen_OutOfBoundsIsClipped(t *testing.T) {
	sim := newSimScreen(t, 80, 30)
	screen := NewScreen(sim, testCanvas(t))

	assert.NotPanics(t, func() {
		screen.FillRect(-400, -400, 4000, 4000, core.ColorWhite)
		screen.FillCircle(-50, 900, 100, core.ColorWhite)
		screen.DrawText(-10, 2000, "Player 1 wins!", core.ColorWhite, core.BannerFontSize)
		screen.Show()
	})
	assert.Equal(t, rune(PaddleSymbol), cellAt(t, sim, 79, 29))
}

func TestGetCellsFromChar(t *testing.T) {
	cells, ok := getCellsFromChar('7')
	require.True(t, ok)
	assert.Len(t, cells, 7)

	_, ok = getCellsFromChar('x')
	assert.False(t, ok)

	assert.True(t, hasGlyphs("10"))
	assert.False(t, hasGlyphs("1a"))
	assert.False(t, hasGlyphs(""))
}
