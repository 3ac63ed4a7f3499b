package terminal

import (
	"CanvasPong/core"
	"math"

	"github.com/gdamore/tcell"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號

// Screen draws canvas coordinates onto terminal cells, scaling the canvas
// to whatever size the terminal currently has.
type Screen struct {
	screen tcell.Screen
	canvas core.Canvas
}

func NewScreen(screen tcell.Screen, canvas core.Canvas) *Screen {
	return &Screen{screen: screen, canvas: canvas}
}

func (s *Screen) FillBackground(color core.Color) {
	cols, rows := s.screen.Size()
	style := tcell.StyleDefault.Background(toTcell(color))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s.screen.SetContent(c, r, ' ', nil, style)
		}
	}
}

func (s *Screen) FillRect(x, y, w, h float64, color core.Color) {
	colFrom, colTo := s.span(x, x+w, s.scaleX())
	rowFrom, rowTo := s.span(y, y+h, s.scaleY())
	s.Print(rowFrom, colFrom, colTo-colFrom, rowTo-rowFrom, PaddleSymbol, color)
}

func (s *Screen) FillCircle(x, y, r float64, color core.Color) {
	sx, sy := s.scaleX(), s.scaleY()
	cx, cy := x*sx, y*sy
	rx, ry := r*sx, r*sy

	style := s.style(color)
	if rx > 0 && ry > 0 {
		for row := int(math.Floor(cy - ry)); row <= int(math.Ceil(cy+ry)); row++ {
			for col := int(math.Floor(cx - rx)); col <= int(math.Ceil(cx+rx)); col++ {
				dx := (float64(col) + 0.5 - cx) / rx
				dy := (float64(row) + 0.5 - cy) / ry
				if dx*dx+dy*dy <= 1 {
					s.setCell(col, row, BallSymbol, style)
				}
			}
		}
	}
	//球太小時至少畫一格
	s.setCell(int(math.Floor(cx)), int(math.Floor(cy)), BallSymbol, style)
}

// DrawText centers text on x. Score sized digits use the block font.
func (s *Screen) DrawText(x, y float64, text string, color core.Color, fontSize int) {
	col := int(math.Round(x * s.scaleX()))
	row := int(math.Round(y * s.scaleY()))

	if fontSize >= core.ScoreFontSize && hasGlyphs(text) {
		s.drawLetters(col, row, text, color)
		return
	}

	runes := []rune(text)
	start := col - len(runes)/2
	style := s.style(color)
	for i, ch := range runes {
		s.setCell(start+i, row, ch, style)
	}
}

func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) Print(row, col, width, height int, ch rune, color core.Color) {
	style := s.style(color)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			s.setCell(col+c, row+r, ch, style)
		}
	}
}

func (s *Screen) drawLetters(x int, y int, word string, color core.Color) {
	letterNum := len([]rune(word))
	totalLen := letterNum*glyphWidth + (letterNum - 1)
	startX := x - totalLen/2
	offsetY := y - glyphHeight/2
	style := s.style(color)

	for i, letter := range []rune(word) {
		letterCells, _ := getCellsFromChar(letter)
		offsetX := startX + i*(glyphWidth+1)

		for _, cell := range letterCells {
			s.setCell(offsetX+cell[0], offsetY+cell[1], BallSymbol, style)
		}
	}
}

// span maps [from, to) in canvas units to a cell range at least one cell wide.
func (s *Screen) span(from, to, scale float64) (int, int) {
	a := int(math.Round(from * scale))
	b := int(math.Round(to * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}

func (s *Screen) setCell(col, row int, ch rune, style tcell.Style) {
	cols, rows := s.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	s.screen.SetContent(col, row, ch, nil, style)
}

func (s *Screen) scaleX() float64 {
	cols, _ := s.screen.Size()
	return float64(cols) / s.canvas.Width
}

func (s *Screen) scaleY() float64 {
	_, rows := s.screen.Size()
	return float64(rows) / s.canvas.Height
}

func (s *Screen) style(color core.Color) tcell.Style {
	return tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(toTcell(color))
}

func toTcell(color core.Color) tcell.Color {
	switch color {
	case core.ColorBlack:
		return tcell.ColorBlack
	default:
		return tcell.ColorWhite
	}
}
