package core

import (
	"fmt"
	"strconv"
)

type Color string

const (
	ColorBlack Color = "black"
	ColorWhite Color = "white"
)

const (
	ScoreFontSize   = 100
	BannerFontSize  = 80
	PromptFontSize  = 40
	RestartPrompt   = "Press space to restart"
	winnerBannerFmt = "Player %d wins!"
)

// Surface is the drawing collaborator. Text is centered horizontally on x.
type Surface interface {
	FillBackground(color Color)
	FillRect(x, y, w, h float64, color Color)
	FillCircle(x, y, r float64, color Color)
	DrawText(x, y float64, text string, color Color, fontSize int)
}

// Render draws the current frame. It never changes the match.
func (m *Match) Render(s Surface) {
	width, height := m.Canvas.Width, m.Canvas.Height

	s.FillBackground(ColorBlack)
	s.DrawText(150, 200, strconv.Itoa(m.Player1Score), ColorWhite, ScoreFontSize)
	s.DrawText(width-200, height-125, strconv.Itoa(m.Player2Score), ColorWhite, ScoreFontSize)
	m.Paddle1.Draw(s)
	m.Paddle2.Draw(s)

	if winner := m.Winner(); winner != 0 {
		s.DrawText(width/2, height/2, fmt.Sprintf(winnerBannerFmt, winner), ColorWhite, BannerFontSize)
		s.DrawText(width/2, height/2+100, RestartPrompt, ColorWhite, PromptFontSize)
		return
	}

	if m.Playing {
		m.Ball.Draw(s)
	}
}
