package core

import (
	"CanvasPong/logger"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const WinScore = 5 // 遊戲結束分數

// Match owns the two paddles, the ball and everything a round needs.
// Paddle1 guards the top edge, Paddle2 the bottom one.
type Match struct {
	ID     string
	Canvas Canvas

	Paddle1 *Paddle
	Paddle2 *Paddle
	Ball    *Ball

	Player1Score int
	Player2Score int
	// false while the win banner is up
	Playing bool

	Keys *Keys

	log *logrus.Entry
}

func NewMatch(canvas Canvas, keys *Keys) *Match {
	p1x, p1y := canvas.Paddle1Start()
	p2x, p2y := canvas.Paddle2Start()
	bx, by := canvas.Center()

	m := &Match{
		ID:      uuid.NewString(),
		Canvas:  canvas,
		Paddle1: NewPaddle(canvas, p1x, p1y),
		Paddle2: NewPaddle(canvas, p2x, p2y),
		Ball:    NewBall(canvas, bx, by),
		Playing: true,
		Keys:    keys,
	}
	m.Ball.SetDirection(0, 1)
	m.log = logger.Log.WithMatch(m.ID)
	m.log.Info(fmt.Sprintf(logger.MatchCreatedMsg, canvas.Width, canvas.Height))

	return m
}

// Update advances the match one frame. now is only used to read held keys.
func (m *Match) Update(now time.Time) {
	keys := m.Keys.Snapshot(now)

	//兩個球拍的方向
	m.Paddle1.Steer(keys.Left1, keys.Right1)
	m.Paddle2.Steer(keys.Left2, keys.Right2)

	if m.Playing {
		bounces := m.Ball.Bounces
		m.Ball.Move(m.Paddle1, m.Paddle2)
		m.awardPoint(m.Ball.CollidingWith, bounces)
	} else if keys.Restart {
		m.Restart()
	}

	//球拍在勝利畫面時仍可移動
	m.Paddle1.Move()
	m.Paddle2.Move()

	m.checkWinner()
}

// Restart clears the scores and recenters the paddles. The serve goes
// downward regardless of who served last.
func (m *Match) Restart() {
	m.Player1Score = 0
	m.Player2Score = 0
	m.Paddle1.ResetToStart()
	m.Paddle2.ResetToStart()
	m.Ball.SetDirection(0, 1)
	m.Playing = true

	m.log.Info(logger.MatchRestartMsg)
}

// Winner returns 1 or 2 once a player has reached WinScore, 0 otherwise.
func (m *Match) Winner() int {
	if m.Player1Score >= WinScore {
		return 1
	}
	if m.Player2Score >= WinScore {
		return 2
	}
	return 0
}

func (m *Match) awardPoint(hit Collision, bounces int) {
	var scorer int
	switch hit {
	case CollisionCanvasTop:
		m.Player2Score++
		scorer = 2
	case CollisionCanvasBottom:
		m.Player1Score++
		scorer = 1
	default:
		return
	}

	m.log.WithFields(logrus.Fields{
		"player1": m.Player1Score,
		"player2": m.Player2Score,
		"bounces": bounces,
	}).Info(fmt.Sprintf(logger.PointScoredMsg, scorer))
}

func (m *Match) checkWinner() {
	winner := m.Winner()
	if winner == 0 || !m.Playing {
		return
	}
	m.Playing = false
	m.log.Info(fmt.Sprintf(logger.MatchWonMsg, winner, m.Player1Score, m.Player2Score))
}
