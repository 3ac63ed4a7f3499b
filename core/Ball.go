package core

import "math"

const (
	BallBaseSpeed = 4
	BallMaxSpeed  = 12
	BallSpeedStep = 0.5
)

// Collision tags what a ball's candidate move struck.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionCanvasLeft
	CollisionCanvasRight
	CollisionCanvasTop
	CollisionCanvasBottom
	CollisionPaddle1
	CollisionPaddle2
)

func (c Collision) String() string {
	switch c {
	case CollisionCanvasLeft:
		return "canvasLeft"
	case CollisionCanvasRight:
		return "canvasRight"
	case CollisionCanvasTop:
		return "canvasTop"
	case CollisionCanvasBottom:
		return "canvasBottom"
	case CollisionPaddle1:
		return "paddle1"
	case CollisionPaddle2:
		return "paddle2"
	}
	return "none"
}

type Ball struct {
	Entity
	Radius             float64
	BaseSpeed          float64
	MaxSpeed           float64
	CollidingWith      Collision
	LastServeDirection float64
	// 這一球的反彈次數
	Bounces int

	canvas         Canvas
	startX, startY float64
}

func NewBall(canvas Canvas, x, y float64) *Ball {
	return &Ball{
		Entity:             Entity{X: x, Y: y, Speed: BallBaseSpeed},
		Radius:             canvas.Width / 32,
		BaseSpeed:          BallBaseSpeed,
		MaxSpeed:           BallMaxSpeed,
		LastServeDirection: 1,
		canvas:             canvas,
		startX:             x,
		startY:             y,
	}
}

// Move advances the ball one frame against the canvas walls and both paddles.
// Inspect CollidingWith afterwards to see what, if anything, was hit.
func (b *Ball) Move(paddle1, paddle2 *Paddle) {
	b.MoveWith(&rally{ball: b, paddle1: paddle1, paddle2: paddle2})
}

// HasNoCollisions tests the candidate position in a fixed order: left, right,
// top, bottom, paddle1, paddle2. The first hit wins and is stored in CollidingWith.
func (b *Ball) HasNoCollisions(newX, newY float64, paddle1, paddle2 *Paddle) bool {
	switch {
	case newX-b.Radius < 0:
		b.CollidingWith = CollisionCanvasLeft
	case newX+b.Radius > b.canvas.Width:
		b.CollidingWith = CollisionCanvasRight
	case newY-b.Radius < 0:
		b.CollidingWith = CollisionCanvasTop
	case newY+b.Radius > b.canvas.Height:
		b.CollidingWith = CollisionCanvasBottom
	case b.IsCollidingWithPaddle(newX, newY, paddle1):
		b.CollidingWith = CollisionPaddle1
	case b.IsCollidingWithPaddle(newX, newY, paddle2):
		b.CollidingWith = CollisionPaddle2
	default:
		b.CollidingWith = CollisionNone
		return true
	}
	return false
}

func (b *Ball) DoCollisionBehaviour(paddle1, paddle2 *Paddle) {
	var newXDirection, newYDirection float64

	if b.Speed < b.MaxSpeed {
		b.Speed = Clamp(b.Speed+BallSpeedStep, b.BaseSpeed, b.MaxSpeed)
	}

	switch b.CollidingWith {
	case CollisionCanvasLeft:
		newXDirection, newYDirection = -b.XDirection, b.YDirection
		b.X = b.Radius
	case CollisionCanvasRight:
		newXDirection, newYDirection = -b.XDirection, b.YDirection
		b.X = b.canvas.Width - b.Radius
	case CollisionCanvasTop, CollisionCanvasBottom:
		//得分，重新發球
		b.ResetToOrigin()
		return
	case CollisionPaddle1:
		newXDirection, newYDirection = b.deflect(paddle1, 1)
		if b.Y-b.Radius < paddle1.Y+paddle1.Height/2 {
			b.pushOut(paddle1, paddle1.Speed)
		}
	case CollisionPaddle2:
		newXDirection, newYDirection = b.deflect(paddle2, -1)
		if b.Y+b.Radius > paddle2.Y-paddle2.Height/2 {
			// push-out distance is tied to paddle1's speed
			b.pushOut(paddle2, pushSpeed(paddle1))
		}
	default:
		return
	}

	b.Bounces++
	b.SetDirection(newXDirection, newYDirection)
}

// ResetToOrigin serves a new rally from the starting position,
// alternating the serve direction each time.
func (b *Ball) ResetToOrigin() {
	b.X = b.startX
	b.Y = b.startY
	b.LastServeDirection = -b.LastServeDirection
	b.SetDirection(0, b.LastServeDirection)
	b.Speed = b.BaseSpeed
	b.Bounces = 0
}

// IsCollidingWithPaddle is a circle vs axis-aligned rectangle overlap test.
func (b *Ball) IsCollidingWithPaddle(newX, newY float64, paddle *Paddle) bool {
	if paddle == nil {
		return false
	}
	halfWidth, halfHeight := paddle.Width/2, paddle.Height/2
	circleXDistance := math.Abs(newX - paddle.X)
	circleYDistance := math.Abs(newY - paddle.Y)

	if circleXDistance > halfWidth+b.Radius {
		return false
	}
	if circleYDistance > halfHeight+b.Radius {
		return false
	}

	if circleXDistance <= halfWidth {
		return true
	}
	if circleYDistance <= halfHeight {
		return true
	}

	cornerDistanceSquared := square(circleXDistance-halfWidth) + square(circleYDistance-halfHeight)
	return cornerDistanceSquared <= square(b.Radius)
}

func (b *Ball) Draw(s Surface) {
	s.FillCircle(b.X, b.Y, b.Radius, ColorWhite)
}

// deflect picks the outgoing direction from where the ball struck the paddle.
// The offset is taken over the full paddle width, so angles stay within ±π/4.
// yward is +1 to leave downward and -1 to leave upward.
func (b *Ball) deflect(paddle *Paddle, yward float64) (float64, float64) {
	relativeX := 0.0
	if paddle.Width > 0 {
		relativeX = (b.X - paddle.X) / paddle.Width
	}
	angle := relativeX * math.Pi / 2
	return math.Sin(angle), yward * math.Cos(angle)
}

// pushOut moves the ball clear of the paddle's side so a moving paddle
// cannot catch it again on the next frame.
func (b *Ball) pushOut(paddle *Paddle, speed float64) {
	offset := paddle.Width/2 + b.Radius + speed + 1
	if b.X < paddle.X {
		b.X = paddle.X - offset
	} else {
		b.X = paddle.X + offset
	}
}

func pushSpeed(paddle *Paddle) float64 {
	if paddle == nil {
		return PaddleSpeed
	}
	return paddle.Speed
}

// rally binds the ball to the paddles it can hit for a single move.
type rally struct {
	ball             *Ball
	paddle1, paddle2 *Paddle
}

func (r *rally) HasNoCollisions(newX, newY float64) bool {
	return r.ball.HasNoCollisions(newX, newY, r.paddle1, r.paddle2)
}

func (r *rally) DoCollisionBehaviour() {
	r.ball.DoCollisionBehaviour(r.paddle1, r.paddle2)
}
