package core

const PaddleSpeed = 8

// Paddle is a center-anchored rectangle that only collides with the canvas edges.
type Paddle struct {
	Entity
	Width, Height float64

	canvas         Canvas
	startX, startY float64
}

func NewPaddle(canvas Canvas, x, y float64) *Paddle {
	return &Paddle{
		Entity: Entity{X: x, Y: y, Speed: PaddleSpeed},
		Width:  canvas.Width / 3,
		Height: canvas.Height / 16,
		canvas: canvas,
		startX: x,
		startY: y,
	}
}

func (p *Paddle) Move() {
	p.MoveWith(p)
}

// HasNoCollisions reports whether the paddle centered at (newX, newY) stays inside the canvas.
func (p *Paddle) HasNoCollisions(newX, newY float64) bool {
	halfWidth, halfHeight := p.Width/2, p.Height/2

	if newX-halfWidth < 0 {
		return false
	} else if newX+halfWidth > p.canvas.Width {
		return false
	}

	if newY-halfHeight < 0 {
		return false
	} else if newY+halfHeight > p.canvas.Height {
		return false
	}

	return true
}

// Steer sets the horizontal direction from two opposing keys.
// Both or neither held cancel out.
func (p *Paddle) Steer(left, right bool) {
	switch {
	case left && !right:
		p.SetDirection(-1, 0)
	case right && !left:
		p.SetDirection(1, 0)
	default:
		p.SetDirection(0, 0)
	}
}

//回到起始位置
func (p *Paddle) ResetToStart() {
	p.X = p.startX
	p.Y = p.startY
}

func (p *Paddle) Draw(s Surface) {
	s.FillRect(p.X-p.Width/2, p.Y-p.Height/2, p.Width, p.Height, ColorWhite)
}
