package core

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidCanvas = errors.New("canvas width and height must be positive")

// Canvas is the drawing surface the match is simulated on.
// Origin is the top-left corner, y grows downward.
type Canvas struct {
	Width, Height float64
}

func NewCanvas(width, height float64) (Canvas, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return Canvas{}, fmt.Errorf("%w: got %vx%v", ErrInvalidCanvas, width, height)
	}
	return Canvas{Width: width, Height: height}, nil
}

func (c Canvas) Center() (float64, float64) {
	return c.Width / 2, c.Height / 2
}

// 球拍起始位置 (置中)
func (c Canvas) Paddle1Start() (float64, float64) {
	return c.Width / 2, c.Height / 16
}

func (c Canvas) Paddle2Start() (float64, float64) {
	return c.Width / 2, c.Height * 15 / 16
}

// Clamp restricts v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func square(v float64) float64 {
	return v * v
}
