package core

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const DefaultEnv = "local"

var ErrInvalidFrameRate = errors.New("frame rate must be positive")

// Properties is the runtime configuration read from properties/<env>.properties.
type Properties struct {
	Canvas    Canvas
	FrameRate int
	KeyHold   time.Duration
}

func (p Properties) FramePeriod() time.Duration {
	return time.Second / time.Duration(p.FrameRate)
}

// Env returns PONG_ENV, loading a .env file first when one exists.
func Env() string {
	_ = godotenv.Load()

	env := os.Getenv("PONG_ENV")
	if env == "" {
		return DefaultEnv
	}
	return env
}

// ReadProperties loads properties/<env>.properties below dir.
// A missing file falls back to defaults; a malformed one is an error.
func ReadProperties(dir, env string) (Properties, error) {
	v := viper.New()
	v.SetConfigName(fmt.Sprintf("%s/%s", "properties", env))
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("CANVAS_WIDTH", 800)
	v.SetDefault("CANVAS_HEIGHT", 600)
	v.SetDefault("FRAME_RATE", 60)
	v.SetDefault("KEY_HOLD_MS", 150)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Properties{}, fmt.Errorf("read %s properties: %w", env, err)
		}
	}

	canvas, err := NewCanvas(cast.ToFloat64(v.Get("CANVAS_WIDTH")), cast.ToFloat64(v.Get("CANVAS_HEIGHT")))
	if err != nil {
		return Properties{}, err
	}

	frameRate := cast.ToInt(v.Get("FRAME_RATE"))
	if frameRate <= 0 {
		return Properties{}, fmt.Errorf("%w: got %d", ErrInvalidFrameRate, frameRate)
	}

	return Properties{
		Canvas:    canvas,
		FrameRate: frameRate,
		KeyHold:   time.Duration(cast.ToInt(v.Get("KEY_HOLD_MS"))) * time.Millisecond,
	}, nil
}
