package marquee

import (
	stderrors "errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/marquee/pkg/errors"
	"github.com/go-drift/marquee/pkg/geometry"
)

// Direction is the sign of autonomous motion.
type Direction string

const (
	// DirectionUp scrolls content upward (position decreases).
	DirectionUp Direction = "up"
	// DirectionDown scrolls content downward (position increases).
	DirectionDown Direction = "down"
)

// Config holds the marquee's behavior options.
//
// The zero value is not the documented defaults; start from
// [DefaultConfig] and override fields, or use [LoadConfig]. Numeric
// fields holding non-finite or out-of-range values are normalized back
// to their defaults rather than propagated into the integrator.
type Config struct {
	// AutoScroll is the policy gate for autonomous scrolling.
	// Default true.
	AutoScroll bool `yaml:"autoScroll"`

	// Direction is the autonomous scroll direction. Default up.
	Direction Direction `yaml:"direction"`

	// Draggable enables pointer and touch handling. Default true.
	Draggable bool `yaml:"draggable"`

	// Friction is the per-frame-unit exponential velocity decay factor
	// in [0, 1]. Default 0.95.
	Friction float64 `yaml:"friction"`

	// Keyboard enables key handling. Default true.
	Keyboard bool `yaml:"keyboard"`

	// PauseOnInteraction controls whether user interaction suppresses
	// autonomous scrolling at all. Default true.
	PauseOnInteraction bool `yaml:"pauseOnInteraction"`

	// ResumeDelay is the quiet period in milliseconds before
	// autonomous scrolling resumes after an interaction. Default 2000.
	ResumeDelay float64 `yaml:"resumeDelay"`

	// Speed is the autonomous scroll rate in pixels per frame unit
	// (one frame unit ≈ 1/60 s). Default 0.5.
	Speed float64 `yaml:"speed"`

	// WheelEnabled enables scroll-wheel handling. Default true.
	WheelEnabled bool `yaml:"wheelEnabled"`
}

const (
	defaultFriction    = 0.95
	defaultResumeDelay = 2000.0
	defaultSpeed       = 0.5
)

// DefaultConfig returns the documented default configuration.
func DefaultConfig() Config {
	return Config{
		AutoScroll:         true,
		Direction:          DirectionUp,
		Draggable:          true,
		Friction:           defaultFriction,
		Keyboard:           true,
		PauseOnInteraction: true,
		ResumeDelay:        defaultResumeDelay,
		Speed:              defaultSpeed,
		WheelEnabled:       true,
	}
}

// normalized returns the config with invalid numeric values replaced
// by defaults and the direction canonicalized.
func (c Config) normalized() Config {
	if math.IsNaN(c.Friction) || math.IsInf(c.Friction, 0) || c.Friction < 0 || c.Friction > 1 {
		c.Friction = defaultFriction
	}
	if math.IsNaN(c.ResumeDelay) || math.IsInf(c.ResumeDelay, 0) || c.ResumeDelay < 0 {
		c.ResumeDelay = defaultResumeDelay
	}
	if math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0) || c.Speed < 0 {
		c.Speed = defaultSpeed
	}
	if c.Direction != DirectionDown {
		c.Direction = DirectionUp
	}
	return c
}

// LoadConfig reads marquee.yaml from dir if present, applying it over
// the defaults. A missing file yields the defaults without error.
// Read and parse failures are reported through the error handler and
// returned.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filepath.Join(dir, "marquee.yaml"))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, configError("marquee.LoadConfig", fmt.Errorf("failed to read marquee.yaml: %w", err))
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, configError("marquee.LoadConfig", fmt.Errorf("failed to parse marquee.yaml: %w", err))
	}
	return cfg.normalized(), nil
}

func configError(op string, err error) error {
	e := &errors.Error{Op: op, Kind: errors.KindConfig, Err: err}
	errors.Report(e)
	return e
}

// Callbacks are the notification hooks a caller can attach. All are
// optional. A panic escaping a callback is recovered and reported
// through pkg/errors rather than unwinding the frame loop.
type Callbacks struct {
	// OnPause fires when autonomous scrolling becomes suppressed.
	OnPause func()

	// OnResume fires when autonomous scrolling is re-enabled.
	OnResume func()

	// OnScroll fires with the raw committed position on every change.
	OnScroll func(position float64)

	// OnTransform fires with the visual transform whenever it is
	// re-published.
	OnTransform func(t geometry.Transform)

	// OnBlockVisible fires when a live-group block enters or leaves
	// the viewport. Requires Host.Viewport; silently unused otherwise.
	OnBlockVisible func(index int, visible bool)
}
