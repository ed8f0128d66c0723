package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("invalid particle configuration")

// Config describes how the particle field looks and moves.
type Config struct {
	Color         RGB     `env:"COLOR" envDefault:"#6495ed" yaml:"color"`
	Opacity       float64 `env:"OPACITY" envDefault:"0.7" yaml:"opacity"`
	ParticleCount int     `env:"COUNT" envDefault:"50" yaml:"particleCount"`
	ZIndex        int     `env:"Z_INDEX" envDefault:"9997" yaml:"zIndex"`
	LineDistance  float64 `env:"LINE_DISTANCE" envDefault:"150" yaml:"lineDistance"`
	LineWidth     float64 `env:"LINE_WIDTH" envDefault:"1" yaml:"lineWidth"`
	ParticleSpeed float64 `env:"SPEED" envDefault:"2" yaml:"particleSpeed"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Color:         RGB{R: 100, G: 149, B: 237},
		Opacity:       0.7,
		ParticleCount: 50,
		ZIndex:        9997,
		LineDistance:  150,
		LineWidth:     1,
		ParticleSpeed: 2,
	}
}

// Override holds optional replacements for Config fields. Nil fields are left
// untouched by Apply.
type Override struct {
	Color         *RGB     `yaml:"color,omitempty"`
	Opacity       *float64 `yaml:"opacity,omitempty"`
	ParticleCount *int     `yaml:"particleCount,omitempty"`
	ZIndex        *int     `yaml:"zIndex,omitempty"`
	LineDistance  *float64 `yaml:"lineDistance,omitempty"`
	LineWidth     *float64 `yaml:"lineWidth,omitempty"`
	ParticleSpeed *float64 `yaml:"particleSpeed,omitempty"`
}

// Int returns a pointer to v, for building overrides.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for building overrides.
func Float(v float64) *float64 { return &v }

// Color returns a pointer to c, for building overrides.
func Color(c RGB) *RGB { return &c }

// Apply returns c with every non-nil field of o copied over it.
func (c Config) Apply(o Override) Config {
	if o.Color != nil {
		c.Color = *o.Color
	}
	if o.Opacity != nil {
		c.Opacity = *o.Opacity
	}
	if o.ParticleCount != nil {
		c.ParticleCount = *o.ParticleCount
	}
	if o.ZIndex != nil {
		c.ZIndex = *o.ZIndex
	}
	if o.LineDistance != nil {
		c.LineDistance = *o.LineDistance
	}
	if o.LineWidth != nil {
		c.LineWidth = *o.LineWidth
	}
	if o.ParticleSpeed != nil {
		c.ParticleSpeed = *o.ParticleSpeed
	}
	return c
}

// Merge layers next over o. Fields set in next win.
func (o Override) Merge(next Override) Override {
	if next.Color != nil {
		o.Color = next.Color
	}
	if next.Opacity != nil {
		o.Opacity = next.Opacity
	}
	if next.ParticleCount != nil {
		o.ParticleCount = next.ParticleCount
	}
	if next.ZIndex != nil {
		o.ZIndex = next.ZIndex
	}
	if next.LineDistance != nil {
		o.LineDistance = next.LineDistance
	}
	if next.LineWidth != nil {
		o.LineWidth = next.LineWidth
	}
	if next.ParticleSpeed != nil {
		o.ParticleSpeed = next.ParticleSpeed
	}
	return o
}

// Override returns c as an override that sets every field.
func (c Config) Override() Override {
	return Override{
		Color:         &c.Color,
		Opacity:       &c.Opacity,
		ParticleCount: &c.ParticleCount,
		ZIndex:        &c.ZIndex,
		LineDistance:  &c.LineDistance,
		LineWidth:     &c.LineWidth,
		ParticleSpeed: &c.ParticleSpeed,
	}
}

// Validate reports the first out-of-range or non-finite field.
func (c Config) Validate() error {
	switch {
	case !finite(c.Opacity):
		return fmt.Errorf("%w: opacity %v is not finite", ErrInvalid, c.Opacity)
	case !finite(c.LineDistance):
		return fmt.Errorf("%w: line distance %v is not finite", ErrInvalid, c.LineDistance)
	case !finite(c.LineWidth):
		return fmt.Errorf("%w: line width %v is not finite", ErrInvalid, c.LineWidth)
	case !finite(c.ParticleSpeed):
		return fmt.Errorf("%w: particle speed %v is not finite", ErrInvalid, c.ParticleSpeed)
	case c.Opacity < 0 || c.Opacity > 1:
		return fmt.Errorf("%w: opacity %v not in [0,1]", ErrInvalid, c.Opacity)
	case c.ParticleCount < 0:
		return fmt.Errorf("%w: particle count %d is negative", ErrInvalid, c.ParticleCount)
	case c.LineDistance < 0:
		return fmt.Errorf("%w: line distance %v is negative", ErrInvalid, c.LineDistance)
	case c.LineWidth < 0:
		return fmt.Errorf("%w: line width %v is negative", ErrInvalid, c.LineWidth)
	case c.ParticleSpeed < 0:
		return fmt.Errorf("%w: particle speed %v is negative", ErrInvalid, c.ParticleSpeed)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
