package field

import (
	"math"
	"math/rand/v2"
)

const (
	minRadius = 0.5
	maxRadius = 2.0
)

// Particle is a single moving point.
type Particle struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Radius         float64
}

// newParticle places a particle at random. Each velocity component lies in
// [-speed/2, speed/2), so the speed itself stays below speed.
func newParticle(rng *rand.Rand, width, height int, speed float64) Particle {
	return Particle{
		X:      rng.Float64() * float64(width),
		Y:      rng.Float64() * float64(height),
		SpeedX: (rng.Float64() - 0.5) * speed,
		SpeedY: (rng.Float64() - 0.5) * speed,
		Radius: minRadius + rng.Float64()*(maxRadius-minRadius),
	}
}

// step advances the particle by one frame, reflecting off the bounds. Each
// axis is handled on its own and the position is never clamped. A component
// only flips while it points further out, so a particle left outside by a
// shrinking resize drifts back in.
func (p *Particle) step(width, height int) {
	p.X += p.SpeedX
	p.Y += p.SpeedY

	if (p.X < 0 && p.SpeedX < 0) || (p.X > float64(width) && p.SpeedX > 0) {
		p.SpeedX = -p.SpeedX
	}
	if (p.Y < 0 && p.SpeedY < 0) || (p.Y > float64(height) && p.SpeedY > 0) {
		p.SpeedY = -p.SpeedY
	}
}

func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// fadeAlpha fades linearly from opacity at distance zero to nothing at
// threshold. Distances at or past the threshold give zero.
func fadeAlpha(opacity, d, threshold float64) float64 {
	if !(d < threshold) || threshold <= 0 {
		return 0
	}
	return opacity * (1 - d/threshold)
}
