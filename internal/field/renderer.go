package field

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/iburimskiy/particle-field/internal/config"
)

// pointerReach scales LineDistance for lines drawn to the pointer.
const pointerReach = 1.5

// Option configures a Renderer.
type Option func(*Renderer)

// WithRand sets the random source used to place particles.
func WithRand(rng *rand.Rand) Option {
	return func(r *Renderer) { r.rng = rng }
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) { r.log = l }
}

// Status is a read-only snapshot of a Renderer.
type Status struct {
	Running       bool
	Config        config.Config
	ParticleCount int
}

// Renderer animates a field of particles joined by fading lines on a surface
// provided by its Host. All methods must be called from the host's event
// thread, the same one that runs frame callbacks.
type Renderer struct {
	host Host
	rng  *rand.Rand
	log  *slog.Logger

	cfg       config.Config
	particles []Particle
	pointerX  float64
	pointerY  float64

	running   bool
	surface   Surface
	surfaceZ  int
	frame     FrameID
	unsubMove func()
	unsubSize func()
}

// New returns a stopped Renderer bound to host.
func New(host Host, opts ...Option) *Renderer {
	r := &Renderer{
		host: host,
		cfg:  config.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if r.log == nil {
		r.log = slog.New(slog.DiscardHandler)
	}
	return r
}

// Initialize acquires a surface, populates the field and starts the frame
// loop. It does nothing if the renderer is already running. On failure the
// renderer is left exactly as it was.
func (r *Renderer) Initialize(o config.Override) error {
	if r.running {
		return nil
	}

	cfg := r.cfg.Apply(o)
	if err := cfg.Validate(); err != nil {
		return err
	}

	w, h := r.host.Viewport()
	surface, err := r.host.AcquireSurface(w, h, cfg.ZIndex)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	if surface == nil {
		return ErrSurfaceUnavailable
	}

	r.cfg = cfg
	r.surface = surface
	r.surfaceZ = cfg.ZIndex
	r.pointerX, r.pointerY = 0, 0
	r.populate()

	r.unsubMove = r.host.OnPointerMove(r.onPointerMove)
	r.unsubSize = r.host.OnResize(r.onResize)
	r.running = true
	r.frame = r.host.RequestFrame(r.render)

	r.log.Info("particle field started",
		"width", w, "height", h, "particles", len(r.particles))
	return nil
}

// UpdateConfiguration merges o into the active configuration. A change of
// ParticleCount regenerates the particle set at once; every other field
// takes effect on the next frame. When the renderer is stopped the merged
// values are picked up by the next Initialize.
func (r *Renderer) UpdateConfiguration(o config.Override) error {
	next := r.cfg.Apply(o)
	if err := next.Validate(); err != nil {
		return err
	}

	recount := next.ParticleCount != r.cfg.ParticleCount
	r.cfg = next

	if r.running && recount {
		r.populate()
		r.log.Debug("particle field regenerated", "particles", len(r.particles))
	}
	return nil
}

// Teardown stops the frame loop, removes the surface and drops all
// listeners. It is safe to call when stopped and from inside a frame.
func (r *Renderer) Teardown() {
	if !r.running {
		return
	}

	r.host.CancelFrame(r.frame)
	if r.unsubMove != nil {
		r.unsubMove()
	}
	if r.unsubSize != nil {
		r.unsubSize()
	}
	r.surface.Remove()

	r.running = false
	r.surface = nil
	r.frame = 0
	r.unsubMove = nil
	r.unsubSize = nil
	r.particles = nil
	r.pointerX, r.pointerY = 0, 0
	r.cfg = config.Default()

	r.log.Info("particle field stopped")
}

// Status reports whether the renderer runs, its configuration and the
// current number of particles.
func (r *Renderer) Status() Status {
	return Status{
		Running:       r.running,
		Config:        r.cfg,
		ParticleCount: len(r.particles),
	}
}

func (r *Renderer) populate() {
	w, h := r.surface.Size()
	r.particles = make([]Particle, r.cfg.ParticleCount)
	for i := range r.particles {
		r.particles[i] = newParticle(r.rng, w, h, r.cfg.ParticleSpeed)
	}
}

func (r *Renderer) onPointerMove(x, y float64) {
	r.pointerX, r.pointerY = x, y
}

func (r *Renderer) onResize(width, height int) {
	if r.surface == nil {
		return
	}
	r.surface.Resize(width, height)
	r.log.Debug("particle field resized", "width", width, "height", height)
}

// render draws one frame and schedules the next.
func (r *Renderer) render() {
	if !r.running {
		return
	}

	if r.cfg.ZIndex != r.surfaceZ {
		r.surface.SetZIndex(r.cfg.ZIndex)
		r.surfaceZ = r.cfg.ZIndex
	}
	r.draw()

	// Teardown may have run while the frame was drawing.
	if r.running {
		r.frame = r.host.RequestFrame(r.render)
	}
}

func (r *Renderer) draw() {
	cfg := r.cfg
	s := r.surface
	w, h := s.Size()

	s.Clear()

	fill := Fill{Color: cfg.Color, Alpha: cfg.Opacity}
	for i := range r.particles {
		p := &r.particles[i]
		p.step(w, h)
		s.FillCircle(p.X, p.Y, p.Radius, fill)
	}

	for i := range r.particles {
		a := &r.particles[i]
		for j := i + 1; j < len(r.particles); j++ {
			b := &r.particles[j]
			d := distance(a.X, a.Y, b.X, b.Y)
			if !(d < cfg.LineDistance) {
				continue
			}
			s.StrokeLine(a.X, a.Y, b.X, b.Y, Stroke{
				Color: cfg.Color,
				Alpha: fadeAlpha(cfg.Opacity, d, cfg.LineDistance),
				Width: cfg.LineWidth,
			})
		}
	}

	reach := cfg.LineDistance * pointerReach
	for i := range r.particles {
		p := &r.particles[i]
		d := distance(p.X, p.Y, r.pointerX, r.pointerY)
		if !(d < reach) {
			continue
		}
		s.StrokeLine(p.X, p.Y, r.pointerX, r.pointerY, Stroke{
			Color: cfg.Color,
			Alpha: fadeAlpha(cfg.Opacity, d, reach),
			Width: cfg.LineWidth,
		})
	}
}
