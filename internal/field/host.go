package field

import (
	"errors"

	"github.com/iburimskiy/particle-field/internal/config"
)

// ErrSurfaceUnavailable is returned by Initialize when the host cannot
// provide a drawing surface.
var ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

// FrameID identifies a pending frame request.
type FrameID uint64

// Fill is the paint for a filled shape.
type Fill struct {
	Color config.RGB
	Alpha float64
}

// Stroke is the paint for a stroked line.
type Stroke struct {
	Color config.RGB
	Alpha float64
	Width float64
}

// Surface is a drawing area overlaying the page. It never receives input.
type Surface interface {
	Size() (width, height int)
	Resize(width, height int)
	SetZIndex(z int)
	Clear()
	FillCircle(x, y, radius float64, paint Fill)
	StrokeLine(x1, y1, x2, y2 float64, paint Stroke)
	// Remove detaches the surface from the host. The surface must not be
	// used afterwards.
	Remove()
}

// Host is the environment a Renderer runs in.
type Host interface {
	Viewport() (width, height int)
	AcquireSurface(width, height, zIndex int) (Surface, error)

	// OnPointerMove and OnResize register listeners and return a function
	// that removes them.
	OnPointerMove(fn func(x, y float64)) (unsubscribe func())
	OnResize(fn func(width, height int)) (unsubscribe func())

	// RequestFrame schedules fn to run once on the next display refresh.
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}
