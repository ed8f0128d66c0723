package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-field/internal/field"
)

// layer is an offscreen image composited over the page. Layers only draw;
// input always goes to the page underneath.
type layer struct {
	host          *Host
	seq           int
	z             int
	width, height int
	img           *ebiten.Image
}

func (l *layer) Size() (int, int) { return l.width, l.height }

func (l *layer) Resize(width, height int) {
	if width == l.width && height == l.height {
		return
	}
	l.release()
	l.width, l.height = width, height
}

func (l *layer) SetZIndex(z int) {
	l.z = z
	l.host.sortLayers()
}

func (l *layer) Clear() {
	if l.img != nil {
		l.img.Clear()
	}
}

func (l *layer) FillCircle(x, y, radius float64, paint field.Fill) {
	dst := l.target()
	if dst == nil {
		return
	}
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(radius), paint.Color.NRGBA(paint.Alpha), true)
}

func (l *layer) StrokeLine(x1, y1, x2, y2 float64, paint field.Stroke) {
	dst := l.target()
	if dst == nil {
		return
	}
	vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(paint.Width), paint.Color.NRGBA(paint.Alpha), true)
}

func (l *layer) Remove() {
	l.release()
	l.host.detach(l)
}

// target allocates the backing image on first use. A zero-area layer has
// none and drawing onto it does nothing.
func (l *layer) target() *ebiten.Image {
	if l.img == nil && l.width > 0 && l.height > 0 {
		l.img = ebiten.NewImage(l.width, l.height)
	}
	return l.img
}

func (l *layer) release() {
	if l.img != nil {
		l.img.Deallocate()
		l.img = nil
	}
}
