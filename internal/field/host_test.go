package field

import (
	"errors"
)

type line struct {
	x1, y1, x2, y2 float64
	paint          Stroke
}

type fakeSurface struct {
	host          *fakeHost
	width, height int
	z             int
	clears        int
	circles       []Fill
	lines         []line
	removed       bool
}

func (s *fakeSurface) Size() (int, int) { return s.width, s.height }
func (s *fakeSurface) Resize(w, h int)  { s.width, s.height = w, h }
func (s *fakeSurface) SetZIndex(z int)  { s.z = z }

func (s *fakeSurface) FillCircle(_, _, _ float64, p Fill) {
	s.circles = append(s.circles, p)
}

func (s *fakeSurface) Clear() {
	s.clears++
	s.circles = nil
	s.lines = nil
}

func (s *fakeSurface) StrokeLine(x1, y1, x2, y2 float64, p Stroke) {
	s.lines = append(s.lines, line{x1, y1, x2, y2, p})
}

func (s *fakeSurface) Remove() {
	s.removed = true
	s.host.surfaces--
}

// fakeHost drives frames by hand through tick.
type fakeHost struct {
	width, height int
	acquireErr    error

	surfaces int
	last     *fakeSurface

	moves   map[int]func(x, y float64)
	resizes map[int]func(w, h int)
	nextSub int

	frames    map[FrameID]func()
	nextFrame FrameID
}

func newFakeHost(w, h int) *fakeHost {
	return &fakeHost{
		width:   w,
		height:  h,
		moves:   map[int]func(x, y float64){},
		resizes: map[int]func(w, h int){},
		frames:  map[FrameID]func(){},
	}
}

func (h *fakeHost) Viewport() (int, int) { return h.width, h.height }

func (h *fakeHost) AcquireSurface(w, ht, z int) (Surface, error) {
	if h.acquireErr != nil {
		return nil, h.acquireErr
	}
	h.surfaces++
	h.last = &fakeSurface{host: h, width: w, height: ht, z: z}
	return h.last, nil
}

func (h *fakeHost) OnPointerMove(fn func(x, y float64)) func() {
	id := h.nextSub
	h.nextSub++
	h.moves[id] = fn
	return func() { delete(h.moves, id) }
}

func (h *fakeHost) OnResize(fn func(w, h int)) func() {
	id := h.nextSub
	h.nextSub++
	h.resizes[id] = fn
	return func() { delete(h.resizes, id) }
}

func (h *fakeHost) RequestFrame(fn func()) FrameID {
	h.nextFrame++
	h.frames[h.nextFrame] = fn
	return h.nextFrame
}

func (h *fakeHost) CancelFrame(id FrameID) { delete(h.frames, id) }

// tick runs every frame that was pending when it was called.
func (h *fakeHost) tick() {
	due := h.frames
	h.frames = map[FrameID]func(){}
	for _, fn := range due {
		fn()
	}
}

func (h *fakeHost) move(x, y float64) {
	for _, fn := range h.moves {
		fn(x, y)
	}
}

func (h *fakeHost) resize(w, ht int) {
	h.width, h.height = w, ht
	for _, fn := range h.resizes {
		fn(w, ht)
	}
}

var errNoContext = errors.New("no 2d context")
