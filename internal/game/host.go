package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-field/internal/field"
)

var errHostClosed = errors.New("host closed")

// Host runs field renderers inside an ebiten game loop. Every method is
// called from the ebiten update/draw goroutine.
type Host struct {
	width, height int

	cursorX, cursorY int
	cursorSeen       bool

	moves   listeners[func(x, y float64)]
	resizes listeners[func(w, h int)]

	frames    map[field.FrameID]func()
	due       map[field.FrameID]func()
	nextFrame field.FrameID

	layers  []*layer
	nextSeq int
	closed  bool
}

// NewHost returns a host with the given initial viewport.
func NewHost(width, height int) *Host {
	return &Host{
		width:  width,
		height: height,
		frames: map[field.FrameID]func(){},
	}
}

func (h *Host) Viewport() (int, int) { return h.width, h.height }

func (h *Host) AcquireSurface(width, height, zIndex int) (field.Surface, error) {
	if h.closed {
		return nil, fmt.Errorf("acquire %dx%d layer: %w", width, height, errHostClosed)
	}
	l := &layer{
		host:   h,
		seq:    h.nextSeq,
		z:      zIndex,
		width:  width,
		height: height,
	}
	h.nextSeq++
	h.layers = append(h.layers, l)
	h.sortLayers()
	return l, nil
}

func (h *Host) OnPointerMove(fn func(x, y float64)) func() { return h.moves.add(fn) }

func (h *Host) OnResize(fn func(w, h int)) func() { return h.resizes.add(fn) }

func (h *Host) RequestFrame(fn func()) field.FrameID {
	h.nextFrame++
	h.frames[h.nextFrame] = fn
	return h.nextFrame
}

// CancelFrame drops a pending frame, including one due later in the refresh
// that is currently running.
func (h *Host) CancelFrame(id field.FrameID) {
	delete(h.frames, id)
	delete(h.due, id)
}

// Close removes every layer and refuses further surfaces.
func (h *Host) Close() {
	for _, l := range h.layers {
		l.release()
	}
	h.layers = nil
	h.frames = map[field.FrameID]func(){}
	h.closed = true
}

// pointerAt reports the cursor position, notifying listeners when it moved.
func (h *Host) pointerAt(x, y int) {
	if h.cursorSeen && x == h.cursorX && y == h.cursorY {
		return
	}
	h.cursorX, h.cursorY, h.cursorSeen = x, y, true
	h.moves.each(func(fn func(x, y float64)) { fn(float64(x), float64(y)) })
}

// setViewport records the window size, notifying listeners when it changed.
func (h *Host) setViewport(width, height int) {
	if width == h.width && height == h.height {
		return
	}
	h.width, h.height = width, height
	h.resizes.each(func(fn func(w, h int)) { fn(width, height) })
}

// runFrames runs the callbacks that were due at the start of this refresh.
// Frames requested while they run wait for the next one.
func (h *Host) runFrames() {
	if len(h.frames) == 0 {
		return
	}
	h.due = h.frames
	h.frames = map[field.FrameID]func(){}
	defer func() { h.due = nil }()

	ids := make([]field.FrameID, 0, len(h.due))
	for id := range h.due {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		fn, ok := h.due[id]
		if !ok {
			continue
		}
		delete(h.due, id)
		fn()
	}
}

// composite draws every layer onto screen, lowest z first.
func (h *Host) composite(screen *ebiten.Image) {
	for _, l := range h.layers {
		if l.img != nil {
			screen.DrawImage(l.img, &ebiten.DrawImageOptions{})
		}
	}
}

func (h *Host) sortLayers() {
	slices.SortStableFunc(h.layers, func(a, b *layer) int {
		if a.z != b.z {
			return a.z - b.z
		}
		return a.seq - b.seq
	})
}

func (h *Host) detach(l *layer) {
	h.layers = slices.DeleteFunc(h.layers, func(x *layer) bool { return x == l })
}
