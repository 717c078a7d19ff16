package chart

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrDisposed is returned when a handle is used after disposal.
	ErrDisposed = errors.New("chart: handle disposed")
	// ErrNoChart is returned when a slot or the enlarged view is empty.
	ErrNoChart = errors.New("chart: no chart available")
)

// Handle is a live chart: a spec plus whatever has been rendered from it.
// A handle must be disposed before it is replaced.
type Handle struct {
	mu       sync.Mutex
	spec     Spec
	size     Size
	rendered map[Format][]byte
	disposed bool
}

func newHandle(spec Spec, size Size) *Handle {
	return &Handle{
		spec:     spec,
		size:     size,
		rendered: make(map[Format][]byte),
	}
}

// Spec returns the chart description.
func (h *Handle) Spec() Spec {
	return h.spec
}

// Size returns the canvas size the handle renders at.
func (h *Handle) Size() Size {
	return h.size
}

// Render returns the chart image, drawing it on first use.
func (h *Handle) Render(format Format) ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.disposed {
		return nil, ErrDisposed
	}
	if img, ok := h.rendered[format]; ok {
		return img, nil
	}

	var buf bytes.Buffer
	if err := Render(h.spec, h.size, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s chart: %w", h.spec.Slot, err)
	}
	h.rendered[format] = buf.Bytes()
	return h.rendered[format], nil
}

// Dispose releases rendered images. It is safe to call more than once.
func (h *Handle) Dispose() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.disposed = true
	h.rendered = nil
}

// Disposed reports whether Dispose has been called.
func (h *Handle) Disposed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.disposed
}

// Board holds at most one handle per slot plus an optional enlarged view of
// one slot.
type Board struct {
	mu       sync.Mutex
	slots    map[Slot]*Handle
	enlarged *Handle
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{slots: make(map[Slot]*Handle)}
}

// Replace installs a handle for spec.Slot, disposing the one it replaces.
func (b *Board) Replace(spec Spec) *Handle {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.replace(spec)
}

// ReplaceAll installs a handle per spec. Every previous handle, including the
// enlarged view, is disposed first.
func (b *Board) ReplaceAll(specs []Spec) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.disposeAll()
	for _, spec := range specs {
		b.replace(spec)
	}
}

func (b *Board) replace(spec Spec) *Handle {
	if old, ok := b.slots[spec.Slot]; ok {
		old.Dispose()
	}
	h := newHandle(spec, DefaultSize)
	b.slots[spec.Slot] = h
	return h
}

// Get returns the handle in slot.
func (b *Board) Get(slot Slot) (*Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	h, ok := b.slots[slot]
	if !ok {
		return nil, ErrNoChart
	}
	return h, nil
}

// Enlarge opens an enlarged view of slot, replacing any open one.
func (b *Board) Enlarge(slot Slot) (*Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	h, ok := b.slots[slot]
	if !ok {
		return nil, ErrNoChart
	}
	if b.enlarged != nil {
		b.enlarged.Dispose()
	}
	b.enlarged = newHandle(h.Spec(), EnlargedSize)
	return b.enlarged, nil
}

// Enlarged returns the open enlarged view.
func (b *Board) Enlarged() (*Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.enlarged == nil {
		return nil, ErrNoChart
	}
	return b.enlarged, nil
}

// CloseEnlarged disposes the enlarged view, if any.
func (b *Board) CloseEnlarged() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.enlarged != nil {
		b.enlarged.Dispose()
		b.enlarged = nil
	}
}

// Dispose tears down every handle on the board.
func (b *Board) Dispose() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.disposeAll()
}

func (b *Board) disposeAll() {
	for slot, h := range b.slots {
		h.Dispose()
		delete(b.slots, slot)
	}
	if b.enlarged != nil {
		b.enlarged.Dispose()
		b.enlarged = nil
	}
}

// Len returns the number of occupied slots.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.slots)
}
