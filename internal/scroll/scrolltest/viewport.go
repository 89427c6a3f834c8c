// Package scrolltest provides a simulated viewport for exercising scroll.Scroller.
package scrolltest

import (
	"sync"

	"github.com/dennoAiden/swiper-venture/internal/scroll"
)

// Request is one recorded ScrollIntoView command.
type Request struct {
	ID       string
	Behavior scroll.Behavior
}

// Viewport simulates a browser window over a page whose sections sit at fixed
// vertical offsets. Smooth requests leave the scroll pending until Settle;
// a new request replaces the pending destination.
type Viewport struct {
	mu       sync.Mutex
	height   int
	offsets  map[string]int
	pos      int
	pending  *int
	requests []Request
}

// NewViewport creates a viewport of the given height at scroll offset zero.
func NewViewport(height int, offsets map[string]int) *Viewport {
	o := make(map[string]int, len(offsets))
	for id, top := range offsets {
		o[id] = top
	}
	return &Viewport{height: height, offsets: o}
}

func (v *Viewport) ScrollIntoView(el scroll.Element, behavior scroll.Behavior) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.requests = append(v.requests, Request{ID: el.ID(), Behavior: behavior})

	top, ok := v.offsets[el.ID()]
	if !ok {
		return
	}
	if behavior == scroll.BehaviorSmooth {
		v.pending = &top
		return
	}
	v.pos = top
	v.pending = nil
}

// Settle finishes the in-flight animation, if any.
func (v *Viewport) Settle() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.pending != nil {
		v.pos = *v.pending
		v.pending = nil
	}
}

// Position is the current scroll offset.
func (v *Viewport) Position() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pos
}

// Pending reports the destination of an unfinished smooth scroll.
func (v *Viewport) Pending() (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.pending == nil {
		return 0, false
	}
	return *v.pending, true
}

// InView reports whether the top of section id lies inside the viewport.
func (v *Viewport) InView(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	top, ok := v.offsets[id]
	if !ok {
		return false
	}
	return top >= v.pos && top < v.pos+v.height
}

// Requests returns a copy of every command received so far.
func (v *Viewport) Requests() []Request {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]Request, len(v.requests))
	copy(out, v.requests)
	return out
}
