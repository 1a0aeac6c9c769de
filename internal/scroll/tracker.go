// Package scroll derives the centered card from a scroll position and the emphasis
// values used to fade and scale neighbouring cards.
package scroll

import (
	"math"
	"sync"
)

// FadeThreshold is the distance from the viewport center at which a card is fully
// faded.
const FadeThreshold = 200.0

// Span is a child's extent along the scroll axis, in container coordinates.
type Span struct {
	Start float64
	Size  float64
}

func (s Span) Center() float64 {
	return s.Start + s.Size/2
}

// Layout is a snapshot of the scrolling container.
type Layout struct {
	Offset   float64
	Viewport float64
	Children []Span
	// LeadingSpacer marks Children[0] as a spacer that never becomes current.
	LeadingSpacer bool
}

// State describes the centered card. Index does not count the leading spacer.
type State struct {
	Index    int
	Distance float64
}

// Tracker remembers the current card between scroll events.
type Tracker struct {
	mu      sync.Mutex
	current int
	valid   bool
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Current returns the last centered index, or -1 before the first update.
func (t *Tracker) Current() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.valid {
		return -1
	}
	return t.current
}

// Update recomputes the centered card. changed is false when the layout cannot be
// measured or the centered card stays the same.
func (t *Tracker) Update(l Layout) (State, bool) {
	state, ok := Locate(l)
	if !ok {
		return State{Index: t.Current()}, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	changed := !t.valid || t.current != state.Index
	t.current, t.valid = state.Index, true
	return state, changed
}

// Locate finds the child whose center is closest to the viewport center.
func Locate(l Layout) (State, bool) {
	if l.Viewport <= 0 {
		return State{}, false
	}

	first := 0
	if l.LeadingSpacer {
		first = 1
	}
	if len(l.Children) <= first {
		return State{}, false
	}

	center := l.Offset + l.Viewport/2
	best, bestDist := -1, math.Inf(1)
	for i := first; i < len(l.Children); i++ {
		d := math.Abs(l.Children[i].Center() - center)
		if d < bestDist {
			best, bestDist = i, d
		}
	}

	return State{Index: best - first, Distance: bestDist}, true
}

// Emphasis is 1 at the center and falls off with the square of the distance,
// reaching 0 at FadeThreshold.
func Emphasis(distance float64) float64 {
	ratio := math.Abs(distance) / FadeThreshold
	return clamp(1-ratio*ratio, 0, 1)
}

// Opacity maps emphasis onto [minOpacity, 1].
func Opacity(distance, minOpacity float64) float64 {
	minOpacity = clamp(minOpacity, 0, 1)
	return minOpacity + (1-minOpacity)*Emphasis(distance)
}

// Scale maps emphasis onto [minScale, 1].
func Scale(distance, minScale float64) float64 {
	minScale = clamp(minScale, 0, 1)
	return minScale + (1-minScale)*Emphasis(distance)
}

// NeedsNextPage reports whether the current card is within threshold cards of the
// end of what has been loaded.
func NeedsNextPage(current, loaded, threshold int) bool {
	if current < 0 || loaded == 0 {
		return false
	}
	return loaded-1-current <= threshold
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
