package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cards(n int, size float64) []Span {
	out := make([]Span, n)
	for i := range out {
		out[i] = Span{Start: float64(i) * size, Size: size}
	}
	return out
}

func TestLocateVertical(t *testing.T) {
	l := Layout{Offset: 0, Viewport: 600, Children: cards(10, 400)}

	state, ok := Locate(l)
	assert.True(t, ok)
	assert.Equal(t, 0, state.Index)

	l.Offset = 500
	state, ok = Locate(l)
	assert.True(t, ok)
	assert.Equal(t, 1, state.Index)
	assert.InDelta(t, 200, state.Distance, 1e-9)
}

func TestLocateSkipsLeadingSpacer(t *testing.T) {
	children := append([]Span{{Start: 0, Size: 300}}, cards(3, 300)...)
	for i := 1; i < len(children); i++ {
		children[i].Start += 300
	}
	l := Layout{Offset: 0, Viewport: 300, Children: children, LeadingSpacer: true}

	state, ok := Locate(l)

	assert.True(t, ok)
	assert.Equal(t, 0, state.Index, "first real card even though the spacer is centered")
}

func TestLocateUnmeasurable(t *testing.T) {
	_, ok := Locate(Layout{Viewport: 0, Children: cards(2, 100)})
	assert.False(t, ok)

	_, ok = Locate(Layout{Viewport: 500})
	assert.False(t, ok)

	_, ok = Locate(Layout{Viewport: 500, Children: cards(1, 100), LeadingSpacer: true})
	assert.False(t, ok)
}

func TestTrackerUpdate(t *testing.T) {
	tr := NewTracker()
	assert.Equal(t, -1, tr.Current())

	l := Layout{Viewport: 400, Children: cards(5, 400)}
	_, changed := tr.Update(l)
	assert.True(t, changed)

	l.Offset = 50
	_, changed = tr.Update(l)
	assert.False(t, changed)

	l.Offset = 800
	state, changed := tr.Update(l)
	assert.True(t, changed)
	assert.Equal(t, 2, state.Index)

	state, changed = tr.Update(Layout{})
	assert.False(t, changed)
	assert.Equal(t, 2, state.Index)
	assert.Equal(t, 2, tr.Current())
}

func TestEmphasis(t *testing.T) {
	assert.Equal(t, 1.0, Emphasis(0))
	assert.InDelta(t, 0.75, Emphasis(100), 1e-9)
	assert.InDelta(t, 0.75, Emphasis(-100), 1e-9)
	assert.Equal(t, 0.0, Emphasis(200))
	assert.Equal(t, 0.0, Emphasis(1000))

	assert.InDelta(t, 0.4+0.6*0.75, Opacity(100, 0.4), 1e-9)
	assert.Equal(t, 0.9, Scale(500, 0.9))
	assert.Equal(t, 1.0, Scale(0, 0.9))
}

func TestNeedsNextPage(t *testing.T) {
	assert.False(t, NeedsNextPage(-1, 20, 3))
	assert.False(t, NeedsNextPage(0, 0, 3))
	assert.False(t, NeedsNextPage(10, 20, 3))
	assert.True(t, NeedsNextPage(16, 20, 3))
	assert.True(t, NeedsNextPage(19, 20, 3))
}
