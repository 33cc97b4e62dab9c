package display

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DigitalWhiteboard/internal/state"
)

var black = color.RGBA{A: 255}

func TestPaintKeepsOrder(t *testing.T) {
	l := New()
	a := state.NewLine(state.Pt(0, 0), state.Pt(10, 0), 2, black)
	b := state.NewEllipse(state.Pt(5, 5), 3, 3, black)
	c := state.NewRect(state.Pt(5, 5), 6, 3, black)
	l.Paint(a)
	l.Paint(b)
	l.Paint(c)

	require.Equal(t, 3, l.Len())
	got := l.Primitives()
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, []state.Primitive{a}, l.Kind(state.KindLine))
	assert.Equal(t, c.Seq, l.LastSeq())

	p, ok := l.Get(b.ID)
	require.True(t, ok)
	assert.Equal(t, b, p)
}

func TestPaintIgnoresDuplicates(t *testing.T) {
	l := New()
	a := state.NewLine(state.Pt(0, 0), state.Pt(10, 0), 2, black)
	l.Paint(a)
	l.Paint(a)
	assert.Equal(t, 1, l.Len())
}

func TestSince(t *testing.T) {
	l := New()
	a := state.NewLine(state.Pt(0, 0), state.Pt(10, 0), 2, black)
	b := state.NewLine(state.Pt(10, 0), state.Pt(20, 0), 2, black)
	l.Paint(a)
	l.Paint(b)

	assert.Len(t, l.Since(0), 2)
	assert.Equal(t, []state.Primitive{b}, l.Since(a.Seq))
	assert.Empty(t, l.Since(b.Seq))
}

func TestReset(t *testing.T) {
	l := New()
	a := state.NewLine(state.Pt(0, 0), state.Pt(10, 0), 2, black)
	l.Paint(a)
	gen := l.Generation()
	l.Reset()

	assert.Equal(t, gen+1, l.Generation())
	assert.Zero(t, l.Len())
	assert.Zero(t, l.LastSeq())
	_, ok := l.Get(a.ID)
	assert.False(t, ok)

	// the same primitive can be painted again after a reset
	l.Paint(a)
	assert.Equal(t, 1, l.Len())
}

func TestPrimitivesIsACopy(t *testing.T) {
	l := New()
	l.Paint(state.NewLine(state.Pt(0, 0), state.Pt(10, 0), 2, black))
	got := l.Primitives()
	got[0].Width = 99
	p := l.Primitives()[0]
	assert.Equal(t, float32(2), p.Width)
}
