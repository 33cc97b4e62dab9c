// Package display keeps the on-screen list of painted primitives.
package display

import (
	"sort"

	"DigitalWhiteboard/internal/state"
)

// Layer is the ordered set of primitives shown on the board, indexed by
// their ID. It is rebuilt from scratch on Reset and never persisted.
type Layer struct {
	primitives []state.Primitive
	index      map[string]int
	generation uint64
}

func New() *Layer {
	return &Layer{index: make(map[string]int)}
}

// Paint appends p. A primitive that is already present is ignored.
func (l *Layer) Paint(p state.Primitive) {
	if _, exists := l.index[p.ID]; exists {
		return
	}
	l.index[p.ID] = len(l.primitives)
	l.primitives = append(l.primitives, p)
}

func (l *Layer) Reset() {
	l.primitives = nil
	l.index = make(map[string]int)
	l.generation++
}

// Generation changes every time the layer is reset.
func (l *Layer) Generation() uint64 { return l.generation }

func (l *Layer) Len() int { return len(l.primitives) }

// Primitives returns a copy in paint order.
func (l *Layer) Primitives() []state.Primitive {
	out := make([]state.Primitive, len(l.primitives))
	copy(out, l.primitives)
	return out
}

func (l *Layer) Get(id string) (state.Primitive, bool) {
	i, ok := l.index[id]
	if !ok {
		return state.Primitive{}, false
	}
	return l.primitives[i], true
}

// Kind returns the primitives of one kind in paint order.
func (l *Layer) Kind(k state.PrimitiveKind) []state.Primitive {
	var out []state.Primitive
	for _, p := range l.primitives {
		if p.Kind == k {
			out = append(out, p)
		}
	}
	return out
}

// Since returns every primitive painted after seq, ordered by sequence.
// Renderers use it to append new canvas objects without a full rebuild.
func (l *Layer) Since(seq uint64) []state.Primitive {
	i := sort.Search(len(l.primitives), func(i int) bool {
		return l.primitives[i].Seq > seq
	})
	out := make([]state.Primitive, len(l.primitives)-i)
	copy(out, l.primitives[i:])
	return out
}

// LastSeq is the sequence number of the newest primitive, or 0.
func (l *Layer) LastSeq() uint64 {
	if len(l.primitives) == 0 {
		return 0
	}
	return l.primitives[len(l.primitives)-1].Seq
}
