package orbit

import (
	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/input"
)

// PointerState tracks active pointers in the order they went down, with the
// last page position seen for each.
type PointerState struct {
	ids       []int
	positions map[int]common.Vec2
}

// NewPointerState returns an empty PointerState.
func NewPointerState() *PointerState {
	return &PointerState{positions: make(map[int]common.Vec2)}
}

// AddPointer appends the pointer of e. A pointer already tracked is ignored.
func (p *PointerState) AddPointer(e *input.PointerEvent) {
	for _, id := range p.ids {
		if id == e.PointerID {
			return
		}
	}
	p.ids = append(p.ids, e.PointerID)
	p.positions[e.PointerID] = common.V2(e.PageX, e.PageY)
}

// RemovePointer forgets the pointer with the given id.
func (p *PointerState) RemovePointer(id int) {
	delete(p.positions, id)
	for i, existing := range p.ids {
		if existing == id {
			p.ids = append(p.ids[:i], p.ids[i+1:]...)
			return
		}
	}
}

// TrackPointer records the page position of e.
func (p *PointerState) TrackPointer(e *input.PointerEvent) {
	p.positions[e.PointerID] = common.V2(e.PageX, e.PageY)
}

// Len returns the number of active pointers.
func (p *PointerState) Len() int { return len(p.ids) }

// Position returns the last position of the i-th pointer in down order.
func (p *PointerState) Position(i int) common.Vec2 {
	return p.positions[p.ids[i]]
}

// SecondPointerPosition returns the position of the tracked pointer that is
// not the one in e. It reports false unless at least two pointers are tracked.
func (p *PointerState) SecondPointerPosition(e *input.PointerEvent) (common.Vec2, bool) {
	if len(p.ids) < 2 {
		return common.Vec2{}, false
	}
	other := p.ids[0]
	if e.PointerID == p.ids[0] {
		other = p.ids[1]
	}
	pos, ok := p.positions[other]
	return pos, ok
}

// Centroid returns the midpoint of the first two pointers.
func (p *PointerState) Centroid() common.Vec2 {
	a, b := p.Position(0), p.Position(1)
	return a.Add(b).Mul(0.5)
}

// Reset forgets every pointer.
func (p *PointerState) Reset() {
	p.ids = p.ids[:0]
	clear(p.positions)
}
