// Package pane holds the divider state of a two-pane split. It knows nothing
// about any toolkit: hosts feed it sizes and pointer positions.
package pane

type Axis int

const (
	// Vertical divider: panes sit side by side.
	Vertical Axis = iota
	// Horizontal divider: panes are stacked.
	Horizontal
)

// Split is the state of a split pane. The first pane spans [0, Position) and
// the divider occupies Thickness units after it.
type Split struct {
	axis      Axis
	position  int
	total     int
	minPane   int
	thickness int

	dragging   bool
	dragOffset int
}

// New returns a split with the divider at position. A zero or negative
// position places the divider in the middle once the total size is known.
func New(position int, axis Axis) *Split {
	return &Split{axis: axis, position: position, minPane: 8, thickness: 1}
}

func (s *Split) Axis() Axis { return s.axis }
func (s *Split) Position() int { return s.position }
func (s *Split) Total() int { return s.total }
func (s *Split) Thickness() int { return s.thickness }
func (s *Split) Dragging() bool { return s.dragging }
func (s *Split) SetMinPane(n int) { s.minPane = max(0, n) }

func (s *Split) SetThickness(n int) {
	s.thickness = max(1, n)
	s.clamp()
}

// Resize records the size of the split along its axis and re-clamps the divider.
func (s *Split) Resize(total int) {
	s.total = max(0, total)
	if s.position <= 0 {
		s.position = (s.total - s.thickness) / 2
	}
	s.clamp()
}

// SetDividerPosition moves the divider, keeping both panes at least minPane wide.
func (s *Split) SetDividerPosition(p int) {
	s.position = p
	s.clamp()
}

// Sizes returns the extent of the first and second pane.
func (s *Split) Sizes() (first, second int) {
	first = s.position
	second = max(0, s.total-s.position-s.thickness)
	return first, second
}

// OnDivider reports whether a pointer coordinate along the axis hits the divider.
func (s *Split) OnDivider(p int) bool {
	return p >= s.position && p < s.position+s.thickness
}

// BeginDrag starts a drag when p is on the divider.
func (s *Split) BeginDrag(p int) bool {
	if !s.OnDivider(p) {
		return false
	}
	s.dragging = true
	s.dragOffset = p - s.position
	return true
}

// DragTo returns the divider position a drag to p asks for. It does not move
// the divider; hosts apply it with SetDividerPosition when they handle the
// resulting resize message.
func (s *Split) DragTo(p int) (int, bool) {
	if !s.dragging {
		return s.position, false
	}
	want := s.clampValue(p - s.dragOffset)
	return want, want != s.position
}

func (s *Split) EndDrag() {
	s.dragging = false
	s.dragOffset = 0
}

func (s *Split) clamp() {
	s.position = s.clampValue(s.position)
}

func (s *Split) clampValue(p int) int {
	if s.total <= 0 {
		return max(0, p)
	}
	hi := s.total - s.thickness - s.minPane
	lo := s.minPane
	if hi < lo {
		// not enough room for both minimums: split evenly
		return max(0, (s.total-s.thickness)/2)
	}
	return min(max(p, lo), hi)
}
