package board

// Axis is the direction a placement is laid along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Complement returns the perpendicular axis.
func (a Axis) Complement() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Deltas returns the per-step (row, column) increments for walking along
// the axis.
func (a Axis) Deltas() (dr, dc int) {
	if a == Horizontal {
		return 0, 1
	}
	return 1, 0
}

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}
