package system

// Direction is the decoded horizontal movement intent
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Intent is the already-decoded player input for one tick.
// Device polling lives outside the simulation.
type Intent struct {
	JumpPressed  bool // jump went down this tick
	JumpReleased bool // jump went up this tick
	Horizontal   Direction
}

// HorizontalFromKeys resolves held movement keys into a direction.
// Left wins when both are held.
func HorizontalFromKeys(left, right bool) Direction {
	switch {
	case left:
		return DirLeft
	case right:
		return DirRight
	default:
		return DirNone
	}
}
