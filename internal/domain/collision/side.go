// Package collision implements the geometric tests behind the collision detector:
// box-vs-box with penetration tie-breaking and a slab-method ray-vs-box test.
//
// Coordinates are y-up world units. Boxes are given by their center and full
// extent (width, height), never by their corners.
package collision

import "github.com/jakecoffman/cp"

// Side is the face of the tested box that was hit, seen from the prober.
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
	// SideInside reports two boxes that overlap without either axis
	// producing an entry side (one box contains the other).
	SideInside
)

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case SideNone:
		return "None"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	case SideInside:
		return "Inside"
	default:
		return "Unknown"
	}
}

// Box returns the bounding box of a rectangle centered at center with the given full extent.
func Box(center, extent cp.Vector) cp.BB {
	return cp.NewBBForExtents(center, extent.X/2, extent.Y/2)
}
