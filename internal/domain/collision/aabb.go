package collision

import (
	"math"

	"github.com/jakecoffman/cp"
)

// CollideBoxes tests box A (aPos, aSize) against box B (bPos, bSize).
// It returns the side of B that A hit and true, or SideNone and false when
// the boxes do not overlap. Touching edges do not count as overlap.
//
// When both axes classify a side, the one with the shallower penetration
// wins; ties go to the x axis.
func CollideBoxes(aPos, aSize, bPos, bSize cp.Vector) (Side, bool) {
	a := Box(aPos, aSize)
	b := Box(bPos, bSize)

	if !overlaps(a, b) {
		return SideNone, false
	}

	x, xDepth := classifyX(a, b)
	y, yDepth := classifyY(a, b)

	switch {
	case x != SideNone && y != SideNone:
		if math.Abs(yDepth) < math.Abs(xDepth) {
			return y, true
		}
		return x, true
	case x != SideNone:
		return x, true
	case y != SideNone:
		return y, true
	}
	return SideInside, true
}

func overlaps(a, b cp.BB) bool {
	return a.L < b.R && a.R > b.L && a.B < b.T && a.T > b.B
}

// classifyX reports which vertical face of b the box a crossed, with its signed depth.
func classifyX(a, b cp.BB) (Side, float64) {
	switch {
	case a.L < b.L && a.R > b.L && a.R < b.R:
		return SideLeft, b.L - a.R
	case a.L > b.L && a.L < b.R && a.R > b.R:
		return SideRight, a.L - b.R
	}
	return SideNone, 0
}

// classifyY reports which horizontal face of b the box a crossed, with its signed depth.
func classifyY(a, b cp.BB) (Side, float64) {
	switch {
	case a.B < b.B && a.T > b.B && a.T < b.T:
		return SideBottom, b.B - a.T
	case a.B > b.B && a.B < b.T && a.T > b.T:
		return SideTop, a.B - b.T
	}
	return SideNone, 0
}
