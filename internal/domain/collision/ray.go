package collision

import (
	"math"

	"github.com/jakecoffman/cp"
)

// slab is one parametric crossing of a box face along the ray.
type slab struct {
	t    float64
	side Side
}

// CollideRayBox tests the segment starting at origin and spanning ray against
// the box centered at center with full extent. ray encodes both direction and
// length and must not be the zero vector.
//
// It reports the entry face when the segment enters the box from outside and
// the exit face when the origin lies inside the box and the segment leaves it.
// A segment that misses, ends before the box, starts past it, or lies
// entirely inside it reports no collision.
//
// Corner hits are not disambiguated: the side follows the comparison order
// below and may be either of the two faces meeting at the corner.
func CollideRayBox(origin, ray, center, extent cp.Vector) (Side, bool) {
	length := ray.Length()
	dir := ray.Mult(1 / length)
	inv := cp.Vector{X: 1 / dir.X, Y: 1 / dir.Y}

	box := Box(center, extent)
	left := slab{(box.L - origin.X) * inv.X, SideLeft}
	right := slab{(box.R - origin.X) * inv.X, SideRight}
	top := slab{(box.T - origin.Y) * inv.Y, SideTop}
	bottom := slab{(box.B - origin.Y) * inv.Y, SideBottom}

	tmin := later(earlier(left, right), earlier(top, bottom))
	tmax := earlier(later(left, right), later(top, bottom))

	switch {
	case tmax.t < tmin.t:
		return SideNone, false
	case tmin.t < 0 && tmax.t < 0:
		return SideNone, false
	case tmin.t < 0 && tmax.t > length:
		return SideNone, false
	case tmin.t >= 0 && tmin.t >= length:
		return SideNone, false
	case tmin.t >= 0:
		return tmin.side, true
	default:
		return tmax.side, true
	}
}

// earlier returns the crossing with the smaller t, ignoring NaN (origin on a
// face plane parallel to the ray). Ties keep a.
func earlier(a, b slab) slab {
	if math.IsNaN(a.t) || b.t < a.t {
		return b
	}
	return a
}

// later returns the crossing with the larger t, ignoring NaN. Ties keep a.
func later(a, b slab) slab {
	if math.IsNaN(a.t) || b.t > a.t {
		return b
	}
	return a
}
