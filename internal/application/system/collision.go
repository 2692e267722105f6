package system

import (
	"github.com/younwookim/riseai/internal/domain/entity"
)

// ContactSlop is how far two bodies must interpenetrate, in world units,
// before they count as overlapping. Bodies pushed out to exact contact stay
// out of contact despite float rounding.
const ContactSlop = 1e-4

// Overlaps reports whether two active bodies overlap on both axes.
// Centers closer than the sum of half-extents (minus ContactSlop) overlap.
func Overlaps(a, b *entity.Body) bool {
	if !a.Active || !b.Active {
		return false
	}
	dx := absFloat(a.Position.X() - b.Position.X())
	dy := absFloat(a.Position.Y() - b.Position.Y())
	return dx < a.HalfWidth()+b.HalfWidth()-ContactSlop &&
		dy < a.HalfHeight()+b.HalfHeight()-ContactSlop
}

// ResolveY pushes body out of every overlapping platform along Y.
// Candidates are resolved in slice order; each correction is unconditional
// and the last one decides which of the two Y flags is set.
func ResolveY(body *entity.Body, platforms []entity.Platform) {
	for i := range platforms {
		other := &platforms[i].Body
		if other == body || !Overlaps(body, other) {
			continue
		}

		dist := absFloat(body.Position.Y() - other.Position.Y())
		penetration := body.HalfHeight() + other.HalfHeight() - dist

		if body.Position.Y() >= other.Position.Y() {
			// Landed on top
			body.Position[1] += penetration
			body.CollidedBottom = true
			body.CollidedTop = false
		} else {
			// Hit from below
			body.Position[1] -= penetration
			body.CollidedTop = true
			body.CollidedBottom = false
		}
		body.Velocity[1] = 0
	}
}

// ResolveX pushes body out of every overlapping platform along X.
func ResolveX(body *entity.Body, platforms []entity.Platform) {
	for i := range platforms {
		other := &platforms[i].Body
		if other == body || !Overlaps(body, other) {
			continue
		}

		dist := absFloat(body.Position.X() - other.Position.X())
		penetration := body.HalfWidth() + other.HalfWidth() - dist

		if body.Position.X() < other.Position.X() {
			// Wall on the right
			body.Position[0] -= penetration
			body.CollidedRight = true
			body.CollidedLeft = false
		} else {
			body.Position[0] += penetration
			body.CollidedLeft = true
			body.CollidedRight = false
		}
		body.Velocity[0] = 0
	}
}

func absFloat(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
