package main

import "github.com/g3n/engine/math32"

// half extents of the collision box; the box is derived from position only,
// never from the tilt, so a pivoting robot keeps its resting footprint.
const (
	halfExtentX = cubeEdge / 2
	halfExtentY = cubeEdge / 2
	halfExtentZ = cubeEdge / 2
)

// updateBounds recomputes the axis-aligned box from the current position and
// the fixed half extents.
func (r *Robot) updateBounds() {
	r.Box.Min.Set(r.Position.X-halfExtentX, r.Position.Y-halfExtentY, r.Position.Z-halfExtentZ)
	r.Box.Max.Set(r.Position.X+halfExtentX, r.Position.Y+halfExtentY, r.Position.Z+halfExtentZ)
}

// boxesOverlap is the closed-interval AABB test: boxes touching on a face
// count as overlapping.
func boxesOverlap(a, b *math32.Box3) bool {
	return a.Max.X >= b.Min.X && a.Min.X <= b.Max.X &&
		a.Max.Y >= b.Min.Y && a.Min.Y <= b.Max.Y &&
		a.Max.Z >= b.Min.Z && a.Min.Z <= b.Max.Z
}

// outOfField reports whether the robot has wandered past the fixed square
// boundary on x or z.
func outOfField(r *Robot) bool {
	return math32.Abs(r.Position.X) > fieldHalfExtent || math32.Abs(r.Position.Z) > fieldHalfExtent
}

// reverse flips the robot's direction on its axis and resyncs the piston to
// the new convention. This is the whole collision response: no rebound angle,
// no penetration resolution, and positions are never clamped back inside the
// field.
func (r *Robot) reverse() {
	r.Direction = r.Direction.Opposite()
	r.resetPiston()
}

// detectCollisions runs the per-frame collision pass: every unordered robot
// pair is tested for box overlap and both members of an overlapping pair are
// reversed, then each robot is tested against the field boundary. O(n²) pairs;
// fine for the handful of robots this toy runs.
func detectCollisions(robots []*Robot) {
	for i := 0; i < len(robots); i++ {
		for j := i + 1; j < len(robots); j++ {
			if boxesOverlap(&robots[i].Box, &robots[j].Box) {
				robots[i].reverse()
				robots[j].reverse()
			}
		}
	}
	for _, r := range robots {
		if outOfField(r) {
			r.reverse()
		}
	}
}
