package main

import (
	"fmt"
	"math/rand"

	"github.com/g3n/engine/core"
	"github.com/g3n/engine/geometry"
	"github.com/g3n/engine/graphic"
	"github.com/g3n/engine/material"
	"github.com/g3n/engine/math32"
)

// Direction selects one of the four scripted movement behaviors.
// The wire values 1..4 are kept for the recorder output.
type Direction int

const (
	DirAway   Direction = 1 // -Z
	DirCloser Direction = 2 // +Z
	DirLeft   Direction = 3 // -X
	DirRight  Direction = 4 // +X
)

func (d Direction) String() string {
	switch d {
	case DirAway:
		return "away"
	case DirCloser:
		return "closer"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Opposite returns the reversed direction on the same axis (away<->closer, left<->right).
func (d Direction) Opposite() Direction {
	switch d {
	case DirAway:
		return DirCloser
	case DirCloser:
		return DirAway
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	return d >= DirAway && d <= DirRight
}

func randomDirection() Direction {
	return Direction(1 + rand.Intn(4))
}

// Robot is one simulated piston robot. Pose and velocities live here; mass and
// piston force do not — they are read from the Simulation each frame so the UI
// sliders take effect immediately.
//
// The render nodes are optional. Headless robots (body == nil) run the full
// physics and collision path, which is what the tests use.
type Robot struct {
	Position        math32.Vector3
	Rotation        math32.Vector3 // per-axis Euler angles, radians
	AngularVelocity math32.Vector3
	LinearVelocity  math32.Vector3
	Direction       Direction
	Box             math32.Box3

	body   *graphic.Mesh
	piston *graphic.Mesh
	shell  *core.Node // optional imported model replacing the cube visual
}

func newRobot(position math32.Vector3, dir Direction) *Robot {
	r := &Robot{
		Position:  position,
		Direction: dir,
	}
	r.updateBounds()
	return r
}

// attachMesh builds the robot's render nodes (cube body with a cylinder piston
// child) and adds them to the scene.
func (r *Robot) attachMesh(scene *core.Node) {
	bodyGeom := geometry.NewBox(1, 1, 1) // cubeEdge on every side
	bodyMat := material.NewStandard(math32.NewColor("DarkOrange"))
	r.body = graphic.NewMesh(bodyGeom, bodyMat)

	pistonGeom := geometry.NewCylinder(0.1, 0.5, 8, 1, true, true)
	pistonMat := material.NewStandard(math32.NewColor("SlateGray"))
	r.piston = graphic.NewMesh(pistonGeom, pistonMat)
	r.piston.SetPosition(0, pistonRestY, 0)
	r.body.Add(r.piston)

	scene.Add(r.body)
	r.syncMesh()
}

// setShell swaps the robot's visual for an imported model. Physics extents are
// unchanged; the shell is cosmetic.
func (r *Robot) setShell(shell *core.Node) {
	if r.body == nil {
		return
	}
	if r.shell != nil {
		r.body.Remove(r.shell)
	}
	r.shell = shell
	if shell != nil {
		r.body.Add(shell)
	}
}

// syncMesh copies the simulated pose onto the render nodes.
func (r *Robot) syncMesh() {
	if r.body == nil {
		return
	}
	r.body.SetPositionVec(&r.Position)
	r.body.SetRotation(r.Rotation.X, r.Rotation.Y, r.Rotation.Z)
}

// placeRobots samples count non-overlapping robots uniformly in the square
// [-half, half] on x and z, rejecting candidates whose bounding box intersects
// an already-placed robot. Each candidate gets placementAttempts tries before
// the whole placement fails.
func placeRobots(count int, half float32) ([]*Robot, error) {
	if count < 1 {
		count = 1
	}
	robots := make([]*Robot, 0, count)
	for i := 0; i < count; i++ {
		placed := false
		for attempt := 0; attempt < placementAttempts; attempt++ {
			pos := math32.Vector3{
				X: (rand.Float32()*2 - 1) * half,
				Y: cubeEdge / 2,
				Z: (rand.Float32()*2 - 1) * half,
			}
			candidate := newRobot(pos, randomDirection())
			if overlapsAny(candidate, robots) {
				continue
			}
			robots = append(robots, candidate)
			placed = true
			break
		}
		if !placed {
			return nil, fmt.Errorf("cannot place %d robots in field: gave up after %d attempts at robot %d",
				count, placementAttempts, i+1)
		}
	}
	return robots, nil
}

// initializeRobots places count robots in the spawn area and adds their meshes
// to the scene.
func initializeRobots(scene *core.Node, count int) ([]*Robot, error) {
	robots, err := placeRobots(count, spawnHalfExtent)
	if err != nil {
		return nil, err
	}
	for _, r := range robots {
		r.attachMesh(scene)
	}
	return robots, nil
}

func overlapsAny(r *Robot, robots []*Robot) bool {
	for _, other := range robots {
		if boxesOverlap(&r.Box, &other.Box) {
			return true
		}
	}
	return false
}
