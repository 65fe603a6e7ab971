package main

import (
	"math/rand"

	"github.com/g3n/engine/math32"
)

const (
	timeStep     = float32(1.0 / 360.0)
	gravityAccel = 9.8

	// tipAngle is the fixed 45-degree tipping threshold. The piston torque and
	// thrust are computed from this constant, not from the live tilt angle.
	tipAngle     = math32.Pi / 4
	fullRotation = math32.Pi / 2

	cubeEdge  = float32(1.0)
	edgeScale = float32(0.5) // inertia uses a scaled-down edge length
	momentArm = cubeEdge / 2

	pistonRestY = -cubeEdge / 2
	pistonLean  = float32(0.25)

	// Landing settle: small random rotation applied to the secondary axis.
	settleMin = float32(-0.09)
	settleMax = float32(0.01)

	// Mass floor applied before any division. The UI keeps mass positive, but
	// the step clamps anyway so a zero from elsewhere cannot blow up.
	minMass = float32(1e-4)

	fieldHalfExtent   = float32(20.0)
	spawnHalfExtent   = float32(15.0)
	placementAttempts = 256
)

type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

// moveSpec parameterizes one movement behavior: which axis the body pivots
// about, which axis it translates along, and the sign conventions. Tipping
// about +X carries the top toward +Z, tipping about -Z carries it toward +X.
type moveSpec struct {
	rotAxis  axis
	moveAxis axis
	rotSign  float32
	moveSign float32
}

var moveSpecs = map[Direction]moveSpec{
	DirAway:   {rotAxis: axisX, moveAxis: axisZ, rotSign: -1, moveSign: -1},
	DirCloser: {rotAxis: axisX, moveAxis: axisZ, rotSign: +1, moveSign: +1},
	DirLeft:   {rotAxis: axisZ, moveAxis: axisX, rotSign: +1, moveSign: -1},
	DirRight:  {rotAxis: axisZ, moveAxis: axisX, rotSign: -1, moveSign: +1},
}

func vecComponent(v *math32.Vector3, a axis) *float32 {
	switch a {
	case axisX:
		return &v.X
	case axisY:
		return &v.Y
	default:
		return &v.Z
	}
}

// tiltPhase names the three movement phases. The phase is never stored: it is
// re-derived from the pose each frame so it cannot desynchronize.
type tiltPhase int

const (
	phaseTilting tiltPhase = iota // pivoting on the ground edge, below the threshold
	phaseFalling                  // past the tipping threshold, gravity takes over
	phaseLanded                   // past a quarter turn, face down again
)

func phaseForTilt(tilt float32) tiltPhase {
	switch {
	case tilt >= fullRotation:
		return phaseLanded
	case tilt >= tipAngle:
		return phaseFalling
	default:
		return phaseTilting
	}
}

// cubeInertia is the solid-cube moment of inertia (1/6) m a² about a central
// axis, with the edge scaled down by edgeScale.
func cubeInertia(mass float32) float32 {
	edge := cubeEdge * edgeScale
	return mass * edge * edge / 6
}

// pistonStep accumulates one time step of piston-driven acceleration into the
// robot's velocity components for the active direction. Torque uses sin of the
// tipping constant and thrust uses cos of it; both scale with the live piston
// force. Velocities are never damped; only a landing resets them.
func pistonStep(r *Robot, mass, pistonForce float32) {
	if mass < minMass {
		mass = minMass
	}
	spec := moveSpecs[r.Direction]

	torque := pistonForce * math32.Sin(tipAngle)
	thrust := pistonForce * math32.Cos(tipAngle)

	angAccel := torque / cubeInertia(mass)
	linAccel := thrust / mass

	*vecComponent(&r.AngularVelocity, spec.rotAxis) += spec.rotSign * angAccel * timeStep
	*vecComponent(&r.LinearVelocity, spec.moveAxis) += spec.moveSign * linAccel * timeStep
}

// gravityStep adds the gravity torque contribution for the current tilt to the
// angular velocity. Only the falling phase applies it.
func gravityStep(r *Robot, mass float32) {
	if mass < minMass {
		mass = minMass
	}
	spec := moveSpecs[r.Direction]
	tilt := math32.Abs(*vecComponent(&r.Rotation, spec.rotAxis))

	torque := mass * momentArm * gravityAccel * math32.Sin(tilt)
	angAccel := torque / cubeInertia(mass)
	*vecComponent(&r.AngularVelocity, spec.rotAxis) += spec.rotSign * angAccel * timeStep
}

// integrate advances the pose by one step: rotation by angular velocity * dt,
// translation by the raw linear-velocity component. Translation is per frame,
// not per second; the tuning of the piston constants assumes that.
func integrate(r *Robot) {
	spec := moveSpecs[r.Direction]
	*vecComponent(&r.Rotation, spec.rotAxis) += *vecComponent(&r.AngularVelocity, spec.rotAxis) * timeStep
	*vecComponent(&r.Position, spec.moveAxis) += *vecComponent(&r.LinearVelocity, spec.moveAxis)
	r.updateBounds()
}

// land resets the robot at the end of a quarter turn: both velocities zeroed,
// the pivot axis snapped back to exactly zero, and a small random settle
// rotation on the other horizontal axis.
func land(r *Robot) {
	spec := moveSpecs[r.Direction]

	r.AngularVelocity.Set(0, 0, 0)
	r.LinearVelocity.Set(0, 0, 0)
	*vecComponent(&r.Rotation, spec.rotAxis) = 0

	settle := settleMin + rand.Float32()*(settleMax-settleMin)
	secondary := axisZ
	if spec.rotAxis == axisZ {
		secondary = axisX
	}
	*vecComponent(&r.Rotation, secondary) += settle

	r.resetPiston()
	r.updateBounds()
}

// stepRobot runs one frame of the active movement behavior: piston step,
// integration, then the phase-dependent tail. The phase is derived once from
// the pose after the first integration.
func stepRobot(r *Robot, mass, pistonForce float32) {
	spec := moveSpecs[r.Direction]

	pistonStep(r, mass, pistonForce)
	integrate(r)

	tilt := math32.Abs(*vecComponent(&r.Rotation, spec.rotAxis))
	switch phaseForTilt(tilt) {
	case phaseTilting:
		r.updatePistonPose()
	case phaseFalling:
		gravityStep(r, mass)
		integrate(r)
	case phaseLanded:
		land(r)
	}
}

// updatePistonPose keeps the piston visually planted while the body pivots:
// it counter-rotates against the tilt and slides opposite the travel
// direction. Purely cosmetic; headless robots skip it.
func (r *Robot) updatePistonPose() {
	if r.piston == nil {
		return
	}
	spec := moveSpecs[r.Direction]
	tilt := *vecComponent(&r.Rotation, spec.rotAxis)

	var rot math32.Vector3
	*vecComponent(&rot, spec.rotAxis) = -tilt
	r.piston.SetRotation(rot.X, rot.Y, rot.Z)

	var pos math32.Vector3
	pos.Y = pistonRestY
	*vecComponent(&pos, spec.moveAxis) = -spec.moveSign * pistonLean * math32.Sin(math32.Abs(tilt))
	r.piston.SetPositionVec(&pos)
}

// resetPiston returns the piston to its neutral local pose, oriented for the
// robot's current direction. Called on landing and on every direction flip.
func (r *Robot) resetPiston() {
	if r.piston == nil {
		return
	}
	spec := moveSpecs[r.Direction]
	r.piston.SetRotation(0, 0, 0)
	var pos math32.Vector3
	pos.Y = pistonRestY
	*vecComponent(&pos, spec.moveAxis) = -spec.moveSign * pistonLean * 0.1
	r.piston.SetPositionVec(&pos)
}
