package main

import (
	"math"
	"testing"

	"github.com/g3n/engine/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPistonStepClosedForm(t *testing.T) {
	const mass = float32(0.05)
	const force = float32(0.5)

	r := newRobot(math32.Vector3{}, DirAway)
	pistonStep(r, mass, force)

	torque := force * math32.Sin(tipAngle)
	thrust := force * math32.Cos(tipAngle)
	angAccel := torque / cubeInertia(mass)
	linAccel := thrust / mass

	// Away pivots about X with negative sign and travels along -Z.
	require.InDelta(t, float64(-angAccel*timeStep), float64(r.AngularVelocity.X), 1e-6)
	require.InDelta(t, float64(-linAccel*timeStep), float64(r.LinearVelocity.Z), 1e-6)
	assert.Zero(t, r.AngularVelocity.Z)
	assert.Zero(t, r.LinearVelocity.X)
}

func TestPistonStepAccumulates(t *testing.T) {
	r := newRobot(math32.Vector3{}, DirRight)
	pistonStep(r, 0.05, 0.5)
	one := r.AngularVelocity.Z
	pistonStep(r, 0.05, 0.5)
	require.InDelta(t, float64(2*one), float64(r.AngularVelocity.Z), 1e-6)
}

func TestPistonStepClampsMass(t *testing.T) {
	for _, mass := range []float32{0, -1} {
		r := newRobot(math32.Vector3{}, DirCloser)
		pistonStep(r, mass, 0.5)
		assert.False(t, math.IsNaN(float64(r.AngularVelocity.X)))
		assert.False(t, math.IsInf(float64(r.AngularVelocity.X), 0))
		assert.False(t, math.IsNaN(float64(r.LinearVelocity.Z)))
		assert.False(t, math.IsInf(float64(r.LinearVelocity.Z), 0))
	}
}

func TestStepRobotOneFrameFromRest(t *testing.T) {
	r := newRobot(math32.Vector3{Y: cubeEdge / 2}, DirAway)
	stepRobot(r, 0.05, 0.5)

	// One frame from rest stays far below the tipping threshold, so the frame
	// is exactly: piston step, one integration, piston visual update.
	require.Less(t, math32.Abs(r.Rotation.X), float32(tipAngle))
	require.InDelta(t, float64(r.AngularVelocity.X*timeStep), float64(r.Rotation.X), 1e-9)
	require.InDelta(t, float64(r.LinearVelocity.Z), float64(r.Position.Z), 1e-9)
	assert.True(t, r.Direction.Valid())
}

func TestPhaseForTilt(t *testing.T) {
	tests := []struct {
		name string
		tilt float32
		want tiltPhase
	}{
		{"rest", 0, phaseTilting},
		{"below threshold", tipAngle - 0.01, phaseTilting},
		{"at threshold", tipAngle, phaseFalling},
		{"past threshold", 1.0, phaseFalling},
		{"at quarter turn", fullRotation, phaseLanded},
		{"past quarter turn", 2.0, phaseLanded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, phaseForTilt(tt.tilt))
		})
	}
}

func TestLandingResets(t *testing.T) {
	r := newRobot(math32.Vector3{Y: cubeEdge / 2}, DirAway)
	r.Rotation.X = -2.0 // well past the quarter turn
	r.AngularVelocity.X = -3.0
	r.LinearVelocity.Z = -0.01

	stepRobot(r, 0.05, 0.5)

	assert.Equal(t, float32(0), r.AngularVelocity.X)
	assert.Equal(t, float32(0), r.AngularVelocity.Y)
	assert.Equal(t, float32(0), r.AngularVelocity.Z)
	assert.Equal(t, float32(0), r.LinearVelocity.X)
	assert.Equal(t, float32(0), r.LinearVelocity.Y)
	assert.Equal(t, float32(0), r.LinearVelocity.Z)

	// Pivot axis snaps back to exactly zero; the settle lands on the other
	// horizontal axis within its range.
	assert.Equal(t, float32(0), r.Rotation.X)
	assert.GreaterOrEqual(t, r.Rotation.Z, settleMin)
	assert.Less(t, r.Rotation.Z, settleMax)
}

func TestFallingAddsGravitySpin(t *testing.T) {
	r := newRobot(math32.Vector3{Y: cubeEdge / 2}, DirCloser)
	r.Rotation.X = tipAngle + 0.1
	r.AngularVelocity.X = 0.5

	before := r.AngularVelocity.X
	stepRobot(r, 0.05, 0.5)

	// Past the threshold both the piston and gravity push the same way.
	pistonOnly := before + (0.5*math32.Sin(tipAngle)/cubeInertia(0.05))*timeStep
	assert.Greater(t, r.AngularVelocity.X, pistonOnly)
}

func TestSimulationInvariantsOverFrames(t *testing.T) {
	robots, err := placeRobots(6, spawnHalfExtent)
	require.NoError(t, err)

	sim := &Simulation{Robots: robots, Mass: 0.05, PistonForce: 0.5}
	for frame := 0; frame < 2000; frame++ {
		sim.Update()
		for _, r := range sim.Robots {
			require.True(t, r.Direction.Valid(), "frame %d", frame)
			require.LessOrEqual(t, r.Box.Min.X, r.Box.Max.X, "frame %d", frame)
			require.LessOrEqual(t, r.Box.Min.Y, r.Box.Max.Y, "frame %d", frame)
			require.LessOrEqual(t, r.Box.Min.Z, r.Box.Max.Z, "frame %d", frame)
		}
	}
}
