package main

import "github.com/g3n/engine/core"

// Simulation owns the robot list and the two live scalar inputs. The UI writes
// Mass and PistonForce; every physics step reads them fresh.
type Simulation struct {
	Robots      []*Robot
	Mass        float32
	PistonForce float32
}

// NewSimulation places the configured number of robots and attaches their
// meshes to the scene.
func NewSimulation(scene *core.Node, conf *Config) (*Simulation, error) {
	robots, err := initializeRobots(scene, conf.Robots)
	if err != nil {
		return nil, err
	}
	return &Simulation{
		Robots:      robots,
		Mass:        conf.Mass,
		PistonForce: conf.PistonForce,
	}, nil
}

// Update runs one frame: the collision pass first, then one movement step per
// robot, then pose sync to the render nodes.
func (s *Simulation) Update() {
	detectCollisions(s.Robots)
	for _, r := range s.Robots {
		stepRobot(r, s.Mass, s.PistonForce)
		r.syncMesh()
	}
}
