package main

import (
	"github.com/BurntSushi/toml"
)

// Config holds the run parameters loaded from an optional TOML file.
type Config struct {
	Robots int // number of robots placed at start

	// Initial slider values; the UI can change both at runtime.
	Mass        float32 // body mass, expected in (0, 0.1]
	PistonForce float32 // piston output force, expected in [0, 1]

	// Output is the filename prefix for saved recordings.
	Output string
}

// DefaultConf are the default parameters: a single robot with the reference
// mass and piston force.
var DefaultConf = &Config{
	Robots:      1,
	Mass:        0.05,
	PistonForce: 0.5,
	Output:      "simulation_data",
}

// ParseConfig parses the TOML config file whose path is provided. Fields
// missing from the file keep their defaults.
func ParseConfig(path string) (*Config, error) {
	conf := *DefaultConf
	_, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return nil, err
	}
	if conf.Robots < 1 {
		conf.Robots = 1
	}
	return &conf, nil
}
