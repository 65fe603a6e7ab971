package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConf(t *testing.T) {
	assert.Equal(t, 1, DefaultConf.Robots)
	assert.Equal(t, float32(0.05), DefaultConf.Mass)
	assert.Equal(t, float32(0.5), DefaultConf.PistonForce)
}

func TestParseConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.toml")
	require.NoError(t, os.WriteFile(path, []byte("Robots = 4\nMass = 0.02\n"), 0644))

	conf, err := ParseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, conf.Robots)
	assert.Equal(t, float32(0.02), conf.Mass)
	// Fields missing from the file keep their defaults.
	assert.Equal(t, DefaultConf.PistonForce, conf.PistonForce)
	assert.Equal(t, DefaultConf.Output, conf.Output)
}

func TestParseConfigRobotsFloor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.toml")
	require.NoError(t, os.WriteFile(path, []byte("Robots = 0\n"), 0644))

	conf, err := ParseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1, conf.Robots)
}

func TestParseConfigMissingFile(t *testing.T) {
	_, err := ParseConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
