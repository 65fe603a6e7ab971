package main

import (
	"fmt"
	"path/filepath"

	"github.com/g3n/engine/core"
	"github.com/g3n/engine/loader/obj"
)

// loadRobotShell decodes a model file into a node usable as a robot's visual
// shell. Only .obj is supported. The caller attaches one decoded copy per
// robot; collision extents are not affected by the model's size.
func loadRobotShell(fpath string) (*core.Node, error) {
	ext := filepath.Ext(fpath)
	switch ext {
	case ".obj":
		dec, err := obj.Decode(fpath, "")
		if err != nil {
			return nil, err
		}
		grp, err := dec.NewGroup()
		if err != nil {
			return nil, err
		}
		return grp, nil
	default:
		return nil, fmt.Errorf("unsupported model format: %s", ext)
	}
}

// applyRobotShell loads the model once per robot and swaps it in over the cube
// body. A nil error means every robot got a shell.
func applyRobotShell(robots []*Robot, fpath string) error {
	for _, r := range robots {
		shell, err := loadRobotShell(fpath)
		if err != nil {
			return err
		}
		r.setShell(shell)
	}
	return nil
}
