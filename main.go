package main

import (
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/g3n/engine/app"
	"github.com/g3n/engine/camera"
	"github.com/g3n/engine/core"
	"github.com/g3n/engine/geometry"
	"github.com/g3n/engine/gls"
	"github.com/g3n/engine/graphic"
	"github.com/g3n/engine/gui"
	"github.com/g3n/engine/light"
	"github.com/g3n/engine/material"
	"github.com/g3n/engine/math32"
	"github.com/g3n/engine/renderer"
	"github.com/g3n/engine/texture"
	"github.com/g3n/engine/util/helper"
	"github.com/g3n/engine/window"
	"github.com/kardianos/osext"
)

func main() {
	rand.Seed(time.Now().UnixNano())

	// Optional single argument: path to a TOML config file. A missing or
	// unparseable file falls back to the defaults (one robot).
	conf := DefaultConf
	if len(os.Args) > 1 {
		parsed, err := ParseConfig(os.Args[1])
		if err != nil {
			log.Println("Cannot parse config, using defaults:", err)
		} else {
			conf = parsed
		}
	}

	// Initialize the app and scene
	a := app.App()
	scene := core.NewNode()
	gui.Manager().Set(scene)

	// Setup the camera
	cam := camera.New(1)
	cam.SetPosition(0, 10, 25)
	cam.LookAt(&math32.Vector3{X: 0, Y: 0, Z: 0}, &math32.Vector3{X: 0, Y: 1, Z: 0})
	scene.Add(cam)
	camera.NewOrbitControl(cam)

	// Handle window resizing
	onResize := func(evname string, ev interface{}) {
		width, height := a.GetSize()
		a.Gls().Viewport(0, 0, int32(width), int32(height))
		cam.SetAspect(float32(width) / float32(height))
	}
	a.Subscribe(window.OnWindowSize, onResize)
	onResize("", nil)

	// Add lights and helpers
	scene.Add(light.NewAmbient(&math32.Color{R: 1, G: 1, B: 1}, 0.8))
	pointLight := light.NewPoint(&math32.Color{R: 1, G: 1, B: 1}, 5.0)
	pointLight.SetPosition(5, 10, 5)
	scene.Add(pointLight)
	scene.Add(helper.NewAxes(1.0))

	scene.Add(newFloor())

	// Place the robots and wire up the UI and the recorder
	sim, err := NewSimulation(scene, conf)
	if err != nil {
		log.Fatalln("Cannot initialize simulation:", err)
	}
	rec := NewRecorder(conf.Output)
	initializeUI(scene, sim, rec, cam)

	// Application loop
	a.Run(func(rdr *renderer.Renderer, deltaTime time.Duration) {
		a.Gls().Clear(gls.DEPTH_BUFFER_BIT | gls.STENCIL_BUFFER_BIT | gls.COLOR_BUFFER_BIT)
		rdr.Render(scene, cam)

		sim.Update()
		rec.RecordFrame(sim.Robots)
	})
}

// newFloor builds the ground plane covering the robot field, textured when the
// checkerboard asset sits next to the executable.
func newFloor() *graphic.Mesh {
	floorGeom := geometry.NewPlane(40, 40) // covers the ±fieldHalfExtent square
	floorMat := material.NewStandard(&math32.Color{R: 0.6, G: 0.6, B: 0.6})

	if dir, err := osext.ExecutableFolder(); err == nil {
		texPath := filepath.Join(dir, "assets", "checkerboard.jpg")
		if tex, err := texture.NewTexture2DFromImage(texPath); err == nil {
			floorMat.AddTexture(tex)
		} else {
			log.Println("Floor texture not found, using flat color:", err)
		}
	}

	floor := graphic.NewMesh(floorGeom, floorMat)
	floor.SetRotation(-math32.Pi/2, 0, 0)
	return floor
}
