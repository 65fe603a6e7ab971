package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/g3n/engine/app"
	"github.com/g3n/engine/camera"
	"github.com/g3n/engine/core"
	"github.com/g3n/engine/gui"
	"github.com/g3n/engine/math32"
	"github.com/g3n/engine/window"
)

const maxMass = float32(0.1) // slider ceiling; the scaled mass domain is (0, 0.1]

func initializeUI(scene *core.Node, sim *Simulation, rec *Recorder, cam camera.ICamera) {
	// Piston force slider, domain [0, 1].
	forceSlider := gui.NewHSlider(200, 24)
	forceSlider.SetPosition(20, 40)
	forceSlider.SetValue(sim.PistonForce)
	forceSlider.SetText(fmt.Sprintf("force %.2f", sim.PistonForce))
	forceSlider.Subscribe(gui.OnChange, func(name string, ev interface{}) {
		sim.PistonForce = forceSlider.Value()
		forceSlider.SetText(fmt.Sprintf("force %.2f", sim.PistonForce))
	})
	scene.Add(forceSlider)

	// Mass slider, scaled to (0, 0.1]. The floor keeps the physics step away
	// from a zero divisor even before its own clamp.
	massSlider := gui.NewHSlider(200, 24)
	massSlider.SetPosition(20, 75)
	massSlider.SetValue(sim.Mass / maxMass)
	massSlider.SetText(fmt.Sprintf("mass %.3f", sim.Mass))
	massSlider.Subscribe(gui.OnChange, func(name string, ev interface{}) {
		m := massSlider.Value() * maxMass
		if m < minMass {
			m = minMass
		}
		sim.Mass = m
		massSlider.SetText(fmt.Sprintf("mass %.3f", sim.Mass))
	})
	scene.Add(massSlider)

	// Numeric edit fallbacks for exact values.
	massInput := createNumericInput(sim.Mass, 20, 110, func(value float32) {
		sim.Mass = value
	})
	scene.Add(massInput)

	forceInput := createNumericInput(sim.PistonForce, 20, 145, func(value float32) {
		sim.PistonForce = value
	})
	scene.Add(forceInput)

	recordBtn := gui.NewButton("Record")
	recordBtn.SetSize(80, 40)
	recordBtn.Subscribe(gui.OnClick, func(name string, ev interface{}) {
		if rec.Recording() {
			rec.Stop()
			if path, err := rec.Save(); err != nil {
				log.Println("Error saving recording:", err)
			} else {
				log.Println("Recording saved to", path)
			}
			recordBtn.Label.SetText("Record")
		} else {
			rec.Start()
			recordBtn.Label.SetText("Stop")
		}
	})
	scene.Add(recordBtn)

	addRobotBtn := gui.NewButton("Add Robot")
	addRobotBtn.SetSize(80, 40)
	scene.Add(addRobotBtn)

	modelPath := gui.NewEdit(160, "model.obj")
	modelPath.SetPosition(20, 180)
	scene.Add(modelPath)

	importBtn := gui.NewButton("Import model")
	importBtn.SetSize(120, 40)
	importBtn.Subscribe(gui.OnClick, func(name string, ev interface{}) {
		fpath := modelPath.Text()
		if fpath == "" {
			return
		}
		if err := applyRobotShell(sim.Robots, fpath); err != nil {
			log.Println("Error loading model:", err)
			return
		}
		log.Println("Robot model loaded from", fpath)
	})
	scene.Add(importBtn)

	waitingForRobotPlacement := false
	addRobotBtn.Subscribe(gui.OnClick, func(name string, ev interface{}) {
		waitingForRobotPlacement = true
		log.Println("Click on the scene to place the robot")
	})

	updateButtonLayout := func(w, h int) {
		const minWidth, minHeight = 400, 200
		if w < minWidth || h < minHeight {
			recordBtn.SetVisible(false)
			addRobotBtn.SetVisible(false)
			importBtn.SetVisible(false)
			return
		}
		recordBtn.SetVisible(true)
		addRobotBtn.SetVisible(true)
		importBtn.SetVisible(true)

		btnWidth := float32(w) * 0.15
		btnHeight := float32(h) * 0.05
		btnX := float32(w) - btnWidth - float32(w)*0.05
		btnY := float32(h) * 0.1

		recordBtn.SetSize(btnWidth, btnHeight)
		recordBtn.SetPosition(btnX, btnY)

		addRobotBtn.SetSize(btnWidth, btnHeight)
		addRobotBtn.SetPosition(btnX, btnY+btnHeight+10)

		importBtn.SetSize(btnWidth, btnHeight)
		importBtn.SetPosition(btnX, btnY+2*(btnHeight+10))
	}

	app.App().Subscribe(window.OnWindowSize, func(evname string, ev interface{}) {
		w, h := app.App().GetSize()
		updateButtonLayout(w, h)
	})

	w, h := app.App().GetSize()
	updateButtonLayout(w, h)

	app.App().Subscribe(window.OnMouseDown, func(evname string, ev interface{}) {
		if !waitingForRobotPlacement {
			return
		}

		mev := ev.(*window.MouseEvent)
		if mev.Button != window.MouseButtonLeft {
			return
		}

		point, ok := groundPoint(cam, mev.Xpos, mev.Ypos)
		if !ok {
			log.Println("No intersection with ground plane")
			return
		}
		point.Y = cubeEdge / 2

		candidate := newRobot(*point, randomDirection())
		if overlapsAny(candidate, sim.Robots) {
			log.Println("Cannot place robot there: overlaps an existing robot")
			return
		}
		candidate.attachMesh(scene)
		sim.Robots = append(sim.Robots, candidate)

		log.Printf("Robot added at position: %v", point)
		waitingForRobotPlacement = false
	})
}

// groundPoint unprojects a screen position through the camera and intersects
// the resulting ray with the ground plane (y=0).
func groundPoint(cam camera.ICamera, xpos, ypos float32) (*math32.Vector3, bool) {
	// Mouse position in normalized device coordinates
	w, h := app.App().GetSize()
	x := xpos/float32(w)*2 - 1
	y := -(ypos/float32(h)*2 - 1)

	projMatrix := &math32.Matrix4{}
	viewMatrix := &math32.Matrix4{}
	cam.ProjMatrix(projMatrix)
	cam.ViewMatrix(viewMatrix)

	viewProjMatrix := &math32.Matrix4{}
	viewProjMatrix.MultiplyMatrices(projMatrix, viewMatrix)

	invViewProjMatrix := &math32.Matrix4{}
	if err := invViewProjMatrix.GetInverse(viewProjMatrix); err != nil {
		log.Println("failed to invert view-projection matrix")
		return nil, false
	}

	// Near and far points in NDC (z=0 and z=1), back to world space
	nearNDC := math32.NewVector4(x, y, 0, 1)
	farNDC := math32.NewVector4(x, y, 1, 1)
	nearNDC.ApplyMatrix4(invViewProjMatrix)
	farNDC.ApplyMatrix4(invViewProjMatrix)

	// Perspective divide to convert from homogeneous coordinates to 3D
	near := &math32.Vector3{}
	far := &math32.Vector3{}
	if nearNDC.W != 0 {
		near.Set(nearNDC.X/nearNDC.W, nearNDC.Y/nearNDC.W, nearNDC.Z/nearNDC.W)
	}
	if farNDC.W != 0 {
		far.Set(farNDC.X/farNDC.W, farNDC.Y/farNDC.W, farNDC.Z/farNDC.W)
	}

	direction := far.Sub(near).Normalize()

	// Solve for t where y=0: origin.Y + t*direction.Y = 0
	origin := cam.(*camera.Camera).GetNode().Position()
	if direction.Y == 0 {
		return nil, false
	}
	t := -origin.Y / direction.Y
	if t < 0 {
		return nil, false
	}

	point := &math32.Vector3{
		X: origin.X + t*direction.X,
		Y: 0,
		Z: origin.Z + t*direction.Z,
	}
	return point, true
}

func createNumericInput(defaultValue float32, x, y float32, onChange func(value float32)) *gui.Edit {
	textInput := gui.NewEdit(100, fmt.Sprintf("%.2f", defaultValue))
	textInput.SetPosition(x, y)

	textInput.Subscribe(gui.OnChange, func(name string, ev interface{}) {
		text := textInput.Text()
		filteredText := filterNumericInput(text)
		if text != filteredText {
			textInput.SetText(filteredText)
		}
	})

	textInput.Subscribe(gui.OnKeyDown, func(name string, ev interface{}) {
		kev := ev.(*window.KeyEvent)
		if kev.Key == window.KeyEnter {
			text := textInput.Text()
			if value, err := strconv.ParseFloat(text, 32); err == nil && value > 0 {
				onChange(float32(value))
			} else {
				textInput.SetText(fmt.Sprintf("%.2f", defaultValue))
			}
		}
	})

	return textInput
}

func filterNumericInput(input string) string {
	var builder strings.Builder
	dotCount := 0

	for i, char := range input {
		if char >= '0' && char <= '9' {
			builder.WriteRune(char)
		} else if char == '.' && dotCount == 0 {
			builder.WriteRune(char)
			dotCount++
		} else if char == '-' && i == 0 {
			builder.WriteRune(char)
		}
	}

	return builder.String()
}
