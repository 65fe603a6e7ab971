package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"
)

type RobotData struct {
	Position struct {
		X, Y, Z float32
	}
	Rotation struct {
		X, Y, Z float32
	}
	AngularVelocity struct {
		X, Y, Z float32
	}
	LinearVelocity struct {
		X, Y, Z float32
	}
	Direction int
}

type SimulationSnapshot struct {
	Timestamp float64
	Robots    []RobotData
}

// Recorder captures per-frame snapshots of every robot and saves them as
// indented JSON. Frames closer together than minFrameInterval are skipped.
type Recorder struct {
	history   []SimulationSnapshot
	startTime float64
	recording bool
	output    string
}

const minFrameInterval = 0.016 // ~60fps ceiling on snapshot rate

func NewRecorder(output string) *Recorder {
	return &Recorder{output: output}
}

func (rec *Recorder) Recording() bool {
	return rec.recording
}

func (rec *Recorder) Start() {
	rec.history = nil
	rec.recording = true
	log.Printf("Started recording simulation data")
}

func (rec *Recorder) Stop() {
	rec.recording = false
	log.Printf("Stopped recording. Total frames captured: %d", len(rec.history))
}

// RecordFrame appends one snapshot of the given robots, if recording is active
// and enough time has passed since the previous snapshot.
func (rec *Recorder) RecordFrame(robots []*Robot) {
	if !rec.recording || len(robots) == 0 {
		return
	}

	now := float64(time.Now().UnixNano()) / 1e9
	if len(rec.history) == 0 {
		rec.startTime = now
	} else {
		last := rec.history[len(rec.history)-1]
		if (now-rec.startTime)-last.Timestamp < minFrameInterval {
			return
		}
	}

	snapshot := SimulationSnapshot{
		Timestamp: now - rec.startTime,
		Robots:    make([]RobotData, 0, len(robots)),
	}
	for _, r := range robots {
		var d RobotData
		d.Position.X, d.Position.Y, d.Position.Z = r.Position.X, r.Position.Y, r.Position.Z
		d.Rotation.X, d.Rotation.Y, d.Rotation.Z = r.Rotation.X, r.Rotation.Y, r.Rotation.Z
		d.AngularVelocity.X, d.AngularVelocity.Y, d.AngularVelocity.Z =
			r.AngularVelocity.X, r.AngularVelocity.Y, r.AngularVelocity.Z
		d.LinearVelocity.X, d.LinearVelocity.Y, d.LinearVelocity.Z =
			r.LinearVelocity.X, r.LinearVelocity.Y, r.LinearVelocity.Z
		d.Direction = int(r.Direction)
		snapshot.Robots = append(snapshot.Robots, d)
	}
	rec.history = append(rec.history, snapshot)

	// Log every 30th frame to reduce output
	if len(rec.history)%30 == 0 {
		log.Printf("Recording frame %d: t=%.2fs, robots: %d",
			len(rec.history), snapshot.Timestamp, len(snapshot.Robots))
	}
}

// Save writes the captured history to a timestamped JSON file and returns its
// path.
func (rec *Recorder) Save() (string, error) {
	if len(rec.history) < 2 {
		return "", fmt.Errorf("insufficient simulation data: need at least 2 snapshots, got %d", len(rec.history))
	}

	filename := fmt.Sprintf("%s_%d.json", rec.output, time.Now().UnixNano())

	log.Printf("Saving simulation data: %d frames, %.2fs to %.2fs",
		len(rec.history),
		rec.history[0].Timestamp,
		rec.history[len(rec.history)-1].Timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("error creating file: %v", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rec.history); err != nil {
		return "", fmt.Errorf("error encoding data: %v", err)
	}

	log.Printf("Successfully saved simulation data to %s", filename)
	return filename, nil
}
