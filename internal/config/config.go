package config

import "time"

const (
	WindowWidth  = 640
	WindowHeight = 480

	// Level wheel (horizontal)
	LevelWheelX = 60
	LevelWheelY = 120
	LevelWheelW = 360
	LevelWheelH = 90

	// Gain wheel (auto orientation, laid out tall so it resolves vertical)
	GainWheelX = 490
	GainWheelY = 90
	GainWheelW = 90
	GainWheelH = 300

	// Set-value button
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 20

	// Gesture classification
	DoubleTapInterval = 300 * time.Millisecond
	TapTolerance      = 24.0 // px between the two taps of a double-tap
	DragSlop          = 6.0  // px of movement before a press becomes a drag
)
