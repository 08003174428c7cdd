package wheel

import "math"

// Orientation selects the wheel's long axis. Auto resolves against the
// rendered size on every call: horizontal when width >= height.
type Orientation int

const (
	Auto Orientation = iota
	Horizontal
	Vertical
)

func (o Orientation) resolve(width, height float64) Orientation {
	if o != Auto {
		return o
	}
	if width >= height {
		return Horizontal
	}
	return Vertical
}

// Role tags a segment so the host can style ticks, frame and level
// indicator independently.
type Role int

const (
	RoleTick Role = iota
	RoleFrame
	RoleLevel
)

// Segment is one stroke in local wheel coordinates ((0,0) is the wheel's
// top-left corner). The host owns color and compositing.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
	Width  float64
	Role   Role
}

const (
	frameStrokeWidth = 1
	levelStrokeWidth = 3
)

// Geometry produces the renderable segments for one wheel state: the tick
// lines of the simulated cylinder, the bounds frame and the two level
// indicator marks. Pure; safe to call every frame.
func Geometry(value float64, rng Range, width, height float64, o Orientation, scaleIdx int) []Segment {
	sc := ScaleAt(scaleIdx)
	norm := rng.Normalize(rng.Clamp(value))
	horizontal := o.resolve(width, height) == Horizontal

	segs := make([]Segment, 0, int(sc.LineDensity)+6)

	// Ticks: evenly spaced rotation angles projected through sin onto the
	// long axis, so spacing compresses toward the edges like a cylinder
	// seen side-on. offset is the wheel's accumulated rotation for the
	// current value, delta the angle between adjacent ticks.
	offset := math.Pi * norm / sc.Sensitivity
	delta := math.Pi / sc.LineDensity
	k := math.Ceil((offset - math.Pi/2) / delta)
	for alpha := k*delta - offset; alpha < math.Pi/2; alpha += delta {
		if horizontal {
			x := width / 2 * (1 - math.Sin(alpha))
			segs = append(segs, Segment{x, 0, x, height, sc.LineWidth, RoleTick})
		} else {
			y := height / 2 * (1 + math.Sin(alpha))
			segs = append(segs, Segment{0, y, width, y, sc.LineWidth, RoleTick})
		}
	}

	// Frame.
	segs = append(segs,
		Segment{0, 0, width, 0, frameStrokeWidth, RoleFrame},
		Segment{width, 0, width, height, frameStrokeWidth, RoleFrame},
		Segment{width, height, 0, height, frameStrokeWidth, RoleFrame},
		Segment{0, height, 0, 0, frameStrokeWidth, RoleFrame},
	)

	// Level indicator: a mark on each short-axis edge whose length is the
	// value's fraction of the range. Vertical wheels fill bottom-up so a
	// rising value rises visually.
	if horizontal {
		l := width * norm
		segs = append(segs,
			Segment{0, 0, l, 0, levelStrokeWidth, RoleLevel},
			Segment{0, height, l, height, levelStrokeWidth, RoleLevel},
		)
	} else {
		l := height * norm
		segs = append(segs,
			Segment{0, height, 0, height - l, levelStrokeWidth, RoleLevel},
			Segment{width, height, width, height - l, levelStrokeWidth, RoleLevel},
		)
	}

	return segs
}

// DetentIndex returns the integer tick phase of the wheel for a value: it
// increments each time the rotation crosses a tick angle. Hosts compare it
// across drag moves to play click feedback in sync with tick motion.
func DetentIndex(value float64, rng Range, scaleIdx int) int {
	sc := ScaleAt(scaleIdx)
	offset := math.Pi * rng.Normalize(rng.Clamp(value)) / sc.Sensitivity
	return int(math.Floor(offset / (math.Pi / sc.LineDensity)))
}
