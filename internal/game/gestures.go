package game

import (
	"math"
	"time"

	"github.com/iburimskiy/wheel-widget/internal/config"
)

// The wheel accepts exactly one of {double-tap, drag} per interaction, so
// a press is first buffered in a pending phase: movement past the slop
// resolves it to a drag, a release resolves it to a tap, and two taps
// close together in time and space make a double-tap. Nothing downstream
// mutates until the press has resolved.

type gesturePhase int

const (
	gestureIdle gesturePhase = iota
	gesturePending
	gestureDragging
)

type gestureAction int

const (
	actionNone gestureAction = iota
	actionDoubleTap
	actionDragStart
	actionDragMove
	actionDragEnd
)

type gestureRecognizer struct {
	phase          gesturePhase
	startX, startY float64

	hasTap             bool
	lastTapAt          time.Time
	lastTapX, lastTapY float64
}

// press begins a new interaction at (x, y).
func (g *gestureRecognizer) press(x, y float64) {
	g.phase = gesturePending
	g.startX, g.startY = x, y
}

// move feeds the current pointer position and returns the resulting action
// together with the cumulative translation since the press. actionDragStart
// means the pending press just committed to a drag; the returned
// translation already belongs to it.
func (g *gestureRecognizer) move(x, y float64) (gestureAction, float64, float64) {
	tx, ty := x-g.startX, y-g.startY
	switch g.phase {
	case gesturePending:
		if math.Hypot(tx, ty) <= config.DragSlop {
			return actionNone, 0, 0
		}
		g.phase = gestureDragging
		g.hasTap = false // a drag voids any half-finished double-tap
		return actionDragStart, tx, ty
	case gestureDragging:
		return actionDragMove, tx, ty
	}
	return actionNone, 0, 0
}

// release ends the interaction at time now. A pending press becomes a tap
// and, paired with a recent nearby tap, a double-tap.
func (g *gestureRecognizer) release(now time.Time) gestureAction {
	switch g.phase {
	case gesturePending:
		g.phase = gestureIdle
		if g.hasTap &&
			now.Sub(g.lastTapAt) <= config.DoubleTapInterval &&
			math.Hypot(g.startX-g.lastTapX, g.startY-g.lastTapY) <= config.TapTolerance {
			g.hasTap = false
			return actionDoubleTap
		}
		g.hasTap = true
		g.lastTapAt = now
		g.lastTapX, g.lastTapY = g.startX, g.startY
		return actionNone
	case gestureDragging:
		g.phase = gestureIdle
		return actionDragEnd
	}
	return actionNone
}

// cancel aborts the interaction (pointer lost, window unfocused). An
// in-progress drag still reports actionDragEnd so the wheel's offset is
// reset.
func (g *gestureRecognizer) cancel() gestureAction {
	dragging := g.phase == gestureDragging
	g.phase = gestureIdle
	if dragging {
		return actionDragEnd
	}
	return actionNone
}
