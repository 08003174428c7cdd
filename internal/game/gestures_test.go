package game

import (
	"testing"
	"time"
)

func TestDoubleTapRecognized(t *testing.T) {
	var g gestureRecognizer
	t0 := time.Now()

	g.press(100, 100)
	if a := g.release(t0); a != actionNone {
		t.Fatalf("first tap released as %v, want actionNone", a)
	}
	g.press(105, 98)
	if a := g.release(t0.Add(200 * time.Millisecond)); a != actionDoubleTap {
		t.Fatalf("second tap released as %v, want actionDoubleTap", a)
	}
}

func TestSlowTapsDoNotDouble(t *testing.T) {
	var g gestureRecognizer
	t0 := time.Now()

	g.press(100, 100)
	g.release(t0)
	g.press(100, 100)
	if a := g.release(t0.Add(500 * time.Millisecond)); a != actionNone {
		t.Errorf("slow second tap released as %v, want actionNone", a)
	}
}

func TestDistantTapsDoNotDouble(t *testing.T) {
	var g gestureRecognizer
	t0 := time.Now()

	g.press(100, 100)
	g.release(t0)
	g.press(200, 100)
	if a := g.release(t0.Add(100 * time.Millisecond)); a != actionNone {
		t.Errorf("distant second tap released as %v, want actionNone", a)
	}
}

func TestTripleTapNeedsFreshPair(t *testing.T) {
	// A double-tap consumes both taps; a third tap starts a new pair
	// instead of chaining.
	var g gestureRecognizer
	t0 := time.Now()

	g.press(100, 100)
	g.release(t0)
	g.press(100, 100)
	if a := g.release(t0.Add(100 * time.Millisecond)); a != actionDoubleTap {
		t.Fatalf("second tap: %v, want actionDoubleTap", a)
	}
	g.press(100, 100)
	if a := g.release(t0.Add(200 * time.Millisecond)); a != actionNone {
		t.Errorf("third tap: %v, want actionNone", a)
	}
}

func TestDragResolution(t *testing.T) {
	var g gestureRecognizer
	g.press(100, 100)

	// Within slop: still pending.
	if a, _, _ := g.move(103, 100); a != actionNone {
		t.Fatalf("move within slop: %v, want actionNone", a)
	}

	a, tx, ty := g.move(120, 101)
	if a != actionDragStart {
		t.Fatalf("move past slop: %v, want actionDragStart", a)
	}
	if tx != 20 || ty != 1 {
		t.Errorf("drag start translation = (%v, %v), want (20, 1)", tx, ty)
	}

	a, tx, ty = g.move(90, 130)
	if a != actionDragMove {
		t.Fatalf("subsequent move: %v, want actionDragMove", a)
	}
	if tx != -10 || ty != 30 {
		t.Errorf("cumulative translation = (%v, %v), want (-10, 30)", tx, ty)
	}

	if a := g.release(time.Now()); a != actionDragEnd {
		t.Errorf("drag release: %v, want actionDragEnd", a)
	}
}

func TestDragVoidsPendingDoubleTap(t *testing.T) {
	var g gestureRecognizer
	t0 := time.Now()

	g.press(100, 100)
	g.release(t0)

	// Second press turns into a drag; the tap pair is voided.
	g.press(100, 100)
	g.move(150, 100)
	g.release(t0.Add(100 * time.Millisecond))

	g.press(100, 100)
	if a := g.release(t0.Add(200 * time.Millisecond)); a != actionNone {
		t.Errorf("tap after drag: %v, want actionNone", a)
	}
}

func TestCancel(t *testing.T) {
	var g gestureRecognizer

	g.press(100, 100)
	g.move(150, 100)
	if a := g.cancel(); a != actionDragEnd {
		t.Errorf("cancel mid-drag: %v, want actionDragEnd", a)
	}

	g.press(100, 100)
	if a := g.cancel(); a != actionNone {
		t.Errorf("cancel while pending: %v, want actionNone", a)
	}

	if a := g.cancel(); a != actionNone {
		t.Errorf("cancel while idle: %v, want actionNone", a)
	}
}
