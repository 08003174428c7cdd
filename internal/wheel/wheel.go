// Package wheel implements a drag-to-adjust value wheel: a bounded float
// edited by dragging along the control's long axis, rendered as a rotating
// cylinder of tick lines. Double-tap cycles through three precision levels
// trading drag sensitivity against tick density. The package is pure state
// and geometry; input classification and painting belong to the host.
package wheel

// Wheel is the composition root of one control instance. The edited value
// lives in a caller-owned cell; the wheel is its only writer while a
// gesture is active.
type Wheel struct {
	value       *float64
	rng         Range
	orientation Orientation
	scaleIdx    int
	drag        dragController

	// OnChange fires on every value change, OnCommit once per drag at its
	// end with the settled value. Both optional.
	OnChange func(float64)
	OnCommit func(float64)
}

// New binds a wheel to the caller's value cell. An out-of-range initial
// value is clamped immediately.
func New(value *float64, rng Range, o Orientation) *Wheel {
	*value = rng.Clamp(*value)
	return &Wheel{value: value, rng: rng, orientation: o}
}

// Value returns the current bound value.
func (w *Wheel) Value() float64 { return *w.value }

// Bounds returns the wheel's value range.
func (w *Wheel) Bounds() Range { return w.rng }

// ScaleIndex returns the active precision level index.
func (w *Wheel) ScaleIndex() int { return w.scaleIdx }

// Dragging reports whether a drag is in progress.
func (w *Wheel) Dragging() bool { return w.drag.dragging }

// SetValue clamps v into range and stores it, notifying OnChange if the
// value moved.
func (w *Wheel) SetValue(v float64) {
	w.store(v)
}

// DoubleTap advances to the next precision level. The host's gesture
// classifier guarantees this never interleaves with a drag.
func (w *Wheel) DoubleTap() {
	w.scaleIdx = NextScale(w.scaleIdx)
}

// DragStart begins a drag, resetting the accumulated offset.
func (w *Wheel) DragStart() {
	w.drag.start()
}

// DragMove applies the drag's cumulative translation (tx, ty) since
// DragStart, given the wheel's rendered size. Rightward drags increase the
// value on horizontal wheels, upward drags on vertical ones. Ignored
// outside a drag or when the extent along the drag axis is zero.
func (w *Wheel) DragMove(tx, ty, width, height float64) {
	if !w.drag.dragging {
		return
	}
	var relative float64
	if w.orientation.resolve(width, height) == Horizontal {
		if width == 0 {
			return
		}
		relative = -tx / width
	} else {
		if height == 0 {
			return
		}
		relative = ty / height
	}
	deltaOffset := w.drag.step(relative)
	valueDelta := deltaOffset * w.rng.Span() * ScaleAt(w.scaleIdx).Sensitivity
	w.store(*w.value - valueDelta)
}

// DragEnd finishes the drag and fires OnCommit with the settled value.
// Also the cancellation path: hosts must route abandoned drags here so the
// stored offset cannot leak into the next drag.
func (w *Wheel) DragEnd() {
	if !w.drag.dragging {
		return
	}
	w.drag.end()
	if w.OnCommit != nil {
		w.OnCommit(*w.value)
	}
}

// Geometry returns the wheel's renderable segments for the given size.
// Pure read; callable every frame.
func (w *Wheel) Geometry(width, height float64) []Segment {
	return Geometry(*w.value, w.rng, width, height, w.orientation, w.scaleIdx)
}

// DetentIndex returns the current tick phase (see package DetentIndex).
func (w *Wheel) DetentIndex() int {
	return DetentIndex(*w.value, w.rng, w.scaleIdx)
}

func (w *Wheel) store(v float64) {
	v = w.rng.Clamp(v)
	if v == *w.value {
		return
	}
	*w.value = v
	if w.OnChange != nil {
		w.OnChange(v)
	}
}
