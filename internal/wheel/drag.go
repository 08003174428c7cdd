package wheel

// dragController tracks one in-progress drag. It stores the previous
// relative offset so each move contributes only its increment; that keeps
// multiple sensitivities consistent over one physical drag distance.
type dragController struct {
	dragging   bool
	lastOffset float64
}

func (d *dragController) start() {
	d.dragging = true
	d.lastOffset = 0
}

// step consumes the cumulative relative offset of the drag so far and
// returns the increment since the previous move.
func (d *dragController) step(relative float64) float64 {
	delta := relative - d.lastOffset
	d.lastOffset = relative
	return delta
}

func (d *dragController) end() {
	d.dragging = false
	d.lastOffset = 0
}
