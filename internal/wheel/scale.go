package wheel

// Scale is one precision level: how fast a drag moves the value, how many
// tick lines the wheel shows and how thick they are drawn.
type Scale struct {
	Sensitivity float64
	LineDensity float64
	LineWidth   float64
}

// ScaleCount is the number of precision levels; double-tap cycles through
// them coarse -> fine -> finest -> coarse.
const ScaleCount = 3

var scales = [ScaleCount]Scale{
	{Sensitivity: 1.0, LineDensity: 20, LineWidth: 1},
	{Sensitivity: 0.3, LineDensity: 8, LineWidth: 2},
	{Sensitivity: 0.05, LineDensity: 4, LineWidth: 3},
}

// ScaleAt returns the precision level for index i in 0..ScaleCount-1.
func ScaleAt(i int) Scale {
	return scales[i]
}

// NextScale advances the scale index cyclically.
func NextScale(i int) int {
	return (i + 1) % ScaleCount
}
