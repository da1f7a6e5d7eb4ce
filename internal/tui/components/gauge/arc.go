package gauge

import (
	"math"

	drawille "github.com/exrook/drawille-go"
)

const (
	// screen degrees: 0 is 3 o'clock and angles grow clockwise, so 270 is 12 o'clock
	arcStartAngle = 270.0
	arcSweep      = 360.0
	arcThickness  = 4
)

// drawArc strokes arcThickness concentric arcs from startAngle through sweep degrees.
func drawArc(canvas *drawille.Canvas, centerX, centerY, radius, startAngle, sweep float64) {
	cx, cy := int(centerX), int(centerY)
	for t := range arcThickness {
		if r := int(radius) - t; r > 0 {
			midpointArc(canvas, cx, cy, r, startAngle, startAngle+sweep)
		}
	}
}

// midpointArc walks one octant with the midpoint circle algorithm and
// mirrors each step into the other seven, keeping points inside the arc.
func midpointArc(canvas *drawille.Canvas, cx, cy, radius int, startAngle, endAngle float64) {
	x, y, d := radius, 0, 1-radius

	for x >= y {
		for _, p := range [8][2]int{
			{cx + x, cy - y}, {cx + y, cy - x},
			{cx - y, cy - x}, {cx - x, cy - y},
			{cx - x, cy + y}, {cx - y, cy + x},
			{cx + y, cy + x}, {cx + x, cy + y},
		} {
			if inArc(cx, cy, p[0], p[1], startAngle, endAngle) {
				canvas.Set(p[0], p[1])
			}
		}

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// inArc handles arcs that wrap past 360, e.g. 270 through 630.
func inArc(cx, cy, px, py int, startAngle, endAngle float64) bool {
	angle := math.Atan2(float64(py-cy), float64(px-cx)) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	if endAngle > 360 {
		return angle >= startAngle || angle <= endAngle-360
	}
	return angle >= startAngle && angle <= endAngle
}

func drawFullArc(canvas *drawille.Canvas, centerX, centerY, radius float64) {
	drawArc(canvas, centerX, centerY, radius, arcStartAngle, arcSweep)
}

func drawFilledArc(canvas *drawille.Canvas, centerX, centerY, radius, fraction float64) {
	if fraction <= 0 {
		return
	}
	drawArc(canvas, centerX, centerY, radius, arcStartAngle, min(fraction, 1)*arcSweep)
}
