// internal/report/radar.go
package report

import (
	"fmt"
	"math"
	"strings"
)

// RadialMax is the fixed outer bound of every radar chart so that areas stay
// comparable across models.
const RadialMax = 5

// RadarChart is a closed polar polygon over the criteria of one model.
type RadarChart struct {
	Model string `json:"model"`
	// Theta and R repeat their first element at the end to close the loop.
	Theta       []string `json:"theta"`
	R           []int    `json:"r"`
	RadialRange [2]int   `json:"radialRange"`
	Color       Color    `json:"color"`
}

// NewRadarChart builds the closed polygon for the given ordered scores.
func NewRadarChart(model string, criteria []string, scores []int, color Color) (RadarChart, error) {
	if len(criteria) == 0 {
		return RadarChart{}, fmt.Errorf("radar chart for %q needs at least one criterion", model)
	}
	if len(criteria) != len(scores) {
		return RadarChart{}, fmt.Errorf("radar chart for %q: %d criteria but %d scores", model, len(criteria), len(scores))
	}

	theta := make([]string, 0, len(criteria)+1)
	theta = append(theta, criteria...)
	theta = append(theta, criteria[0])

	r := make([]int, 0, len(scores)+1)
	r = append(r, scores...)
	r = append(r, scores[0])

	return RadarChart{
		Model:       model,
		Theta:       theta,
		R:           r,
		RadialRange: [2]int{0, RadialMax},
		Color:       color,
	}, nil
}

// Axes returns the number of distinct axes (the open sequence length).
func (c RadarChart) Axes() int {
	if len(c.R) == 0 {
		return 0
	}
	return len(c.R) - 1
}

// point is an SVG coordinate.
type point struct {
	X float64
	Y float64
}

func (p point) String() string {
	return fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
}

// chartGeometry holds the SVG drawing of a radar chart.
type chartGeometry struct {
	Size    int
	Center  point
	Rings   []string
	Spokes  []point
	Labels  []axisLabel
	Polygon string
	Markers []point
}

type axisLabel struct {
	At     point
	Text   string
	Anchor string
}

// geometry projects the chart onto a square canvas of the given size. Axis 0
// points straight up and axes advance clockwise.
func (c RadarChart) geometry(size int) chartGeometry {
	axes := c.Axes()
	center := point{X: float64(size) / 2, Y: float64(size) / 2}
	radius := float64(size) * 0.32
	g := chartGeometry{Size: size, Center: center}
	if axes == 0 {
		return g
	}

	at := func(axis int, value float64) point {
		angle := -math.Pi/2 + 2*math.Pi*float64(axis)/float64(axes)
		scale := radius * value / float64(c.RadialRange[1]-c.RadialRange[0])
		return point{X: center.X + scale*math.Cos(angle), Y: center.Y + scale*math.Sin(angle)}
	}

	for ring := 1; ring <= c.RadialRange[1]; ring++ {
		pts := make([]string, 0, axes)
		for axis := 0; axis < axes; axis++ {
			pts = append(pts, at(axis, float64(ring)).String())
		}
		g.Rings = append(g.Rings, strings.Join(pts, " "))
	}

	labelRadius := float64(c.RadialRange[1]) * 1.18
	for axis := 0; axis < axes; axis++ {
		g.Spokes = append(g.Spokes, at(axis, float64(c.RadialRange[1])))
		lp := at(axis, labelRadius)
		anchor := "middle"
		switch {
		case lp.X < center.X-1:
			anchor = "end"
		case lp.X > center.X+1:
			anchor = "start"
		}
		g.Labels = append(g.Labels, axisLabel{At: lp, Text: c.Theta[axis], Anchor: anchor})
	}

	pts := make([]string, 0, len(c.R))
	for i, v := range c.R {
		p := at(i%axes, float64(v))
		pts = append(pts, p.String())
		if i < axes {
			g.Markers = append(g.Markers, p)
		}
	}
	g.Polygon = strings.Join(pts, " ")
	return g
}
