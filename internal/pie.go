package internal

import (
	"fmt"
	"math"
	"strconv"
)

const (
	pieOuterRadius = 190
	pieHoverRadius = 206
)

type PieSlice struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Color      string  `json:"color"`
	HoverColor string  `json:"hover_color"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Path       string  `json:"path"`
	HoverPath  string  `json:"hover_path"`
	Tooltip    string  `json:"tooltip"`
	Legend     string  `json:"legend"`
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatCoord(v float64) string {
	// avoid "-0" in paths
	if math.Abs(v) < 1e-9 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// arcPath draws a filled wedge centred on the origin. Angles are radians
// clockwise from 12 o'clock.
func arcPath(start, end, radius float64) string {
	if end-start <= 0 {
		return ""
	}

	x0, y0 := radius*math.Sin(start), -radius*math.Cos(start)

	if end-start >= 2*math.Pi-1e-9 {
		// a full circle needs two half arcs
		return fmt.Sprintf("M%s,%sA%s,%s,0,1,1,%s,%sA%s,%s,0,1,1,%s,%sZ",
			formatCoord(x0), formatCoord(y0),
			formatCoord(radius), formatCoord(radius), formatCoord(-x0), formatCoord(-y0),
			formatCoord(radius), formatCoord(radius), formatCoord(x0), formatCoord(y0))
	}

	x1, y1 := radius*math.Sin(end), -radius*math.Cos(end)

	large := 0
	if end-start > math.Pi {
		large = 1
	}

	return fmt.Sprintf("M%s,%sA%s,%s,0,%d,1,%s,%sL0,0Z",
		formatCoord(x0), formatCoord(y0),
		formatCoord(radius), formatCoord(radius), large,
		formatCoord(x1), formatCoord(y1))
}

// BuildPie lays slices out in input order.
func BuildPie(areas []WorkArea) ([]PieSlice, error) {
	total := 0.0
	for _, a := range areas {
		total += a.Value
	}

	slices := make([]PieSlice, 0, len(areas))
	angle := 0.0

	for _, a := range areas {
		hover, err := HueShift(a.Color)

		if err != nil {
			return nil, fmt.Errorf("pie slice %q: %v", a.Label, err)
		}

		span := 0.0
		if total > 0 {
			span = a.Value / total * 2 * math.Pi
		}

		end := angle + span

		slices = append(slices, PieSlice{
			Label:      a.Label,
			Value:      a.Value,
			Color:      a.Color,
			HoverColor: hover,
			StartAngle: angle,
			EndAngle:   end,
			Path:       arcPath(angle, end, pieOuterRadius),
			HoverPath:  arcPath(angle, end, pieHoverRadius),
			Tooltip:    fmt.Sprintf("%s%% — %s", formatValue(a.Value), a.Label),
			Legend:     fmt.Sprintf("%s — %s%%", a.Label, formatValue(a.Value)),
		})

		angle = end
	}

	return slices, nil
}
