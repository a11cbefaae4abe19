package internal

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPie(t *testing.T) {
	slices, err := BuildPie(DefaultDataset().WorkAreas)
	require.NoError(t, err)
	require.Len(t, slices, 6)

	first := slices[0]
	assert.Equal(t, "Motion Graphics", first.Label)
	assert.Equal(t, 0.0, first.StartAngle)
	assert.InDelta(t, 0.3*2*math.Pi, first.EndAngle, 1e-9)
	assert.Equal(t, "30% — Motion Graphics", first.Tooltip)
	assert.Equal(t, "Motion Graphics — 30%", first.Legend)
	assert.True(t, strings.HasPrefix(first.Path, "M0.000,-190.000A190.000,190.000,0,0,1,"), first.Path)
	assert.True(t, strings.HasPrefix(first.HoverPath, "M0.000,-206.000A206.000,206.000,0,0,1,"), first.HoverPath)
	assert.NotEqual(t, first.Color, first.HoverColor)

	for i := 1; i < len(slices); i++ {
		assert.Equal(t, slices[i-1].EndAngle, slices[i].StartAngle, "slices are contiguous")
	}

	assert.InDelta(t, 2*math.Pi, slices[len(slices)-1].EndAngle, 1e-9)
	assert.Equal(t, "Visual Effects", slices[5].Label, "input order is kept")
}

func TestBuildPieLargeArcFlag(t *testing.T) {
	slices, err := BuildPie([]WorkArea{
		{Label: "Editing", Value: 3, Color: "#ffcc00"},
		{Label: "Directing", Value: 1, Color: "#ff5733"},
	})
	require.NoError(t, err)

	assert.Contains(t, slices[0].Path, ",0,1,1,")
	assert.Contains(t, slices[1].Path, ",0,0,1,")
}

func TestBuildPieSingleSliceIsFullCircle(t *testing.T) {
	slices, err := BuildPie([]WorkArea{{Label: "Editing", Value: 100, Color: "#ffcc00"}})
	require.NoError(t, err)

	assert.Equal(t, "M0.000,-190.000A190.000,190.000,0,1,1,0.000,190.000A190.000,190.000,0,1,1,0.000,-190.000Z", slices[0].Path)
	assert.Equal(t, "100% — Editing", slices[0].Tooltip)
}

func TestBuildPieZeroValues(t *testing.T) {
	slices, err := BuildPie([]WorkArea{{Label: "Editing", Value: 0, Color: "#ffcc00"}})
	require.NoError(t, err)

	assert.Equal(t, "", slices[0].Path)
	assert.Equal(t, "0% — Editing", slices[0].Tooltip)
}

func TestBuildPieBadColor(t *testing.T) {
	_, err := BuildPie([]WorkArea{{Label: "Editing", Value: 1, Color: "gold"}})
	assert.Error(t, err)
}
