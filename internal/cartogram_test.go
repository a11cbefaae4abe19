package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCartogramOrder(t *testing.T) {
	groups := BuildCartogram(DefaultDataset().Locations)

	require.Len(t, groups, 8)

	var order []string
	for _, g := range groups {
		order = append(order, g.Country)
	}

	assert.Equal(t, []string{
		"Germany", "United Kingdom", "Hong Kong", "United States",
		"Italy", "Iceland", "Mexico", "Pakistan",
	}, order)

	hk := groups[2]
	assert.Equal(t, "🇭🇰", hk.Flag)
	assert.Equal(t, "Hong Kong", hk.Tooltip)
	assert.Equal(t, 3, hk.Count)
	assert.Equal(t, CartogramCircle{Label: "CLK", Tooltip: "Clockenflap"}, hk.Circles[1])
}

func TestBuildCartogramSortsByLocationCount(t *testing.T) {
	groups := BuildCartogram([]CountryLocations{
		{Country: "Italy", Locations: []Location{{Abbr: "ROM"}}},
		{Country: "Iceland", Locations: []Location{{Abbr: "HVE"}}},
		{Country: "United States", Locations: []Location{{Abbr: "DEN"}, {Abbr: "NYC"}}},
	})

	require.Len(t, groups, 3)
	assert.Equal(t, "United States", groups[0].Country)
	assert.Equal(t, "Italy", groups[1].Country)
	assert.Equal(t, "Iceland", groups[2].Country)
}

func TestBuildCartogramEmpty(t *testing.T) {
	assert.Empty(t, BuildCartogram(nil))
}
