package internal

import (
	"sort"
)

type CartogramCircle struct {
	Label   string `json:"label"`
	Tooltip string `json:"tooltip"`
}

type CartogramGroup struct {
	Country string            `json:"country"`
	Flag    string            `json:"flag"`
	Tooltip string            `json:"tooltip"`
	Count   int               `json:"count"`
	Circles []CartogramCircle `json:"circles"`
}

// BuildCartogram groups screening locations by country, most locations first.
// Countries with equal counts keep dataset order.
func BuildCartogram(locations []CountryLocations) []CartogramGroup {
	groups := make([]CartogramGroup, 0, len(locations))

	for _, c := range locations {
		g := CartogramGroup{
			Country: c.Country,
			Flag:    c.Flag,
			Tooltip: c.Country,
			Count:   len(c.Locations),
			Circles: make([]CartogramCircle, 0, len(c.Locations)),
		}

		for _, l := range c.Locations {
			g.Circles = append(g.Circles, CartogramCircle{Label: l.Abbr, Tooltip: l.Full})
		}

		groups = append(groups, g)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})

	return groups
}
