package internal

import (
	"sort"

	"github.com/umahmood/haversine"
)

type NearbyLocation struct {
	Country    string  `json:"country"`
	Abbr       string  `json:"abbr"`
	Full       string  `json:"full"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
	DistanceMi float64 `json:"distance_mi"`
}

// NearbyLocations orders every screening location by great-circle distance
// from (lat, lon). A limit of zero or less returns them all.
func NearbyLocations(locations []CountryLocations, lat, lon float64, limit int) []NearbyLocation {
	origin := haversine.Coord{Lat: lat, Lon: lon}

	var out []NearbyLocation

	for _, c := range locations {
		for _, l := range c.Locations {
			mi, km := haversine.Distance(origin, haversine.Coord{Lat: l.Latitude, Lon: l.Longitude})

			out = append(out, NearbyLocation{
				Country:    c.Country,
				Abbr:       l.Abbr,
				Full:       l.Full,
				Latitude:   l.Latitude,
				Longitude:  l.Longitude,
				DistanceKm: km,
				DistanceMi: mi,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}
