package internal

import (
	"fmt"
	"sort"
)

// MapStyle configures one map visualization. Each call site picks its own
// domain, palette and tooltip policy.
type MapStyle struct {
	Name string
	// Overlay names the dataset overlay whose counts and aliases this style
	// draws from. Empty means the shared tables.
	Overlay string

	DomainMin float64
	DomainMax float64
	// DomainMaxFromData replaces DomainMax with the largest count.
	DomainMaxFromData bool

	From    string
	To      string
	Neutral string

	// TooltipUnresolved shows a tooltip (with a zero count) on shapes that do
	// not resolve; otherwise those shapes are inert.
	TooltipUnresolved bool
	// TooltipRawName titles tooltips with the boundary data's own name
	// instead of the canonical key.
	TooltipRawName bool

	FilterExcluded bool
	DrawMarkers    bool
	GradientLegend bool

	HoverBrighten float64
	HoverOpacity  float64
}

var VectorMapStyle = MapStyle{
	Name:           "vector",
	DomainMin:      1,
	DomainMax:      3,
	From:           "#aeeaf6",
	To:             "#00d8b3",
	Neutral:        "rgba(173,216,230,0.2)",
	FilterExcluded: true,
	DrawMarkers:    true,
	HoverBrighten:  0.2,
}

var ChoroplethMapStyle = MapStyle{
	Name:              "choropleth",
	Overlay:           "choropleth",
	DomainMin:         0.0001,
	DomainMaxFromData: true,
	From:              "#e6f7fb",
	To:                "#00d8b3",
	Neutral:           "rgba(173,216,230,0.05)",
	TooltipUnresolved: true,
	TooltipRawName:    true,
	GradientLegend:    true,
	HoverOpacity:      0.9,
}

func MapStyleByName(name string) (MapStyle, bool) {
	switch name {
	case "", VectorMapStyle.Name:
		return VectorMapStyle, true
	case ChoroplethMapStyle.Name:
		return ChoroplethMapStyle, true
	default:
		return MapStyle{}, false
	}
}

func (s MapStyle) Scale(counts *CountTable) (*LinearColorScale, error) {
	max := s.DomainMax

	if s.DomainMaxFromData {
		max = float64(counts.Max())
	}

	return NewLinearColorScale(s.DomainMin, max, s.From, s.To)
}

type Tooltip struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type StyledFeature struct {
	Name         string      `json:"name"`
	Key          string      `json:"key,omitempty"`
	Match        MatchKind   `json:"match"`
	Count        int         `json:"count"`
	Fill         string      `json:"fill"`
	HoverFill    string      `json:"hover_fill,omitempty"`
	HoverOpacity float64     `json:"hover_opacity,omitempty"`
	Interactive  bool        `json:"interactive"`
	Tooltip      *Tooltip    `json:"tooltip,omitempty"`
	Geometry     interface{} `json:"geometry"`
}

type LegendEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
	Color string `json:"color"`
	Label string `json:"label"`
}

type Gradient struct {
	From      string `json:"from"`
	To        string `json:"to"`
	LowLabel  string `json:"low_label"`
	HighLabel string `json:"high_label"`
}

type MarkerView struct {
	Key         string   `json:"key"`
	Longitude   float64  `json:"longitude"`
	Latitude    float64  `json:"latitude"`
	Radius      float64  `json:"radius"`
	HoverRadius float64  `json:"hover_radius"`
	Fill        string   `json:"fill"`
	HoverFill   string   `json:"hover_fill"`
	Tooltip     *Tooltip `json:"tooltip"`
}

type MapView struct {
	Style      string          `json:"style"`
	Features   []StyledFeature `json:"features"`
	Legend     []LegendEntry   `json:"legend,omitempty"`
	Gradient   *Gradient       `json:"gradient,omitempty"`
	Markers    []MarkerView    `json:"markers,omitempty"`
	Unresolved int             `json:"unresolved"`
}

func ScreeningsLabel(n int) string {
	if n == 1 {
		return "1 screening"
	}
	return fmt.Sprintf("%d screenings", n)
}

// BuildLegend lists every tracked key, highest count first. Ties keep table
// order.
func BuildLegend(counts *CountTable, scale *LinearColorScale) []LegendEntry {
	entries := counts.Entries()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	legend := make([]LegendEntry, 0, len(entries))

	for _, e := range entries {
		legend = append(legend, LegendEntry{
			Key:   e.Key,
			Count: e.Count,
			Color: scale.At(float64(e.Count)),
			Label: fmt.Sprintf("%s — %d", e.Key, e.Count),
		})
	}

	return legend
}

// RenderMap styles every feature of fc against the counts style draws from.
func RenderMap(fc *FeatureCollection, dataset *Dataset, style MapStyle, allowSuperset bool) (*MapView, error) {
	dataset = dataset.ForStyle(style)
	resolver := dataset.NewResolver(allowSuperset)

	scale, err := style.Scale(resolver.Counts())

	if err != nil {
		return nil, err
	}

	view := &MapView{
		Style:    style.Name,
		Features: make([]StyledFeature, 0, len(fc.Features)),
	}

	for _, f := range fc.Features {
		name, _ := f.Name().(string)

		if style.FilterExcluded && dataset.IsExcluded(name) {
			continue
		}

		m := resolver.ResolveValue(f.Name())

		sf := StyledFeature{
			Name:     name,
			Key:      m.Key,
			Match:    m.Kind,
			Fill:     style.Neutral,
			Geometry: f.Geometry,
		}

		if m.Found() {
			sf.Count, _ = resolver.Count(m.Key)
		} else {
			view.Unresolved++
		}

		// styles that tooltip every shape draw zero counts neutral
		colored := m.Found() && (sf.Count > 0 || !style.TooltipUnresolved)

		if colored {
			sf.Fill = scale.At(float64(sf.Count))
		}

		if m.Found() || style.TooltipUnresolved {
			sf.Interactive = true
			sf.HoverOpacity = style.HoverOpacity

			title := m.Key
			if style.TooltipRawName || !m.Found() {
				title = name
			}

			sf.Tooltip = &Tooltip{Title: title, Body: ScreeningsLabel(sf.Count)}
		}

		if colored && style.HoverBrighten != 0 {
			sf.HoverFill, err = Brighter(sf.Fill, style.HoverBrighten)

			if err != nil {
				return nil, err
			}
		}

		view.Features = append(view.Features, sf)
	}

	if style.GradientLegend {
		from, to := scale.Stops()
		view.Gradient = &Gradient{From: from, To: to, LowLabel: "Less", HighLabel: "More"}
	} else {
		view.Legend = BuildLegend(resolver.Counts(), scale)
	}

	if style.DrawMarkers {
		for _, mk := range dataset.Markers {
			count, ok := resolver.Count(mk.Key)

			if !ok {
				continue
			}

			fill := scale.At(float64(count))

			hover, err := Brighter(fill, style.HoverBrighten)

			if err != nil {
				return nil, err
			}

			view.Markers = append(view.Markers, MarkerView{
				Key:         mk.Key,
				Longitude:   mk.Longitude,
				Latitude:    mk.Latitude,
				Radius:      6,
				HoverRadius: 9,
				Fill:        fill,
				HoverFill:   hover,
				Tooltip:     &Tooltip{Title: mk.Key, Body: ScreeningsLabel(count)},
			})
		}
	}

	return view, nil
}
