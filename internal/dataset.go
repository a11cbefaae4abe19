package internal

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"
)

type Location struct {
	Abbr      string  `json:"abbr"`
	Full      string  `json:"full"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CountryLocations struct {
	Country   string     `json:"country"`
	Flag      string     `json:"flag"`
	Locations []Location `json:"locations"`
}

// Marker is a point drawn on top of the map for places too small to see as a
// polygon.
type Marker struct {
	Key       string  `json:"key"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type WorkArea struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// Overlay replaces the shared counts and aliases for the map styles that name
// it.
type Overlay struct {
	Counts  *CountTable
	Aliases AliasTable
}

// Dataset is the static configuration behind every view. It is never mutated
// once loaded.
type Dataset struct {
	Counts    *CountTable
	Aliases   AliasTable
	Locations []CountryLocations
	Markers   []Marker
	WorkAreas []WorkArea
	Excluded  []string
	Overlays  map[string]*Overlay
}

// ForStyle returns the dataset as style sees it: d itself, or a copy whose
// counts and aliases come from the style's overlay.
func (d *Dataset) ForStyle(style MapStyle) *Dataset {
	o, ok := d.Overlays[style.Overlay]

	if style.Overlay == "" || !ok {
		return d
	}

	view := *d
	view.Counts = o.Counts
	view.Aliases = o.Aliases

	return &view
}

func (d *Dataset) NewResolver(allowSuperset bool) *Resolver {
	return NewResolver(&ResolverOptions{
		Counts:        d.Counts,
		Aliases:       d.Aliases,
		AllowSuperset: allowSuperset,
	})
}

func (d *Dataset) IsExcluded(name string) bool {
	for _, e := range d.Excluded {
		if e == name {
			return true
		}
	}
	return false
}

const (
	countsFile    = "counts.tsv"
	aliasesFile   = "aliases.tsv"
	locationsFile = "locations.tsv"
	markersFile   = "markers.tsv"
	workAreasFile = "work_areas.tsv"
	excludedFile  = "excluded.tsv"
)

type datasetLoader struct {
	dir    string
	parser *tsvParser
	log    *logrus.Logger
}

// each reads one TSV file row by row, stopping at the first row error.
func (l *datasetLoader) each(name string, required bool, fields int, fn func(row []string) error) error {
	path := filepath.Join(l.dir, name)

	file, err := os.Open(path)

	if err != nil {
		if os.IsNotExist(err) && !required {
			l.log.WithField("file", path).Debug("optional dataset file missing, skipping")
			return nil
		}
		return err
	}

	defer file.Close()

	var rowErr error

	err = l.parser.RunLines(path, file, func(line int, cols []string) {
		if rowErr != nil {
			return
		}

		if len(cols) < fields {
			rowErr = fmt.Errorf("%s line %d: want at least %d columns, got %d", name, line, fields, len(cols))
			return
		}

		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}

		if err := fn(cols); err != nil {
			rowErr = fmt.Errorf("%s line %d: %v", name, line, err)
		}
	})

	if err != nil {
		return fmt.Errorf("reading %s: %v", path, err)
	}

	return rowErr
}

func parseCoordinates(lat, lon string) (float64, float64, error) {
	latitude, err := strconv.ParseFloat(lat, 64)

	if err != nil || latitude < -90 || latitude > 90 {
		return 0, 0, fmt.Errorf("invalid latitude %q", lat)
	}

	longitude, err := strconv.ParseFloat(lon, 64)

	if err != nil || longitude < -180 || longitude > 180 {
		return 0, 0, fmt.Errorf("invalid longitude %q", lon)
	}

	return latitude, longitude, nil
}

// tables reads the counts and aliases of l.dir.
func (l *datasetLoader) tables() (*CountTable, AliasTable, error) {
	var entries []CountEntry

	err := l.each(countsFile, true, 2, func(row []string) error {
		count, err := strconv.Atoi(row[1])

		if err != nil {
			return fmt.Errorf("count for %q is not an integer: %q", row[0], row[1])
		}

		entries = append(entries, CountEntry{Key: row[0], Count: count})
		return nil
	})

	if err != nil {
		return nil, nil, err
	}

	counts, err := NewCountTable(entries...)

	if err != nil {
		return nil, nil, fmt.Errorf("%s: %v", filepath.Join(l.dir, countsFile), err)
	}

	aliases := make(AliasTable)

	err = l.each(aliasesFile, false, 2, func(row []string) error {
		if row[1] == "" {
			return fmt.Errorf("empty alias for %q", row[0])
		}

		alias := Alias{Name: row[1]}

		if len(row) > 2 {
			switch row[2] {
			case "", "exact":
			case "superset":
				alias.Superset = true
			default:
				return fmt.Errorf("unknown alias mode %q", row[2])
			}
		}

		if !counts.Has(row[0]) {
			l.log.WithFields(logrus.Fields{"key": row[0], "alias": row[1]}).Warn("alias for a key without a count will never match")
		}

		aliases[row[0]] = append(aliases[row[0]], alias)
		return nil
	})

	if err != nil {
		return nil, nil, err
	}

	return counts, aliases, nil
}

// overlays loads every subdirectory of l.dir that has its own counts.tsv.
func (l *datasetLoader) overlays(d *Dataset) error {
	infos, err := ioutil.ReadDir(l.dir)

	if err != nil {
		return err
	}

	for _, info := range infos {
		if !info.IsDir() {
			continue
		}

		sub := &datasetLoader{dir: filepath.Join(l.dir, info.Name()), parser: l.parser, log: l.log}

		if _, err := os.Stat(filepath.Join(sub.dir, countsFile)); os.IsNotExist(err) {
			continue
		}

		counts, aliases, err := sub.tables()

		if err != nil {
			return fmt.Errorf("overlay %s: %v", info.Name(), err)
		}

		d.Overlays[info.Name()] = &Overlay{Counts: counts, Aliases: aliases}
	}

	return nil
}

// LoadDataset reads a dataset directory. Only counts.tsv is required.
// Subdirectories with their own counts.tsv become overlays named after the
// subdirectory.
func LoadDataset(dir string, log *logrus.Logger) (*Dataset, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	l := &datasetLoader{
		dir: dir,
		log: log,
		parser: NewTsvParser(&TsvParserOptions{
			Logger:   log,
			Routines: 1,
		}),
	}

	counts, aliases, err := l.tables()

	if err != nil {
		return nil, err
	}

	d := &Dataset{
		Counts:   counts,
		Aliases:  aliases,
		Overlays: make(map[string]*Overlay),
	}

	groups := make(map[string]int)

	err = l.each(locationsFile, false, 6, func(row []string) error {
		lat, lon, err := parseCoordinates(row[4], row[5])

		if err != nil {
			return err
		}

		i, ok := groups[row[0]]

		if !ok {
			i = len(d.Locations)
			groups[row[0]] = i
			d.Locations = append(d.Locations, CountryLocations{Country: row[0], Flag: row[1]})
		}

		d.Locations[i].Locations = append(d.Locations[i].Locations, Location{
			Abbr:      row[2],
			Full:      row[3],
			Latitude:  lat,
			Longitude: lon,
		})
		return nil
	})

	if err != nil {
		return nil, err
	}

	err = l.each(markersFile, false, 3, func(row []string) error {
		lat, lon, err := parseCoordinates(row[2], row[1])

		if err != nil {
			return err
		}

		d.Markers = append(d.Markers, Marker{Key: row[0], Longitude: lon, Latitude: lat})
		return nil
	})

	if err != nil {
		return nil, err
	}

	err = l.each(workAreasFile, false, 3, func(row []string) error {
		value, err := strconv.ParseFloat(row[1], 64)

		if err != nil || value < 0 {
			return fmt.Errorf("invalid value %q for %q", row[1], row[0])
		}

		if _, err := colorful.Hex(row[2]); err != nil {
			return fmt.Errorf("invalid color %q for %q", row[2], row[0])
		}

		d.WorkAreas = append(d.WorkAreas, WorkArea{Label: row[0], Value: value, Color: row[2]})
		return nil
	})

	if err != nil {
		return nil, err
	}

	err = l.each(excludedFile, false, 1, func(row []string) error {
		d.Excluded = append(d.Excluded, row[0])
		return nil
	})

	if err != nil {
		return nil, err
	}

	if err := l.overlays(d); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"dir":       dir,
		"overlays":  len(d.Overlays),
		"keys":      counts.Len(),
		"locations": len(d.Locations),
		"workAreas": len(d.WorkAreas),
	}).Info("Loaded dataset")

	return d, nil
}

type staticOverlay struct {
	counts  []CountEntry
	aliases AliasTable
}

func copyAliases(src AliasTable) AliasTable {
	dst := make(AliasTable, len(src))

	for key, list := range src {
		dst[key] = append([]Alias(nil), list...)
	}

	return dst
}

// DefaultDataset returns the dataset compiled in from ./data. Every call gets
// its own copy.
func DefaultDataset() *Dataset {
	counts, err := NewCountTable(staticCounts...)

	if err != nil {
		panic(err)
	}

	d := &Dataset{
		Counts:    counts,
		Aliases:   copyAliases(staticAliases),
		Markers:   append([]Marker(nil), staticMarkers...),
		WorkAreas: append([]WorkArea(nil), staticWorkAreas...),
		Excluded:  append([]string(nil), staticExcluded...),
		Overlays:  make(map[string]*Overlay, len(staticOverlays)),
	}

	for _, group := range staticLocations {
		group.Locations = append([]Location(nil), group.Locations...)
		d.Locations = append(d.Locations, group)
	}

	for name, o := range staticOverlays {
		counts, err := NewCountTable(o.counts...)

		if err != nil {
			panic(err)
		}

		d.Overlays[name] = &Overlay{Counts: counts, Aliases: copyAliases(o.aliases)}
	}

	return d
}
