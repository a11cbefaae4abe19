// +build ignore

package main

import (
	"flag"
	"os"
	"text/template"
	"time"

	"github.com/screenmap/screenmap/internal"
	"github.com/sirupsen/logrus"
)

type overlayTables struct {
	Counts  []internal.CountEntry
	Aliases internal.AliasTable
}

func main() {
	log := logrus.StandardLogger()

	dir := flag.String("data", "./data", "dataset directory to compile in")
	target := flag.String("out", "./internal/static_dataset.go", "file to write")

	flag.Parse()

	dataset, err := internal.LoadDataset(*dir, log)

	if err != nil {
		log.WithError(err).Fatalf("Unable to load dataset from %s", *dir)
	}

	log.Infof("Writing to %s", *target)
	outputf, err := os.Create(*target)

	if err != nil {
		log.WithError(err).Fatalf("Unable to create %s", *target)
	}

	defer outputf.Close()

	overlays := make(map[string]overlayTables, len(dataset.Overlays))

	for name, o := range dataset.Overlays {
		overlays[name] = overlayTables{Counts: o.Counts.Entries(), Aliases: o.Aliases}
	}

	err = outputTemplate.Execute(outputf, struct {
		Timestamp time.Time
		Counts    []internal.CountEntry
		Aliases   internal.AliasTable
		Dataset   *internal.Dataset
		Overlays  map[string]overlayTables
	}{
		Timestamp: time.Now(),
		Counts:    dataset.Counts.Entries(),
		Aliases:   dataset.Aliases,
		Dataset:   dataset,
		Overlays:  overlays,
	})

	if err != nil {
		log.WithError(err).Fatal("Unable to render static dataset")
	}
}

var outputTemplate = template.Must(template.New("").Parse(`// Code generated; DO NOT EDIT.
// This file was generated at
// {{ .Timestamp }}
package internal

var staticCounts = []CountEntry{ {{range .Counts }}
	{Key: {{printf "%q" .Key}}, Count: {{.Count}}},{{end}}
}

var staticAliases = AliasTable{ {{range $key, $aliases := .Aliases }}
	{{printf "%q" $key}}: { {{range $aliases}}
		{Name: {{printf "%q" .Name}}, Superset: {{.Superset}}},{{end}}
	},{{end}}
}

var staticLocations = []CountryLocations{ {{range .Dataset.Locations }}
	{
		Country: {{printf "%q" .Country}},
		Flag:    {{printf "%q" .Flag}},
		Locations: []Location{ {{range .Locations}}
			{Abbr: {{printf "%q" .Abbr}}, Full: {{printf "%q" .Full}}, Latitude: {{printf "%.4f" .Latitude}}, Longitude: {{printf "%.4f" .Longitude}}},{{end}}
		},
	},{{end}}
}

var staticMarkers = []Marker{ {{range .Dataset.Markers }}
	{Key: {{printf "%q" .Key}}, Longitude: {{printf "%.4f" .Longitude}}, Latitude: {{printf "%.4f" .Latitude}}},{{end}}
}

var staticWorkAreas = []WorkArea{ {{range .Dataset.WorkAreas }}
	{Label: {{printf "%q" .Label}}, Value: {{.Value}}, Color: {{printf "%q" .Color}}},{{end}}
}

var staticExcluded = []string{ {{range .Dataset.Excluded }}
	{{printf "%q" .}},{{end}}
}

var staticOverlays = map[string]staticOverlay{ {{range $name, $o := .Overlays }}
	{{printf "%q" $name}}: {
		counts: []CountEntry{ {{range $o.Counts }}
			{Key: {{printf "%q" .Key}}, Count: {{.Count}}},{{end}}
		},
		aliases: AliasTable{ {{range $key, $aliases := $o.Aliases }}
			{{printf "%q" $key}}: { {{range $aliases}}
				{Name: {{printf "%q" .Name}}, Superset: {{.Superset}}},{{end}}
			},{{end}}
		},
	},{{end}}
}
`))
