package main

import (
	"bufio"
	"flag"
	"os"

	"github.com/screenmap/screenmap/internal"
	"github.com/sirupsen/logrus"
)

func main() {
	datasetDir := flag.String("dataset", "", "directory of dataset TSV files; the compiled-in dataset is used when empty")
	superset := flag.Bool("superset", false, "let parent territories resolve to regions they contain")
	routines := flag.Int("routines", 4, "number of resolving goroutines")

	flag.Parse()

	l := logrus.StandardLogger()

	l.SetOutput(os.Stderr)

	dataset := internal.DefaultDataset()

	if *datasetDir != "" {
		var err error
		dataset, err = internal.LoadDataset(*datasetDir, l)

		if err != nil {
			l.WithError(err).Fatalf("Unable to load dataset from %s", *datasetDir)
		}
	}

	out := bufio.NewWriter(os.Stdout)

	batch := internal.NewBatchResolver(&internal.BatchResolverOptions{
		Resolver: dataset.NewResolver(*superset),
		Routines: *routines,
		Output:   out,
		Logger:   l,
	})

	_, err := batch.Run(os.Stdin)

	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}

	if err != nil {
		l.WithError(err).Fatal("Resolving failed")
	}
}
