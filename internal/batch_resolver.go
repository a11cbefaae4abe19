package internal

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

type batchResolver struct {
	resolver *Resolver
	parser   *tsvParser
	log      *logrus.Logger

	mu  sync.Mutex
	out io.Writer
}

type BatchStats struct {
	Matched uint64
	Missed  uint64
}

// Run resolves the first column of every row read from in and writes
// "raw<TAB>key<TAB>kind" lines. With more than one routine the output order is
// not the input order. Stats cover this call only.
func (b *batchResolver) Run(in io.Reader) (BatchStats, error) {
	start := time.Now()

	matched := atomic.NewUint64(0)
	missed := atomic.NewUint64(0)

	var writeErr error

	err := b.parser.Run("stdin", in, func(row []string) {
		m := b.resolver.Lookup(row[0])

		if m.Found() {
			matched.Inc()
		} else {
			missed.Inc()

			b.log.WithField("name", row[0]).Debug("no match")
		}

		b.mu.Lock()
		defer b.mu.Unlock()

		if writeErr != nil {
			return
		}

		_, writeErr = fmt.Fprintf(b.out, "%s\t%s\t%s\n", row[0], m.Key, m.Kind)
	})

	stats := BatchStats{Matched: matched.Load(), Missed: missed.Load()}

	if err == nil {
		err = writeErr
	}

	b.log.WithFields(logrus.Fields{
		"matched": stats.Matched,
		"missed":  stats.Missed,
	}).Infof("Resolving took %s", time.Since(start))

	return stats, err
}

type BatchResolverOptions struct {
	Resolver *Resolver
	Routines int
	Output   io.Writer
	Logger   *logrus.Logger
}

func NewBatchResolver(options *BatchResolverOptions) *batchResolver {
	b := &batchResolver{}

	b.resolver = options.Resolver

	b.log = options.Logger

	if b.log == nil {
		b.log = logrus.StandardLogger()
	}

	b.parser = NewTsvParser(&TsvParserOptions{
		Logger:   b.log,
		Routines: options.Routines,
	})

	b.out = options.Output

	return b
}
