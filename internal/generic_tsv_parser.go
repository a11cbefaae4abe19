package internal

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type tsvParser struct {
	log      *logrus.Logger
	routines int
}

type tsvRow struct {
	line int
	cols []string
}

func (p *tsvParser) read(from io.Reader, output chan tsvRow) error {
	defer close(output)

	scanner := bufio.NewScanner(from)
	n := 0

	for scanner.Scan() {
		n++
		line := strings.TrimRight(scanner.Text(), "\r")

		// Skip comment and blank lines
		if strings.Index(line, "#") == 0 || strings.TrimSpace(line) == "" {
			p.log.Debug("Skip line ", line)
			continue
		}

		output <- tsvRow{line: n, cols: strings.Split(line, "\t")}
	}

	return scanner.Err()
}

// Run feeds every row of from to runner. With a single routine rows arrive in
// file order.
func (p *tsvParser) Run(name string, from io.Reader, runner func([]string)) error {
	return p.RunLines(name, from, func(_ int, cols []string) {
		runner(cols)
	})
}

// RunLines is Run with the 1-based line number of each row in from, counting
// the skipped comment and blank lines.
func (p *tsvParser) RunLines(name string, from io.Reader, runner func(line int, cols []string)) error {
	start := time.Now()

	output := make(chan tsvRow)
	readErr := make(chan error, 1)

	go func() {
		readErr <- p.read(from, output)
	}()

	done := make(chan int)

	for id := 0; id < p.routines; id++ {
		go func(id int) {
			for row := range output {
				runner(row.line, row.cols)
			}

			done <- id
		}(id)
	}

	for finished := 0; finished < p.routines; finished++ {
		<-done
	}

	p.log.Debugf("Parsing %s took %s", name, time.Since(start))

	return <-readErr
}

type TsvParserOptions struct {
	Logger   *logrus.Logger
	Routines int
}

func NewTsvParser(options *TsvParserOptions) *tsvParser {
	parser := &tsvParser{}

	parser.log = options.Logger

	if parser.log == nil {
		parser.log = logrus.StandardLogger()
	}

	parser.routines = options.Routines

	if parser.routines < 1 {
		parser.routines = 1
	}

	return parser
}
