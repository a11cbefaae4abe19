package internal

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTsvParserKeepsOrderWithOneRoutine(t *testing.T) {
	p := NewTsvParser(&TsvParserOptions{Logger: quietLogger(), Routines: 1})

	var rows [][]string

	err := p.Run("test", strings.NewReader("# header\na\tb\r\n\n  \nc\td\te\n"), func(row []string) {
		rows = append(rows, row)
	})
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d", "e"}}, rows)
}

func TestTsvParserManyRoutines(t *testing.T) {
	p := NewTsvParser(&TsvParserOptions{Logger: quietLogger(), Routines: 5})

	var mu sync.Mutex
	seen := 0

	err := p.Run("test", strings.NewReader(strings.Repeat("x\ty\n", 100)), func(row []string) {
		mu.Lock()
		seen++
		mu.Unlock()
	})
	require.NoError(t, err)

	assert.Equal(t, 100, seen)
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestTsvParserReportsReadErrors(t *testing.T) {
	p := NewTsvParser(&TsvParserOptions{})

	err := p.Run("broken", failingReader{}, func(row []string) {})
	assert.EqualError(t, err, "disk on fire")
}

func TestTsvParserLineNumbersCountSkippedLines(t *testing.T) {
	p := NewTsvParser(&TsvParserOptions{Logger: quietLogger()})

	var lines []int

	err := p.RunLines("test", strings.NewReader("# header\na\tb\n\n# note\nc\td\n"), func(line int, cols []string) {
		lines = append(lines, line)
	})
	require.NoError(t, err)

	assert.Equal(t, []int{2, 5}, lines)
}
