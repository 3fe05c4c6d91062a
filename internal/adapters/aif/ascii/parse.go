// Package ascii reads arterial signals stored as ASCII column vectors.
package ascii

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrNotColumnVector = errors.New("ascii matrix is not a vector")

// maxLineBytes bounds a single row; row vectors of long scans can be wide.
const maxLineBytes = 16 << 20

// Parse reads a whitespace or comma separated matrix and returns it as a
// vector. A single row is accepted as well as a single column. Blank lines
// and lines starting with '#' are skipped.
func Parse(r io.Reader) ([]float64, error) {
	var (
		values []float64
		rows   int
		cols   int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if rows == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("line %d: expected %d columns, got %d", line, cols, len(fields))
		}
		rows++

		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: parse %q: %w", line, field, err)
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ascii matrix: %w", err)
	}

	if rows == 0 {
		return nil, errors.New("ascii matrix is empty")
	}
	if rows > 1 && cols > 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotColumnVector, rows, cols)
	}

	return values, nil
}
