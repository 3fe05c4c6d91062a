package application

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/dscfwd/internal/domain"
)

// ParseParams reads a comma or whitespace separated parameter vector.
func ParseParams(raw string) ([]float64, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty parameter vector", domain.ErrParamCount)
	}

	out := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("parse parameter %q: %w", field, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// ParseParamsBatch reads one parameter vector per non-blank line; lines
// starting with '#' are comments.
func ParseParamsBatch(raw string) ([][]float64, error) {
	var batch [][]float64
	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		vec, err := ParseParams(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		batch = append(batch, vec)
	}

	return batch, nil
}
