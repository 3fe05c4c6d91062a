package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/dscfwd/internal/adapters/aif/ascii"
	"github.com/bnema/dscfwd/internal/ports"
)

const scheme = "file://"

type Source struct {
	root string
}

var _ ports.AIFSource = (*Source)(nil)

// NewSource resolves relative references against root. An empty root means
// the working directory.
func NewSource(root string) *Source {
	return &Source{root: root}
}

func (s *Source) Load(ctx context.Context, ref string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.pathForRef(ref)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("arterial signal file %q not found: %w", path, err)
		}
		return nil, fmt.Errorf("open arterial signal file %q: %w", path, err)
	}
	defer f.Close()

	values, err := ascii.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse arterial signal file %q: %w", path, err)
	}

	return values, nil
}

func (s *Source) pathForRef(ref string) (string, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(ref), scheme)
	if trimmed == "" {
		return "", errors.New("arterial signal path is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) || s.root == "" {
		return cleaned, nil
	}

	return filepath.Join(s.root, cleaned), nil
}
