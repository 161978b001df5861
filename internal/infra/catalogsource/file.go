package catalogsource

import (
	"context"
	"fmt"
	"os"

	"github.com/wvwild/adventure-hub/internal/domain/adventure"
)

// FileSource reads the catalog from a YAML or JSON file on disk.
type FileSource struct {
	path string
}

// NewFileSource constructs the source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load implements adventure.Source.
func (s *FileSource) Load(_ context.Context) ([]adventure.Adventure, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Decode(s.path, data)
}

var _ adventure.Source = (*FileSource)(nil)
