package catalogsource

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wvwild/adventure-hub/internal/domain/adventure"
)

// document is the on-disk layout of a catalog file.
type document struct {
	Adventures []adventure.Adventure `json:"adventures" yaml:"adventures"`
}

// Decode parses a catalog document, choosing the codec from the file name.
// Names ending in .json use JSON, everything else is read as YAML.
func Decode(name string, data []byte) ([]adventure.Adventure, error) {
	var doc document
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", name, err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", name, err)
		}
	}
	return doc.Adventures, nil
}
