package profile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileDoc is the on-disk shape of a profiles file.
type fileDoc struct {
	Builders []Builder `yaml:"builders"`
}

// LoadFile reads a YAML profiles file. The file replaces the seed list; it is
// never written back.
func LoadFile(path string) ([]Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	return ParseFile(data)
}

// ParseFile decodes and checks the contents of a profiles file.
func ParseFile(data []byte) ([]Builder, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}

	seen := make(map[string]int, len(doc.Builders))
	for i, b := range doc.Builders {
		if strings.TrimSpace(b.ID) == "" {
			return nil, fmt.Errorf("profile %d: missing id", i+1)
		}
		if strings.TrimSpace(b.Name) == "" {
			return nil, fmt.Errorf("profile %q: %w", b.ID, ErrNameRequired)
		}
		if prev, dup := seen[b.ID]; dup {
			return nil, fmt.Errorf("profile %q: duplicate id (also entry %d)", b.ID, prev+1)
		}
		seen[b.ID] = i
	}
	return doc.Builders, nil
}

// MarshalFile encodes builders in the profiles file format.
func MarshalFile(builders []Builder) ([]byte, error) {
	data, err := yaml.Marshal(fileDoc{Builders: builders})
	if err != nil {
		return nil, fmt.Errorf("marshal profiles: %w", err)
	}
	return data, nil
}
