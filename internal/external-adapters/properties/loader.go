// Package properties loads Java-style .properties files into property maps.
package properties

import (
	"context"
	"fmt"
	"os"

	"github.com/magiconair/properties"

	"github.com/ochairo/buildcfg/internal/domain/entities"
)

// Loader implements repositories.PropertyRepository for local.properties files
type Loader struct {
	loader *properties.Loader
}

// NewLoader creates a UTF-8 loader with ${...} expansion disabled so values are taken literally
func NewLoader() *Loader {
	return &Loader{
		loader: &properties.Loader{
			Encoding:         properties.UTF8,
			DisableExpansion: true,
		},
	}
}

// Load reads the file at path. A missing file yields an empty map, not an error.
func (l *Loader) Load(_ context.Context, path string) (*entities.PropertyMap, error) {
	//nolint:gosec // G304: path is the developer's local.properties
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return entities.NewPropertyMap(path, false, nil), nil
		}
		return nil, fmt.Errorf("failed to read properties file %s: %w", path, err)
	}

	return l.Parse(path, data)
}

// Parse parses properties text; source is recorded on the returned map
func (l *Loader) Parse(source string, data []byte) (*entities.PropertyMap, error) {
	// A trailing backslash at EOF is dropped rather than treated as an open continuation.
	if n := len(data); n > 0 && data[n-1] != '\n' && data[n-1] != '\r' {
		data = append(data[:n:n], '\n')
	}

	p, err := l.loader.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse properties file %s: %w", source, err)
	}

	return entities.NewPropertyMap(source, true, p.Map()), nil
}
