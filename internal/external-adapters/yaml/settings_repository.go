package yaml

import (
	"context"
	"os"

	"github.com/ochairo/buildcfg/internal/domain/entities"
)

// SettingsRepository implements repositories.SettingsRepository using YAML files
type SettingsRepository struct {
	parser *SettingsParser
}

// NewSettingsRepository creates a new YAML-based settings repository
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{
		parser: NewSettingsParser(),
	}
}

// LoadProject returns the default project settings, overridden by path when it exists
func (r *SettingsRepository) LoadProject(_ context.Context, path string) (entities.ProjectSettings, error) {
	if !fileExists(path) {
		return entities.DefaultProjectSettings(), nil
	}
	return r.parser.ParseProjectFile(path)
}

// LoadPlugin returns the Flutter plugin defaults, overridden by path when it exists
func (r *SettingsRepository) LoadPlugin(_ context.Context, path string) (entities.PluginSettings, error) {
	if !fileExists(path) {
		return entities.DefaultPluginSettings(), nil
	}
	return r.parser.ParsePluginFile(path)
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
