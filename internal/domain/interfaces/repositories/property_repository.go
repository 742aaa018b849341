// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/ochairo/buildcfg/internal/domain/entities"
)

// PropertyRepository loads developer-machine properties
type PropertyRepository interface {
	// Load reads the properties file at path; a missing file yields an empty map
	Load(ctx context.Context, path string) (*entities.PropertyMap, error)
}

// SettingsRepository loads project and plugin settings overrides
type SettingsRepository interface {
	// LoadProject returns project settings, applying overrides from path when it exists
	LoadProject(ctx context.Context, path string) (entities.ProjectSettings, error)

	// LoadPlugin returns plugin settings, applying overrides from path when it exists
	LoadPlugin(ctx context.Context, path string) (entities.PluginSettings, error)
}
