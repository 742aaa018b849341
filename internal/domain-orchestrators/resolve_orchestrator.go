// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"time"

	"github.com/ochairo/buildcfg/internal/domain/entities"
	"github.com/ochairo/buildcfg/internal/domain/interfaces"
	"github.com/ochairo/buildcfg/internal/domain/interfaces/repositories"
	"github.com/ochairo/buildcfg/internal/domain/services"
)

// ResolveConfig holds the input locations for one resolution
type ResolveConfig struct {
	PropertiesPath string // local.properties, optional on disk
	AppDir         string // Base for relative keystore paths
	ProjectPath    string // Optional YAML project overrides
	PluginPath     string // Optional YAML plugin overrides
}

// ResolveResult contains the outcome of a resolution
type ResolveResult struct {
	Descriptor *entities.BuildDescriptor
	Warnings   []string
	Duration   time.Duration
}

// ResolveOrchestrator is the build configuration resolver: it loads the
// properties and settings, then assembles the build descriptor in a single pass
type ResolveOrchestrator struct {
	propsRepo    repositories.PropertyRepository
	settingsRepo repositories.SettingsRepository
	service      *services.ConfigService
	logger       interfaces.Logger
	config       ResolveConfig
}

// NewResolveOrchestrator creates a new resolve orchestrator
func NewResolveOrchestrator(
	propsRepo repositories.PropertyRepository,
	settingsRepo repositories.SettingsRepository,
	config ResolveConfig,
	logger interfaces.Logger,
) *ResolveOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	if config.PropertiesPath == "" {
		config.PropertiesPath = "local.properties"
	}
	if config.AppDir == "" {
		config.AppDir = "app"
	}

	return &ResolveOrchestrator{
		propsRepo:    propsRepo,
		settingsRepo: settingsRepo,
		service:      services.NewConfigService(),
		logger:       logger,
		config:       config,
	}
}

// Resolve produces the build descriptor. Errors are fatal configuration errors.
func (o *ResolveOrchestrator) Resolve(ctx context.Context) (*ResolveResult, error) {
	startTime := time.Now()
	result := &ResolveResult{}

	// Step 1: Load properties (absent file is fine)
	props, err := o.propsRepo.Load(ctx, o.config.PropertiesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}
	if props == nil {
		props = entities.NewPropertyMap(o.config.PropertiesPath, false, nil)
	}
	if props.Exists {
		o.logger.Debug("loaded properties",
			interfaces.F("path", props.Source),
			interfaces.F("count", props.Len()),
			interfaces.F("keys", props.Keys()))
	} else {
		o.logger.Debug("properties file not found, using defaults", interfaces.F("path", props.Source))
	}

	// Step 2: Load project and plugin settings
	project, err := o.settingsRepo.LoadProject(ctx, o.config.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load project settings: %w", err)
	}
	plugin, err := o.settingsRepo.LoadPlugin(ctx, o.config.PluginPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load plugin settings: %w", err)
	}

	// Step 3: Resolve version, signing and variants
	descriptor, err := o.service.BuildDescriptor(services.DescriptorInput{
		Properties: props,
		Project:    project,
		Plugin:     plugin,
		AppDir:     o.config.AppDir,
	})
	if err != nil {
		o.logger.Error("configuration resolution failed", interfaces.F("error", err))
		return nil, err
	}
	result.Descriptor = descriptor

	// Signing problems surface in the packaging toolchain, not here
	if release, ok := descriptor.SigningConfig(entities.SigningRelease); ok && !release.HasStoreFile() {
		msg := fmt.Sprintf("%s not set: release builds will fail to sign", entities.KeyStoreFile)
		result.Warnings = append(result.Warnings, msg)
		o.logger.Warn("release keystore not configured", interfaces.F("signing_config", release.Name))
	}

	result.Duration = time.Since(startTime)
	o.logger.Info("resolved build configuration",
		interfaces.F("application_id", descriptor.DefaultConfig.ApplicationID),
		interfaces.F("version_code", descriptor.DefaultConfig.Version.Code),
		interfaces.F("version_name", descriptor.DefaultConfig.Version.Name),
		interfaces.F("duration", result.Duration))

	return result, nil
}
