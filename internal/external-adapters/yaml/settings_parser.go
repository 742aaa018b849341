// Package yaml provides YAML-based project and plugin settings parsing.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ochairo/buildcfg/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlProject represents the raw project file; nil fields keep their defaults
type yamlProject struct {
	Namespace      *string          `yaml:"namespace"`
	ApplicationID  *string          `yaml:"application_id"`
	Plugins        []string         `yaml:"plugins"`
	CompileOptions *yamlCompile     `yaml:"compile_options"`
	KotlinOptions  *yamlKotlin      `yaml:"kotlin_options"`
	SourceDirs     []string         `yaml:"source_dirs"`
	MultiDex       *bool            `yaml:"multidex_enabled"`
	ProguardFiles  []string         `yaml:"proguard_files"`
	Flutter        *yamlFlutter     `yaml:"flutter"`
	Dependencies   []yamlDependency `yaml:"dependencies"`
}

type yamlCompile struct {
	SourceCompatibility string `yaml:"source_compatibility"`
	TargetCompatibility string `yaml:"target_compatibility"`
}

type yamlKotlin struct {
	JVMTarget string `yaml:"jvm_target"`
}

type yamlFlutter struct {
	Source string `yaml:"source"`
}

type yamlDependency struct {
	Configuration string `yaml:"configuration"`
	Coordinate    string `yaml:"coordinate"`
}

// yamlPlugin represents the raw plugin settings file
type yamlPlugin struct {
	CompileSdkVersion *int    `yaml:"compile_sdk_version"`
	MinSdkVersion     *int    `yaml:"min_sdk_version"`
	TargetSdkVersion  *int    `yaml:"target_sdk_version"`
	NdkVersion        *string `yaml:"ndk_version"`
}

// SettingsParser parses YAML settings files on top of built-in defaults
type SettingsParser struct{}

// NewSettingsParser creates a new YAML parser
func NewSettingsParser() *SettingsParser {
	return &SettingsParser{}
}

// ParseProjectFile parses a project settings file
func (p *SettingsParser) ParseProjectFile(filePath string) (entities.ProjectSettings, error) {
	//nolint:gosec // G304: filePath is the project file given on the command line
	data, err := os.ReadFile(filePath)
	if err != nil {
		return entities.ProjectSettings{}, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return p.ParseProject(data)
}

// ParseProject applies YAML overrides to the default project settings
func (p *SettingsParser) ParseProject(data []byte) (entities.ProjectSettings, error) {
	settings := entities.DefaultProjectSettings()

	var raw yamlProject
	if err := decodeStrict(data, &raw); err != nil {
		return entities.ProjectSettings{}, err
	}

	if raw.Namespace != nil {
		settings.Namespace = *raw.Namespace
	}
	if raw.ApplicationID != nil {
		settings.ApplicationID = *raw.ApplicationID
	}
	if raw.Plugins != nil {
		settings.Plugins = raw.Plugins
	}
	if raw.CompileOptions != nil {
		if raw.CompileOptions.SourceCompatibility != "" {
			settings.SourceCompatibility = raw.CompileOptions.SourceCompatibility
		}
		if raw.CompileOptions.TargetCompatibility != "" {
			settings.TargetCompatibility = raw.CompileOptions.TargetCompatibility
		}
	}
	if raw.KotlinOptions != nil && raw.KotlinOptions.JVMTarget != "" {
		settings.JVMTarget = raw.KotlinOptions.JVMTarget
	}
	if raw.SourceDirs != nil {
		settings.SourceDirs = raw.SourceDirs
	}
	if raw.MultiDex != nil {
		settings.MultiDexEnabled = *raw.MultiDex
	}
	if raw.ProguardFiles != nil {
		settings.ProguardFiles = raw.ProguardFiles
	}
	if raw.Flutter != nil && raw.Flutter.Source != "" {
		settings.FlutterSource = raw.Flutter.Source
	}
	if raw.Dependencies != nil {
		deps := make([]entities.Dependency, 0, len(raw.Dependencies))
		for i, d := range raw.Dependencies {
			if d.Coordinate == "" {
				return entities.ProjectSettings{}, fmt.Errorf("dependency %d must have a coordinate", i)
			}
			if d.Configuration == "" {
				d.Configuration = "implementation"
			}
			deps = append(deps, entities.Dependency{Configuration: d.Configuration, Coordinate: d.Coordinate})
		}
		settings.Dependencies = deps
	}

	if settings.ApplicationID == "" {
		return entities.ProjectSettings{}, fmt.Errorf("project must have an application_id")
	}

	return settings, nil
}

// ParsePluginFile parses a plugin settings file
func (p *SettingsParser) ParsePluginFile(filePath string) (entities.PluginSettings, error) {
	//nolint:gosec // G304: filePath is the plugin file given on the command line
	data, err := os.ReadFile(filePath)
	if err != nil {
		return entities.PluginSettings{}, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return p.ParsePlugin(data)
}

// ParsePlugin applies YAML overrides to the Flutter plugin defaults
func (p *SettingsParser) ParsePlugin(data []byte) (entities.PluginSettings, error) {
	settings := entities.DefaultPluginSettings()

	var raw yamlPlugin
	if err := decodeStrict(data, &raw); err != nil {
		return entities.PluginSettings{}, err
	}

	if raw.CompileSdkVersion != nil {
		settings.CompileSdkVersion = *raw.CompileSdkVersion
	}
	if raw.MinSdkVersion != nil {
		settings.MinSdkVersion = *raw.MinSdkVersion
	}
	if raw.TargetSdkVersion != nil {
		settings.TargetSdkVersion = *raw.TargetSdkVersion
	}
	if raw.NdkVersion != nil {
		settings.NdkVersion = *raw.NdkVersion
	}

	return settings, nil
}

// decodeStrict rejects unknown keys; an empty document means no overrides
func decodeStrict(data []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}
