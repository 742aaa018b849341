package services

import (
	"fmt"

	"github.com/ochairo/buildcfg/internal/domain/entities"
)

// DescriptorInput gathers the resolved pieces of a build descriptor
type DescriptorInput struct {
	Properties *entities.PropertyMap
	Project    entities.ProjectSettings
	Plugin     entities.PluginSettings
	AppDir     string
}

// BuildDescriptor resolves version and signing from the properties and
// assembles the complete descriptor
func (s *ConfigService) BuildDescriptor(in DescriptorInput) (*entities.BuildDescriptor, error) {
	if err := in.Plugin.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plugin settings: %w", err)
	}

	version, err := s.ResolveVersion(in.Properties)
	if err != nil {
		return nil, err
	}

	release := s.ResolveSigningIdentity(in.Properties, in.AppDir)

	d := &entities.BuildDescriptor{
		Project: in.Project,
		Plugin:  in.Plugin,
		DefaultConfig: entities.DefaultConfig{
			ApplicationID:   in.Project.ApplicationID,
			MinSdk:          in.Plugin.MinSdkVersion,
			TargetSdk:       in.Plugin.TargetSdkVersion,
			Version:         version,
			MultiDexEnabled: in.Project.MultiDexEnabled,
		},
		SigningConfigs: []entities.SigningIdentity{release},
		Variants:       s.AssembleVariants(release, in.Project),
	}

	if in.Properties != nil {
		d.PropertiesSource = in.Properties.Source
		d.PropertiesFound = in.Properties.Exists
	}

	return d, nil
}
