package services

import "github.com/ochairo/buildcfg/internal/domain/entities"

// AssembleVariants builds the release and debug variants.
// The packaging flags are fixed and never read from properties.
func (s *ConfigService) AssembleVariants(release entities.SigningIdentity, project entities.ProjectSettings) []entities.BuildVariant {
	proguardFiles := make([]string, len(project.ProguardFiles))
	copy(proguardFiles, project.ProguardFiles)

	return []entities.BuildVariant{
		{
			Name:            entities.VariantRelease,
			Signing:         release,
			MinifyEnabled:   true,
			ShrinkResources: true,
			ProguardFiles:   proguardFiles,
		},
		{
			Name:       entities.VariantDebug,
			Signing:    DebugSigningIdentity(),
			Debuggable: true,
		},
	}
}
