package entities

// DefaultConfig represents the variant-independent application config
type DefaultConfig struct {
	ApplicationID   string
	MinSdk          int
	TargetSdk       int
	Version         VersionInfo
	MultiDexEnabled bool
}

// BuildDescriptor is the fully resolved parameter set handed to the packaging toolchain
type BuildDescriptor struct {
	Project          ProjectSettings
	Plugin           PluginSettings
	DefaultConfig    DefaultConfig
	SigningConfigs   []SigningIdentity
	Variants         []BuildVariant
	PropertiesSource string
	PropertiesFound  bool
}

// Variant returns the variant with the given name
func (d *BuildDescriptor) Variant(name VariantName) (*BuildVariant, bool) {
	for i := range d.Variants {
		if d.Variants[i].Name == name {
			return &d.Variants[i], true
		}
	}
	return nil, false
}

// SigningConfig returns the signing identity with the given name
func (d *BuildDescriptor) SigningConfig(name string) (*SigningIdentity, bool) {
	for i := range d.SigningConfigs {
		if d.SigningConfigs[i].Name == name {
			return &d.SigningConfigs[i], true
		}
	}
	return nil, false
}
