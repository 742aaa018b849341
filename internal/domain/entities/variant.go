package entities

// VariantName identifies a build variant
type VariantName string

// Supported build variants
const (
	VariantDebug   VariantName = "debug"
	VariantRelease VariantName = "release"
)

// BuildVariant represents a named build type and its packaging flags
type BuildVariant struct {
	Name            VariantName
	Signing         SigningIdentity
	MinifyEnabled   bool
	ShrinkResources bool
	Debuggable      bool
	ProguardFiles   []string
}
