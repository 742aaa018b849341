package entities

// Signing config names
const (
	SigningDebug   = "debug"
	SigningRelease = "release"
)

// SigningIdentity represents the keystore reference used to sign an artifact
type SigningIdentity struct {
	Name          string
	KeyAlias      string
	KeyPassword   string
	StoreFile     string // Absolute path, empty when absent
	StorePassword string
	Implicit      bool // Provided by the packaging toolchain (debug keystore)
}

// HasStoreFile reports whether a keystore reference was resolved
func (s SigningIdentity) HasStoreFile() bool {
	return s.StoreFile != ""
}
