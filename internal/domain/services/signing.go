package services

import (
	"path/filepath"

	"github.com/ochairo/buildcfg/internal/domain/entities"
)

// ResolveSigningIdentity builds the release signing identity from properties.
// Nothing is validated: an absent storeFile leaves the reference unset and the
// signing step of the packaging toolchain reports it.
func (s *ConfigService) ResolveSigningIdentity(props *entities.PropertyMap, appDir string) entities.SigningIdentity {
	identity := entities.SigningIdentity{Name: entities.SigningRelease}

	identity.KeyAlias, _ = props.Get(entities.KeyKeyAlias)
	identity.KeyPassword, _ = props.Get(entities.KeyKeyPassword)
	identity.StorePassword, _ = props.Get(entities.KeyStorePassword)

	if storeFile, ok := props.Get(entities.KeyStoreFile); ok {
		identity.StoreFile = resolveStoreFile(appDir, storeFile)
	}

	return identity
}

// DebugSigningIdentity returns the toolchain-provided debug identity
func DebugSigningIdentity() entities.SigningIdentity {
	return entities.SigningIdentity{
		Name:     entities.SigningDebug,
		Implicit: true,
	}
}

// resolveStoreFile resolves relative keystore paths against the app module directory
func resolveStoreFile(appDir, storeFile string) string {
	if filepath.IsAbs(storeFile) {
		return filepath.Clean(storeFile)
	}
	return filepath.Join(appDir, storeFile)
}
