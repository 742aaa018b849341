package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ochairo/buildcfg/internal/domain/entities"
)

// ResolveVersion looks up the version code and name, falling back to defaults per key.
// A version code that is present but not a positive 32-bit integer is fatal.
func (s *ConfigService) ResolveVersion(props *entities.PropertyMap) (entities.VersionInfo, error) {
	info := entities.VersionInfo{
		Code: DefaultVersionCode,
		Name: DefaultVersionName,
	}

	if raw, ok := props.Get(entities.KeyVersionCode); ok {
		code, err := parseVersionCode(raw)
		if err != nil {
			return entities.VersionInfo{}, err
		}
		info.Code = code
	}

	if name, ok := props.Get(entities.KeyVersionName); ok {
		info.Name = name
	}

	return info, nil
}

func parseVersionCode(raw string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidVersionCode, entities.KeyVersionCode, raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s=%d must be positive", ErrInvalidVersionCode, entities.KeyVersionCode, n)
	}
	return int(n), nil
}
