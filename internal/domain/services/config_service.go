// Package services implements build configuration resolution logic.
package services

import "errors"

// Fallback values used when local.properties does not define them
const (
	DefaultVersionCode = 1
	DefaultVersionName = "1.0"
)

// ErrInvalidVersionCode is returned when a present version code cannot be used
var ErrInvalidVersionCode = errors.New("invalid version code")

// ConfigService resolves property maps into build variant parameters
type ConfigService struct{}

// NewConfigService creates a new config service
func NewConfigService() *ConfigService {
	return &ConfigService{}
}
