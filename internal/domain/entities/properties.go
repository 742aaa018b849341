// Package entities defines core domain models and data structures.
package entities

import "sort"

// Recognized local.properties keys
const (
	KeyVersionCode   = "flutter.versionCode"
	KeyVersionName   = "flutter.versionName"
	KeyKeyAlias      = "keyAlias"
	KeyKeyPassword   = "keyPassword"
	KeyStoreFile     = "storeFile"
	KeyStorePassword = "storePassword"
)

// PropertyMap is the read-only key/value view of a local properties file
type PropertyMap struct {
	Source string // Path the map was loaded from
	Exists bool   // False when the file was absent and the map is empty
	values map[string]string
}

// NewPropertyMap creates a property map holding a copy of values
func NewPropertyMap(source string, exists bool, values map[string]string) *PropertyMap {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &PropertyMap{
		Source: source,
		Exists: exists,
		values: copied,
	}
}

// Get returns the value for key and whether it was present
func (m *PropertyMap) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[key]
	return v, ok
}

// Keys returns all keys in sorted order
func (m *PropertyMap) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of properties
func (m *PropertyMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.values)
}
