package entities

// VersionInfo holds the resolved application version
type VersionInfo struct {
	Code int
	Name string
}
