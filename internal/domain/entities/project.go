package entities

import "fmt"

// ProjectSettings represents the static part of the Android app module
type ProjectSettings struct {
	Namespace           string
	ApplicationID       string
	Plugins             []string
	SourceCompatibility string
	TargetCompatibility string
	JVMTarget           string
	SourceDirs          []string
	MultiDexEnabled     bool
	ProguardFiles       []string
	FlutterSource       string // Path to the Flutter project, relative to the app module
	Dependencies        []Dependency
}

// Dependency represents a declared library dependency
type Dependency struct {
	Configuration string // e.g., "implementation"
	Coordinate    string // group:artifact:version
}

// DefaultProjectSettings returns the settings of the stock app module
func DefaultProjectSettings() ProjectSettings {
	return ProjectSettings{
		Namespace:     "com.tasksy.app",
		ApplicationID: "com.tasksy.app",
		Plugins: []string{
			"com.android.application",
			"kotlin-android",
			"dev.flutter.flutter-gradle-plugin",
		},
		SourceCompatibility: "1.8",
		TargetCompatibility: "1.8",
		JVMTarget:           "1.8",
		SourceDirs:          []string{"src/main/kotlin"},
		MultiDexEnabled:     true,
		ProguardFiles:       []string{"proguard-android-optimize.txt", "proguard-rules.pro"},
		FlutterSource:       "../..",
		Dependencies: []Dependency{
			{Configuration: "implementation", Coordinate: "androidx.multidex:multidex:2.0.1"},
		},
	}
}

// PluginSettings represents the values supplied by the Flutter Gradle plugin
type PluginSettings struct {
	CompileSdkVersion int
	MinSdkVersion     int
	TargetSdkVersion  int
	NdkVersion        string
}

// DefaultPluginSettings returns the Flutter plugin defaults
func DefaultPluginSettings() PluginSettings {
	return PluginSettings{
		CompileSdkVersion: 34,
		MinSdkVersion:     21,
		TargetSdkVersion:  34,
		NdkVersion:        "23.1.7779620",
	}
}

// Validate checks that SDK levels are positive and ordered min <= target <= compile
func (p PluginSettings) Validate() error {
	if p.CompileSdkVersion <= 0 || p.MinSdkVersion <= 0 || p.TargetSdkVersion <= 0 {
		return fmt.Errorf("sdk versions must be positive (compile=%d, min=%d, target=%d)",
			p.CompileSdkVersion, p.MinSdkVersion, p.TargetSdkVersion)
	}
	if p.MinSdkVersion > p.TargetSdkVersion {
		return fmt.Errorf("minSdkVersion %d exceeds targetSdkVersion %d", p.MinSdkVersion, p.TargetSdkVersion)
	}
	if p.TargetSdkVersion > p.CompileSdkVersion {
		return fmt.Errorf("targetSdkVersion %d exceeds compileSdkVersion %d", p.TargetSdkVersion, p.CompileSdkVersion)
	}
	return nil
}
