// Package render encodes build descriptors as YAML or JSON documents.
package render

import "github.com/ochairo/buildcfg/internal/domain/entities"

const redacted = "********"

// document is the serialized form of a build descriptor
type document struct {
	Namespace      string            `yaml:"namespace" json:"namespace"`
	Plugins        []string          `yaml:"plugins" json:"plugins"`
	CompileSdk     int               `yaml:"compile_sdk" json:"compile_sdk"`
	NdkVersion     string            `yaml:"ndk_version" json:"ndk_version"`
	CompileOptions compileOptions    `yaml:"compile_options" json:"compile_options"`
	KotlinOptions  kotlinOptions     `yaml:"kotlin_options" json:"kotlin_options"`
	SourceSets     sourceSets        `yaml:"source_sets" json:"source_sets"`
	DefaultConfig  defaultConfig     `yaml:"default_config" json:"default_config"`
	SigningConfigs []signingConfig   `yaml:"signing_configs" json:"signing_configs"`
	BuildTypes     []buildType       `yaml:"build_types" json:"build_types"`
	Flutter        flutterBlock      `yaml:"flutter" json:"flutter"`
	Dependencies   []dependency      `yaml:"dependencies" json:"dependencies"`
	Properties     propertiesSummary `yaml:"properties" json:"properties"`
}

type compileOptions struct {
	SourceCompatibility string `yaml:"source_compatibility" json:"source_compatibility"`
	TargetCompatibility string `yaml:"target_compatibility" json:"target_compatibility"`
}

type kotlinOptions struct {
	JVMTarget string `yaml:"jvm_target" json:"jvm_target"`
}

type sourceSets struct {
	MainJavaSrcDirs []string `yaml:"main_java_src_dirs" json:"main_java_src_dirs"`
}

type defaultConfig struct {
	ApplicationID   string `yaml:"application_id" json:"application_id"`
	MinSdk          int    `yaml:"min_sdk" json:"min_sdk"`
	TargetSdk       int    `yaml:"target_sdk" json:"target_sdk"`
	VersionCode     int    `yaml:"version_code" json:"version_code"`
	VersionName     string `yaml:"version_name" json:"version_name"`
	MultiDexEnabled bool   `yaml:"multidex_enabled" json:"multidex_enabled"`
}

type signingConfig struct {
	Name          string  `yaml:"name" json:"name"`
	KeyAlias      string  `yaml:"key_alias,omitempty" json:"key_alias,omitempty"`
	KeyPassword   string  `yaml:"key_password,omitempty" json:"key_password,omitempty"`
	StoreFile     *string `yaml:"store_file" json:"store_file"`
	StorePassword string  `yaml:"store_password,omitempty" json:"store_password,omitempty"`
	Implicit      bool    `yaml:"implicit,omitempty" json:"implicit,omitempty"`
}

type buildType struct {
	Name            string   `yaml:"name" json:"name"`
	SigningConfig   string   `yaml:"signing_config" json:"signing_config"`
	MinifyEnabled   bool     `yaml:"minify_enabled" json:"minify_enabled"`
	ShrinkResources bool     `yaml:"shrink_resources" json:"shrink_resources"`
	Debuggable      bool     `yaml:"debuggable" json:"debuggable"`
	ProguardFiles   []string `yaml:"proguard_files,omitempty" json:"proguard_files,omitempty"`
}

type flutterBlock struct {
	Source string `yaml:"source" json:"source"`
}

type dependency struct {
	Configuration string `yaml:"configuration" json:"configuration"`
	Coordinate    string `yaml:"coordinate" json:"coordinate"`
}

type propertiesSummary struct {
	Source string `yaml:"source" json:"source"`
	Found  bool   `yaml:"found" json:"found"`
}

// newDocument converts a descriptor; only the named variant is kept when variant is set
func newDocument(d *entities.BuildDescriptor, opts Options) document {
	doc := document{
		Namespace:  d.Project.Namespace,
		Plugins:    d.Project.Plugins,
		CompileSdk: d.Plugin.CompileSdkVersion,
		NdkVersion: d.Plugin.NdkVersion,
		CompileOptions: compileOptions{
			SourceCompatibility: d.Project.SourceCompatibility,
			TargetCompatibility: d.Project.TargetCompatibility,
		},
		KotlinOptions: kotlinOptions{JVMTarget: d.Project.JVMTarget},
		SourceSets:    sourceSets{MainJavaSrcDirs: d.Project.SourceDirs},
		DefaultConfig: defaultConfig{
			ApplicationID:   d.DefaultConfig.ApplicationID,
			MinSdk:          d.DefaultConfig.MinSdk,
			TargetSdk:       d.DefaultConfig.TargetSdk,
			VersionCode:     d.DefaultConfig.Version.Code,
			VersionName:     d.DefaultConfig.Version.Name,
			MultiDexEnabled: d.DefaultConfig.MultiDexEnabled,
		},
		Flutter: flutterBlock{Source: d.Project.FlutterSource},
		Properties: propertiesSummary{
			Source: d.PropertiesSource,
			Found:  d.PropertiesFound,
		},
	}

	for _, dep := range d.Project.Dependencies {
		doc.Dependencies = append(doc.Dependencies, dependency{
			Configuration: dep.Configuration,
			Coordinate:    dep.Coordinate,
		})
	}

	used := make(map[string]bool)
	for _, v := range d.Variants {
		if opts.Variant != "" && v.Name != opts.Variant {
			continue
		}
		used[v.Signing.Name] = true
		doc.BuildTypes = append(doc.BuildTypes, buildType{
			Name:            string(v.Name),
			SigningConfig:   v.Signing.Name,
			MinifyEnabled:   v.MinifyEnabled,
			ShrinkResources: v.ShrinkResources,
			Debuggable:      v.Debuggable,
			ProguardFiles:   v.ProguardFiles,
		})
	}

	for _, s := range d.SigningConfigs {
		if opts.Variant != "" && !used[s.Name] {
			continue
		}
		doc.SigningConfigs = append(doc.SigningConfigs, newSigningConfig(s, opts.ShowSecrets))
	}

	return doc
}

func newSigningConfig(s entities.SigningIdentity, showSecrets bool) signingConfig {
	sc := signingConfig{
		Name:          s.Name,
		KeyAlias:      s.KeyAlias,
		KeyPassword:   secret(s.KeyPassword, showSecrets),
		StorePassword: secret(s.StorePassword, showSecrets),
		Implicit:      s.Implicit,
	}
	if s.HasStoreFile() {
		storeFile := s.StoreFile
		sc.StoreFile = &storeFile
	}
	return sc
}

func secret(value string, show bool) string {
	if value == "" || show {
		return value
	}
	return redacted
}
