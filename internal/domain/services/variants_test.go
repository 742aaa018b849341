package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ochairo/buildcfg/internal/domain/entities"
)

func TestAssembleVariants(t *testing.T) {
	release := entities.SigningIdentity{Name: entities.SigningRelease, KeyAlias: "upload"}
	variants := NewConfigService().AssembleVariants(release, entities.DefaultProjectSettings())

	require.Len(t, variants, 2)

	rel := variants[0]
	assert.Equal(t, entities.VariantRelease, rel.Name)
	assert.True(t, rel.MinifyEnabled)
	assert.True(t, rel.ShrinkResources)
	assert.False(t, rel.Debuggable)
	assert.Equal(t, release, rel.Signing)
	assert.Equal(t, []string{"proguard-android-optimize.txt", "proguard-rules.pro"}, rel.ProguardFiles)

	dbg := variants[1]
	assert.Equal(t, entities.VariantDebug, dbg.Name)
	assert.True(t, dbg.Debuggable)
	assert.False(t, dbg.MinifyEnabled)
	assert.True(t, dbg.Signing.Implicit)
}

func TestAssembleVariants_ProguardFilesNotAliased(t *testing.T) {
	project := entities.DefaultProjectSettings()
	variants := NewConfigService().AssembleVariants(entities.SigningIdentity{}, project)

	variants[0].ProguardFiles[0] = "changed.txt"
	assert.Equal(t, "proguard-android-optimize.txt", project.ProguardFiles[0])
}

func TestBuildDescriptor_PropertyBased_FixedFlags(t *testing.T) {
	s := NewConfigService()
	keys := []string{
		entities.KeyVersionName,
		entities.KeyKeyAlias,
		entities.KeyKeyPassword,
		entities.KeyStoreFile,
		entities.KeyStorePassword,
		"debuggable",
		"minifyEnabled",
		"shrinkResources",
	}

	rapid.Check(t, func(t *rapid.T) {
		values := map[string]string{}
		for _, k := range keys {
			if rapid.Bool().Draw(t, "has_"+k) {
				values[k] = rapid.StringMatching(`[a-z0-9./]{0,16}`).Draw(t, "val_"+k)
			}
		}

		d, err := s.BuildDescriptor(DescriptorInput{
			Properties: props(values),
			Project:    entities.DefaultProjectSettings(),
			Plugin:     entities.DefaultPluginSettings(),
			AppDir:     "app",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rel, ok := d.Variant(entities.VariantRelease)
		if !ok || !rel.MinifyEnabled || !rel.ShrinkResources {
			t.Fatalf("release must minify and shrink resources: %+v", rel)
		}
		dbg, ok := d.Variant(entities.VariantDebug)
		if !ok || !dbg.Debuggable {
			t.Fatalf("debug must be debuggable: %+v", dbg)
		}

		_, hasStore := values[entities.KeyStoreFile]
		if rel.Signing.HasStoreFile() != hasStore {
			t.Fatalf("HasStoreFile = %v, store key present = %v", rel.Signing.HasStoreFile(), hasStore)
		}
	})
}
