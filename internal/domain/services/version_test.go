package services

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ochairo/buildcfg/internal/domain/entities"
)

func props(values map[string]string) *entities.PropertyMap {
	return entities.NewPropertyMap("local.properties", true, values)
}

func TestResolveVersion(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]string
		wantCode int
		wantName string
		wantErr  bool
	}{
		{
			name:     "no keys - defaults",
			values:   map[string]string{"sdk.dir": "/opt/android"},
			wantCode: 1,
			wantName: "1.0",
		},
		{
			name:     "both present",
			values:   map[string]string{entities.KeyVersionCode: "42", entities.KeyVersionName: "2.3.1"},
			wantCode: 42,
			wantName: "2.3.1",
		},
		{
			name:     "only name present",
			values:   map[string]string{entities.KeyVersionName: "0.9.0-beta"},
			wantCode: 1,
			wantName: "0.9.0-beta",
		},
		{
			name:     "only code present",
			values:   map[string]string{entities.KeyVersionCode: "7"},
			wantCode: 7,
			wantName: "1.0",
		},
		{
			name:     "code with surrounding whitespace",
			values:   map[string]string{entities.KeyVersionCode: " 12 "},
			wantCode: 12,
			wantName: "1.0",
		},
		{
			name:     "empty name is kept",
			values:   map[string]string{entities.KeyVersionName: ""},
			wantCode: 1,
			wantName: "",
		},
		{
			name:    "non-numeric code",
			values:  map[string]string{entities.KeyVersionCode: "abc"},
			wantErr: true,
		},
		{
			name:    "empty code",
			values:  map[string]string{entities.KeyVersionCode: ""},
			wantErr: true,
		},
		{
			name:    "decimal code",
			values:  map[string]string{entities.KeyVersionCode: "1.5"},
			wantErr: true,
		},
		{
			name:    "zero code",
			values:  map[string]string{entities.KeyVersionCode: "0"},
			wantErr: true,
		},
		{
			name:    "negative code",
			values:  map[string]string{entities.KeyVersionCode: "-3"},
			wantErr: true,
		},
		{
			name:    "code overflows int32",
			values:  map[string]string{entities.KeyVersionCode: "2147483648"},
			wantErr: true,
		},
	}

	s := NewConfigService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := s.ResolveVersion(props(tt.values))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidVersionCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.Equal(t, tt.wantName, info.Name)
		})
	}
}

func TestResolveVersion_NilProperties(t *testing.T) {
	info, err := NewConfigService().ResolveVersion(nil)
	require.NoError(t, err)
	assert.Equal(t, entities.VersionInfo{Code: DefaultVersionCode, Name: DefaultVersionName}, info)
}

func TestResolveVersion_PropertyBased_PresentValuesWin(t *testing.T) {
	s := NewConfigService()
	rapid.Check(t, func(t *rapid.T) {
		values := map[string]string{}

		hasCode := rapid.Bool().Draw(t, "hasCode")
		code := rapid.IntRange(1, math.MaxInt32).Draw(t, "code")
		if hasCode {
			values[entities.KeyVersionCode] = strconv.Itoa(code)
		}

		hasName := rapid.Bool().Draw(t, "hasName")
		name := rapid.String().Draw(t, "name")
		if hasName {
			values[entities.KeyVersionName] = name
		}

		info, err := s.ResolveVersion(props(values))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantCode := DefaultVersionCode
		if hasCode {
			wantCode = code
		}
		wantName := DefaultVersionName
		if hasName {
			wantName = name
		}

		if info.Code != wantCode {
			t.Fatalf("Code = %d, want %d", info.Code, wantCode)
		}
		if info.Name != wantName {
			t.Fatalf("Name = %q, want %q", info.Name, wantName)
		}
		if info.Code <= 0 {
			t.Fatalf("Code = %d, want positive", info.Code)
		}
	})
}

func TestResolveVersion_PropertyBased_NonNumericIsFatal(t *testing.T) {
	s := NewConfigService()
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.StringMatching(`[a-zA-Z_.][a-zA-Z0-9_.]{0,12}`).Draw(t, "raw")

		_, err := s.ResolveVersion(props(map[string]string{entities.KeyVersionCode: raw}))
		if err == nil {
			t.Fatalf("expected error for version code %q", raw)
		}
	})
}
