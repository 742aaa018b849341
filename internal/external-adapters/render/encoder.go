package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ochairo/buildcfg/internal/domain/entities"
)

// Format identifies a descriptor encoding
type Format string

// Supported descriptor encodings
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want yaml or json)", name)
	}
}

// Options controls descriptor rendering
type Options struct {
	Format      Format
	ShowSecrets bool
	Variant     entities.VariantName // Empty renders all variants
}

// Encode writes the descriptor to w
func Encode(w io.Writer, d *entities.BuildDescriptor, opts Options) error {
	if opts.Variant != "" {
		if _, ok := d.Variant(opts.Variant); !ok {
			return fmt.Errorf("unknown variant %q", opts.Variant)
		}
	}

	doc := newDocument(d, opts)

	switch opts.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q", opts.Format)
	}

	return nil
}

// EncodeBytes renders the descriptor into memory
func EncodeBytes(d *entities.BuildDescriptor, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, d, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
