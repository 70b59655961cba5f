package specio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ani18605/GRAPH-ANALYZER/analyzer"
	"github.com/ani18605/GRAPH-ANALYZER/core"
)

// Format names a wire encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrUnknownFormat is returned for a format name other than json or yaml.
	ErrUnknownFormat = errors.New("specio: unknown format")

	// ErrEmptyInput is returned when the input holds no document.
	ErrEmptyInput = errors.New("specio: empty input")
)

// ParseFormat maps "json", "yaml" or "yml" (any case) onto a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ReadSpec decodes one spec document from r. Validation is left to
// core.Validate (or analyzer.Analyze); ReadSpec only checks the encoding.
func ReadSpec(r io.Reader, f Format) (core.Spec, error) {
	var spec core.Spec
	if err := decode(r, f, &spec); err != nil {
		return core.Spec{}, err
	}

	return spec, nil
}

// ImportSpec opens path and decodes it with ReadSpec. An empty f selects
// the format from the file extension.
func ImportSpec(path string, f Format) (core.Spec, error) {
	if f == "" {
		f = FormatFromPath(path)
	}
	file, err := os.Open(path)
	if err != nil {
		return core.Spec{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	spec, err := ReadSpec(file, f)
	if err != nil {
		return core.Spec{}, fmt.Errorf("%s: %w", path, err)
	}

	return spec, nil
}

// WriteSpec encodes spec to w.
func WriteSpec(w io.Writer, spec core.Spec, f Format) error {
	return encode(w, f, spec)
}

// WriteReport encodes rep to w in its interface shape.
func WriteReport(w io.Writer, rep *analyzer.Report, f Format) error {
	return encode(w, f, rep)
}

func decode(r io.Reader, f Format, v any) error {
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(v)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if errors.Is(err, io.EOF) {
		return ErrEmptyInput
	}
	if err != nil {
		return fmt.Errorf("specio: decode %s: %w", f, err)
	}

	return nil
}

func encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("specio: encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("specio: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("specio: encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	return nil
}
