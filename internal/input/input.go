// Package input reads the chart and clustering documents consumed by the
// CLI. Documents are JSON or YAML, optionally wrapped in an LZ4 frame, and
// are checked against an embedded JSON schema before decoding.
package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"
	"gopkg.in/yaml.v3"
)

// Sentinel errors.
var (
	ErrSchema = errors.New("document does not match schema")
	ErrFormat = errors.New("unsupported document format")
	ErrShape  = errors.New("inconsistent document")
	ErrKind   = errors.New("unknown document kind")
)

// Format is the serialization of a document.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const lz4Ext = ".lz4"

// SplitCompressed strips a trailing .lz4 from path and reports whether it
// was present.
func SplitCompressed(path string) (string, bool) {
	if strings.HasSuffix(strings.ToLower(path), lz4Ext) {
		return path[:len(path)-len(lz4Ext)], true
	}

	return path, false
}

// DetectFormat derives the format from a file name. A trailing .lz4 is
// reported separately.
func DetectFormat(path string) (format Format, compressed bool, err error) {
	name, compressed := SplitCompressed(path)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON, compressed, nil
	case ".yaml", ".yml":
		return FormatYAML, compressed, nil
	default:
		return "", compressed, fmt.Errorf("%w: %s", ErrFormat, filepath.Base(path))
	}
}

// ReadFile returns the decompressed contents of path and its format.
func ReadFile(path string) ([]byte, Format, error) {
	format, compressed, err := DetectFormat(path)
	if err != nil {
		return nil, "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if compressed {
		r = lz4.NewReader(f)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	return data, format, nil
}

// Compress wraps data in an LZ4 frame.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw := lz4.NewWriter(&buf)

	_, err := zw.Write(data)
	if err != nil {
		return nil, fmt.Errorf("lz4 write: %w", err)
	}

	err = zw.Close()
	if err != nil {
		return nil, fmt.Errorf("lz4 close: %w", err)
	}

	return buf.Bytes(), nil
}

// Decode validates data against the schema of kind and decodes it into out.
func Decode(kind Kind, format Format, data []byte, out any) error {
	var generic any

	switch format {
	case FormatJSON:
		err := json.Unmarshal(data, &generic)
		if err != nil {
			return fmt.Errorf("parse JSON: %w", err)
		}
	case FormatYAML:
		err := yaml.Unmarshal(data, &generic)
		if err != nil {
			return fmt.Errorf("parse YAML: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}

	err := validate(kind, generic)
	if err != nil {
		return err
	}

	if format == FormatYAML {
		err = yaml.Unmarshal(data, out)
	} else {
		err = json.Unmarshal(data, out)
	}

	if err != nil {
		return fmt.Errorf("decode %s document: %w", kind, err)
	}

	return nil
}

func load(path string, kind Kind, out any) error {
	data, format, err := ReadFile(path)
	if err != nil {
		return err
	}

	return Decode(kind, format, data, out)
}
