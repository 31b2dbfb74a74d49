package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	tserrors "github.com/alexisbeaulieu97/tablestyles/pkg/errors"
)

// Format identifies the encoding of a document file.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatFromPath picks the document format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".jsonc":
		return FormatJSONC, nil
	}
	return "", fmt.Errorf("unsupported document extension %q", filepath.Ext(path))
}

// ParseFile reads a document from disk, decodes it according to its
// extension and validates its schema.
func ParseFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, tserrors.NewParseError(path, 0, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tserrors.NewParseError(path, 0, err)
	}

	return Parse(path, format, data)
}

// Parse decodes data in the given format and validates the result. Unknown
// fields are rejected so that a property placed on the wrong kind of rule
// (width on a row, say) is reported instead of silently dropped.
func Parse(path string, format Format, data []byte) (*Document, error) {
	var doc Document

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, tserrors.NewFormatParseError(path, string(format), extractLine(err), err)
		}
	case FormatJSON, FormatJSONC:
		src := data
		if format == FormatJSONC {
			src = jsonc.ToJSON(data)
		}
		dec := json.NewDecoder(bytes.NewReader(src))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, tserrors.NewFormatParseError(path, string(format), jsonErrorLine(src, err), err)
		}
	default:
		return nil, tserrors.NewParseError(path, 0, fmt.Errorf("unsupported document format %q", format))
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Marshal encodes doc in the requested format. JSONC is written as plain JSON.
func Marshal(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON, FormatJSONC:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}
	return nil, fmt.Errorf("unsupported document format %q", format)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

// jsonErrorLine converts the byte offset carried by encoding/json errors into
// a 1-based line number.
func jsonErrorLine(src []byte, err error) int {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0
	}
	if offset <= 0 || offset > int64(len(src)) {
		return 0
	}
	return bytes.Count(src[:offset], []byte("\n")) + 1
}
