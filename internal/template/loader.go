package template

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/jsonc"
)

// Document is a decoded build template. Fields the splicer does not touch
// pass through unchanged.
type Document map[string]any

// Parse decodes a single JSON value. Comments and trailing commas are
// stripped first, so JSONC input is accepted. Numbers decode as json.Number
// to render exactly as written.
func Parse(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	// Only one value per document
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected data after top-level value")
	}

	return v, nil
}

// LoadValue reads and parses any JSON value from path.
func LoadValue(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewTemplateErrorWithCause(NotFound, path, "file not found", err)
		}
		return nil, NewTemplateErrorWithCause(ReadFailed, path, "failed to read file", err)
	}

	v, err := Parse(data)
	if err != nil {
		return nil, NewTemplateErrorWithCause(InvalidSyntax, path, "invalid JSON syntax", err)
	}

	return v, nil
}

// Load reads a template from path. The top-level value must be an object.
func Load(path string) (Document, error) {
	v, err := LoadValue(path)
	if err != nil {
		return nil, err
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, NewTemplateError(InvalidSyntax, path,
			fmt.Sprintf("top-level value must be a JSON object, got %s", kindOf(v)))
	}

	return Document(obj), nil
}

// kindOf names the JSON kind of a decoded value for error messages.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
