package template

import (
	"encoding/json"
	"fmt"
	"io"
)

// DefaultIndent is the indentation used when none is configured.
const DefaultIndent = "  "

// RenderOptions controls how a document is written.
type RenderOptions struct {
	// InspectOnly limits the output to the provisioners field.
	InspectOnly bool
	// Indent is the per-level indentation. Empty means DefaultIndent.
	Indent string
}

// Render writes doc to w as pretty-printed JSON followed by a newline.
// Object keys are emitted in sorted order, so rendering the same document
// twice produces identical bytes.
func Render(w io.Writer, doc Document, opts RenderOptions) error {
	var v any = map[string]any(doc)
	if opts.InspectOnly {
		v = map[string]any{FieldProvisioners: doc[FieldProvisioners]}
	}
	return WriteJSON(w, v, opts.Indent)
}

// WriteJSON encodes v as indented JSON without HTML escaping.
func WriteJSON(w io.Writer, v any, indent string) error {
	if indent == "" {
		indent = DefaultIndent
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
