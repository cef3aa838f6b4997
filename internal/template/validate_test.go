package template

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		doc       Document
		wantType  TemplateErrorType
		wantField string
		wantOK    bool
	}{
		{
			name:   "valid shell template",
			doc:    shellDoc("a.sh", "custom-script.sh"),
			wantOK: true,
		},
		{
			name:      "missing provisioners",
			doc:       Document{"builders": []any{}},
			wantType:  MissingProvisionersKey,
			wantField: "provisioners",
		},
		{
			name:      "no provisioners",
			doc:       Document{"provisioners": []any{}},
			wantType:  UnexpectedProvisionerCount,
			wantField: "provisioners",
		},
		{
			name: "two provisioners",
			doc: Document{"provisioners": []any{
				map[string]any{"type": "shell", "scripts": []any{}},
				map[string]any{"type": "shell", "scripts": []any{}},
			}},
			wantType:  UnexpectedProvisionerCount,
			wantField: "provisioners",
		},
		{
			name:      "provisioners not a list",
			doc:       Document{"provisioners": map[string]any{"type": "shell"}},
			wantType:  UnexpectedProvisionerCount,
			wantField: "provisioners",
		},
		{
			name:      "missing scripts",
			doc:       Document{"provisioners": []any{map[string]any{"type": "shell", "inline": []any{"echo"}}}},
			wantType:  MissingScriptsKey,
			wantField: "provisioners[0].scripts",
		},
		{
			name:      "provisioner not an object",
			doc:       Document{"provisioners": []any{"shell"}},
			wantType:  MissingScriptsKey,
			wantField: "provisioners[0].scripts",
		},
		{
			name:      "wrong type",
			doc:       Document{"provisioners": []any{map[string]any{"type": "ansible", "scripts": []any{}}}},
			wantType:  UnsupportedProvisionerType,
			wantField: "provisioners[0].type",
		},
		{
			name:      "missing type",
			doc:       Document{"provisioners": []any{map[string]any{"scripts": []any{}}}},
			wantType:  UnsupportedProvisionerType,
			wantField: "provisioners[0].type",
		},
		{
			name:      "type is case sensitive",
			doc:       Document{"provisioners": []any{map[string]any{"type": "Shell", "scripts": []any{}}}},
			wantType:  UnsupportedProvisionerType,
			wantField: "provisioners[0].type",
		},
		{
			name:      "scripts not a list",
			doc:       Document{"provisioners": []any{map[string]any{"type": "shell", "scripts": "a.sh"}}},
			wantType:  InvalidScripts,
			wantField: "provisioners[0].scripts",
		},
		{
			// scripts is checked before type
			name:      "missing scripts and wrong type",
			doc:       Document{"provisioners": []any{map[string]any{"type": "file"}}},
			wantType:  MissingScriptsKey,
			wantField: "provisioners[0].scripts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate("template.json", tt.doc)
			if tt.wantOK {
				assert.NoError(t, err)
				return
			}

			var tmplErr *TemplateError
			require.True(t, errors.As(err, &tmplErr), "expected *TemplateError, got %v", err)
			assert.Equal(t, tt.wantType, tmplErr.Type, "error: %v", err)
			assert.Equal(t, tt.wantField, tmplErr.Field)
			assert.Equal(t, "template.json", tmplErr.File)
			assert.Contains(t, err.Error(), "template.json")
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestTemplateErrorMessage(t *testing.T) {
	err := NewTemplateErrorWithField(UnsupportedProvisionerType, "t.json", "provisioners[0].type", "bad type")
	assert.Equal(t, "template error in t.json [field: provisioners[0].type]: bad type", err.Error())

	cause := errors.New("boom")
	err = NewTemplateErrorWithCause(ReadFailed, "t.json", "failed to read file", cause)
	assert.Equal(t, "template error in t.json: failed to read file: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, "MissingProvisionersKey", MissingProvisionersKey.String())
	assert.Equal(t, "UnsupportedProvisionerType", UnsupportedProvisionerType.String())
}
