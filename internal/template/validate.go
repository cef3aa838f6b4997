package template

import "fmt"

// Field names and literals used by shell provisioner templates.
const (
	FieldProvisioners = "provisioners"
	FieldScripts      = "scripts"
	FieldType         = "type"

	// ShellType is the only provisioner type that can be split.
	ShellType = "shell"
)

// Validate checks that doc holds exactly one shell provisioner with a
// scripts list. Checks run in a fixed order and the first failure is
// returned. file is used only for error messages.
func Validate(file string, doc Document) error {
	raw, ok := doc[FieldProvisioners]
	if !ok {
		return NewTemplateErrorWithField(MissingProvisionersKey, file, FieldProvisioners,
			`template has no "provisioners" key`)
	}

	provisioners, ok := raw.([]any)
	if !ok {
		return NewTemplateErrorWithField(UnexpectedProvisionerCount, file, FieldProvisioners,
			fmt.Sprintf("expected a list with exactly one provisioner, got %s", kindOf(raw)))
	}
	if len(provisioners) != 1 {
		return NewTemplateErrorWithField(UnexpectedProvisionerCount, file, FieldProvisioners,
			fmt.Sprintf("expected exactly one provisioner, got %d", len(provisioners)))
	}

	field := FieldProvisioners + "[0]"
	prov, ok := provisioners[0].(map[string]any)
	if !ok {
		return NewTemplateErrorWithField(MissingScriptsKey, file, field+"."+FieldScripts,
			fmt.Sprintf("provisioner must be an object with a \"scripts\" key, got %s", kindOf(provisioners[0])))
	}

	scripts, ok := prov[FieldScripts]
	if !ok {
		return NewTemplateErrorWithField(MissingScriptsKey, file, field+"."+FieldScripts,
			`provisioner has no "scripts" key`)
	}

	if typ, _ := prov[FieldType].(string); typ != ShellType {
		return NewTemplateErrorWithField(UnsupportedProvisionerType, file, field+"."+FieldType,
			fmt.Sprintf("provisioner type must be %q, got %s", ShellType, describe(prov[FieldType])))
	}

	if _, ok := scripts.([]any); !ok {
		return NewTemplateErrorWithField(InvalidScripts, file, field+"."+FieldScripts,
			fmt.Sprintf("scripts must be a list, got %s", kindOf(scripts)))
	}

	return nil
}

// describe renders a value for an error message.
func describe(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	if v == nil {
		return "nothing"
	}
	return kindOf(v)
}
