package template

import "github.com/tacogips/packer-inject/internal/debug"

// ScriptMarker is the script name at which the shell provisioner is split.
const ScriptMarker = "custom-script.sh"

// FilterScripts folds over scripts carrying an integer counter that starts
// at start and moves by step each time ScriptMarker is seen. An element is
// kept when the counter is nonzero before it is processed.
//
// With start=1, step=-1 the result is everything up to and including the
// first marker. With start=0, step=+1 it is everything after the first
// marker. Repeated markers keep moving the counter, so the output for them
// follows the arithmetic, not the intent.
func FilterScripts(scripts []any, start, step int) []any {
	out := make([]any, 0, len(scripts))
	add := start
	for _, s := range scripts {
		if add != 0 {
			out = append(out, s)
		}
		if name, ok := s.(string); ok && name == ScriptMarker {
			add += step
		}
	}
	return out
}

// PreScripts returns the scripts run before the injected provisioner.
func PreScripts(scripts []any) []any {
	return FilterScripts(scripts, 1, -1)
}

// PostScripts returns the scripts run after the injected provisioner.
func PostScripts(scripts []any) []any {
	return FilterScripts(scripts, 0, 1)
}

// Splice replaces the single shell provisioner in doc with three entries:
// the original provisioner limited to its pre-scripts, injected, and a deep
// copy of the original limited to its post-scripts. doc must have passed
// Validate. injected is inserted untouched.
func Splice(doc Document, injected any) error {
	if injected == nil {
		return NewTemplateErrorWithField(SpliceFailed, "", FieldProvisioners,
			"no provisioner to inject")
	}

	provisioners, ok := doc[FieldProvisioners].([]any)
	if !ok || len(provisioners) != 1 {
		return NewTemplateErrorWithField(SpliceFailed, "", FieldProvisioners,
			"template must be validated before splicing")
	}
	original, ok := provisioners[0].(map[string]any)
	if !ok {
		return NewTemplateErrorWithField(SpliceFailed, "", FieldProvisioners+"[0]",
			"template must be validated before splicing")
	}

	copied := Clone(original).(map[string]any)
	provisioners = append(provisioners, injected, copied)

	// Each half filters its own scripts list so no element is shared.
	scripts, _ := original[FieldScripts].([]any)
	copiedScripts, _ := copied[FieldScripts].([]any)
	pre := PreScripts(scripts)
	post := PostScripts(copiedScripts)
	debug.DebugValue("pre-scripts", pre)
	debug.DebugValue("post-scripts", post)

	original[FieldScripts] = pre
	copied[FieldScripts] = post

	doc[FieldProvisioners] = provisioners
	return nil
}
