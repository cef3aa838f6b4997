// Package provisioner resolves the provisioner that gets spliced into a
// build template, either from a JSON file or from the built-in set.
package provisioner

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tacogips/packer-inject/internal/debug"
	"github.com/tacogips/packer-inject/internal/template"
)

// SaltMasterless is the name of the masterless Salt built-in.
const SaltMasterless = "salt-masterless"

// builtins is never handed out directly; Builtins returns copies.
var builtins = map[string]map[string]any{
	SaltMasterless: {
		"type":               "salt-masterless",
		"local_state_tree":   "../../salt/recipe",
		"local_pillar_roots": "../../salt/pillar",
		"minion_config":      "../../salt/etc/minion",
	},
}

// Builtins returns a copy of the built-in name to provisioner mapping.
func Builtins() map[string]map[string]any {
	out := make(map[string]map[string]any, len(builtins))
	for name, prov := range builtins {
		out[name] = template.Clone(prov).(map[string]any)
	}
	return out
}

// Names returns the built-in provisioner names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a copy of the named built-in.
func Lookup(name string) (map[string]any, error) {
	prov, ok := builtins[name]
	if !ok {
		return nil, NewProvisionerError(UnknownProvisionerTemplate,
			fmt.Sprintf("unknown provisioner template %q (valid templates: %s)",
				name, strings.Join(Names(), ", ")), nil)
	}
	return template.Clone(prov).(map[string]any), nil
}

// ResolveOptions selects the provisioner to inject. Callers are expected to
// set exactly one field; File takes precedence if both are set.
type ResolveOptions struct {
	// File is a path to a JSON file holding the provisioner.
	File string
	// TemplateName is the name of a built-in provisioner.
	TemplateName string
}

// Resolve returns the provisioner selected by opts. The value is opaque and
// only has to be well-formed JSON.
func Resolve(opts ResolveOptions) (any, error) {
	switch {
	case opts.File != "":
		debug.Debug("Loading provisioner from file: %s", opts.File)
		v, err := template.LoadValue(opts.File)
		if err != nil {
			return nil, NewProvisionerError(LoadFailed, "failed to load provisioner", err)
		}
		return v, nil
	case opts.TemplateName != "":
		debug.Debug("Using built-in provisioner template: %s", opts.TemplateName)
		prov, err := Lookup(opts.TemplateName)
		if err != nil {
			return nil, err
		}
		return prov, nil
	default:
		return nil, NewProvisionerError(NoProvisioner,
			"either a provisioner file or a provisioner template name is required", nil)
	}
}

// RenderList writes the built-in mapping as pretty JSON.
func RenderList(w io.Writer, indent string) error {
	return template.WriteJSON(w, Builtins(), indent)
}
