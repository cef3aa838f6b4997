package app

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/tacogips/packer-inject/internal/debug"
	"github.com/tacogips/packer-inject/internal/provisioner"
	"github.com/tacogips/packer-inject/internal/template"
)

// InjectOptions contains options for splicing a provisioner into a template.
type InjectOptions struct {
	// TemplatePath is the build template to read.
	TemplatePath string
	// ProvisionerFile is a JSON file holding the provisioner to inject.
	ProvisionerFile string
	// ProvisionerTemplate is the name of a built-in provisioner to inject.
	ProvisionerTemplate string
	// Inspect limits output to the provisioners field.
	Inspect bool
	// Indent is the JSON indentation. Empty uses the default.
	Indent string
}

// Inject loads the template and the provisioner, splices the provisioner in
// and writes the result to w. Nothing is written unless every step succeeds.
func Inject(ctx context.Context, opts InjectOptions, w io.Writer) error {
	debug.DebugSection("[app] Inject workflow start")
	debug.DebugValue("[app] Template", opts.TemplatePath)
	debug.DebugValue("[app] ProvisionerFile", opts.ProvisionerFile)
	debug.DebugValue("[app] ProvisionerTemplate", opts.ProvisionerTemplate)
	debug.DebugValue("[app] Inspect", opts.Inspect)

	if err := validateInjectOptions(opts); err != nil {
		debug.Debug("[app] Inject options validation failed: %v", err)
		return NewValidationError("invalid inject options", err)
	}

	injected, err := provisioner.Resolve(provisioner.ResolveOptions{
		File:         opts.ProvisionerFile,
		TemplateName: opts.ProvisionerTemplate,
	})
	if err != nil {
		debug.Debug("[app] Failed to resolve provisioner: %v", err)
		return NewProvisionerResolveError("failed to resolve provisioner", err)
	}
	debug.DebugJSON("[app] Injected provisioner", injected)

	doc, err := template.Load(opts.TemplatePath)
	if err != nil {
		debug.Debug("[app] Failed to load template: %v", err)
		return NewTemplateLoadError("failed to load template", err)
	}
	debug.Debug("[app] Template loaded successfully")

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := template.Validate(opts.TemplatePath, doc); err != nil {
		debug.Debug("[app] Template validation failed: %v", err)
		return NewValidationError("invalid template", err)
	}
	debug.Debug("[app] Template validated successfully")

	if err := template.Splice(doc, injected); err != nil {
		debug.Debug("[app] Splice failed: %v", err)
		return NewSpliceError("failed to splice provisioner", err)
	}

	// Buffer so a failed encode leaves no partial output behind.
	var buf bytes.Buffer
	if err := template.Render(&buf, doc, template.RenderOptions{
		InspectOnly: opts.Inspect,
		Indent:      opts.Indent,
	}); err != nil {
		return NewRenderError("failed to render template", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return NewRenderError("failed to write output", err)
	}

	debug.Debug("[app] Inject workflow completed")
	return nil
}

// ListTemplates writes the built-in provisioner templates to w.
func ListTemplates(w io.Writer, indent string) error {
	var buf bytes.Buffer
	if err := provisioner.RenderList(&buf, indent); err != nil {
		return NewRenderError("failed to render provisioner templates", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return NewRenderError("failed to write output", err)
	}
	return nil
}

// validateInjectOptions validates inject options.
func validateInjectOptions(opts InjectOptions) error {
	if opts.TemplatePath == "" {
		return fmt.Errorf("template path cannot be empty")
	}
	return nil
}
