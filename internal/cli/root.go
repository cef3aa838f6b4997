package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tacogips/packer-inject/internal/app"
	"github.com/tacogips/packer-inject/internal/config"
	"github.com/tacogips/packer-inject/internal/debug"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// rootOptions holds the parsed flags of one invocation.
type rootOptions struct {
	provisioner         string
	provisionerTemplate string
	listTemplates       bool
	inspect             bool
	configPath          string
	noColor             bool
	debug               bool

	cfg *config.Config
}

// usageError marks errors that should be followed by the usage text.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// newRootCmd builds the packer-inject command.
func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packer-inject TEMPLATE",
		Short: "Splice a provisioner into a shell-provisioned build template",
		Long: `packer-inject reads a machine image build template whose "provisioners"
list holds exactly one shell provisioner, and splits that provisioner around
the custom-script.sh step:

  1. the shell provisioner with the scripts up to and including custom-script.sh
  2. the injected provisioner
  3. a copy of the shell provisioner with the scripts after custom-script.sh

The provisioner to inject comes from a JSON file (--provisioner) or from a
built-in template (--provisioner-template). The result is printed to stdout;
the input file is never modified.

Examples:
  packer-inject template.json -t salt-masterless
  packer-inject template.json -p provisioner.json > spliced.json
  packer-inject template.json -t salt-masterless --inspect
  packer-inject --provisioner-template-list`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.preRun(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	cmd.Version = currentVersion().Version
	cmd.SetVersionTemplate(versionTemplate(currentVersion()))

	opts.addFlags(cmd.Flags())
	opts.addGlobalFlags(cmd.PersistentFlags())

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	return cmd
}

// addFlags registers the splice flags.
func (o *rootOptions) addFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.provisioner, FlagProvisioner, "p", "", DescProvisioner)
	flags.StringVarP(&o.provisionerTemplate, FlagProvisionerTemplate, "t", "", DescProvisionerTemplate)
	flags.BoolVarP(&o.listTemplates, FlagProvisionerTemplateList, "l", false, DescProvisionerTemplateList)
	flags.BoolVarP(&o.inspect, FlagInspect, "i", false, DescInspect)
}

// addGlobalFlags registers flags shared by every command.
func (o *rootOptions) addGlobalFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.configPath, FlagConfig, "", DescConfig)
	flags.BoolVar(&o.noColor, FlagNoColor, false, DescNoColor)
	flags.BoolVar(&o.debug, FlagDebug, false, DescDebug)
}

// preRun loads configuration and sets up debug output.
func (o *rootOptions) preRun(cmd *cobra.Command) error {
	debug.SetDebug(o.debug)
	debug.SetNoColor(o.noColor)
	debug.SetOutput(cmd.ErrOrStderr())

	loader := config.NewLoader()
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = loader.Load(o.configPath)
	} else {
		cfg, err = loader.LoadOrDefault(config.DefaultConfigPath())
	}
	if err != nil {
		return err
	}
	o.cfg = cfg

	if !cfg.Output.ColorEnabled() {
		o.noColor = true
		debug.SetNoColor(true)
	}
	debug.DebugJSON("[cli] Config", cfg)
	return nil
}

// run handles the root command.
func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	indent := o.cfg.Output.Indent

	if o.listTemplates {
		return app.ListTemplates(cmd.OutOrStdout(), indent)
	}

	if len(args) == 0 {
		return usageErrorf("missing required argument TEMPLATE")
	}
	if len(args) > 1 {
		return usageErrorf("accepts 1 TEMPLATE argument, received %d", len(args))
	}
	if o.provisioner != "" && o.provisionerTemplate != "" {
		return usageErrorf("--%s and --%s are mutually exclusive", FlagProvisioner, FlagProvisionerTemplate)
	}
	if o.provisioner == "" && o.provisionerTemplate == "" {
		return usageErrorf("one of --%s or --%s is required", FlagProvisioner, FlagProvisionerTemplate)
	}

	return app.Inject(cmd.Context(), app.InjectOptions{
		TemplatePath:        args[0],
		ProvisionerFile:     o.provisioner,
		ProvisionerTemplate: o.provisionerTemplate,
		Inspect:             o.inspect,
		Indent:              indent,
	}, cmd.OutOrStdout())
}

// Run executes packer-inject with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := &rootOptions{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	printError(stderr, opts.noColor, err)

	var uerr *usageError
	if errors.As(err, &uerr) {
		printUsage(stderr, cmd.UsageString())
		return ExitUsage
	}
	return ExitError
}

// Execute runs the command with the process arguments and exits.
// This is called by main.main().
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
