package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagProvisioner             = "provisioner"
	FlagProvisionerTemplate     = "provisioner-template"
	FlagProvisionerTemplateList = "provisioner-template-list"
	FlagInspect                 = "inspect"
	FlagConfig                  = "config"
	FlagNoColor                 = "no-color"
	FlagDebug                   = "debug"

	// Flag descriptions
	DescProvisioner             = "JSON file holding the provisioner to inject"
	DescProvisionerTemplate     = "Name of a built-in provisioner to inject"
	DescProvisionerTemplateList = "Print the built-in provisioner templates and exit"
	DescInspect                 = "Print only the provisioners field"
	DescConfig                  = "Path to config file"
	DescNoColor                 = "Disable colored output"
	DescDebug                   = "Enable debug logging"
)
