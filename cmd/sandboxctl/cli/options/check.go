package options

import "github.com/spf13/cobra"

// CheckOptions defines the flags of the check command.
type CheckOptions struct {
	// ConfigPath is the sandbox configuration to check against.
	ConfigPath string
	// Args are passed to the checked call as string arguments.
	Args []string
	// Set checks a field write instead of a read.
	Set bool
	// Record offers rejected signatures to the configured approval store.
	Record bool
}

// AddFlags adds the check flags to cmd.
func (o *CheckOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.ConfigPath, "config", "c", "", "sandbox configuration file")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagFilename("config", "yaml", "yml")

	cmd.Flags().StringArrayVar(&o.Args, "arg", nil, "argument value for the call (repeatable)")
	cmd.Flags().BoolVar(&o.Set, "set", false, "check writing a field instead of reading it")
	cmd.Flags().BoolVar(&o.Record, "record", false, "record a rejected signature as pending approval")
}

// LintOptions defines the flags of the lint command.
type LintOptions struct {
	// CatalogPath is a type catalog used to report signatures naming unknown members.
	CatalogPath string
	// ConfigPath is a sandbox configuration to validate alongside the definitions.
	ConfigPath string
	// Strict turns warnings into failures.
	Strict bool
}

// AddFlags adds the lint flags to cmd.
func (o *LintOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.CatalogPath, "catalog", "", "YAML type catalog for existence checks")
	cmd.Flags().StringVarP(&o.ConfigPath, "config", "c", "", "sandbox configuration file to validate")
	cmd.Flags().BoolVar(&o.Strict, "strict", false, "fail on warnings")
}

// ApprovalsOptions defines the flags of the approvals command.
type ApprovalsOptions struct {
	// StorePath is the approvals file.
	StorePath string
	// List prints the state without prompting.
	List bool
	// Approve lists signatures to approve without prompting.
	Approve []string
}

// AddFlags adds the approvals flags to cmd.
func (o *ApprovalsOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.StorePath, "store", "", "approvals file (default ~/.sandbox/approvals.yaml)")
	cmd.Flags().BoolVar(&o.List, "list", false, "print approved and pending signatures")
	cmd.Flags().StringArrayVar(&o.Approve, "approve", nil, "approve a signature (repeatable)")
}
