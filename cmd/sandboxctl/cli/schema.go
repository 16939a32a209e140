package cli

import (
	"fmt"

	"github.com/reglet-dev/script-sandbox/application/schema"
	"github.com/spf13/cobra"
)

// Schema builds the schema command.
func Schema() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of sandbox configuration files.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := schema.ConfigSchema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
