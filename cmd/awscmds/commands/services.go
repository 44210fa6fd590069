package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(servicesCmd)
}

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the services in the AWS CLI help page",
	Long: `Run "aws help" and print the names from its AVAILABLE SERVICES section,
sorted, one per line.`,
	Example: `  awscmds services
  awscmds services | wc -l`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		services, err := newLister(appConfig.Binary).Services(cmd.Context())
		if err != nil {
			return toolError(err)
		}
		return writeLines(cmd.OutOrStdout(), services)
	},
}
