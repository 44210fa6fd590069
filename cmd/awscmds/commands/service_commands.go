package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(commandsCmd)
}

var commandsCmd = &cobra.Command{
	Use:   "commands <service>",
	Short: "List the commands of one AWS CLI service",
	Long: `Run "aws <service> help" and print the names from its AVAILABLE COMMANDS
section, sorted, one per line.`,
	Example: `  awscmds commands s3
  awscmds commands ec2 | grep describe-`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		commands, err := newLister(appConfig.Binary).Commands(cmd.Context(), args[0])
		if err != nil {
			return toolError(err)
		}
		return writeLines(cmd.OutOrStdout(), commands)
	},
}
