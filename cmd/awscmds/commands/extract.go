package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/awscmds/internal/errors"
	"github.com/thoreinstein/awscmds/internal/helptext"
	"github.com/thoreinstein/awscmds/pkg/fileutil"
)

// extractService holds the value of the extract --service flag.
var extractService string

func init() {
	extractCmd.Flags().StringVarP(&extractService, "service", "s", "",
		"extract the AVAILABLE COMMANDS section of this service instead of the service list")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract services or commands from saved help text",
	Long: `Parse help text captured earlier (e.g. "aws help > help.txt") without
running the AWS CLI. Reads standard input when no file or "-" is given.

Without --service the AVAILABLE SERVICES section is extracted; with
--service the AVAILABLE COMMANDS section of that service is.`,
	Example: `  aws help | awscmds extract
  aws s3 help > s3.txt && awscmds extract --service s3 s3.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if len(args) == 0 || args[0] == "-" {
			data, err = fileutil.ReadAllWithLimit(cmd.InOrStdin())
		} else {
			data, err = fileutil.ReadFileWithLimit(args[0])
		}
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "reading help text"),
				"Pass a readable help text file or pipe it on stdin")
		}

		section := helptext.ServicesSection()
		if extractService != "" {
			section = helptext.CommandsSection(extractService)
		}
		return writeLines(cmd.OutOrStdout(), helptext.Extract(string(data), section))
	},
}
