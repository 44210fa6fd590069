// Package commands implements the CLI commands for awscmds.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/awscmds/cmd"
	"github.com/thoreinstein/awscmds/internal/awscli"
	"github.com/thoreinstein/awscmds/internal/catalog"
	"github.com/thoreinstein/awscmds/internal/config"
	"github.com/thoreinstein/awscmds/internal/errors"
	"github.com/thoreinstein/awscmds/internal/logging"
	"github.com/thoreinstein/awscmds/internal/paths"
	"github.com/thoreinstein/awscmds/pkg/fileutil"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// logFileHandle is the open --log-file, closed by Execute.
var logFileHandle *os.File

// configFile holds an explicit config file path.
var configFile string

// outputPath holds the value of the -o/--output flag.
var outputPath string

// appConfig is the configuration loaded by initConfig.
var appConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

// newLister builds the service/command source for a binary. Tests replace it.
var newLister = func(binary string) catalog.Lister {
	return awscli.NewClient(awscli.NewExecRunner(binary))
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress progress lines and non-error logs")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: "+paths.ConfigFile()+")")
	rootCmd.PersistentFlags().String(config.KeyBinary, awscli.DefaultBinary,
		"AWS CLI executable to run")

	rootCmd.Flags().String(config.KeyFormat, string(catalog.FormatLines),
		"output format: lines, json, yaml, toml")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"write the catalog to this file instead of stdout")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("awscmds version {{.Version}}\n")

	// Errors are reported by Execute.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Init resets viper, so flags are bound afterwards.
	_ = viper.BindPFlag(config.KeyBinary, rootCmd.PersistentFlags().Lookup(config.KeyBinary))
	_ = viper.BindPFlag(config.KeyFormat, rootCmd.Flags().Lookup(config.KeyFormat))
	appConfig, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "awscmds",
	Short: "List every AWS CLI service:command pair",
	Long: `awscmds scrapes the AWS CLI's built-in help pages and prints every
service and command as "service:command", one per line.

It runs "aws help" to discover services, then "aws <service> help" for each
one. Progress lines ("Processed ...", "Error processing ...") are printed as
services are visited; the full listing follows once every service is done.
A service whose help page fails is reported and skipped.

The listing is meant to feed a fuzzy finder or shell completion.`,
	Example: `  # Pick a command with fzf
  awscmds -q | fzf

  # Write the catalog to a file
  awscmds -q -o ~/.cache/aws-commands.txt

  # Emit JSON instead of flat lines
  awscmds -q --format json

  # Use a different AWS CLI install
  awscmds --binary /opt/aws-cli/v2/current/bin/aws`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	RunE: runCollect,
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"),
			"Pick one of -q or -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			switch os.Getenv("AWSCMDS_DEBUG") {
			case "1", "true":
				v = 2
			case "2":
				v = 3
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level}

	var primary slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primary = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case logging.FormatText:
		primary = logging.NewHandler(cmd.ErrOrStderr(), opts)
	default:
		return errors.NewUserError(errors.Newf("invalid log format: %s", logFormat),
			"Use --log-format text or --log-format json")
	}

	handler := primary
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		logFileHandle = f
		handler = logging.NewMultiHandler(primary, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces config load errors for commands that need config.
func checkConfig(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

func runCollect(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	var progress io.Writer = out
	if quiet {
		progress = io.Discard
	}

	cat, err := catalog.NewCollector(newLister(appConfig.Binary), progress).Collect(cmd.Context())
	if err != nil {
		return toolError(err)
	}

	format := catalog.Format(appConfig.Format)
	if outputPath == "" {
		return catalog.Write(out, cat, format)
	}

	err = fileutil.AtomicWriteFunc(outputPath, 0644, func(w io.Writer) error {
		return catalog.Write(w, cat, format)
	})
	if err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "writing %s", outputPath),
			"Check that the output directory exists and is writable")
	}
	logging.FromContext(cmd.Context()).Info("wrote catalog",
		"path", outputPath,
		"services", cat.Len())
	return nil
}

// toolError attaches an exit code and suggestion to failures of the
// external tool.
func toolError(err error) error {
	if errors.IsExecError(err) {
		return errors.NewSystemError(err,
			fmt.Sprintf("Check that %q is installed and on your PATH (or set --binary)", appConfig.Binary))
	}
	return err
}

// writeLines prints one entry per line.
func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	return nil
}

// Execute runs the root command, reports any error on stderr and returns
// the process exit code.
func Execute(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	closeLogFile()
	if err == nil {
		return errors.ExitSuccess
	}
	reportError(rootCmd.ErrOrStderr(), err)
	return errors.ExitCode(err)
}

// closeLogFile closes the --log-file handle, if one was opened.
func closeLogFile() {
	if logFileHandle == nil {
		return
	}
	if err := logFileHandle.Close(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Warning: closing log file: %v\n", err)
	}
	logFileHandle = nil
}

// reportError prints err and, when present, its suggestion.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "Suggestion: %s\n", exitErr.Suggestion)
	}
}
