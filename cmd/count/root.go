package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/countwise/count/internal/cli"
	"github.com/countwise/count/internal/cli/config"
	"github.com/countwise/count/internal/cli/hooks"
	"github.com/countwise/count/pkg/count"
)

var (
	// These are set during build time using -ldflags.
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// Flags for the root command.
	cfgFile   string
	verbose   bool
	csvList   bool
	csvMerged bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "count <command> <file>",
	Short: "Measures text metrics over files.",
	Long: `count computes a scalar metric over the content of text files.

Commands: bytes, characters, words, lines, graphemes, version.

The target is a single file by default. With --csv-list the target is a
CSV manifest of filenames and each listed file is measured individually;
with --csv-merged the listed files are concatenated and measured once.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		command, err := count.ParseCommand(args[0])
		if err != nil {
			return err
		}

		// The version command short-circuits before any file access.
		if command == count.CommandVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "count version %s\n", version)
			return nil
		}
		if len(args) < 2 {
			return fmt.Errorf("missing filename for command %q", args[0])
		}

		mode := count.ModeNormal
		switch {
		case csvList:
			mode = count.ModeCsvList
		case csvMerged:
			mode = count.ModeCsvMerged
		}

		opts, logger, err := config.LoadAndValidate(cfgFile, version, verbose, cmd.Flags())
		if err != nil {
			return err
		}
		opts.Command = command
		opts.TargetPath = args[1]
		opts.FileMode = mode
		opts.EventHooks = hooks.New(logger)
		opts.FileReader = count.OSFileReader{}
		opts.Stdout = cmd.OutOrStdout()

		return cli.Run(ctx, opts, logger)
	},
}

// Execute runs the root command and translates a returned error into the
// process exit code: first failure aborts the run with a diagnostic on
// stderr and a non-zero exit.
func Execute() {
	rootCmd.SetVersionTemplate(`{{.Use}} version {{.Version}}` + "\n")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init registers flags for the root command.
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file path (default is to search ., $HOME/.config/count/)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging output")

	rootCmd.Flags().BoolVar(&csvList, "csv-list", false, "Treat the target as a CSV manifest and measure each listed file")
	rootCmd.Flags().BoolVar(&csvMerged, "csv-merged", false, "Treat the target as a CSV manifest, concatenate the listed files and measure once")
	rootCmd.MarkFlagsMutuallyExclusive("csv-list", "csv-merged")

	rootCmd.Flags().String("output-format", string(count.DefaultOutputFormat), `Run output format ("text", "json" or "yaml")`)
}
