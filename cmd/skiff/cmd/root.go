// Package cmd implements the skiff CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (render, serve, version).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-skiff/skiff/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "skiff",
	Short: "Skiff - HTML render-tree engine",
	Long: `Skiff parses HTML and builds a styled render tree: a root node plus
one text node per text run, carrying the resolved font, size, and weight.

Use "skiff <command> --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		errors.SetHandler(&errors.LogHandler{Verbose: verbose})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "log detailed errors with stack traces")
	rootCmd.PersistentFlags().String("config-dir", ".", "directory containing skiff.yaml")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "skiff: %v\n", err)
		return err
	}
	return nil
}
