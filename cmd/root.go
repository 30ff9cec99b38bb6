// Package cmd
package cmd

import (
	"fmt"
	"os"

	"github.com/m8811163008/visitor-desing-pattern/service"
	"github.com/spf13/cobra"
)

var GlobalLogger service.Logger = service.NewLogger(false)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "filetree",
	Short: "Export an in-memory media tree as text or XML-like reports",
	Long: `Filetree builds a composite tree of files and directories, either from
built-in sample data or from a git repository, and exports it through
visitor-based formatters: a human-readable report and an XML-like one.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("verbose")
		GlobalLogger = service.NewLogger(debug)
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(exportersCmd)
	RootCmd.AddCommand(serveCmd)
}
