package cmd

import (
	"fmt"

	"github.com/m8811163008/visitor-desing-pattern/server"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the export reports over HTTP",
	Long: `Start an HTTP server exposing the exporter list and the export
artifacts of the media tree.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := cmd.Flags().GetString("addr")
		if err != nil {
			return fmt.Errorf("failed to get addr flag: %w", err)
		}
		repoPath, err := cmd.Flags().GetString("repo")
		if err != nil {
			return fmt.Errorf("failed to get repo flag: %w", err)
		}

		root, err := buildTree(repoPath)
		if err != nil {
			return err
		}

		h := server.NewHandler(root, GlobalLogger)
		e := server.SetupRouter(h)

		GlobalLogger.Info("listening", "addr", addr)
		return e.Start(addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().StringP("repo", "r", "", "git repository to import (defaults to the built-in demo tree)")
}
