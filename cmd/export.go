package cmd

import (
	"fmt"

	"github.com/m8811163008/visitor-desing-pattern/model"
	"github.com/m8811163008/visitor-desing-pattern/service"
	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the media tree in the chosen format",
	Long: `Build the media tree and print the chosen exporter's report to stdout.
By default the built-in demo tree is exported; pass --repo to import the HEAD
tree of a git repository instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
		repoPath, err := cmd.Flags().GetString("repo")
		if err != nil {
			return fmt.Errorf("failed to get repo flag: %w", err)
		}

		exporter, err := service.ExporterByFormat(format)
		if err != nil {
			return err
		}

		root, err := buildTree(repoPath)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), root.Accept(exporter))
		return nil
	},
}

// buildTree returns the demo tree, or the imported repository tree when a
// path is given.
func buildTree(repoPath string) (*model.Directory, error) {
	if repoPath == "" {
		return service.BuildDemoTree(), nil
	}

	importer := service.NewRepositoryImporter(GlobalLogger)
	root, err := importer.ImportPath(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to import repository: %w", err)
	}
	return root, nil
}

func init() {
	exportCmd.Flags().StringP("format", "f", service.FormatText, "export format (text or xml)")
	exportCmd.Flags().StringP("repo", "r", "", "git repository to import (defaults to the built-in demo tree)")
}
