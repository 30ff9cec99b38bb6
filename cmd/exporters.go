package cmd

import (
	"fmt"

	"github.com/m8811163008/visitor-desing-pattern/service"
	"github.com/spf13/cobra"
)

// exportersCmd represents the exporters command
var exportersCmd = &cobra.Command{
	Use:   "exporters",
	Short: "List the available exporters",
	Long:  `List each supported export format together with its human label.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, format := range service.Formats() {
			exporter, err := service.ExporterByFormat(format)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", format, exporter.Title())
		}
		return nil
	},
}
