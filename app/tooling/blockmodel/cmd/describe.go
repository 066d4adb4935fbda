package cmd

import (
	"github.com/ardanlabs/blocksizing/business/sys/report"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the parameters, decision variables and constraints of the model.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return report.Describe(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
