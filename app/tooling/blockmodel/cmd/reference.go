package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Print the bundle selected by --file, or the reference bundle, as json or yaml.",
	RunE:  referenceRun,
}

func init() {
	rootCmd.AddCommand(referenceCmd)
}

func referenceRun(cmd *cobra.Command, args []string) error {
	params, err := loadParams()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(params); err != nil {
			return err
		}
		return enc.Close()

	case "json", "text":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(params)
	}

	return fmt.Errorf("format %q is not supported", format)
}
