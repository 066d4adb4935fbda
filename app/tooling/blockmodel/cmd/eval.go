package cmd

import (
	"fmt"

	"github.com/ardanlabs/blocksizing/business/core/blocksize"
	"github.com/ardanlabs/blocksizing/business/sys/report"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	derive    bool
	auxiliary bool
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the constraints against a parameter bundle.",
	RunE:  evalRun,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().BoolVarP(&derive, "derive", "d", false, "Ignore supplied storing times and derive them with (7).")
	evalCmd.Flags().BoolVarP(&auxiliary, "auxiliary", "x", false, "Evaluate constraints (16) and (17).")
}

func evalRun(cmd *cobra.Command, args []string) error {
	params, err := loadParams()
	if err != nil {
		return err
	}

	if derive {
		params = params.Derive()
	}
	params.Auxiliary = params.Auxiliary || auxiliary

	traceID := uuid.NewString()

	rpt, err := blocksize.Evaluate(params)
	if err != nil {
		return fmt.Errorf("evaluating bundle: %w", err)
	}

	for _, note := range rpt.Notes {
		log.Warnw("eval", "traceid", traceID, "note", note)
	}
	log.Infow("eval", "traceid", traceID, "bundle", rpt.Bundle, "feasible", rpt.Feasible())

	return report.Write(cmd.OutOrStdout(), format, rpt)
}
