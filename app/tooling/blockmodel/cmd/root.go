// Package cmd contains the blockmodel app.
package cmd

import (
	"fmt"
	"os"

	"github.com/ardanlabs/blocksizing/business/core/blocksize"
	"github.com/ardanlabs/blocksizing/foundation/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	paramsFile string
	format     string
)

// log is constructed before any command runs.
var log *zap.SugaredLogger

func init() {
	rootCmd.PersistentFlags().StringVarP(&paramsFile, "file", "f", "", "Path to a json or yaml parameter bundle, the reference bundle when empty.")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "o", "text", "Output format.")
}

var rootCmd = &cobra.Command{
	Use:           "blockmodel",
	Short:         "Block sizing model for committing nodes",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		log, err = logger.New("BLOCKMODEL", "stderr")
		return err
	},
}

// Execute runs the command specified on the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if log != nil {
			log.Errorw("blockmodel", "ERROR", err)
			log.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// loadParams returns the bundle named by the file flag or the reference
// bundle when no file was provided.
func loadParams() (blocksize.Params, error) {
	if paramsFile == "" {
		return blocksize.Reference(), nil
	}

	return blocksize.Load(paramsFile)
}
