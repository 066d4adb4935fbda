// This program evaluates a block sizing parameter bundle in one shot. All
// settings come from flags or BLOCKMODEL_ environment variables.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ardanlabs/blocksizing/business/core/blocksize"
	"github.com/ardanlabs/blocksizing/business/sys/report"
	"github.com/ardanlabs/blocksizing/foundation/logger"
	"github.com/ardanlabs/conf/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// Construct the application logger. The report owns stdout.
	log, err := logger.New("EVALUATOR", "stderr")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the evaluation.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Params struct {
			File      string `conf:"help:json or yaml bundle; the reference bundle is used when empty"`
			Derive    bool   `conf:"default:false,help:ignore supplied STk and use (7)"`
			Auxiliary bool   `conf:"default:false,help:evaluate constraints (16) and (17)"`
		}
		Output struct {
			Format string `conf:"default:text,help:text or json"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "block sizing constraint evaluator",
		},
	}

	// Parse will set the defaults and then look for any overriding values
	// in environment variables and command line flags.
	const prefix = "BLOCKMODEL"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	traceID := uuid.NewString()
	log.Infow("starting evaluation", "version", build, "traceid", traceID)
	defer log.Infow("evaluation complete", "traceid", traceID)

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// =========================================================================
	// Parameter Bundle

	params := blocksize.Reference()
	if cfg.Params.File != "" {
		if params, err = blocksize.Load(cfg.Params.File); err != nil {
			return err
		}
	}

	if cfg.Params.Derive {
		params = params.Derive()
	}
	params.Auxiliary = params.Auxiliary || cfg.Params.Auxiliary

	// =========================================================================
	// Evaluation

	rpt, err := blocksize.Evaluate(params)
	if err != nil {
		if ipe := blocksize.GetInvalidParameters(err); ipe != nil {
			log.Errorw("evaluate", "traceid", traceID, "field", ipe.Field(), "fields", ipe.Fields.Fields())
		}
		return fmt.Errorf("evaluating bundle: %w", err)
	}

	for _, note := range rpt.Notes {
		log.Warnw("evaluate", "traceid", traceID, "note", note)
	}
	log.Infow("evaluate", "traceid", traceID, "bundle", rpt.Bundle, "feasible", rpt.Feasible(), "violations", rpt.Violations())

	if err := report.Write(os.Stdout, cfg.Output.Format, rpt); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
