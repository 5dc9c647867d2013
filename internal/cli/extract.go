package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/startwise/eventscribe/internal/clean"
	"github.com/startwise/eventscribe/internal/config"
	"github.com/startwise/eventscribe/internal/logger"
	"github.com/startwise/eventscribe/internal/pipeline"
)

// ExtractCommand runs the calendar extraction pipeline.
type ExtractCommand struct {
	globals *GlobalFlags
}

func (c *ExtractCommand) Execute(args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(c.globals.Config)
	if err != nil {
		return err
	}
	if err := cfg.ValidateExtract(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)

	// The review gate reads row indices from the terminal; the run blocks
	// there until the reviewer answers.
	reviewer := &clean.PromptReviewer{In: os.Stdin, Out: os.Stdout}

	return pipeline.NewExtract(cfg, reviewer, log).Run(ctx)
}
