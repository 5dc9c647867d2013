package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/startwise/eventscribe/internal/config"
	"github.com/startwise/eventscribe/internal/logger"
	"github.com/startwise/eventscribe/internal/pipeline"
	"github.com/startwise/eventscribe/internal/summarize"
	"github.com/startwise/eventscribe/internal/token"
)

// SummarizeCommand runs the transcript summarization pipeline.
type SummarizeCommand struct {
	globals *GlobalFlags
}

func (c *SummarizeCommand) Execute(args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(c.globals.Config)
	if err != nil {
		return err
	}
	if err := cfg.ValidateSummarize(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)

	// Model capabilities are constructed once and reused for every chunk.
	tok, err := token.NewWordPiece(cfg.Summarize.VocabPath)
	if err != nil {
		return fmt.Errorf("load tokenizer: %w", err)
	}
	gen, err := summarize.NewGeminiGenerator(cfg.Gemini.Model, cfg.Gemini.APIKeys, log)
	if err != nil {
		return fmt.Errorf("create generator: %w", err)
	}
	pauser := summarize.SleepPauser{
		Duration: time.Duration(cfg.Summarize.PauseSeconds) * time.Second,
	}

	return pipeline.NewSummarize(cfg, tok, gen, pauser, log).Run(ctx)
}
