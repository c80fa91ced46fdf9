package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Dr-Dre420/unlostai/internal/advisor"
	"github.com/Dr-Dre420/unlostai/internal/advisor/gemini"
	"github.com/Dr-Dre420/unlostai/internal/logger"
	"github.com/Dr-Dre420/unlostai/internal/secrets"
)

var errAdvisorDisabled = errors.New("advisor is disabled")

func newPlanner(ctx context.Context, cfg *AdvisorConfig, log *zap.Logger) (advisor.Planner, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errAdvisorDisabled
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported advisor provider: %s", cfg.Provider)
	}

	gcfg := cfg.Gemini
	if gcfg == nil {
		gcfg = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: gcfg.APIKey,
		Env:   "GEMINI_API_KEY",
		File:  gcfg.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set advisor.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	genLogger := logger.WithAdvisor(log, "gemini", gcfg.Model).With(
		zap.Int("advisor_retry_attempts", gcfg.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, gcfg.Model, gcfg.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewPlanner(generator, cfg.MaxLogLength, logger.WithAdvisor(log, "gemini", generator.Model())), nil
}
