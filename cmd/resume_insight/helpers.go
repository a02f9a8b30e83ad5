package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-insight/internal/config"
	"github.com/jonathan/resume-insight/internal/dedup"
	"github.com/jonathan/resume-insight/internal/extraction"
	"github.com/jonathan/resume-insight/internal/ingestion"
	"github.com/jonathan/resume-insight/internal/llm"
	"github.com/jonathan/resume-insight/internal/logger"
	"github.com/jonathan/resume-insight/internal/nlp"
	"github.com/jonathan/resume-insight/internal/pipeline"
	"github.com/jonathan/resume-insight/internal/store"
	"github.com/jonathan/resume-insight/internal/types"
)

// resolveConfig layers configuration: environment variables win over the
// optional config file.
func resolveConfig() (config.Config, error) {
	cfg := config.FromEnv()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func buildLogger() (*zap.Logger, error) {
	return logger.New(jsonLogs, verbose)
}

// openStore connects to PostgreSQL and ensures the schema exists.
func openStore(ctx context.Context, cfg config.Config) (*store.Store, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL is required (set DATABASE_URL or database_url in the config file)")
	}
	s, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := s.InitSchema(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// buildPipeline assembles the processing pipeline over a connected store.
// Without an API key the external analysis degrades to default scores.
func buildPipeline(ctx context.Context, cfg config.Config, s *store.Store, log *zap.Logger) (*pipeline.Pipeline, func(), error) {
	extractor := extraction.NewExtractor(nlp.NewRuleParser())
	detector := dedup.NewDetector(nlp.NewHashingEmbedder(), log)
	parser := ingestion.NewParser(cfg.MaxFileSize)

	cleanup := func() {}
	var analyzer pipeline.ExternalAnalyzer
	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, cfg.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		cleanup = func() { _ = client.Close() }
		analyzer = llm.NewAnalyzer(client, llm.DefaultModels(), log)
	} else {
		log.Warn("no API key configured, external analysis will use default scores")
		analyzer = unavailableAnalyzer{}
	}

	return pipeline.New(parser, extractor, detector, analyzer, s, log), cleanup, nil
}

// unavailableAnalyzer stands in when no API key is configured.
type unavailableAnalyzer struct{}

func (unavailableAnalyzer) Analyze(context.Context, string, string) types.ExternalAnalysis {
	return llm.DefaultAnalysis()
}
