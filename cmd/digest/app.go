package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/digest-flow/internal/annotator"
	"github.com/nguyentantai21042004/digest-flow/internal/config"
	"github.com/nguyentantai21042004/digest-flow/internal/ingest"
	"github.com/nguyentantai21042004/digest-flow/internal/logger"
	"github.com/nguyentantai21042004/digest-flow/internal/summarizer"
	"github.com/nguyentantai21042004/digest-flow/internal/translator"
	"github.com/nguyentantai21042004/digest-flow/pkg/executor"
)

// app holds the collaborators shared by every command.
type app struct {
	cfg        *config.Config
	log        logger.Logger
	annotators annotator.Registry
	reader     ingest.Reader
	summarizer summarizer.Summarizer
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// stdout is reserved for command output
	log := logger.NewWithWriter(cfg.Logging.Level, os.Stderr)

	tr, err := translator.New(cfg.Translator, log)
	if err != nil {
		return nil, err
	}
	annotators := annotator.New(cfg.Annotator, log)

	return &app{
		cfg:        cfg,
		log:        log,
		annotators: annotators,
		reader:     ingest.New(cfg.Ingest, executor.New()),
		summarizer: summarizer.New(annotators, tr, log),
	}, nil
}

// Close stops the annotator workers.
func (a *app) Close() error {
	return a.annotators.Close()
}

func (a *app) banner(ctx context.Context, title string) {
	a.log.Info(ctx, "========================================")
	a.log.Info(ctx, "%s", title)
	a.log.Info(ctx, "========================================")
	a.log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	a.log.Info(ctx, "Translator: %s", a.cfg.Translator.Provider)
	a.log.Info(ctx, "Max Concurrent Summaries: %d", a.cfg.Performance.MaxConcurrent)
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// ensureDirectories creates the inbox folders if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Processing,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Failed,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
