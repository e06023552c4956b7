package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/digest-flow/internal/ingest"
	"github.com/nguyentantai21042004/digest-flow/internal/processor"
	"github.com/nguyentantai21042004/digest-flow/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Summarize every document dropped into the inbox folder",
	Long:  "Watches paths.input and exports a summary for each document into paths.output. Originals move to paths.archived, or paths.failed when summarizing fails.",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := signalContext()
	defer cancel()

	a.banner(ctx, "Digest Inbox Watcher")

	// Verify required directories exist
	if err := ensureDirectories(a.cfg); err != nil {
		return err
	}

	proc, err := processor.New(a.cfg, a.reader, a.summarizer, a.log)
	if err != nil {
		return err
	}

	w, err := watcher.New(a.cfg.Paths.Input, ingest.Supported, proc.Process, a.log, a.cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	a.log.Info(ctx, "Monitoring: %s", a.cfg.Paths.Input)
	a.log.Info(ctx, "Output: %s", a.cfg.Paths.Output)
	a.log.Info(ctx, "Press Ctrl+C to stop")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
