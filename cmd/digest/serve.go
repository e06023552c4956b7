package main

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/digest-flow/internal/api"
	"github.com/nguyentantai21042004/digest-flow/internal/summarizer"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long:  "Serves GET /health and POST /summarize, which takes {\"text\", \"precision\", \"target\"} and returns the summary with its role breakdown.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := signalContext()
	defer cancel()

	a.banner(ctx, "Digest HTTP API")

	defaults, err := summarizer.DefaultsFromConfig(a.cfg.Summary)
	if err != nil {
		return err
	}
	cfg := a.cfg.Server
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	srv := api.New(cfg, a.cfg.Performance.MaxConcurrent, defaults, a.summarizer, a.log)
	return srv.Start(ctx)
}
