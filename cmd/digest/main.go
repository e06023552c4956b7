// Package main is the digest command line: one-shot summaries, an inbox
// watcher, an HTTP API and an MCP server over the same pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "digest",
	Short: "Multilingual extractive summarizer",
	Long: "digest summarizes French, English, German or Spanish documents by scoring " +
		"their sentences in English, translating the summary into the requested language " +
		"and breaking each summary sentence into subject, verb and complement.",
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the YAML config file")
}

func main() {
	// API keys usually live in .env
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
