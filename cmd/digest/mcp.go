package main

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/digest-flow/internal/mcpserver"
	"github.com/nguyentantai21042004/digest-flow/internal/summarizer"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the summarizer as MCP tools over stdio",
	Long:  "Speaks the Model Context Protocol on stdin/stdout, exposing the summarize and detect_language tools. Logs go to stderr.",
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := signalContext()
	defer cancel()

	a.banner(ctx, "Digest MCP Server")

	defaults, err := summarizer.DefaultsFromConfig(a.cfg.Summary)
	if err != nil {
		return err
	}

	srv := mcpserver.New(version, defaults, a.summarizer, a.log)
	return srv.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}
