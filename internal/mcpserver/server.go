package mcpserver

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nguyentantai21042004/digest-flow/internal/lang"
	"github.com/nguyentantai21042004/digest-flow/internal/metrics"
)

func (s *implServer) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info(ctx, "MCP server listening on stdio")
	err := server.NewStdioServer(s.mcp).Listen(ctx, in, out)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (s *implServer) handleSummarize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req, problems := s.defaults.Request(text, request.GetString("precision", ""), request.GetString("target", ""))
	if len(problems) > 0 {
		return mcp.NewToolResultError("invalid request: " + strings.Join(problems, "; ")), nil
	}

	start := time.Now()
	metrics.InFlight.Inc()
	resp, err := s.summarizer.Summarize(ctx, req)
	metrics.InFlight.Dec()
	metrics.RecordSummary(string(req.Target), metrics.Outcome(err), time.Since(start).Seconds())
	if err != nil {
		s.logger.Error(ctx, "Summarize tool failed: %v", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultStructured(resp, resp.Summary), nil
}

type detectResult struct {
	Language lang.Language `json:"language"`
	Name     string        `json:"name"`
}

func (s *implServer) handleDetect(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	l := lang.Detect(text)
	return mcp.NewToolResultStructured(detectResult{Language: l, Name: l.Name()}, string(l)), nil
}
