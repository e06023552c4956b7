package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nguyentantai21042004/digest-flow/internal/logger"
	"github.com/nguyentantai21042004/digest-flow/internal/summarizer"
)

const (
	serverName = "digest"

	toolSummarize = "summarize"
	toolDetect    = "detect_language"
)

type implServer struct {
	mcp        *server.MCPServer
	summarizer summarizer.Summarizer
	defaults   summarizer.Defaults
	logger     logger.Logger
}

// New registers the summarize and detect_language tools.
func New(version string, defaults summarizer.Defaults, sum summarizer.Summarizer, log logger.Logger) Server {
	s := &implServer{
		summarizer: sum,
		defaults:   defaults,
		logger:     log,
	}

	s.mcp = server.NewMCPServer(serverName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions("Summarize French, English, German or Spanish text into any of those languages."),
	)

	s.mcp.AddTool(mcp.NewTool(toolSummarize,
		mcp.WithDescription("Extractive summary of a text, translated to the target language, with a subject/verb/complement breakdown of each summary sentence."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to summarize")),
		mcp.WithString("precision", mcp.Description("Share of sentences kept: high 30%, medium 20%, low 10%"),
			mcp.Enum("high", "medium", "low")),
		mcp.WithString("target", mcp.Description("Summary language"),
			mcp.Enum("fr", "en", "de", "es")),
		mcp.WithReadOnlyHintAnnotation(true),
	), s.handleSummarize)

	s.mcp.AddTool(mcp.NewTool(toolDetect,
		mcp.WithDescription("Guess whether a text is French, English, German or Spanish."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to inspect")),
		mcp.WithReadOnlyHintAnnotation(true),
	), s.handleDetect)

	return s
}
