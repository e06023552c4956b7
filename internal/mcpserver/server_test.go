package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/digest-flow/internal/lang"
	"github.com/nguyentantai21042004/digest-flow/internal/logger"
	"github.com/nguyentantai21042004/digest-flow/internal/roles"
	"github.com/nguyentantai21042004/digest-flow/internal/summarizer"
)

type fakeSummarizer struct {
	err error
	got summarizer.Request
}

func (f *fakeSummarizer) Summarize(_ context.Context, req summarizer.Request) (*summarizer.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &summarizer.Response{
		Summary:        "Der Hund schläft.",
		Language:       req.Target,
		SourceLanguage: lang.English,
		Roles:          []roles.Record{{Subject: "Hund", Verb: "schläft"}},
	}, nil
}

func newTestServer(sum summarizer.Summarizer) *implServer {
	defaults := summarizer.Defaults{Precision: summarizer.Medium, Target: lang.French}
	return New("test", defaults, sum, logger.Discard()).(*implServer)
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok)
	return text.Text
}

func TestSummarizeTool(t *testing.T) {
	sum := &fakeSummarizer{}
	s := newTestServer(sum)

	res, err := s.handleSummarize(context.Background(), callRequest(toolSummarize, map[string]any{
		"text":      "The dog sleeps.",
		"precision": "précis",
		"target":    "de",
	}))
	require.NoError(t, err)

	assert.False(t, res.IsError)
	assert.Equal(t, "Der Hund schläft.", resultText(t, res))
	assert.Equal(t, summarizer.Request{Text: "The dog sleeps.", Precision: summarizer.High, Target: lang.German}, sum.got)

	resp, ok := res.StructuredContent.(*summarizer.Response)
	require.True(t, ok)
	assert.Equal(t, "Hund", resp.Roles[0].Subject)
}

func TestSummarizeToolDefaults(t *testing.T) {
	sum := &fakeSummarizer{}
	s := newTestServer(sum)

	res, err := s.handleSummarize(context.Background(), callRequest(toolSummarize, map[string]any{"text": "x"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, summarizer.Medium, sum.got.Precision)
	assert.Equal(t, lang.French, sum.got.Target)
}

func TestSummarizeToolErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]any
		sumErr   error
		contains string
	}{
		{"missing text", map[string]any{}, nil, `"text"`},
		{"text not a string", map[string]any{"text": 3}, nil, "not a string"},
		{"bad target", map[string]any{"text": "x", "target": "it"}, nil, "invalid request"},
		{"summarizer failure", map[string]any{"text": "x"}, summarizer.ErrEmptyContent, "nothing to summarize"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(&fakeSummarizer{err: tt.sumErr})
			res, err := s.handleSummarize(context.Background(), callRequest(toolSummarize, tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Contains(t, resultText(t, res), tt.contains)
		})
	}
}

func TestDetectTool(t *testing.T) {
	s := newTestServer(&fakeSummarizer{})

	res, err := s.handleDetect(context.Background(), callRequest(toolDetect, map[string]any{
		"text": "Der Hund ist müde und die Katze schläft.",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "de", resultText(t, res))
	assert.Equal(t, detectResult{Language: lang.German, Name: "German"}, res.StructuredContent)

	res, err = s.handleDetect(context.Background(), callRequest(toolDetect, nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestListTools(t *testing.T) {
	s := newTestServer(&fakeSummarizer{})

	msg := s.mcp.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var out struct {
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(data, &out))

	var names []string
	for _, tool := range out.Result.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{toolSummarize, toolDetect}, names)
}

func TestSummarizeToolPassesThroughUnexpectedErrors(t *testing.T) {
	s := newTestServer(&fakeSummarizer{err: errors.New("boom")})
	res, err := s.handleSummarize(context.Background(), callRequest(toolSummarize, map[string]any{"text": "x"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "boom", resultText(t, res))
}
