package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/digest-flow/internal/config"
	"github.com/nguyentantai21042004/digest-flow/internal/ingest"
	"github.com/nguyentantai21042004/digest-flow/internal/lang"
	"github.com/nguyentantai21042004/digest-flow/internal/logger"
	"github.com/nguyentantai21042004/digest-flow/internal/roles"
	"github.com/nguyentantai21042004/digest-flow/internal/summarizer"
)

type fakeSummarizer struct {
	err  error
	reqs []summarizer.Request
}

func (f *fakeSummarizer) Summarize(ctx context.Context, req summarizer.Request) (*summarizer.Response, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return &summarizer.Response{
		RequestID: logger.RequestID(ctx),
		Summary:   "Le chat est noir.",
		Language:  req.Target,
		Roles:     []roles.Record{{Subject: "chat"}},
	}, nil
}

func testConfig(t *testing.T) *config.Config {
	root := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			Input:      filepath.Join(root, "input"),
			Output:     filepath.Join(root, "output"),
			Processing: filepath.Join(root, "processing"),
			Archived:   filepath.Join(root, "archived"),
			Failed:     filepath.Join(root, "failed"),
		},
		Export: config.ExportConfig{Formats: []string{"docx"}},
	}
	require.NoError(t, cfg.Validate())
	require.NoError(t, os.MkdirAll(cfg.Paths.Input, 0755))
	return cfg
}

func dropDocument(t *testing.T, cfg *config.Config, name, text string) string {
	path := filepath.Join(cfg.Paths.Input, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestProcessArchivesAndExports(t *testing.T) {
	cfg := testConfig(t)
	sum := &fakeSummarizer{}
	p, err := New(cfg, ingest.New(cfg.Ingest, nil), sum, logger.Discard())
	require.NoError(t, err)

	doc := dropDocument(t, cfg, "notes.txt", "The cat is black. The dog sleeps.")
	require.NoError(t, p.Process(context.Background(), doc))

	require.Len(t, sum.reqs, 1)
	assert.Equal(t, "The cat is black. The dog sleeps.", sum.reqs[0].Text)
	assert.Equal(t, summarizer.Medium, sum.reqs[0].Precision)
	assert.Equal(t, lang.French, sum.reqs[0].Target)

	assert.FileExists(t, filepath.Join(cfg.Paths.Output, "notes.docx"))
	assert.NoFileExists(t, filepath.Join(cfg.Paths.Output, "notes.pdf"))
	table, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "notes.roles.tsv"))
	require.NoError(t, err)
	assert.Equal(t, "sentence\tsubject\tverb\tcomplement\n1\tchat\t\t\n", string(table))

	assert.NoFileExists(t, doc)
	assert.FileExists(t, filepath.Join(cfg.Paths.Archived, "notes.txt"))
}

func TestProcessMovesFailuresAside(t *testing.T) {
	cfg := testConfig(t)
	sum := &fakeSummarizer{err: summarizer.ErrEmptyContent}
	p, err := New(cfg, ingest.New(cfg.Ingest, nil), sum, logger.Discard())
	require.NoError(t, err)

	doc := dropDocument(t, cfg, "empty.md", "...")
	err = p.Process(context.Background(), doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, summarizer.ErrEmptyContent))

	assert.FileExists(t, filepath.Join(cfg.Paths.Failed, "empty.md"))
	assert.NoFileExists(t, filepath.Join(cfg.Paths.Archived, "empty.md"))
	assert.NoFileExists(t, filepath.Join(cfg.Paths.Output, "empty.docx"))
}

func TestProcessUnsupportedFormat(t *testing.T) {
	cfg := testConfig(t)
	sum := &fakeSummarizer{}
	p, err := New(cfg, ingest.New(cfg.Ingest, nil), sum, logger.Discard())
	require.NoError(t, err)

	doc := dropDocument(t, cfg, "clip.mp4", "binary")
	err = p.Process(context.Background(), doc)
	assert.ErrorIs(t, err, ingest.ErrUnsupportedFormat)
	assert.Empty(t, sum.reqs)
	assert.FileExists(t, filepath.Join(cfg.Paths.Failed, "clip.mp4"))
}

func TestNewRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
	}{
		{"precision", func(c *config.Config) { c.Summary.DefaultPrecision = "extreme" }},
		{"target", func(c *config.Config) { c.Summary.DefaultTarget = "it" }},
		{"emphasis", func(c *config.Config) { c.Export.Emphasis = "underline" }},
		{"format", func(c *config.Config) { c.Export.Formats = []string{"odt"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.modify(cfg)
			_, err := New(cfg, ingest.New(cfg.Ingest, nil), &fakeSummarizer{}, logger.Discard())
			assert.Error(t, err)
		})
	}
}
