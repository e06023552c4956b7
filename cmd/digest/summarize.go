package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/digest-flow/internal/export"
	"github.com/nguyentantai21042004/digest-flow/internal/roles"
	"github.com/nguyentantai21042004/digest-flow/internal/summarizer"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize one document",
	Long:  "Summarizes a .txt, .md, .docx or .pdf file (or stdin) and prints the summary with its role table. Optionally exports the summary as PDF and DOCX.",
	RunE:  runSummarize,
}

var (
	summarizeIn        string
	summarizePrecision string
	summarizeTarget    string
	summarizeExportDir string
	summarizeFormats   []string
	summarizeJSON      bool
)

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeIn, "in", "i", "", "Document to summarize (default stdin)")
	summarizeCmd.Flags().StringVarP(&summarizePrecision, "precision", "p", "", "high, medium or low (default from config)")
	summarizeCmd.Flags().StringVarP(&summarizeTarget, "target", "t", "", "Summary language: fr, en, de or es (default from config)")
	summarizeCmd.Flags().StringVar(&summarizeExportDir, "export-dir", "", "Write the summary as documents into this directory")
	summarizeCmd.Flags().StringSliceVar(&summarizeFormats, "format", nil, "Export formats, pdf and/or docx (default from config)")
	summarizeCmd.Flags().BoolVar(&summarizeJSON, "json", false, "Print the response as JSON")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := signalContext()
	defer cancel()

	req, err := summarizeRequest(a)
	if err != nil {
		return err
	}

	if summarizeIn != "" {
		req.Text, err = a.reader.Read(ctx, summarizeIn)
	} else {
		var data []byte
		data, err = io.ReadAll(cmd.InOrStdin())
		req.Text = string(data)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	resp, err := a.summarizer.Summarize(ctx, req)
	if err != nil {
		return err
	}

	if summarizeExportDir != "" {
		paths, err := exportSummary(ctx, a, resp)
		if err != nil {
			return err
		}
		for _, p := range paths {
			a.log.Info(ctx, "Exported: %s", p)
		}
	}

	out := cmd.OutOrStdout()
	if summarizeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	color.New(color.Bold).Fprintf(out, "Summary (%s, from %s)\n", resp.Language.Name(), resp.SourceLanguage.Name())
	fmt.Fprintf(out, "%s\n\n", resp.Summary)
	return printRoles(out, resp.Roles)
}

// summarizeRequest applies flag overrides on top of the configured defaults.
func summarizeRequest(a *app) (summarizer.Request, error) {
	defaults, err := summarizer.DefaultsFromConfig(a.cfg.Summary)
	if err != nil {
		return summarizer.Request{}, err
	}
	req, problems := defaults.Request("", summarizePrecision, summarizeTarget)
	if len(problems) > 0 {
		return summarizer.Request{}, &summarizer.ValidationError{Problems: problems}
	}
	return req, nil
}

func exportSummary(ctx context.Context, a *app, resp *summarizer.Response) ([]string, error) {
	names := a.cfg.Export.Formats
	if len(summarizeFormats) > 0 {
		names = summarizeFormats
	}
	formats, err := export.ParseFormats(names)
	if err != nil {
		return nil, err
	}
	emphasis, err := export.ParseEmphasis(a.cfg.Export.Emphasis)
	if err != nil {
		return nil, err
	}
	style := export.Style{FontFamily: a.cfg.Export.FontFamily, FontSize: a.cfg.Export.FontSize, Emphasis: emphasis}

	base := "summary"
	if summarizeIn != "" {
		base = strings.TrimSuffix(filepath.Base(summarizeIn), filepath.Ext(summarizeIn))
	}

	paths, err := export.Export(ctx, resp.Summary, style, summarizeExportDir, base, formats)
	if err != nil {
		return nil, err
	}
	rolesPath := filepath.Join(summarizeExportDir, base+".roles.tsv")
	if err := export.WriteRoles(rolesPath, resp.Roles); err != nil {
		return nil, err
	}
	return append(paths, rolesPath), nil
}

// printRoles renders the role breakdown as an aligned table, one row per
// summary sentence.
func printRoles(w io.Writer, records []roles.Record) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.SeparatorsNone,
				Lines:      tw.LinesNone,
			},
		}),
	)

	rows := make([][]string, 0, len(records))
	for i, r := range records {
		rows = append(rows, []string{fmt.Sprint(i + 1), dash(r.Subject), dash(r.Verb), dash(r.Complement)})
	}

	table.Header([]string{"#", "Subject", "Verb", "Complement"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
