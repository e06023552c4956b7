package ingest

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrUnsupportedFormat is returned for file extensions Read cannot handle.
var ErrUnsupportedFormat = errors.New("unsupported document format")

var supportedFormats = []string{".txt", ".md", ".docx", ".pdf", ".html", ".htm"}

// Supported reports whether path has an extension Read understands.
func Supported(path string) bool {
	return slices.Contains(supportedFormats, strings.ToLower(filepath.Ext(path)))
}

// Read returns the text of a .txt, .md, .docx, .pdf or .html file.
func (r *implReader) Read(ctx context.Context, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read text: %w", err)
		}
		return string(data), nil
	case ".docx":
		return readDOCX(path)
	case ".html", ".htm":
		return readHTML(path)
	case ".pdf":
		out, err := r.executor.Execute(ctx, r.pdfToText, "-enc", "UTF-8", path, "-")
		if err != nil {
			return "", fmt.Errorf("extract pdf text: %w", err)
		}
		// pdftotext separates pages with form feeds.
		return strings.ReplaceAll(out, "\f", "\n"), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// readDOCX pulls paragraph text out of word/document.xml, one line per
// paragraph.
func readDOCX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open document.xml: %w", err)
		}
		defer rc.Close()
		return documentText(rc)
	}
	return "", fmt.Errorf("open docx: word/document.xml not found")
}

func documentText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			case "br":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return b.String(), nil
}
