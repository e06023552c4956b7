package ingest

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const htmlNoise = "script, style, noscript, nav, footer, header, aside, form"

// readHTML returns the visible text of an HTML page, one line per paragraph
// when the page has paragraphs and the whole body otherwise.
func readHTML(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open html: %w", err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	doc.Find(htmlNoise).Remove()

	var lines []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, blockquote").Each(func(_ int, s *goquery.Selection) {
		if line := cleanWhitespace(s.Text()); line != "" {
			lines = append(lines, line)
		}
	})
	if len(lines) > 0 {
		return strings.Join(lines, "\n"), nil
	}
	return cleanWhitespace(doc.Find("body").Text()), nil
}

func cleanWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
