package export

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
)

var reParagraphBreak = regexp.MustCompile(`\n\s*\n`)

// WriteDOCX writes text as a Word document, one paragraph per blank-line
// separated block, every run in the given style.
func WriteDOCX(path, text string, style Style) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	for _, block := range paragraphs(text) {
		run := doc.AddParagraph("").AddText(block).
			Font(style.FontFamily).
			Size(uint64(style.FontSize)).
			Color("000000")
		switch style.Emphasis {
		case Bold:
			run.Bold(true)
		case Italic:
			run.Italic(true)
		}
	}

	return doc.SaveTo(path)
}

func paragraphs(text string) []string {
	var out []string
	for _, block := range reParagraphBreak.Split(strings.TrimSpace(text), -1) {
		block = strings.Join(strings.Fields(block), " ")
		if block != "" {
			out = append(out, block)
		}
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}
