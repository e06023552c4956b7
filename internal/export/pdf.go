package export

import (
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin     = 50.0
	pdfLineFactor = 1.2
)

// Core PDF fonts standing in for the families offered to users.
var pdfFonts = map[string]string{
	"Arial":           "Helvetica",
	"Times New Roman": "Times",
	"Calibri":         "Helvetica",
}

// WritePDF writes text on US Letter pages with 50pt margins, wrapping words
// to the text width and breaking pages as needed.
func WritePDF(path, text string, style Style) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	size := float64(style.FontSize)
	pdf.SetFont(pdfFont(style.FontFamily), pdfStyle(style.Emphasis), size)

	// Core fonts are cp1252; accented letters need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := pdf.GetPageSize()
	maxWidth := pageWidth - 2*pdfMargin

	measure := func(s string) float64 { return pdf.GetStringWidth(tr(s)) }
	for _, line := range wrapLines(text, measure, maxWidth) {
		pdf.CellFormat(0, size*pdfLineFactor, tr(line), "", 1, "L", false, 0, "")
	}

	return pdf.OutputFileAndClose(path)
}

func pdfFont(family string) string {
	if f, ok := pdfFonts[family]; ok {
		return f
	}
	return "Helvetica"
}

func pdfStyle(e Emphasis) string {
	switch e {
	case Bold:
		return "B"
	case Italic:
		return "I"
	default:
		return ""
	}
}

// wrapLines greedily fills lines up to maxWidth. Existing line breaks are
// kept; a word wider than a line gets a line of its own.
func wrapLines(text string, measure func(string) float64, maxWidth float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, w := range words[1:] {
			candidate := current + " " + w
			if measure(candidate) > maxWidth {
				lines = append(lines, current)
				current = w
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}
