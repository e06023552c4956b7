package export

import (
	"fmt"
	"strings"
)

// Emphasis is the text weight or slant applied to the whole document.
type Emphasis string

const (
	Normal Emphasis = "normal"
	Bold   Emphasis = "bold"
	Italic Emphasis = "italic"
)

// Style is the typography of an exported summary.
type Style struct {
	FontFamily string
	FontSize   int
	Emphasis   Emphasis
}

// Format is an output document type.
type Format string

const (
	PDF  Format = "pdf"
	DOCX Format = "docx"
)

// ParseEmphasis accepts normal, bold or italic.
func ParseEmphasis(s string) (Emphasis, error) {
	switch e := Emphasis(strings.ToLower(strings.TrimSpace(s))); e {
	case Normal, Bold, Italic:
		return e, nil
	case "":
		return Normal, nil
	default:
		return "", fmt.Errorf("unknown emphasis %q (want normal, bold or italic)", s)
	}
}

// ParseFormats turns names like "pdf" or ".DOCX" into Formats, dropping
// duplicates.
func ParseFormats(names []string) ([]Format, error) {
	seen := make(map[Format]bool, len(names))
	var formats []Format
	for _, n := range names {
		f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(n)), "."))
		if f != PDF && f != DOCX {
			return nil, fmt.Errorf("unknown export format %q", n)
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	return formats, nil
}
