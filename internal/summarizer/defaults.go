package summarizer

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/digest-flow/internal/config"
	"github.com/nguyentantai21042004/digest-flow/internal/lang"
)

// Defaults fill in the precision and target a caller leaves out.
type Defaults struct {
	Precision Precision
	Target    lang.Language
}

// DefaultsFromConfig parses the summary section of the config.
func DefaultsFromConfig(cfg config.SummaryConfig) (Defaults, error) {
	p, err := ParsePrecision(cfg.DefaultPrecision)
	if err != nil {
		return Defaults{}, fmt.Errorf("summary.default_precision: %w", err)
	}
	l, err := lang.Parse(cfg.DefaultTarget)
	if err != nil {
		return Defaults{}, fmt.Errorf("summary.default_target: %w", err)
	}
	return Defaults{Precision: p, Target: l}, nil
}

// Request builds a Request from user input, resolving aliases. A blank
// precision or target takes the default. Text is passed through untouched;
// Summarize owns the blank-text check. problems lists every field that could
// not be parsed.
func (d Defaults) Request(text, precision, target string) (req Request, problems []string) {
	req = Request{Text: text, Precision: d.Precision, Target: d.Target}

	if strings.TrimSpace(precision) != "" {
		p, err := ParsePrecision(precision)
		if err != nil {
			problems = append(problems, err.Error())
		}
		req.Precision = p
	}
	if strings.TrimSpace(target) != "" {
		l, err := lang.Parse(target)
		if err != nil {
			problems = append(problems, err.Error())
		}
		req.Target = l
	}
	return req, problems
}
