package summarizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrEmptyContent is returned when the text has no sentence or no word left
// after stop words and punctuation are dropped.
var ErrEmptyContent = errors.New("nothing to summarize: no scorable words")

// ValidationError is returned for a malformed Request, before any work.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + strings.Join(e.Problems, "; ")
}

func newValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Problems: []string{err.Error()}}
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "notblank":
			problems = append(problems, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		case "oneof":
			problems = append(problems, fmt.Sprintf("%s must be one of [%s], got %q", strings.ToLower(fe.Field()), fe.Param(), fe.Value()))
		default:
			problems = append(problems, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
	}
	return &ValidationError{Problems: problems}
}
