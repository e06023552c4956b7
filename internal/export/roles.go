package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/nguyentantai21042004/digest-flow/internal/roles"
)

// WriteRoles writes the role breakdown as a tab-separated table with a
// header row, one line per sentence.
func WriteRoles(path string, records []roles.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create roles table: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write([]string{"sentence", "subject", "verb", "complement"}); err != nil {
		return err
	}
	for i, r := range records {
		if err := w.Write([]string{strconv.Itoa(i + 1), r.Subject, r.Verb, r.Complement}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write roles table: %w", err)
	}
	return f.Close()
}
