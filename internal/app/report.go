package app

import (
	"fmt"
	"io"

	"hotel_ontology/internal/domain"
)

type Report struct {
	Loaded         int
	ChildrenFilled int
	UniqueIDs      int
	Exports        []domain.ExportResult
}

// Print writes the human-readable run summary.
func (r Report) Print(w io.Writer) error {
	lines := []string{
		fmt.Sprintf("Loaded  : %d rows", r.Loaded),
		fmt.Sprintf("Unique booking_ids : %d  (all %d rows distinct)", r.UniqueIDs, r.Loaded),
	}
	for _, e := range r.Exports {
		lines = append(lines, fmt.Sprintf("%-22s: %d rows | %d columns | nulls = 0", e.Name, e.Rows, e.Columns))
	}
	lines = append(lines, "", "Exported:")
	for _, e := range r.Exports {
		lines = append(lines, fmt.Sprintf("  %-22s : %s", e.Name+".csv", e.Path))
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
