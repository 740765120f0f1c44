package domain

import "context"

type BookingSource interface {
	Load(ctx context.Context) ([]RawBooking, error)
}

type ProjectionSink interface {
	Write(ctx context.Context, p Projection) (ExportResult, error)
}

// Projection is a fixed-column view of the enriched bookings.
// A nil cell is a null.
type Projection struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// NullCount counts nil cells across all rows and columns.
func (p Projection) NullCount() int {
	n := 0
	for _, row := range p.Rows {
		for _, v := range row {
			if v == nil {
				n++
			}
		}
	}
	return n
}

// ExportResult describes one written projection.
type ExportResult struct {
	Name    string
	Path    string
	Rows    int
	Columns int
	SHA256  string
}
