// Package csvfile reads raw bookings from and writes projections to delimited files.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"hotel_ontology/internal/domain"
)

// naMarkers are read as null, like pandas' default na_values.
var naMarkers = map[string]struct{}{
	"": {}, "NA": {}, "N/A": {}, "n/a": {}, "NaN": {}, "nan": {}, "-NaN": {}, "-nan": {},
	"null": {}, "NULL": {}, "None": {}, "#N/A": {}, "<NA>": {},
}

type Reader struct {
	path  string
	comma rune
}

func NewReader(path string, comma rune) *Reader {
	return &Reader{path: path, comma: comma}
}

func (r *Reader) Load(ctx context.Context) ([]domain.RawBooking, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(ctx, f, r.comma)
}

// Parse reads a header row and one RawBooking per data row.
func Parse(ctx context.Context, in io.Reader, comma rune) ([]domain.RawBooking, error) {
	cr := csv.NewReader(in)
	cr.Comma = comma

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty input: header row required")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[name]; !dup { // first occurrence wins
			idx[name] = i
		}
	}
	var missing []string
	for _, c := range domain.RequiredColumns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingColumn, strings.Join(missing, ", "))
	}

	var out []domain.RawBooking
	for row := 0; ; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		p := rowParser{rec: rec, idx: idx, row: row}
		b := domain.RawBooking{
			Row:           row,
			Hotel:         p.text(domain.ColHotel),
			IsCanceled:    p.integer(domain.ColIsCanceled),
			LeadTime:      p.integer(domain.ColLeadTime),
			ArrivalYear:   p.integer(domain.ColArrivalYear),
			ArrivalMonth:  p.text(domain.ColArrivalMonth),
			ArrivalDay:    p.integer(domain.ColArrivalDay),
			WeekendNights: p.integer(domain.ColWeekendNights),
			WeekNights:    p.integer(domain.ColWeekNights),
			Adults:        p.integer(domain.ColAdults),
			Children:      p.integer(domain.ColChildren),
			Babies:        p.integer(domain.ColBabies),
		}
		if p.err != nil {
			return nil, p.err
		}
		out = append(out, b)
	}
	return out, nil
}

// rowParser keeps the first conversion error so a row can be decoded field by field.
type rowParser struct {
	rec []string
	idx map[string]int
	row int
	err error
}

func (p *rowParser) text(col string) *string {
	s := p.rec[p.idx[col]]
	if isNA(s) {
		return nil
	}
	return &s
}

func (p *rowParser) integer(col string) *int {
	s := strings.TrimSpace(p.rec[p.idx[col]])
	if isNA(s) {
		return nil
	}
	n, err := parseInt(s)
	if err != nil {
		if p.err == nil {
			p.err = fmt.Errorf("row %d column %s: %w", p.row, col, err)
		}
		return nil
	}
	return &n
}

func isNA(s string) bool {
	_, ok := naMarkers[strings.TrimSpace(s)]
	return ok
}

// parseInt accepts plain integers and integral floats such as "2.0".
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < float64(math.MinInt) || f >= float64(math.MaxInt) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int(f), nil
}
