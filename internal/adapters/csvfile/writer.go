package csvfile

import (
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"hotel_ontology/internal/domain"
)

type Writer struct {
	dir   string
	comma rune
}

func NewWriter(dir string, comma rune) *Writer {
	return &Writer{dir: dir, comma: comma}
}

// Write stores p as <dir>/<name>.csv. The file is written under a temporary
// name and renamed, so a failed write never leaves a truncated projection.
func (w *Writer) Write(ctx context.Context, p domain.Projection) (domain.ExportResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ExportResult{}, err
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return domain.ExportResult{}, err
	}
	path := filepath.Join(w.dir, p.Name+".csv")
	tmp, err := os.CreateTemp(w.dir, "."+p.Name+"-*.csv")
	if err != nil {
		return domain.ExportResult{}, err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	sum, err := Encode(tmp, p, w.comma)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return domain.ExportResult{}, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return domain.ExportResult{}, err
	}
	return domain.ExportResult{
		Name:    p.Name,
		Path:    path,
		Rows:    len(p.Rows),
		Columns: len(p.Columns),
		SHA256:  sum,
	}, nil
}

// Encode writes the header and rows of p and returns the SHA-256 of the output.
func Encode(out io.Writer, p domain.Projection, comma rune) (string, error) {
	h := sha256.New()
	cw := csv.NewWriter(io.MultiWriter(out, h))
	cw.Comma = comma

	if err := cw.Write(p.Columns); err != nil {
		return "", err
	}
	rec := make([]string, len(p.Columns))
	for i, row := range p.Rows {
		if len(row) != len(p.Columns) {
			return "", fmt.Errorf("%s row %d: %d cells for %d columns", p.Name, i, len(row), len(p.Columns))
		}
		for j, v := range row {
			s, err := formatCell(v)
			if err != nil {
				return "", fmt.Errorf("%s row %d column %s: %w", p.Name, i, p.Columns[j], err)
			}
			rec[j] = s
		}
		if err := cw.Write(rec); err != nil {
			return "", err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func formatCell(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case int:
		return strconv.Itoa(t), nil
	case decimal.Decimal:
		return t.StringFixed(2), nil
	}
	return "", fmt.Errorf("unsupported cell type %T", v)
}
