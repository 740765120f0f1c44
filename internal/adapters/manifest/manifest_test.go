package manifest_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_ontology/internal/adapters/manifest"
	"hotel_ontology/internal/domain"
)

func TestWriteRead(t *testing.T) {
	runID := uuid.NewString()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	exports := []domain.ExportResult{
		{Name: "bookings_core", Path: "/data/out/bookings_core.csv", Rows: 10, Columns: 6, SHA256: "aa"},
		{Name: "arrival_metadata", Path: "/data/out/arrival_metadata.csv", Rows: 10, Columns: 5, SHA256: "bb"},
	}
	m := manifest.New(runID, "archive/hotel_bookings.csv", 42, false, 10, exports, now)

	path := filepath.Join(t.TempDir(), "runs", "manifest.yaml")
	require.NoError(t, manifest.Write(path, m))

	got, err := manifest.Read(path)
	require.NoError(t, err)
	assert.Equal(t, runID, got.RunID)
	assert.True(t, now.Equal(got.GeneratedAt))
	assert.Equal(t, uint64(42), got.Seed)
	assert.False(t, got.CostSimulation)
	require.Len(t, got.Outputs, 2)
	assert.Equal(t, "bookings_core.csv", got.Outputs[0].File)
	assert.Equal(t, 5, got.Outputs[1].Columns)
	assert.Equal(t, "bb", got.Outputs[1].SHA256)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "run_id: "+runID)
}

func TestRead_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("outputs: [unterminated"), 0o644))
	_, err := manifest.Read(path)
	require.Error(t, err)
}
