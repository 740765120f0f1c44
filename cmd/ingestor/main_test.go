package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_ontology/internal/adapters/manifest"
	"hotel_ontology/internal/app"
	"hotel_ontology/internal/shared"
)

const inputHeader = "hotel,is_canceled,lead_time,arrival_date_year,arrival_date_month,arrival_date_week_number," +
	"arrival_date_day_of_month,stays_in_weekend_nights,stays_in_week_nights,adults,children,babies\n"

func writeInput(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hotel_bookings.csv")
	require.NoError(t, os.WriteFile(path, []byte(inputHeader+strings.Join(rows, "\n")+"\n"), 0o644))
	return path
}

func testConfig(input, outDir string) shared.Config {
	return shared.Config{
		AppEnv:         "dev",
		InputPath:      input,
		OutputDir:      outDir,
		Delimiter:      ",",
		CostSimulation: true,
		Seed:           42,
		MetricsAddr:    "127.0.0.1:0",
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func ptr[T any](v T) *T { return &v }

func TestRun_EndToEnd(t *testing.T) {
	input := writeInput(t,
		"City Hotel,0,10,2017,July,28,15,1,2,2,NA,0",
		"Resort Hotel,1,10,2017,January,2,15,0,0,1,1,0",
	)
	outDir := filepath.Join(t.TempDir(), "out")
	cfg := testConfig(input, outDir)
	cfg.ManifestPath = filepath.Join(outDir, "manifest.yaml")
	runID := uuid.NewString()

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, runID, &stdout))

	id0 := app.BookingID(0, ptr(10), ptr(2017), ptr(15))
	id1 := app.BookingID(1, ptr(10), ptr(2017), ptr(15))
	require.NotEqual(t, id0, id1)

	assert.Equal(t,
		"booking_id,hotel,is_canceled,lead_time,total_guests,stay_duration\n"+
			id0+",City Hotel,0,10,2,3\n"+
			id1+",Resort Hotel,1,10,2,0\n",
		readFile(t, filepath.Join(outDir, "bookings_core.csv")))

	assert.Equal(t,
		"booking_id,arrival_date_year,arrival_date_month,arrival_date_day_of_month,stays_in_weekend_nights\n"+
			id0+",2017,7,15,1\n"+
			id1+",2017,1,15,0\n",
		readFile(t, filepath.Join(outDir, "arrival_metadata.csv")))

	jitter := app.NewSeededJitter(42)
	cost0 := app.Price(130*1.35*jitter.Jitter(), 3, false)
	cost1 := app.Price(220*0.80*jitter.Jitter(), 0, true)
	assert.Equal(t,
		"booking_id,hotel,is_canceled,stay_duration,total_cost\n"+
			id0+",City Hotel,0,3,"+cost0.StringFixed(2)+"\n"+
			id1+",Resort Hotel,1,0,"+cost1.StringFixed(2)+"\n",
		readFile(t, filepath.Join(outDir, "booking_financials.csv")))

	assert.Contains(t, stdout.String(), "Loaded  : 2 rows")
	assert.Contains(t, stdout.String(), "booking_financials    : 2 rows | 5 columns | nulls = 0")

	m, err := manifest.Read(cfg.ManifestPath)
	require.NoError(t, err)
	assert.Equal(t, runID, m.RunID)
	require.Len(t, m.Outputs, 3)
	assert.Equal(t, "bookings_core.csv", m.Outputs[0].File)
}

func TestRun_RepeatableOutput(t *testing.T) {
	input := writeInput(t,
		"City Hotel,0,10,2017,July,28,15,1,2,2,NA,0",
		"Resort Hotel,0,3,2016,March,10,3,2,5,2,1,1",
		"Hotel X,1,0,2015,December,50,31,0,1,1,0,0",
	)
	outA, outB := t.TempDir(), t.TempDir()
	require.NoError(t, run(context.Background(), testConfig(input, outA), uuid.NewString(), &bytes.Buffer{}))
	require.NoError(t, run(context.Background(), testConfig(input, outB), uuid.NewString(), &bytes.Buffer{}))

	for _, name := range []string{"bookings_core.csv", "arrival_metadata.csv", "booking_financials.csv"} {
		assert.Equal(t, readFile(t, filepath.Join(outA, name)), readFile(t, filepath.Join(outB, name)), name)
	}
}

func TestRun_OutOfRangeIntegerFailsWithoutOutput(t *testing.T) {
	input := writeInput(t, "City Hotel,0,1e300,2017,July,28,15,1,2,2,0,0")
	outDir := filepath.Join(t.TempDir(), "out")

	err := run(context.Background(), testConfig(input, outDir), uuid.NewString(), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0 column lead_time: not an integer")

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr), "no output may be written")
}

func TestRun_UnknownMonthFailsWithoutOutput(t *testing.T) {
	input := writeInput(t, "City Hotel,0,10,2017,Juli,28,15,1,2,2,0,0")
	outDir := filepath.Join(t.TempDir(), "out")

	err := run(context.Background(), testConfig(input, outDir), uuid.NewString(), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arrival_metadata")

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_BadDelimiter(t *testing.T) {
	cfg := testConfig(writeInput(t), t.TempDir())
	cfg.Delimiter = "||"
	require.Error(t, run(context.Background(), cfg, uuid.NewString(), &bytes.Buffer{}))
}
