// Package manifest records what a run produced, one YAML document per run.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"hotel_ontology/internal/domain"
)

type Manifest struct {
	RunID          string    `yaml:"run_id"`
	GeneratedAt    time.Time `yaml:"generated_at"`
	Input          string    `yaml:"input"`
	Seed           uint64    `yaml:"seed"`
	CostSimulation bool      `yaml:"cost_simulation"`
	Rows           int       `yaml:"rows"`
	Outputs        []Output  `yaml:"outputs"`
}

type Output struct {
	Name    string `yaml:"name"`
	File    string `yaml:"file"`
	Rows    int    `yaml:"rows"`
	Columns int    `yaml:"columns"`
	SHA256  string `yaml:"sha256"`
}

func New(runID, input string, seed uint64, costSimulation bool, rows int, exports []domain.ExportResult, now time.Time) Manifest {
	m := Manifest{
		RunID:          runID,
		GeneratedAt:    now.UTC(),
		Input:          input,
		Seed:           seed,
		CostSimulation: costSimulation,
		Rows:           rows,
		Outputs:        make([]Output, 0, len(exports)),
	}
	for _, e := range exports {
		m.Outputs = append(m.Outputs, Output{
			Name:    e.Name,
			File:    filepath.Base(e.Path),
			Rows:    e.Rows,
			Columns: e.Columns,
			SHA256:  e.SHA256,
		})
	}
	return m
}

func Write(path string, m Manifest) error {
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, b, 0o644)
}

func Read(path string) (Manifest, error) {
	var m Manifest
	b, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return m, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return m, nil
}
