package shared

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv          string `yaml:"app_env" env:"APP_ENV" env-default:"prod"`
	InputPath       string `yaml:"input_path" env:"INPUT_PATH" env-default:"archive/hotel_bookings.csv"`
	OutputDir       string `yaml:"output_dir" env:"OUTPUT_DIR" env-default:"."`
	Delimiter       string `yaml:"delimiter" env:"CSV_DELIMITER" env-default:","`
	CostSimulation  bool   `yaml:"cost_simulation" env:"COST_SIMULATION" env-default:"true"`
	Seed            uint64 `yaml:"seed" env:"RANDOM_SEED" env-default:"42"`
	ManifestPath    string `yaml:"manifest_path" env:"MANIFEST_PATH"`
	MetricsAddr     string `yaml:"metrics_addr" env:"METRICS_ADDR"`
	MetricsTextfile string `yaml:"metrics_textfile" env:"METRICS_TEXTFILE"`
}

// Load reads .env when present, then CONFIG_FILE (YAML) if set. Environment
// variables override values from the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env could not be parsed; continuing with environment")
	}

	var c Config
	var err error
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		err = cleanenv.ReadConfig(path, &c)
	} else {
		err = cleanenv.ReadEnv(&c)
	}
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if _, err := c.Comma(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Comma returns the delimiter as a single rune.
func (c Config) Comma() (rune, error) {
	r, size := utf8.DecodeRuneInString(c.Delimiter)
	if r == utf8.RuneError || size != len(c.Delimiter) || r == '"' || r == '\n' || r == '\r' {
		return 0, fmt.Errorf("CSV_DELIMITER must be a single character, got %q", c.Delimiter)
	}
	return r, nil
}
