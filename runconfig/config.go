package runconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the ambient configuration for every hierclust CLI entrypoint.
// Not every field applies to every command; recpart reads Algo/Lambda,
// recpart_attr reads Lambda, all of them read the observability fields.
// K/A/Beta are loaded but no command reads them: hi2vec and hi2vec_attr
// take k, a and beta from their positional arguments.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	SentryDSN   string `yaml:"sentry_dsn"`
	MetricsDir  string `yaml:"metrics_dir"`
	DatabaseURL string `yaml:"database_url"`

	Algo   int     `yaml:"algo"`
	Lambda float64 `yaml:"lambda"`

	K    int     `yaml:"k"`
	A    float64 `yaml:"a"`
	Beta float64 `yaml:"beta"`

	Seed int64 `yaml:"seed"`
}

// defaults mirrors the CLI surface's own stated defaults (§6): algo 1
// (Louvain-complete), lambda 0.2, a reasonable log level.
func defaults() Config {
	return Config{
		LogLevel: "info",
		Algo:     1,
		Lambda:   0.2,
		K:        8,
		A:        0.5,
		Beta:     1.0,
	}
}

// Load builds a Config from defaults, an optional YAML file at yamlPath
// (skipped silently if yamlPath is empty or the file does not exist), and
// environment variables (loaded from a ".env" file in the working
// directory, if any, before being read) — in that order of increasing
// precedence.
func Load(yamlPath string) (Config, error) {
	cfg := defaults()

	if yamlPath != "" {
		if data, err := os.ReadFile(yamlPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("runconfig: parsing %s: %w", yamlPath, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("runconfig: reading %s: %w", yamlPath, err)
		}
	}

	_ = godotenv.Load() // best-effort; absence of .env is not an error

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HIERCLUST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SENTRY_DSN"); v != "" {
		cfg.SentryDSN = v
	}
	if v := os.Getenv("HIERCLUST_METRICS_DIR"); v != "" {
		cfg.MetricsDir = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v, ok := envInt("HIERCLUST_ALGO"); ok {
		cfg.Algo = v
	}
	if v, ok := envFloat("HIERCLUST_LAMBDA"); ok {
		cfg.Lambda = v
	}
	if v, ok := envInt("HIERCLUST_K"); ok {
		cfg.K = v
	}
	if v, ok := envFloat("HIERCLUST_A"); ok {
		cfg.A = v
	}
	if v, ok := envFloat("HIERCLUST_BETA"); ok {
		cfg.Beta = v
	}
	if v, ok := envInt64("HIERCLUST_SEED"); ok {
		cfg.Seed = v
	}
}

func envInt(key string) (int, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envInt64(key string) (int64, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envFloat(key string) (float64, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
