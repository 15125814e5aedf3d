package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Defaults used when neither the environment nor flags name a path.
const (
	DefaultInput    = "public/images/logo.webp"
	DefaultOutput   = "public/images/logo_trimmed.webp"
	DefaultLogLevel = "info"
)

// Config holds the settings for one trim run: the source and destination
// paths and the log level. Command-line flags are applied on top by the caller.
type Config struct {
	Input    string
	Output   string
	LogLevel string

	// EnvFile is the .env file that was applied, empty if none was found.
	EnvFile string
}

// Load reads the optional env files, then the IMAGE_TRIM_* variables. With no
// files given it looks for .env in the working directory. Variables already
// set in the process environment win over file entries.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	cfg := &Config{}

	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) > 0 {
		if err := godotenv.Load(present...); err != nil {
			return nil, err
		}
		cfg.EnvFile = present[0]
	}

	cfg.Input = getEnv("IMAGE_TRIM_INPUT", DefaultInput)
	cfg.Output = getEnv("IMAGE_TRIM_OUTPUT", DefaultOutput)
	cfg.LogLevel = getEnv("IMAGE_TRIM_LOG_LEVEL", DefaultLogLevel)

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
