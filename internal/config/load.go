// Package config loads the settings of the measure command from an optional
// config file, a .env file, environment variables and bound flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"measure/pkg/block"
)

// Configuration keys.
const (
	KeyIterationsMin = "iterations.min"
	KeyIterationsMax = "iterations.max"
	KeyDurationMin   = "duration.min"
	KeyDurationMax   = "duration.max"
	KeyFormat        = "format"
	KeyColor         = "color"
	KeyVerbose       = "verbose"
	KeyLogFile       = "log_file"
	KeyMetricsFile   = "metrics_file"
	KeyTrace         = "trace"
)

// Supported values of KeyFormat and KeyColor.
var (
	Formats = []string{"text", "markdown", "yaml"}
	Colors  = []string{"auto", "always", "never"}
)

// SetDefaults registers the default value of every key.
func SetDefaults() {
	defaults := block.DefaultBounds()
	viper.SetDefault(KeyIterationsMin, defaults.MinIterations)
	viper.SetDefault(KeyIterationsMax, defaults.MaxIterations)
	viper.SetDefault(KeyDurationMin, defaults.MinDuration)
	viper.SetDefault(KeyDurationMax, defaults.MaxDuration)
	viper.SetDefault(KeyFormat, "text")
	viper.SetDefault(KeyColor, "auto")
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyMetricsFile, "")
	viper.SetDefault(KeyTrace, false)
}

// Load initializes the configuration from file and environment variables.
// A missing config file is not an error unless cfgFile names it explicitly.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("MEASURE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	return nil
}

// Settings is the typed view of the configuration.
type Settings struct {
	MinIterations int
	MaxIterations int
	MinDuration   time.Duration
	MaxDuration   time.Duration
	Format        string
	Color         string
	Verbose       bool
	LogFile       string
	MetricsFile   string
	Trace         bool
}

// Current returns the settings currently held by viper.
func Current() Settings {
	return Settings{
		MinIterations: viper.GetInt(KeyIterationsMin),
		MaxIterations: viper.GetInt(KeyIterationsMax),
		MinDuration:   viper.GetDuration(KeyDurationMin),
		MaxDuration:   viper.GetDuration(KeyDurationMax),
		Format:        viper.GetString(KeyFormat),
		Color:         viper.GetString(KeyColor),
		Verbose:       viper.GetBool(KeyVerbose),
		LogFile:       viper.GetString(KeyLogFile),
		MetricsFile:   viper.GetString(KeyMetricsFile),
		Trace:         viper.GetBool(KeyTrace),
	}
}

// Bounds returns the repeat bounds of timed cases.
func (s Settings) Bounds() block.Bounds {
	return block.Bounds{
		MinIterations: s.MinIterations,
		MaxIterations: s.MaxIterations,
		MinDuration:   s.MinDuration,
		MaxDuration:   s.MaxDuration,
	}
}
