package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyVerbose     = "verbose"
	KeyPrecision   = "precision"
	KeyNoNewline   = "no_newline"
	KeyMetricsFile = "metrics_file"
	KeyLogFile     = "log_file"
)

// DefaultPrecision matches the default floating-point text conversion.
const DefaultPrecision = 6

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"verbose":      KeyVerbose,
	"precision":    KeyPrecision,
	"no-newline":   KeyNoNewline,
	"metrics-file": KeyMetricsFile,
	"log-file":     KeyLogFile,
}

// Settings is the resolved configuration for one run.
type Settings struct {
	Verbose     bool
	Precision   int
	Newline     bool
	MetricsFile string
	LogFile     string
}

// Load initializes the configuration from .env, an optional config file and
// CALC_* environment variables. A missing config.yaml in the working
// directory is not an error; a missing or unreadable explicit cfgFile is.
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

	viper.SetEnvPrefix("CALC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyPrecision, DefaultPrecision)
	viper.SetDefault(KeyNoNewline, false)
	viper.SetDefault(KeyMetricsFile, "")
	viper.SetDefault(KeyLogFile, "")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// BindFlags binds the known flags in fs to their configuration keys so that
// an explicitly set flag overrides file and environment values.
func BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Get returns the current settings.
func Get() Settings {
	return Settings{
		Verbose:     viper.GetBool(KeyVerbose),
		Precision:   viper.GetInt(KeyPrecision),
		Newline:     !viper.GetBool(KeyNoNewline),
		MetricsFile: viper.GetString(KeyMetricsFile),
		LogFile:     viper.GetString(KeyLogFile),
	}
}
