package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	// -1 selects the shortest round-trip representation
	if viper.IsSet(KeyPrecision) {
		raw := viper.Get(KeyPrecision)
		p, err := cast.ToIntE(raw)
		if err != nil {
			errors = append(errors, fmt.Sprintf("precision must be an integer, got: %v", raw))
		} else if p < -1 || p > 17 {
			errors = append(errors, fmt.Sprintf("precision must be between -1 and 17, got: %d", p))
		}
	}

	for _, key := range []string{KeyMetricsFile, KeyLogFile} {
		path := viper.GetString(key)
		if path == "" {
			continue
		}
		dir := filepath.Dir(path)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			errors = append(errors, fmt.Sprintf("%s directory does not exist: %s", key, dir))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}

	return nil
}
