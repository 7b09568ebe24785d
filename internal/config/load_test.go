package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoad(t *testing.T) {
	defer viper.Reset()

	t.Run("Defaults", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())

		require.NoError(t, Load(""))

		s := Get()
		assert.Equal(t, DefaultPrecision, s.Precision)
		assert.True(t, s.Newline)
		assert.False(t, s.Verbose)
		assert.Empty(t, s.MetricsFile)

		_, err := os.Stat("config.yaml")
		assert.True(t, os.IsNotExist(err), "Load must not create a config file")
	})

	t.Run("Load From Env", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())
		t.Setenv("CALC_PRECISION", "10")
		t.Setenv("CALC_NO_NEWLINE", "true")

		require.NoError(t, Load(""))

		s := Get()
		assert.Equal(t, 10, s.Precision)
		assert.False(t, s.Newline)
	})

	t.Run("Load From Dotenv", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		chdir(t, dir)
		require.NoError(t, os.WriteFile(".env", []byte("CALC_VERBOSE=true\n"), 0644))
		t.Cleanup(func() { os.Unsetenv("CALC_VERBOSE") })

		require.NoError(t, Load(""))
		assert.True(t, Get().Verbose)
	})

	t.Run("Config File In Working Directory", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		chdir(t, dir)
		require.NoError(t, os.WriteFile("config.yaml", []byte("precision: 3\nlog_file: calc.log\n"), 0644))

		require.NoError(t, Load(""))

		s := Get()
		assert.Equal(t, 3, s.Precision)
		assert.Equal(t, "calc.log", s.LogFile)
	})

	t.Run("Explicit Config File", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())
		path := filepath.Join(t.TempDir(), "calc.yaml")
		require.NoError(t, os.WriteFile(path, []byte("precision: -1\n"), 0644))

		require.NoError(t, Load(path))
		assert.Equal(t, -1, Get().Precision)
	})

	t.Run("Missing Explicit Config File", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())

		err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}

func TestBindFlags(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	chdir(t, t.TempDir())

	fs := pflag.NewFlagSet("calc", pflag.ContinueOnError)
	fs.IntP("precision", "p", DefaultPrecision, "")
	fs.Bool("no-newline", false, "")
	fs.String("metrics-file", "", "")
	fs.String("unrelated", "", "")

	require.NoError(t, BindFlags(fs))
	require.NoError(t, Load(""))

	// Unchanged flags fall back to the configured default
	assert.Equal(t, DefaultPrecision, Get().Precision)

	require.NoError(t, fs.Parse([]string{"-p", "12", "--no-newline", "--metrics-file", "/tmp/calc.prom"}))

	s := Get()
	assert.Equal(t, 12, s.Precision)
	assert.False(t, s.Newline)
	assert.Equal(t, "/tmp/calc.prom", s.MetricsFile)
}
