package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"measure/pkg/block"
)

func TestLoad(t *testing.T) {
	defer viper.Reset()

	t.Run("Defaults", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())

		require.NoError(t, Load(""))

		s := Current()
		assert.Equal(t, block.DefaultBounds(), s.Bounds())
		assert.Equal(t, "text", s.Format)
		assert.Equal(t, "auto", s.Color)
		assert.False(t, s.Verbose)
		assert.False(t, s.Trace)
	})

	t.Run("Load From Env", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())
		t.Setenv("MEASURE_ITERATIONS_MAX", "50")
		t.Setenv("MEASURE_DURATION_MAX", "250ms")
		t.Setenv("MEASURE_FORMAT", "yaml")

		require.NoError(t, Load(""))

		s := Current()
		assert.Equal(t, 50, s.MaxIterations)
		assert.Equal(t, 250*time.Millisecond, s.MaxDuration)
		assert.Equal(t, "yaml", s.Format)
	})

	t.Run("Load From File", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		chdir(t, dir)
		content := "iterations:\n  min: 5\n  max: 10\nduration:\n  max: 1s\ncolor: never\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

		require.NoError(t, Load(""))

		s := Current()
		assert.Equal(t, block.Bounds{MinIterations: 5, MaxIterations: 10, MaxDuration: time.Second}, s.Bounds())
		assert.Equal(t, "never", s.Color)
		assert.NoError(t, s.Validate())
	})

	t.Run("Explicit File Missing", func(t *testing.T) {
		viper.Reset()
		err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
