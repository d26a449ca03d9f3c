package xconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogging struct {
	Level  string   `yaml:"level" default:"info"`
	Redact []string `yaml:"redact" default:"key, secret"`
}

type testConfig struct {
	Threshold  int         `yaml:"threshold" default:"3"`
	Shares     int         `yaml:"shares" default:"5"`
	PrimeIndex uint        `yaml:"prime_index" default:"12"`
	Clipboard  bool        `yaml:"clipboard" default:"true"`
	Name       string      `yaml:"name"`
	Ignored    string      `yaml:"-" default:"kept"`
	Logging    testLogging `yaml:"logging"`
	hidden     string
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var conf testConfig
	require.NoError(t, Load(&conf))

	assert.Equal(t, 3, conf.Threshold)
	assert.Equal(t, 5, conf.Shares)
	assert.Equal(t, uint(12), conf.PrimeIndex)
	assert.True(t, conf.Clipboard)
	assert.Equal(t, "", conf.Name)
	assert.Equal(t, "kept", conf.Ignored)
	assert.Equal(t, "info", conf.Logging.Level)
	assert.Equal(t, []string{"key", "secret"}, conf.Logging.Redact)
	assert.Equal(t, "", conf.hidden)
}

func TestLoadKeepsPresetValues(t *testing.T) {
	conf := testConfig{Threshold: 7}
	require.NoError(t, Load(&conf))

	assert.Equal(t, 7, conf.Threshold)
	assert.Equal(t, 5, conf.Shares)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "quorum.yaml", `
threshold: 4
clipboard: false
logging:
  level: debug
`)

	var conf testConfig
	require.NoError(t, Load(&conf, WithFiles(path)))

	assert.Equal(t, 4, conf.Threshold)
	assert.Equal(t, 5, conf.Shares)
	assert.False(t, conf.Clipboard)
	assert.Equal(t, "debug", conf.Logging.Level)
}

func TestLoadFiles(t *testing.T) {
	t.Run("later file wins", func(t *testing.T) {
		first := writeFile(t, "a.yml", "threshold: 4\nshares: 9\n")
		second := writeFile(t, "b.yml", "threshold: 6\n")

		var conf testConfig
		require.NoError(t, Load(&conf, WithFiles(first, second)))

		assert.Equal(t, 6, conf.Threshold)
		assert.Equal(t, 9, conf.Shares)
	})

	t.Run("missing file is skipped", func(t *testing.T) {
		var conf testConfig
		err := Load(&conf, WithFiles(filepath.Join(t.TempDir(), "absent.yaml"), ""))
		require.NoError(t, err)
		assert.Equal(t, 3, conf.Threshold)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "empty.yaml", "")

		var conf testConfig
		require.NoError(t, Load(&conf, WithFiles(path)))
		assert.Equal(t, 3, conf.Threshold)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "conf.toml", "threshold = 4")

		var conf testConfig
		err := Load(&conf, WithFiles(path))
		assert.ErrorContains(t, err, "unsupported file extension")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "threshold: [")

		var conf testConfig
		assert.Error(t, Load(&conf, WithFiles(path)))
	})

	t.Run("strict rejects unknown keys", func(t *testing.T) {
		path := writeFile(t, "strict.yaml", "threshold: 4\nunknown: 1\n")

		var conf testConfig
		assert.NoError(t, Load(&conf, WithFiles(path)))
		assert.Error(t, Load(&conf, WithFiles(path), WithStrict()))
	})
}

func TestLoadEnv(t *testing.T) {
	path := writeFile(t, "quorum.yaml", "threshold: 4\nshares: 8\n")

	t.Setenv("QUORUM_THRESHOLD", "6")
	t.Setenv("QUORUM_CLIPBOARD", "false")
	t.Setenv("QUORUM_LOGGING_LEVEL", "warn")
	t.Setenv("QUORUM_LOGGING_REDACT", "a,b")
	t.Setenv("QUORUM_IGNORED", "changed")

	var conf testConfig
	require.NoError(t, Load(&conf, WithFiles(path), WithEnv("quorum")))

	assert.Equal(t, 6, conf.Threshold)
	assert.Equal(t, 8, conf.Shares)
	assert.False(t, conf.Clipboard)
	assert.Equal(t, "warn", conf.Logging.Level)
	assert.Equal(t, []string{"a", "b"}, conf.Logging.Redact)
	assert.Equal(t, "kept", conf.Ignored)
}

func TestLoadEnvErrors(t *testing.T) {
	t.Setenv("QUORUM_SHARES", "many")

	var conf testConfig
	err := Load(&conf, WithEnv("QUORUM"))
	assert.ErrorContains(t, err, "QUORUM_SHARES")
}

func TestLoadInvalidTarget(t *testing.T) {
	var conf testConfig
	assert.Error(t, Load(conf))
	assert.Error(t, Load((*testConfig)(nil)))

	n := 3
	assert.Error(t, Load(&n))
}

func TestLoadInvalidDefault(t *testing.T) {
	var conf struct {
		Count int `default:"three"`
	}
	assert.Error(t, Load(&conf))

	var unsupported struct {
		Ratio float64 `default:"0.5"`
	}
	assert.Error(t, Load(&unsupported))
}

func TestCamelToSnake(t *testing.T) {
	tests := map[string]string{
		"Threshold":  "threshold",
		"PrimeIndex": "prime_index",
		"HTTPServer": "http_server",
		"LogType":    "log_type",
		"ID":         "id",
	}

	for in, expected := range tests {
		assert.Equal(t, expected, camelToSnake(in), in)
	}
}
