package cli

import (
	"fmt"
	"os"

	"github.com/vitalvas/quorum/mersenne"
	"github.com/vitalvas/quorum/xconfig"
	"github.com/vitalvas/quorum/xlogger"
)

// EnvPrefix prefixes every environment variable read into Config.
const EnvPrefix = "QUORUM"

// Config holds the tool settings. Flags override the environment, which
// overrides the config file, which overrides the defaults below.
type Config struct {
	Threshold  int            `yaml:"threshold" default:"3"`
	Shares     int            `yaml:"shares" default:"5"`
	PrimeIndex int            `yaml:"prime_index" default:"12"`
	Clipboard  bool           `yaml:"clipboard" default:"true"`
	MinKeyBits int            `yaml:"min_key_bits" default:"48"`
	Logging    xlogger.Config `yaml:"logging"`
}

// sensitiveKeys are log attributes that must never reach the output.
var sensitiveKeys = []string{"key", "secret", "share"}

// LoadConfig reads the defaults, the optional file and QUORUM_* variables.
// An explicitly named file must exist.
func LoadConfig(path string) (Config, error) {
	var conf Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return conf, fmt.Errorf("config file: %w", err)
		}
	}

	if err := xconfig.Load(&conf, xconfig.WithFiles(path), xconfig.WithEnv(EnvPrefix), xconfig.WithStrict()); err != nil {
		return conf, err
	}

	conf.Logging.Redact = append(conf.Logging.Redact, sensitiveKeys...)

	return conf, nil
}

// Validate checks the settings that do not depend on the command being run.
func (c Config) Validate() error {
	if _, err := mersenne.Exponent(c.PrimeIndex); err != nil {
		return fmt.Errorf("prime index %d: %w", c.PrimeIndex, err)
	}

	switch c.Logging.LogType {
	case "text", "json", "none":
	default:
		return fmt.Errorf("unknown log type %q", c.Logging.LogType)
	}

	return nil
}
