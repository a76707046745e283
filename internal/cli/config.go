package cli

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "MODOP"
	defaultModulus = "1000000007"
	defaultType    = "int64"
	defaultLevel   = "info"

	// defaultMaxIndex keeps the factorial tables of one invocation in the
	// tens of megabytes.
	defaultMaxIndex = 10_000_000
)

// Config is the resolved command line configuration. Modulus stays textual
// until the integer type is known, so it is parsed at the selected width.
type Config struct {
	Modulus  string `mapstructure:"modulus"`
	Type     string `mapstructure:"type"`
	LogLevel string `mapstructure:"log-level"`
	// MaxIndex bounds n and r of fact, perm and comb. The generator stores
	// two table entries per index up to n.
	MaxIndex int `mapstructure:"max-index"`
}

// bindFlags registers the persistent flags and wires them, plus the
// environment, into v.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.StringP("modulus", "m", defaultModulus, "modulus of every value")
	flags.StringP("type", "t", defaultType, "integer type: "+strings.Join(typeNames(), ", "))
	flags.String("log-level", defaultLevel, "log level: debug, info, warn, error")
	flags.Int("max-index", defaultMaxIndex, "largest n or r accepted by fact, perm and comb")

	for _, name := range []string{"modulus", "type", "log-level", "max-index"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// loadConfig reads the optional config file and unmarshals v into a Config.
func loadConfig(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config file %s", file)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding configuration")
	}
	cfg.Type = strings.ToLower(strings.TrimSpace(cfg.Type))

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, ok := calculators[c.Type]; !ok {
		return errors.Errorf("unknown integer type %q (want one of %s)", c.Type, strings.Join(typeNames(), ", "))
	}
	if strings.TrimSpace(c.Modulus) == "" {
		return errors.New("modulus must be set")
	}
	if c.MaxIndex <= 0 {
		return errors.Errorf("max-index must be positive, got %d", c.MaxIndex)
	}

	return nil
}
