// Package config loads BioSpeak settings from defaults, an optional YAML
// file and BIOSPEAK_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/aria-lang/biospeak-go/internal/filemap"
)

// EnvPrefix prefixes environment overrides, e.g. BIOSPEAK_SERVER_ADDR.
const EnvPrefix = "BIOSPEAK"

// FileName is the config file searched for when no path is given.
const FileName = "biospeak.yaml"

type Config struct {
	Log          LogConfig          `mapstructure:"log"`
	Server       ServerConfig       `mapstructure:"server"`
	Integrations IntegrationsConfig `mapstructure:"integrations"`
	SelfTest     SelfTestConfig     `mapstructure:"selftest"`
	FileMap      FileMapConfig      `mapstructure:"filemap"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ServerConfig struct {
	Addr           string        `mapstructure:"addr"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxSessions    int           `mapstructure:"max_sessions"`
}

// IntegrationsConfig switches the optional backends layered over the
// built-in fallback.
type IntegrationsConfig struct {
	GonumStats bool `mapstructure:"gonum_stats"`
	GonumPlot  bool `mapstructure:"gonum_plot"`
}

// SelfTestConfig lists the external commands run by "verify project",
// each as argv.
type SelfTestConfig struct {
	Commands [][]string    `mapstructure:"commands"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type FileMapConfig struct {
	Root    string   `mapstructure:"root"`
	Exclude []string `mapstructure:"exclude"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "json"},
		Server: ServerConfig{
			Addr:           ":8080",
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   30 * time.Second,
			RequestTimeout: 30 * time.Second,
			MaxSessions:    256,
		},
		Integrations: IntegrationsConfig{GonumStats: true, GonumPlot: true},
		SelfTest:     SelfTestConfig{Commands: [][]string{}, Timeout: 2 * time.Minute},
		FileMap:      FileMapConfig{Root: ".", Exclude: append([]string(nil), filemap.DefaultExclude...)},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.request_timeout", d.Server.RequestTimeout)
	v.SetDefault("server.max_sessions", d.Server.MaxSessions)
	v.SetDefault("integrations.gonum_stats", d.Integrations.GonumStats)
	v.SetDefault("integrations.gonum_plot", d.Integrations.GonumPlot)
	v.SetDefault("selftest.commands", d.SelfTest.Commands)
	v.SetDefault("selftest.timeout", d.SelfTest.Timeout)
	v.SetDefault("filemap.root", d.FileMap.Root)
	v.SetDefault("filemap.exclude", d.FileMap.Exclude)
}

// Load reads configuration. With an empty path, biospeak.yaml is looked up
// in the working directory and in $HOME/.biospeak, and a missing file is
// not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.biospeak")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	if c.Server.MaxSessions < 1 {
		return fmt.Errorf("server.max_sessions must be positive, got %d", c.Server.MaxSessions)
	}
	for i, argv := range c.SelfTest.Commands {
		if len(argv) == 0 {
			return fmt.Errorf("selftest.commands[%d] is empty", i)
		}
	}
	return nil
}

// fileConfig mirrors Config with durations as text for YAML output.
type fileConfig struct {
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Server struct {
		Addr           string `yaml:"addr"`
		ReadTimeout    string `yaml:"read_timeout"`
		WriteTimeout   string `yaml:"write_timeout"`
		RequestTimeout string `yaml:"request_timeout"`
		MaxSessions    int    `yaml:"max_sessions"`
	} `yaml:"server"`
	Integrations struct {
		GonumStats bool `yaml:"gonum_stats"`
		GonumPlot  bool `yaml:"gonum_plot"`
	} `yaml:"integrations"`
	SelfTest struct {
		Commands [][]string `yaml:"commands"`
		Timeout  string     `yaml:"timeout"`
	} `yaml:"selftest"`
	FileMap struct {
		Root    string   `yaml:"root"`
		Exclude []string `yaml:"exclude"`
	} `yaml:"filemap"`
}

// YAML renders the configuration in the format Load reads.
func (c Config) YAML() ([]byte, error) {
	var f fileConfig
	f.Log.Level, f.Log.Format = c.Log.Level, c.Log.Format
	f.Server.Addr = c.Server.Addr
	f.Server.ReadTimeout = c.Server.ReadTimeout.String()
	f.Server.WriteTimeout = c.Server.WriteTimeout.String()
	f.Server.RequestTimeout = c.Server.RequestTimeout.String()
	f.Server.MaxSessions = c.Server.MaxSessions
	f.Integrations.GonumStats = c.Integrations.GonumStats
	f.Integrations.GonumPlot = c.Integrations.GonumPlot
	f.SelfTest.Commands = c.SelfTest.Commands
	f.SelfTest.Timeout = c.SelfTest.Timeout.String()
	f.FileMap.Root = c.FileMap.Root
	f.FileMap.Exclude = c.FileMap.Exclude
	return yaml.Marshal(&f)
}

// WriteDefault writes the default configuration to path. An existing file
// is left alone.
func WriteDefault(path string) error {
	data, err := Default().YAML()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
