// Package config provides configuration management for workday.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// TimerConfig holds the timer durations.
type TimerConfig struct {
	FocusMinutes      int `mapstructure:"focus_minutes"`
	ShortBreakMinutes int `mapstructure:"short_break_minutes"`
	LongBreakMinutes  int `mapstructure:"long_break_minutes"`
	LongBreakAfter    int `mapstructure:"long_break_after"`
}

// TelegramConfig holds the notification endpoint credentials.
type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
	Enabled  bool   `mapstructure:"enabled"`
}

// Config holds all configuration for the workday application.
type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	Timer    TimerConfig    `mapstructure:"timer"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			FocusMinutes:      25,
			ShortBreakMinutes: 5,
			LongBreakMinutes:  15,
			LongBreakAfter:    4,
		},
	}
}

// Paths is the resolved file layout shared by the CLI, the control
// client, and the daemon. It is constructed once at startup and passed
// explicitly; nothing in the system consults a global.
type Paths struct {
	Dir        string // base directory, usually ~/.workday
	ConfigFile string
	DBFile     string
	StateFile  string
	PIDFile    string
	LogFile    string
}

// NewPaths resolves the file layout under the given base directory.
func NewPaths(dir string) Paths {
	return Paths{
		Dir:        dir,
		ConfigFile: filepath.Join(dir, "config.toml"),
		DBFile:     filepath.Join(dir, "workday.db"),
		StateFile:  filepath.Join(dir, "timer.state"),
		PIDFile:    filepath.Join(dir, "timer.pid"),
		LogFile:    filepath.Join(dir, "daemon.log"),
	}
}

// DefaultPaths resolves the layout under ~/.workday.
func DefaultPaths() (Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("failed to get home directory: %w", err)
	}
	return NewPaths(filepath.Join(homeDir, ".workday")), nil
}

// EnsureDir creates the base directory if it does not exist.
func (p Paths) EnsureDir() error {
	return os.MkdirAll(p.Dir, 0750)
}

// IsConfigured reports whether initial setup has been completed.
func (p Paths) IsConfigured() bool {
	_, err := os.Stat(p.ConfigFile)
	return err == nil
}

// Load reads the configuration file, falling back to defaults when the
// file is absent or unreadable.
func Load(paths Paths) (*Config, error) {
	if !paths.IsConfigured() {
		return DefaultConfig(), nil
	}

	v := viper.New()
	v.SetConfigFile(paths.ConfigFile)
	v.SetConfigType("toml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to the config file.
func Save(paths Paths, cfg *Config) error {
	if err := paths.EnsureDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(paths.ConfigFile)
	v.SetConfigType("toml")

	v.Set("telegram.bot_token", cfg.Telegram.BotToken)
	v.Set("telegram.chat_id", cfg.Telegram.ChatID)
	v.Set("telegram.enabled", cfg.Telegram.Enabled)
	v.Set("timer.focus_minutes", cfg.Timer.FocusMinutes)
	v.Set("timer.short_break_minutes", cfg.Timer.ShortBreakMinutes)
	v.Set("timer.long_break_minutes", cfg.Timer.LongBreakMinutes)
	v.Set("timer.long_break_after", cfg.Timer.LongBreakAfter)

	return v.WriteConfig()
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", "")
	v.SetDefault("telegram.enabled", false)
	v.SetDefault("timer.focus_minutes", 25)
	v.SetDefault("timer.short_break_minutes", 5)
	v.SetDefault("timer.long_break_minutes", 15)
	v.SetDefault("timer.long_break_after", 4)
}
