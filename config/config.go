package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/skedcli/sked/internal/event"
)

type (
	// Config holds all configuration settings
	Config struct {
		Settings SettingsConfig `mapstructure:"settings"`
		Display  DisplayConfig  `mapstructure:"display"`
	}

	// SettingsConfig holds scheduling behavior settings
	SettingsConfig struct {
		// DefaultCategory is used when adding an event without an explicit
		// category. Empty means the category flag is required.
		DefaultCategory string `mapstructure:"default_category"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		TwentyFourHour bool `mapstructure:"24hr_clock"`
		DarkTheme      bool `mapstructure:"dark_theme"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.1"

var (
	configDir      = "sked"
	configFileName = "config.yml"
	dbFileName     = "sked.db"
	reportFileName = "report.log"
	logFileName    = "sked.log"
	dbFilePath     string
	configFilePath string
	reportFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func ReportFilePath() string {
	return reportFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

func InitializePaths() {
	skedEnv := strings.TrimSpace(os.Getenv("SKED_ENV"))
	if skedEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", skedEnv)
		dbFileName = fmt.Sprintf("sked_%s.db", skedEnv)
		reportFileName = fmt.Sprintf("report_%s.log", skedEnv)
		logFileName = fmt.Sprintf("sked_%s.log", skedEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	reportFilePath = filepath.Join(dataDir, reportFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// InitLogger points the default slog logger at a size-rotated file in the
// data directory. Terminal output stays with pterm.
func InitLogger() {
	logger := slog.New(slog.NewTextHandler(&lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1, // megabytes
		MaxBackups: 3,
	}, nil))

	slog.SetDefault(logger)
}

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Fmt(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.Settings.DefaultCategory != "" {
		if _, err := event.ParseCategory(c.Settings.DefaultCategory); err != nil {
			return errConfigValidation.Fmt(err)
		}
	}

	return nil
}
