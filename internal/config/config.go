package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/AshCoder05/Holiday-Planner-Tool/pkg/dateutil"
)

// Config represents application configuration
type Config struct {
	Planner  PlannerConfig  `mapstructure:"planner"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Log      LogConfig      `mapstructure:"log"`
}

// PlannerConfig represents the planning parameters
type PlannerConfig struct {
	Year        int    `mapstructure:"year"`         // 0 = current year
	WorkingDays string `mapstructure:"working_days"` // Monday-based indices, e.g. "0,1,2,3,4"
	Threshold   int    `mapstructure:"threshold"`    // minimum off-day block length
}

// HolidaysConfig represents the holiday source configuration
type HolidaysConfig struct {
	Source     string `mapstructure:"source"`      // "file", "region" or "feed"
	File       string `mapstructure:"file"`        // input path for the file source
	FileType   string `mapstructure:"file_type"`   // "ics" or "csv"
	CSVBackend string `mapstructure:"csv_backend"` // "standard" or "strict"
	Region     string `mapstructure:"region"`      // region code for the region source
	FeedURL    string `mapstructure:"feed_url"`    // URL template for the feed source
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. A missing config file is not an
// error when no explicit path was given; the tool then runs on defaults
// and flags alone.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.holiday-planner")
		v.AddConfigPath("/etc/holiday-planner")
	}

	v.SetDefault("planner.year", 0)
	v.SetDefault("planner.working_days", "0,1,2,3,4")
	v.SetDefault("planner.threshold", 4)
	v.SetDefault("holidays.source", "file")
	v.SetDefault("holidays.file_type", "ics")
	v.SetDefault("holidays.csv_backend", "standard")
	v.SetDefault("log.level", "info")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || configPath != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration after flag overrides are applied
func (c *Config) Validate() error {
	if c.Planner.Year < 0 {
		return fmt.Errorf("planner.year must not be negative")
	}
	if c.Planner.Threshold <= 0 {
		return fmt.Errorf("planner.threshold must be positive")
	}

	days, err := dateutil.ParseWeekdays(c.Planner.WorkingDays)
	if err != nil {
		return fmt.Errorf("invalid planner.working_days: %w", err)
	}
	if len(days) == 0 {
		return fmt.Errorf("planner.working_days must not be empty")
	}

	switch c.Holidays.Source {
	case "file":
		if c.Holidays.File == "" {
			return fmt.Errorf("holidays.file is required for the file source")
		}
		switch c.Holidays.FileType {
		case "ics":
		case "csv":
			if c.Holidays.CSVBackend != "standard" && c.Holidays.CSVBackend != "strict" {
				return fmt.Errorf("holidays.csv_backend must be 'standard' or 'strict', got %q", c.Holidays.CSVBackend)
			}
		default:
			return fmt.Errorf("holidays.file_type must be 'ics' or 'csv', got %q", c.Holidays.FileType)
		}
	case "region":
		if c.Holidays.Region == "" {
			return fmt.Errorf("holidays.region is required for the region source")
		}
	case "feed":
		if c.Holidays.FeedURL == "" {
			return fmt.Errorf("holidays.feed_url is required for the feed source")
		}
	default:
		return fmt.Errorf("holidays.source must be 'file', 'region' or 'feed', got %q", c.Holidays.Source)
	}

	return nil
}

// TargetYear returns the configured year, defaulting to the current one
func (c *PlannerConfig) TargetYear() int {
	if c.Year == 0 {
		return time.Now().Year()
	}
	return c.Year
}

// WorkingWeekdays returns the parsed working weekday list
func (c *PlannerConfig) WorkingWeekdays() ([]time.Weekday, error) {
	return dateutil.ParseWeekdays(c.WorkingDays)
}
