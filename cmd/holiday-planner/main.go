package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/AshCoder05/Holiday-Planner-Tool/internal/config"
	"github.com/AshCoder05/Holiday-Planner-Tool/internal/holidays"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "holiday-planner",
		Short: "Long Holiday Planner",
		Long:  "Suggest which working days to take as leave so that weekends and public holidays merge into long off-day blocks",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (optional)")

	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(blocksCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildHolidaySource assembles the holiday source the config asks for.
// A file source with a region configured as well gets both, merged.
func buildHolidaySource(cfg *config.Config, year int) (holidays.Source, error) {
	switch cfg.Holidays.Source {
	case "file":
		var base holidays.Source
		switch cfg.Holidays.FileType {
		case "ics":
			base = holidays.NewICSSource(cfg.Holidays.File, logger)
		case "csv":
			base = holidays.NewCSVSource(cfg.Holidays.File, cfg.Holidays.CSVBackend, logger)
		default:
			return nil, fmt.Errorf("unknown file type: %s", cfg.Holidays.FileType)
		}

		if cfg.Holidays.Region != "" {
			region, err := holidays.NewRegionSource(cfg.Holidays.Region, year, logger)
			if err != nil {
				return nil, err
			}
			logger.Info("Merging file holidays with region holidays",
				zap.String("file", cfg.Holidays.File),
				zap.String("region", cfg.Holidays.Region))
			return holidays.NewMulti(logger, base, region), nil
		}

		return base, nil

	case "region":
		return holidays.NewRegionSource(cfg.Holidays.Region, year, logger)

	case "feed":
		return holidays.NewFeedSource(cfg.Holidays.FeedURL, year, logger), nil

	default:
		return nil, fmt.Errorf("unknown holiday source: %s", cfg.Holidays.Source)
	}
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
