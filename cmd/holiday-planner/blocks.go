package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AshCoder05/Holiday-Planner-Tool/internal/config"
	"github.com/AshCoder05/Holiday-Planner-Tool/internal/planner"
	"github.com/AshCoder05/Holiday-Planner-Tool/internal/report"
)

func blocksCmd() *cobra.Command {
	var (
		filePath    string
		fileType    string
		year        int
		workingDays string
		source      string
		region      string
		feedURL     string
		csvBackend  string
	)

	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "Show the baseline off-day blocks of the year",
		Long:  "Print every maximal run of off days (weekends and holidays) before any leave is taken, as a diagnostic baseline for plan.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed("file") {
				cfg.Holidays.File = filePath
			}
			if flags.Changed("filetype") {
				cfg.Holidays.FileType = fileType
			}
			if flags.Changed("year") {
				cfg.Planner.Year = year
			}
			if flags.Changed("working-days") {
				cfg.Planner.WorkingDays = workingDays
			}
			if flags.Changed("source") {
				cfg.Holidays.Source = source
			}
			if flags.Changed("region") {
				cfg.Holidays.Region = region
			}
			if flags.Changed("feed-url") {
				cfg.Holidays.FeedURL = feedURL
			}
			if flags.Changed("csv-backend") {
				cfg.Holidays.CSVBackend = csvBackend
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			targetYear := cfg.Planner.TargetYear()
			weekdays, err := cfg.Planner.WorkingWeekdays()
			if err != nil {
				return fmt.Errorf("invalid working days: %w", err)
			}

			holidaySource, err := buildHolidaySource(cfg, targetYear)
			if err != nil {
				return err
			}

			holidaySet, err := holidaySource.Holidays()
			if err != nil {
				return fmt.Errorf("failed to load holidays: %w", err)
			}

			cal, err := planner.BuildYear(targetYear, planner.NewWorkingDays(weekdays), holidaySet, logger)
			if err != nil {
				return err
			}

			blocks := planner.Scan(cal)
			logger.Info("Scanned off-day blocks",
				zap.Int("year", targetYear),
				zap.Int("blocks", len(blocks)))

			report.NewRenderer(os.Stdout).Blocks(cal, blocks)
			return nil
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "Path to the holiday input file (ICS or CSV)")
	cmd.Flags().StringVar(&fileType, "filetype", "ics", "Input file type: ics or csv")
	cmd.Flags().IntVar(&year, "year", 0, "Year to inspect (default: current year)")
	cmd.Flags().StringVar(&workingDays, "working-days", "0,1,2,3,4", "Comma-separated working day indices (0=Mon .. 6=Sun)")
	cmd.Flags().StringVar(&source, "source", "file", "Holiday source: file, region or feed")
	cmd.Flags().StringVar(&region, "region", "", "Region code for built-in holidays (us, gb, de)")
	cmd.Flags().StringVar(&feedURL, "feed-url", "", "Holiday feed URL, {year} is substituted")
	cmd.Flags().StringVar(&csvBackend, "csv-backend", "standard", "CSV parsing backend: standard or strict")

	return cmd
}
