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

func planCmd() *cobra.Command {
	var (
		filePath    string
		fileType    string
		year        int
		workingDays string
		threshold   int
		source      string
		region      string
		feedURL     string
		csvBackend  string
		outputPath  string
		jsonOut     bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Suggest leave days that turn short breaks into long holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Flags override config
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
			if flags.Changed("threshold") {
				cfg.Planner.Threshold = threshold
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
			working := planner.NewWorkingDays(weekdays)

			holidaySource, err := buildHolidaySource(cfg, targetYear)
			if err != nil {
				return err
			}

			holidaySet, err := holidaySource.Holidays()
			if err != nil {
				return fmt.Errorf("failed to load holidays: %w", err)
			}

			logger.Info("Planning year",
				zap.Int("year", targetYear),
				zap.Int("holidays", len(holidaySet)),
				zap.Int("threshold", cfg.Planner.Threshold))

			cal, err := planner.BuildYear(targetYear, working, holidaySet, logger)
			if err != nil {
				return err
			}

			suggestions, err := planner.Suggest(cal, cfg.Planner.Threshold)
			if err != nil {
				return err
			}

			if jsonOut {
				if err := report.NewPlan(targetYear, cfg.Planner.Threshold, suggestions).WriteJSON(os.Stdout); err != nil {
					return err
				}
			} else {
				impact := 100.0 / float64(planner.ScheduledWorkdays(targetYear, working))
				report.NewRenderer(os.Stdout).Suggestions(suggestions, impact)
			}

			if outputPath != "" {
				if err := report.NewPlan(targetYear, cfg.Planner.Threshold, suggestions).Save(outputPath); err != nil {
					return err
				}
				logger.Info("Plan written", zap.String("path", outputPath))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "Path to the holiday input file (ICS or CSV)")
	cmd.Flags().StringVar(&fileType, "filetype", "ics", "Input file type: ics or csv")
	cmd.Flags().IntVar(&year, "year", 0, "Year to plan for (default: current year)")
	cmd.Flags().StringVar(&workingDays, "working-days", "0,1,2,3,4", "Comma-separated working day indices (0=Mon .. 6=Sun)")
	cmd.Flags().IntVar(&threshold, "threshold", 4, "Minimum continuous off days to qualify as a long holiday")
	cmd.Flags().StringVar(&source, "source", "file", "Holiday source: file, region or feed")
	cmd.Flags().StringVar(&region, "region", "", "Region code for built-in holidays (us, gb, de)")
	cmd.Flags().StringVar(&feedURL, "feed-url", "", "Holiday feed URL, {year} is substituted")
	cmd.Flags().StringVar(&csvBackend, "csv-backend", "standard", "CSV parsing backend: standard or strict")
	cmd.Flags().StringVar(&outputPath, "output", "", "Write the plan as JSON to this file")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print JSON instead of text")

	return cmd
}
