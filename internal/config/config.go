package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Fakhri17/schedule-uts/internal/scheduler"
)

// Config is the pipeline-level configuration: where the flat files live,
// which delimiter they use, and which exam period to run over. Every field
// can be overridden through UTS_-prefixed environment variables or a .env
// file; defaults match the original midterm layout.
type Config struct {
	ScheduleFile string
	FixedFile    string
	OutputFile   string
	RoomsFile    string
	ReportDir    string
	Delimiter    rune
	Env          string
	Seed         int64
	PeriodStart  string
	PeriodEnd    string
}

func Load() (*Config, error) {
	// Optional; plain environment variables win either way.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("UTS")
	v.AutomaticEnv()

	v.SetDefault("SCHEDULE_FILE", "jadwal-uts.csv")
	v.SetDefault("FIXED_FILE", "jadwal-uts-fix.csv")
	v.SetDefault("OUTPUT_FILE", "jadwal-uts-output.csv")
	v.SetDefault("ROOMS_FILE", "ruangan-kampus.csv")
	v.SetDefault("REPORT_DIR", ".")
	v.SetDefault("DELIMITER", ";")
	v.SetDefault("ENV", "development")
	v.SetDefault("SEED", 0)
	v.SetDefault("PERIOD_START", "2025-11-03")
	v.SetDefault("PERIOD_END", "2025-11-07")

	delim := v.GetString("DELIMITER")
	if len([]rune(delim)) != 1 {
		return nil, fmt.Errorf("delimiter must be a single character, got %q", delim)
	}

	return &Config{
		ScheduleFile: v.GetString("SCHEDULE_FILE"),
		FixedFile:    v.GetString("FIXED_FILE"),
		OutputFile:   v.GetString("OUTPUT_FILE"),
		RoomsFile:    v.GetString("ROOMS_FILE"),
		ReportDir:    v.GetString("REPORT_DIR"),
		Delimiter:    []rune(delim)[0],
		Env:          v.GetString("ENV"),
		Seed:         v.GetInt64("SEED"),
		PeriodStart:  v.GetString("PERIOD_START"),
		PeriodEnd:    v.GetString("PERIOD_END"),
	}, nil
}

// SchedulerConfig parses the exam period and builds the immutable engine
// configuration shared by the allocator and the auditor.
func (c *Config) SchedulerConfig() (*scheduler.Config, error) {
	start, err := time.Parse("2006-01-02", c.PeriodStart)
	if err != nil {
		return nil, fmt.Errorf("parse period start: %w", err)
	}
	end, err := time.Parse("2006-01-02", c.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("parse period end: %w", err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("exam period ends (%s) before it starts (%s)", c.PeriodEnd, c.PeriodStart)
	}
	return scheduler.NewConfig(start, end), nil
}
