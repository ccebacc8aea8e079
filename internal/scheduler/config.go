package scheduler

import (
	"time"

	"github.com/Fakhri17/schedule-uts/pkg/model"
)

// ShiftStart is one fixed daily start time of the exam grid.
type ShiftStart struct {
	Hour   int
	Minute int
}

// Config carries everything the allocator and the auditor must agree on: the
// exam week, the daily shift grid, the blackout rule sets and the auditorium
// policy. Build one per run and treat it as immutable; the engine holds no
// other configuration state.
type Config struct {
	PeriodStart time.Time
	PeriodEnd   time.Time

	ShiftStarts   []ShiftStart
	ShiftDuration time.Duration

	ClassDailyLimit int

	Blackouts  []model.BlackoutSet
	Auditorium AuditoriumPolicy
}

// NewConfig builds the standard rule set over an arbitrary exam week.
func NewConfig(start, end time.Time) *Config {
	return &Config{
		PeriodStart:     model.DateOnly(start),
		PeriodEnd:       model.DateOnly(end),
		ShiftStarts:     []ShiftStart{{7, 30}, {10, 0}, {13, 0}, {15, 30}},
		ShiftDuration:   120 * time.Minute,
		ClassDailyLimit: 2,
		Blackouts: []model.BlackoutSet{
			{
				Name:       "mon-wed",
				Suffixes:   []string{"KTT 2.08", "KTT 2.07", "KTT 2.06", "KTT 2.05", "KTT 2.04"},
				MaxWeekday: 2,
				From:       start,
				To:         end,
			},
			{
				Name:       "mon-fri",
				Suffixes:   []string{"KTT 2.09"},
				MaxWeekday: 4,
				From:       start,
				To:         end,
			},
		},
		Auditorium: NewAuditoriumPolicy(),
	}
}

// NewDefaultConfig mirrors the November 2025 midterm week setup.
func NewDefaultConfig() *Config {
	return NewConfig(
		time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.November, 7, 0, 0, 0, 0, time.UTC),
	)
}

// AllowedDates lists the weekday dates of the exam period in order. Each call
// returns a fresh slice.
func (c *Config) AllowedDates() []time.Time {
	var dates []time.Time
	for d := c.PeriodStart; !d.After(c.PeriodEnd); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

// ShiftsForDate lays the fixed shift grid onto a date.
func (c *Config) ShiftsForDate(date time.Time) []model.Interval {
	shifts := make([]model.Interval, 0, len(c.ShiftStarts))
	for _, s := range c.ShiftStarts {
		start := time.Date(date.Year(), date.Month(), date.Day(), s.Hour, s.Minute, 0, 0, time.UTC)
		shifts = append(shifts, model.Interval{Start: start, End: start.Add(c.ShiftDuration)})
	}
	return shifts
}

// IsBlacklisted evaluates every blackout rule set against a room and date.
func (c *Config) IsBlacklisted(room string, date time.Time) bool {
	for i := range c.Blackouts {
		if c.Blackouts[i].Blacklisted(room, date) {
			return true
		}
	}
	return false
}
