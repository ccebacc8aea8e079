package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Interval is one concrete exam sitting: a full calendar date plus start and
// end clock time. Distinct grid slots never partially overlap by construction,
// but pre-filled input rows can carry arbitrary times, so overlap is checked
// on the interval itself.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (iv Interval) IsZero() bool {
	return iv.Start.IsZero()
}

// Overlaps is the symmetric interval test: back-to-back sittings
// (end1 == start2) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// DateKey returns the calendar date as YYYY-MM-DD, the grouping key used by
// the usage index and the auditor.
func (iv Interval) DateKey() string {
	return iv.Start.Format("2006-01-02")
}

// ShiftLabel renders the range the way the schedule files carry it,
// e.g. "07.30 - 09.30".
func (iv Interval) ShiftLabel() string {
	return fmt.Sprintf("%s - %s", iv.Start.Format("15.04"), iv.End.Format("15.04"))
}

// Date formats appearing across the source files, in the order they are tried.
var dateLayouts = []string{
	"02-Jan-06", "2-Jan-06",
	"02/01/2006", "2/1/2006",
	"02-01-2006", "2-1-2006",
}

// ParseSlot parses a raw (date, shift range) column pair into an Interval.
// The shift must be two "-"-joined tokens, each a dot-separated H.M clock
// time; embedded spaces and tabs are stripped. ok is false when any step
// fails, leaving the record without an interval.
func ParseSlot(dateStr, shiftStr string) (Interval, bool) {
	dateStr = strings.TrimSpace(dateStr)
	shiftStr = strings.TrimSpace(shiftStr)
	if dateStr == "" || shiftStr == "" {
		return Interval{}, false
	}
	var day time.Time
	parsed := false
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, dateStr); err == nil {
			day = d
			parsed = true
			break
		}
	}
	if !parsed {
		return Interval{}, false
	}
	parts := strings.Split(shiftStr, "-")
	if len(parts) != 2 {
		return Interval{}, false
	}
	h1, m1, ok := parseClock(parts[0])
	if !ok {
		return Interval{}, false
	}
	h2, m2, ok := parseClock(parts[1])
	if !ok {
		return Interval{}, false
	}
	return Interval{
		Start: time.Date(day.Year(), day.Month(), day.Day(), h1, m1, 0, 0, time.UTC),
		End:   time.Date(day.Year(), day.Month(), day.Day(), h2, m2, 0, 0, time.UTC),
	}, true
}

func parseClock(s string) (int, int, bool) {
	s = strings.NewReplacer(" ", "", "\t", "").Replace(s)
	hm := strings.Split(s, ".")
	if len(hm) != 2 {
		return 0, 0, false
	}
	h, err1 := strconv.Atoi(hm[0])
	m, err2 := strconv.Atoi(hm[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

var dayNames = map[time.Weekday]string{
	time.Monday:    "SENIN",
	time.Tuesday:   "SELASA",
	time.Wednesday: "RABU",
	time.Thursday:  "KAMIS",
	time.Friday:    "JUM'AT",
	time.Saturday:  "SABTU",
	time.Sunday:    "MINGGU",
}

// DayName returns the Indonesian weekday name used in the HARI column.
func DayName(d time.Time) string {
	return dayNames[d.Weekday()]
}

// ISOWeekday maps a date to the Monday=0..Sunday=6 index the blackout rules
// are written against.
func ISOWeekday(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// DateOnly drops the clock time, for date-window comparisons.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
