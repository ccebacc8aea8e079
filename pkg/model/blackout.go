package model

import (
	"strings"
	"time"
)

// BlackoutSet forbids rooms whose names end with one of the suffixes, on
// dates inside [From, To] whose ISO weekday (Monday=0) is at most MaxWeekday.
// The Mon-Wed and Mon-Fri sets stay separate because their cutoffs differ.
type BlackoutSet struct {
	Name       string
	Suffixes   []string
	MaxWeekday int
	From       time.Time
	To         time.Time
}

// Blacklisted evaluates the rule against a room name and a date. The clock
// part of the date is ignored.
func (b *BlackoutSet) Blacklisted(room string, date time.Time) bool {
	d := DateOnly(date)
	if d.Before(DateOnly(b.From)) || d.After(DateOnly(b.To)) {
		return false
	}
	if ISOWeekday(d) > b.MaxWeekday {
		return false
	}
	room = strings.TrimSpace(room)
	for _, suf := range b.Suffixes {
		if strings.HasSuffix(room, suf) {
			return true
		}
	}
	return false
}
