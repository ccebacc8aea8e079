package scheduler

import (
	"strings"

	"github.com/Fakhri17/schedule-uts/pkg/model"
)

// slotKey identifies one (date, shift) cell of the grid.
type slotKey struct {
	date  string // YYYY-MM-DD
	shift string // "07.30 - 09.30"
}

func keyOf(iv model.Interval) slotKey {
	return slotKey{date: iv.DateKey(), shift: iv.ShiftLabel()}
}

// usage is the derived occupancy index behind every conflict query. It is
// rebuilt from the record store at the start of each allocator or repair run
// and never survives a run: mutating it independently of the store would
// silently desynchronize the two.
type usage struct {
	rooms     map[slotKey]map[string]int
	occupants map[slotKey][]*model.ExamRecord // auditorium co-occupancy, for the affinity rule
	classes   map[string][]model.Interval
	classDays map[string]map[string]int // class -> date key -> sittings that day
	lecturers map[string][]model.Interval
}

func newUsage() *usage {
	return &usage{
		rooms:     make(map[slotKey]map[string]int),
		occupants: make(map[slotKey][]*model.ExamRecord),
		classes:   make(map[string][]model.Interval),
		classDays: make(map[string]map[string]int),
		lecturers: make(map[string][]model.Interval),
	}
}

// add registers one scheduled record. Records without a parsed interval carry
// no usable time and are excluded from all bookkeeping.
func (u *usage) add(rec *model.ExamRecord) {
	if !rec.HasTime() {
		return
	}
	key := keyOf(rec.Interval)
	if room := strings.TrimSpace(rec.Room); room != "" {
		if u.rooms[key] == nil {
			u.rooms[key] = make(map[string]int)
		}
		u.rooms[key][room]++
		if model.IsAuditorium(room) {
			u.occupants[key] = append(u.occupants[key], rec)
		}
	}
	if class := strings.TrimSpace(rec.Class); class != "" {
		u.classes[class] = append(u.classes[class], rec.Interval)
		if u.classDays[class] == nil {
			u.classDays[class] = make(map[string]int)
		}
		u.classDays[class][rec.Interval.DateKey()]++
	}
	if lect := strings.TrimSpace(rec.Lecturer); lect != "" {
		u.lecturers[lect] = append(u.lecturers[lect], rec.Interval)
	}
}

func (u *usage) roomCount(key slotKey, room string) int {
	return u.rooms[key][strings.TrimSpace(room)]
}

func (u *usage) auditoriumOccupants(key slotKey) []*model.ExamRecord {
	return u.occupants[key]
}
