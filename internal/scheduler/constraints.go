package scheduler

import (
	"strings"
	"time"

	"github.com/Fakhri17/schedule-uts/pkg/model"
)

// classConflicts reports whether the class already sits an overlapping exam.
func classConflicts(u *usage, class string, iv model.Interval) bool {
	class = strings.TrimSpace(class)
	if class == "" {
		return false
	}
	for _, other := range u.classes[class] {
		if iv.Overlaps(other) {
			return true
		}
	}
	return false
}

// classQuotaReached reports whether the class already has the daily maximum
// of sittings on the interval's date, overlapping or not.
func classQuotaReached(u *usage, class string, dateKey string, limit int) bool {
	class = strings.TrimSpace(class)
	if class == "" {
		return false
	}
	return u.classDays[class][dateKey] >= limit
}

// lecturerConflicts reports whether the lecturer already proctors an
// overlapping exam. Intervals carry the full date, so sittings on different
// days can never collide here.
func lecturerConflicts(u *usage, lecturer string, iv model.Interval) bool {
	lecturer = strings.TrimSpace(lecturer)
	if lecturer == "" {
		return false
	}
	for _, other := range u.lecturers[lecturer] {
		if iv.Overlaps(other) {
			return true
		}
	}
	return false
}

// roomFull reports whether the room has no seat left in the slot. Only the
// auditorium admits a second exam.
func roomFull(u *usage, key slotKey, room string, auditoriumCap int) bool {
	count := u.roomCount(key, room)
	if model.IsAuditorium(room) {
		return count >= auditoriumCap
	}
	return count >= 1
}

// AuditoriumPolicy gathers the installation-specific rules for the one
// double-bookable room: who may use it, when, and with whom. These are local
// policy rather than scheduling law; swap the value to change them without
// touching the allocator.
type AuditoriumPolicy struct {
	Capacity      int
	EligibleForm  string // exam form admitted, compared case-insensitively
	MinHeadcount  int
	AffinityChars int // class-prefix length co-occupants must share
}

func NewAuditoriumPolicy() AuditoriumPolicy {
	return AuditoriumPolicy{
		Capacity:      2,
		EligibleForm:  "ujian tulis",
		MinHeadcount:  40,
		AffinityChars: 2,
	}
}

// Eligible reports whether the record may use the auditorium at all: written
// exams with a large enough headcount only.
func (p AuditoriumPolicy) Eligible(rec *model.ExamRecord) bool {
	form := strings.ToLower(strings.TrimSpace(rec.ExamForm))
	return form == strings.ToLower(p.EligibleForm) && rec.Headcount >= p.MinHeadcount
}

// WindowOpen restricts the auditorium to Monday (any shift) and Tuesday
// afternoon; the rest of the week it is closed regardless of blackouts.
func (p AuditoriumPolicy) WindowOpen(start time.Time) bool {
	switch start.Weekday() {
	case time.Monday:
		return true
	case time.Tuesday:
		return start.Hour() >= 13
	default:
		return false
	}
}

// SharesAffinity requires a joining record to match every current occupant on
// the class-identifier prefix.
func (p AuditoriumPolicy) SharesAffinity(class string, occupants []*model.ExamRecord) bool {
	for _, o := range occupants {
		if !samePrefix(class, o.Class, p.AffinityChars) {
			return false
		}
	}
	return true
}

func samePrefix(a, b string, n int) bool {
	a = strings.ToUpper(strings.TrimSpace(a))
	b = strings.ToUpper(strings.TrimSpace(b))
	if len(a) < n || len(b) < n {
		return a == b
	}
	return a[:n] == b[:n]
}
