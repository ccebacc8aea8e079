package scheduler

import (
	"sort"
	"strings"

	"github.com/Fakhri17/schedule-uts/pkg/model"
)

// Auditor re-checks a finished schedule for residual violations, independent
// of how placement happened. It never mutates records and holds no state
// between calls; empty input audits clean.
type Auditor struct {
	cfg *Config
}

func NewAuditor(cfg *Config) *Auditor {
	return &Auditor{cfg: cfg}
}

// Report bundles the four independent violation collections. A single record
// may appear in several of them.
type Report struct {
	RecordCount int
	Classes     []model.ClassConflict
	Rooms       []model.RoomConflict
	Lecturers   []model.LecturerConflict
	Blackouts   []model.BlackoutViolation

	offenders map[*model.ExamRecord]bool
}

// Summary counts violations per kind for the terminal recap.
type Summary struct {
	Records   int
	Classes   int
	Rooms     int
	Lecturers int
	Blackouts int
}

func (s Summary) Total() int {
	return s.Classes + s.Rooms + s.Lecturers + s.Blackouts
}

func (r *Report) Summary() Summary {
	return Summary{
		Records:   r.RecordCount,
		Classes:   len(r.Classes),
		Rooms:     len(r.Rooms),
		Lecturers: len(r.Lecturers),
		Blackouts: len(r.Blackouts),
	}
}

func (r *Report) Clean() bool {
	return r.Summary().Total() == 0
}

// Flagged returns every record involved in at least one violation, the input
// to a repair run.
func (r *Report) Flagged() map[*model.ExamRecord]bool {
	return r.offenders
}

func (r *Report) flag(recs ...*model.ExamRecord) {
	for _, rec := range recs {
		r.offenders[rec] = true
	}
}

// Audit scans the full record set and collects every violation.
func (a *Auditor) Audit(records []*model.ExamRecord) *Report {
	rep := &Report{
		RecordCount: len(records),
		offenders:   make(map[*model.ExamRecord]bool),
	}
	a.classConflicts(records, rep)
	a.roomConflicts(records, rep)
	a.lecturerConflicts(records, rep)
	a.blackoutViolations(records, rep)
	return rep
}

// classConflicts groups records by (class, date) and reports both pairwise
// overlaps and daily-quota breaches. The two are different shapes, so the
// report entry is a tagged variant.
func (a *Auditor) classConflicts(records []*model.ExamRecord, rep *Report) {
	type classDay struct{ class, date string }
	groups := make(map[classDay][]*model.ExamRecord)
	var order []classDay
	for _, rec := range records {
		class := strings.TrimSpace(rec.Class)
		if class == "" || !rec.HasTime() {
			continue
		}
		k := classDay{class: class, date: rec.Interval.DateKey()}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], rec)
	}

	for _, k := range order {
		items := groups[k]
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				if !items[i].Interval.Overlaps(items[j].Interval) {
					continue
				}
				rep.Classes = append(rep.Classes, model.ClassConflict{
					Kind: model.ClassConflictOverlap,
					Overlap: &model.ClassOverlap{
						Class:   k.class,
						Date:    items[i].Date,
						Shift1:  items[i].Shift,
						Course1: items[i].CourseName,
						Code1:   items[i].CourseCode,
						Room1:   items[i].Room,
						Shift2:  items[j].Shift,
						Course2: items[j].CourseName,
						Code2:   items[j].CourseCode,
						Room2:   items[j].Room,
					},
				})
				rep.flag(items[i], items[j])
			}
		}
		if len(items) > a.cfg.ClassDailyLimit {
			detail := make([]string, 0, len(items))
			for _, it := range items {
				detail = append(detail, it.Shift+" - "+it.CourseName)
			}
			rep.Classes = append(rep.Classes, model.ClassConflict{
				Kind: model.ClassConflictQuota,
				Quota: &model.ClassQuota{
					Class:  k.class,
					Date:   items[0].Date,
					Total:  len(items),
					Detail: strings.Join(detail, "; "),
				},
			})
			rep.flag(items...)
		}
	}
}

// roomConflicts reports every occupant of an over-booked (date, shift, room)
// slot. The grouping uses the raw columns so that even records with an
// unparsable time still count toward room occupancy.
func (a *Auditor) roomConflicts(records []*model.ExamRecord, rep *Report) {
	type slot struct{ date, shift, room string }
	groups := make(map[slot][]*model.ExamRecord)
	var order []slot
	for _, rec := range records {
		k := slot{
			date:  strings.TrimSpace(rec.Date),
			shift: strings.TrimSpace(rec.Shift),
			room:  strings.TrimSpace(rec.Room),
		}
		if k.date == "" || k.shift == "" || k.room == "" {
			continue
		}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], rec)
	}

	for _, k := range order {
		items := groups[k]
		limit := 1
		if model.IsAuditorium(k.room) {
			limit = a.cfg.Auditorium.Capacity
		}
		if len(items) <= limit {
			continue
		}
		for _, it := range items {
			rep.Rooms = append(rep.Rooms, model.RoomConflict{
				Date:   k.date,
				Shift:  k.shift,
				Room:   k.room,
				Class:  it.Class,
				Course: it.CourseName,
				Code:   it.CourseCode,
			})
			rep.flag(it)
		}
	}
}

// lecturerConflicts reports pairwise overlapping sittings per lecturer,
// regardless of date or class.
func (a *Auditor) lecturerConflicts(records []*model.ExamRecord, rep *Report) {
	groups := make(map[string][]*model.ExamRecord)
	var order []string
	for _, rec := range records {
		lect := strings.TrimSpace(rec.Lecturer)
		if lect == "" || !rec.HasTime() {
			continue
		}
		if _, seen := groups[lect]; !seen {
			order = append(order, lect)
		}
		groups[lect] = append(groups[lect], rec)
	}

	for _, lect := range order {
		items := groups[lect]
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				if !items[i].Interval.Overlaps(items[j].Interval) {
					continue
				}
				rep.Lecturers = append(rep.Lecturers, model.LecturerConflict{
					Date1:    items[i].Date,
					Shift1:   items[i].Shift,
					Lecturer: lect,
					Class1:   items[i].Class,
					Course1:  items[i].CourseName,
					Room1:    items[i].Room,
					Date2:    items[j].Date,
					Shift2:   items[j].Shift,
					Class2:   items[j].Class,
					Course2:  items[j].CourseName,
					Room2:    items[j].Room,
				})
				rep.flag(items[i], items[j])
			}
		}
	}
}

func (a *Auditor) blackoutViolations(records []*model.ExamRecord, rep *Report) {
	for _, rec := range records {
		room := strings.TrimSpace(rec.Room)
		if room == "" || !rec.HasTime() {
			continue
		}
		if !a.cfg.IsBlacklisted(room, rec.Interval.Start) {
			continue
		}
		rep.Blackouts = append(rep.Blackouts, model.BlackoutViolation{
			Date:   rec.Date,
			Shift:  rec.Shift,
			Room:   room,
			Class:  rec.Class,
			Course: rec.CourseName,
		})
		rep.flag(rec)
	}
}

// KeyCounts builds the composite-key recap (date+shift+room, +class,
// +lecturer) used for quick manual filtering, most frequent keys first.
func KeyCounts(records []*model.ExamRecord) []model.KeyCount {
	kinds := []struct {
		label string
		field func(*model.ExamRecord) string
	}{
		{"Tanggal+Shift+Ruangan", func(r *model.ExamRecord) string { return r.Room }},
		{"Tanggal+Shift+Kelas", func(r *model.ExamRecord) string { return r.Class }},
		{"Tanggal+Shift+Dosen", func(r *model.ExamRecord) string { return r.Lecturer }},
	}

	var out []model.KeyCount
	for _, kind := range kinds {
		counts := make(map[string]int)
		for _, rec := range records {
			key := strings.ToUpper(strings.Join([]string{
				strings.TrimSpace(rec.Date),
				strings.TrimSpace(rec.Shift),
				strings.TrimSpace(kind.field(rec)),
			}, "|"))
			if key == "||" {
				continue
			}
			counts[key]++
		}
		rows := make([]model.KeyCount, 0, len(counts))
		for key, n := range counts {
			rows = append(rows, model.KeyCount{KeyType: kind.label, Key: key, Count: n})
		}
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Count != rows[j].Count {
				return rows[i].Count > rows[j].Count
			}
			return rows[i].Key < rows[j].Key
		})
		out = append(out, rows...)
	}
	return out
}
