package scheduler

import (
	"fmt"

	"github.com/Fakhri17/schedule-uts/pkg/model"
)

var recordSeq int

// record builds a minimal sitting for tests. Empty date or shift leaves the
// record unscheduled; the course code is unique per call so dedup keys never
// collide by accident.
func record(class, dateStr, shift, room string) *model.ExamRecord {
	recordSeq++
	rec := &model.ExamRecord{
		Class:      class,
		Date:       dateStr,
		Shift:      shift,
		Room:       room,
		CourseCode: fmt.Sprintf("MK-%03d", recordSeq),
		CourseName: fmt.Sprintf("Mata Kuliah %d", recordSeq),
		Lecturer:   fmt.Sprintf("Dosen %d", recordSeq),
		ExamForm:   "Ujian Tulis",
		Headcount:  30,
	}
	if iv, ok := model.ParseSlot(dateStr, shift); ok {
		rec.Interval = iv
		rec.Day = model.DayName(iv.Start)
	}
	return rec
}

func occupants(recs ...*model.ExamRecord) []*model.ExamRecord {
	return recs
}

func rooms(names ...string) []*model.Room {
	out := make([]*model.Room, 0, len(names))
	for _, n := range names {
		out = append(out, &model.Room{Name: n})
	}
	return out
}
