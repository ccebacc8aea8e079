package model

import "strings"

// PlacementState tracks how far the allocator got with a record.
type PlacementState int

const (
	NeedsTime PlacementState = iota
	NeedsRoomOnly
	Placed
	Unplaceable
)

// ExamRecord is one exam sitting to be scheduled. The tagged columns mirror
// the campus schedule files; everything below them is derived and never
// written out. Records are mutated in place by the allocator and never
// deleted: an unassignable record keeps empty time/room columns and the
// Unplaceable state.
type ExamRecord struct {
	Program    string `csv:"PROGRAM STUDI"`
	Day        string `csv:"HARI"`
	Date       string `csv:"TANGGAL"`
	Shift      string `csv:"SHIFT"`
	Room       string `csv:"RUANGAN"`
	CourseCode string `csv:"KODE MATA KULIAH"`
	CourseName string `csv:"NAMA MATA KULIAH"`
	Lecturer   string `csv:"NAMA DOSEN"`
	Class      string `csv:"KELAS"`
	ExamForm   string `csv:"BENTUK UJIAN"`
	Headcount  int    `csv:"JUMLAH MAHASISWA"`

	Interval Interval       `csv:"-"`
	State    PlacementState `csv:"-"`
}

// HasTime reports whether the record carries a parsed scheduled time. Records
// whose raw date/shift could not be parsed report false and are excluded from
// every time-based check.
func (r *ExamRecord) HasTime() bool {
	return !r.Interval.IsZero()
}

// SetSlot assigns the record to a sitting, keeping HARI, TANGGAL and SHIFT in
// sync with the interval.
func (r *ExamRecord) SetSlot(iv Interval) {
	r.Interval = iv
	r.Day = DayName(iv.Start)
	r.Date = iv.Start.Format("02-Jan-06")
	r.Shift = iv.ShiftLabel()
}

// ClearSlot empties all time columns together, plus the room.
func (r *ExamRecord) ClearSlot() {
	r.Interval = Interval{}
	r.Day = ""
	r.Date = ""
	r.Shift = ""
	r.Room = ""
}

// DedupKey identifies a row for duplicate elimination: rows equal on it are
// the same sitting even when the room differs.
func (r *ExamRecord) DedupKey() string {
	return strings.Join([]string{
		strings.TrimSpace(r.Class),
		strings.TrimSpace(r.Date),
		strings.TrimSpace(r.Shift),
		strings.TrimSpace(r.CourseCode),
	}, "|")
}

// Blank reports whether every input column is empty.
func (r *ExamRecord) Blank() bool {
	for _, s := range []string{
		r.Program, r.Day, r.Date, r.Shift, r.Room,
		r.CourseCode, r.CourseName, r.Lecturer, r.Class, r.ExamForm,
	} {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return r.Headcount == 0
}
