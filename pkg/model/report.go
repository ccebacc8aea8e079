package model

import "strconv"

// ClassConflictKind tags the two shapes a class report entry can take.
type ClassConflictKind string

const (
	ClassConflictOverlap ClassConflictKind = "OVERLAP"
	ClassConflictQuota   ClassConflictKind = "LIMIT > 2/HARI"
)

// ClassConflict is a tagged variant: exactly one of Overlap or Quota is set,
// according to Kind.
type ClassConflict struct {
	Kind    ClassConflictKind
	Overlap *ClassOverlap
	Quota   *ClassQuota
}

// ClassOverlap is one pair of same-class exams with overlapping sittings on
// the same date.
type ClassOverlap struct {
	Class   string
	Date    string
	Shift1  string
	Course1 string
	Code1   string
	Room1   string
	Shift2  string
	Course2 string
	Code2   string
	Room2   string
}

// ClassQuota reports a class sitting more than the daily maximum of exams on
// one date, overlapping or not.
type ClassQuota struct {
	Class  string
	Date   string
	Total  int
	Detail string
}

// ClassConflictRow is the flat CSV projection of ClassConflict. Both variants
// share one report file; quota entries fill JENIS, TOTAL and DETAIL instead
// of the pairwise columns.
type ClassConflictRow struct {
	Class   string `csv:"KELAS"`
	Date    string `csv:"TANGGAL"`
	Shift1  string `csv:"SHIFT_1"`
	Course1 string `csv:"MATA KULIAH 1"`
	Code1   string `csv:"KODE 1"`
	Room1   string `csv:"RUANGAN 1"`
	Shift2  string `csv:"SHIFT_2"`
	Course2 string `csv:"MATA KULIAH 2"`
	Code2   string `csv:"KODE 2"`
	Room2   string `csv:"RUANGAN 2"`
	Kind    string `csv:"JENIS"`
	Total   string `csv:"TOTAL"`
	Detail  string `csv:"DETAIL"`
}

func (c ClassConflict) Row() ClassConflictRow {
	switch c.Kind {
	case ClassConflictQuota:
		return ClassConflictRow{
			Class:  c.Quota.Class,
			Date:   c.Quota.Date,
			Kind:   string(ClassConflictQuota),
			Total:  strconv.Itoa(c.Quota.Total),
			Detail: c.Quota.Detail,
		}
	default:
		o := c.Overlap
		return ClassConflictRow{
			Class:   o.Class,
			Date:    o.Date,
			Shift1:  o.Shift1,
			Course1: o.Course1,
			Code1:   o.Code1,
			Room1:   o.Room1,
			Shift2:  o.Shift2,
			Course2: o.Course2,
			Code2:   o.Code2,
			Room2:   o.Room2,
		}
	}
}

// RoomConflict lists one occupant of an over-booked (date, shift, room) slot.
// Every occupant of such a slot gets its own row.
type RoomConflict struct {
	Date   string `csv:"TANGGAL"`
	Shift  string `csv:"SHIFT"`
	Room   string `csv:"RUANGAN"`
	Class  string `csv:"KELAS"`
	Course string `csv:"MATA KULIAH"`
	Code   string `csv:"KODE"`
}

// LecturerConflict is one pair of exams the same lecturer proctors at
// overlapping times.
type LecturerConflict struct {
	Date1    string `csv:"TANGGAL_1"`
	Shift1   string `csv:"SHIFT_1"`
	Lecturer string `csv:"DOSEN"`
	Class1   string `csv:"KELAS_1"`
	Course1  string `csv:"MATA KULIAH 1"`
	Room1    string `csv:"RUANGAN_1"`
	Date2    string `csv:"TANGGAL_2"`
	Shift2   string `csv:"SHIFT_2"`
	Class2   string `csv:"KELAS_2"`
	Course2  string `csv:"MATA KULIAH 2"`
	Room2    string `csv:"RUANGAN_2"`
}

// BlackoutViolation is a record sitting in a room that is blacklisted on its
// assigned date.
type BlackoutViolation struct {
	Date   string `csv:"TANGGAL"`
	Shift  string `csv:"SHIFT"`
	Room   string `csv:"RUANGAN"`
	Class  string `csv:"KELAS"`
	Course string `csv:"MATA KULIAH"`
}

// KeyCount is one line of the composite-key recap export used for manual
// filtering in a spreadsheet.
type KeyCount struct {
	KeyType string `csv:"JENIS_KEY"`
	Key     string `csv:"KEY"`
	Count   int    `csv:"JUMLAH"`
}
