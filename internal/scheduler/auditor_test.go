package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fakhri17/schedule-uts/pkg/model"
)

func audit(t *testing.T, records ...*model.ExamRecord) *Report {
	t.Helper()
	return NewAuditor(NewDefaultConfig()).Audit(records)
}

func TestAuditEmptyInputIsClean(t *testing.T) {
	rep := audit(t)
	assert.True(t, rep.Clean())
	assert.Empty(t, rep.Flagged())
	assert.Equal(t, 0, rep.Summary().Total())
}

func TestAuditClassOverlap(t *testing.T) {
	r1 := record("IT-06-A", "03-Nov-25", "07.30 - 09.30", "KTT 1.01")
	r2 := record("IT-06-A", "03-Nov-25", "08.30 - 10.30", "KTT 1.02")
	rep := audit(t, r1, r2)

	require.Len(t, rep.Classes, 1)
	c := rep.Classes[0]
	require.Equal(t, model.ClassConflictOverlap, c.Kind)
	require.NotNil(t, c.Overlap)
	assert.Equal(t, "IT-06-A", c.Overlap.Class)
	assert.Equal(t, "07.30 - 09.30", c.Overlap.Shift1)
	assert.Equal(t, "08.30 - 10.30", c.Overlap.Shift2)
	assert.True(t, rep.Flagged()[r1])
	assert.True(t, rep.Flagged()[r2])
}

func TestAuditClassBackToBackIsNotAnOverlap(t *testing.T) {
	r1 := record("IT-06-A", "03-Nov-25", "07.30 - 09.30", "KTT 1.01")
	r2 := record("IT-06-A", "03-Nov-25", "09.30 - 11.30", "KTT 1.02")
	rep := audit(t, r1, r2)
	assert.Empty(t, rep.Classes)
}

func TestAuditClassDailyQuota(t *testing.T) {
	r1 := record("IT-06-A", "03-Nov-25", "07.30 - 09.30", "KTT 1.01")
	r2 := record("IT-06-A", "03-Nov-25", "10.00 - 12.00", "KTT 1.02")
	r3 := record("IT-06-A", "03-Nov-25", "13.00 - 15.00", "KTT 1.03")
	rep := audit(t, r1, r2, r3)

	require.Len(t, rep.Classes, 1)
	c := rep.Classes[0]
	require.Equal(t, model.ClassConflictQuota, c.Kind)
	require.NotNil(t, c.Quota)
	assert.Equal(t, 3, c.Quota.Total)
	assert.Contains(t, c.Quota.Detail, "07.30 - 09.30")
	assert.Contains(t, c.Quota.Detail, "13.00 - 15.00")
	assert.Len(t, rep.Flagged(), 3)
}

func TestAuditQuotaIgnoresOtherDates(t *testing.T) {
	rep := audit(t,
		record("IT-06-A", "03-Nov-25", "07.30 - 09.30", "KTT 1.01"),
		record("IT-06-A", "03-Nov-25", "10.00 - 12.00", "KTT 1.02"),
		record("IT-06-A", "04-Nov-25", "07.30 - 09.30", "KTT 1.01"),
		record("IT-06-A", "04-Nov-25", "10.00 - 12.00", "KTT 1.02"),
	)
	assert.True(t, rep.Clean())
}

func TestAuditRoomDoubleBooking(t *testing.T) {
	r1 := record("IT-06-A", "03-Nov-25", "07.30 - 09.30", "KTT 1.01")
	r2 := record("SI-04-B", "03-Nov-25", "07.30 - 09.30", "KTT 1.01")
	rep := audit(t, r1, r2)

	require.Len(t, rep.Rooms, 2, "every occupant of the slot is reported")
	assert.Equal(t, "KTT 1.01", rep.Rooms[0].Room)
	assert.True(t, rep.Flagged()[r1])
	assert.True(t, rep.Flagged()[r2])
}

func TestAuditAuditoriumAllowsTwoButNotThree(t *testing.T) {
	rep := audit(t,
		record("IT-06-A", "03-Nov-25", "07.30 - 09.30", "AULA"),
		record("IT-05-B", "03-Nov-25", "07.30 - 09.30", "AULA"),
	)
	assert.Empty(t, rep.Rooms)

	rep = audit(t,
		record("IT-06-A", "03-Nov-25", "07.30 - 09.30", "AULA"),
		record("IT-05-B", "03-Nov-25", "07.30 - 09.30", "AULA"),
		record("IT-04-C", "03-Nov-25", "07.30 - 09.30", "AULA"),
	)
	assert.Len(t, rep.Rooms, 3)
}

func TestAuditRoomGroupingUsesRawColumns(t *testing.T) {
	// The second record's shift does not parse, but the raw columns still
	// describe the same slot, so the room is over-booked.
	r1 := record("IT-06-A", "03-Nov-25", "07.30 - 09.30", "KTT 1.01")
	r2 := record("SI-04-B", "03-Nov-25", "07.30 - 09.30", "KTT 1.01")
	r2.Shift = "07.30 - 09.30"
	r2.Interval = model.Interval{}
	rep := audit(t, r1, r2)
	assert.Len(t, rep.Rooms, 2)
}

func TestAuditLecturerOverlapAcrossClasses(t *testing.T) {
	r1 := record("IT-06-A", "03-Nov-25", "07.30 - 09.30", "KTT 1.01")
	r2 := record("SI-04-B", "03-Nov-25", "07.30 - 09.30", "KTT 1.02")
	r2.Lecturer = r1.Lecturer
	rep := audit(t, r1, r2)

	require.Len(t, rep.Lecturers, 1)
	assert.Equal(t, r1.Lecturer, rep.Lecturers[0].Lecturer)
	assert.Equal(t, "IT-06-A", rep.Lecturers[0].Class1)
	assert.Equal(t, "SI-04-B", rep.Lecturers[0].Class2)
}

func TestAuditLecturerDifferentShiftsAreFine(t *testing.T) {
	r1 := record("IT-06-A", "03-Nov-25", "07.30 - 09.30", "KTT 1.01")
	r2 := record("SI-04-B", "03-Nov-25", "10.00 - 12.00", "KTT 1.02")
	r2.Lecturer = r1.Lecturer
	rep := audit(t, r1, r2)
	assert.Empty(t, rep.Lecturers)
}

func TestAuditBlackoutViolation(t *testing.T) {
	rep := audit(t,
		record("IT-06-A", "03-Nov-25", "07.30 - 09.30", "KTT 2.08"),
		record("SI-04-B", "06-Nov-25", "07.30 - 09.30", "KTT 2.08"),
	)
	require.Len(t, rep.Blackouts, 1, "Thursday is past the Mon-Wed cutoff")
	assert.Equal(t, "KTT 2.08", rep.Blackouts[0].Room)
	assert.Equal(t, "03-Nov-25", rep.Blackouts[0].Date)
}

func TestAuditSkipsRecordsWithoutParsedTime(t *testing.T) {
	broken := record("IT-06-A", "03-Nov-25", "pagi", "KTT 2.08")
	require.False(t, broken.HasTime())
	rep := audit(t, broken)
	assert.True(t, rep.Clean(), "time-based checks skip unparsable rows")
}

func TestKeyCounts(t *testing.T) {
	r1 := record("IT-06-A", "03-Nov-25", "07.30 - 09.30", "KTT 1.01")
	r2 := record("SI-04-B", "03-Nov-25", "07.30 - 09.30", "KTT 1.01")
	r3 := record("IT-05-C", "04-Nov-25", "10.00 - 12.00", "KTT 1.02")
	counts := KeyCounts([]*model.ExamRecord{r1, r2, r3})

	byType := make(map[string][]model.KeyCount)
	for _, kc := range counts {
		byType[kc.KeyType] = append(byType[kc.KeyType], kc)
	}
	require.Len(t, byType, 3)

	roomRows := byType["Tanggal+Shift+Ruangan"]
	require.Len(t, roomRows, 2)
	assert.Equal(t, 2, roomRows[0].Count, "most frequent key first")
	assert.Equal(t, "03-NOV-25|07.30 - 09.30|KTT 1.01", roomRows[0].Key)
	assert.Len(t, byType["Tanggal+Shift+Kelas"], 3)
}
