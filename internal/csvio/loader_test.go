package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Fakhri17/schedule-uts/pkg/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const scheduleHeader = "HARI;TANGGAL;SHIFT;RUANGAN;KODE MATA KULIAH;NAMA MATA KULIAH;NAMA DOSEN;KELAS;BENTUK UJIAN;JUMLAH MAHASISWA;PROGRAM STUDI\n"

func TestLoadScheduleParsesRows(t *testing.T) {
	path := writeFile(t, "jadwal.csv", scheduleHeader+
		"SENIN;03-Nov-25;07.30 - 09.30;KTT 1.01;MK-001;Basis Data;Dosen A;IT-06-A;Ujian Tulis;35;Informatika\n")

	records, err := LoadSchedule(path, ';', zap.NewNop())
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "IT-06-A", rec.Class)
	assert.Equal(t, "Basis Data", rec.CourseName)
	assert.Equal(t, 35, rec.Headcount)
	require.True(t, rec.HasTime())
	assert.Equal(t, "2025-11-03", rec.Interval.DateKey())
	assert.Equal(t, "07.30 - 09.30", rec.Interval.ShiftLabel())
}

func TestLoadScheduleHeadersAreCaseInsensitive(t *testing.T) {
	path := writeFile(t, "jadwal.csv",
		"hari;tanggal;shift;ruangan;kode mata kuliah;nama mata kuliah;nama dosen;kelas;bentuk ujian;jumlah mahasiswa;program studi\n"+
			"SENIN;03-Nov-25;07.30 - 09.30;KTT 1.01;MK-001;Basis Data;Dosen A;IT-06-A;Ujian Tulis;35;Informatika\n")

	records, err := LoadSchedule(path, ';', zap.NewNop())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "IT-06-A", records[0].Class)
}

func TestLoadScheduleStripsHeaderByteOrderMark(t *testing.T) {
	path := writeFile(t, "jadwal.csv", "\uFEFF"+scheduleHeader+
		"SENIN;03-Nov-25;07.30 - 09.30;KTT 1.01;MK-001;Basis Data;Dosen A;IT-06-A;Ujian Tulis;35;Informatika\n")

	records, err := LoadSchedule(path, ';', zap.NewNop())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "SENIN", records[0].Day, "the BOM must not poison the first column")
}

func TestLoadScheduleMissingColumnsDefaultEmpty(t *testing.T) {
	path := writeFile(t, "jadwal.csv",
		"HARI;TANGGAL;SHIFT;RUANGAN;KODE MATA KULIAH;NAMA MATA KULIAH\n"+
			"SENIN;03-Nov-25;07.30 - 09.30;KTT 1.01;MK-001;Basis Data\n")

	records, err := LoadSchedule(path, ';', zap.NewNop())
	require.NoError(t, err, "missing columns never abort the load")
	require.Len(t, records, 1)

	rec := records[0]
	assert.Empty(t, rec.Class)
	assert.Empty(t, rec.Lecturer)
	assert.Equal(t, "Basis Data", rec.CourseName)
	assert.True(t, rec.HasTime())
}

func TestLoadScheduleDropsBlankAndDuplicateRows(t *testing.T) {
	row := "SENIN;03-Nov-25;07.30 - 09.30;KTT 1.01;MK-001;Basis Data;Dosen A;IT-06-A;Ujian Tulis;35;Informatika\n"
	path := writeFile(t, "jadwal.csv", scheduleHeader+
		row+
		";;;;;;;;;0;\n"+
		row+ // exact duplicate
		"SENIN;03-Nov-25;07.30 - 09.30;KTT 9.99;MK-001;Basis Data;Dosen A;IT-06-A;Ujian Tulis;35;Informatika\n") // same sitting, other room

	records, err := LoadSchedule(path, ';', zap.NewNop())
	require.NoError(t, err)
	require.Len(t, records, 1, "blank rows and duplicate sittings are dropped")
	assert.Equal(t, "KTT 1.01", records[0].Room, "first occurrence wins")
}

func TestLoadScheduleKeepsUnparsableTimes(t *testing.T) {
	path := writeFile(t, "jadwal.csv", scheduleHeader+
		"SENIN;segera;pagi;KTT 1.01;MK-001;Basis Data;Dosen A;IT-06-A;Ujian Tulis;35;Informatika\n")

	records, err := LoadSchedule(path, ';', zap.NewNop())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].HasTime())
	assert.Equal(t, "segera", records[0].Date, "raw columns stay untouched")
}

func TestLoadScheduleMissingFile(t *testing.T) {
	_, err := LoadSchedule(filepath.Join(t.TempDir(), "nope.csv"), ';', zap.NewNop())
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestLoadScheduleCommaDelimiter(t *testing.T) {
	path := writeFile(t, "jadwal.csv",
		strings.ReplaceAll(scheduleHeader, ";", ",")+
			"SENIN,03-Nov-25,07.30 - 09.30,KTT 1.01,MK-001,Basis Data,Dosen A,IT-06-A,Ujian Tulis,35,Informatika\n")

	records, err := LoadSchedule(path, ',', zap.NewNop())
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestLoadRooms(t *testing.T) {
	path := writeFile(t, "ruangan.csv", "RUANGAN\nKTT 1.01\n AULA \n\nKTT 2.08\n")

	rooms, err := LoadRooms(path, ';', zap.NewNop())
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, "KTT 1.01", rooms[0].Name)
	assert.Equal(t, "AULA", rooms[1].Name, "names are trimmed")
	assert.True(t, rooms[1].IsAuditorium())
}

func TestLoadRoomsMissingFile(t *testing.T) {
	_, err := LoadRooms(filepath.Join(t.TempDir(), "nope.csv"), ';', zap.NewNop())
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestExportScheduleRoundTrip(t *testing.T) {
	rec := &model.ExamRecord{
		Program:    "Informatika",
		CourseCode: "MK-001",
		CourseName: "Basis Data",
		Lecturer:   "Dosen A",
		Class:      "IT-06-A",
		ExamForm:   "Ujian Tulis",
		Headcount:  35,
		Room:       "KTT 1.01",
	}
	iv, ok := model.ParseSlot("03-Nov-25", "07.30 - 09.30")
	require.True(t, ok)
	rec.SetSlot(iv)

	unscheduled := &model.ExamRecord{
		Program:    "Informatika",
		CourseCode: "MK-002",
		CourseName: "Jaringan",
		Lecturer:   "Dosen B",
		Class:      "IT-05-B",
		ExamForm:   "Ujian Tulis",
		Headcount:  28,
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, ExportSchedule([]*model.ExamRecord{rec, unscheduled}, path, ';'))

	loaded, err := LoadSchedule(path, ';', zap.NewNop())
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "SENIN", loaded[0].Day)
	assert.Equal(t, "03-Nov-25", loaded[0].Date)
	assert.Equal(t, "KTT 1.01", loaded[0].Room)
	assert.True(t, loaded[0].HasTime())
	assert.False(t, loaded[1].HasTime(), "unscheduled rows survive with empty time columns")
	assert.Equal(t, "IT-05-B", loaded[1].Class)
}
