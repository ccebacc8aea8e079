package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/Fakhri17/schedule-uts/internal/scheduler"
	"github.com/Fakhri17/schedule-uts/pkg/model"
)

// Report file names the checker writes next to the schedule.
const (
	ClassConflictsFile     = "kelas-conflicts.csv"
	RoomConflictsFile      = "ruangan-conflicts.csv"
	LecturerConflictsFile  = "dosen-conflicts.csv"
	BlackoutViolationsFile = "ruangan-blacklist-violations.csv"
	KeySummaryFile         = "rekap_kombinasi_key.csv"

	reportDelimiter = ','
)

// ExportSchedule writes the full record set, scheduled or not, with the
// deterministic column order of the record struct. An existing file is
// replaced.
func ExportSchedule(records []*model.ExamRecord, path string, delim rune) error {
	return marshalToFile(&records, path, delim)
}

// WriteReport dumps the four conflict collections into the report directory,
// one file per kind. Empty collections still produce a header-only file so
// downstream tooling always finds them.
func WriteReport(rep *scheduler.Report, dir string) error {
	rows := make([]*model.ClassConflictRow, 0, len(rep.Classes))
	for _, c := range rep.Classes {
		row := c.Row()
		rows = append(rows, &row)
	}
	if err := marshalToFile(&rows, filepath.Join(dir, ClassConflictsFile), reportDelimiter); err != nil {
		return err
	}
	if err := marshalToFile(&rep.Rooms, filepath.Join(dir, RoomConflictsFile), reportDelimiter); err != nil {
		return err
	}
	if err := marshalToFile(&rep.Lecturers, filepath.Join(dir, LecturerConflictsFile), reportDelimiter); err != nil {
		return err
	}
	return marshalToFile(&rep.Blackouts, filepath.Join(dir, BlackoutViolationsFile), reportDelimiter)
}

// WriteKeyCounts writes the composite-key recap export.
func WriteKeyCounts(counts []model.KeyCount, path string) error {
	return marshalToFile(&counts, path, reportDelimiter)
}

func marshalToFile(data interface{}, path string, delim rune) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	gocsv.SetCSVWriter(func(w io.Writer) *gocsv.SafeCSVWriter {
		writer := csv.NewWriter(w)
		writer.Comma = delim
		return gocsv.NewSafeCSVWriter(writer)
	})
	if err := gocsv.MarshalFile(data, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
