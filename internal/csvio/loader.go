package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"github.com/Fakhri17/schedule-uts/pkg/model"
)

// ErrNoSource marks a missing input file. Callers report it and skip the
// stage cleanly; anything else from the loader is a real failure.
var ErrNoSource = errors.New("no source found")

// requiredColumns must be present in a schedule file. Missing ones are
// reported once and their fields default to empty strings.
var requiredColumns = []string{
	"HARI", "TANGGAL", "SHIFT", "RUANGAN",
	"KODE MATA KULIAH", "NAMA MATA KULIAH", "NAMA DOSEN", "KELAS",
}

func configure(delim rune) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		r.FieldsPerRecord = -1
		return r
	})
	gocsv.SetHeaderNormalizer(func(h string) string {
		return strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))
	})
}

// LoadSchedule reads and parses a schedule CSV. Raw columns are kept as-is;
// the derived interval is attached when the (date, shift) pair is readable,
// so unparsable rows stay in the set but sit out the time-based checks.
// Fully blank rows are dropped and duplicate sittings keep their first
// occurrence only.
func LoadSchedule(path string, delim rune, log *zap.Logger) ([]*model.ExamRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoSource
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	warnMissingColumns(f, delim, log)

	configure(delim)
	raw := []*model.ExamRecord{}
	if err := gocsv.UnmarshalFile(f, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	records := make([]*model.ExamRecord, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	dupes := 0
	for _, rec := range raw {
		if rec.Blank() {
			continue
		}
		key := rec.DedupKey()
		if seen[key] {
			dupes++
			continue
		}
		seen[key] = true
		if iv, ok := model.ParseSlot(rec.Date, rec.Shift); ok {
			rec.Interval = iv
		}
		records = append(records, rec)
	}
	if dupes > 0 {
		log.Info("dropped duplicate rows",
			zap.String("file", path), zap.Int("count", dupes))
	}
	return records, nil
}

// LoadRooms reads the campus room roster. The auditorium is recognized by its
// name, not by a column.
func LoadRooms(path string, delim rune, log *zap.Logger) ([]*model.Room, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoSource
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	configure(delim)
	raw := []*model.Room{}
	if err := gocsv.UnmarshalFile(f, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	rooms := make([]*model.Room, 0, len(raw))
	for _, r := range raw {
		r.Name = strings.TrimSpace(r.Name)
		if r.Name == "" {
			continue
		}
		rooms = append(rooms, r)
	}
	log.Info("rooms loaded", zap.String("file", path), zap.Int("count", len(rooms)))
	return rooms, nil
}

// warnMissingColumns peeks at the header row and logs required columns the
// file does not carry. The reader position is restored afterwards.
func warnMissingColumns(f *os.File, delim rune, log *zap.Logger) {
	r := csv.NewReader(f)
	r.Comma = delim
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if _, serr := f.Seek(0, io.SeekStart); serr != nil || err != nil {
		return
	}
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))] = true
	}
	var missing []string
	for _, col := range requiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		log.Warn("columns not found, fields default to empty",
			zap.Strings("columns", missing))
	}
}
