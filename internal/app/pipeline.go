package app

import (
	"errors"
	"math/rand"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Fakhri17/schedule-uts/internal/config"
	"github.com/Fakhri17/schedule-uts/internal/csvio"
	"github.com/Fakhri17/schedule-uts/internal/scheduler"
	"github.com/Fakhri17/schedule-uts/pkg/model"
)

// Generate builds a full schedule from the raw exam list: records arriving
// with a complete (date, shift, room) triple pass through untouched, the rest
// get slots assigned. The result is exported and audited once so the log
// shows what the greedy pass could not resolve.
func Generate(cfg *config.Config, log *zap.Logger) error {
	schedCfg, err := cfg.SchedulerConfig()
	if err != nil {
		return err
	}

	rooms, err := csvio.LoadRooms(cfg.RoomsFile, cfg.Delimiter, log)
	if errors.Is(err, csvio.ErrNoSource) {
		log.Warn("no room roster found, skipping stage", zap.String("file", cfg.RoomsFile))
		return nil
	}
	if err != nil {
		return err
	}

	records, err := csvio.LoadSchedule(cfg.ScheduleFile, cfg.Delimiter, log)
	if errors.Is(err, csvio.ErrNoSource) {
		log.Warn("no schedule source found, skipping stage", zap.String("file", cfg.ScheduleFile))
		return nil
	}
	if err != nil {
		return err
	}
	log.Info("schedule loaded",
		zap.String("file", cfg.ScheduleFile), zap.Int("records", len(records)))

	alloc := scheduler.NewAllocator(schedCfg, rooms, newRand(cfg.Seed), log)
	if unplaced := alloc.Run(records); unplaced > 0 {
		log.Warn("records left unplaced", zap.Int("count", unplaced))
	}

	if err := csvio.ExportSchedule(records, cfg.OutputFile, cfg.Delimiter); err != nil {
		return err
	}
	log.Info("schedule written", zap.String("file", cfg.OutputFile))

	rep := scheduler.NewAuditor(schedCfg).Audit(records)
	logSummary(log, rep.Summary())
	return nil
}

// Check audits an existing schedule and writes the four conflict reports plus
// the key recap. The newest pipeline output is preferred: the fixed file
// first, then the generated one, then the raw input.
func Check(cfg *config.Config, log *zap.Logger) error {
	schedCfg, err := cfg.SchedulerConfig()
	if err != nil {
		return err
	}

	records, src, err := loadFirst(cfg, log, cfg.FixedFile, cfg.OutputFile, cfg.ScheduleFile)
	if err != nil {
		return err
	}
	if src == "" {
		log.Warn("no schedule file found to check")
		return nil
	}
	log.Info("checking schedule", zap.String("file", src), zap.Int("records", len(records)))

	rep := scheduler.NewAuditor(schedCfg).Audit(records)
	if err := csvio.WriteReport(rep, cfg.ReportDir); err != nil {
		return err
	}
	if err := csvio.WriteKeyCounts(scheduler.KeyCounts(records),
		filepath.Join(cfg.ReportDir, csvio.KeySummaryFile)); err != nil {
		return err
	}
	logSummary(log, rep.Summary())
	return nil
}

// Fix audits the schedule and re-places every flagged record, starting each
// search from the record's own date so a mostly-good schedule is perturbed as
// little as possible. The repaired set is written back and audited again.
func Fix(cfg *config.Config, log *zap.Logger) error {
	schedCfg, err := cfg.SchedulerConfig()
	if err != nil {
		return err
	}

	rooms, err := csvio.LoadRooms(cfg.RoomsFile, cfg.Delimiter, log)
	if errors.Is(err, csvio.ErrNoSource) {
		log.Warn("no room roster found, skipping stage", zap.String("file", cfg.RoomsFile))
		return nil
	}
	if err != nil {
		return err
	}

	records, src, err := loadFirst(cfg, log, cfg.FixedFile, cfg.OutputFile)
	if err != nil {
		return err
	}
	if src == "" {
		log.Warn("no schedule file found to fix")
		return nil
	}

	auditor := scheduler.NewAuditor(schedCfg)
	rep := auditor.Audit(records)
	if rep.Clean() {
		log.Info("no conflicts or violations found, nothing to fix")
		return nil
	}
	flagged := rep.Flagged()
	log.Info("repairing flagged records",
		zap.String("file", src), zap.Int("flagged", len(flagged)))

	alloc := scheduler.NewAllocator(schedCfg, rooms, newRand(cfg.Seed), log)
	if unfixed := alloc.Repair(records, flagged); unfixed > 0 {
		log.Warn("records could not be re-placed", zap.Int("count", unfixed))
	}

	if err := csvio.ExportSchedule(records, cfg.FixedFile, cfg.Delimiter); err != nil {
		return err
	}
	log.Info("repaired schedule written", zap.String("file", cfg.FixedFile))

	logSummary(log, auditor.Audit(records).Summary())
	return nil
}

// loadFirst returns the records of the first candidate file that exists.
func loadFirst(cfg *config.Config, log *zap.Logger, candidates ...string) ([]*model.ExamRecord, string, error) {
	for _, path := range candidates {
		records, err := csvio.LoadSchedule(path, cfg.Delimiter, log)
		if errors.Is(err, csvio.ErrNoSource) {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		return records, path, nil
	}
	return nil, "", nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func logSummary(log *zap.Logger, s scheduler.Summary) {
	log.Info("audit summary",
		zap.Int("records", s.Records),
		zap.Int("class_conflicts", s.Classes),
		zap.Int("room_conflicts", s.Rooms),
		zap.Int("lecturer_conflicts", s.Lecturers),
		zap.Int("blackout_violations", s.Blackouts))
	if s.Total() == 0 {
		log.Info("no conflicts or violations found")
	} else {
		log.Warn("issues found", zap.Int("total", s.Total()))
	}
}
