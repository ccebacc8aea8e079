package scheduler

import (
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Fakhri17/schedule-uts/pkg/model"
)

// Allocator assigns exam records to (date, shift, room) slots. The random
// source breaks ties among equally valid free rooms; inject a seeded one for
// reproducible runs.
type Allocator struct {
	cfg   *Config
	rooms []*model.Room
	rng   *rand.Rand
	log   *zap.Logger

	idx *usage
}

func NewAllocator(cfg *Config, rooms []*model.Room, rng *rand.Rand, log *zap.Logger) *Allocator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Allocator{cfg: cfg, rooms: rooms, rng: rng, log: log}
}

// Run places every record that lacks a time or a room. Rows arriving with a
// full (date, shift, room) triple are trusted verbatim and registered first,
// so a legally pre-filled schedule passes through unchanged. Returns the
// number of records left unplaceable.
func (a *Allocator) Run(records []*model.ExamRecord) int {
	a.idx = newUsage()

	var pending []*model.ExamRecord
	for _, rec := range records {
		if rec.HasTime() && strings.TrimSpace(rec.Room) != "" {
			rec.State = model.Placed
			a.idx.add(rec)
			continue
		}
		if rec.HasTime() {
			rec.State = model.NeedsRoomOnly
		} else {
			rec.State = model.NeedsTime
		}
		pending = append(pending, rec)
	}

	unplaced := 0
	for _, rec := range pending {
		if a.place(rec, nil) {
			continue
		}
		rec.ClearSlot()
		rec.State = model.Unplaceable
		unplaced++
		a.log.Warn("record unplaceable",
			zap.String("class", rec.Class),
			zap.String("course", rec.CourseCode),
			zap.String("lecturer", rec.Lecturer))
	}
	return unplaced
}

// Repair re-places flagged records while disturbing the rest of the schedule
// as little as possible: the usage index is rebuilt from every non-flagged
// record, then each flagged record searches again starting from its original
// slot and room. A record flagged only because of a co-occupant keeps its
// seat. Returns the number that could not be re-placed.
func (a *Allocator) Repair(records []*model.ExamRecord, flagged map[*model.ExamRecord]bool) int {
	a.idx = newUsage()
	for _, rec := range records {
		if !flagged[rec] {
			a.idx.add(rec)
		}
	}

	unfixed := 0
	for _, rec := range records {
		if !flagged[rec] {
			continue
		}
		var original *model.Interval
		if rec.HasTime() {
			iv := rec.Interval
			original = &iv
		}
		if a.place(rec, original) {
			continue
		}
		rec.ClearSlot()
		rec.State = model.Unplaceable
		unfixed++
		a.log.Warn("no replacement slot found",
			zap.String("class", rec.Class),
			zap.String("course", rec.CourseCode))
	}
	return unfixed
}

// place runs the fixed-slot step and then the full search. original
// front-loads the record's previous date in repair mode.
func (a *Allocator) place(rec *model.ExamRecord, original *model.Interval) bool {
	if rec.HasTime() {
		if room := a.pickRoomAt(rec, rec.Interval, strings.TrimSpace(rec.Room)); room != "" {
			a.commit(rec, rec.Interval, room)
			return true
		}
	}
	for _, iv := range a.candidateSlots(rec, original) {
		if room := a.pickRoomAt(rec, iv, ""); room != "" {
			a.commit(rec, iv, room)
			return true
		}
	}
	return false
}

func (a *Allocator) commit(rec *model.ExamRecord, iv model.Interval, room string) {
	rec.SetSlot(iv)
	rec.Room = room
	rec.State = model.Placed
	a.idx.add(rec)
}

// candidateSlots enumerates the grid in search order: chronological, except
// that auditorium candidates see Tuesday-afternoon slots first so Monday
// mornings stay free for records with fewer options, and repair runs see the
// record's original date first.
func (a *Allocator) candidateSlots(rec *model.ExamRecord, original *model.Interval) []model.Interval {
	var slots []model.Interval
	for _, date := range a.cfg.AllowedDates() {
		slots = append(slots, a.cfg.ShiftsForDate(date)...)
	}
	if a.cfg.Auditorium.Eligible(rec) {
		slots = frontLoad(slots, func(iv model.Interval) bool {
			return iv.Start.Weekday() == time.Tuesday && iv.Start.Hour() >= 13
		})
	}
	if original != nil {
		key := original.DateKey()
		slots = frontLoad(slots, func(iv model.Interval) bool {
			return iv.DateKey() == key
		})
	}
	return slots
}

// frontLoad stably moves matching slots to the head of the list.
func frontLoad(slots []model.Interval, match func(model.Interval) bool) []model.Interval {
	head := make([]model.Interval, 0, len(slots))
	var tail []model.Interval
	for _, s := range slots {
		if match(s) {
			head = append(head, s)
		} else {
			tail = append(tail, s)
		}
	}
	return append(head, tail...)
}

// slotOpen checks the record's class and lecturer constraints at a sitting.
func (a *Allocator) slotOpen(rec *model.ExamRecord, iv model.Interval) bool {
	if classConflicts(a.idx, rec.Class, iv) {
		return false
	}
	if classQuotaReached(a.idx, rec.Class, iv.DateKey(), a.cfg.ClassDailyLimit) {
		return false
	}
	if lecturerConflicts(a.idx, rec.Lecturer, iv) {
		return false
	}
	return true
}

// pickRoomAt returns a legal room for the record at the sitting, or "". A
// requested room is honored only when it is actually free and legal; it is
// never silently overridden, the caller just falls through to the search.
func (a *Allocator) pickRoomAt(rec *model.ExamRecord, iv model.Interval, requested string) string {
	if !a.slotOpen(rec, iv) {
		return ""
	}
	key := keyOf(iv)

	if requested != "" {
		if a.roomAvailable(rec, requested, key, iv) {
			return requested
		}
		return ""
	}

	var ordinary []string
	var auditorium string
	for _, room := range a.rooms {
		if a.cfg.IsBlacklisted(room.Name, iv.Start) {
			continue
		}
		if room.IsAuditorium() {
			if a.auditoriumOpen(rec, key, iv) {
				auditorium = room.Name
			}
			continue
		}
		if a.idx.roomCount(key, room.Name) == 0 {
			ordinary = append(ordinary, room.Name)
		}
	}

	// Pair a second big written exam into a half-filled auditorium before
	// opening a fresh ordinary room.
	if auditorium != "" && len(a.idx.auditoriumOccupants(key)) == 1 {
		return auditorium
	}
	if len(ordinary) > 0 {
		return ordinary[a.rng.Intn(len(ordinary))]
	}
	return auditorium
}

// roomAvailable validates an explicitly requested room at a sitting.
func (a *Allocator) roomAvailable(rec *model.ExamRecord, room string, key slotKey, iv model.Interval) bool {
	if a.cfg.IsBlacklisted(room, iv.Start) {
		return false
	}
	if model.IsAuditorium(room) {
		return a.auditoriumOpen(rec, key, iv)
	}
	return !roomFull(a.idx, key, room, a.cfg.Auditorium.Capacity)
}

// auditoriumOpen bundles the eligibility, time-window, capacity and affinity
// rules for joining the auditorium at a sitting.
func (a *Allocator) auditoriumOpen(rec *model.ExamRecord, key slotKey, iv model.Interval) bool {
	p := a.cfg.Auditorium
	if !p.Eligible(rec) || !p.WindowOpen(iv.Start) {
		return false
	}
	occupants := a.idx.auditoriumOccupants(key)
	if len(occupants) >= p.Capacity {
		return false
	}
	return p.SharesAffinity(rec.Class, occupants)
}
