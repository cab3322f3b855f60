package srs

import (
	"sort"
	"time"

	"github.com/devika/pmquest/internal/store"
)

// Scheduler manages the per-card review records and decides which cards are
// up for review. Records are created on first review and evolved by Review;
// the scheduler never deletes them.
type Scheduler struct {
	records map[string]*Record
}

// NewScheduler creates a scheduler, loading review records from the snapshot.
func NewScheduler(snap *store.SnapshotData) *Scheduler {
	s := &Scheduler{records: make(map[string]*Record)}
	if snap == nil || snap.SRS == nil {
		return s
	}
	s.loadFromSnapshot(snap.SRS)
	return s
}

func (s *Scheduler) loadFromSnapshot(data *store.SRSSnapshotData) {
	for cardID, rd := range data.Reviews {
		if rd == nil {
			continue
		}
		last, err := time.Parse(time.RFC3339, rd.LastReviewedAt)
		if err != nil {
			continue
		}
		due, err := time.Parse(time.RFC3339, rd.NextReviewDue)
		if err != nil {
			continue
		}
		s.records[cardID] = &Record{
			CardID:         rd.CardID,
			Interval:       rd.IntervalDays,
			EaseFactor:     rd.EaseFactor,
			Repetitions:    rd.Repetitions,
			LastReviewedAt: last,
			NextReviewDue:  due,
		}
	}
}

// DueCards returns the cards up for review now, drawn from the caller's set
// of read (eligible) card IDs. A read card with no review record yet is
// always included; a recorded card is included once its due time has passed.
// Recorded cards come first, most overdue first; never-reviewed cards follow
// in ID order. The ordering is deterministic so callers can cap or shuffle
// as a display policy.
func (s *Scheduler) DueCards(readCardIDs []string, now time.Time) []string {
	type dueCard struct {
		id      string
		overdue float64
	}
	var recorded []dueCard
	var fresh []string

	for _, id := range readCardIDs {
		r, ok := s.records[id]
		if !ok {
			fresh = append(fresh, id)
			continue
		}
		if r.IsDue(now) {
			recorded = append(recorded, dueCard{id: id, overdue: r.OverdueDays(now)})
		}
	}

	sort.Slice(recorded, func(i, j int) bool {
		if recorded[i].overdue != recorded[j].overdue {
			return recorded[i].overdue > recorded[j].overdue
		}
		return recorded[i].id < recorded[j].id
	})
	sort.Strings(fresh)

	ids := make([]string, 0, len(recorded)+len(fresh))
	for _, d := range recorded {
		ids = append(ids, d.id)
	}
	return append(ids, fresh...)
}

// RecordReview applies a 1-5 recall rating to a card and stores the updated
// record. Returns the updated record.
func (s *Scheduler) RecordReview(cardID string, quality int, now time.Time) (Record, error) {
	updated, err := Review(s.records[cardID], cardID, quality, now)
	if err != nil {
		return Record{}, err
	}
	s.records[cardID] = &updated
	return updated, nil
}

// GetRecord returns the review record for a card, or nil if never reviewed.
func (s *Scheduler) GetRecord(cardID string) *Record {
	return s.records[cardID]
}

// DaysUntilReview returns the whole days until cardID's next review (0 when
// due or overdue). The second return is false for cards with no record.
func (s *Scheduler) DaysUntilReview(cardID string, now time.Time) (int, bool) {
	r, ok := s.records[cardID]
	if !ok {
		return 0, false
	}
	return r.DaysUntilReview(now), true
}

// ReviewedCount returns how many cards have review records.
func (s *Scheduler) ReviewedCount() int {
	return len(s.records)
}

// SnapshotData exports the review records for persistence.
func (s *Scheduler) SnapshotData() *store.SRSSnapshotData {
	data := &store.SRSSnapshotData{
		Reviews: make(map[string]*store.ReviewRecordData, len(s.records)),
	}
	for cardID, r := range s.records {
		data.Reviews[cardID] = &store.ReviewRecordData{
			CardID:         r.CardID,
			IntervalDays:   r.Interval,
			EaseFactor:     r.EaseFactor,
			Repetitions:    r.Repetitions,
			LastReviewedAt: r.LastReviewedAt.Format(time.RFC3339),
			NextReviewDue:  r.NextReviewDue.Format(time.RFC3339),
		}
	}
	return data
}
