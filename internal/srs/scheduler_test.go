package srs

import (
	"testing"

	"github.com/devika/pmquest/internal/store"
)

func newTestScheduler() *Scheduler {
	return &Scheduler{records: make(map[string]*Record)}
}

func TestDueCards_FreshCardsIncluded(t *testing.T) {
	s := newTestScheduler()
	due := s.DueCards([]string{"c2", "c1"}, testNow)
	if len(due) != 2 {
		t.Fatalf("DueCards = %v, want both never-reviewed cards", due)
	}
	if due[0] != "c1" || due[1] != "c2" {
		t.Errorf("DueCards = %v, want ID order for fresh cards", due)
	}
}

func TestDueCards_RecordedCardsByDueTime(t *testing.T) {
	s := newTestScheduler()

	// c1 reviewed 10 days ago with a 1-day interval: long overdue.
	// c2 reviewed 2 days ago with a 1-day interval: slightly overdue.
	// c3 reviewed now: not due.
	if _, err := s.RecordReview("c1", 3, testNow.AddDate(0, 0, -10)); err != nil {
		t.Fatalf("review: %v", err)
	}
	if _, err := s.RecordReview("c2", 3, testNow.AddDate(0, 0, -2)); err != nil {
		t.Fatalf("review: %v", err)
	}
	if _, err := s.RecordReview("c3", 3, testNow); err != nil {
		t.Fatalf("review: %v", err)
	}

	due := s.DueCards([]string{"c1", "c2", "c3", "c4"}, testNow)
	want := []string{"c1", "c2", "c4"} // most overdue first, then fresh
	if len(due) != len(want) {
		t.Fatalf("DueCards = %v, want %v", due, want)
	}
	for i := range want {
		if due[i] != want[i] {
			t.Errorf("DueCards[%d] = %q, want %q", i, due[i], want[i])
		}
	}
}

func TestDueCards_IgnoresUnreadRecords(t *testing.T) {
	s := newTestScheduler()
	if _, err := s.RecordReview("c1", 3, testNow.AddDate(0, 0, -5)); err != nil {
		t.Fatalf("review: %v", err)
	}

	// c1 is overdue but not in the caller's read set.
	due := s.DueCards([]string{"c2"}, testNow)
	if len(due) != 1 || due[0] != "c2" {
		t.Errorf("DueCards = %v, want [c2]", due)
	}
}

func TestRecordReview_InvalidQualityLeavesNoRecord(t *testing.T) {
	s := newTestScheduler()
	if _, err := s.RecordReview("c1", 7, testNow); err == nil {
		t.Fatal("expected error for out-of-range quality")
	}
	if s.GetRecord("c1") != nil {
		t.Error("invalid review must not create a record")
	}
}

func TestDaysUntilReview(t *testing.T) {
	s := newTestScheduler()
	if _, ok := s.DaysUntilReview("c1", testNow); ok {
		t.Error("expected ok=false for unreviewed card")
	}

	if _, err := s.RecordReview("c1", 4, testNow); err != nil {
		t.Fatalf("review: %v", err)
	}
	days, ok := s.DaysUntilReview("c1", testNow)
	if !ok || days != 1 {
		t.Errorf("DaysUntilReview = %d, %v, want 1, true", days, ok)
	}
}

func TestScheduler_SnapshotRoundTrip(t *testing.T) {
	s := newTestScheduler()
	if _, err := s.RecordReview("c1", 5, testNow); err != nil {
		t.Fatalf("review: %v", err)
	}
	if _, err := s.RecordReview("c2", 2, testNow); err != nil {
		t.Fatalf("review: %v", err)
	}

	snap := &store.SnapshotData{SRS: s.SnapshotData()}
	loaded := NewScheduler(snap)

	if loaded.ReviewedCount() != 2 {
		t.Fatalf("ReviewedCount = %d, want 2", loaded.ReviewedCount())
	}
	orig := s.GetRecord("c1")
	got := loaded.GetRecord("c1")
	if got == nil {
		t.Fatal("expected record for c1")
	}
	if got.Repetitions != orig.Repetitions || got.Interval != orig.Interval || got.EaseFactor != orig.EaseFactor {
		t.Errorf("record = %+v, want %+v", got, orig)
	}
	if !got.NextReviewDue.Equal(orig.NextReviewDue) {
		t.Errorf("NextReviewDue = %v, want %v", got.NextReviewDue, orig.NextReviewDue)
	}
}

func TestNewScheduler_NilSnapshot(t *testing.T) {
	s := NewScheduler(nil)
	if s.ReviewedCount() != 0 {
		t.Errorf("ReviewedCount = %d, want 0", s.ReviewedCount())
	}
	if got := s.DueCards([]string{"c1"}, testNow); len(got) != 1 {
		t.Errorf("DueCards = %v, want the fresh card", got)
	}
}

func TestNewScheduler_SkipsMalformedTimestamps(t *testing.T) {
	snap := &store.SnapshotData{
		SRS: &store.SRSSnapshotData{
			Reviews: map[string]*store.ReviewRecordData{
				"bad": {CardID: "bad", LastReviewedAt: "not-a-time", NextReviewDue: "also-bad"},
			},
		},
	}
	s := NewScheduler(snap)
	if s.ReviewedCount() != 0 {
		t.Errorf("ReviewedCount = %d, want 0 (malformed entry skipped)", s.ReviewedCount())
	}
}
