package srs

import (
	"errors"
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestReview_InvalidQuality(t *testing.T) {
	for _, q := range []int{-1, 0, 6, 100} {
		_, err := Review(nil, "card-a", q, testNow)
		if !errors.Is(err, ErrInvalidQuality) {
			t.Errorf("quality %d: err = %v, want ErrInvalidQuality", q, err)
		}
	}
}

func TestReview_FirstReview(t *testing.T) {
	r, err := Review(nil, "card-a", 5, testNow)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if r.CardID != "card-a" {
		t.Errorf("CardID = %q", r.CardID)
	}
	if r.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", r.Repetitions)
	}
	if r.Interval != 1 {
		t.Errorf("Interval = %v, want 1", r.Interval)
	}
	if !almostEqual(r.EaseFactor, 2.6) {
		t.Errorf("EaseFactor = %v, want 2.6", r.EaseFactor)
	}
	if !r.LastReviewedAt.Equal(testNow) {
		t.Errorf("LastReviewedAt = %v", r.LastReviewedAt)
	}
	if !r.NextReviewDue.Equal(testNow.Add(24 * time.Hour)) {
		t.Errorf("NextReviewDue = %v, want +1 day", r.NextReviewDue)
	}
}

// Three perfect recalls in a row: the third interval must grow from the
// evolved ease factor, not the initial 2.5.
func TestReview_EaseFactorChains(t *testing.T) {
	r1, _ := Review(nil, "card-a", 5, testNow)
	r2, _ := Review(&r1, "card-a", 5, testNow.AddDate(0, 0, 1))
	r3, err := Review(&r2, "card-a", 5, testNow.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("review: %v", err)
	}

	if r2.Repetitions != 2 || r2.Interval != 6 {
		t.Fatalf("second review: reps=%d interval=%v, want 2 and 6", r2.Repetitions, r2.Interval)
	}
	if r3.Repetitions != 3 {
		t.Errorf("Repetitions = %d, want 3", r3.Repetitions)
	}
	if !almostEqual(r3.EaseFactor, 2.8) {
		t.Errorf("EaseFactor = %v, want 2.8", r3.EaseFactor)
	}
	if !almostEqual(r3.Interval, 6*r3.EaseFactor) {
		t.Errorf("Interval = %v, want %v", r3.Interval, 6*r3.EaseFactor)
	}
}

func TestReview_FailedRecallResets(t *testing.T) {
	r1, _ := Review(nil, "card-a", 5, testNow)
	r2, _ := Review(&r1, "card-a", 5, testNow.AddDate(0, 0, 1))
	r3, _ := Review(&r2, "card-a", 2, testNow.AddDate(0, 0, 7))

	if r3.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0 after failed recall", r3.Repetitions)
	}
	if r3.Interval != 1 {
		t.Errorf("Interval = %v, want 1 (short retry)", r3.Interval)
	}
	// EF still evolves on failure: 2.7 + (0.1 - 3*(0.08+3*0.02)) = 2.7 - 0.32.
	if !almostEqual(r3.EaseFactor, 2.38) {
		t.Errorf("EaseFactor = %v, want 2.38", r3.EaseFactor)
	}
}

func TestReview_EaseFactorFloor(t *testing.T) {
	r := Record{CardID: "card-a", EaseFactor: 1.3, Interval: 1}
	for i := 0; i < 5; i++ {
		var err error
		r, err = Review(&r, "card-a", 1, testNow)
		if err != nil {
			t.Fatalf("review: %v", err)
		}
		if r.EaseFactor < MinEaseFactor {
			t.Fatalf("EaseFactor = %v dropped below floor %v", r.EaseFactor, MinEaseFactor)
		}
	}
	if !almostEqual(r.EaseFactor, MinEaseFactor) {
		t.Errorf("EaseFactor = %v, want pinned at %v", r.EaseFactor, MinEaseFactor)
	}
}

func TestReview_Deterministic(t *testing.T) {
	prior, _ := Review(nil, "card-a", 4, testNow)
	a, _ := Review(&prior, "card-a", 3, testNow.AddDate(0, 0, 2))
	b, _ := Review(&prior, "card-a", 3, testNow.AddDate(0, 0, 2))
	if a != b {
		t.Errorf("identical inputs produced different records:\n%+v\n%+v", a, b)
	}
}

func TestReview_QualityTable(t *testing.T) {
	tests := []struct {
		quality  string
		q        int
		wantEase float64
		wantReps int
		wantIvl  float64
	}{
		{"blackout", 1, 1.96, 0, 1},
		{"wrong", 2, 2.18, 0, 1},
		{"hard", 3, 2.36, 1, 1},
		{"good", 4, 2.5, 1, 1},
		{"perfect", 5, 2.6, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.quality, func(t *testing.T) {
			r, err := Review(nil, "card-a", tt.q, testNow)
			if err != nil {
				t.Fatalf("review: %v", err)
			}
			if !almostEqual(r.EaseFactor, tt.wantEase) {
				t.Errorf("EaseFactor = %v, want %v", r.EaseFactor, tt.wantEase)
			}
			if r.Repetitions != tt.wantReps {
				t.Errorf("Repetitions = %d, want %d", r.Repetitions, tt.wantReps)
			}
			if !almostEqual(r.Interval, tt.wantIvl) {
				t.Errorf("Interval = %v, want %v", r.Interval, tt.wantIvl)
			}
		})
	}
}

func TestRecord_DueAndDaysUntil(t *testing.T) {
	r, _ := Review(nil, "card-a", 4, testNow) // due in 1 day

	if r.IsDue(testNow) {
		t.Error("card due immediately after review")
	}
	if !r.IsDue(testNow.Add(24 * time.Hour)) {
		t.Error("card not due at its due time")
	}

	if got := r.DaysUntilReview(testNow); got != 1 {
		t.Errorf("DaysUntilReview = %d, want 1", got)
	}
	if got := r.DaysUntilReview(testNow.Add(12 * time.Hour)); got != 1 {
		t.Errorf("DaysUntilReview(+12h) = %d, want 1 (rounds up)", got)
	}
	if got := r.DaysUntilReview(testNow.Add(72 * time.Hour)); got != 0 {
		t.Errorf("DaysUntilReview(overdue) = %d, want 0", got)
	}
}
