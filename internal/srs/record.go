package srs

import "time"

// Record holds the spaced repetition schedule for a single card.
type Record struct {
	CardID         string    `json:"card_id"`
	Interval       float64   `json:"interval"` // days until next review
	EaseFactor     float64   `json:"ease_factor"`
	Repetitions    int       `json:"repetitions"` // consecutive successful reviews
	LastReviewedAt time.Time `json:"last_reviewed_at"`
	NextReviewDue  time.Time `json:"next_review_due"`
}

// IsDue returns true if the card is due for review (at or past the due time).
func (r *Record) IsDue(now time.Time) bool {
	return !now.Before(r.NextReviewDue)
}

// OverdueDays returns how many days past due the card is. Returns 0 if not yet due.
func (r *Record) OverdueDays(now time.Time) float64 {
	if now.Before(r.NextReviewDue) {
		return 0
	}
	return now.Sub(r.NextReviewDue).Hours() / 24.0
}

// DaysUntilReview returns the number of whole days until the next review,
// rounded up. Returns 0 if the card is due now or overdue.
func (r *Record) DaysUntilReview(now time.Time) int {
	if r.IsDue(now) {
		return 0
	}
	hours := r.NextReviewDue.Sub(now).Hours()
	days := int(hours / 24.0)
	if hours > float64(days)*24.0 {
		days++
	}
	return days
}
