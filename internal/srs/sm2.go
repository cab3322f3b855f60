package srs

import (
	"errors"
	"fmt"
	"time"
)

// SM-2 scheduling. Review is a pure function of (prior record, quality, now)
// and reproduces bit-for-bit given identical inputs.

const (
	// InitialEaseFactor is the ease factor assigned before the first review.
	InitialEaseFactor = 2.5

	// MinEaseFactor is the floor the ease factor can never drop below.
	MinEaseFactor = 1.3

	// MinQuality and MaxQuality bound the 1-5 recall rating scale.
	MinQuality = 1
	MaxQuality = 5
)

// ErrInvalidQuality is returned when a recall rating falls outside 1-5.
// Check with errors.Is. Invalid ratings fail fast rather than clamping:
// a bad rating is a caller bug, not a recoverable condition.
var ErrInvalidQuality = errors.New("srs: quality rating out of range")

// Review applies one SM-2 review to a card's record. prior is nil for a
// card's first review, in which case the record starts at repetitions=0 and
// the initial ease factor. quality is the 1-5 recall rating (q < 3 counts
// as failed recall).
func Review(prior *Record, cardID string, quality int, now time.Time) (Record, error) {
	if quality < MinQuality || quality > MaxQuality {
		return Record{}, fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidQuality, quality, MinQuality, MaxQuality)
	}

	r := Record{CardID: cardID, EaseFactor: InitialEaseFactor}
	if prior != nil {
		r = *prior
		r.CardID = cardID
	}

	// EF' = EF + (0.1 - (5-q)*(0.08 + (5-q)*0.02)), floored at 1.3.
	q := float64(quality)
	ease := r.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}
	r.EaseFactor = ease

	if quality < 3 {
		// Failed recall: short-interval retry, streak resets.
		r.Repetitions = 0
		r.Interval = 1
	} else {
		r.Repetitions++
		switch r.Repetitions {
		case 1:
			r.Interval = 1
		case 2:
			r.Interval = 6
		default:
			r.Interval = r.Interval * ease
		}
	}

	r.LastReviewedAt = now
	r.NextReviewDue = now.Add(time.Duration(r.Interval * 24 * float64(time.Hour)))
	return r, nil
}
