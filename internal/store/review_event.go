package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetCardID(data.CardID).
		SetQuality(data.Quality).
		SetIntervalDays(data.IntervalDays).
		SetEaseFactor(data.EaseFactor).
		SetRepetitions(data.Repetitions).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) ReviewCounts(ctx context.Context) (int, map[int]int, error) {
	events, err := r.client.ReviewEvent.Query().All(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("query review counts: %w", err)
	}

	byQuality := make(map[int]int)
	for _, e := range events {
		byQuality[e.Quality]++
	}
	return len(events), byQuality, nil
}
