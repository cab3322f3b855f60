package store

import (
	"context"
	"fmt"

	"github.com/devika/pmquest/ent"
	"github.com/devika/pmquest/ent/lessonevent"
)

func (r *eventRepo) AppendLessonEvent(ctx context.Context, data LessonEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LessonEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetDay(data.Day).
		SetAction(data.Action).
		SetXpEarned(data.XPEarned).
		SetCorrectCount(data.CorrectCount).
		SetQuestionCount(data.QuestionCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLessonSummaries(ctx context.Context, opts QueryOpts) ([]LessonSummaryRecord, error) {
	query := r.client.LessonEvent.Query().
		Where(lessonevent.Action("complete")).
		Order(ent.Desc(lessonevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(lessonevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(lessonevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(lessonevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(lessonevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lesson summaries: %w", err)
	}

	records := make([]LessonSummaryRecord, len(events))
	for i, e := range events {
		records[i] = LessonSummaryRecord{
			SessionID:     e.SessionID,
			LessonID:      e.LessonID,
			Day:           e.Day,
			XPEarned:      e.XpEarned,
			CorrectCount:  e.CorrectCount,
			QuestionCount: e.QuestionCount,
			Timestamp:     e.Timestamp,
		}
	}
	return records, nil
}
