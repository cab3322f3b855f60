package store

import (
	"context"
	"fmt"

	"github.com/devika/pmquest/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetQuestionID(data.QuestionID).
		SetCorrect(data.Correct).
		SetXpAwarded(data.XPAwarded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) LessonAccuracy(ctx context.Context, lessonID string) (float64, int, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.LessonID(lessonID)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query lesson accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), len(events), nil
}
