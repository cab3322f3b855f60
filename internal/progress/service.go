// Package progress hosts the journey and review state machines: it owns the
// single logical state thread for the learner, applies transitions in order,
// and persists a snapshot plus append-only events after every change. The
// state machines themselves stay pure; all I/O lives here.
package progress

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/devika/pmquest/internal/journey"
	"github.com/devika/pmquest/internal/srs"
	"github.com/devika/pmquest/internal/store"
)

// MaxDueCardsPerSession caps how many due cards a single review session
// serves. Purely a display policy; the scheduler itself is uncapped.
const MaxDueCardsPerSession = 20

// snapshotsToKeep bounds snapshot growth; older ones are pruned on save.
const snapshotsToKeep = 10

// Service applies journey and review transitions and persists the results.
// Not safe for concurrent use: the host applies UI events one at a time.
type Service struct {
	state     journey.State
	sched     *srs.Scheduler
	snapRepo  store.SnapshotRepo
	eventRepo store.EventRepo
	sessionID string // set while a lesson session is active
	seq       int64

	// Clock supplies "now" for every transition. Swapped in tests.
	Clock func() time.Time
}

// NewService builds a service from the latest snapshot. A nil snapshot
// starts a fresh learner (initial journey state, no review records).
func NewService(snap *store.Snapshot, snapRepo store.SnapshotRepo, eventRepo store.EventRepo) *Service {
	s := &Service{
		snapRepo:  snapRepo,
		eventRepo: eventRepo,
		Clock:     time.Now,
	}
	if snap != nil {
		s.state = journey.FromSnapshot(snap.Data.Journey)
		s.sched = srs.NewScheduler(&snap.Data)
		s.seq = snap.Sequence
	} else {
		s.state = journey.InitialState()
		s.sched = srs.NewScheduler(nil)
	}
	return s
}

// State returns the current journey state.
func (s *Service) State() journey.State {
	return s.state
}

// Scheduler returns the spaced-repetition scheduler.
func (s *Service) Scheduler() *srs.Scheduler {
	return s.sched
}

// RefreshHearts lazily applies the 24-hour heart refill. Called on state
// reads (home screen entry); returns true if hearts were restored.
func (s *Service) RefreshHearts(ctx context.Context) bool {
	now := s.Clock()
	prev := s.state
	next := journey.RefillHearts(prev, now)
	if next.Hearts == prev.Hearts && (next.HeartsDepletedAt == nil) == (prev.HeartsDepletedAt == nil) {
		return false
	}
	s.state = next
	s.appendHeartEvent(ctx, next.Hearts-prev.Hearts, "refill")
	s.persist(ctx)
	return true
}

// StartLesson opens a lesson session. Returns false when blocked (out of
// hearts or a session already in progress).
func (s *Service) StartLesson(ctx context.Context, lessonID string, day int) bool {
	prev := s.state
	next := journey.StartLesson(prev, lessonID, day)
	if next.ActiveSession == nil || prev.ActiveSession != nil {
		return false
	}
	s.state = next
	s.sessionID = uuid.New().String()

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendLessonEvent(ctx, store.LessonEventData{
			SessionID: s.sessionID,
			LessonID:  lessonID,
			Day:       day,
			Action:    "start",
		})
	}
	s.persist(ctx)
	return true
}

// AnswerQuestion records one answered question in the active session.
// Returns false when no session is active.
func (s *Service) AnswerQuestion(ctx context.Context, questionID string, correct bool, xp int) bool {
	now := s.Clock()
	prev := s.state
	next := journey.AnswerQuestion(prev, questionID, correct, xp, now)
	if prev.ActiveSession == nil {
		return false
	}
	s.state = next

	if s.eventRepo != nil {
		awarded := 0
		if correct {
			awarded = xp
		}
		_ = s.eventRepo.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:  s.sessionID,
			LessonID:   prev.ActiveSession.LessonID,
			QuestionID: questionID,
			Correct:    correct,
			XPAwarded:  awarded,
		})
	}
	if next.Hearts != prev.Hearts {
		s.appendHeartEvent(ctx, next.Hearts-prev.Hearts, "wrong-answer")
	}
	s.persist(ctx)
	return true
}

// CompleteLesson closes the active session and returns its recorded result.
func (s *Service) CompleteLesson(ctx context.Context) (journey.SessionResult, bool) {
	now := s.Clock()
	prev := s.state
	if prev.ActiveSession == nil {
		return journey.SessionResult{}, false
	}
	sess := *prev.ActiveSession
	next := journey.CompleteLesson(prev, now)
	s.state = next

	result := next.CompletedSessions[sess.LessonID]
	if s.eventRepo != nil {
		_ = s.eventRepo.AppendLessonEvent(ctx, store.LessonEventData{
			SessionID:     s.sessionID,
			LessonID:      sess.LessonID,
			Day:           sess.Day,
			Action:        "complete",
			XPEarned:      result.XPEarned,
			CorrectCount:  result.CorrectCount,
			QuestionCount: len(sess.Answers),
		})
	}
	s.sessionID = ""
	s.persist(ctx)
	return result, true
}

// StudyTopic counts a card toward the earn-a-heart mechanic. Returns true
// if studying this card changed state (i.e. the card was new).
func (s *Service) StudyTopic(ctx context.Context, cardID string) bool {
	prev := s.state
	next := journey.StudyTopicForHeart(prev, cardID)
	if len(next.EarnHeart.TopicsStudied) == len(prev.EarnHeart.TopicsStudied) {
		return false
	}
	s.state = next
	if next.Hearts != prev.Hearts {
		s.appendHeartEvent(ctx, next.Hearts-prev.Hearts, "topics-studied")
	}
	s.persist(ctx)
	return true
}

// DueCards returns the cards due for review now, capped for one session.
// The read set is the caller's: cards the learner has actually opened.
func (s *Service) DueCards(readCardIDs []string) []string {
	due := s.sched.DueCards(readCardIDs, s.Clock())
	if len(due) > MaxDueCardsPerSession {
		due = due[:MaxDueCardsPerSession]
	}
	return due
}

// RecordReview applies a 1-5 recall rating to a card.
func (s *Service) RecordReview(ctx context.Context, cardID string, quality int) (srs.Record, error) {
	rec, err := s.sched.RecordReview(cardID, quality, s.Clock())
	if err != nil {
		return srs.Record{}, err
	}
	if s.eventRepo != nil {
		_ = s.eventRepo.AppendReviewEvent(ctx, store.ReviewEventData{
			CardID:       cardID,
			Quality:      quality,
			IntervalDays: rec.Interval,
			EaseFactor:   rec.EaseFactor,
			Repetitions:  rec.Repetitions,
		})
	}
	s.persist(ctx)
	return rec, nil
}

func (s *Service) appendHeartEvent(ctx context.Context, delta int, reason string) {
	if s.eventRepo == nil || delta == 0 {
		return
	}
	data := store.HeartEventData{
		Delta:   delta,
		Reason:  reason,
		Balance: s.state.Hearts,
	}
	if s.sessionID != "" {
		sid := s.sessionID
		data.SessionID = &sid
	}
	_ = s.eventRepo.AppendHeartEvent(ctx, data)
}

// persist writes the full state as a fresh snapshot. Persistence failures
// are not fatal to the in-memory session; the next save retries.
func (s *Service) persist(ctx context.Context) {
	if s.snapRepo == nil {
		return
	}
	s.seq++
	_ = s.snapRepo.Save(ctx, &store.Snapshot{
		Sequence:  s.seq,
		Timestamp: s.Clock().UTC(),
		Data: store.SnapshotData{
			Version: 1,
			Journey: journey.SnapshotData(s.state),
			SRS:     s.sched.SnapshotData(),
		},
	})
	_ = s.snapRepo.Prune(ctx, snapshotsToKeep)
}
