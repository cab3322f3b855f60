package journey

import (
	"time"

	"github.com/devika/pmquest/internal/store"
)

// Snapshot conversion. Every field in State round-trips losslessly,
// including the nil/non-nil distinction on HeartsDepletedAt and
// ActiveSession. Timestamps are stored as RFC3339 strings.

// SnapshotData exports the state for persistence.
func SnapshotData(s State) *store.JourneySnapshotData {
	data := &store.JourneySnapshotData{
		Hearts:             s.Hearts,
		TotalXP:            s.TotalXP,
		HighestDayUnlocked: s.HighestDayUnlocked,
		CompletedSessions:  make(map[string]*store.SessionResultData, len(s.CompletedSessions)),
		QuestionAttempts:   make(map[string]*store.AttemptData, len(s.QuestionAttempts)),
		TopicsStudied:      append([]string(nil), s.EarnHeart.TopicsStudied...),
		HeartsEarned:       s.EarnHeart.HeartsEarned,
		CurrentStreak:      s.CurrentStreak,
		LastStreakDate:     s.LastStreakDate,
	}

	if s.HeartsDepletedAt != nil {
		ts := s.HeartsDepletedAt.Format(time.RFC3339)
		data.HeartsDepletedAt = &ts
	}

	for id, r := range s.CompletedSessions {
		data.CompletedSessions[id] = &store.SessionResultData{
			Completed:    r.Completed,
			XPEarned:     r.XPEarned,
			CorrectCount: r.CorrectCount,
		}
	}
	for id, a := range s.QuestionAttempts {
		data.QuestionAttempts[id] = &store.AttemptData{Correct: a.Correct}
	}

	if s.ActiveSession != nil {
		sess := &store.ActiveSessionData{
			LessonID:      s.ActiveSession.LessonID,
			Day:           s.ActiveSession.Day,
			QuestionIndex: s.ActiveSession.QuestionIndex,
		}
		for _, a := range s.ActiveSession.Answers {
			sess.Answers = append(sess.Answers, store.AnswerData{
				QuestionID: a.QuestionID,
				Correct:    a.Correct,
				XP:         a.XP,
			})
		}
		data.ActiveSession = sess
	}

	return data
}

// FromSnapshot rebuilds the state from persisted data. A nil snapshot yields
// InitialState — the missing-data default lives here, in the host path, not
// inside the reducer.
func FromSnapshot(data *store.JourneySnapshotData) State {
	if data == nil {
		return InitialState()
	}

	s := State{
		Hearts:             data.Hearts,
		TotalXP:            data.TotalXP,
		HighestDayUnlocked: data.HighestDayUnlocked,
		CompletedSessions:  make(map[string]SessionResult, len(data.CompletedSessions)),
		QuestionAttempts:   make(map[string]Attempt, len(data.QuestionAttempts)),
		EarnHeart: EarnHeartProgress{
			TopicsStudied: append([]string(nil), data.TopicsStudied...),
			HeartsEarned:  data.HeartsEarned,
		},
		CurrentStreak:  data.CurrentStreak,
		LastStreakDate: data.LastStreakDate,
	}
	if s.HighestDayUnlocked < 1 {
		s.HighestDayUnlocked = 1
	}

	if data.HeartsDepletedAt != nil {
		t, err := time.Parse(time.RFC3339, *data.HeartsDepletedAt)
		if err == nil {
			s.HeartsDepletedAt = &t
		}
	}

	for id, r := range data.CompletedSessions {
		if r == nil {
			continue
		}
		s.CompletedSessions[id] = SessionResult{
			Completed:    r.Completed,
			XPEarned:     r.XPEarned,
			CorrectCount: r.CorrectCount,
		}
	}
	for id, a := range data.QuestionAttempts {
		if a == nil {
			continue
		}
		s.QuestionAttempts[id] = Attempt{Correct: a.Correct}
	}

	if data.ActiveSession != nil {
		sess := &ActiveSession{
			LessonID:      data.ActiveSession.LessonID,
			Day:           data.ActiveSession.Day,
			QuestionIndex: data.ActiveSession.QuestionIndex,
			Answers:       []Answer{},
		}
		for _, a := range data.ActiveSession.Answers {
			sess.Answers = append(sess.Answers, Answer{
				QuestionID: a.QuestionID,
				Correct:    a.Correct,
				XP:         a.XP,
			})
		}
		s.ActiveSession = sess
	}

	return s
}
