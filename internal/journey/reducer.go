package journey

import "time"

// The journey reducer. Every transition is a pure function
// (State, args..., now) -> State. Guard failures return the input state
// unchanged rather than an error, keeping the reducer total; callers detect
// the no-op structurally (e.g. ActiveSession still nil after StartLesson).
// Time never comes from the system clock here — it is always passed in.

// DateFormat is the calendar-day format used for streak bookkeeping.
const DateFormat = "2006-01-02"

// StartLesson opens an active session for lessonID on the given day.
// No-op when the learner is out of hearts or a session is already running.
func StartLesson(s State, lessonID string, day int) State {
	if s.Hearts == 0 || s.ActiveSession != nil {
		return s
	}
	out := s.clone()
	out.ActiveSession = &ActiveSession{
		LessonID: lessonID,
		Day:      day,
		Answers:  []Answer{},
	}
	return out
}

// AnswerQuestion records one answered question in the active session.
// A wrong answer costs a heart and earns nothing; a correct answer earns xp
// and leaves hearts alone. No-op without an active session.
func AnswerQuestion(s State, questionID string, correct bool, xp int, now time.Time) State {
	if s.ActiveSession == nil {
		return s
	}
	out := s.clone()

	if correct {
		out.TotalXP += xp
	} else if out.Hearts > 0 {
		out.Hearts--
		if out.Hearts == 0 {
			t := now
			out.HeartsDepletedAt = &t
		}
	}

	out.QuestionAttempts[questionID] = Attempt{Correct: correct}
	out.ActiveSession.Answers = append(out.ActiveSession.Answers, Answer{
		QuestionID: questionID,
		Correct:    correct,
		XP:         xp,
	})
	out.ActiveSession.QuestionIndex++
	return out
}

// CompleteLesson closes the active session: records the session result,
// unlocks the next day, and advances the daily streak. The recorded stats
// are derived solely from the session's own answers, so a re-completed
// lesson overwrites its prior result (last attempt wins). No-op without an
// active session.
func CompleteLesson(s State, now time.Time) State {
	if s.ActiveSession == nil {
		return s
	}
	out := s.clone()
	sess := out.ActiveSession

	correctCount := 0
	xpEarned := 0
	for _, a := range sess.Answers {
		if a.Correct {
			correctCount++
			xpEarned += a.XP
		}
	}

	out.CompletedSessions[sess.LessonID] = SessionResult{
		Completed:    true,
		XPEarned:     xpEarned,
		CorrectCount: correctCount,
	}

	if next := sess.Day + 1; next > out.HighestDayUnlocked {
		out.HighestDayUnlocked = next
	}

	today := now.Format(DateFormat)
	if out.LastStreakDate != today {
		yesterday := now.AddDate(0, 0, -1).Format(DateFormat)
		if out.LastStreakDate == yesterday {
			out.CurrentStreak++
		} else {
			out.CurrentStreak = 1
		}
		out.LastStreakDate = today
	}

	out.ActiveSession = nil
	return out
}

// StudyTopicForHeart counts cardID toward the earn-a-heart mechanic: one
// heart per TopicsToEarnHeart unique topics, never past MaxHearts.
// Idempotent per cardID.
func StudyTopicForHeart(s State, cardID string) State {
	if s.HasStudiedTopic(cardID) {
		return s
	}
	out := s.clone()
	out.EarnHeart.TopicsStudied = append(out.EarnHeart.TopicsStudied, cardID)

	totalEarnable := len(out.EarnHeart.TopicsStudied) / TopicsToEarnHeart
	heartsToAdd := totalEarnable - out.EarnHeart.HeartsEarned
	if heartsToAdd <= 0 {
		return out
	}

	out.Hearts += heartsToAdd
	if out.Hearts > MaxHearts {
		out.Hearts = MaxHearts
	}
	out.EarnHeart.HeartsEarned += heartsToAdd

	if out.Hearts > 0 {
		out.HeartsDepletedAt = nil
	}
	return out
}

// RefillHearts restores all hearts once HeartsRefillHours have passed since
// depletion. Invoked lazily on state reads; there is no background timer.
// No-op when hearts are not depleted or the wait is not over.
func RefillHearts(s State, now time.Time) State {
	if s.HeartsDepletedAt == nil {
		return s
	}
	if now.Sub(*s.HeartsDepletedAt) < HeartsRefillHours*time.Hour {
		return s
	}
	out := s.clone()
	out.Hearts = MaxHearts
	out.HeartsDepletedAt = nil
	return out
}
