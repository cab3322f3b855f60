package journey

import "time"

// Tunable constants for the journey mechanics. Tests depend on the exact
// values, so changing them invalidates recorded expectations.
const (
	// MaxHearts is the heart (lives) cap.
	MaxHearts = 3

	// TopicsToEarnHeart is the number of unique topics that must be studied
	// to earn one heart back.
	TopicsToEarnHeart = 5

	// HeartsRefillHours is the wait before depleted hearts refill on their own.
	HeartsRefillHours = 24
)

// SessionResult records the outcome of a completed lesson.
type SessionResult struct {
	Completed    bool
	XPEarned     int
	CorrectCount int
}

// Attempt is the last-attempt record for a single question.
type Attempt struct {
	Correct bool
}

// Answer is one answered question inside an active session.
type Answer struct {
	QuestionID string
	Correct    bool
	XP         int
}

// ActiveSession tracks an in-progress lesson. It exists only between
// StartLesson and CompleteLesson.
type ActiveSession struct {
	LessonID      string
	Day           int
	QuestionIndex int
	Answers       []Answer
}

// EarnHeartProgress tracks progress toward the study-topics-to-earn-a-heart
// mechanic. HeartsEarned counts hearts already awarded through this path so
// re-studying never double-awards.
type EarnHeartProgress struct {
	TopicsStudied []string
	HeartsEarned  int
}

// State is the full journey state. Values are immutable: every transition
// returns a fresh State and never writes through the receiver's maps or
// slices. Callers own exactly one logical State per learner and are
// responsible for applying transitions in order.
type State struct {
	Hearts             int
	HeartsDepletedAt   *time.Time
	TotalXP            int
	HighestDayUnlocked int
	CompletedSessions  map[string]SessionResult
	QuestionAttempts   map[string]Attempt
	ActiveSession      *ActiveSession
	EarnHeart          EarnHeartProgress
	CurrentStreak      int
	LastStreakDate     string // YYYY-MM-DD, "" until the first completion
}

// InitialState returns the state for a first-time learner.
func InitialState() State {
	return State{
		Hearts:             MaxHearts,
		HighestDayUnlocked: 1,
		CompletedSessions:  make(map[string]SessionResult),
		QuestionAttempts:   make(map[string]Attempt),
	}
}

// OutOfHearts reports whether lesson starts are currently blocked.
func (s State) OutOfHearts() bool {
	return s.Hearts == 0
}

// InSession reports whether a lesson is in progress.
func (s State) InSession() bool {
	return s.ActiveSession != nil
}

// HasStudiedTopic reports whether cardID already counts toward heart earning.
func (s State) HasStudiedTopic(cardID string) bool {
	for _, id := range s.EarnHeart.TopicsStudied {
		if id == cardID {
			return true
		}
	}
	return false
}

// HoursUntilRefill returns the whole hours remaining before RefillHearts
// would trigger, rounded up. Returns 0 when hearts are not depleted or the
// refill is already available.
func (s State) HoursUntilRefill(now time.Time) int {
	if s.HeartsDepletedAt == nil {
		return 0
	}
	refillAt := s.HeartsDepletedAt.Add(HeartsRefillHours * time.Hour)
	if !now.Before(refillAt) {
		return 0
	}
	h := int(refillAt.Sub(now).Hours())
	if refillAt.Sub(now) > time.Duration(h)*time.Hour {
		h++
	}
	return h
}

// clone returns a copy of the state with all maps, slices and pointer fields
// duplicated, so mutating the copy never aliases the original.
func (s State) clone() State {
	out := s

	out.CompletedSessions = make(map[string]SessionResult, len(s.CompletedSessions))
	for k, v := range s.CompletedSessions {
		out.CompletedSessions[k] = v
	}

	out.QuestionAttempts = make(map[string]Attempt, len(s.QuestionAttempts))
	for k, v := range s.QuestionAttempts {
		out.QuestionAttempts[k] = v
	}

	if s.HeartsDepletedAt != nil {
		t := *s.HeartsDepletedAt
		out.HeartsDepletedAt = &t
	}

	if s.ActiveSession != nil {
		sess := *s.ActiveSession
		sess.Answers = make([]Answer, len(s.ActiveSession.Answers))
		copy(sess.Answers, s.ActiveSession.Answers)
		out.ActiveSession = &sess
	}

	out.EarnHeart.TopicsStudied = make([]string, len(s.EarnHeart.TopicsStudied))
	copy(out.EarnHeart.TopicsStudied, s.EarnHeart.TopicsStudied)

	return out
}
