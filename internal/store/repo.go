package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full learner state at a point in time.
// Optional sections stay nil when a subsystem has no state yet, and the
// nil/non-nil distinction round-trips through JSON.
type SnapshotData struct {
	Version int                  `json:"version"`
	Journey *JourneySnapshotData `json:"journey,omitempty"`
	SRS     *SRSSnapshotData     `json:"srs,omitempty"`
}

// JourneySnapshotData is the serialized journey state.
type JourneySnapshotData struct {
	Hearts             int                           `json:"hearts"`
	HeartsDepletedAt   *string                       `json:"hearts_depleted_at,omitempty"` // RFC3339
	TotalXP            int                           `json:"total_xp"`
	HighestDayUnlocked int                           `json:"highest_day_unlocked"`
	CompletedSessions  map[string]*SessionResultData `json:"completed_sessions"`
	QuestionAttempts   map[string]*AttemptData       `json:"question_attempts"`
	ActiveSession      *ActiveSessionData            `json:"active_session,omitempty"`
	TopicsStudied      []string                      `json:"topics_studied"`
	HeartsEarned       int                           `json:"hearts_earned"`
	CurrentStreak      int                           `json:"current_streak"`
	LastStreakDate     string                        `json:"last_streak_date"` // YYYY-MM-DD
}

// SessionResultData is the serialized outcome of a completed lesson.
type SessionResultData struct {
	Completed    bool `json:"completed"`
	XPEarned     int  `json:"xp_earned"`
	CorrectCount int  `json:"correct_count"`
}

// AttemptData is the serialized last-attempt record for a question.
type AttemptData struct {
	Correct bool `json:"correct"`
}

// ActiveSessionData is the serialized in-progress lesson session.
type ActiveSessionData struct {
	LessonID      string       `json:"lesson_id"`
	Day           int          `json:"day"`
	QuestionIndex int          `json:"question_index"`
	Answers       []AnswerData `json:"answers"`
}

// AnswerData is one serialized answer within an active session.
type AnswerData struct {
	QuestionID string `json:"question_id"`
	Correct    bool   `json:"correct"`
	XP         int    `json:"xp"`
}

// SRSSnapshotData is the serialized spaced-repetition state.
type SRSSnapshotData struct {
	Reviews map[string]*ReviewRecordData `json:"reviews"`
}

// ReviewRecordData is the serialized review schedule for a single card.
type ReviewRecordData struct {
	CardID         string  `json:"card_id"`
	IntervalDays   float64 `json:"interval_days"`
	EaseFactor     float64 `json:"ease_factor"`
	Repetitions    int     `json:"repetitions"`
	LastReviewedAt string  `json:"last_reviewed_at"` // RFC3339
	NextReviewDue  string  `json:"next_review_due"`  // RFC3339
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AnswerEventData captures one answered quiz question.
type AnswerEventData struct {
	SessionID  string
	LessonID   string
	QuestionID string
	Correct    bool
	XPAwarded  int
}

// LessonEventData captures a lesson session lifecycle event.
type LessonEventData struct {
	SessionID     string
	LessonID      string
	Day           int
	Action        string // "start" or "complete"
	XPEarned      int
	CorrectCount  int
	QuestionCount int
}

// HeartEventData captures a change to the heart balance.
type HeartEventData struct {
	SessionID *string // nil outside lesson sessions
	Delta     int
	Reason    string // "wrong-answer", "topics-studied", "refill"
	Balance   int
}

// ReviewEventData captures one spaced-repetition review.
type ReviewEventData struct {
	CardID       string
	Quality      int
	IntervalDays float64
	EaseFactor   float64
	Repetitions  int
}

// LessonSummaryRecord is a completed lesson read back from the event log.
type LessonSummaryRecord struct {
	SessionID     string
	LessonID      string
	Day           int
	XPEarned      int
	CorrectCount  int
	QuestionCount int
	Timestamp     time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswerEvent records an answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendLessonEvent records a lesson start or completion.
	AppendLessonEvent(ctx context.Context, data LessonEventData) error

	// AppendHeartEvent records a heart balance change.
	AppendHeartEvent(ctx context.Context, data HeartEventData) error

	// AppendReviewEvent records a spaced-repetition review.
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error

	// QueryLessonSummaries returns completed lessons, newest first.
	QueryLessonSummaries(ctx context.Context, opts QueryOpts) ([]LessonSummaryRecord, error)

	// LessonAccuracy returns the all-time answer accuracy for a lesson
	// and the number of recorded answers.
	LessonAccuracy(ctx context.Context, lessonID string) (float64, int, error)

	// ReviewCounts returns the total number of reviews and a count per
	// quality rating.
	ReviewCounts(ctx context.Context) (int, map[int]int, error)
}
