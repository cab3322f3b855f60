package journey

import (
	"testing"
	"time"
)

func TestSnapshotRoundTrip(t *testing.T) {
	depleted := time.Date(2025, 5, 30, 18, 0, 0, 0, time.UTC)

	s := InitialState()
	s.Hearts = 0
	s.HeartsDepletedAt = &depleted
	s.TotalXP = 120
	s.HighestDayUnlocked = 4
	s.CompletedSessions["day-1"] = SessionResult{Completed: true, XPEarned: 40, CorrectCount: 4}
	s.QuestionAttempts["q1"] = Attempt{Correct: true}
	s.QuestionAttempts["q2"] = Attempt{Correct: false}
	s.EarnHeart = EarnHeartProgress{TopicsStudied: []string{"c1", "c2"}, HeartsEarned: 0}
	s.CurrentStreak = 3
	s.LastStreakDate = "2025-05-30"
	s.ActiveSession = &ActiveSession{
		LessonID:      "day-4",
		Day:           4,
		QuestionIndex: 1,
		Answers:       []Answer{{QuestionID: "q9", Correct: true, XP: 10}},
	}

	got := FromSnapshot(SnapshotData(s))

	if got.Hearts != 0 || got.TotalXP != 120 || got.HighestDayUnlocked != 4 {
		t.Errorf("scalars did not round-trip: %+v", got)
	}
	if got.HeartsDepletedAt == nil || !got.HeartsDepletedAt.Equal(depleted) {
		t.Errorf("HeartsDepletedAt = %v, want %v", got.HeartsDepletedAt, depleted)
	}
	if got.CompletedSessions["day-1"] != s.CompletedSessions["day-1"] {
		t.Error("CompletedSessions did not round-trip")
	}
	if got.QuestionAttempts["q1"] != (Attempt{Correct: true}) || got.QuestionAttempts["q2"] != (Attempt{Correct: false}) {
		t.Error("QuestionAttempts did not round-trip")
	}
	if len(got.EarnHeart.TopicsStudied) != 2 || got.EarnHeart.TopicsStudied[0] != "c1" {
		t.Errorf("TopicsStudied = %v", got.EarnHeart.TopicsStudied)
	}
	if got.CurrentStreak != 3 || got.LastStreakDate != "2025-05-30" {
		t.Errorf("streak did not round-trip: %d %q", got.CurrentStreak, got.LastStreakDate)
	}
	if got.ActiveSession == nil {
		t.Fatal("ActiveSession did not round-trip")
	}
	if got.ActiveSession.LessonID != "day-4" || got.ActiveSession.QuestionIndex != 1 {
		t.Errorf("ActiveSession = %+v", got.ActiveSession)
	}
	if len(got.ActiveSession.Answers) != 1 || got.ActiveSession.Answers[0].QuestionID != "q9" {
		t.Errorf("Answers = %+v", got.ActiveSession.Answers)
	}
}

func TestSnapshotRoundTrip_NilsPreserved(t *testing.T) {
	got := FromSnapshot(SnapshotData(InitialState()))
	if got.HeartsDepletedAt != nil {
		t.Error("nil HeartsDepletedAt became non-nil")
	}
	if got.ActiveSession != nil {
		t.Error("nil ActiveSession became non-nil")
	}
}

func TestFromSnapshot_NilYieldsInitialState(t *testing.T) {
	got := FromSnapshot(nil)
	if got.Hearts != MaxHearts || got.HighestDayUnlocked != 1 {
		t.Errorf("FromSnapshot(nil) = %+v, want initial state", got)
	}
	if got.CompletedSessions == nil || got.QuestionAttempts == nil {
		t.Error("expected initialized maps")
	}
}
