package journey

import (
	"fmt"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func TestInitialState(t *testing.T) {
	s := InitialState()
	if s.Hearts != MaxHearts {
		t.Errorf("Hearts = %d, want %d", s.Hearts, MaxHearts)
	}
	if s.TotalXP != 0 {
		t.Errorf("TotalXP = %d, want 0", s.TotalXP)
	}
	if s.HighestDayUnlocked != 1 {
		t.Errorf("HighestDayUnlocked = %d, want 1", s.HighestDayUnlocked)
	}
	if s.HeartsDepletedAt != nil {
		t.Error("expected nil HeartsDepletedAt")
	}
	if s.ActiveSession != nil {
		t.Error("expected nil ActiveSession")
	}
}

func TestStartLesson_OpensSession(t *testing.T) {
	s := StartLesson(InitialState(), "pm-basics-1", 1)
	if s.ActiveSession == nil {
		t.Fatal("expected active session")
	}
	if s.ActiveSession.LessonID != "pm-basics-1" {
		t.Errorf("LessonID = %q, want %q", s.ActiveSession.LessonID, "pm-basics-1")
	}
	if s.ActiveSession.Day != 1 {
		t.Errorf("Day = %d, want 1", s.ActiveSession.Day)
	}
	if s.ActiveSession.QuestionIndex != 0 {
		t.Errorf("QuestionIndex = %d, want 0", s.ActiveSession.QuestionIndex)
	}
}

func TestStartLesson_BlockedWithoutHearts(t *testing.T) {
	s := InitialState()
	s.Hearts = 0

	next := StartLesson(s, "pm-basics-1", 1)
	if next.ActiveSession != nil {
		t.Error("expected no-op when out of hearts")
	}
}

func TestStartLesson_BlockedWhileInSession(t *testing.T) {
	s := StartLesson(InitialState(), "pm-basics-1", 1)
	next := StartLesson(s, "pm-basics-2", 2)
	if next.ActiveSession.LessonID != "pm-basics-1" {
		t.Errorf("LessonID = %q, want original session kept", next.ActiveSession.LessonID)
	}
}

func TestAnswerQuestion_NoSessionIsNoop(t *testing.T) {
	s := InitialState()
	next := AnswerQuestion(s, "q1", true, 10, testNow)
	if next.TotalXP != 0 || next.Hearts != MaxHearts || len(next.QuestionAttempts) != 0 {
		t.Error("expected unchanged state without active session")
	}
}

func TestAnswerQuestion_CorrectAwardsXP(t *testing.T) {
	s := StartLesson(InitialState(), "l1", 1)
	s = AnswerQuestion(s, "q1", true, 10, testNow)

	if s.TotalXP != 10 {
		t.Errorf("TotalXP = %d, want 10", s.TotalXP)
	}
	if s.Hearts != MaxHearts {
		t.Errorf("Hearts = %d, want %d", s.Hearts, MaxHearts)
	}
	if got := s.QuestionAttempts["q1"]; !got.Correct {
		t.Error("expected correct attempt recorded")
	}
	if s.ActiveSession.QuestionIndex != 1 {
		t.Errorf("QuestionIndex = %d, want 1", s.ActiveSession.QuestionIndex)
	}
}

func TestAnswerQuestion_WrongCostsHeartNoXP(t *testing.T) {
	s := StartLesson(InitialState(), "l1", 1)
	s = AnswerQuestion(s, "q1", false, 10, testNow)

	if s.TotalXP != 0 {
		t.Errorf("TotalXP = %d, want 0 (no partial credit)", s.TotalXP)
	}
	if s.Hearts != MaxHearts-1 {
		t.Errorf("Hearts = %d, want %d", s.Hearts, MaxHearts-1)
	}
	if s.HeartsDepletedAt != nil {
		t.Error("HeartsDepletedAt should stay nil while hearts remain")
	}
}

func TestAnswerQuestion_LastHeartSetsDepletedAt(t *testing.T) {
	s := StartLesson(InitialState(), "l1", 1)
	s.Hearts = 1

	s = AnswerQuestion(s, "q1", false, 5, testNow)
	if s.Hearts != 0 {
		t.Fatalf("Hearts = %d, want 0", s.Hearts)
	}
	if s.HeartsDepletedAt == nil {
		t.Fatal("expected HeartsDepletedAt set on the >0 to 0 transition")
	}
	if !s.HeartsDepletedAt.Equal(testNow) {
		t.Errorf("HeartsDepletedAt = %v, want %v", s.HeartsDepletedAt, testNow)
	}
}

func TestAnswerQuestion_OverwritesPriorAttempt(t *testing.T) {
	s := StartLesson(InitialState(), "l1", 1)
	s = AnswerQuestion(s, "q1", false, 10, testNow)
	s = AnswerQuestion(s, "q1", true, 10, testNow)

	if got := s.QuestionAttempts["q1"]; !got.Correct {
		t.Error("expected last attempt to win")
	}
}

func TestCompleteLesson_FullScenario(t *testing.T) {
	// Start day 1, answer 2 correct and 1 wrong, then complete.
	s := StartLesson(InitialState(), "day-1", 1)
	s = AnswerQuestion(s, "q1", true, 10, testNow)
	s = AnswerQuestion(s, "q2", false, 10, testNow)
	s = AnswerQuestion(s, "q3", true, 15, testNow)
	s = CompleteLesson(s, testNow)

	if s.TotalXP != 25 {
		t.Errorf("TotalXP = %d, want 25", s.TotalXP)
	}
	res, ok := s.CompletedSessions["day-1"]
	if !ok {
		t.Fatal("expected completed session record")
	}
	want := SessionResult{Completed: true, XPEarned: 25, CorrectCount: 2}
	if res != want {
		t.Errorf("result = %+v, want %+v", res, want)
	}
	if s.HighestDayUnlocked != 2 {
		t.Errorf("HighestDayUnlocked = %d, want 2", s.HighestDayUnlocked)
	}
	if s.Hearts != MaxHearts-1 {
		t.Errorf("Hearts = %d, want %d", s.Hearts, MaxHearts-1)
	}
	if s.ActiveSession != nil {
		t.Error("expected session cleared")
	}
}

func TestCompleteLesson_NoSessionIsNoop(t *testing.T) {
	s := InitialState()
	next := CompleteLesson(s, testNow)
	if len(next.CompletedSessions) != 0 || next.HighestDayUnlocked != 1 {
		t.Error("expected unchanged state without active session")
	}
}

func TestCompleteLesson_ReplayLowerDayKeepsUnlock(t *testing.T) {
	s := StartLesson(InitialState(), "day-1", 1)
	s = CompleteLesson(s, testNow)
	s.HighestDayUnlocked = 5

	s = StartLesson(s, "day-1", 1)
	s = CompleteLesson(s, testNow)
	if s.HighestDayUnlocked != 5 {
		t.Errorf("HighestDayUnlocked = %d, want 5 (never regresses)", s.HighestDayUnlocked)
	}
}

func TestCompleteLesson_RecompletionOverwrites(t *testing.T) {
	s := StartLesson(InitialState(), "day-1", 1)
	s = AnswerQuestion(s, "q1", true, 10, testNow)
	s = CompleteLesson(s, testNow)

	s = StartLesson(s, "day-1", 1)
	s = AnswerQuestion(s, "q1", false, 10, testNow)
	s = CompleteLesson(s, testNow)

	res := s.CompletedSessions["day-1"]
	if res.XPEarned != 0 || res.CorrectCount != 0 {
		t.Errorf("result = %+v, want last attempt (0 xp, 0 correct)", res)
	}
}

func TestStreak(t *testing.T) {
	day1 := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day4 := day1.AddDate(0, 0, 3)

	complete := func(s State, lessonID string, day int, now time.Time) State {
		s = StartLesson(s, lessonID, day)
		return CompleteLesson(s, now)
	}

	s := complete(InitialState(), "l1", 1, day1)
	if s.CurrentStreak != 1 {
		t.Fatalf("streak after first completion = %d, want 1", s.CurrentStreak)
	}

	// Second completion same day does not double-count.
	s = complete(s, "l2", 2, day1)
	if s.CurrentStreak != 1 {
		t.Errorf("streak after same-day repeat = %d, want 1", s.CurrentStreak)
	}

	// Next calendar day extends.
	s = complete(s, "l3", 3, day2)
	if s.CurrentStreak != 2 {
		t.Errorf("streak after consecutive day = %d, want 2", s.CurrentStreak)
	}

	// A skipped day resets to 1.
	s = complete(s, "l4", 4, day4)
	if s.CurrentStreak != 1 {
		t.Errorf("streak after gap = %d, want 1", s.CurrentStreak)
	}
	if s.LastStreakDate != day4.Format(DateFormat) {
		t.Errorf("LastStreakDate = %q, want %q", s.LastStreakDate, day4.Format(DateFormat))
	}
}

func TestStudyTopicForHeart_FiveTopicsEarnOne(t *testing.T) {
	s := InitialState()
	s.Hearts = 0
	depleted := testNow
	s.HeartsDepletedAt = &depleted

	for i := 0; i < TopicsToEarnHeart; i++ {
		s = StudyTopicForHeart(s, fmt.Sprintf("card-%d", i))
	}

	if s.Hearts != 1 {
		t.Errorf("Hearts = %d, want 1 after studying %d topics", s.Hearts, TopicsToEarnHeart)
	}
	if s.HeartsDepletedAt != nil {
		t.Error("expected HeartsDepletedAt cleared once hearts > 0")
	}
	if s.EarnHeart.HeartsEarned != 1 {
		t.Errorf("HeartsEarned = %d, want 1", s.EarnHeart.HeartsEarned)
	}
}

func TestStudyTopicForHeart_TenTopicsEarnTwo(t *testing.T) {
	s := InitialState()
	s.Hearts = 0

	for i := 0; i < 2*TopicsToEarnHeart; i++ {
		s = StudyTopicForHeart(s, fmt.Sprintf("card-%d", i))
	}
	if s.Hearts != 2 {
		t.Errorf("Hearts = %d, want 2", s.Hearts)
	}
	if s.EarnHeart.HeartsEarned != 2 {
		t.Errorf("HeartsEarned = %d, want 2", s.EarnHeart.HeartsEarned)
	}
}

func TestStudyTopicForHeart_Idempotent(t *testing.T) {
	s := InitialState()
	s.Hearts = 0

	once := StudyTopicForHeart(s, "card-a")
	twice := StudyTopicForHeart(once, "card-a")

	if len(twice.EarnHeart.TopicsStudied) != 1 {
		t.Errorf("TopicsStudied = %d entries, want 1", len(twice.EarnHeart.TopicsStudied))
	}
	if twice.Hearts != once.Hearts || twice.EarnHeart.HeartsEarned != once.EarnHeart.HeartsEarned {
		t.Error("re-studying the same card changed state")
	}
}

func TestStudyTopicForHeart_NeverExceedsCap(t *testing.T) {
	s := InitialState() // already at MaxHearts
	for i := 0; i < 3*TopicsToEarnHeart; i++ {
		s = StudyTopicForHeart(s, fmt.Sprintf("card-%d", i))
	}
	if s.Hearts != MaxHearts {
		t.Errorf("Hearts = %d, want cap %d", s.Hearts, MaxHearts)
	}
}

func TestRefillHearts_Boundary(t *testing.T) {
	depleted := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s := InitialState()
	s.Hearts = 0
	s.HeartsDepletedAt = &depleted

	// One minute short: no-op.
	early := RefillHearts(s, depleted.Add(HeartsRefillHours*time.Hour-time.Minute))
	if early.Hearts != 0 || early.HeartsDepletedAt == nil {
		t.Error("expected no-op before the refill wait elapses")
	}

	// Exactly at the boundary: refill.
	onTime := RefillHearts(s, depleted.Add(HeartsRefillHours*time.Hour))
	if onTime.Hearts != MaxHearts {
		t.Errorf("Hearts = %d, want %d", onTime.Hearts, MaxHearts)
	}
	if onTime.HeartsDepletedAt != nil {
		t.Error("expected HeartsDepletedAt cleared")
	}
}

func TestRefillHearts_NoopWithoutDepletion(t *testing.T) {
	s := InitialState()
	s.Hearts = 2 // lost one heart but never hit zero

	next := RefillHearts(s, testNow)
	if next.Hearts != 2 {
		t.Errorf("Hearts = %d, want 2 (refill only applies after depletion)", next.Hearts)
	}
}

func TestHoursUntilRefill(t *testing.T) {
	depleted := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s := InitialState()
	s.Hearts = 0
	s.HeartsDepletedAt = &depleted

	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 24},
		{30 * time.Minute, 24},
		{1 * time.Hour, 23},
		{23*time.Hour + 59*time.Minute, 1},
		{24 * time.Hour, 0},
		{30 * time.Hour, 0},
	}
	for _, tt := range tests {
		if got := s.HoursUntilRefill(depleted.Add(tt.elapsed)); got != tt.want {
			t.Errorf("HoursUntilRefill(+%v) = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
}

// Invariant checks over a long mixed operation sequence.
func TestInvariants_MixedSequence(t *testing.T) {
	s := InitialState()
	prevXP := 0
	prevUnlocked := 1

	check := func(step string) {
		t.Helper()
		if s.Hearts < 0 || s.Hearts > MaxHearts {
			t.Fatalf("%s: Hearts = %d out of [0,%d]", step, s.Hearts, MaxHearts)
		}
		if s.TotalXP < prevXP {
			t.Fatalf("%s: TotalXP regressed %d -> %d", step, prevXP, s.TotalXP)
		}
		if s.HighestDayUnlocked < prevUnlocked {
			t.Fatalf("%s: HighestDayUnlocked regressed %d -> %d", step, prevUnlocked, s.HighestDayUnlocked)
		}
		prevXP = s.TotalXP
		prevUnlocked = s.HighestDayUnlocked
	}

	for day := 1; day <= 6; day++ {
		s = StartLesson(s, fmt.Sprintf("day-%d", day), day)
		check("start")
		for q := 0; q < 4; q++ {
			correct := (day+q)%3 != 0
			s = AnswerQuestion(s, fmt.Sprintf("d%d-q%d", day, q), correct, 10, testNow)
			check("answer")
		}
		s = CompleteLesson(s, testNow.AddDate(0, 0, day))
		check("complete")
		s = StudyTopicForHeart(s, fmt.Sprintf("topic-%d", day))
		check("study")
		s = RefillHearts(s, testNow.AddDate(0, 0, day))
		check("refill")
	}
}

// The reducer must never mutate its input.
func TestPurity_InputStateUntouched(t *testing.T) {
	s := StartLesson(InitialState(), "l1", 1)
	s = AnswerQuestion(s, "q1", true, 10, testNow)

	snapXP := s.TotalXP
	snapIdx := s.ActiveSession.QuestionIndex
	snapAttempts := len(s.QuestionAttempts)

	_ = AnswerQuestion(s, "q2", false, 10, testNow)
	_ = CompleteLesson(s, testNow)
	_ = StudyTopicForHeart(s, "card-a")

	if s.TotalXP != snapXP || s.ActiveSession.QuestionIndex != snapIdx || len(s.QuestionAttempts) != snapAttempts {
		t.Error("applying transitions mutated the input state")
	}
}
