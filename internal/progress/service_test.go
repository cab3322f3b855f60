package progress

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/devika/pmquest/internal/journey"
	"github.com/devika/pmquest/internal/store"
)

var testNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

type fakeSnapshotRepo struct {
	saved []*store.Snapshot
}

func (r *fakeSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	r.saved = append(r.saved, snap)
	return nil
}

func (r *fakeSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(r.saved) == 0 {
		return nil, nil
	}
	return r.saved[len(r.saved)-1], nil
}

func (r *fakeSnapshotRepo) Prune(_ context.Context, keep int) error { return nil }

type fakeEventRepo struct {
	answers []store.AnswerEventData
	lessons []store.LessonEventData
	hearts  []store.HeartEventData
	reviews []store.ReviewEventData
}

func (r *fakeEventRepo) AppendAnswerEvent(_ context.Context, d store.AnswerEventData) error {
	r.answers = append(r.answers, d)
	return nil
}

func (r *fakeEventRepo) AppendLessonEvent(_ context.Context, d store.LessonEventData) error {
	r.lessons = append(r.lessons, d)
	return nil
}

func (r *fakeEventRepo) AppendHeartEvent(_ context.Context, d store.HeartEventData) error {
	r.hearts = append(r.hearts, d)
	return nil
}

func (r *fakeEventRepo) AppendReviewEvent(_ context.Context, d store.ReviewEventData) error {
	r.reviews = append(r.reviews, d)
	return nil
}

func (r *fakeEventRepo) QueryLessonSummaries(_ context.Context, _ store.QueryOpts) ([]store.LessonSummaryRecord, error) {
	return nil, nil
}

func (r *fakeEventRepo) LessonAccuracy(_ context.Context, _ string) (float64, int, error) {
	return 0, 0, nil
}

func (r *fakeEventRepo) ReviewCounts(_ context.Context) (int, map[int]int, error) {
	return 0, nil, nil
}

func newTestService() (*Service, *fakeSnapshotRepo, *fakeEventRepo) {
	snaps := &fakeSnapshotRepo{}
	events := &fakeEventRepo{}
	svc := NewService(nil, snaps, events)
	svc.Clock = func() time.Time { return testNow }
	return svc, snaps, events
}

func TestServiceLessonFlow(t *testing.T) {
	svc, snaps, events := newTestService()
	ctx := context.Background()

	if !svc.StartLesson(ctx, "day-1", 1) {
		t.Fatal("StartLesson returned false on a fresh state")
	}
	if svc.StartLesson(ctx, "day-2", 2) {
		t.Error("StartLesson should refuse while a session is active")
	}

	svc.AnswerQuestion(ctx, "d1-q1", true, 10)
	svc.AnswerQuestion(ctx, "d1-q2", false, 10)
	svc.AnswerQuestion(ctx, "d1-q3", true, 15)

	result, ok := svc.CompleteLesson(ctx)
	if !ok {
		t.Fatal("CompleteLesson returned false with an active session")
	}
	if result.XPEarned != 25 || result.CorrectCount != 2 {
		t.Errorf("result = %+v, want XP 25 correct 2", result)
	}

	st := svc.State()
	if st.Hearts != journey.MaxHearts-1 {
		t.Errorf("hearts = %d, want %d", st.Hearts, journey.MaxHearts-1)
	}
	if st.HighestDayUnlocked != 2 {
		t.Errorf("highest day = %d, want 2", st.HighestDayUnlocked)
	}
	if st.ActiveSession != nil {
		t.Error("session should be cleared after completion")
	}

	// start + complete lesson events, one heart event for the wrong answer
	if len(events.lessons) != 2 {
		t.Fatalf("lesson events = %d, want 2", len(events.lessons))
	}
	if events.lessons[0].Action != "start" || events.lessons[1].Action != "complete" {
		t.Errorf("lesson actions = %q, %q", events.lessons[0].Action, events.lessons[1].Action)
	}
	if events.lessons[0].SessionID != events.lessons[1].SessionID {
		t.Error("start and complete should share a session ID")
	}
	if events.lessons[1].QuestionCount != 3 || events.lessons[1].CorrectCount != 2 {
		t.Errorf("complete event = %+v", events.lessons[1])
	}
	if len(events.answers) != 3 {
		t.Errorf("answer events = %d, want 3", len(events.answers))
	}
	if events.answers[1].XPAwarded != 0 {
		t.Error("wrong answer should award no XP")
	}
	if len(events.hearts) != 1 || events.hearts[0].Delta != -1 || events.hearts[0].Reason != "wrong-answer" {
		t.Errorf("heart events = %+v", events.hearts)
	}
	if events.hearts[0].SessionID == nil {
		t.Error("in-session heart event should carry the session ID")
	}

	if len(snaps.saved) == 0 {
		t.Fatal("no snapshots persisted")
	}
	last := snaps.saved[len(snaps.saved)-1]
	if last.Data.Journey.TotalXP != 25 {
		t.Errorf("persisted XP = %d, want 25", last.Data.Journey.TotalXP)
	}
}

func TestServiceAnswerWithoutSession(t *testing.T) {
	svc, _, events := newTestService()
	if svc.AnswerQuestion(context.Background(), "d1-q1", true, 10) {
		t.Error("AnswerQuestion should refuse without an active session")
	}
	if len(events.answers) != 0 {
		t.Error("no answer event should be appended")
	}
}

func TestServiceStudyTopicEarnsHeart(t *testing.T) {
	svc, _, events := newTestService()
	ctx := context.Background()

	// burn one heart so the earned heart is observable
	svc.StartLesson(ctx, "day-1", 1)
	svc.AnswerQuestion(ctx, "d1-q1", false, 10)
	svc.CompleteLesson(ctx)

	cards := []string{"c1", "c2", "c3", "c4", "c5"}
	for i, id := range cards {
		changed := svc.StudyTopic(ctx, id)
		if !changed {
			t.Fatalf("StudyTopic(%q) reported no change", id)
		}
		if i < len(cards)-1 && svc.State().Hearts != journey.MaxHearts-1 {
			t.Fatalf("heart earned after only %d topics", i+1)
		}
	}
	if svc.State().Hearts != journey.MaxHearts {
		t.Errorf("hearts = %d, want %d", svc.State().Hearts, journey.MaxHearts)
	}
	if svc.StudyTopic(ctx, "c1") {
		t.Error("re-studying a counted card should be a no-op")
	}

	var earned []store.HeartEventData
	for _, h := range events.hearts {
		if h.Reason == "topics-studied" {
			earned = append(earned, h)
		}
	}
	if len(earned) != 1 || earned[0].Delta != 1 {
		t.Errorf("topics-studied heart events = %+v", earned)
	}
}

func TestServiceRefreshHearts(t *testing.T) {
	svc, _, events := newTestService()
	ctx := context.Background()

	// drain all hearts
	svc.StartLesson(ctx, "day-1", 1)
	for i := 0; i < journey.MaxHearts; i++ {
		svc.AnswerQuestion(ctx, "d1-q1", false, 10)
	}
	svc.CompleteLesson(ctx)
	if !svc.State().OutOfHearts() {
		t.Fatal("expected zero hearts")
	}

	if svc.RefreshHearts(ctx) {
		t.Error("refill should not fire before 24 hours")
	}

	svc.Clock = func() time.Time { return testNow.Add(journey.HeartsRefillHours * time.Hour) }
	if !svc.RefreshHearts(ctx) {
		t.Fatal("refill should fire at 24 hours")
	}
	if svc.State().Hearts != journey.MaxHearts {
		t.Errorf("hearts = %d, want %d", svc.State().Hearts, journey.MaxHearts)
	}

	var refills []store.HeartEventData
	for _, h := range events.hearts {
		if h.Reason == "refill" {
			refills = append(refills, h)
		}
	}
	if len(refills) != 1 || refills[0].Delta != journey.MaxHearts {
		t.Errorf("refill events = %+v", refills)
	}
	if refills[0].SessionID != nil {
		t.Error("refill outside a session should not carry a session ID")
	}
}

func TestServiceReviewFlow(t *testing.T) {
	svc, snaps, events := newTestService()
	ctx := context.Background()

	read := []string{"card-wbs", "card-scope-creep"}
	due := svc.DueCards(read)
	if len(due) != 2 {
		t.Fatalf("due = %v, want both fresh cards", due)
	}

	rec, err := svc.RecordReview(ctx, "card-wbs", 5)
	if err != nil {
		t.Fatalf("RecordReview: %v", err)
	}
	if rec.Interval != 1 || rec.Repetitions != 1 {
		t.Errorf("record = %+v", rec)
	}

	if _, err := svc.RecordReview(ctx, "card-wbs", 0); err == nil {
		t.Error("quality 0 should be rejected")
	}

	if len(events.reviews) != 1 {
		t.Fatalf("review events = %d, want 1", len(events.reviews))
	}
	if events.reviews[0].CardID != "card-wbs" || events.reviews[0].Quality != 5 {
		t.Errorf("review event = %+v", events.reviews[0])
	}

	due = svc.DueCards(read)
	if len(due) != 1 || due[0] != "card-scope-creep" {
		t.Errorf("due after review = %v", due)
	}

	last := snaps.saved[len(snaps.saved)-1]
	if last.Data.SRS == nil || last.Data.SRS.Reviews["card-wbs"] == nil {
		t.Error("review record missing from persisted snapshot")
	}
}

func TestServiceDueCardsCap(t *testing.T) {
	svc, _, _ := newTestService()
	read := make([]string, MaxDueCardsPerSession+5)
	for i := range read {
		read[i] = fmt.Sprintf("card-%02d", i)
	}
	if got := svc.DueCards(read); len(got) != MaxDueCardsPerSession {
		t.Errorf("due cards = %d, want cap %d", len(got), MaxDueCardsPerSession)
	}
}

func TestServiceResumeFromSnapshot(t *testing.T) {
	svc, snaps, _ := newTestService()
	ctx := context.Background()

	svc.StartLesson(ctx, "day-1", 1)
	svc.AnswerQuestion(ctx, "d1-q1", true, 10)
	svc.CompleteLesson(ctx)
	svc.RecordReview(ctx, "card-wbs", 4)

	latest, err := snaps.Latest(ctx)
	if err != nil {
		t.Fatal(err)
	}
	resumed := NewService(latest, snaps, nil)
	resumed.Clock = func() time.Time { return testNow }

	if got := resumed.State(); got.TotalXP != 10 || got.HighestDayUnlocked != 2 {
		t.Errorf("resumed state = %+v", got)
	}
	if resumed.Scheduler().ReviewedCount() != 1 {
		t.Errorf("resumed reviewed count = %d, want 1", resumed.Scheduler().ReviewedCount())
	}
}
