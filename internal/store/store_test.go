package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testEventRepo(t *testing.T, s *Store) EventRepo {
	t.Helper()
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	depleted := "2025-06-01T10:00:00Z"
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Journey: &JourneySnapshotData{
				Hearts:             0,
				HeartsDepletedAt:   &depleted,
				TotalXP:            75,
				HighestDayUnlocked: 3,
				CompletedSessions: map[string]*SessionResultData{
					"day-1": {Completed: true, XPEarned: 25, CorrectCount: 2},
				},
				QuestionAttempts: map[string]*AttemptData{"q1": {Correct: true}},
				TopicsStudied:    []string{"c1"},
				CurrentStreak:    2,
				LastStreakDate:   "2025-06-01",
			},
			SRS: &SRSSnapshotData{
				Reviews: map[string]*ReviewRecordData{
					"c1": {
						CardID:         "c1",
						IntervalDays:   6,
						EaseFactor:     2.6,
						Repetitions:    2,
						LastReviewedAt: "2025-06-01T10:00:00Z",
						NextReviewDue:  "2025-06-07T10:00:00Z",
					},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("Sequence = %d, want 42", snap.Sequence)
	}
	j := snap.Data.Journey
	if j == nil {
		t.Fatal("expected journey section")
	}
	if j.Hearts != 0 || j.TotalXP != 75 || j.HighestDayUnlocked != 3 {
		t.Errorf("journey scalars = %+v", j)
	}
	if j.HeartsDepletedAt == nil || *j.HeartsDepletedAt != depleted {
		t.Errorf("HeartsDepletedAt = %v, want %q", j.HeartsDepletedAt, depleted)
	}
	if got := j.CompletedSessions["day-1"]; got == nil || got.XPEarned != 25 {
		t.Errorf("CompletedSessions = %+v", j.CompletedSessions)
	}
	r := snap.Data.SRS
	if r == nil || r.Reviews["c1"] == nil {
		t.Fatal("expected srs section with c1")
	}
	if r.Reviews["c1"].EaseFactor != 2.6 || r.Reviews["c1"].Repetitions != 2 {
		t.Errorf("review record = %+v", r.Reviews["c1"])
	}
}

func TestSnapshotNilSectionsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	err := repo.Save(ctx, &Snapshot{
		Sequence:  1,
		Timestamp: time.Now().UTC(),
		Data: SnapshotData{
			Version: 1,
			Journey: &JourneySnapshotData{Hearts: 3, HighestDayUnlocked: 1},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data.SRS != nil {
		t.Error("absent SRS section came back non-nil")
	}
	if snap.Data.Journey.HeartsDepletedAt != nil {
		t.Error("absent HeartsDepletedAt came back non-nil")
	}
	if snap.Data.Journey.ActiveSession != nil {
		t.Error("absent ActiveSession came back non-nil")
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("snapshots after prune = %d, want 2", count)
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.Sequence != 4 {
		t.Errorf("latest.Sequence = %d, want 4 (most recent kept)", latest.Sequence)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	sid := "session-1"
	err := repo.AppendLessonEvent(ctx, LessonEventData{
		SessionID: sid, LessonID: "day-1", Day: 1, Action: "start",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	answers := []AnswerEventData{
		{SessionID: sid, LessonID: "day-1", QuestionID: "q1", Correct: true, XPAwarded: 10},
		{SessionID: sid, LessonID: "day-1", QuestionID: "q2", Correct: false},
		{SessionID: sid, LessonID: "day-1", QuestionID: "q3", Correct: true, XPAwarded: 15},
	}
	for _, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	err = repo.AppendHeartEvent(ctx, HeartEventData{
		SessionID: &sid, Delta: -1, Reason: "wrong-answer", Balance: 2,
	})
	if err != nil {
		t.Fatalf("append heart: %v", err)
	}

	err = repo.AppendLessonEvent(ctx, LessonEventData{
		SessionID: sid, LessonID: "day-1", Day: 1, Action: "complete",
		XPEarned: 25, CorrectCount: 2, QuestionCount: 3,
	})
	if err != nil {
		t.Fatalf("append complete: %v", err)
	}

	summaries, err := repo.QueryLessonSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("summaries = %d, want 1 (starts excluded)", len(summaries))
	}
	got := summaries[0]
	if got.LessonID != "day-1" || got.XPEarned != 25 || got.CorrectCount != 2 || got.QuestionCount != 3 {
		t.Errorf("summary = %+v", got)
	}

	acc, n, err := repo.LessonAccuracy(ctx, "day-1")
	if err != nil {
		t.Fatalf("lesson accuracy: %v", err)
	}
	if n != 3 || acc < 0.66 || acc > 0.67 {
		t.Errorf("accuracy = %v over %d answers, want ~0.667 over 3", acc, n)
	}
}

func TestReviewCounts(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	for _, q := range []int{5, 5, 3, 1} {
		err := repo.AppendReviewEvent(ctx, ReviewEventData{
			CardID: "c1", Quality: q, IntervalDays: 1, EaseFactor: 2.5, Repetitions: 1,
		})
		if err != nil {
			t.Fatalf("append review: %v", err)
		}
	}

	total, byQuality, err := repo.ReviewCounts(ctx)
	if err != nil {
		t.Fatalf("review counts: %v", err)
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
	if byQuality[5] != 2 || byQuality[3] != 1 || byQuality[1] != 1 {
		t.Errorf("byQuality = %v", byQuality)
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	seq, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("sequence counter: %v", err)
	}
	ctx := context.Background()

	prev := int64(-1)
	for i := 0; i < 10; i++ {
		n, err := seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= prev {
			t.Fatalf("sequence not increasing: %d after %d", n, prev)
		}
		prev = n
	}
}
