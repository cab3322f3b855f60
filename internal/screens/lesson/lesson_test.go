package lesson

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/devika/pmquest/internal/catalog"
	"github.com/devika/pmquest/internal/journey"
	"github.com/devika/pmquest/internal/progress"
	"github.com/devika/pmquest/internal/router"
	"github.com/devika/pmquest/internal/screen"
)

var testNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func newTestService() *progress.Service {
	svc := progress.NewService(nil, nil, nil)
	svc.Clock = func() time.Time { return testNow }
	return svc
}

func keyDown() tea.Msg  { return tea.KeyPressMsg{Code: tea.KeyDown} }
func keyEnter() tea.Msg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

// answerQuestion selects the given option and submits, then dismisses the
// feedback view.
func answerQuestion(t *testing.T, s screen.Screen, option int) (screen.Screen, tea.Cmd) {
	t.Helper()
	for i := 0; i < option; i++ {
		s, _ = s.Update(keyDown())
	}
	s, _ = s.Update(keyEnter())
	return s.Update(keyEnter()) // dismiss feedback
}

func TestLessonStartsSession(t *testing.T) {
	svc := newTestService()
	New(svc)

	st := svc.State()
	if !st.InSession() {
		t.Fatal("creating the lesson screen should open a session")
	}
	if st.ActiveSession.Day != 1 {
		t.Errorf("session day = %d, want 1", st.ActiveSession.Day)
	}
}

func TestLessonBlockedWithoutHearts(t *testing.T) {
	svc := newTestService()

	// drain hearts through a throwaway session
	var s screen.Screen = New(svc)
	lesson, err := catalog.LessonForDay(1)
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range lesson.Questions {
		wrong := (q.CorrectIndex + 1) % len(q.Options)
		s, _ = answerQuestion(t, s, wrong)
	}

	if !svc.State().OutOfHearts() {
		t.Skip("lesson has fewer questions than hearts")
	}

	blocked := New(svc)
	if blocked.valid {
		t.Error("lesson screen should not start a session with zero hearts")
	}
}

func TestLessonFullRunCompletes(t *testing.T) {
	svc := newTestService()
	var s screen.Screen = New(svc)

	lesson, err := catalog.LessonForDay(1)
	if err != nil {
		t.Fatal(err)
	}

	var lastCmd tea.Cmd
	for _, q := range lesson.Questions {
		s, lastCmd = answerQuestion(t, s, q.CorrectIndex)
	}

	if lastCmd == nil {
		t.Fatal("final answer should produce a transition command")
	}
	msg := lastCmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg to summary, got %T", msg)
	}

	st := svc.State()
	if st.InSession() {
		t.Error("session should be closed after the last question")
	}
	if st.HighestDayUnlocked != 2 {
		t.Errorf("highest day = %d, want 2", st.HighestDayUnlocked)
	}
	if st.Hearts != journey.MaxHearts {
		t.Errorf("hearts = %d, want %d (all answers correct)", st.Hearts, journey.MaxHearts)
	}

	result := st.CompletedSessions[lesson.ID]
	if result.CorrectCount != len(lesson.Questions) {
		t.Errorf("correct count = %d, want %d", result.CorrectCount, len(lesson.Questions))
	}
}

func TestLessonResumesInterruptedSession(t *testing.T) {
	svc := newTestService()
	var s screen.Screen = New(svc)

	lesson, err := catalog.LessonForDay(1)
	if err != nil {
		t.Fatal(err)
	}

	// answer only the first question, then abandon the screen
	s, _ = answerQuestion(t, s, lesson.Questions[0].CorrectIndex)
	_ = s

	resumed := New(svc)
	if !resumed.valid {
		t.Fatal("resumed screen should be valid")
	}
	if resumed.index != 1 {
		t.Errorf("resumed at question %d, want 1", resumed.index)
	}

	st := svc.State()
	if st.ActiveSession == nil || len(st.ActiveSession.Answers) != 1 {
		t.Error("first answer should be preserved across screens")
	}
}

func TestLessonWrongAnswerCostsHeart(t *testing.T) {
	svc := newTestService()
	var s screen.Screen = New(svc)

	lesson, err := catalog.LessonForDay(1)
	if err != nil {
		t.Fatal(err)
	}
	q := lesson.Questions[0]
	wrong := (q.CorrectIndex + 1) % len(q.Options)

	s, _ = answerQuestion(t, s, wrong)
	_ = s

	if got := svc.State().Hearts; got != journey.MaxHearts-1 {
		t.Errorf("hearts = %d, want %d", got, journey.MaxHearts-1)
	}
}
