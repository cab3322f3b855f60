// Package lesson implements the daily lesson screen: a fixed run of
// multiple-choice questions with per-answer feedback, ending in a summary.
package lesson

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/pmquest/internal/catalog"
	"github.com/devika/pmquest/internal/progress"
	"github.com/devika/pmquest/internal/router"
	"github.com/devika/pmquest/internal/screen"
	"github.com/devika/pmquest/internal/ui/components"
	"github.com/devika/pmquest/internal/ui/layout"
	"github.com/devika/pmquest/internal/ui/theme"
)

// LessonScreen drives one lesson session from first question to summary.
type LessonScreen struct {
	service *progress.Service
	lesson  catalog.Lesson
	valid   bool
	choice  components.MultiChoice
	index   int
	showing bool // feedback phase after an answer
	errMsg  string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a lesson screen for the learner's current day, resuming an
// interrupted session if one exists.
func New(service *progress.Service) *LessonScreen {
	s := &LessonScreen{service: service}

	st := service.State()
	if st.InSession() {
		l, err := catalog.GetLesson(st.ActiveSession.LessonID)
		if err == nil {
			s.lesson = l
			s.valid = true
			s.index = st.ActiveSession.QuestionIndex
		}
	} else {
		l, err := catalog.LessonForDay(st.HighestDayUnlocked)
		if err == nil && service.StartLesson(context.Background(), l.ID, l.Day) {
			s.lesson = l
			s.valid = true
		}
	}

	if !s.valid {
		s.errMsg = "No lesson available right now."
	} else if s.index < len(s.lesson.Questions) {
		s.loadQuestion()
	}
	return s
}

func (s *LessonScreen) loadQuestion() {
	q := s.lesson.Questions[s.index]
	s.choice = components.NewMultiChoice(q.Prompt, q.Options, q.CorrectIndex)
	s.showing = false
}

func (s *LessonScreen) Init() tea.Cmd {
	if s.valid && s.index >= len(s.lesson.Questions) {
		return s.finish()
	}
	return nil
}

func (s *LessonScreen) Title() string {
	if !s.valid {
		return "Lesson"
	}
	return fmt.Sprintf("Day %d · %s", s.lesson.Day, s.lesson.Title)
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	if s.showing {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Leave"},
	}
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, nil
	}

	if s.showing {
		if _, ok := msg.(tea.KeyMsg); ok {
			return s.advance()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Submitted {
		q := s.lesson.Questions[s.index]
		s.service.AnswerQuestion(context.Background(), q.ID, s.choice.IsCorrect(), q.XP)
		s.showing = true
	}
	return s, cmd
}

func (s *LessonScreen) advance() (screen.Screen, tea.Cmd) {
	s.index++
	if s.index >= len(s.lesson.Questions) {
		return s, s.finish()
	}
	s.loadQuestion()
	return s, nil
}

func (s *LessonScreen) finish() tea.Cmd {
	result, ok := s.service.CompleteLesson(context.Background())
	if !ok {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	st := s.service.State()
	summary := newSummary(s.lesson, result, st.CurrentStreak, st.HighestDayUnlocked)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: summary} }
}

func (s *LessonScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center).
			AlignVertical(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(s.errMsg)
	}
	if !s.valid || s.index >= len(s.lesson.Questions) {
		return ""
	}

	progressBar := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", s.index+1, len(s.lesson.Questions)),
		float64(s.index)/float64(len(s.lesson.Questions)),
		false, 50,
	)

	body := progressBar.View() + "\n\n\n" + s.choice.View()

	if s.showing {
		if s.choice.IsCorrect() {
			q := s.lesson.Questions[s.index]
			body += "\n" + theme.Correct.Render(fmt.Sprintf("✓ Correct! +%d XP", q.XP))
		} else {
			body += "\n" + theme.Incorrect.Render("✗ Not quite. -1 ♥")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(body)
}
