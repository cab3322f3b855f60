package lesson

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/pmquest/internal/catalog"
	"github.com/devika/pmquest/internal/journey"
	"github.com/devika/pmquest/internal/router"
	"github.com/devika/pmquest/internal/screen"
	"github.com/devika/pmquest/internal/ui/components"
	"github.com/devika/pmquest/internal/ui/layout"
	"github.com/devika/pmquest/internal/ui/theme"
)

// summaryScreen shows the result of a completed lesson.
type summaryScreen struct {
	lesson  catalog.Lesson
	result  journey.SessionResult
	streak  int
	nextDay int
	button  components.Button
}

var _ screen.Screen = (*summaryScreen)(nil)
var _ screen.KeyHintProvider = (*summaryScreen)(nil)

func newSummary(l catalog.Lesson, result journey.SessionResult, streak, nextDay int) *summaryScreen {
	s := &summaryScreen{
		lesson:  l,
		result:  result,
		streak:  streak,
		nextDay: nextDay,
	}
	s.button = components.NewButton("Continue", true, func() tea.Cmd {
		return func() tea.Msg { return router.PopScreenMsg{} }
	})
	return s
}

func (s *summaryScreen) Init() tea.Cmd {
	return nil
}

func (s *summaryScreen) Title() string {
	return "Lesson Complete"
}

func (s *summaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
	}
}

func (s *summaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.button, cmd = s.button.Update(msg)
	return s, cmd
}

func (s *summaryScreen) View(width, height int) string {
	total := len(s.lesson.Questions)

	var lines []string
	lines = append(lines, theme.Title.Render("Lesson complete!"))
	lines = append(lines, "")
	lines = append(lines, theme.Body.Render(fmt.Sprintf("Day %d · %s", s.lesson.Day, s.lesson.Title)))
	lines = append(lines, "")
	lines = append(lines, theme.Correct.Render(fmt.Sprintf("%d/%d correct", s.result.CorrectCount, total)))
	lines = append(lines, theme.Body.Render(fmt.Sprintf("+%d XP", s.result.XPEarned)))
	lines = append(lines, theme.Streak.Render(fmt.Sprintf("⚡ %d day streak", s.streak)))
	lines = append(lines, "")

	if s.nextDay <= catalog.TotalDays() {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("Day %d unlocked", s.nextDay)))
	} else {
		lines = append(lines, theme.Hint.Render("You finished the journey!"))
	}
	lines = append(lines, "")
	lines = append(lines, s.button.View())

	card := theme.Card.Render(strings.Join(lines, "\n"))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}
