// Package stats displays learner progress: lesson history from the event
// log plus journey and review totals.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/pmquest/internal/catalog"
	"github.com/devika/pmquest/internal/progress"
	"github.com/devika/pmquest/internal/screen"
	"github.com/devika/pmquest/internal/store"
	"github.com/devika/pmquest/internal/ui/layout"
	"github.com/devika/pmquest/internal/ui/theme"
)

type statsLoadedMsg struct {
	Lessons      []store.LessonSummaryRecord
	TotalReviews int
	ByQuality    map[int]int
	Err          error
}

// StatsScreen displays progress totals and recent lesson history.
type StatsScreen struct {
	service   *progress.Service
	eventRepo store.EventRepo

	lessons      []store.LessonSummaryRecord
	totalReviews int
	byQuality    map[int]int
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates the stats screen.
func New(service *progress.Service, eventRepo store.EventRepo) *StatsScreen {
	return &StatsScreen{
		service:   service,
		eventRepo: eventRepo,
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		lessons, err := s.eventRepo.QueryLessonSummaries(ctx, store.QueryOpts{Limit: 20})
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		total, byQuality, err := s.eventRepo.ReviewCounts(ctx)
		if err != nil {
			return statsLoadedMsg{Lessons: lessons, ByQuality: make(map[int]int)}
		}

		return statsLoadedMsg{Lessons: lessons, TotalReviews: total, ByQuality: byQuality}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.lessons = msg.Lessons
			s.totalReviews = msg.TotalReviews
			s.byQuality = msg.ByQuality
		}
		s.loaded = true
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stats...")
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		s.renderTotals()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("Recent lessons")))
	b.WriteString("\n")

	if len(s.lessons) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No lessons completed yet.")))
		b.WriteString("\n")
	}

	for _, l := range s.lessons {
		dateStr := l.Timestamp.Format("Jan 02, 2006")

		var accuracy float64
		if l.QuestionCount > 0 {
			accuracy = float64(l.CorrectCount) / float64(l.QuestionCount) * 100
		}

		title := l.LessonID
		if lesson, err := catalog.GetLesson(l.LessonID); err == nil {
			title = lesson.Title
		}

		line := fmt.Sprintf("%s  Day %d  %s  %d/%d correct (%.0f%%)  +%d XP",
			dateStr, l.Day, title, l.CorrectCount, l.QuestionCount, accuracy, l.XPEarned)

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *StatsScreen) renderTotals() string {
	st := s.service.State()

	total := catalog.TotalDays()
	completed := st.HighestDayUnlocked - 1
	if completed > total {
		completed = total
	}

	lines := []string{
		theme.Title.Render("Your journey"),
		"",
		theme.Body.Render(fmt.Sprintf("Total XP           %d", st.TotalXP)),
		theme.Body.Render(fmt.Sprintf("Days completed     %d of %d", completed, total)),
		theme.Body.Render(fmt.Sprintf("Current streak     %d day(s)", st.CurrentStreak)),
		theme.Body.Render(fmt.Sprintf("Topics studied     %d", len(st.EarnHeart.TopicsStudied))),
		theme.Body.Render(fmt.Sprintf("Reviews logged     %d", s.totalReviews)),
	}

	if s.totalReviews > 0 {
		var dist []string
		for q := 1; q <= 5; q++ {
			dist = append(dist, fmt.Sprintf("%d×%d", q, s.byQuality[q]))
		}
		lines = append(lines, theme.Hint.Render("Recall ratings     "+strings.Join(dist, "  ")))
	}

	return theme.Card.Render(strings.Join(lines, "\n"))
}
