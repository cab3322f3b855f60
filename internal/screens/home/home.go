// Package home implements the journey home screen: day progress, heart
// status, and the main navigation menu.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/pmquest/internal/catalog"
	"github.com/devika/pmquest/internal/journey"
	"github.com/devika/pmquest/internal/progress"
	"github.com/devika/pmquest/internal/router"
	"github.com/devika/pmquest/internal/screen"
	"github.com/devika/pmquest/internal/screens/decks"
	"github.com/devika/pmquest/internal/screens/lesson"
	"github.com/devika/pmquest/internal/screens/review"
	"github.com/devika/pmquest/internal/screens/stats"
	"github.com/devika/pmquest/internal/store"
	"github.com/devika/pmquest/internal/ui/components"
	"github.com/devika/pmquest/internal/ui/theme"
)

// HomeScreen is the main navigation screen of the application.
type HomeScreen struct {
	service   *progress.Service
	eventRepo store.EventRepo
	menu      components.Menu
	dueCount  int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Hearts are lazily refilled here so the
// learner returning after a day away sees restored hearts immediately.
func New(service *progress.Service, eventRepo store.EventRepo) *HomeScreen {
	service.RefreshHearts(context.Background())

	st := service.State()
	due := service.DueCards(st.EarnHeart.TopicsStudied)

	h := &HomeScreen{
		service:   service,
		eventRepo: eventRepo,
		dueCount:  len(due),
	}
	h.menu = components.NewMenu(h.menuItems(st, due))
	return h
}

func (h *HomeScreen) menuItems(st journey.State, due []string) []components.MenuItem {
	items := make([]components.MenuItem, 0, 5)

	lessonLabel := fmt.Sprintf("START DAY %d", st.HighestDayUnlocked)
	if st.InSession() {
		lessonLabel = "CONTINUE LESSON"
	}
	_, dayErr := catalog.LessonForDay(st.HighestDayUnlocked)
	lessonAvailable := st.InSession() || (!st.OutOfHearts() && dayErr == nil)
	items = append(items, components.MenuItem{
		Label:    lessonLabel,
		Disabled: !lessonAvailable,
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: lesson.New(h.service)}
			}
		},
	})

	items = append(items, components.MenuItem{
		Label: "STUDY DECKS",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: decks.New(h.service)}
			}
		},
	})

	items = append(items, components.MenuItem{
		Label:    fmt.Sprintf("REVIEW DUE (%d)", len(due)),
		Disabled: len(due) == 0,
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: review.New(h.service)}
			}
		},
	})

	items = append(items, components.MenuItem{
		Label: "STATS",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(h.service, h.eventRepo)}
			}
		},
	})

	items = append(items, components.MenuItem{
		Label: "QUIT",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return items
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Menu labels depend on state that screens above us mutate (lessons
	// completed, cards reviewed), so rebuild before handling input.
	h.refresh()

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) refresh() {
	st := h.service.State()
	due := h.service.DueCards(st.EarnHeart.TopicsStudied)
	h.dueCount = len(due)

	selected := h.menu.Selected
	h.menu = components.NewMenu(h.menuItems(st, due))
	if selected < len(h.menu.Items) && !h.menu.Items[selected].Disabled {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) View(width, height int) string {
	st := h.service.State()

	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("P M Q U E S T"))
	sections = append(sections, theme.Subtitle.Width(width).Render("Project management, one day at a time"))
	sections = append(sections, "")
	sections = append(sections, h.renderStats(st, width))
	sections = append(sections, "")

	if st.OutOfHearts() && !st.InSession() {
		sections = append(sections, h.renderOutOfHearts(st, width))
		sections = append(sections, "")
	}

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) renderStats(st journey.State, width int) string {
	total := catalog.TotalDays()
	completed := st.HighestDayUnlocked - 1
	if completed > total {
		completed = total
	}

	dayLine := fmt.Sprintf("Day %d of %d", st.HighestDayUnlocked, total)
	if completed == total {
		dayLine = fmt.Sprintf("All %d days complete!", total)
	}

	progressLine := fmt.Sprintf(
		"%s   ·   %d reviewed   ·   %d due",
		dayLine, h.service.Scheduler().ReviewedCount(), h.dueCount,
	)

	bar := components.NewProgressBar("", float64(completed)/float64(total), false, 40)

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Body.Render(progressLine) + "\n\n" + bar.View())
}

func (h *HomeScreen) renderOutOfHearts(st journey.State, width int) string {
	hours := st.HoursUntilRefill(h.service.Clock())
	msg := fmt.Sprintf(
		"Out of hearts. Refill in %dh, or study %d topics to earn one.",
		hours, journey.TopicsToEarnHeart,
	)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Heart).
		Render(msg)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
