// Package review implements the spaced-repetition review screen: due
// cards are shown one at a time, recalled, then rated 1-5.
package review

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/pmquest/internal/catalog"
	"github.com/devika/pmquest/internal/progress"
	"github.com/devika/pmquest/internal/router"
	"github.com/devika/pmquest/internal/screen"
	"github.com/devika/pmquest/internal/srs"
	"github.com/devika/pmquest/internal/ui/components"
	"github.com/devika/pmquest/internal/ui/layout"
	"github.com/devika/pmquest/internal/ui/theme"
)

type phase int

const (
	phaseRecall phase = iota // title + summary shown, body hidden
	phaseReveal              // full card shown, awaiting rating
	phaseRated               // rating applied, showing next-due info
	phaseDone
)

// ReviewScreen runs one review session over the cards due now.
type ReviewScreen struct {
	service *progress.Service
	queue   []string
	index   int
	phase   phase
	card    catalog.Card
	view    components.CardView
	rating  components.RatingBar
	last    srs.Record
	rated   int
	width   int
	height  int
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a review session over the currently due cards.
func New(service *progress.Service) *ReviewScreen {
	st := service.State()
	r := &ReviewScreen{
		service: service,
		queue:   service.DueCards(st.EarnHeart.TopicsStudied),
	}
	if len(r.queue) == 0 {
		r.phase = phaseDone
	} else {
		r.loadCard()
	}
	return r
}

func (r *ReviewScreen) loadCard() {
	card, err := catalog.GetCard(r.queue[r.index])
	if err != nil {
		// Card removed from the catalog since it was scheduled; skip it.
		r.next()
		return
	}
	r.card = card
	r.view = components.NewCardView(card.Title, card.Body, r.width, r.height)
	r.rating = components.NewRatingBar()
	r.phase = phaseRecall
}

func (r *ReviewScreen) next() {
	r.index++
	if r.index >= len(r.queue) {
		r.phase = phaseDone
		return
	}
	r.loadCard()
}

func (r *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (r *ReviewScreen) Title() string {
	return "Review"
}

func (r *ReviewScreen) KeyHints() []layout.KeyHint {
	switch r.phase {
	case phaseRecall:
		return []layout.KeyHint{
			{Key: "Space", Description: "Reveal"},
			{Key: "Esc", Description: "Stop"},
		}
	case phaseReveal:
		return []layout.KeyHint{
			{Key: "1-5", Description: "Rate recall"},
			{Key: "↑↓", Description: "Scroll"},
		}
	case phaseRated:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next card"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	}
}

func (r *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch r.phase {
	case phaseRecall:
		if kmsg.String() == "space" || kmsg.String() == " " || kmsg.String() == "enter" {
			r.phase = phaseReveal
		}

	case phaseReveal:
		var cmd tea.Cmd
		r.rating, cmd = r.rating.Update(msg)
		if r.rating.Submitted {
			rec, err := r.service.RecordReview(context.Background(), r.card.ID, r.rating.Quality())
			if err != nil {
				r.rating = components.NewRatingBar()
				return r, nil
			}
			r.last = rec
			r.rated++
			r.phase = phaseRated
			return r, nil
		}
		// unconsumed keys scroll the card
		r.view, _ = r.view.Update(msg)
		return r, cmd

	case phaseRated:
		r.next()

	case phaseDone:
		if kmsg.String() == "enter" {
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return r, nil
}

func (r *ReviewScreen) View(width, height int) string {
	r.width = width
	r.height = height
	if r.phaseShowsCard() && (r.view.Width != width || r.view.Height != height-6) {
		r.view.Resize(width, height-6)
	}

	var body string
	switch r.phase {
	case phaseRecall:
		body = r.renderRecall()
	case phaseReveal:
		body = r.renderReveal()
	case phaseRated:
		body = r.renderRated()
	case phaseDone:
		body = r.renderDone()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(body)
}

func (r *ReviewScreen) phaseShowsCard() bool {
	return r.phase == phaseReveal
}

func (r *ReviewScreen) renderProgress() string {
	return theme.Subtitle.Render(fmt.Sprintf("Card %d of %d", r.index+1, len(r.queue)))
}

func (r *ReviewScreen) renderRecall() string {
	var lines []string
	lines = append(lines, r.renderProgress())
	lines = append(lines, "")
	lines = append(lines, theme.Title.Render(r.card.Title))
	lines = append(lines, theme.Subtitle.Render(r.card.Summary))
	lines = append(lines, "")
	lines = append(lines, theme.Hint.Render("Recall what you can, then reveal the card."))
	return strings.Join(lines, "\n")
}

func (r *ReviewScreen) renderReveal() string {
	return r.renderProgress() + "\n\n" +
		r.view.View() + "\n\n" +
		theme.Body.Render("How well did you recall this?") + "\n" +
		r.rating.View()
}

func (r *ReviewScreen) renderRated() string {
	due := fmt.Sprintf("Next review in %d day(s)", int(r.last.Interval))
	if r.last.Repetitions == 0 {
		due = "Back to the start: next review tomorrow"
	}

	var lines []string
	lines = append(lines, r.renderProgress())
	lines = append(lines, "")
	lines = append(lines, theme.Correct.Render("Recorded"))
	lines = append(lines, theme.Body.Render(due))
	return strings.Join(lines, "\n")
}

func (r *ReviewScreen) renderDone() string {
	msg := "No cards due. Study some decks first!"
	if r.rated > 0 {
		msg = fmt.Sprintf("Session done: %d card(s) reviewed.", r.rated)
	}
	return theme.Title.Render("Review complete") + "\n\n" + theme.Body.Render(msg)
}
