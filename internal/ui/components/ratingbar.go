package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/pmquest/internal/ui/theme"
)

// ratingLabels maps recall quality 1..5 to a short description.
var ratingLabels = [...]string{
	"Blackout",
	"Wrong, but familiar",
	"Hard recall",
	"Good recall",
	"Perfect recall",
}

// RatingBar is a 1-5 recall quality selector. The number keys pick
// directly; left/right adjust; enter submits.
type RatingBar struct {
	Selected  int // 1-based
	Submitted bool
}

// NewRatingBar creates a rating bar with "Good recall" preselected.
func NewRatingBar() RatingBar {
	return RatingBar{Selected: 4}
}

// Init returns nil.
func (r RatingBar) Init() tea.Cmd {
	return nil
}

// Update handles key events.
func (r RatingBar) Update(msg tea.Msg) (RatingBar, tea.Cmd) {
	if r.Submitted {
		return r, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch key := kmsg.String(); key {
	case "1", "2", "3", "4", "5":
		r.Selected = int(key[0] - '0')
		r.Submitted = true
	case "left", "h":
		if r.Selected > 1 {
			r.Selected--
		}
	case "right", "l":
		if r.Selected < 5 {
			r.Selected++
		}
	case "enter":
		r.Submitted = true
	}

	return r, nil
}

// View renders the rating bar.
func (r RatingBar) View() string {
	var cells []string
	for q := 1; q <= 5; q++ {
		cell := fmt.Sprintf(" %d ", q)
		if q == r.Selected {
			cells = append(cells, theme.ButtonActive.Render(cell))
		} else {
			cells = append(cells, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(cell))
		}
	}

	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(ratingLabels[r.Selected-1])

	return strings.Join(cells, " ") + "   " + label
}

// Quality returns the submitted rating, or 0 if not yet submitted.
func (r RatingBar) Quality() int {
	if !r.Submitted {
		return 0
	}
	return r.Selected
}
