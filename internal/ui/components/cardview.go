package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/pmquest/internal/ui/theme"
)

// CardView renders a knowledge card body with vertical scrolling for
// content taller than the available viewport.
type CardView struct {
	Title   string
	Body    string
	Width   int
	Height  int
	offset  int
	wrapped []string
}

// NewCardView creates a card view sized to the given content box.
func NewCardView(title, body string, width, height int) CardView {
	c := CardView{
		Title:  title,
		Body:   body,
		Width:  width,
		Height: height,
	}
	c.rewrap()
	return c
}

// Resize updates the content box and rewraps the body.
func (c *CardView) Resize(width, height int) {
	c.Width = width
	c.Height = height
	c.rewrap()
	c.clampOffset()
}

func (c *CardView) rewrap() {
	w := c.Width - 6 // card border + padding
	if w < 20 {
		w = 20
	}
	text := lipgloss.NewStyle().Width(w).Render(c.Body)
	c.wrapped = strings.Split(text, "\n")
}

func (c *CardView) clampOffset() {
	max := len(c.wrapped) - c.bodyLines()
	if max < 0 {
		max = 0
	}
	if c.offset > max {
		c.offset = max
	}
	if c.offset < 0 {
		c.offset = 0
	}
}

// bodyLines is the number of body lines visible at once.
func (c CardView) bodyLines() int {
	h := c.Height - 5 // title, blank line, card chrome
	if h < 3 {
		h = 3
	}
	return h
}

// Update handles scroll keys.
func (c CardView) Update(msg tea.Msg) (CardView, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		c.offset--
	case "down", "j":
		c.offset++
	case "pgup":
		c.offset -= c.bodyLines()
	case "pgdown":
		c.offset += c.bodyLines()
	}
	c.clampOffset()

	return c, nil
}

// AtBottom reports whether the view shows the end of the body.
func (c CardView) AtBottom() bool {
	return c.offset >= len(c.wrapped)-c.bodyLines()
}

// View renders the card.
func (c CardView) View() string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(c.Title)

	visible := c.bodyLines()
	end := c.offset + visible
	if end > len(c.wrapped) {
		end = len(c.wrapped)
	}
	body := strings.Join(c.wrapped[c.offset:end], "\n")

	scrollHint := ""
	if !c.AtBottom() {
		scrollHint = "\n" + theme.Hint.Render("↓ more")
	}

	return theme.Card.Render(title+"\n\n"+body) + scrollHint
}
