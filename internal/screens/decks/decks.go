// Package decks implements the deck browser: pick a discipline, read its
// knowledge cards, and earn hearts by studying new topics.
package decks

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/pmquest/internal/catalog"
	"github.com/devika/pmquest/internal/journey"
	"github.com/devika/pmquest/internal/progress"
	"github.com/devika/pmquest/internal/screen"
	"github.com/devika/pmquest/internal/ui/components"
	"github.com/devika/pmquest/internal/ui/layout"
	"github.com/devika/pmquest/internal/ui/theme"
)

type mode int

const (
	modeDecks mode = iota
	modeCards
	modeReading
)

// DecksScreen is a three-level browser: deck list, card list, card body.
type DecksScreen struct {
	service *progress.Service
	decks   []catalog.Deck

	mode    mode
	deckIdx int
	cardIdx int
	deck    catalog.Deck
	cards   []catalog.Card
	view    components.CardView
	width   int
	height  int
	studied bool // current card newly counted toward a heart
}

var _ screen.Screen = (*DecksScreen)(nil)
var _ screen.KeyHintProvider = (*DecksScreen)(nil)

// New creates the deck browser.
func New(service *progress.Service) *DecksScreen {
	return &DecksScreen{
		service: service,
		decks:   catalog.Decks(),
	}
}

func (d *DecksScreen) Init() tea.Cmd {
	return nil
}

func (d *DecksScreen) Title() string {
	switch d.mode {
	case modeCards:
		return d.deck.Title
	case modeReading:
		return d.cards[d.cardIdx].Title
	default:
		return "Study Decks"
	}
}

func (d *DecksScreen) KeyHints() []layout.KeyHint {
	switch d.mode {
	case modeReading:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "←", Description: "Card list"},
			{Key: "Esc", Description: "Home"},
		}
	case modeCards:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Read"},
			{Key: "←", Description: "Decks"},
			{Key: "Esc", Description: "Home"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Open"},
			{Key: "Esc", Description: "Home"},
		}
	}
}

func (d *DecksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch d.mode {
	case modeDecks:
		switch kmsg.String() {
		case "up", "k":
			if d.deckIdx > 0 {
				d.deckIdx--
			}
		case "down", "j":
			if d.deckIdx < len(d.decks)-1 {
				d.deckIdx++
			}
		case "enter":
			d.deck = d.decks[d.deckIdx]
			d.cards = catalog.CardsInDeck(d.deck.ID)
			d.cardIdx = 0
			d.mode = modeCards
		}

	case modeCards:
		switch kmsg.String() {
		case "up", "k":
			if d.cardIdx > 0 {
				d.cardIdx--
			}
		case "down", "j":
			if d.cardIdx < len(d.cards)-1 {
				d.cardIdx++
			}
		case "enter":
			d.openCard()
		case "left", "h", "backspace":
			d.mode = modeDecks
		}

	case modeReading:
		switch kmsg.String() {
		case "left", "h", "backspace":
			d.mode = modeCards
			return d, nil
		}
		var cmd tea.Cmd
		d.view, cmd = d.view.Update(msg)
		return d, cmd
	}

	return d, nil
}

func (d *DecksScreen) openCard() {
	card := d.cards[d.cardIdx]
	d.studied = d.service.StudyTopic(context.Background(), card.ID)
	d.view = components.NewCardView(card.Title, card.Body, d.width, d.height)
	d.mode = modeReading
}

func (d *DecksScreen) View(width, height int) string {
	if d.width != width || d.height != height {
		d.width = width
		d.height = height
		if d.mode == modeReading {
			d.view.Resize(width, height)
		}
	}

	var body string
	switch d.mode {
	case modeDecks:
		body = d.renderDeckList()
	case modeCards:
		body = d.renderCardList()
	case modeReading:
		body = d.renderReading()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(body)
}

func (d *DecksScreen) renderDeckList() string {
	st := d.service.State()

	s := theme.Title.Render("Choose a discipline") + "\n\n"
	for i, deck := range d.decks {
		read := 0
		for _, cardID := range deck.CardIDs {
			if st.HasStudiedTopic(cardID) {
				read++
			}
		}
		line := fmt.Sprintf("%s  (%d/%d read)", deck.Title, read, len(deck.CardIDs))
		if i == d.deckIdx {
			s += theme.Selected.Render("▸ "+line) + "\n"
		} else {
			s += theme.Unselected.Render("  "+line) + "\n"
		}
	}

	s += "\n" + theme.Hint.Render(fmt.Sprintf(
		"Every %d new topics earn a heart (%d/%d)",
		journey.TopicsToEarnHeart,
		len(st.EarnHeart.TopicsStudied)%journey.TopicsToEarnHeart,
		journey.TopicsToEarnHeart,
	))
	return s
}

func (d *DecksScreen) renderCardList() string {
	st := d.service.State()

	s := theme.Title.Render(d.deck.Title) + "\n\n"
	for i, card := range d.cards {
		marker := "  "
		if st.HasStudiedTopic(card.ID) {
			marker = "✓ "
		}
		line := marker + card.Title
		if i == d.cardIdx {
			s += theme.Selected.Render("▸ "+line) + "\n"
		} else {
			s += theme.Unselected.Render("  "+line) + "\n"
		}
	}
	return s
}

func (d *DecksScreen) renderReading() string {
	s := d.view.View()
	if d.studied {
		s += "\n" + theme.Correct.Render("New topic studied!")
	}
	return s
}
