package catalog

import (
	"fmt"
	"sort"
)

// catalog holds the content library with precomputed indices.
type catalog struct {
	decks       []Deck
	cards       []Card
	lessons     []Lesson
	deckByID    map[string]*Deck
	cardByID    map[string]*Card
	lessonByID  map[string]*Lesson
	lessonByDay map[int]*Lesson
	cardsInDeck map[string][]Card
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

// buildCatalog constructs the catalog from decks, cards and lessons.
func buildCatalog(decks []Deck, cards []Card, lessons []Lesson) (*catalog, error) {
	if err := validate(decks, cards, lessons); err != nil {
		return nil, err
	}

	ct := &catalog{
		decks:       decks,
		cards:       cards,
		lessons:     lessons,
		deckByID:    make(map[string]*Deck, len(decks)),
		cardByID:    make(map[string]*Card, len(cards)),
		lessonByID:  make(map[string]*Lesson, len(lessons)),
		lessonByDay: make(map[int]*Lesson, len(lessons)),
		cardsInDeck: make(map[string][]Card),
	}

	for i := range ct.decks {
		ct.deckByID[ct.decks[i].ID] = &ct.decks[i]
	}
	for i := range ct.cards {
		card := &ct.cards[i]
		ct.cardByID[card.ID] = card
		ct.cardsInDeck[card.DeckID] = append(ct.cardsInDeck[card.DeckID], *card)
	}
	for i := range ct.lessons {
		ct.lessonByID[ct.lessons[i].ID] = &ct.lessons[i]
		ct.lessonByDay[ct.lessons[i].Day] = &ct.lessons[i]
	}

	return ct, nil
}

// Decks returns all decks in catalog order.
func Decks() []Deck {
	return append([]Deck(nil), c.decks...)
}

// GetDeck returns the deck with the given ID.
func GetDeck(id string) (Deck, error) {
	d, ok := c.deckByID[id]
	if !ok {
		return Deck{}, fmt.Errorf("unknown deck %q", id)
	}
	return *d, nil
}

// GetCard returns the card with the given ID.
func GetCard(id string) (Card, error) {
	card, ok := c.cardByID[id]
	if !ok {
		return Card{}, fmt.Errorf("unknown card %q", id)
	}
	return *card, nil
}

// CardsInDeck returns the cards belonging to a deck, in seed order.
func CardsInDeck(deckID string) []Card {
	return append([]Card(nil), c.cardsInDeck[deckID]...)
}

// AllCardIDs returns every card ID, sorted.
func AllCardIDs() []string {
	ids := make([]string, 0, len(c.cards))
	for _, card := range c.cards {
		ids = append(ids, card.ID)
	}
	sort.Strings(ids)
	return ids
}

// Lessons returns all lessons sorted by day.
func Lessons() []Lesson {
	out := append([]Lesson(nil), c.lessons...)
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// GetLesson returns the lesson with the given ID.
func GetLesson(id string) (Lesson, error) {
	l, ok := c.lessonByID[id]
	if !ok {
		return Lesson{}, fmt.Errorf("unknown lesson %q", id)
	}
	return *l, nil
}

// LessonForDay returns the lesson for a journey day.
func LessonForDay(day int) (Lesson, error) {
	l, ok := c.lessonByDay[day]
	if !ok {
		return Lesson{}, fmt.Errorf("no lesson for day %d", day)
	}
	return *l, nil
}

// TotalDays returns the number of journey days with lessons.
func TotalDays() int {
	return len(c.lessonByDay)
}

// QuestionXP returns the XP value of a question, or 0 for unknown IDs.
// The journey core stores only IDs; XP always comes from here.
func QuestionXP(lessonID, questionID string) int {
	l, ok := c.lessonByID[lessonID]
	if !ok {
		return 0
	}
	for _, q := range l.Questions {
		if q.ID == questionID {
			return q.XP
		}
	}
	return 0
}
