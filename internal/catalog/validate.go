package catalog

import (
	"fmt"
	"strings"
)

// validate performs structural checks on a content set. Returns a combined
// error describing all problems found, or nil if valid.
func validate(decks []Deck, cards []Card, lessons []Lesson) error {
	var errs []string

	deckIDs := make(map[string]bool, len(decks))
	for _, d := range decks {
		if deckIDs[d.ID] {
			errs = append(errs, fmt.Sprintf("duplicate deck ID: %q", d.ID))
		}
		deckIDs[d.ID] = true
	}

	cardIDs := make(map[string]bool, len(cards))
	for _, card := range cards {
		if cardIDs[card.ID] {
			errs = append(errs, fmt.Sprintf("duplicate card ID: %q", card.ID))
		}
		cardIDs[card.ID] = true
		if !deckIDs[card.DeckID] {
			errs = append(errs, fmt.Sprintf("card %q references nonexistent deck %q", card.ID, card.DeckID))
		}
	}

	for _, d := range decks {
		for _, cid := range d.CardIDs {
			if !cardIDs[cid] {
				errs = append(errs, fmt.Sprintf("deck %q lists nonexistent card %q", d.ID, cid))
			}
		}
	}

	lessonIDs := make(map[string]bool, len(lessons))
	days := make(map[int]bool, len(lessons))
	questionIDs := make(map[string]bool)
	for _, l := range lessons {
		if lessonIDs[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
		}
		lessonIDs[l.ID] = true

		if l.Day < 1 {
			errs = append(errs, fmt.Sprintf("lesson %q has invalid day %d", l.ID, l.Day))
		}
		if days[l.Day] {
			errs = append(errs, fmt.Sprintf("duplicate lesson for day %d", l.Day))
		}
		days[l.Day] = true

		if !deckIDs[l.DeckID] {
			errs = append(errs, fmt.Sprintf("lesson %q references nonexistent deck %q", l.ID, l.DeckID))
		}
		if len(l.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("lesson %q has no questions", l.ID))
		}
		for _, q := range l.Questions {
			if questionIDs[q.ID] {
				errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
			}
			questionIDs[q.ID] = true
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				errs = append(errs, fmt.Sprintf("question %q correct_index %d out of range", q.ID, q.CorrectIndex))
			}
			if q.XP <= 0 {
				errs = append(errs, fmt.Sprintf("question %q has non-positive xp", q.ID))
			}
		}
	}

	// Days must be contiguous starting at 1 so the journey can unlock
	// day N+1 after completing day N.
	for day := 1; day <= len(days); day++ {
		if !days[day] {
			errs = append(errs, fmt.Sprintf("lesson days not contiguous: missing day %d", day))
			break
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
