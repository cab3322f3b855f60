package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIntegrity(t *testing.T) {
	decks := Decks()
	require.NotEmpty(t, decks)

	for _, d := range decks {
		for _, cid := range d.CardIDs {
			card, err := GetCard(cid)
			require.NoError(t, err, "deck %s card %s", d.ID, cid)
			assert.Equal(t, d.ID, card.DeckID)
		}
	}

	for _, l := range Lessons() {
		_, err := GetDeck(l.DeckID)
		require.NoError(t, err, "lesson %s deck", l.ID)
		for _, q := range l.Questions {
			assert.Positive(t, q.XP, "question %s", q.ID)
			assert.Less(t, q.CorrectIndex, len(q.Options), "question %s", q.ID)
		}
	}
}

func TestLessonDaysContiguous(t *testing.T) {
	total := TotalDays()
	require.Positive(t, total)
	for day := 1; day <= total; day++ {
		l, err := LessonForDay(day)
		require.NoError(t, err)
		assert.Equal(t, day, l.Day)
	}
	_, err := LessonForDay(total + 1)
	assert.Error(t, err)
}

func TestLookups(t *testing.T) {
	deck, err := GetDeck("deck-scope")
	require.NoError(t, err)
	assert.Equal(t, DisciplineScope, deck.Discipline)

	cards := CardsInDeck("deck-scope")
	assert.Len(t, cards, len(deck.CardIDs))

	_, err = GetDeck("nope")
	assert.Error(t, err)
	_, err = GetCard("nope")
	assert.Error(t, err)
	_, err = GetLesson("nope")
	assert.Error(t, err)
}

func TestQuestionXP(t *testing.T) {
	lesson, err := LessonForDay(1)
	require.NoError(t, err)
	q := lesson.Questions[0]

	assert.Equal(t, q.XP, QuestionXP(lesson.ID, q.ID))
	assert.Zero(t, QuestionXP(lesson.ID, "missing-question"))
	assert.Zero(t, QuestionXP("missing-lesson", q.ID))
}

func TestAllCardIDsSorted(t *testing.T) {
	ids := AllCardIDs()
	require.NotEmpty(t, ids)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}

func TestValidate_CatchesProblems(t *testing.T) {
	goodDecks := []Deck{{ID: "d1", Title: "D", Discipline: DisciplineScope}}
	goodCards := []Card{{ID: "c1", DeckID: "d1", Title: "C", Body: "b"}}
	goodLessons := []Lesson{{ID: "l1", Day: 1, Title: "L", DeckID: "d1", Questions: []Question{
		{ID: "q1", Prompt: "p", Options: []string{"a", "b"}, CorrectIndex: 0, XP: 10},
	}}}

	tests := []struct {
		name    string
		decks   []Deck
		cards   []Card
		lessons []Lesson
		wantErr string
	}{
		{"valid", goodDecks, goodCards, goodLessons, ""},
		{"duplicate card", goodDecks,
			append(append([]Card(nil), goodCards...), goodCards[0]),
			goodLessons, "duplicate card ID"},
		{"dangling deck ref", goodDecks,
			[]Card{{ID: "c1", DeckID: "ghost", Title: "C", Body: "b"}},
			goodLessons, "nonexistent deck"},
		{"bad correct index", goodDecks, goodCards,
			[]Lesson{{ID: "l1", Day: 1, Title: "L", DeckID: "d1", Questions: []Question{
				{ID: "q1", Prompt: "p", Options: []string{"a"}, CorrectIndex: 3, XP: 10},
			}}}, "out of range"},
		{"gap in days", goodDecks, goodCards,
			[]Lesson{{ID: "l1", Day: 2, Title: "L", DeckID: "d1", Questions: goodLessons[0].Questions}},
			"missing day 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.decks, tt.cards, tt.lessons)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
