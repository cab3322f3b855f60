package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDeckJSON = `{
  "min_app_version": "0.1.0",
  "deck": {"id": "deck-agile", "title": "Agile Practices", "discipline": "quality"},
  "cards": [
    {"id": "card-standup", "title": "Daily Standup", "body": "Fifteen minutes, three questions, no problem solving."},
    {"id": "card-velocity", "title": "Velocity", "summary": "Throughput per sprint.", "body": "Velocity is a planning signal, not a performance metric.", "keywords": ["agile"]}
  ]
}`

// writeDeckFile writes content to a temp file and returns its path.
func writeDeckFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// preserveCatalog restores the package catalog after a test that installs decks.
func preserveCatalog(t *testing.T) {
	t.Helper()
	saved := c
	t.Cleanup(func() { c = saved })
}

func TestLoadDeckFile(t *testing.T) {
	preserveCatalog(t)
	path := writeDeckFile(t, validDeckJSON)

	deck, err := LoadDeckFile(path, "0.3.0")
	require.NoError(t, err)
	assert.Equal(t, "deck-agile", deck.ID)
	assert.Equal(t, []string{"card-standup", "card-velocity"}, deck.CardIDs)

	// Installed cards are reachable through the normal lookups.
	card, err := GetCard("card-standup")
	require.NoError(t, err)
	assert.Equal(t, "deck-agile", card.DeckID)
	assert.Len(t, CardsInDeck("deck-agile"), 2)
}

func TestLoadDeckFile_SchemaRejections(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"missing deck", `{"min_app_version": "0.1.0", "cards": [{"id": "x", "title": "T", "body": "b"}]}`},
		{"empty cards", `{"min_app_version": "0.1.0", "deck": {"id": "d", "title": "T", "discipline": "risk"}, "cards": []}`},
		{"bad discipline", `{"min_app_version": "0.1.0", "deck": {"id": "d", "title": "T", "discipline": "finance"}, "cards": [{"id": "x", "title": "T", "body": "b"}]}`},
		{"unknown field", `{"min_app_version": "0.1.0", "extra": 1, "deck": {"id": "d", "title": "T", "discipline": "risk"}, "cards": [{"id": "x", "title": "T", "body": "b"}]}`},
		{"not json", `{{{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preserveCatalog(t)
			path := writeDeckFile(t, tt.json)
			_, err := LoadDeckFile(path, "0.3.0")
			assert.Error(t, err)
		})
	}
}

func TestLoadDeckFile_VersionGate(t *testing.T) {
	gated := `{
  "min_app_version": "2.0.0",
  "deck": {"id": "deck-future", "title": "Future", "discipline": "risk"},
  "cards": [{"id": "card-future", "title": "F", "body": "b"}]
}`
	preserveCatalog(t)
	path := writeDeckFile(t, gated)

	_, err := LoadDeckFile(path, "0.3.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires app version")

	// Dev builds skip the gate.
	_, err = LoadDeckFile(path, "dev")
	assert.NoError(t, err)
}

func TestLoadDeckFile_DuplicateIDRejected(t *testing.T) {
	preserveCatalog(t)
	dup := `{
  "min_app_version": "0.1.0",
  "deck": {"id": "deck-scope", "title": "Clash", "discipline": "scope"},
  "cards": [{"id": "card-x", "title": "X", "body": "b"}]
}`
	path := writeDeckFile(t, dup)
	_, err := LoadDeckFile(path, "0.3.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate deck ID")
}

func TestCheckVersionGate(t *testing.T) {
	assert.NoError(t, checkVersionGate("0.1.0", "0.1.0"))
	assert.NoError(t, checkVersionGate("0.1.0", "1.0.0"))
	assert.Error(t, checkVersionGate("1.2.0", "1.1.9"))
	assert.Error(t, checkVersionGate("garbage", "1.0.0"))
	assert.NoError(t, checkVersionGate("garbage", "dev"))
}
