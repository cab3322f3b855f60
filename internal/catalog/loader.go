package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// deckFile is the parsed form of a custom deck file.
type deckFile struct {
	MinAppVersion string `json:"min_app_version"`
	Deck          struct {
		ID         string `json:"id"`
		Title      string `json:"title"`
		Discipline string `json:"discipline"`
	} `json:"deck"`
	Cards []struct {
		ID       string   `json:"id"`
		Title    string   `json:"title"`
		Summary  string   `json:"summary"`
		Body     string   `json:"body"`
		Keywords []string `json:"keywords"`
	} `json:"cards"`
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func deckSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		b, err := json.Marshal(deckFileSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		comp := jsonschema.NewCompiler()
		const url = "schema://deck-file.json"
		if err := comp.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = comp.Compile(url)
	})
	return compiledSchema, compileErr
}

// LoadDeckFile parses, validates and installs a custom deck file into the
// catalog. appVersion is the running app's version ("dev" skips the
// compatibility gate). Returns the installed deck.
func LoadDeckFile(path, appVersion string) (Deck, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("read deck file: %w", err)
	}

	schema, err := deckSchema()
	if err != nil {
		return Deck{}, fmt.Errorf("compile deck schema: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Deck{}, fmt.Errorf("parse deck file %s: %w", path, err)
	}
	if err := schema.Validate(parsed); err != nil {
		return Deck{}, fmt.Errorf("deck file %s failed validation: %w", path, err)
	}

	var df deckFile
	if err := json.Unmarshal(raw, &df); err != nil {
		return Deck{}, fmt.Errorf("decode deck file %s: %w", path, err)
	}

	if err := checkVersionGate(df.MinAppVersion, appVersion); err != nil {
		return Deck{}, err
	}

	deck := Deck{
		ID:         df.Deck.ID,
		Title:      df.Deck.Title,
		Discipline: Discipline(df.Deck.Discipline),
	}
	cards := make([]Card, 0, len(df.Cards))
	for _, fc := range df.Cards {
		deck.CardIDs = append(deck.CardIDs, fc.ID)
		cards = append(cards, Card{
			ID:       fc.ID,
			DeckID:   deck.ID,
			Title:    fc.Title,
			Summary:  fc.Summary,
			Body:     fc.Body,
			Keywords: fc.Keywords,
		})
	}

	// Rebuild the catalog with the new content so all structural checks
	// run against the combined set.
	rebuilt, err := buildCatalog(
		append(append([]Deck(nil), c.decks...), deck),
		append(append([]Card(nil), c.cards...), cards...),
		append([]Lesson(nil), c.lessons...),
	)
	if err != nil {
		return Deck{}, fmt.Errorf("install deck %q: %w", deck.ID, err)
	}
	c = rebuilt

	return deck, nil
}

// checkVersionGate verifies the deck's min_app_version against the running
// app version. Dev builds skip the gate.
func checkVersionGate(minVersion, appVersion string) error {
	if appVersion == "" || appVersion == "dev" {
		return nil
	}
	minV := canonical(minVersion)
	appV := canonical(appVersion)
	if !semver.IsValid(minV) {
		return fmt.Errorf("deck file has invalid min_app_version %q", minVersion)
	}
	if !semver.IsValid(appV) {
		return fmt.Errorf("invalid app version %q", appVersion)
	}
	if semver.Compare(appV, minV) < 0 {
		return fmt.Errorf("deck requires app version %s or newer (running %s)", minVersion, appVersion)
	}
	return nil
}

func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
