package catalog

// Discipline represents a project-management knowledge area.
type Discipline string

const (
	DisciplineScope       Discipline = "scope"
	DisciplineSchedule    Discipline = "schedule"
	DisciplineRisk        Discipline = "risk"
	DisciplineStakeholder Discipline = "stakeholder"
	DisciplineQuality     Discipline = "quality"
)

// AllDisciplines returns all disciplines in display order.
func AllDisciplines() []Discipline {
	return []Discipline{
		DisciplineScope,
		DisciplineSchedule,
		DisciplineRisk,
		DisciplineStakeholder,
		DisciplineQuality,
	}
}

// DisciplineDisplayName returns a human-readable name for a discipline.
func DisciplineDisplayName(d Discipline) string {
	switch d {
	case DisciplineScope:
		return "Scope Management"
	case DisciplineSchedule:
		return "Schedule & Planning"
	case DisciplineRisk:
		return "Risk Management"
	case DisciplineStakeholder:
		return "Stakeholders & Communication"
	case DisciplineQuality:
		return "Quality & Delivery"
	default:
		return string(d)
	}
}

// Deck is a themed collection of reference cards.
type Deck struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Discipline Discipline `json:"discipline"`
	CardIDs    []string   `json:"card_ids"`
}

// Card is a single project-management reference card.
type Card struct {
	ID       string   `json:"id"`
	DeckID   string   `json:"deck_id"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Body     string   `json:"body"`
	Keywords []string `json:"keywords,omitempty"`
}

// Question is one quiz question inside a journey lesson.
type Question struct {
	ID           string   `json:"id"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	XP           int      `json:"xp"`
}

// Lesson is a day-indexed journey lesson built from a deck's material.
type Lesson struct {
	ID        string     `json:"id"`
	Day       int        `json:"day"`
	Title     string     `json:"title"`
	DeckID    string     `json:"deck_id"`
	Questions []Question `json:"questions"`
}
