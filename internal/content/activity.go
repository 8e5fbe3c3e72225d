package content

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/abhisek/cogniz/internal/skills"
)

// AgeBand buckets activities by audience.
type AgeBand string

const (
	Band4to6   AgeBand = "4-6"
	Band7to9   AgeBand = "7-9"
	Band10to13 AgeBand = "10-13"
	Band14to18 AgeBand = "14-18"
	BandAdult  AgeBand = "adult"
)

// Difficulty is stored loosely in pack files: authors write "easy",
// "medium", "hard", or a bare number. Both forms unmarshal.
type Difficulty string

func (d *Difficulty) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = Difficulty(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*d = Difficulty(strconv.Itoa(int(n)))
	return nil
}

// Level maps the difficulty label onto the 1-5 scale.
func (d Difficulty) Level() int {
	return skills.DifficultyToLevel(string(d))
}

// Body is the playable payload of an activity.
type Body struct {
	Story        string   `json:"story,omitempty"`
	Method       string   `json:"method,omitempty"`
	EvidenceNote string   `json:"evidence_note,omitempty"`
	Debrief      string   `json:"debrief,omitempty"`
	CTSkill      string   `json:"ct_skill,omitempty"`
	Prompt       string   `json:"prompt"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
	Tip          string   `json:"tip"`
}

// Activity is one playable round of content.
type Activity struct {
	ID         string     `json:"id"`
	AgeBand    AgeBand    `json:"age_band"`
	Type       string     `json:"type"`
	Skill      string     `json:"skill"`
	Difficulty Difficulty `json:"difficulty"`
	Title      string     `json:"title"`
	Content    Body       `json:"content"`
}

// ResolvedSkill prefers the body's explicit tag over the legacy
// top-level skill column.
func (a *Activity) ResolvedSkill() skills.Skill {
	if a.Content.CTSkill != "" {
		return skills.Normalize(a.Content.CTSkill)
	}
	return skills.Normalize(a.Skill)
}

// DifficultyLevel is the activity's position on the 1-5 scale.
func (a *Activity) DifficultyLevel() int {
	return a.Difficulty.Level()
}

// placeholderChoices are seed-data artifacts that must never reach a
// learner. Matching is substring on the trimmed lowercase choice.
var placeholderChoices = []string{
	"red blue red blue next car",
	"red blue red blue next sleep",
	"option a for",
	"option b for",
	"option c for",
	"option d for",
}

func isPlaceholderChoice(choice string) bool {
	normalized := strings.ToLower(strings.TrimSpace(choice))
	if normalized == "" {
		return true
	}
	for _, token := range placeholderChoices {
		if strings.Contains(normalized, token) {
			return true
		}
	}
	return false
}

// IsPlayable reports whether the activity can be shown: a prompt, at
// least two choices, a correct index within range, and no placeholder
// choice text.
func (a *Activity) IsPlayable() bool {
	if a.Content.Prompt == "" || len(a.Content.Choices) < 2 {
		return false
	}
	if a.Content.CorrectIndex < 0 || a.Content.CorrectIndex >= len(a.Content.Choices) {
		return false
	}
	for _, choice := range a.Content.Choices {
		if isPlaceholderChoice(choice) {
			return false
		}
	}
	return true
}
