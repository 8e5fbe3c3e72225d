package skills

import "strings"

// Skill represents one of the six fixed reasoning competencies.
type Skill string

const (
	Interpret    Skill = "interpret"
	Analyze      Skill = "analyze"
	Evaluate     Skill = "evaluate"
	Infer        Skill = "infer"
	Explain      Skill = "explain"
	SelfRegulate Skill = "self_regulate"
)

// All returns every skill in display order.
func All() []Skill {
	return []Skill{Interpret, Analyze, Evaluate, Infer, Explain, SelfRegulate}
}

// Count is the number of fixed skills.
const Count = 6

// Label returns a human-readable name for the skill.
func (s Skill) Label() string {
	switch s {
	case Interpret:
		return "Interpret"
	case Analyze:
		return "Analyze"
	case Evaluate:
		return "Evaluate"
	case Infer:
		return "Infer"
	case Explain:
		return "Explain"
	case SelfRegulate:
		return "Self-Regulate"
	default:
		return string(s)
	}
}

// Description returns the one-line explanation shown on the skill tree.
func (s Skill) Description() string {
	switch s {
	case Interpret:
		return "Understand what information means and separate observation from assumption."
	case Analyze:
		return "Break complex tasks into parts and detect relationships."
	case Evaluate:
		return "Judge evidence quality and source credibility."
	case Infer:
		return "Draw the best conclusion from available information."
	case Explain:
		return "Justify claims clearly with evidence."
	case SelfRegulate:
		return "Monitor thinking, catch mistakes, and adjust strategy."
	default:
		return ""
	}
}

// Icon returns the display icon for the skill.
func (s Skill) Icon() string {
	switch s {
	case Interpret:
		return "🔍"
	case Analyze:
		return "🧩"
	case Evaluate:
		return "⚖️"
	case Infer:
		return "💡"
	case Explain:
		return "🗣️"
	case SelfRegulate:
		return "🧭"
	default:
		return "✦"
	}
}

// legacyMap folds the skill labels used by older content packs into the
// fixed six-skill set.
var legacyMap = map[string]Skill{
	"observation":              Interpret,
	"observation_vs_inference": Interpret,
	"classification":           Interpret,
	"pattern":                  Interpret,
	"fair_test":                Analyze,
	"variables":                Analyze,
	"sequencing":               Analyze,
	"tools":                    Analyze,
	"evidence":                 Evaluate,
	"sample_size":              Evaluate,
	"credibility":              Evaluate,
	"source_check":             Evaluate,
	"source-check":             Evaluate,
	"data_analysis":            Evaluate,
	"cause_effect":             Infer,
	"cause-effect":             Infer,
	"prediction":               Infer,
	"explain":                  Explain,
	"cer":                      Explain,
	"self_regulate":            SelfRegulate,
	"self_regulation":          SelfRegulate,
	"elimination":              SelfRegulate,
	"engineering_design":       SelfRegulate,
}

// Normalize maps an arbitrary skill label onto the fixed skill set.
// Unknown labels fall back to Interpret; the function is total and never errors.
func Normalize(input string) Skill {
	key := strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(input))), "_")
	for _, s := range All() {
		if string(s) == key {
			return s
		}
	}
	if s, ok := legacyMap[key]; ok {
		return s
	}
	return Interpret
}

// IsValid reports whether s is one of the six fixed skills.
func IsValid(s Skill) bool {
	switch s {
	case Interpret, Analyze, Evaluate, Infer, Explain, SelfRegulate:
		return true
	}
	return false
}
