// Package feedback turns a round outcome into the short coaching text
// shown after each answer. Pure and table-driven; younger age bands get
// shorter phrasing.
package feedback

import (
	"fmt"

	"github.com/abhisek/cogniz/internal/content"
	"github.com/abhisek/cogniz/internal/skills"
)

// Input describes one answered attempt.
type Input struct {
	AgeBand       content.AgeBand
	Skill         skills.Skill
	IsCorrect     bool
	CorrectChoice string
	ChosenChoice  string
	Explanation   string
	StrategyTip   string
	AttemptNumber int // 1 or 2
}

// Output is the feedback card for the attempt. Celebrate is set on
// correct answers, Hint on a wrong first attempt.
type Output struct {
	Title     string
	Message   string
	Tip       string
	Celebrate string
	Hint      string
}

var celebrateBySkill = map[skills.Skill]string{
	skills.Interpret:    "You separated what you observed from what you assumed.",
	skills.Analyze:      "You broke the problem into clear parts before choosing.",
	skills.Evaluate:     "You checked evidence quality instead of guessing.",
	skills.Infer:        "You made the strongest conclusion from available clues.",
	skills.Explain:      "You connected the answer to evidence and reasoning.",
	skills.SelfRegulate: "You adjusted strategy when the first attempt did not work.",
}

type skillHint struct {
	short string
	long  string
}

var hintBySkill = map[skills.Skill]skillHint{
	skills.Interpret: {
		short: "Hint: pick what you can directly SEE or MEASURE.",
		long:  "Hint: separate direct observation from interpretation. Choose the option that can be verified immediately.",
	},
	skills.Analyze: {
		short: "Hint: keep only one variable changing.",
		long:  "Hint: break the task into steps and check whether each option keeps a fair comparison.",
	},
	skills.Evaluate: {
		short: "Hint: choose the strongest evidence, not the loudest claim.",
		long:  "Hint: ask which option uses reliable evidence, controls, and direct support for the claim.",
	},
	skills.Infer: {
		short: "Hint: follow the clues to the most likely result.",
		long:  "Hint: infer only what the provided evidence supports; avoid adding facts that were not given.",
	},
	skills.Explain: {
		short: "Hint: match claim + evidence together.",
		long:  "Hint: pick the answer that best connects the claim with evidence and a clear reason.",
	},
	skills.SelfRegulate: {
		short: "Hint: pause and check what might be missing.",
		long:  "Hint: review your first approach, identify missing information, and select the option that corrects that gap.",
	},
}

// HintFor returns the skill's hint line for the given band, used when a
// retry opens before the learner answers again.
func HintFor(skill skills.Skill, band content.AgeBand) string {
	h := hintBySkill[skill]
	if shortForm(band) {
		return h.short
	}
	return h.long
}

// Generate builds the feedback card for one answered attempt.
func Generate(in Input) Output {
	short := shortForm(in.AgeBand)

	if in.IsCorrect {
		out := Output{
			Title: "Correct and strategic",
			Tip:   in.StrategyTip,
		}
		if short {
			out.Title = "Strong move"
			out.Message = in.Explanation
		} else {
			out.Message = fmt.Sprintf("You chose %q. %s", in.ChosenChoice, in.Explanation)
		}
		if in.AttemptNumber == 2 {
			out.Celebrate = "You improved after feedback and adjusted strategy."
		} else {
			out.Celebrate = celebrateBySkill[in.Skill]
		}
		return out
	}

	if in.AttemptNumber == 1 {
		out := Output{
			Title: "Close, retry with strategy",
			Tip:   in.StrategyTip,
			Hint:  HintFor(in.Skill, in.AgeBand),
		}
		if short {
			out.Title = "Not yet"
			out.Message = "That option does not fit best yet."
		} else {
			out.Message = fmt.Sprintf("%q is not the strongest option for this task.", in.ChosenChoice)
		}
		return out
	}

	out := Output{
		Title: "Best reasoning walkthrough",
		Tip:   in.StrategyTip,
	}
	if short {
		out.Title = "Let's lock it in"
		out.Message = fmt.Sprintf("Best answer: %q. %s", in.CorrectChoice, in.Explanation)
	} else {
		out.Message = fmt.Sprintf("Best answer: %q. %s Use this strategy next: %s", in.CorrectChoice, in.Explanation, in.StrategyTip)
	}
	return out
}

func shortForm(band content.AgeBand) bool {
	return band == content.Band4to6 || band == content.Band7to9
}
