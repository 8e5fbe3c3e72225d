package feedback

import (
	"strings"
	"testing"

	"github.com/abhisek/cogniz/internal/content"
	"github.com/abhisek/cogniz/internal/skills"
)

func baseInput() Input {
	return Input{
		AgeBand:       content.BandAdult,
		Skill:         skills.Evaluate,
		CorrectChoice: "the strong option",
		ChosenChoice:  "the weak option",
		Explanation:   "Because the evidence says so.",
		StrategyTip:   "Check the sample size.",
	}
}

func TestGenerate_CorrectFirstTry(t *testing.T) {
	in := baseInput()
	in.IsCorrect = true
	in.AttemptNumber = 1

	out := Generate(in)

	if out.Title != "Correct and strategic" {
		t.Errorf("Title = %q", out.Title)
	}
	if !strings.Contains(out.Message, "the weak option") {
		t.Errorf("Message should quote the chosen choice: %q", out.Message)
	}
	if out.Celebrate != celebrateBySkill[skills.Evaluate] {
		t.Errorf("Celebrate = %q, want skill celebration", out.Celebrate)
	}
	if out.Hint != "" {
		t.Error("correct answer should carry no hint")
	}
}

func TestGenerate_CorrectOnRetry(t *testing.T) {
	in := baseInput()
	in.IsCorrect = true
	in.AttemptNumber = 2

	out := Generate(in)

	if out.Celebrate != "You improved after feedback and adjusted strategy." {
		t.Errorf("Celebrate = %q, want recovery line", out.Celebrate)
	}
}

func TestGenerate_WrongFirstTryCarriesHint(t *testing.T) {
	in := baseInput()
	in.AttemptNumber = 1

	out := Generate(in)

	if out.Title != "Close, retry with strategy" {
		t.Errorf("Title = %q", out.Title)
	}
	if out.Hint != hintBySkill[skills.Evaluate].long {
		t.Errorf("Hint = %q, want long evaluate hint", out.Hint)
	}
	if out.Celebrate != "" {
		t.Error("wrong answer should not celebrate")
	}
}

func TestGenerate_WrongTwiceWalksThrough(t *testing.T) {
	in := baseInput()
	in.AttemptNumber = 2

	out := Generate(in)

	if out.Title != "Best reasoning walkthrough" {
		t.Errorf("Title = %q", out.Title)
	}
	if !strings.Contains(out.Message, "the strong option") {
		t.Errorf("Message should reveal the correct choice: %q", out.Message)
	}
	if !strings.Contains(out.Message, in.StrategyTip) {
		t.Errorf("long form should fold in the strategy tip: %q", out.Message)
	}
	if out.Hint != "" {
		t.Error("final walkthrough carries no hint")
	}
}

func TestGenerate_ShortFormForYoungBands(t *testing.T) {
	for _, band := range []content.AgeBand{content.Band4to6, content.Band7to9} {
		in := baseInput()
		in.AgeBand = band
		in.AttemptNumber = 1

		out := Generate(in)

		if out.Title != "Not yet" {
			t.Errorf("band %s: Title = %q, want short form", band, out.Title)
		}
		if out.Hint != hintBySkill[skills.Evaluate].short {
			t.Errorf("band %s: Hint = %q, want short hint", band, out.Hint)
		}
		if strings.Contains(out.Message, "the weak option") {
			t.Errorf("band %s: short message should not quote choices: %q", band, out.Message)
		}
	}
}

func TestHintFor_AllSkillsCovered(t *testing.T) {
	for _, sk := range skills.All() {
		if HintFor(sk, content.BandAdult) == "" {
			t.Errorf("skill %s has no long hint", sk)
		}
		if HintFor(sk, content.Band4to6) == "" {
			t.Errorf("skill %s has no short hint", sk)
		}
	}
}
