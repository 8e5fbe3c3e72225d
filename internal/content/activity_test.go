package content

import (
	"encoding/json"
	"testing"

	"github.com/abhisek/cogniz/internal/skills"
)

func playableActivity(id string, skill string, difficulty string) Activity {
	return Activity{
		ID:         id,
		AgeBand:    BandAdult,
		Type:       "multiple_choice",
		Skill:      skill,
		Difficulty: Difficulty(difficulty),
		Title:      "t",
		Content: Body{
			Prompt:       "Which option?",
			Choices:      []string{"first", "second", "third"},
			CorrectIndex: 1,
			Explanation:  "because",
			Tip:          "think",
		},
	}
}

func TestActivity_IsPlayable(t *testing.T) {
	a := playableActivity("a1", "analyze", "easy")
	if !a.IsPlayable() {
		t.Fatal("well-formed activity should be playable")
	}

	missingPrompt := a
	missingPrompt.Content.Prompt = ""
	if missingPrompt.IsPlayable() {
		t.Error("empty prompt must not be playable")
	}

	oneChoice := a
	oneChoice.Content.Choices = []string{"only"}
	if oneChoice.IsPlayable() {
		t.Error("fewer than two choices must not be playable")
	}

	badIndex := a
	badIndex.Content.CorrectIndex = 3
	if badIndex.IsPlayable() {
		t.Error("out-of-range correct index must not be playable")
	}

	negIndex := a
	negIndex.Content.CorrectIndex = -1
	if negIndex.IsPlayable() {
		t.Error("negative correct index must not be playable")
	}
}

func TestActivity_PlaceholderChoicesBlocked(t *testing.T) {
	blocked := []string{
		"red blue red blue next car",
		"Red Blue Red Blue NEXT sleep",
		"  Option A for question three  ",
		"option d for anything",
		"",
		"   ",
	}
	for _, choice := range blocked {
		a := playableActivity("a1", "analyze", "easy")
		a.Content.Choices = []string{"fine choice", choice}
		if a.IsPlayable() {
			t.Errorf("choice %q should block playability", choice)
		}
	}

	ok := playableActivity("a1", "analyze", "easy")
	ok.Content.Choices = []string{"an option about cars", "red and blue flags"}
	ok.Content.CorrectIndex = 0
	if !ok.IsPlayable() {
		t.Error("legitimate choices mentioning colors should stay playable")
	}
}

func TestActivity_ResolvedSkill(t *testing.T) {
	a := playableActivity("a1", "fair_test", "easy")
	if got := a.ResolvedSkill(); got != skills.Analyze {
		t.Errorf("legacy skill fair_test = %s, want analyze", got)
	}

	a.Content.CTSkill = "self_regulate"
	if got := a.ResolvedSkill(); got != skills.SelfRegulate {
		t.Errorf("ct_skill tag = %s, want self_regulate (tag wins)", got)
	}
}

func TestDifficulty_UnmarshalFlexible(t *testing.T) {
	var a Activity
	if err := json.Unmarshal([]byte(`{"id":"x","difficulty":"hard"}`), &a); err != nil {
		t.Fatalf("string difficulty: %v", err)
	}
	if a.DifficultyLevel() != 5 {
		t.Errorf("hard = level %d, want 5", a.DifficultyLevel())
	}

	if err := json.Unmarshal([]byte(`{"id":"x","difficulty":4}`), &a); err != nil {
		t.Fatalf("numeric difficulty: %v", err)
	}
	if a.DifficultyLevel() != 4 {
		t.Errorf("4 = level %d, want 4", a.DifficultyLevel())
	}

	if err := json.Unmarshal([]byte(`{"id":"x","difficulty":"unknown"}`), &a); err != nil {
		t.Fatalf("unknown difficulty: %v", err)
	}
	if a.DifficultyLevel() != 2 {
		t.Errorf("unknown = level %d, want default 2", a.DifficultyLevel())
	}
}
