package skills

import "testing"

func TestNormalize_ExactMatch(t *testing.T) {
	for _, s := range All() {
		if got := Normalize(string(s)); got != s {
			t.Errorf("Normalize(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestNormalize_LegacyLabels(t *testing.T) {
	cases := []struct {
		input string
		want  Skill
	}{
		{"observation", Interpret},
		{"observation_vs_inference", Interpret},
		{"fair_test", Analyze},
		{"sequencing", Analyze},
		{"evidence", Evaluate},
		{"source-check", Evaluate},
		{"cause_effect", Infer},
		{"cause-effect", Infer},
		{"prediction", Infer},
		{"cer", Explain},
		{"self_regulation", SelfRegulate},
		{"elimination", SelfRegulate},
		{"engineering_design", SelfRegulate},
	}
	for _, tc := range cases {
		if got := Normalize(tc.input); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalize_Whitespace(t *testing.T) {
	if got := Normalize("  Self Regulate  "); got != SelfRegulate {
		t.Errorf("Normalize with spaces = %q, want self_regulate", got)
	}
	if got := Normalize("FAIR TEST"); got != Analyze {
		t.Errorf("Normalize uppercase = %q, want analyze", got)
	}
}

func TestNormalize_UnknownFallsBack(t *testing.T) {
	if got := Normalize("quantum_chromodynamics"); got != Interpret {
		t.Errorf("Normalize unknown = %q, want interpret fallback", got)
	}
	if got := Normalize(""); got != Interpret {
		t.Errorf("Normalize empty = %q, want interpret fallback", got)
	}
}

func TestDifficultyToLevel(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"easy", 1},
		{"medium", 3},
		{"hard", 5},
		{"Easy", 1},
		{"2", 2},
		{"7", 5},
		{"0", 1},
		{"-3", 1},
		{"3.6", 4},
		{"banana", 2},
		{"", 2},
	}
	for _, tc := range cases {
		if got := DifficultyToLevel(tc.input); got != tc.want {
			t.Errorf("DifficultyToLevel(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestLevelToDifficulty_Roundtrip(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{1, "easy"},
		{2, "easy"},
		{3, "medium"},
		{4, "medium"},
		{5, "hard"},
	}
	for _, tc := range cases {
		if got := LevelToDifficulty(tc.level); got != tc.want {
			t.Errorf("LevelToDifficulty(%d) = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestAll_CountMatches(t *testing.T) {
	if len(All()) != Count {
		t.Errorf("All() has %d skills, want %d", len(All()), Count)
	}
	for _, s := range All() {
		if !IsValid(s) {
			t.Errorf("All() returned invalid skill %q", s)
		}
	}
}
