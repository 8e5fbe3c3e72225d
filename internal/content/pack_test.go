package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/cogniz/internal/skills"
)

func TestLoadBuiltin(t *testing.T) {
	lib, err := LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin: %v", err)
	}
	if lib.Len() == 0 {
		t.Fatal("builtin packs should not be empty")
	}

	// Every builtin activity must be playable and cover a known skill.
	for _, a := range lib.All() {
		if !a.IsPlayable() {
			t.Errorf("builtin activity %s is not playable", a.ID)
		}
		if !skills.IsValid(a.ResolvedSkill()) {
			t.Errorf("builtin activity %s has unknown skill %q", a.ID, a.Skill)
		}
	}
}

func TestLoadBuiltin_CoversAllSkills(t *testing.T) {
	lib, err := LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin: %v", err)
	}

	covered := make(map[skills.Skill]bool)
	for _, a := range lib.ForBand(BandAdult) {
		covered[a.ResolvedSkill()] = true
	}
	for _, sk := range skills.All() {
		if !covered[sk] {
			t.Errorf("adult band has no activity for skill %s", sk)
		}
	}
}

func TestLoadDir_OverridesByID(t *testing.T) {
	dir := t.TempDir()
	pack := `[{
		"id": "interpret-headline-1",
		"age_band": "adult",
		"type": "multiple_choice",
		"skill": "interpret",
		"difficulty": "hard",
		"title": "patched",
		"content": {
			"prompt": "A replacement prompt?",
			"choices": ["yes", "no"],
			"correctIndex": 0,
			"explanation": "patched",
			"tip": "patched"
		}
	}]`
	if err := os.WriteFile(filepath.Join(dir, "patch.json"), []byte(pack), 0o644); err != nil {
		t.Fatal(err)
	}

	builtin, err := LoadBuiltin()
	if err != nil {
		t.Fatal(err)
	}
	lib, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	if lib.Len() != builtin.Len() {
		t.Errorf("Len = %d, want %d (override, not append)", lib.Len(), builtin.Len())
	}
	got := lib.ByID("interpret-headline-1")
	if got == nil || got.Title != "patched" {
		t.Errorf("activity not overridden: %+v", got)
	}
}

func TestLoadDir_MissingDirUsesBuiltin(t *testing.T) {
	lib, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("LoadDir on missing dir: %v", err)
	}
	if lib.Len() == 0 {
		t.Error("missing dir should still load builtin packs")
	}
}

func TestLoadDir_RejectsMalformedPack(t *testing.T) {
	dir := t.TempDir()
	bad := `[{"id": "x"}]` // missing required fields
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadDir(dir); err == nil {
		t.Error("schema-invalid pack should fail to load")
	}
}

func TestCheckDir_ReportsPlaceholderChoices(t *testing.T) {
	dir := t.TempDir()
	pack := `[{
		"id": "seeded",
		"age_band": "adult",
		"type": "multiple_choice",
		"skill": "interpret",
		"difficulty": "easy",
		"title": "seed artifact",
		"content": {
			"prompt": "What comes next?",
			"choices": ["Option A for question one", "Option B for question one"],
			"correctIndex": 0,
			"explanation": "e",
			"tip": "t"
		}
	}]`
	if err := os.WriteFile(filepath.Join(dir, "seed.json"), []byte(pack), 0o644); err != nil {
		t.Fatal(err)
	}

	issues, err := CheckDir(dir)
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("issues = %v, want exactly one playability report", issues)
	}
	if issues[0].ActivityID != "seeded" {
		t.Errorf("issue id = %s, want seeded", issues[0].ActivityID)
	}
}

func TestCheckBuiltin_Clean(t *testing.T) {
	issues, err := CheckBuiltin()
	if err != nil {
		t.Fatalf("CheckBuiltin: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("builtin packs should be clean, got %v", issues)
	}
}
