package content

import (
	"math/rand/v2"
	"testing"

	"github.com/abhisek/cogniz/internal/session"
	"github.com/abhisek/cogniz/internal/skills"
)

func testLibrary(t *testing.T, activities ...Activity) *Library {
	t.Helper()
	lib := newLibrary()
	for _, a := range activities {
		lib.add(a)
	}
	return lib
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestResolve_ReviewSourcePrefersDueIDs(t *testing.T) {
	due := playableActivity("due-1", "evaluate", "medium")
	other := playableActivity("fresh-1", "evaluate", "medium")
	lib := testLibrary(t, due, other)
	r := NewResolver(lib, testRNG())

	got := r.Resolve(ResolveRequest{
		Skill:            skills.Evaluate,
		TargetDifficulty: 3,
		Source:           session.SourceReviewQueue,
		AgeBand:          BandAdult,
		DueActivityIDs:   []string{"due-1"},
	})

	if got == nil || got.ID != "due-1" {
		t.Errorf("got %v, want due-1", got)
	}
}

func TestResolve_ReviewSourceSkipsExcludedAndFallsBack(t *testing.T) {
	due := playableActivity("due-1", "evaluate", "medium")
	fresh := playableActivity("fresh-1", "evaluate", "medium")
	lib := testLibrary(t, due, fresh)
	r := NewResolver(lib, testRNG())

	got := r.Resolve(ResolveRequest{
		Skill:            skills.Evaluate,
		TargetDifficulty: 3,
		Source:           session.SourceReviewQueue,
		AgeBand:          BandAdult,
		ExcludeIDs:       []string{"due-1"},
		DueActivityIDs:   []string{"due-1"},
	})

	if got == nil || got.ID != "fresh-1" {
		t.Errorf("got %v, want fresh-1 from new pool fallback", got)
	}
}

func TestResolve_NewPoolPrefersMatchingSkill(t *testing.T) {
	match := playableActivity("a-analyze", "analyze", "medium")
	other := playableActivity("a-infer", "infer", "medium")
	lib := testLibrary(t, match, other)
	r := NewResolver(lib, testRNG())

	for i := 0; i < 10; i++ {
		got := r.Resolve(ResolveRequest{
			Skill:            skills.Analyze,
			TargetDifficulty: 3,
			Source:           session.SourceNewPool,
			AgeBand:          BandAdult,
		})
		if got == nil || got.ID != "a-analyze" {
			t.Fatalf("got %v, want a-analyze every time", got)
		}
	}
}

func TestResolve_RanksByDifficultyDistance(t *testing.T) {
	// Nine same-skill activities: only the eight closest to the target
	// may be picked, so the lone far-off one never appears.
	var activities []Activity
	for i := 0; i < 8; i++ {
		a := playableActivity("near", "analyze", "medium")
		a.ID = a.ID + string(rune('a'+i))
		activities = append(activities, a)
	}
	far := playableActivity("far-off", "analyze", "easy") // distance 2 from target 3
	activities = append(activities, far)
	lib := testLibrary(t, activities...)
	r := NewResolver(lib, testRNG())

	for i := 0; i < 50; i++ {
		got := r.Resolve(ResolveRequest{
			Skill:            skills.Analyze,
			TargetDifficulty: 3,
			Source:           session.SourceNewPool,
			AgeBand:          BandAdult,
		})
		if got == nil {
			t.Fatal("expected an activity")
		}
		if got.ID == "far-off" {
			t.Fatal("far-off activity picked despite eight closer candidates")
		}
	}
}

func TestResolve_FallsBackToAnySkill(t *testing.T) {
	only := playableActivity("only-explain", "explain", "medium")
	lib := testLibrary(t, only)
	r := NewResolver(lib, testRNG())

	got := r.Resolve(ResolveRequest{
		Skill:            skills.Infer,
		TargetDifficulty: 3,
		Source:           session.SourceNewPool,
		AgeBand:          BandAdult,
	})

	if got == nil || got.ID != "only-explain" {
		t.Errorf("got %v, want cross-skill fallback", got)
	}
}

func TestResolve_EmptyPoolReturnsNil(t *testing.T) {
	r := NewResolver(testLibrary(t), testRNG())

	got := r.Resolve(ResolveRequest{
		Skill:            skills.Analyze,
		TargetDifficulty: 3,
		Source:           session.SourceNewPool,
		AgeBand:          BandAdult,
	})

	if got != nil {
		t.Errorf("got %v, want nil for empty pool", got)
	}
}

func TestResolve_UnplayableActivitiesFiltered(t *testing.T) {
	broken := playableActivity("broken", "analyze", "medium")
	broken.Content.Choices = []string{"Option A for q1", "Option B for q1"}
	lib := testLibrary(t, broken)
	r := NewResolver(lib, testRNG())

	got := r.Resolve(ResolveRequest{
		Skill:            skills.Analyze,
		TargetDifficulty: 3,
		Source:           session.SourceNewPool,
		AgeBand:          BandAdult,
	})

	if got != nil {
		t.Errorf("got %v, want nil when only placeholder content exists", got)
	}
}

func TestResolve_BandIsolation(t *testing.T) {
	adult := playableActivity("adult-1", "analyze", "medium")
	kid := playableActivity("kid-1", "analyze", "medium")
	kid.AgeBand = Band10to13
	lib := testLibrary(t, adult, kid)
	r := NewResolver(lib, testRNG())

	got := r.Resolve(ResolveRequest{
		Skill:            skills.Analyze,
		TargetDifficulty: 3,
		Source:           session.SourceNewPool,
		AgeBand:          Band10to13,
	})

	if got == nil || got.ID != "kid-1" {
		t.Errorf("got %v, want kid-1 only", got)
	}
}
