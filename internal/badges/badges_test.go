package badges

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/cogniz/internal/skills"
)

var testDay = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func TestCandidateKeys_TrackMilestones(t *testing.T) {
	keys := CandidateKeys(Input{Skill: skills.Analyze, NewLevel: 3, IsCorrect: true, Now: testDay})
	if !contains(keys, "track_analyze_adept") {
		t.Errorf("level 3 should include adept, got %v", keys)
	}
	if contains(keys, "track_analyze_master") {
		t.Errorf("level 3 should not include master, got %v", keys)
	}

	keys = CandidateKeys(Input{Skill: skills.Analyze, NewLevel: 5, IsCorrect: true, Now: testDay})
	if !contains(keys, "track_analyze_adept") || !contains(keys, "track_analyze_master") {
		t.Errorf("level 5 should include adept and master, got %v", keys)
	}
}

func TestCandidateKeys_BossClearAndDaily(t *testing.T) {
	keys := CandidateKeys(Input{Skill: skills.Infer, NewLevel: 1, IsBoss: true, IsCorrect: true, Now: testDay})
	if !contains(keys, "boss_challenge_clear") {
		t.Errorf("boss win should include clear badge, got %v", keys)
	}
	if !contains(keys, "boss_daily_2026-03-10") {
		t.Errorf("boss win should include dated daily badge, got %v", keys)
	}

	keys = CandidateKeys(Input{Skill: skills.Infer, NewLevel: 1, IsBoss: true, IsCorrect: false, Now: testDay})
	if contains(keys, "boss_challenge_clear") || contains(keys, "boss_daily_2026-03-10") {
		t.Errorf("boss loss should award nothing boss-related, got %v", keys)
	}
}

func TestCandidateKeys_RetryRecovery(t *testing.T) {
	keys := CandidateKeys(Input{Skill: skills.Explain, NewLevel: 1, IsCorrect: true, SolvedOnRetry: true, Now: testDay})
	if !contains(keys, "strategy_retry_recovery") {
		t.Errorf("retry win should include recovery badge, got %v", keys)
	}
}

func TestCandidateKeys_StreakThresholds(t *testing.T) {
	tests := []struct {
		streak int
		want   []string
	}{
		{2, nil},
		{3, []string{"streak_3"}},
		{7, []string{"streak_3", "streak_7"}},
		{14, []string{"streak_3", "streak_7", "streak_14"}},
		{30, []string{"streak_3", "streak_7", "streak_14"}},
	}
	for _, tt := range tests {
		keys := CandidateKeys(Input{Skill: skills.Interpret, NewLevel: 1, Streak: tt.streak, Now: testDay})
		for _, w := range tt.want {
			if !contains(keys, w) {
				t.Errorf("streak %d: missing %s in %v", tt.streak, w, keys)
			}
		}
		for _, k := range keys {
			if !contains(tt.want, k) {
				t.Errorf("streak %d: unexpected key %s", tt.streak, k)
			}
		}
	}
}

func TestCandidateKeys_Deduplicated(t *testing.T) {
	keys := CandidateKeys(Input{Skill: skills.Analyze, NewLevel: 5, IsBoss: true, IsCorrect: true, SolvedOnRetry: true, Streak: 14, Now: testDay})
	seen := make(map[string]bool)
	for _, k := range keys {
		if seen[k] {
			t.Errorf("duplicate key %s in %v", k, keys)
		}
		seen[k] = true
	}
}

func TestLabelAndIcon(t *testing.T) {
	tests := []struct {
		key       string
		wantLabel string
	}{
		{"track_self_regulate_adept", "Self-Regulate Adept"},
		{"track_analyze_master", "Analyze Master"},
		{"boss_challenge_clear", "Boss Challenge Clear"},
		{"strategy_retry_recovery", "Strategy Recovery"},
		{"streak_7", "7-Day Streak"},
		{"boss_daily_2026-03-10", "Daily Boss 2026-03-10"},
	}
	for _, tt := range tests {
		if got := Label(tt.key); got != tt.wantLabel {
			t.Errorf("Label(%s) = %q, want %q", tt.key, got, tt.wantLabel)
		}
		if Icon(tt.key) == "" {
			t.Errorf("Icon(%s) is empty", tt.key)
		}
	}
}

type fakeBadgeStore struct {
	earned   map[string]bool
	inserted []string
	failNext bool
}

func (f *fakeBadgeStore) EarnedBadgeKeys(_ context.Context, _ string, keys []string) (map[string]bool, error) {
	out := make(map[string]bool)
	for _, k := range keys {
		if f.earned[k] {
			out[k] = true
		}
	}
	return out, nil
}

func (f *fakeBadgeStore) InsertBadges(_ context.Context, _ string, keys []string) error {
	f.inserted = append(f.inserted, keys...)
	for _, k := range keys {
		f.earned[k] = true
	}
	return nil
}

func TestService_AwardDedupes(t *testing.T) {
	store := &fakeBadgeStore{earned: map[string]bool{"streak_3": true}}
	svc := NewService(store)

	fresh, err := svc.Award(context.Background(), "learner-1", []string{"streak_3", "streak_7"})
	if err != nil {
		t.Fatalf("Award: %v", err)
	}
	if len(fresh) != 1 || fresh[0] != "streak_7" {
		t.Errorf("fresh = %v, want [streak_7]", fresh)
	}
	if len(store.inserted) != 1 {
		t.Errorf("inserted = %v, want only streak_7", store.inserted)
	}

	// Second award of the same keys yields nothing.
	fresh, err = svc.Award(context.Background(), "learner-1", []string{"streak_3", "streak_7"})
	if err != nil {
		t.Fatalf("Award: %v", err)
	}
	if len(fresh) != 0 {
		t.Errorf("repeat award = %v, want none", fresh)
	}
}

func TestService_NilStoreDegrades(t *testing.T) {
	svc := NewService(nil)

	fresh, err := svc.Award(context.Background(), "learner-1", []string{"streak_3"})
	if err != nil {
		t.Fatalf("Award: %v", err)
	}
	if len(fresh) != 1 {
		t.Errorf("fresh = %v, want candidates passed through", fresh)
	}
}

func TestService_SessionAccumulator(t *testing.T) {
	store := &fakeBadgeStore{earned: map[string]bool{}}
	svc := NewService(store)

	_, _ = svc.Award(context.Background(), "learner-1", []string{"streak_3"})
	_, _ = svc.Award(context.Background(), "learner-1", []string{"streak_7"})

	if len(svc.SessionBadges) != 2 {
		t.Errorf("SessionBadges = %v, want 2 entries", svc.SessionBadges)
	}

	svc.ResetSession()
	if len(svc.SessionBadges) != 0 {
		t.Error("ResetSession should clear the accumulator")
	}
}

func contains(keys []string, want string) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}
