package session

import (
	"testing"
	"time"
)

func TestNextStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		current    int
		lastPlayed string
		want       int
	}{
		{"first ever round", 0, "", 1},
		{"same day keeps count", 4, "2026-03-10", 4},
		{"next day extends", 4, "2026-03-09", 5},
		{"two day gap resets", 9, "2026-03-08", 1},
		{"long gap resets", 30, "2026-01-01", 1},
		{"corrupt zero on same day floors to one", 0, "2026-03-10", 1},
	}

	for _, tt := range tests {
		if got := NextStreak(tt.current, tt.lastPlayed, now); got != tt.want {
			t.Errorf("%s: NextStreak = %d, want %d", tt.name, got, tt.want)
		}
	}
}
