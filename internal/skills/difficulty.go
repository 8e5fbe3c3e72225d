package skills

import (
	"math"
	"strconv"
	"strings"
)

// DifficultyToLevel converts a content-pack difficulty label to a 1-5 level.
// Packs encode difficulty as "easy"/"medium"/"hard", a numeric string, or a
// raw number; anything unparseable defaults to 2.
func DifficultyToLevel(input string) int {
	key := strings.ToLower(strings.TrimSpace(input))
	switch key {
	case "easy":
		return 1
	case "medium":
		return 3
	case "hard":
		return 5
	}
	if parsed, err := strconv.ParseFloat(key, 64); err == nil {
		return ClampLevel(int(math.Round(parsed)))
	}
	return 2
}

// LevelToDifficulty converts a 1-5 level back to a difficulty label.
func LevelToDifficulty(level int) string {
	switch {
	case level <= 2:
		return "easy"
	case level <= 4:
		return "medium"
	default:
		return "hard"
	}
}

// ClampLevel bounds a level to the valid 1-5 range.
func ClampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 5 {
		return 5
	}
	return level
}
