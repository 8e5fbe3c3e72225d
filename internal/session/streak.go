package session

import "time"

// NextStreak applies the daily streak rule: playing again today keeps
// the count, playing the day after extends it, any longer gap resets to
// 1. lastPlayed is a YYYY-MM-DD local day key; empty means never played.
func NextStreak(current int, lastPlayed string, now time.Time) int {
	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	switch lastPlayed {
	case today:
		if current < 1 {
			return 1
		}
		return current
	case yesterday:
		return current + 1
	default:
		return 1
	}
}
