package grading

import (
	"homework_check_backend/internal/model"
	"math"
)

const highScoreThreshold = 80

// Percentage rounds score/total to a whole percent.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// EncouragementMessage returns the message of the first range containing
// pct, scanning in display order. Ranges are half open [min, max). With no
// matching range it falls back to the high or low score message.
func EncouragementMessage(pct int, ranges []model.EncouragementRange, settings *model.Settings) string {
	for _, r := range ranges {
		if pct >= r.MinScore && pct < r.MaxScore {
			return r.Message
		}
	}
	if settings == nil {
		return ""
	}
	if pct >= highScoreThreshold {
		return settings.HighScoreMessage
	}
	return settings.LowScoreMessage
}
