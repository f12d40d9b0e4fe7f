package simon

import (
	"math"
	"strconv"
	"time"
)

// Accuracy returns the percentage of correct answers, rounded to the
// nearest integer. It is 0 when nothing was answered.
func Accuracy(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// AverageTime returns the round length divided by the number of answers,
// formatted with one decimal place, or "0" when nothing was answered.
func AverageTime(roundSeconds, total int) string {
	if total <= 0 {
		return "0"
	}
	return strconv.FormatFloat(secsPerAnswer(roundSeconds, total), 'f', 1, 64)
}

func secsPerAnswer(roundSeconds, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(roundSeconds) / float64(total)
}

// reactionStats returns the mean and fastest reaction time.
func reactionStats(reactions []time.Duration) (mean, best time.Duration) {
	if len(reactions) == 0 {
		return 0, 0
	}
	var sum time.Duration
	best = reactions[0]
	for _, r := range reactions {
		sum += r
		if r < best {
			best = r
		}
	}
	return sum / time.Duration(len(reactions)), best
}
