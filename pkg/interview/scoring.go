package interview

import "math"

// LevelAverage computes the mean score of a level's questions at full
// precision. Unscored questions count as missing: the mean is taken only
// over scored questions, and 0 is returned when none are scored.
func LevelAverage(questions []*Question) float64 {
	sum := 0
	count := 0
	for _, q := range questions {
		if q.Scored() {
			sum += q.Score
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// SessionTotalScore converts the mean of completed level averages (0..10)
// to a percentage (0..100). Incomplete levels do not contribute; with no
// completed level the score is 0.
func SessionTotalScore(levels []*Level) float64 {
	sum := 0.0
	count := 0
	for _, level := range levels {
		if level.IsCompleted {
			sum += level.AverageScore
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count) / 10 * 100
}

// RoundScore rounds half-up, matching the 1..10 integer score domain.
// Only used at reporting boundaries; aggregation keeps full precision.
func RoundScore(v float64) int {
	return int(math.Floor(v + 0.5))
}
