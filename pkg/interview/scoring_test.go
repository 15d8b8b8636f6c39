package interview

import (
	"math"
	"testing"
)

func scoredQuestions(scores ...int) []*Question {
	qs := make([]*Question, len(scores))
	for i, s := range scores {
		answer := "answer"
		qs[i] = &Question{Text: "q", Answer: &answer, Score: s}
	}
	return qs
}

func TestLevelAverage(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   float64
	}{
		{"all tens", []int{10, 10, 10, 10, 10}, 10},
		{"mixed", []int{7, 8, 6, 9, 5}, 7},
		{"fractional mean kept at full precision", []int{7, 8, 8, 9, 5}, 7.4},
		{"no scored questions", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LevelAverage(scoredQuestions(tt.scores...))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("LevelAverage = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelAverageSkipsUnscored(t *testing.T) {
	qs := scoredQuestions(8, 6)
	qs = append(qs, &Question{Text: "unscored"})

	if got := LevelAverage(qs); got != 7 {
		t.Errorf("LevelAverage = %v, want 7 (unscored question must not drag the mean)", got)
	}
}

func TestSessionTotalScore(t *testing.T) {
	makeLevels := func(averages ...float64) []*Level {
		levels := make([]*Level, len(averages))
		for i, avg := range averages {
			levels[i] = &Level{Number: i + 1, AverageScore: avg, IsCompleted: true}
		}
		return levels
	}

	t.Run("aggregation law", func(t *testing.T) {
		// [8,6,10,4,2] -> mean 6 -> 60%.
		got := SessionTotalScore(makeLevels(8, 6, 10, 4, 2))
		if math.Abs(got-60.0) > 1e-9 {
			t.Errorf("SessionTotalScore = %v, want 60.0", got)
		}
	})

	t.Run("only completed levels contribute", func(t *testing.T) {
		levels := makeLevels(8, 6)
		levels = append(levels, &Level{Number: 3, AverageScore: 10, IsCompleted: false})

		got := SessionTotalScore(levels)
		if math.Abs(got-70.0) > 1e-9 {
			t.Errorf("SessionTotalScore = %v, want 70.0", got)
		}
	})

	t.Run("no completed levels", func(t *testing.T) {
		if got := SessionTotalScore([]*Level{{Number: 1}}); got != 0 {
			t.Errorf("SessionTotalScore = %v, want 0", got)
		}
	})
}

func TestRoundScore(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{7.4, 7},
		{7.5, 8},
		{7.6, 8},
		{0, 0},
		{10, 10},
	}

	for _, tt := range tests {
		if got := RoundScore(tt.in); got != tt.want {
			t.Errorf("RoundScore(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
