package utils

import "math"

// CalculateScore converts a correct-answer count into a score on a 10-point
// scale, rounded to two decimal places. A slot with no questions scores 0.
func CalculateScore(correctAnswers, totalQuestions int) float64 {
	if totalQuestions == 0 {
		return 0
	}

	pointsPerQuestion := 10 / float64(totalQuestions)
	score := float64(correctAnswers) * pointsPerQuestion
	score = math.Min(score, 10)

	return math.Round(score*100) / 100
}
