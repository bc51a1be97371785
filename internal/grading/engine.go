package grading

import (
	"errors"
	"homework_check_backend/internal/model"
	"slices"

	"github.com/samber/lo"
)

var (
	ErrNotConfigured       = errors.New("No answer keys configured for this assignment")
	ErrAnswerCountMismatch = errors.New("Number of answers doesn't match number of questions")
)

// Score grades answers against keys by position. keys must be ordered by
// question number.
func Score(keys []model.AnswerKey, answers []string) (int, error) {
	if len(keys) == 0 {
		return 0, ErrNotConfigured
	}
	if len(answers) != len(keys) {
		return 0, ErrAnswerCountMismatch
	}
	return countCorrect(keys, answers), nil
}

func countCorrect(keys []model.AnswerKey, answers []string) int {
	score := 0
	for i, key := range keys {
		if Equal(answerAt(answers, i), key.CorrectAnswer, key.QuestionType) {
			score++
		}
	}
	return score
}

// 越界视为空答案
func answerAt(answers []string, i int) string {
	if i < 0 || i >= len(answers) {
		return ""
	}
	return answers[i]
}

// Snapshot returns the question numbers of keys in order.
func Snapshot(keys []model.AnswerKey) []int {
	return lo.Map(keys, func(k model.AnswerKey, _ int) int {
		return k.QuestionNumber
	})
}

// ShapeMatches reports whether a submission was taken against the same
// set of questions as keys. Submissions without a snapshot fall back to
// comparing answer counts.
func ShapeMatches(sub *model.Submission, keys []model.AnswerKey) bool {
	if sub.QuestionNumbers != nil {
		return slices.Equal(sub.QuestionNumbers, Snapshot(keys))
	}
	return len(sub.Answers) == len(keys)
}

// Regrade recomputes the score of sub against keys. eligible is false when
// the submission's shape no longer matches the keys, in which case score is
// the stored one and changed is false.
func Regrade(sub *model.Submission, keys []model.AnswerKey) (score int, changed, eligible bool) {
	if len(keys) == 0 || !ShapeMatches(sub, keys) {
		return sub.Score, false, false
	}
	score = countCorrect(keys, sub.Answers)
	return score, score != sub.Score, true
}
