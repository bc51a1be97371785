package grading

import (
	"homework_check_backend/internal/model"

	"github.com/samber/lo"
)

// IncorrectAnswer describes one wrong answer of a submission.
type IncorrectAnswer struct {
	QuestionNumber int     `json:"questionNumber"`
	StudentAnswer  string  `json:"studentAnswer"`
	CorrectAnswer  *string `json:"correctAnswer,omitempty"`
	Comment        *string `json:"comment"`
}

// Incorrect lists the wrong answers of sub in question order. When the keys
// have changed shape since submission the list is empty and stale is true.
func Incorrect(sub *model.Submission, keys []model.AnswerKey) (items []IncorrectAnswer, stale bool) {
	items = []IncorrectAnswer{}
	if !ShapeMatches(sub, keys) {
		return items, true
	}
	for i, key := range keys {
		answer := answerAt(sub.Answers, i)
		if Equal(answer, key.CorrectAnswer, key.QuestionType) {
			continue
		}
		items = append(items, IncorrectAnswer{
			QuestionNumber: key.QuestionNumber,
			StudentAnswer:  answer,
			CorrectAnswer:  lo.ToPtr(key.CorrectAnswer),
			Comment:        key.Comment,
		})
	}
	return items, false
}

// IncorrectQuestionNumbers is the compact form used by teacher listings.
func IncorrectQuestionNumbers(sub *model.Submission, keys []model.AnswerKey) []int {
	items, _ := Incorrect(sub, keys)
	return lo.Map(items, func(it IncorrectAnswer, _ int) int {
		return it.QuestionNumber
	})
}

// HideCorrectAnswers strips the expected answers from items.
func HideCorrectAnswers(items []IncorrectAnswer) []IncorrectAnswer {
	return lo.Map(items, func(it IncorrectAnswer, _ int) IncorrectAnswer {
		it.CorrectAnswer = nil
		return it
	})
}
