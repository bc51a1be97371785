package service

import (
	"context"
	"fmt"
	"homework_check_backend/internal/model"
	"homework_check_backend/internal/repository"
	"homework_check_backend/internal/util"
	"sort"
	"strings"
)

type Regrader interface {
	RegradeAssignment(ctx context.Context, assignmentID string) RegradeReport
}

type AnswerKeyService struct {
	Assignments repository.AssignmentStore
	Keys        repository.AnswerKeyStore
	Regrader    Regrader
}

func NewAnswerKeyService(assignments repository.AssignmentStore, keys repository.AnswerKeyStore, regrader Regrader) *AnswerKeyService {
	return &AnswerKeyService{Assignments: assignments, Keys: keys, Regrader: regrader}
}

type AnswerKeyReq struct {
	QuestionNumber int                `json:"questionNumber" binding:"min=1"`
	CorrectAnswer  string             `json:"correctAnswer"`
	QuestionType   model.QuestionType `json:"questionType" binding:"omitempty,oneof=multiple-choice essay"`
	Comment        *string            `json:"comment"`
}

type SaveAnswerKeysReq struct {
	AnswerKeys []AnswerKeyReq `json:"answerKeys" binding:"required,dive"`
}

func (s *AnswerKeyService) List(ctx context.Context, assignmentID string) ([]model.AnswerKey, error) {
	keys, err := s.Keys.GetAnswerKeys(ctx, assignmentID)
	if keys == nil && err == nil {
		keys = []model.AnswerKey{}
	}
	return keys, err
}

// Replace swaps the assignment's answer keys and rescores its submissions.
// The save stands even when rescoring runs into trouble.
func (s *AnswerKeyService) Replace(ctx context.Context, assignmentID string, reqs []AnswerKeyReq) ([]model.AnswerKey, RegradeReport, error) {
	if _, err := s.Assignments.GetAssignment(ctx, assignmentID); err != nil {
		return nil, RegradeReport{}, err
	}

	keys, err := buildKeys(reqs)
	if err != nil {
		return nil, RegradeReport{}, err
	}

	saved, err := s.Keys.ReplaceAnswerKeys(ctx, assignmentID, keys)
	if err != nil {
		return nil, RegradeReport{}, err
	}
	if saved == nil {
		saved = []model.AnswerKey{}
	}

	report := s.Regrader.RegradeAssignment(context.WithoutCancel(ctx), assignmentID)
	return saved, report, nil
}

func buildKeys(reqs []AnswerKeyReq) ([]model.AnswerKey, error) {
	seen := make(map[int]bool, len(reqs))
	keys := make([]model.AnswerKey, 0, len(reqs))
	for _, r := range reqs {
		if r.QuestionNumber < 1 {
			return nil, fmt.Errorf("%w: questionNumber must be positive", util.ErrInvalidInput)
		}
		if seen[r.QuestionNumber] {
			return nil, fmt.Errorf("%w: duplicate questionNumber %d", util.ErrInvalidInput, r.QuestionNumber)
		}
		seen[r.QuestionNumber] = true

		qt := r.QuestionType
		switch qt {
		case "":
			qt = model.MultipleChoice
		case model.MultipleChoice, model.Essay:
		default:
			return nil, fmt.Errorf("%w: unknown questionType %q", util.ErrInvalidInput, qt)
		}

		comment := r.Comment
		if comment != nil && strings.TrimSpace(*comment) == "" {
			comment = nil
		}

		keys = append(keys, model.AnswerKey{
			QuestionNumber: r.QuestionNumber,
			CorrectAnswer:  r.CorrectAnswer,
			QuestionType:   qt,
			Comment:        comment,
		})
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].QuestionNumber < keys[j].QuestionNumber })
	return keys, nil
}
