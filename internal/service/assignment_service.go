package service

import (
	"context"
	"fmt"
	"homework_check_backend/internal/model"
	"homework_check_backend/internal/repository"
	"homework_check_backend/internal/util"
)

const maxQuestionCount = 100

type AssignmentService struct {
	Store repository.AssignmentStore
	Keys  repository.AnswerKeyStore
}

func NewAssignmentService(store repository.AssignmentStore, keys repository.AnswerKeyStore) *AssignmentService {
	return &AssignmentService{Store: store, Keys: keys}
}

type CreateAssignmentReq struct {
	Title       string   `json:"title" binding:"required"`
	FolderID    *string  `json:"folderId"`
	ShowAnswers *bool    `json:"showAnswers"`
	ClassIDs    []string `json:"classIds" binding:"required,min=1"`
	// QuestionCount 预建 N 道空的选择题答案
	QuestionCount *int `json:"questionCount" binding:"omitempty,min=1,max=100"`
}

type UpdateAssignmentReq struct {
	Title       *string          `json:"title" binding:"omitempty,min=1"`
	FolderID    Nullable[string] `json:"folderId" swaggertype:"string"`
	Completed   *bool            `json:"completed"`
	ShowAnswers *bool            `json:"showAnswers"`
	ClassIDs    *[]string        `json:"classIds"`
}

type ReorderAssignmentsReq struct {
	AssignmentIDs []string `json:"assignmentIds" binding:"required"`
}

func (s *AssignmentService) withClasses(ctx context.Context, a model.Assignment) (model.AssignmentWithClasses, error) {
	classIDs, err := s.Store.GetAssignmentClassIDs(ctx, a.ID)
	if err != nil {
		return model.AssignmentWithClasses{}, err
	}
	return model.AssignmentWithClasses{Assignment: a, ClassIDs: classIDs}, nil
}

func (s *AssignmentService) withClassesAll(ctx context.Context, assignments []model.Assignment) ([]model.AssignmentWithClasses, error) {
	out := make([]model.AssignmentWithClasses, 0, len(assignments))
	for _, a := range assignments {
		item, err := s.withClasses(ctx, a)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *AssignmentService) List(ctx context.Context) ([]model.AssignmentWithClasses, error) {
	assignments, err := s.Store.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}
	return s.withClassesAll(ctx, assignments)
}

func (s *AssignmentService) ListByClass(ctx context.Context, classID string) ([]model.AssignmentWithClasses, error) {
	assignments, err := s.Store.ListAssignmentsByClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	return s.withClassesAll(ctx, assignments)
}

func (s *AssignmentService) Get(ctx context.Context, id string) (*model.AssignmentWithClasses, error) {
	a, err := s.Store.GetAssignment(ctx, id)
	if err != nil {
		return nil, err
	}
	item, err := s.withClasses(ctx, *a)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *AssignmentService) Create(ctx context.Context, req CreateAssignmentReq) (*model.AssignmentWithClasses, error) {
	if len(req.ClassIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one class is required", util.ErrInvalidInput)
	}
	if req.QuestionCount != nil && (*req.QuestionCount < 1 || *req.QuestionCount > maxQuestionCount) {
		return nil, fmt.Errorf("%w: questionCount must be between 1 and %d", util.ErrInvalidInput, maxQuestionCount)
	}

	assignment := &model.Assignment{
		Title:       req.Title,
		FolderID:    req.FolderID,
		ShowAnswers: true,
	}
	if req.ShowAnswers != nil {
		assignment.ShowAnswers = *req.ShowAnswers
	}
	if err := s.Store.CreateAssignment(ctx, assignment, req.ClassIDs); err != nil {
		return nil, err
	}

	if req.QuestionCount != nil {
		keys := make([]model.AnswerKey, *req.QuestionCount)
		for i := range keys {
			keys[i] = model.AnswerKey{QuestionNumber: i + 1, QuestionType: model.MultipleChoice}
		}
		if _, err := s.Keys.ReplaceAnswerKeys(ctx, assignment.ID, keys); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, assignment.ID)
}

func (s *AssignmentService) Update(ctx context.Context, id string, req UpdateAssignmentReq) (*model.AssignmentWithClasses, error) {
	assignment, err := s.Store.GetAssignment(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		assignment.Title = *req.Title
	}
	if req.FolderID.Set {
		assignment.FolderID = req.FolderID.Value
	}
	if req.Completed != nil {
		assignment.Completed = *req.Completed
	}
	if req.ShowAnswers != nil {
		assignment.ShowAnswers = *req.ShowAnswers
	}
	if err := s.Store.UpdateAssignment(ctx, assignment); err != nil {
		return nil, err
	}
	if req.ClassIDs != nil {
		if err := s.Store.SetAssignmentClasses(ctx, id, *req.ClassIDs); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *AssignmentService) Delete(ctx context.Context, id string) error {
	return s.Store.DeleteAssignment(ctx, id)
}

func (s *AssignmentService) Reorder(ctx context.Context, ids []string) ([]model.AssignmentWithClasses, error) {
	if err := s.Store.ReorderAssignments(ctx, ids); err != nil {
		return nil, err
	}
	return s.List(ctx)
}
