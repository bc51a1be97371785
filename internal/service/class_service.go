package service

import (
	"context"
	"homework_check_backend/internal/model"
	"homework_check_backend/internal/repository"

	"github.com/samber/lo"
)

type ClassService struct {
	Store repository.ClassStore
}

func NewClassService(store repository.ClassStore) *ClassService {
	return &ClassService{Store: store}
}

type CreateClassReq struct {
	Name string `json:"name" binding:"required"`
}

type UpdateClassReq struct {
	Name      *string `json:"name" binding:"omitempty,min=1"`
	Completed *bool   `json:"completed"`
	Hidden    *bool   `json:"hidden"`
}

type ReorderClassesReq struct {
	ClassIDs []string `json:"classIds" binding:"required"`
}

func (s *ClassService) List(ctx context.Context) ([]model.Class, error) {
	return s.Store.ListClasses(ctx)
}

// ListVisible returns the classes students can pick from.
func (s *ClassService) ListVisible(ctx context.Context) ([]model.Class, error) {
	classes, err := s.Store.ListClasses(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(classes, func(c model.Class, _ int) bool {
		return !c.Hidden && !c.Completed
	}), nil
}

func (s *ClassService) Create(ctx context.Context, req CreateClassReq) (*model.Class, error) {
	class := &model.Class{Name: req.Name}
	if err := s.Store.CreateClass(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *ClassService) Update(ctx context.Context, id string, req UpdateClassReq) (*model.Class, error) {
	class, err := s.Store.GetClass(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		class.Name = *req.Name
	}
	if req.Completed != nil {
		class.Completed = *req.Completed
	}
	if req.Hidden != nil {
		class.Hidden = *req.Hidden
	}
	if err := s.Store.UpdateClass(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *ClassService) Delete(ctx context.Context, id string) error {
	return s.Store.DeleteClass(ctx, id)
}

func (s *ClassService) Reorder(ctx context.Context, ids []string) ([]model.Class, error) {
	if err := s.Store.ReorderClasses(ctx, ids); err != nil {
		return nil, err
	}
	return s.Store.ListClasses(ctx)
}
