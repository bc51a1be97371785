package service

import (
	"context"
	"homework_check_backend/internal/model"
	"homework_check_backend/internal/repository"
)

type FolderService struct {
	Store repository.FolderStore
}

func NewFolderService(store repository.FolderStore) *FolderService {
	return &FolderService{Store: store}
}

type CreateFolderReq struct {
	Name string `json:"name" binding:"required"`
}

type UpdateFolderReq struct {
	Name      *string `json:"name" binding:"omitempty,min=1"`
	Completed *bool   `json:"completed"`
}

type ReorderFoldersReq struct {
	FolderIDs []string `json:"folderIds" binding:"required"`
}

func (s *FolderService) List(ctx context.Context) ([]model.Folder, error) {
	return s.Store.ListFolders(ctx)
}

func (s *FolderService) Create(ctx context.Context, req CreateFolderReq) (*model.Folder, error) {
	folder := &model.Folder{Name: req.Name}
	if err := s.Store.CreateFolder(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

func (s *FolderService) Update(ctx context.Context, id string, req UpdateFolderReq) (*model.Folder, error) {
	folder, err := s.Store.GetFolder(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		folder.Name = *req.Name
	}
	if req.Completed != nil {
		folder.Completed = *req.Completed
	}
	if err := s.Store.UpdateFolder(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

// Delete removes the folder; its assignments move to the top level.
func (s *FolderService) Delete(ctx context.Context, id string) error {
	return s.Store.DeleteFolder(ctx, id)
}

func (s *FolderService) Reorder(ctx context.Context, ids []string) ([]model.Folder, error) {
	if err := s.Store.ReorderFolders(ctx, ids); err != nil {
		return nil, err
	}
	return s.Store.ListFolders(ctx)
}
