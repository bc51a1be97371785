package service

import (
	"context"
	"errors"
	"fmt"
	"homework_check_backend/internal/config"
	"homework_check_backend/internal/model"
	"homework_check_backend/internal/repository"
	"homework_check_backend/internal/util"
)

type SettingsService struct {
	Store    repository.SettingsStore
	Defaults config.DefaultsConfig
}

func NewSettingsService(store repository.SettingsStore, defaults config.DefaultsConfig) *SettingsService {
	return &SettingsService{Store: store, Defaults: defaults}
}

type UpdateSettingsReq struct {
	AppTitle            *string `json:"appTitle"`
	HighScoreMessage    *string `json:"highScoreMessage"`
	LowScoreMessage     *string `json:"lowScoreMessage"`
	PerfectScoreMessage *string `json:"perfectScoreMessage"`
}

type CreateRangeReq struct {
	MinScore *int   `json:"minScore" binding:"required,min=0,max=100"`
	MaxScore *int   `json:"maxScore" binding:"required,min=0,max=101"`
	Message  string `json:"message" binding:"required"`
}

type UpdateRangeReq struct {
	MinScore *int    `json:"minScore" binding:"omitempty,min=0,max=100"`
	MaxScore *int    `json:"maxScore" binding:"omitempty,min=0,max=101"`
	Message  *string `json:"message" binding:"omitempty,min=1"`
}

type ReorderRangesReq struct {
	RangeIDs []string `json:"rangeIds" binding:"required,min=1"`
}

// Get returns the settings row, creating it from the configured defaults
// on first use.
func (s *SettingsService) Get(ctx context.Context) (*model.Settings, error) {
	settings, err := s.Store.GetSettings(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	settings = &model.Settings{
		AppTitle:            s.Defaults.AppTitle,
		HighScoreMessage:    s.Defaults.HighScoreMessage,
		LowScoreMessage:     s.Defaults.LowScoreMessage,
		PerfectScoreMessage: s.Defaults.PerfectScoreMessage,
	}
	if err := s.Store.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Messages is Get with blank messages replaced by the defaults.
func (s *SettingsService) Messages(ctx context.Context) (*model.Settings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	out := *settings
	if out.HighScoreMessage == "" {
		out.HighScoreMessage = s.Defaults.HighScoreMessage
	}
	if out.LowScoreMessage == "" {
		out.LowScoreMessage = s.Defaults.LowScoreMessage
	}
	if out.PerfectScoreMessage == "" {
		out.PerfectScoreMessage = s.Defaults.PerfectScoreMessage
	}
	return &out, nil
}

func (s *SettingsService) Update(ctx context.Context, req UpdateSettingsReq) (*model.Settings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if req.AppTitle != nil {
		settings.AppTitle = *req.AppTitle
	}
	if req.HighScoreMessage != nil {
		settings.HighScoreMessage = *req.HighScoreMessage
	}
	if req.LowScoreMessage != nil {
		settings.LowScoreMessage = *req.LowScoreMessage
	}
	if req.PerfectScoreMessage != nil {
		settings.PerfectScoreMessage = *req.PerfectScoreMessage
	}
	if err := s.Store.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *SettingsService) ListRanges(ctx context.Context) ([]model.EncouragementRange, error) {
	ranges, err := s.Store.ListEncouragementRanges(ctx)
	if ranges == nil && err == nil {
		ranges = []model.EncouragementRange{}
	}
	return ranges, err
}

func checkBounds(r *model.EncouragementRange) error {
	if r.MinScore >= r.MaxScore {
		return fmt.Errorf("%w: minScore must be below maxScore", util.ErrInvalidInput)
	}
	return nil
}

func (s *SettingsService) CreateRange(ctx context.Context, req CreateRangeReq) (*model.EncouragementRange, error) {
	r := &model.EncouragementRange{
		MinScore: *req.MinScore,
		MaxScore: *req.MaxScore,
		Message:  req.Message,
	}
	if err := checkBounds(r); err != nil {
		return nil, err
	}
	if err := s.Store.CreateEncouragementRange(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *SettingsService) UpdateRange(ctx context.Context, id string, req UpdateRangeReq) (*model.EncouragementRange, error) {
	r, err := s.Store.GetEncouragementRange(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.MinScore != nil {
		r.MinScore = *req.MinScore
	}
	if req.MaxScore != nil {
		r.MaxScore = *req.MaxScore
	}
	if req.Message != nil {
		r.Message = *req.Message
	}
	if err := checkBounds(r); err != nil {
		return nil, err
	}
	if err := s.Store.UpdateEncouragementRange(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *SettingsService) DeleteRange(ctx context.Context, id string) error {
	return s.Store.DeleteEncouragementRange(ctx, id)
}

func (s *SettingsService) ReorderRanges(ctx context.Context, ids []string) ([]model.EncouragementRange, error) {
	if err := s.Store.ReorderEncouragementRanges(ctx, ids); err != nil {
		return nil, err
	}
	return s.ListRanges(ctx)
}
