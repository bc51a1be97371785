package repository

import (
	"context"
	"homework_check_backend/internal/model"

	"gorm.io/gorm"
)

type AnswerKeyRepository struct {
	DB *gorm.DB
}

func NewAnswerKeyRepository(db *gorm.DB) *AnswerKeyRepository {
	return &AnswerKeyRepository{DB: db}
}

func (r *AnswerKeyRepository) GetAnswerKeys(ctx context.Context, assignmentID string) ([]model.AnswerKey, error) {
	var keys []model.AnswerKey
	err := r.DB.WithContext(ctx).
		Where("assignment_id = ?", assignmentID).
		Order("question_number asc").
		Find(&keys).Error
	return keys, err
}

func (r *AnswerKeyRepository) ReplaceAnswerKeys(ctx context.Context, assignmentID string, keys []model.AnswerKey) ([]model.AnswerKey, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 硬删除，否则软删除的行会占用 (assignment_id, question_number) 唯一索引
		if err := tx.Unscoped().Where("assignment_id = ?", assignmentID).Delete(&model.AnswerKey{}).Error; err != nil {
			return err
		}
		if len(keys) == 0 {
			return nil
		}
		for i := range keys {
			keys[i].ID = ""
			keys[i].AssignmentID = assignmentID
		}
		return tx.Create(&keys).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetAnswerKeys(ctx, assignmentID)
}
