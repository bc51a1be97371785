package repository

import (
	"context"
	"homework_check_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) CreateSubmission(ctx context.Context, sub *model.Submission) error {
	return r.DB.WithContext(ctx).Create(sub).Error
}

func (r *SubmissionRepository) GetSubmission(ctx context.Context, id string) (*model.Submission, error) {
	var sub model.Submission
	if err := r.DB.WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &sub, nil
}

func (r *SubmissionRepository) ListSubmissions(ctx context.Context) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.DB.WithContext(ctx).Order("submitted_at asc").Find(&subs).Error
	return subs, err
}

func (r *SubmissionRepository) GetSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.DB.WithContext(ctx).
		Where("assignment_id = ?", assignmentID).
		Order("submitted_at asc").
		Find(&subs).Error
	return subs, err
}

func (r *SubmissionRepository) GetSubmissionsByClass(ctx context.Context, classID string) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.DB.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("submitted_at asc").
		Find(&subs).Error
	return subs, err
}

// UpdateSubmissionScore only touches score and total_questions.
func (r *SubmissionRepository) UpdateSubmissionScore(ctx context.Context, id string, score, totalQuestions int) error {
	return r.DB.WithContext(ctx).Model(&model.Submission{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"score":           score,
			"total_questions": totalQuestions,
		}).Error
}

func (r *SubmissionRepository) DeleteSubmission(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&model.Submission{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
