package repository

import (
	"context"
	"homework_check_backend/internal/model"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) ListAssignments(ctx context.Context) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.WithContext(ctx).Order("sort_order asc, created_at asc").Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) ListAssignmentsByClass(ctx context.Context, classID string) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.WithContext(ctx).
		Joins("JOIN assignment_classes ac ON ac.assignment_id = assignments.id").
		Where("ac.class_id = ?", classID).
		Order("assignments.sort_order asc, assignments.created_at asc").
		Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) GetAssignment(ctx context.Context, id string) (*model.Assignment, error) {
	var assignment model.Assignment
	if err := r.DB.WithContext(ctx).First(&assignment, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &assignment, nil
}

func (r *AssignmentRepository) CreateAssignment(ctx context.Context, assignment *model.Assignment, classIDs []string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := nextOrder(tx, &model.Assignment{}, "sort_order", 1)
		if err != nil {
			return err
		}
		assignment.SortOrder = order
		if err := tx.Create(assignment).Error; err != nil {
			return err
		}
		return setLinks(tx, assignment.ID, classIDs)
	})
}

func (r *AssignmentRepository) UpdateAssignment(ctx context.Context, assignment *model.Assignment) error {
	return r.DB.WithContext(ctx).Save(assignment).Error
}

func (r *AssignmentRepository) DeleteAssignment(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assignment_id = ?", id).Delete(&model.AssignmentClass{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Assignment{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *AssignmentRepository) ReorderAssignments(ctx context.Context, ids []string) error {
	return reorder(ctx, r.DB, &model.Assignment{}, "sort_order", ids)
}

func (r *AssignmentRepository) GetAssignmentClassIDs(ctx context.Context, assignmentID string) ([]string, error) {
	classIDs := []string{}
	err := r.DB.WithContext(ctx).Model(&model.AssignmentClass{}).
		Where("assignment_id = ?", assignmentID).
		Order("class_id asc").
		Pluck("class_id", &classIDs).Error
	if classIDs == nil {
		classIDs = []string{}
	}
	return classIDs, err
}

// SetAssignmentClasses replaces the class links of an assignment.
func (r *AssignmentRepository) SetAssignmentClasses(ctx context.Context, assignmentID string, classIDs []string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return setLinks(tx, assignmentID, classIDs)
	})
}

func setLinks(tx *gorm.DB, assignmentID string, classIDs []string) error {
	if err := tx.Where("assignment_id = ?", assignmentID).Delete(&model.AssignmentClass{}).Error; err != nil {
		return err
	}
	links := lo.Map(lo.Uniq(classIDs), func(classID string, _ int) model.AssignmentClass {
		return model.AssignmentClass{AssignmentID: assignmentID, ClassID: classID}
	})
	if len(links) == 0 {
		return nil
	}
	return tx.Create(&links).Error
}
