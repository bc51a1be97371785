package repository

import (
	"context"
	"database/sql"
	"errors"
	"homework_check_backend/internal/model"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type ClassStore interface {
	ListClasses(ctx context.Context) ([]model.Class, error)
	GetClass(ctx context.Context, id string) (*model.Class, error)
	CreateClass(ctx context.Context, class *model.Class) error
	UpdateClass(ctx context.Context, class *model.Class) error
	DeleteClass(ctx context.Context, id string) error
	ReorderClasses(ctx context.Context, ids []string) error
}

type FolderStore interface {
	ListFolders(ctx context.Context) ([]model.Folder, error)
	GetFolder(ctx context.Context, id string) (*model.Folder, error)
	CreateFolder(ctx context.Context, folder *model.Folder) error
	UpdateFolder(ctx context.Context, folder *model.Folder) error
	DeleteFolder(ctx context.Context, id string) error
	ReorderFolders(ctx context.Context, ids []string) error
}

type AssignmentStore interface {
	ListAssignments(ctx context.Context) ([]model.Assignment, error)
	ListAssignmentsByClass(ctx context.Context, classID string) ([]model.Assignment, error)
	GetAssignment(ctx context.Context, id string) (*model.Assignment, error)
	CreateAssignment(ctx context.Context, assignment *model.Assignment, classIDs []string) error
	UpdateAssignment(ctx context.Context, assignment *model.Assignment) error
	DeleteAssignment(ctx context.Context, id string) error
	ReorderAssignments(ctx context.Context, ids []string) error
	GetAssignmentClassIDs(ctx context.Context, assignmentID string) ([]string, error)
	SetAssignmentClasses(ctx context.Context, assignmentID string, classIDs []string) error
}

type AnswerKeyStore interface {
	// GetAnswerKeys returns keys ordered by question number.
	GetAnswerKeys(ctx context.Context, assignmentID string) ([]model.AnswerKey, error)
	// ReplaceAnswerKeys deletes every key of the assignment and inserts keys.
	ReplaceAnswerKeys(ctx context.Context, assignmentID string, keys []model.AnswerKey) ([]model.AnswerKey, error)
}

type SubmissionStore interface {
	CreateSubmission(ctx context.Context, sub *model.Submission) error
	GetSubmission(ctx context.Context, id string) (*model.Submission, error)
	ListSubmissions(ctx context.Context) ([]model.Submission, error)
	GetSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]model.Submission, error)
	GetSubmissionsByClass(ctx context.Context, classID string) ([]model.Submission, error)
	UpdateSubmissionScore(ctx context.Context, id string, score, totalQuestions int) error
	DeleteSubmission(ctx context.Context, id string) error
}

// SettingsStore covers the settings row and the encouragement ranges.
type SettingsStore interface {
	GetSettings(ctx context.Context) (*model.Settings, error)
	SaveSettings(ctx context.Context, settings *model.Settings) error
	ListEncouragementRanges(ctx context.Context) ([]model.EncouragementRange, error)
	GetEncouragementRange(ctx context.Context, id string) (*model.EncouragementRange, error)
	CreateEncouragementRange(ctx context.Context, r *model.EncouragementRange) error
	UpdateEncouragementRange(ctx context.Context, r *model.EncouragementRange) error
	DeleteEncouragementRange(ctx context.Context, id string) error
	ReorderEncouragementRanges(ctx context.Context, ids []string) error
}

type Storage interface {
	ClassStore
	FolderStore
	AssignmentStore
	AnswerKeyStore
	SubmissionStore
	SettingsStore
}

// GormStorage backs Storage with the gorm repositories.
type GormStorage struct {
	*ClassRepository
	*FolderRepository
	*AssignmentRepository
	*AnswerKeyRepository
	*SubmissionRepository
	*SettingsRepository
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{
		ClassRepository:      NewClassRepository(db),
		FolderRepository:     NewFolderRepository(db),
		AssignmentRepository: NewAssignmentRepository(db),
		AnswerKeyRepository:  NewAnswerKeyRepository(db),
		SubmissionRepository: NewSubmissionRepository(db),
		SettingsRepository:   NewSettingsRepository(db),
	}
}

var (
	_ Storage = (*GormStorage)(nil)
	_ Storage = (*MemoryStorage)(nil)
)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// nextOrder returns max(column)+1, or start when the table is empty.
func nextOrder(tx *gorm.DB, value interface{}, column string, start int) (int, error) {
	var max sql.NullInt64
	if err := tx.Model(value).Select("MAX(" + column + ")").Scan(&max).Error; err != nil {
		return 0, err
	}
	if !max.Valid {
		return start, nil
	}
	return int(max.Int64) + 1, nil
}

// reorder sets column to the slice index of each id. Unknown ids are ignored.
func reorder(ctx context.Context, db *gorm.DB, value interface{}, column string, ids []string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := tx.Model(value).Where("id = ?", id).Update(column, i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
