package repository

import (
	"context"
	"fmt"
	"homework_check_backend/internal/model"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSqliteStorage(t *testing.T) *GormStorage {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.Class{},
		&model.Folder{},
		&model.Assignment{},
		&model.AssignmentClass{},
		&model.AnswerKey{},
		&model.Submission{},
		&model.Settings{},
		&model.EncouragementRange{},
	))
	return NewGormStorage(db)
}

// backends runs fn against every Storage implementation.
func backends(t *testing.T, fn func(t *testing.T, s Storage)) {
	t.Run("gorm", func(t *testing.T) { fn(t, newSqliteStorage(t)) })
	t.Run("memory", func(t *testing.T) { fn(t, NewMemoryStorage()) })
}

func TestClassLifecycle(t *testing.T) {
	backends(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		a := &model.Class{Name: "1반"}
		b := &model.Class{Name: "2반"}
		require.NoError(t, s.CreateClass(ctx, a))
		require.NoError(t, s.CreateClass(ctx, b))
		assert.NotEmpty(t, a.ID)
		assert.Equal(t, 1, a.SortOrder)
		assert.Equal(t, 2, b.SortOrder)

		require.NoError(t, s.ReorderClasses(ctx, []string{b.ID, a.ID, "missing"}))
		classes, err := s.ListClasses(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{b.ID, a.ID}, lo.Map(classes, func(c model.Class, _ int) string { return c.ID }))

		got, err := s.GetClass(ctx, a.ID)
		require.NoError(t, err)
		got.Hidden = true
		require.NoError(t, s.UpdateClass(ctx, got))
		got, err = s.GetClass(ctx, a.ID)
		require.NoError(t, err)
		assert.True(t, got.Hidden)

		require.NoError(t, s.DeleteClass(ctx, a.ID))
		_, err = s.GetClass(ctx, a.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, s.DeleteClass(ctx, a.ID), ErrNotFound)
	})
}

func TestAssignmentClassLinks(t *testing.T) {
	backends(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		c1 := &model.Class{Name: "A"}
		c2 := &model.Class{Name: "B"}
		require.NoError(t, s.CreateClass(ctx, c1))
		require.NoError(t, s.CreateClass(ctx, c2))

		hw := &model.Assignment{Title: "Unit 1", ShowAnswers: true}
		require.NoError(t, s.CreateAssignment(ctx, hw, []string{c1.ID, c2.ID, c1.ID}))

		ids, err := s.GetAssignmentClassIDs(ctx, hw.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{c1.ID, c2.ID}, ids)

		byClass, err := s.ListAssignmentsByClass(ctx, c2.ID)
		require.NoError(t, err)
		require.Len(t, byClass, 1)
		assert.Equal(t, hw.ID, byClass[0].ID)

		// deleting a class drops its links only
		require.NoError(t, s.DeleteClass(ctx, c2.ID))
		ids, err = s.GetAssignmentClassIDs(ctx, hw.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{c1.ID}, ids)

		require.NoError(t, s.SetAssignmentClasses(ctx, hw.ID, nil))
		ids, err = s.GetAssignmentClassIDs(ctx, hw.ID)
		require.NoError(t, err)
		assert.Empty(t, ids)
		assert.NotNil(t, ids)
	})
}

func TestDeleteFolderDetachesAssignments(t *testing.T) {
	backends(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		folder := &model.Folder{Name: "Midterm"}
		require.NoError(t, s.CreateFolder(ctx, folder))
		hw := &model.Assignment{Title: "Quiz", FolderID: &folder.ID}
		require.NoError(t, s.CreateAssignment(ctx, hw, nil))

		require.NoError(t, s.DeleteFolder(ctx, folder.ID))

		got, err := s.GetAssignment(ctx, hw.ID)
		require.NoError(t, err)
		assert.Nil(t, got.FolderID)
	})
}

func TestReplaceAnswerKeys(t *testing.T) {
	backends(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		hw := &model.Assignment{Title: "Quiz"}
		require.NoError(t, s.CreateAssignment(ctx, hw, nil))

		_, err := s.ReplaceAnswerKeys(ctx, hw.ID, []model.AnswerKey{
			{QuestionNumber: 2, CorrectAnswer: "b", QuestionType: model.MultipleChoice},
			{QuestionNumber: 1, CorrectAnswer: "a", QuestionType: model.MultipleChoice},
		})
		require.NoError(t, err)

		// same question numbers again must not collide with the old rows
		saved, err := s.ReplaceAnswerKeys(ctx, hw.ID, []model.AnswerKey{
			{QuestionNumber: 3, CorrectAnswer: "c", QuestionType: model.Essay, Comment: lo.ToPtr("spelling counts")},
			{QuestionNumber: 1, CorrectAnswer: "d", QuestionType: model.MultipleChoice},
		})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3}, lo.Map(saved, func(k model.AnswerKey, _ int) int { return k.QuestionNumber }))

		keys, err := s.GetAnswerKeys(ctx, hw.ID)
		require.NoError(t, err)
		require.Len(t, keys, 2)
		assert.Equal(t, "d", keys[0].CorrectAnswer)
		assert.Equal(t, model.Essay, keys[1].QuestionType)
		assert.Equal(t, "spelling counts", *keys[1].Comment)
		assert.Equal(t, hw.ID, keys[1].AssignmentID)

		cleared, err := s.ReplaceAnswerKeys(ctx, hw.ID, nil)
		require.NoError(t, err)
		assert.Empty(t, cleared)
	})
}

func TestSubmissionSnapshotRoundTrip(t *testing.T) {
	backends(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		withSnapshot := &model.Submission{
			ClassID: "c", AssignmentID: "a", StudentName: "Kim",
			Answers: []string{"a", "b"}, Score: 1, TotalQuestions: 2,
			QuestionNumbers: []int{1, 2},
		}
		legacy := &model.Submission{
			ClassID: "c", AssignmentID: "a", StudentName: "Lee",
			Answers: []string{"a", "b"}, Score: 2, TotalQuestions: 2,
			SubmittedAt: time.Now().Add(time.Minute),
		}
		require.NoError(t, s.CreateSubmission(ctx, withSnapshot))
		require.NoError(t, s.CreateSubmission(ctx, legacy))

		got, err := s.GetSubmission(ctx, withSnapshot.ID)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, got.QuestionNumbers)
		assert.Equal(t, []string{"a", "b"}, []string(got.Answers))

		got, err = s.GetSubmission(ctx, legacy.ID)
		require.NoError(t, err)
		assert.Nil(t, got.QuestionNumbers)

		require.NoError(t, s.UpdateSubmissionScore(ctx, legacy.ID, 0, 2))
		got, err = s.GetSubmission(ctx, legacy.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Score)
		assert.Equal(t, "Lee", got.StudentName)

		byAssignment, err := s.GetSubmissionsByAssignment(ctx, "a")
		require.NoError(t, err)
		assert.Len(t, byAssignment, 2)

		byClass, err := s.GetSubmissionsByClass(ctx, "c")
		require.NoError(t, err)
		assert.Equal(t, []string{withSnapshot.ID, legacy.ID}, lo.Map(byClass, func(s model.Submission, _ int) string { return s.ID }))

		require.NoError(t, s.DeleteSubmission(ctx, withSnapshot.ID))
		assert.ErrorIs(t, s.DeleteSubmission(ctx, withSnapshot.ID), ErrNotFound)
		all, err := s.ListSubmissions(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestSettingsAndRanges(t *testing.T) {
	backends(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		_, err := s.GetSettings(ctx)
		assert.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, s.SaveSettings(ctx, &model.Settings{AppTitle: "Quiz"}))
		settings, err := s.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Quiz", settings.AppTitle)

		low := &model.EncouragementRange{MinScore: 0, MaxScore: 50, Message: "keep going"}
		high := &model.EncouragementRange{MinScore: 50, MaxScore: 101, Message: "nice"}
		require.NoError(t, s.CreateEncouragementRange(ctx, low))
		require.NoError(t, s.CreateEncouragementRange(ctx, high))
		assert.Equal(t, 0, low.DisplayOrder)
		assert.Equal(t, 1, high.DisplayOrder)

		require.NoError(t, s.ReorderEncouragementRanges(ctx, []string{high.ID, low.ID}))
		ranges, err := s.ListEncouragementRanges(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"nice", "keep going"}, lo.Map(ranges, func(r model.EncouragementRange, _ int) string { return r.Message }))

		require.NoError(t, s.DeleteEncouragementRange(ctx, low.ID))
		_, err = s.GetEncouragementRange(ctx, low.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
