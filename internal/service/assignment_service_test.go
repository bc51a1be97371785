package service

import (
	"context"
	"encoding/json"
	"homework_check_backend/internal/model"
	"homework_check_backend/internal/repository"
	"homework_check_backend/internal/util"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignmentSeedsEmptyKeys(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	class, err := f.classes.Create(ctx, CreateClassReq{Name: "A"})
	require.NoError(t, err)

	hw, err := f.assignments.Create(ctx, CreateAssignmentReq{
		Title:         "Quiz",
		ClassIDs:      []string{class.ID},
		QuestionCount: lo.ToPtr(3),
		ShowAnswers:   lo.ToPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, hw.ShowAnswers)
	assert.Equal(t, []string{class.ID}, hw.ClassIDs)

	keys, err := f.keys.List(ctx, hw.ID)
	require.NoError(t, err)
	require.Len(t, keys, 3)
	for i, k := range keys {
		assert.Equal(t, i+1, k.QuestionNumber)
		assert.Empty(t, k.CorrectAnswer)
		assert.Equal(t, model.MultipleChoice, k.QuestionType)
	}
}

func TestCreateAssignmentValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.assignments.Create(ctx, CreateAssignmentReq{Title: "Quiz"})
	assert.ErrorIs(t, err, util.ErrInvalidInput)

	_, err = f.assignments.Create(ctx, CreateAssignmentReq{Title: "Quiz", ClassIDs: []string{"c"}, QuestionCount: lo.ToPtr(101)})
	assert.ErrorIs(t, err, util.ErrInvalidInput)

	all, err := f.assignments.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateAssignmentFolderPatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	folder, err := f.folders.Create(ctx, CreateFolderReq{Name: "Week 1"})
	require.NoError(t, err)
	_, hwID := f.seed(t)

	var req UpdateAssignmentReq
	require.NoError(t, json.Unmarshal([]byte(`{"folderId":"`+folder.ID+`"}`), &req))
	hw, err := f.assignments.Update(ctx, hwID, req)
	require.NoError(t, err)
	require.NotNil(t, hw.FolderID)
	assert.Equal(t, folder.ID, *hw.FolderID)

	req = UpdateAssignmentReq{}
	require.NoError(t, json.Unmarshal([]byte(`{"completed":true}`), &req))
	hw, err = f.assignments.Update(ctx, hwID, req)
	require.NoError(t, err)
	assert.True(t, hw.Completed)
	require.NotNil(t, hw.FolderID)

	req = UpdateAssignmentReq{}
	require.NoError(t, json.Unmarshal([]byte(`{"folderId":null}`), &req))
	hw, err = f.assignments.Update(ctx, hwID, req)
	require.NoError(t, err)
	assert.Nil(t, hw.FolderID)
}

func TestUpdateAssignmentClasses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, hwID := f.seed(t)
	other, err := f.classes.Create(ctx, CreateClassReq{Name: "B"})
	require.NoError(t, err)

	hw, err := f.assignments.Update(ctx, hwID, UpdateAssignmentReq{ClassIDs: &[]string{other.ID, other.ID}})
	require.NoError(t, err)
	assert.Equal(t, []string{other.ID}, hw.ClassIDs)

	byClass, err := f.assignments.ListByClass(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, byClass, 1)
	assert.Equal(t, hwID, byClass[0].ID)

	_, err = f.assignments.Update(ctx, "missing", UpdateAssignmentReq{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteAssignment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	classID, hwID := f.seed(t, "a")

	require.NoError(t, f.assignments.Delete(ctx, hwID))
	_, err := f.assignments.Get(ctx, hwID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	byClass, err := f.assignments.ListByClass(ctx, classID)
	require.NoError(t, err)
	assert.Empty(t, byClass)
}

func TestNullable(t *testing.T) {
	var v struct {
		A Nullable[string] `json:"a"`
		B Nullable[string] `json:"b"`
		C Nullable[string] `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"x","b":null}`), &v))
	assert.True(t, v.A.Set)
	assert.Equal(t, "x", *v.A.Value)
	assert.True(t, v.B.Set)
	assert.Nil(t, v.B.Value)
	assert.False(t, v.C.Set)
}
