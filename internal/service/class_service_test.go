package service

import (
	"context"
	"homework_check_backend/internal/repository"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVisibleClasses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	open, err := f.classes.Create(ctx, CreateClassReq{Name: "open"})
	require.NoError(t, err)
	hidden, err := f.classes.Create(ctx, CreateClassReq{Name: "hidden"})
	require.NoError(t, err)
	done, err := f.classes.Create(ctx, CreateClassReq{Name: "done"})
	require.NoError(t, err)

	_, err = f.classes.Update(ctx, hidden.ID, UpdateClassReq{Hidden: lo.ToPtr(true)})
	require.NoError(t, err)
	_, err = f.classes.Update(ctx, done.ID, UpdateClassReq{Completed: lo.ToPtr(true)})
	require.NoError(t, err)

	visible, err := f.classes.ListVisible(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, open.ID, visible[0].ID)

	all, err := f.classes.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestClassAndFolderOrdering(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.classes.Create(ctx, CreateClassReq{Name: "a"})
	require.NoError(t, err)
	b, err := f.classes.Create(ctx, CreateClassReq{Name: "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, a.SortOrder)
	assert.Equal(t, 2, b.SortOrder)

	classes, err := f.classes.Reorder(ctx, []string{b.ID, a.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID, a.ID}, []string{classes[0].ID, classes[1].ID})

	x, err := f.folders.Create(ctx, CreateFolderReq{Name: "x"})
	require.NoError(t, err)
	y, err := f.folders.Create(ctx, CreateFolderReq{Name: "y"})
	require.NoError(t, err)
	folders, err := f.folders.Reorder(ctx, []string{y.ID, x.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{y.ID, x.ID}, []string{folders[0].ID, folders[1].ID})

	renamed, err := f.folders.Update(ctx, x.ID, UpdateFolderReq{Name: lo.ToPtr("x2"), Completed: lo.ToPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, "x2", renamed.Name)
	assert.True(t, renamed.Completed)

	require.NoError(t, f.classes.Delete(ctx, a.ID))
	assert.ErrorIs(t, f.classes.Delete(ctx, a.ID), repository.ErrNotFound)
	_, err = f.classes.Update(ctx, a.ID, UpdateClassReq{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
