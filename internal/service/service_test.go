package service

import (
	"context"
	"errors"
	"homework_check_backend/internal/config"
	"homework_check_backend/internal/model"
	"homework_check_backend/internal/repository"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testDefaults = config.DefaultsConfig{
	AppTitle:            "Homework Checker",
	HighScoreMessage:    "high",
	LowScoreMessage:     "low",
	PerfectScoreMessage: "perfect",
}

type fixture struct {
	store       repository.Storage
	classes     *ClassService
	folders     *FolderService
	assignments *AssignmentService
	keys        *AnswerKeyService
	regrade     *RegradeService
	submissions *SubmissionService
	settings    *SettingsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithStore(t, repository.NewMemoryStorage())
}

func newFixtureWithStore(t *testing.T, store repository.Storage) *fixture {
	t.Helper()
	f := &fixture{store: store}
	f.classes = NewClassService(store)
	f.folders = NewFolderService(store)
	f.assignments = NewAssignmentService(store, store)
	f.regrade = NewRegradeService(store, zap.NewNop())
	f.keys = NewAnswerKeyService(store, store, f.regrade)
	f.settings = NewSettingsService(store, testDefaults)
	f.submissions = NewSubmissionService(store, store, store, f.settings)
	return f
}

// seed creates a class and an assignment with the given multiple-choice
// answers as keys 1..n.
func (f *fixture) seed(t *testing.T, answers ...string) (classID, assignmentID string) {
	t.Helper()
	ctx := context.Background()
	class, err := f.classes.Create(ctx, CreateClassReq{Name: "1반"})
	require.NoError(t, err)
	hw, err := f.assignments.Create(ctx, CreateAssignmentReq{Title: "Unit 1", ClassIDs: []string{class.ID}})
	require.NoError(t, err)
	if len(answers) > 0 {
		_, _, err = f.keys.Replace(ctx, hw.ID, keyReqs(answers...))
		require.NoError(t, err)
	}
	return class.ID, hw.ID
}

func keyReqs(answers ...string) []AnswerKeyReq {
	reqs := make([]AnswerKeyReq, len(answers))
	for i, a := range answers {
		reqs[i] = AnswerKeyReq{QuestionNumber: i + 1, CorrectAnswer: a}
	}
	return reqs
}

func (f *fixture) submit(t *testing.T, classID, assignmentID string, answers ...string) *model.Submission {
	t.Helper()
	sub, err := f.submissions.Create(context.Background(), CreateSubmissionReq{
		StudentName:  "  Kim  ",
		Answers:      answers,
		AssignmentID: assignmentID,
		ClassID:      classID,
	})
	require.NoError(t, err)
	return sub
}

// failingScores wraps a Storage and fails every score update.
type failingScores struct {
	repository.Storage
}

func (failingScores) UpdateSubmissionScore(ctx context.Context, id string, score, total int) error {
	return errors.New("disk full")
}
