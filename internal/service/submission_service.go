package service

import (
	"context"
	"errors"
	"fmt"
	"homework_check_backend/internal/grading"
	"homework_check_backend/internal/model"
	"homework_check_backend/internal/repository"
	"homework_check_backend/internal/util"
	"homework_check_backend/pkg/monitoring"
	"strings"
)

type SubmissionService struct {
	Assignments repository.AssignmentStore
	Keys        repository.AnswerKeyStore
	Submissions repository.SubmissionStore
	Settings    *SettingsService
}

func NewSubmissionService(
	assignments repository.AssignmentStore,
	keys repository.AnswerKeyStore,
	submissions repository.SubmissionStore,
	settings *SettingsService,
) *SubmissionService {
	return &SubmissionService{
		Assignments: assignments,
		Keys:        keys,
		Submissions: submissions,
		Settings:    settings,
	}
}

type CreateSubmissionReq struct {
	StudentName  string   `json:"studentName" binding:"required"`
	Answers      []string `json:"answers" binding:"required"`
	AssignmentID string   `json:"assignmentId" binding:"required"`
	ClassID      string   `json:"classId" binding:"required"`
}

// SubmissionWithIncorrect is a submission plus the question numbers it got
// wrong. The list is empty when the keys changed shape after submission.
type SubmissionWithIncorrect struct {
	model.Submission
	IncorrectQuestions []int `json:"incorrectQuestions"`
}

type IncorrectReport struct {
	Items       []grading.IncorrectAnswer `json:"items"`
	Stale       bool                      `json:"stale"`
	ShowAnswers bool                      `json:"showAnswers"`
}

type ResultSummary struct {
	Submission     model.Submission          `json:"submission"`
	Percentage     int                       `json:"percentage"`
	Message        string                    `json:"message"`
	Perfect        bool                      `json:"perfect"`
	PerfectMessage string                    `json:"perfectMessage,omitempty"`
	Incorrect      []grading.IncorrectAnswer `json:"incorrect"`
	Stale          bool                      `json:"stale"`
	ShowAnswers    bool                      `json:"showAnswers"`
}

// Create grades the answers against the current keys and stores the result
// together with a snapshot of the graded question numbers.
func (s *SubmissionService) Create(ctx context.Context, req CreateSubmissionReq) (*model.Submission, error) {
	name := strings.TrimSpace(req.StudentName)
	if name == "" {
		return nil, fmt.Errorf("%w: studentName is required", util.ErrInvalidInput)
	}

	if _, err := s.Assignments.GetAssignment(ctx, req.AssignmentID); err != nil {
		return nil, err
	}

	keys, err := s.Keys.GetAnswerKeys(ctx, req.AssignmentID)
	if err != nil {
		return nil, err
	}

	score, err := grading.Score(keys, req.Answers)
	if err != nil {
		monitoring.SubmissionsGraded.WithLabelValues("rejected").Inc()
		return nil, err
	}

	sub := &model.Submission{
		ClassID:         req.ClassID,
		AssignmentID:    req.AssignmentID,
		StudentName:     name,
		Answers:         req.Answers,
		Score:           score,
		TotalQuestions:  len(keys),
		QuestionNumbers: grading.Snapshot(keys),
	}
	if err := s.Submissions.CreateSubmission(ctx, sub); err != nil {
		return nil, err
	}
	monitoring.SubmissionsGraded.WithLabelValues("accepted").Inc()
	return sub, nil
}

func (s *SubmissionService) Get(ctx context.Context, id string) (*model.Submission, error) {
	return s.Submissions.GetSubmission(ctx, id)
}

func (s *SubmissionService) List(ctx context.Context) ([]model.Submission, error) {
	subs, err := s.Submissions.ListSubmissions(ctx)
	if subs == nil && err == nil {
		subs = []model.Submission{}
	}
	return subs, err
}

func (s *SubmissionService) Delete(ctx context.Context, id string) error {
	return s.Submissions.DeleteSubmission(ctx, id)
}

func (s *SubmissionService) ListByAssignment(ctx context.Context, assignmentID string) ([]SubmissionWithIncorrect, error) {
	subs, err := s.Submissions.GetSubmissionsByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	return s.withIncorrect(ctx, subs)
}

func (s *SubmissionService) ListByClass(ctx context.Context, classID string) ([]SubmissionWithIncorrect, error) {
	subs, err := s.Submissions.GetSubmissionsByClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	return s.withIncorrect(ctx, subs)
}

func (s *SubmissionService) withIncorrect(ctx context.Context, subs []model.Submission) ([]SubmissionWithIncorrect, error) {
	keysByAssignment := map[string][]model.AnswerKey{}
	out := make([]SubmissionWithIncorrect, 0, len(subs))
	for i := range subs {
		sub := &subs[i]
		keys, ok := keysByAssignment[sub.AssignmentID]
		if !ok {
			var err error
			keys, err = s.Keys.GetAnswerKeys(ctx, sub.AssignmentID)
			if err != nil {
				return nil, err
			}
			keysByAssignment[sub.AssignmentID] = keys
		}
		out = append(out, SubmissionWithIncorrect{
			Submission:         *sub,
			IncorrectQuestions: grading.IncorrectQuestionNumbers(sub, keys),
		})
	}
	return out, nil
}

// Incorrect reports the wrong answers of a submission. Expected answers are
// included for teachers, or for students when the assignment shows them.
func (s *SubmissionService) Incorrect(ctx context.Context, id string, teacher bool) (*IncorrectReport, error) {
	sub, err := s.Submissions.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.incorrect(ctx, sub, teacher)
}

func (s *SubmissionService) incorrect(ctx context.Context, sub *model.Submission, teacher bool) (*IncorrectReport, error) {
	keys, err := s.Keys.GetAnswerKeys(ctx, sub.AssignmentID)
	if err != nil {
		return nil, err
	}

	showAnswers := false
	assignment, err := s.Assignments.GetAssignment(ctx, sub.AssignmentID)
	switch {
	case err == nil:
		showAnswers = assignment.ShowAnswers
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	items, stale := grading.Incorrect(sub, keys)
	if !teacher && !showAnswers {
		items = grading.HideCorrectAnswers(items)
	}
	return &IncorrectReport{Items: items, Stale: stale, ShowAnswers: showAnswers}, nil
}

// Result builds the student's result page: percentage, the encouragement
// message and the incorrect answers.
func (s *SubmissionService) Result(ctx context.Context, id string, teacher bool) (*ResultSummary, error) {
	sub, err := s.Submissions.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}
	report, err := s.incorrect(ctx, sub, teacher)
	if err != nil {
		return nil, err
	}
	settings, err := s.Settings.Messages(ctx)
	if err != nil {
		return nil, err
	}
	ranges, err := s.Settings.ListRanges(ctx)
	if err != nil {
		return nil, err
	}

	pct := grading.Percentage(sub.Score, sub.TotalQuestions)
	summary := &ResultSummary{
		Submission:  *sub,
		Percentage:  pct,
		Message:     grading.EncouragementMessage(pct, ranges, settings),
		Perfect:     !report.Stale && len(report.Items) == 0,
		Incorrect:   report.Items,
		Stale:       report.Stale,
		ShowAnswers: report.ShowAnswers,
	}
	if summary.Perfect {
		summary.PerfectMessage = settings.PerfectScoreMessage
	}
	return summary, nil
}
