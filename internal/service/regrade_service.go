package service

import (
	"context"
	"homework_check_backend/internal/grading"
	"homework_check_backend/internal/model"
	"homework_check_backend/pkg/monitoring"
	"homework_check_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// RegradeStore is the slice of storage the regrader needs.
type RegradeStore interface {
	GetAnswerKeys(ctx context.Context, assignmentID string) ([]model.AnswerKey, error)
	GetSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]model.Submission, error)
	UpdateSubmissionScore(ctx context.Context, id string, score, totalQuestions int) error
}

type RegradeReport struct {
	AssignmentID string `json:"assignmentId"`
	Submissions  int    `json:"submissions"`
	Updated      int    `json:"updated"`
	Unchanged    int    `json:"unchanged"`
	Skipped      int    `json:"skipped"`
	Failed       int    `json:"failed"`
}

// RegradeService rescores stored submissions after their answer keys change.
type RegradeService struct {
	Store RegradeStore
	Log   *zap.Logger
}

func NewRegradeService(store RegradeStore, log *zap.Logger) *RegradeService {
	return &RegradeService{Store: store, Log: log}
}

// RegradeAssignment never fails; problems are logged and counted.
// Submissions whose question set no longer matches the keys are skipped.
func (s *RegradeService) RegradeAssignment(ctx context.Context, assignmentID string) RegradeReport {
	ctx, span := tracing.Tracer.Start(ctx, "RegradeAssignment")
	defer span.End()
	span.SetAttributes(attribute.String("assignment.id", assignmentID))

	report := RegradeReport{AssignmentID: assignmentID}
	log := s.Log.With(zap.String("assignmentId", assignmentID))

	subs, err := s.Store.GetSubmissionsByAssignment(ctx, assignmentID)
	if err != nil {
		log.Error("regrade: load submissions failed", zap.Error(err))
		span.RecordError(err)
		return report
	}
	keys, err := s.Store.GetAnswerKeys(ctx, assignmentID)
	if err != nil {
		log.Error("regrade: load answer keys failed", zap.Error(err))
		span.RecordError(err)
		return report
	}
	if len(keys) == 0 {
		return report
	}

	monitoring.RegradeRuns.Inc()
	report.Submissions = len(subs)

	for i := range subs {
		sub := &subs[i]
		score, changed, eligible := grading.Regrade(sub, keys)
		switch {
		case !eligible:
			report.Skipped++
			monitoring.RegradeSubmissions.WithLabelValues("skipped").Inc()
		case !changed:
			report.Unchanged++
			monitoring.RegradeSubmissions.WithLabelValues("unchanged").Inc()
		default:
			if err := s.Store.UpdateSubmissionScore(ctx, sub.ID, score, len(keys)); err != nil {
				report.Failed++
				monitoring.RegradeSubmissions.WithLabelValues("failed").Inc()
				log.Error("regrade: update score failed", zap.String("submissionId", sub.ID), zap.Error(err))
				continue
			}
			report.Updated++
			monitoring.RegradeSubmissions.WithLabelValues("updated").Inc()
		}
	}

	span.SetAttributes(
		attribute.Int("regrade.updated", report.Updated),
		attribute.Int("regrade.skipped", report.Skipped),
	)
	if report.Updated > 0 {
		log.Info("regrade: updated submissions", zap.Int("updated", report.Updated), zap.Int("skipped", report.Skipped))
	}
	return report
}
