package controller

import (
	"errors"
	"homework_check_backend/internal/grading"
	"homework_check_backend/internal/repository"
	"homework_check_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the response envelope. notFound is
// the message used when the resource does not exist.
func respondError(ctx *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		util.NotFound(ctx, notFound)
	case errors.Is(err, grading.ErrNotConfigured),
		errors.Is(err, grading.ErrAnswerCountMismatch),
		errors.Is(err, util.ErrInvalidInput):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidPassword):
		util.Error(ctx, 401, "Invalid password")
	default:
		util.LogInternalError(ctx, err)
	}
}
