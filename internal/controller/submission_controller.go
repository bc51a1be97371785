package controller

import (
	"homework_check_backend/internal/service"
	"homework_check_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const submissionNotFound = "Submission not found"

type SubmissionController struct {
	Service *service.SubmissionService
}

func NewSubmissionController(svc *service.SubmissionService) *SubmissionController {
	return &SubmissionController{Service: svc}
}

// @Summary 提交作业答案
// @Description 按当前答案判分并保存
// @Tags 提交
// @Accept json
// @Produce json
// @Param body body service.CreateSubmissionReq true "学生答案"
// @Success 201 {object} util.Response{data=model.Submission}
// @Failure 400 {object} util.Response "未配置答案或题数不符"
// @Failure 404 {object} util.Response
// @Router /api/submissions [post]
func (c *SubmissionController) Create(ctx *gin.Context) {
	var req service.CreateSubmissionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub, err := c.Service.Create(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, assignmentNotFound)
		return
	}
	util.Created(ctx, sub)
}

// @Summary 提交详情
// @Tags 提交
// @Produce json
// @Param id path string true "提交ID"
// @Success 200 {object} util.Response{data=model.Submission}
// @Failure 404 {object} util.Response
// @Router /api/submissions/{id} [get]
func (c *SubmissionController) Get(ctx *gin.Context) {
	sub, err := c.Service.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, submissionNotFound)
		return
	}
	util.Success(ctx, sub)
}

// @Summary 全部提交
// @Tags 提交
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Submission}
// @Router /api/submissions [get]
func (c *SubmissionController) List(ctx *gin.Context) {
	subs, err := c.Service.List(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subs)
}

// @Summary 删除提交
// @Tags 提交
// @Security BearerAuth
// @Param id path string true "提交ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/submissions/{id} [delete]
func (c *SubmissionController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err, submissionNotFound)
		return
	}
	util.NoContent(ctx)
}

// @Summary 作业的提交列表
// @Tags 提交
// @Produce json
// @Security BearerAuth
// @Param id path string true "作业ID"
// @Success 200 {object} util.Response{data=[]service.SubmissionWithIncorrect}
// @Router /api/assignments/{id}/submissions [get]
func (c *SubmissionController) ListByAssignment(ctx *gin.Context) {
	subs, err := c.Service.ListByAssignment(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subs)
}

// @Summary 班级的提交列表
// @Tags 提交
// @Produce json
// @Security BearerAuth
// @Param id path string true "班级ID"
// @Success 200 {object} util.Response{data=[]service.SubmissionWithIncorrect}
// @Router /api/classes/{id}/submissions [get]
func (c *SubmissionController) ListByClass(ctx *gin.Context) {
	subs, err := c.Service.ListByClass(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subs)
}

// @Summary 错题列表
// @Description 作业不公开答案时，学生看不到正确答案
// @Tags 提交
// @Produce json
// @Param id path string true "提交ID"
// @Success 200 {object} util.Response{data=service.IncorrectReport}
// @Failure 404 {object} util.Response
// @Router /api/submissions/{id}/incorrect [get]
func (c *SubmissionController) Incorrect(ctx *gin.Context) {
	report, err := c.Service.Incorrect(ctx.Request.Context(), ctx.Param("id"), util.IsTeacher(ctx))
	if err != nil {
		respondError(ctx, err, submissionNotFound)
		return
	}
	util.Success(ctx, report)
}

// @Summary 成绩页
// @Description 百分比、鼓励语和错题
// @Tags 提交
// @Produce json
// @Param id path string true "提交ID"
// @Success 200 {object} util.Response{data=service.ResultSummary}
// @Failure 404 {object} util.Response
// @Router /api/submissions/{id}/result [get]
func (c *SubmissionController) Result(ctx *gin.Context) {
	result, err := c.Service.Result(ctx.Request.Context(), ctx.Param("id"), util.IsTeacher(ctx))
	if err != nil {
		respondError(ctx, err, submissionNotFound)
		return
	}
	util.Success(ctx, result)
}
