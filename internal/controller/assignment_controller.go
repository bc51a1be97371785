package controller

import (
	"homework_check_backend/internal/service"
	"homework_check_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const assignmentNotFound = "Assignment not found"

type AssignmentController struct {
	Service *service.AssignmentService
	Regrade *service.RegradeService
}

func NewAssignmentController(svc *service.AssignmentService, regrade *service.RegradeService) *AssignmentController {
	return &AssignmentController{Service: svc, Regrade: regrade}
}

// @Summary 作业列表
// @Tags 作业
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.AssignmentWithClasses}
// @Router /api/assignments [get]
func (c *AssignmentController) List(ctx *gin.Context) {
	assignments, err := c.Service.List(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// @Summary 班级的作业列表
// @Tags 作业
// @Produce json
// @Param id path string true "班级ID"
// @Success 200 {object} util.Response{data=[]model.AssignmentWithClasses}
// @Router /api/classes/{id}/assignments [get]
func (c *AssignmentController) ListByClass(ctx *gin.Context) {
	assignments, err := c.Service.ListByClass(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// @Summary 作业详情
// @Tags 作业
// @Produce json
// @Param id path string true "作业ID"
// @Success 200 {object} util.Response{data=model.AssignmentWithClasses}
// @Failure 404 {object} util.Response
// @Router /api/assignments/{id} [get]
func (c *AssignmentController) Get(ctx *gin.Context) {
	assignment, err := c.Service.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, assignmentNotFound)
		return
	}
	util.Success(ctx, assignment)
}

// @Summary 创建作业
// @Description questionCount 可选，预建对应数量的空答案
// @Tags 作业
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateAssignmentReq true "作业信息"
// @Success 201 {object} util.Response{data=model.AssignmentWithClasses}
// @Failure 400 {object} util.Response
// @Router /api/assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	var req service.CreateAssignmentReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment, err := c.Service.Create(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, assignmentNotFound)
		return
	}
	util.Created(ctx, assignment)
}

// @Summary 更新作业
// @Description folderId 传 null 表示移出文件夹，不传表示不修改
// @Tags 作业
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "作业ID"
// @Param body body service.UpdateAssignmentReq true "需要修改的字段"
// @Success 200 {object} util.Response{data=model.AssignmentWithClasses}
// @Failure 404 {object} util.Response
// @Router /api/assignments/{id} [patch]
func (c *AssignmentController) Update(ctx *gin.Context) {
	var req service.UpdateAssignmentReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment, err := c.Service.Update(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err, assignmentNotFound)
		return
	}
	util.Success(ctx, assignment)
}

// @Summary 删除作业
// @Tags 作业
// @Security BearerAuth
// @Param id path string true "作业ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/assignments/{id} [delete]
func (c *AssignmentController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err, assignmentNotFound)
		return
	}
	util.NoContent(ctx)
}

// @Summary 作业排序
// @Tags 作业
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ReorderAssignmentsReq true "按新顺序排列的作业ID"
// @Success 200 {object} util.Response{data=[]model.AssignmentWithClasses}
// @Router /api/assignments/reorder [post]
func (c *AssignmentController) Reorder(ctx *gin.Context) {
	var req service.ReorderAssignmentsReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignments, err := c.Service.Reorder(ctx.Request.Context(), req.AssignmentIDs)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// @Summary 重新判分
// @Description 按当前答案重新计算该作业所有提交的分数
// @Tags 作业
// @Produce json
// @Security BearerAuth
// @Param id path string true "作业ID"
// @Success 200 {object} util.Response{data=service.RegradeReport}
// @Failure 404 {object} util.Response
// @Router /api/assignments/{id}/regrade [post]
func (c *AssignmentController) RegradeAll(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := c.Service.Get(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, assignmentNotFound)
		return
	}
	util.Success(ctx, c.Regrade.RegradeAssignment(ctx.Request.Context(), id))
}
