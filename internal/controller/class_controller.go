package controller

import (
	"homework_check_backend/internal/service"
	"homework_check_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const classNotFound = "Class not found"

type ClassController struct {
	Service *service.ClassService
}

func NewClassController(svc *service.ClassService) *ClassController {
	return &ClassController{Service: svc}
}

// @Summary 班级列表
// @Tags 班级
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Class}
// @Router /api/classes [get]
func (c *ClassController) List(ctx *gin.Context) {
	classes, err := c.Service.List(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, classes)
}

// @Summary 学生可见的班级
// @Description 未隐藏且未结课的班级
// @Tags 班级
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Class}
// @Router /api/classes/visible [get]
func (c *ClassController) ListVisible(ctx *gin.Context) {
	classes, err := c.Service.ListVisible(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, classes)
}

// @Summary 创建班级
// @Tags 班级
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateClassReq true "班级信息"
// @Success 201 {object} util.Response{data=model.Class}
// @Router /api/classes [post]
func (c *ClassController) Create(ctx *gin.Context) {
	var req service.CreateClassReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	class, err := c.Service.Create(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, classNotFound)
		return
	}
	util.Created(ctx, class)
}

// @Summary 更新班级
// @Tags 班级
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "班级ID"
// @Param body body service.UpdateClassReq true "需要修改的字段"
// @Success 200 {object} util.Response{data=model.Class}
// @Failure 404 {object} util.Response
// @Router /api/classes/{id} [patch]
func (c *ClassController) Update(ctx *gin.Context) {
	var req service.UpdateClassReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	class, err := c.Service.Update(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err, classNotFound)
		return
	}
	util.Success(ctx, class)
}

// @Summary 删除班级
// @Tags 班级
// @Security BearerAuth
// @Param id path string true "班级ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/classes/{id} [delete]
func (c *ClassController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err, classNotFound)
		return
	}
	util.NoContent(ctx)
}

// @Summary 班级排序
// @Tags 班级
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ReorderClassesReq true "按新顺序排列的班级ID"
// @Success 200 {object} util.Response{data=[]model.Class}
// @Router /api/classes/reorder [post]
func (c *ClassController) Reorder(ctx *gin.Context) {
	var req service.ReorderClassesReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	classes, err := c.Service.Reorder(ctx.Request.Context(), req.ClassIDs)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, classes)
}
