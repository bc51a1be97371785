package controller

import (
	"homework_check_backend/internal/service"
	"homework_check_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const rangeNotFound = "Encouragement range not found"

type SettingsController struct {
	Service *service.SettingsService
}

func NewSettingsController(svc *service.SettingsService) *SettingsController {
	return &SettingsController{Service: svc}
}

// @Summary 站点设置
// @Tags 设置
// @Produce json
// @Success 200 {object} util.Response{data=model.Settings}
// @Router /api/settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	settings, err := c.Service.Get(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}

// @Summary 修改站点设置
// @Tags 设置
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.UpdateSettingsReq true "需要修改的字段"
// @Success 200 {object} util.Response{data=model.Settings}
// @Router /api/settings [patch]
func (c *SettingsController) Update(ctx *gin.Context) {
	var req service.UpdateSettingsReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	settings, err := c.Service.Update(ctx.Request.Context(), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}

// @Summary 鼓励语区间列表
// @Tags 设置
// @Produce json
// @Success 200 {object} util.Response{data=[]model.EncouragementRange}
// @Router /api/encouragement-ranges [get]
func (c *SettingsController) ListRanges(ctx *gin.Context) {
	ranges, err := c.Service.ListRanges(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ranges)
}

// @Summary 新增鼓励语区间
// @Description 分数满足 minScore <= 百分比 < maxScore 时使用
// @Tags 设置
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateRangeReq true "区间"
// @Success 201 {object} util.Response{data=model.EncouragementRange}
// @Router /api/encouragement-ranges [post]
func (c *SettingsController) CreateRange(ctx *gin.Context) {
	var req service.CreateRangeReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	r, err := c.Service.CreateRange(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, rangeNotFound)
		return
	}
	util.Created(ctx, r)
}

// @Summary 修改鼓励语区间
// @Tags 设置
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "区间ID"
// @Param body body service.UpdateRangeReq true "需要修改的字段"
// @Success 200 {object} util.Response{data=model.EncouragementRange}
// @Failure 404 {object} util.Response
// @Router /api/encouragement-ranges/{id} [patch]
func (c *SettingsController) UpdateRange(ctx *gin.Context) {
	var req service.UpdateRangeReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	r, err := c.Service.UpdateRange(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err, rangeNotFound)
		return
	}
	util.Success(ctx, r)
}

// @Summary 删除鼓励语区间
// @Tags 设置
// @Security BearerAuth
// @Param id path string true "区间ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/encouragement-ranges/{id} [delete]
func (c *SettingsController) DeleteRange(ctx *gin.Context) {
	if err := c.Service.DeleteRange(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err, rangeNotFound)
		return
	}
	util.NoContent(ctx)
}

// @Summary 鼓励语区间排序
// @Tags 设置
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ReorderRangesReq true "按新顺序排列的区间ID"
// @Success 200 {object} util.Response{data=[]model.EncouragementRange}
// @Router /api/encouragement-ranges/reorder [post]
func (c *SettingsController) ReorderRanges(ctx *gin.Context) {
	var req service.ReorderRangesReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ranges, err := c.Service.ReorderRanges(ctx.Request.Context(), req.RangeIDs)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ranges)
}
