package controller

import (
	"homework_check_backend/internal/service"
	"homework_check_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const folderNotFound = "Folder not found"

type FolderController struct {
	Service *service.FolderService
}

func NewFolderController(svc *service.FolderService) *FolderController {
	return &FolderController{Service: svc}
}

// @Summary 文件夹列表
// @Tags 文件夹
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Folder}
// @Router /api/folders [get]
func (c *FolderController) List(ctx *gin.Context) {
	folders, err := c.Service.List(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, folders)
}

// @Summary 创建文件夹
// @Tags 文件夹
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateFolderReq true "文件夹信息"
// @Success 201 {object} util.Response{data=model.Folder}
// @Router /api/folders [post]
func (c *FolderController) Create(ctx *gin.Context) {
	var req service.CreateFolderReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	folder, err := c.Service.Create(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, folderNotFound)
		return
	}
	util.Created(ctx, folder)
}

// @Summary 更新文件夹
// @Tags 文件夹
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "文件夹ID"
// @Param body body service.UpdateFolderReq true "需要修改的字段"
// @Success 200 {object} util.Response{data=model.Folder}
// @Failure 404 {object} util.Response
// @Router /api/folders/{id} [patch]
func (c *FolderController) Update(ctx *gin.Context) {
	var req service.UpdateFolderReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	folder, err := c.Service.Update(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err, folderNotFound)
		return
	}
	util.Success(ctx, folder)
}

// @Summary 删除文件夹
// @Description 文件夹内的作业移出到根目录
// @Tags 文件夹
// @Security BearerAuth
// @Param id path string true "文件夹ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/folders/{id} [delete]
func (c *FolderController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err, folderNotFound)
		return
	}
	util.NoContent(ctx)
}

// @Summary 文件夹排序
// @Tags 文件夹
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ReorderFoldersReq true "按新顺序排列的文件夹ID"
// @Success 200 {object} util.Response{data=[]model.Folder}
// @Router /api/folders/reorder [post]
func (c *FolderController) Reorder(ctx *gin.Context) {
	var req service.ReorderFoldersReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	folders, err := c.Service.Reorder(ctx.Request.Context(), req.FolderIDs)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, folders)
}
