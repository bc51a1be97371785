package controller

import (
	"homework_check_backend/internal/service"
	"homework_check_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnswerKeyController struct {
	Service *service.AnswerKeyService
}

func NewAnswerKeyController(svc *service.AnswerKeyService) *AnswerKeyController {
	return &AnswerKeyController{Service: svc}
}

// @Summary 作业答案列表
// @Tags 答案
// @Produce json
// @Security BearerAuth
// @Param id path string true "作业ID"
// @Success 200 {object} util.Response{data=[]model.AnswerKey}
// @Router /api/assignments/{id}/answer-keys [get]
func (c *AnswerKeyController) List(ctx *gin.Context) {
	keys, err := c.Service.List(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, keys)
}

// @Summary 保存作业答案
// @Description 整体替换答案，并对已有提交重新判分
// @Tags 答案
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "作业ID"
// @Param body body service.SaveAnswerKeysReq true "全部答案"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/assignments/{id}/answer-keys [post]
func (c *AnswerKeyController) Save(ctx *gin.Context) {
	var req service.SaveAnswerKeysReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	keys, report, err := c.Service.Replace(ctx.Request.Context(), ctx.Param("id"), req.AnswerKeys)
	if err != nil {
		respondError(ctx, err, assignmentNotFound)
		return
	}
	util.Success(ctx, gin.H{"answerKeys": keys, "regrade": report})
}
