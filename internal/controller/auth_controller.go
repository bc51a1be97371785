package controller

import (
	"homework_check_backend/internal/service"
	"homework_check_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// Login godoc
// @Summary 教师登录
// @Description 校验教师密码并签发 JWT
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body service.LoginReq true "教师密码"
// @Success 200 {object} util.Response{data=object} "登录成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "密码错误"
// @Router /api/teacher/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Password)
	if err != nil {
		respondError(ctx, err, "")
		return
	}

	util.Success(ctx, gin.H{"token": token})
}
