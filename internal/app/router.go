package app

import (
	"homework_check_backend/docs"
	"homework_check_backend/internal/middleware"
	"homework_check_backend/internal/util"
	"homework_check_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(学生端，无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 教师路由
	teacher := router.Group("/api")
	teacher.Use(middleware.AuthMiddleware(a.services.auth), middleware.RoleMiddleware(util.RoleTeacher))
	a.registerTeacherRoutes(teacher, c)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	tryAuth := middleware.TryAuthMiddleware(a.services.auth)

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/teacher/login", c.auth.Login)

		public.GET("/classes/visible", c.class.ListVisible)
		public.GET("/classes/:id/assignments", c.assignment.ListByClass)
		public.GET("/assignments/:id", c.assignment.Get)

		public.POST("/submissions", c.submission.Create)
		public.GET("/submissions/:id", c.submission.Get)
		// 教师登录时可看到隐藏的正确答案
		public.GET("/submissions/:id/incorrect", tryAuth, c.submission.Incorrect)
		public.GET("/submissions/:id/result", tryAuth, c.submission.Result)

		public.GET("/settings", c.settings.Get)
		public.GET("/encouragement-ranges", c.settings.ListRanges)
	}
}

func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	classes := rg.Group("/classes")
	{
		classes.GET("", c.class.List)
		classes.POST("", c.class.Create)
		classes.POST("/reorder", c.class.Reorder)
		classes.PATCH("/:id", c.class.Update)
		classes.DELETE("/:id", c.class.Delete)
		classes.GET("/:id/submissions", c.submission.ListByClass)
	}

	folders := rg.Group("/folders")
	{
		folders.GET("", c.folder.List)
		folders.POST("", c.folder.Create)
		folders.POST("/reorder", c.folder.Reorder)
		folders.PATCH("/:id", c.folder.Update)
		folders.DELETE("/:id", c.folder.Delete)
	}

	assignments := rg.Group("/assignments")
	{
		assignments.GET("", c.assignment.List)
		assignments.POST("", c.assignment.Create)
		assignments.POST("/reorder", c.assignment.Reorder)
		assignments.PATCH("/:id", c.assignment.Update)
		assignments.DELETE("/:id", c.assignment.Delete)
		assignments.GET("/:id/answer-keys", c.answerKey.List)
		assignments.POST("/:id/answer-keys", c.answerKey.Save)
		assignments.GET("/:id/submissions", c.submission.ListByAssignment)
		assignments.POST("/:id/regrade", c.assignment.RegradeAll)
	}

	submissions := rg.Group("/submissions")
	{
		submissions.GET("", c.submission.List)
		submissions.DELETE("/:id", c.submission.Delete)
	}

	rg.PATCH("/settings", c.settings.Update)

	ranges := rg.Group("/encouragement-ranges")
	{
		ranges.POST("", c.settings.CreateRange)
		ranges.POST("/reorder", c.settings.ReorderRanges)
		ranges.PATCH("/:id", c.settings.UpdateRange)
		ranges.DELETE("/:id", c.settings.DeleteRange)
	}
}
