package app

import (
	"learnhub_backend/docs"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/middleware"
	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由（无需登录）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		// 课程目录
		authGroup.GET("/courses", c.course.ListCourses)
		authGroup.GET("/courses/:courseId", c.course.GetCourse)

		// 测验
		authGroup.POST("/courses/:courseId/quiz", c.quiz.EnsureQuiz)
		authGroup.GET("/quizzes/:quizId", c.quiz.GetQuiz)
		authGroup.POST("/quizzes/:quizId/submit", c.quiz.SubmitAttempt)

		// 统计分析（教师视角）
		teacher := authGroup.Group("/")
		teacher.Use(middleware.RoleMiddleware(model.Teacher))
		{
			teacher.POST("/teacher/courses", c.course.CreateCourse)
			teacher.GET("/statistics", c.statistics.GetStatistics)
			teacher.GET("/statistics/summary", c.statistics.GetSummary)
			teacher.GET("/statistics/questions", c.statistics.GetQuestionAnalysis)
			teacher.GET("/statistics/charts/:kind", c.statistics.GetChart)
			teacher.GET("/statistics/export", c.statistics.ExportCSV)
		}
	}
}
