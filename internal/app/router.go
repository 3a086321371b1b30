package app

import (
	"elearn_backend/docs"
	"elearn_backend/internal/config"
	"elearn_backend/internal/middleware"
	"elearn_backend/internal/model"
	"elearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.Handler())

	// เส้นทาง public ไม่ต้องเข้าสู่ระบบ — เส้นอ่านข้อมูลใช้ TryAuth
	// เพื่อให้ครูเจ้าของหลักสูตรเห็นเฉลยได้
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/courses", c.course.ListCourses)
		public.GET("/courses/:id", middleware.TryAuthMiddleware(cfg), c.course.GetCourse)
		public.GET("/courses/:id/tests", middleware.TryAuthMiddleware(cfg), c.test.ListCourseTests)
		public.GET("/tests/:testId/questions", middleware.TryAuthMiddleware(cfg), c.test.GetTestQuestions)
	}

	// เส้นทางที่ต้องเข้าสู่ระบบ
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/auth/me", c.auth.Me)
		authGroup.GET("/users", c.user.ListUsers)
		authGroup.GET("/users/:id", c.user.GetUser)
		authGroup.GET("/users/:id/scores", c.user.GetUserScores)

		authGroup.GET("/courses/teacher/:teacherId", c.course.GetTeacherCourses)
		authGroup.POST("/courses/:id/start", c.course.StartCourse)
		authGroup.GET("/courses/:id/progress/:userId", c.progress.GetProgress)
		authGroup.PUT("/courses/:id/progress/:userId", c.progress.SetProgress)

		authGroup.POST("/tests/:testId/submit", c.test.SubmitTest)

		// เส้นทางของครู
		teacher := authGroup.Group("")
		teacher.Use(middleware.RoleMiddleware(model.RoleTeacher))
		{
			teacher.POST("/courses", c.course.CreateCourse)
			teacher.PUT("/courses/:id", c.course.UpdateCourse)
			teacher.DELETE("/courses/:id", c.course.DeleteCourse)
			teacher.POST("/courses/:id/cover", c.course.UploadCover)
			teacher.POST("/courses/:id/tests", c.test.CreateTest)
			teacher.PUT("/tests/:testId", c.test.UpdateTest)
			teacher.DELETE("/tests/:testId", c.test.DeleteTest)
			teacher.GET("/tests/:testId/scores", c.test.ListTestScores)
			teacher.GET("/tests/:testId/scores/export", c.test.ExportTestScores)
		}
	}
}
