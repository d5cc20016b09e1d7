package handler

import (
	"lms-backend/internal/config"
	"lms-backend/internal/middleware"
	"lms-backend/internal/models"
	"lms-backend/internal/repository"
	"lms-backend/internal/service"
	"lms-backend/internal/storage"
	"lms-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers onto a gin engine.
// Route-level role allow-lists live here; ownership checks live in the
// services behind them.
func NewRouter(cfg *config.Config, db *gorm.DB, store *storage.LocalStore) *gin.Engine {
	userRepo := repository.NewUserRepo(db)
	courseRepo := repository.NewCourseRepo(db)
	enrollmentRepo := repository.NewEnrollmentRepo(db)
	materialRepo := repository.NewMaterialRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	authService := service.NewAuthService(userRepo, auditRepo)
	courseService := service.NewCourseService(courseRepo, auditRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, courseRepo, userRepo)
	materialService := service.NewMaterialService(materialRepo, courseRepo, auditRepo, store)
	userService := service.NewUserService(userRepo, auditRepo)

	authHandler := NewAuthHandler(authService)
	courseHandler := NewCourseHandler(courseService)
	enrollmentHandler := NewEnrollmentHandler(enrollmentService)
	materialHandler := NewMaterialHandler(materialService)
	userHandler := NewUserHandler(userService)

	r := gin.Default()
	r.Use(middleware.CORS(cfg))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "lms-backend",
		})
	})

	api := r.Group("/api")

	// Auth routes (register/login/refresh public, the rest authenticated)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh-token", authHandler.Refresh)

		auth.POST("/logout", middleware.AuthMiddleware(), authHandler.Logout)
		auth.GET("/get-role", middleware.AuthMiddleware(), authHandler.GetRole)
	}

	// Course routes (authenticated; writes restricted to trainers)
	courses := api.Group("/courses")
	courses.Use(middleware.AuthMiddleware())
	{
		courses.GET("", courseHandler.GetCourses)
		courses.GET("/trainer-courses", middleware.RequireRoles(models.RoleTrainer), courseHandler.GetTrainerCourses)
		courses.GET("/:id", courseHandler.GetCourse)
		courses.POST("", middleware.RequireRoles(models.RoleTrainer), courseHandler.CreateCourse)
		courses.PUT("/:id", middleware.RequireRoles(models.RoleTrainer), courseHandler.UpdateCourse)
		courses.DELETE("/:id", middleware.RequireRoles(models.RoleTrainer), courseHandler.DeleteCourse)

		// Course materials; reads open to any enrolled-or-not authenticated
		// user, writes restricted to trainers and admins
		courses.GET("/:id/materials", materialHandler.List)
		courses.GET("/:id/materials/:materialId", materialHandler.Download)
		courses.GET("/:id/materials/:materialId/metadata", materialHandler.GetMetadata)
		courses.POST("/:id/materials", middleware.RequireRoles(models.RoleTrainer, models.RoleAdmin), materialHandler.Upload)
		courses.DELETE("/:id/materials/:materialId", middleware.RequireRoles(models.RoleTrainer, models.RoleAdmin), materialHandler.Delete)
	}

	// Enrollment routes (authenticated)
	enrollments := api.Group("/enrollments")
	enrollments.Use(middleware.AuthMiddleware())
	{
		enrollments.POST("/enroll", enrollmentHandler.Enroll)
		enrollments.GET("/my-courses", enrollmentHandler.GetMyCourses)
		enrollments.GET("/course-enrollments", enrollmentHandler.GetCourseEnrollments)
		enrollments.POST("/admin-enroll", middleware.RequireRoles(models.RoleAdmin, models.RoleTrainer), enrollmentHandler.AdminEnroll)
		enrollments.DELETE("/unenroll", middleware.RequireRoles(models.RoleAdmin, models.RoleTrainer), enrollmentHandler.Unenroll)
	}

	// User management routes (admin only)
	users := api.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin))
	{
		users.GET("", userHandler.GetUsers)
		users.PUT("/update-user/:userId", userHandler.UpdateUser)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin))
	{
		admin.POST("/assign-role", userHandler.AssignRole)
		admin.DELETE("/delete-user/:userId", userHandler.DeleteUser)
	}

	return r
}
