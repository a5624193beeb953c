package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yigit/jobtracker/internal/app/controllers"
	"github.com/yigit/jobtracker/internal/app/models/dto"
	"github.com/yigit/jobtracker/internal/middleware"
	"github.com/yigit/jobtracker/internal/pkg/metrics"
)

// Controllers groups every handler mounted by SetupRouter
type Controllers struct {
	Auth       *controllers.AuthController
	JobPages   *controllers.JobPageController
	Department *controllers.DepartmentController
	Map        *controllers.MapController
	Job        *controllers.JobController
	User       *controllers.UserController
	Category   *controllers.CategoryController
	Health     *controllers.HealthController
}

// Options configures the cross-cutting parts of the router
type Options struct {
	AllowedOrigins []string
	StaticPath     string
	Metrics        *metrics.Metrics
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	c Controllers,
	authMiddleware *middleware.AuthMiddleware,
	opts Options,
) {
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	router.GET("/health", c.Health.Check)

	if opts.StaticPath != "" {
		router.Static("/static", opts.StaticPath)
	}

	// --- JSON API, no session ---
	api := router.Group("/api")
	api.Use(corsMiddleware(opts.AllowedOrigins))
	{
		jobs := api.Group("/jobs")
		{
			jobs.GET("", c.Job.ListJobs)
			jobs.GET("/:id", c.Job.GetJob)
			jobs.POST("", middleware.RequireJSONPayload(), c.Job.CreateJob)
			jobs.PUT("/:id", middleware.RequireJSONPayload(), c.Job.UpdateJob)
			jobs.DELETE("/:id", c.Job.DeleteJob)
		}

		users := api.Group("/users")
		{
			users.GET("", c.User.ListUsers)
			users.GET("/:id", c.User.GetUser)
			users.POST("", middleware.RequireJSONPayload(), c.User.CreateUser)
			users.PUT("/:id", middleware.RequireJSONPayload(), c.User.UpdateUser)
			users.DELETE("/:id", c.User.DeleteUser)
		}

		api.GET("/categories", c.Category.ListCategories)
	}

	// --- HTML pages ---
	web := router.Group("")
	web.Use(authMiddleware.LoadSession(), middleware.CSRF(middleware.CSRFConfig{AllowedOrigins: opts.AllowedOrigins}))
	{
		web.GET("/", c.JobPages.Index)
		web.GET("/login", c.Auth.LoginPage)
		web.POST("/login", c.Auth.Login)
		web.GET("/register", c.Auth.RegisterPage)
		web.POST("/register", c.Auth.Register)
		web.GET("/departments", c.Department.ListDepartments)
		web.GET("/users_show/:id", c.Map.ShowUser)
		web.GET("/cleanup_map/:filename", c.Map.CleanupMap)

		authenticated := web.Group("")
		authenticated.Use(authMiddleware.LoginRequired("/login"))
		{
			authenticated.GET("/logout", c.Auth.Logout)

			authenticated.GET("/addjob", c.JobPages.AddJobPage)
			authenticated.POST("/addjob", c.JobPages.AddJob)
			authenticated.GET("/jobs/:id", c.JobPages.EditJobPage)
			authenticated.POST("/jobs/:id", c.JobPages.EditJob)
			authenticated.POST("/jobs/:id/delete", c.JobPages.DeleteJob)

			authenticated.GET("/departments/add", c.Department.AddDepartmentPage)
			authenticated.POST("/departments/add", c.Department.AddDepartment)
			authenticated.GET("/departments/:id", c.Department.EditDepartmentPage)
			authenticated.POST("/departments/:id", c.Department.EditDepartment)
			authenticated.POST("/departments/:id/delete", c.Department.DeleteDepartment)
		}
	}

	router.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Not found"))
			return
		}
		ctx.HTML(http.StatusNotFound, "error.html", gin.H{
			"Title":   http.StatusText(http.StatusNotFound),
			"Status":  http.StatusNotFound,
			"Message": "Page not found",
		})
	})
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	return cors.New(config)
}
