package api

import (
	"alcyxob/student-portal/internal/config"
	"alcyxob/student-portal/internal/render"
	"alcyxob/student-portal/internal/service"
	"alcyxob/student-portal/internal/storage"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies is everything the HTTP layer is wired to.
type Dependencies struct {
	Session     config.SessionConfig
	Secure      bool // mark cookies Secure
	Auth        service.AuthService
	Dashboard   service.DashboardService
	Courses     service.CourseService
	Assignments service.AssignmentService
	Profile     service.ProfileService
	Preferences service.PreferenceService
	Alerts      *service.AlertQueue
	Avatars     *storage.AvatarResolver
	Renderer    *render.Renderer
	Log         *zap.Logger
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	router.HTMLRender = deps.Renderer

	p := &pages{
		renderer:    deps.Renderer,
		prefs:       deps.Preferences,
		assignments: deps.Assignments,
		alerts:      deps.Alerts,
		log:         deps.Log,
	}
	authHandler := NewAuthHandler(p, deps.Auth, deps.Session, deps.Secure)
	dashboardHandler := NewDashboardHandler(p, deps.Dashboard)
	courseHandler := NewCourseHandler(p, deps.Courses)
	assignmentHandler := NewAssignmentHandler(p, deps.Assignments)
	profileHandler := NewProfileHandler(p, deps.Profile, deps.Avatars)
	preferenceHandler := NewPreferenceHandler(p)
	alertHandler := NewAlertHandler(p)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	portal := router.Group("")
	portal.Use(BrowserMiddleware(deps.Secure), SessionMiddleware(deps.Auth, deps.Session.CookieName, deps.Log))
	{
		portal.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusSeeOther, "/dashboard")
		})
		portal.GET("/login", authHandler.ShowLogin)
		portal.POST("/login", authHandler.Login)
		portal.POST("/logout", authHandler.Logout)

		// Preferences and alerts belong to the browser, logged in or not.
		portal.POST("/theme/toggle", preferenceHandler.ToggleTheme)
		portal.PUT("/theme", preferenceHandler.SetTheme)
		portal.GET("/alerts", alertHandler.List)
		portal.DELETE("/alerts/:id", alertHandler.Dismiss)
	}

	protected := portal.Group("")
	protected.Use(RequireLogin())
	{
		protected.GET("/dashboard", dashboardHandler.Show)
		protected.GET("/courses", courseHandler.List)

		assignmentGroup := protected.Group("/assignments")
		{
			assignmentGroup.GET("", assignmentHandler.List)
			assignmentGroup.GET("/:id", assignmentHandler.Get)
			assignmentGroup.POST("/:id/submit", assignmentHandler.Submit)
		}

		profileGroup := protected.Group("/profile")
		{
			profileGroup.GET("", profileHandler.Show)
			profileGroup.POST("", profileHandler.Save)
			profileGroup.POST("/edit", profileHandler.Edit)
			profileGroup.POST("/draft", profileHandler.Draft)
			profileGroup.POST("/cancel", profileHandler.Cancel)
		}
	}
}
