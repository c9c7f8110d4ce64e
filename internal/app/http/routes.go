package routes

import (
	"publisher-app/config"
	"publisher-app/internal/api/articles"
	authapi "publisher-app/internal/api/auth"
	"publisher-app/internal/api/books"
	contactapi "publisher-app/internal/api/contact"
	eventsapi "publisher-app/internal/api/events"
	"publisher-app/internal/api/media"
	"publisher-app/internal/api/milestones"
	"publisher-app/internal/api/settings"
	"publisher-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Uploaded images are served straight from the bucket directories.
	r.Static("/uploads", config.UPLOAD_DIR)

	// Public reads: no auth, published rows only where the entity has a
	// publish flag.
	r.GET("/books", books.ListPublishedBooks)
	r.GET("/books/:id", books.GetPublishedBook)
	r.GET("/articles", articles.ListPublishedArticles)
	r.GET("/articles/:slug", articles.GetPublishedArticle)
	r.GET("/events", eventsapi.ListPublishedEvents)
	r.GET("/milestones", milestones.ListMilestones)
	r.GET("/site-stats", settings.ListSiteStats)

	r.GET("/auth/verify", authapi.VerifyEmail)
	r.GET("/auth/google", authapi.GoogleStart)
	r.GET("/auth/google/callback", authapi.GoogleCallback)

	// Public writes go through strict input sanitization.
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/contact", contactapi.Submit)
	public.POST("/auth/setup", authapi.Setup)
	public.POST("/auth/login", authapi.Login)
	public.POST("/auth/resend-verification", authapi.ResendVerification)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.POST("/auth/change-password", authapi.ChangePassword)

	// Admin screens
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))

	admin.GET("/books", books.ListBooks)
	admin.POST("/books", books.CreateBook)
	admin.PUT("/books/:id", books.UpdateBook)
	admin.DELETE("/books/:id", books.DeleteBook)
	admin.POST("/books/:id/toggle-publish", books.TogglePublish)

	admin.GET("/articles", articles.ListArticles)
	admin.POST("/articles", articles.CreateArticle)
	admin.PUT("/articles/:id", articles.UpdateArticle)
	admin.DELETE("/articles/:id", articles.DeleteArticle)
	admin.POST("/articles/:id/toggle-publish", articles.TogglePublish)

	admin.GET("/events", eventsapi.ListEvents)
	admin.POST("/events", eventsapi.CreateEvent)
	admin.PUT("/events/:id", eventsapi.UpdateEvent)
	admin.DELETE("/events/:id", eventsapi.DeleteEvent)
	admin.POST("/events/:id/toggle-publish", eventsapi.TogglePublish)

	admin.GET("/milestones", milestones.ListMilestones)
	admin.POST("/milestones", milestones.CreateMilestone)
	admin.PUT("/milestones/:id", milestones.UpdateMilestone)
	admin.DELETE("/milestones/:id", milestones.DeleteMilestone)

	admin.GET("/site-settings", settings.ListSettings)
	admin.PUT("/site-settings/:id", settings.UpdateSetting)

	admin.POST("/uploads/:bucket", media.Upload)
}
