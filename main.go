package main

import (
	"time"

	"publisher-app/config"
	"publisher-app/database"
	routes "publisher-app/internal/app/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	r := gin.Default()

	// CORS must be registered before routes. The contact form posts from
	// the browser, so OPTIONS preflights have to succeed.
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if config.CORS_ORIGIN == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{config.CORS_ORIGIN}
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
