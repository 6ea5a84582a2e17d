package main

import (
	"log"
	"time"

	"artist-portal/config"
	"artist-portal/database"
	routes "artist-portal/internal/app/http"
	"artist-portal/internal/storage"
	"artist-portal/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB(config.DB_URL)
	storage.Init()

	if err := store.Default().Seed(); err != nil {
		log.Fatal("Seed error:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded files are web-servable when stored on local disk; the S3
	// backend returns absolute object URLs instead.
	if config.STORAGE_BACKEND == "disk" {
		r.Static("/uploads", config.UPLOAD_DIR)
	}

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
