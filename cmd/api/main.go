package main

import (
	"log"
	"os"

	"landgem/internal/api/handlers"
	"landgem/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	emissionsHandler := handlers.NewEmissionsHandler()
	presetHandler := handlers.NewPresetHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/emissions", emissionsHandler.Calculate)
		v1.POST("/series", emissionsHandler.Series)
		v1.POST("/multistream", emissionsHandler.MultiStream)
		v1.GET("/presets", presetHandler.ListPresets)
		v1.GET("/presets/:name", presetHandler.GetPreset)
	}

	log.Printf("LandGEM API listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
