package main

import (
	"log"
	"net/http"
	"os"

	"lunch-roulette-api/clients"
	"lunch-roulette-api/config"
	"lunch-roulette-api/handlers"
	"lunch-roulette-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present (API keys, secrets)
	if err := godotenv.Load(); err == nil {
		log.Println("✅ Loaded .env")
	}

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB()

	// Wire the external data sources the recommendation pipeline reads
	handlers.Places = clients.NewPlacesClient(
		config.Env("PLACES_API_URL", "https://dapi.kakao.com"),
		config.Env("KAKAO_REST_API_KEY", ""),
	)
	handlers.Weather = clients.NewWeatherClient(
		config.Env("WEATHER_API_URL", "https://apis.data.go.kr/1360000/VilageFcstInfoService_2.0"),
		config.Env("WEATHER_API_KEY", ""),
	)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Lunch Roulette API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍚 Welcome to the Lunch Roulette API",
			"docs":    "/api/state-machine",
			"health":  "/health",
			"moods":   "/api/moods",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
