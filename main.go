package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/shuvojit07/LuminaMarket/db"
	"github.com/shuvojit07/LuminaMarket/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init MongoDB. An unreachable server is logged, not fatal: the API keeps
	// serving and each request fails on its own until the store comes back.
	store, err := db.Connect(mongoURI(), mongoDBName())
	if store == nil {
		log.Fatalf("❌ Invalid MongoDB configuration: %v", err)
	}
	if err != nil {
		log.Printf("❌ MongoDB Error: %v", err)
	} else {
		log.Println("✅ MongoDB Connected")
	}

	// Gin setup
	r := gin.Default()

	// CORS settings: the storefront is the only allowed origin
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"http://localhost:3000"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "x-api-key"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, store)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func mongoURI() string {
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		return uri
	}
	return "mongodb://localhost:27017"
}

func mongoDBName() string {
	if name := os.Getenv("MONGO_DB"); name != "" {
		return name
	}
	return "luminamarket"
}
