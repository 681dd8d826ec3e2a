package main

import (
	"log"
	"os"

	"github.com/EnquiryBox/EnquiryBox-Backend/src/db"
	"github.com/EnquiryBox/EnquiryBox-Backend/src/metrics"
	"github.com/EnquiryBox/EnquiryBox-Backend/src/middleware"
	"github.com/EnquiryBox/EnquiryBox-Backend/src/models"
	"github.com/EnquiryBox/EnquiryBox-Backend/src/routes"
	"github.com/EnquiryBox/EnquiryBox-Backend/src/seed"
	"github.com/EnquiryBox/EnquiryBox-Backend/src/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(&models.EnquiryModel{}, &models.UserModel{}); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// Ensure a default admin exists
	seed.Seed(db)

	// Secrets for admin tokens and the storefront proxy signature
	middleware.SetSecretKey(os.Getenv("JWT_SECRET_KEY"))
	middleware.SetProxySecret(os.Getenv("PROXY_SHARED_SECRET"))

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())
	router.Use(metrics.Middleware())

	// Services setup
	enquiryService := services.NewEnquiryService(db)
	userService := services.NewUserService(db)

	// Routes setup
	routes.SetupEnquiryRoutes(router, enquiryService)
	routes.SetupUserRoutes(router, userService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Hello from Gin!")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
