package routes

import (
	"github.com/EnquiryBox/EnquiryBox-Backend/src/controllers"
	"github.com/EnquiryBox/EnquiryBox-Backend/src/middleware"
	"github.com/EnquiryBox/EnquiryBox-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	userController := controllers.NewUserController(service)

	// Public routes
	router.POST("/login", userController.AuthenticateUser)
	router.POST("/register", userController.CreateUser)

	// Protected routes
	user := router.Group("/users")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/", userController.GetAllUsers)
		user.DELETE("/:id", userController.DeleteUser)
	}
}
