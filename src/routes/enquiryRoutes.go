package routes

import (
	"github.com/EnquiryBox/EnquiryBox-Backend/src/controllers"
	"github.com/EnquiryBox/EnquiryBox-Backend/src/middleware"
	"github.com/EnquiryBox/EnquiryBox-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupEnquiryRoutes(router *gin.Engine, service *services.EnquiryService) {
	enquiryController := controllers.NewEnquiryController(service)

	// Public storefront route, guarded by the proxy signature
	api := router.Group("/api")
	api.Use(middleware.ProxyAuthMiddleware())
	{
		api.POST("/enquiry", enquiryController.SubmitEnquiry)
	}

	// Protected admin dashboard routes
	enquiries := router.Group("/enquiries")
	enquiries.Use(middleware.AuthMiddleware())
	{
		enquiries.GET("/", enquiryController.GetAllEnquiries)
		enquiries.GET("/view", enquiryController.GetDashboardView)
		enquiries.GET("/export", enquiryController.ExportEnquiries)
		enquiries.GET("/:id", enquiryController.GetEnquiryByID)
		enquiries.DELETE("/", enquiryController.DeleteEnquiry)
	}
}
