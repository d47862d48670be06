package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/i-gichachi/kuhama-app/controllers"
	"github.com/i-gichachi/kuhama-app/middlewares"
	"github.com/i-gichachi/kuhama-app/models"
	"github.com/i-gichachi/kuhama-app/services"
)

func SetupRouter(db *gorm.DB, pricing services.Pricing) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	inventoryCtrl := controllers.NewInventoryController(db)
	movingCtrl := controllers.NewMovingController(db, pricing)
	adminCtrl := controllers.NewAdminController(db)
	notificationCtrl := controllers.NewNotificationController(db)
	messageCtrl := controllers.NewMessageController(db)

	// ---------------- PUBLIC ----------------
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to Kukuhamisha App"})
	})

	public := r.Group("/")
	public.Use(middlewares.AuthRateLimiter())
	{
		public.POST("/signup", userCtrl.Signup)
		public.POST("/login", userCtrl.Login)
	}

	r.POST("/logout", middlewares.AuthMiddleware(), userCtrl.Logout)

	// ---------------- CUSTOMER ----------------
	customer := r.Group("/")
	customer.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleCustomer))
	{
		customer.GET("/user/info", userCtrl.GetInfo)
		customer.PUT("/user/update", userCtrl.UpdateInfo)

		customer.POST("/inventory/add", inventoryCtrl.AddItem)
		customer.GET("/inventory", inventoryCtrl.ListItems)
		customer.PUT("/inventory/update/:item_id", inventoryCtrl.UpdateItem)
		customer.DELETE("/inventory/delete/:item_id", inventoryCtrl.DeleteItem)

		customer.POST("/moving/add", movingCtrl.CreateMovingDetail)
		customer.GET("/moving", movingCtrl.ListMovingDetails)
		customer.PUT("/moving/update/:detail_id", movingCtrl.UpdateMovingDetail)
		customer.DELETE("/moving/delete/:detail_id", movingCtrl.DeleteMovingDetail)

		customer.GET("/user/notifications", notificationCtrl.ListNotifications)
		customer.PATCH("/user/notifications/:notification_id/read", notificationCtrl.MarkRead)

		customer.POST("/send-message", messageCtrl.SendMessage)
	}

	// ---------------- ADMIN ----------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleAdmin))
	{
		admin.GET("/customers", adminCtrl.ListCustomers)
		admin.GET("/customer/:user_id/inventory", adminCtrl.GetCustomerInventory)
		admin.DELETE("/delete/customer/:user_id", adminCtrl.DeleteCustomer)

		admin.PUT("/moving/update-status/:detail_id", adminCtrl.UpdateMovingStatus)

		admin.GET("/notifications", notificationCtrl.ListNotifications)
		admin.PATCH("/notifications/:notification_id/read", notificationCtrl.MarkRead)

		admin.GET("/messages", messageCtrl.AdminInbox)
	}

	return r
}
