package routes

import (
	"github.com/Sittipanpee/dessert-site/configs"
	"github.com/Sittipanpee/dessert-site/controllers"
	"github.com/Sittipanpee/dessert-site/middlewares"
	"github.com/Sittipanpee/dessert-site/repository"
	"github.com/Sittipanpee/dessert-site/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	queueRepo := repository.NewQueueConfigRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)

	// Services
	queueSvc := services.NewQueueService(db, queueRepo)
	orderSvc := services.NewOrderService(db, orderRepo, queueSvc, services.NewQueueEstimator())
	menuSvc := services.NewMenuService(menuRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	queueCtrl := controllers.NewQueueController(queueSvc)
	uploadCtrl := controllers.NewUploadController(orderSvc, cfg.UploadDir)

	// Auth (admin คนเดียว)
	r.POST("/auth/login", authCtrl.Login)

	// Public — หน้าเว็บลูกค้า poll พวกนี้ทุก 5 วิ
	r.GET("/menu", menuCtrl.List)
	r.POST("/menu/quote", menuCtrl.Quote)
	r.GET("/queue-config", queueCtrl.GetConfig)
	r.GET("/orders", orderCtrl.List)
	r.POST("/orders", orderCtrl.Create)
	r.GET("/orders/:id", orderCtrl.Detail)
	r.PATCH("/orders/:id", orderCtrl.Patch)
	r.GET("/orders/:id/queue", orderCtrl.QueuePosition)
	r.POST("/upload-proof", uploadCtrl.UploadProof)

	// Admin (ต้องมี token)
	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	r.PUT("/queue-config", auth, queueCtrl.SaveConfig)
	r.POST("/queue-reset", auth, queueCtrl.Reset)
}
