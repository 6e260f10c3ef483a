package main

import (
	"fmt"
	"log"

	"github.com/Sittipanpee/dessert-site/configs"
	"github.com/Sittipanpee/dessert-site/middlewares"
	"github.com/Sittipanpee/dessert-site/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg.AdminPassphrase); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedQueueConfig(); err != nil {
		log.Fatalf("seed queue config failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// HTTP
	r := gin.Default()

	r.Use(middlewares.CORSMiddleware())

	// เสิร์ฟสลิปที่อัปโหลด
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
