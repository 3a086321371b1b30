package main

import (
	"elearn_backend/internal/app"
	"elearn_backend/internal/config"
	"log"

	"github.com/joho/godotenv"
)

// @title E-Learning Platform API
// @version 1.0
// @description REST backend สำหรับแพลตฟอร์มการเรียนรู้ออนไลน์ (หลักสูตร แบบทดสอบก่อน/หลังเรียน และความคืบหน้า)
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// .env เป็นทางเลือก ใช้ตอนรันในเครื่อง
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	application.Run()
}
