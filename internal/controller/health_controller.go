package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// HealthCheck godoc
// @Summary สถานะของระบบ
// @Tags health
// @Produce json
// @Success 200 {object} object
// @Router /api/health [get]
func (ctl *HealthController) HealthCheck(c *gin.Context) {
	database := "up"
	status := http.StatusOK

	if sqlDB, err := ctl.DB.DB(); err != nil || sqlDB.Ping() != nil {
		database = "down"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":   "ok",
		"database": database,
	})
}
