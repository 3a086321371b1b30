package controller

import (
	"elearn_backend/internal/model"
	"elearn_backend/internal/service"
	"elearn_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

func (ctl *ProgressController) handleProgressError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(c, "ไม่พบหลักสูตร")
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(c)
	case errors.Is(err, util.ErrInvalidStatus):
		util.BadRequest(c, "สถานะไม่ถูกต้อง")
	default:
		util.LogInternalError(c, err)
	}
}

// GetProgress godoc
// @Summary ความคืบหน้าของนักเรียนในหลักสูตร
// @Description ดูได้เฉพาะเจ้าของข้อมูลหรือครูเจ้าของหลักสูตร
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Param userId path int true "user id"
// @Success 200 {object} object
// @Failure 403 {object} util.ErrorResponse
// @Router /api/courses/{id}/progress/{userId} [get]
func (ctl *ProgressController) GetProgress(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	claims := util.GetUserFromContext(c)
	progress, err := ctl.ProgressService.Get(claims, courseID, userID)
	if err != nil {
		ctl.handleProgressError(c, err)
		return
	}

	util.OK(c, gin.H{"progress": progress})
}

type SetProgressRequest struct {
	Status model.ProgressStatus `json:"status" binding:"required"`
}

// SetProgress godoc
// @Summary กำหนดสถานะความคืบหน้าโดยตรง
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Param userId path int true "user id"
// @Param body body SetProgressRequest true "สถานะ"
// @Success 200 {object} object
// @Router /api/courses/{id}/progress/{userId} [put]
func (ctl *ProgressController) SetProgress(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req SetProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(c, err)
		return
	}

	claims := util.GetUserFromContext(c)
	progress, err := ctl.ProgressService.Set(claims, courseID, userID, req.Status)
	if err != nil {
		ctl.handleProgressError(c, err)
		return
	}

	util.OK(c, gin.H{
		"message":  "อัปเดตความคืบหน้าสำเร็จ",
		"progress": progress,
	})
}
