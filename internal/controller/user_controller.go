package controller

import (
	"elearn_backend/internal/model"
	"elearn_backend/internal/service"
	"elearn_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// ListUsers godoc
// @Summary รายชื่อผู้ใช้ทั้งหมด
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} object
// @Router /api/users [get]
func (ctl *UserController) ListUsers(c *gin.Context) {
	users, err := ctl.UserService.ListUsers()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}

	out := make([]model.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	util.OK(c, gin.H{"users": out})
}

// GetUser godoc
// @Summary ข้อมูลผู้ใช้รายคน
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Success 200 {object} object
// @Failure 404 {object} util.ErrorResponse
// @Router /api/users/{id} [get]
func (ctl *UserController) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := ctl.UserService.GetUser(id)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(c, "ไม่พบผู้ใช้")
		} else {
			util.LogInternalError(c, err)
		}
		return
	}

	util.OK(c, gin.H{"user": user.Public()})
}

// GetUserScores godoc
// @Summary คะแนนสอบของผู้ใช้
// @Description เจ้าของดูของตัวเองได้ ครูเห็นเฉพาะคะแนนในหลักสูตรของตน
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "user id"
// @Success 200 {object} object
// @Failure 403 {object} util.ErrorResponse
// @Router /api/users/{userId}/scores [get]
func (ctl *UserController) GetUserScores(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	claims := util.GetUserFromContext(c)
	scores, err := ctl.UserService.GetUserScores(claims, userID)
	if err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(c)
		} else {
			util.LogInternalError(c, err)
		}
		return
	}

	util.OK(c, gin.H{"scores": scores})
}
