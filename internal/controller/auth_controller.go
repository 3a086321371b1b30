package controller

import (
	"elearn_backend/internal/model"
	"elearn_backend/internal/service"
	"elearn_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Role            string `json:"role" binding:"omitempty,oneof=STUDENT TEACHER"`
}

// Register godoc
// @Summary สมัครสมาชิก
// @Description สร้างบัญชีผู้ใช้ใหม่ อีเมลซ้ำไม่ได้
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "ข้อมูลสมัครสมาชิก"
// @Success 201 {object} object
// @Failure 400 {object} util.ErrorResponse
// @Router /api/auth/register [post]
func (ctl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(c, err)
		return
	}

	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		c.JSON(http.StatusBadRequest, util.ErrorResponse{
			Message: util.MsgInvalidData,
			Errors:  []util.FieldError{{Field: "confirmPassword", Message: "รหัสผ่านไม่ตรงกัน"}},
		})
		return
	}

	role := model.RoleStudent
	if req.Role != "" {
		role = model.UserRole(req.Role)
	}

	user := &model.User{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
	}

	if err := ctl.AuthService.Register(user); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.BadRequest(c, "อีเมลนี้ถูกใช้งานแล้ว")
		} else {
			util.LogInternalError(c, err)
		}
		return
	}

	util.Created(c, gin.H{
		"message": "สมัครสมาชิกสำเร็จ",
		"user":    user.Public(),
	})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary เข้าสู่ระบบ
// @Description ตรวจสอบอีเมล/รหัสผ่าน แล้วออก token อายุ 24 ชั่วโมง
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "ข้อมูลเข้าสู่ระบบ"
// @Success 200 {object} object
// @Failure 401 {object} util.ErrorResponse
// @Router /api/auth/login [post]
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(c, err)
		return
	}

	token, user, err := ctl.AuthService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidCredentials):
			util.Unauthorized(c, "อีเมลหรือรหัสผ่านไม่ถูกต้อง")
		case errors.Is(err, util.ErrAccountSuspended):
			util.Unauthorized(c, "บัญชีผู้ใช้ถูกระงับ")
		default:
			util.LogInternalError(c, err)
		}
		return
	}

	util.OK(c, gin.H{
		"message": "เข้าสู่ระบบสำเร็จ",
		"token":   token,
		"user":    user.Public(),
	})
}

// Me godoc
// @Summary ข้อมูลผู้ใช้ปัจจุบัน
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} object
// @Failure 404 {object} util.ErrorResponse
// @Router /api/auth/me [get]
func (ctl *AuthController) Me(c *gin.Context) {
	user, err := ctl.AuthService.GetCurrentUser(c)
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
