package util

import (
	"elearn_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ข้อความมาตรฐานฝั่งผู้ใช้ (ภาษาไทย)
const (
	MsgSystemError  = "เกิดข้อผิดพลาดในระบบ"
	MsgInvalidData  = "ข้อมูลไม่ถูกต้อง"
	MsgTokenMissing = "ไม่พบ token การเข้าสู่ระบบ"
	MsgTokenInvalid = "Token ไม่ถูกต้อง"
	MsgForbidden    = "ไม่มีสิทธิ์เข้าถึงข้อมูลนี้"
)

// ErrorResponse คือรูปแบบ error ทุกจุดของ API: {message} และ
// {message, errors} สำหรับ validation
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func OK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, payload)
}

func Created(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusCreated, payload)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Message: message})
}

func ValidationFailed(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Message: MsgInvalidData,
		Errors:  BindingErrors(err),
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, MsgForbidden)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, MsgSystemError)
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	InternalServerError(c)
}
