package controller

import (
	"elearn_backend/internal/model"
	"elearn_backend/internal/service"
	"elearn_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

func (ctl *CourseController) handleCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(c, "ไม่พบหลักสูตร")
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(c)
	default:
		util.LogInternalError(c, err)
	}
}

// ListCourses godoc
// @Summary รายการหลักสูตรทั้งหมด
// @Description หน้า public ไม่ต้องเข้าสู่ระบบ มี cache ฝั่งเซิร์ฟเวอร์
// @Tags courses
// @Produce json
// @Success 200 {object} object
// @Router /api/courses [get]
func (ctl *CourseController) ListCourses(c *gin.Context) {
	courses, err := ctl.CourseService.ListCourses(c.Request.Context())
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.OK(c, gin.H{"courses": courses})
}

// GetTeacherCourses godoc
// @Summary หลักสูตรของครูคนหนึ่ง
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param teacherId path int true "teacher id"
// @Success 200 {object} object
// @Router /api/courses/teacher/{teacherId} [get]
func (ctl *CourseController) GetTeacherCourses(c *gin.Context) {
	teacherID, ok := pathID(c, "teacherId")
	if !ok {
		return
	}

	courses, err := ctl.CourseService.ListByTeacher(teacherID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.OK(c, gin.H{"courses": courses})
}

// GetCourse godoc
// @Summary รายละเอียดหลักสูตรพร้อมแบบทดสอบ
// @Description เฉลย (isCorrect) จะติดมาเฉพาะเมื่อผู้เรียกเป็นครูเจ้าของหลักสูตร
// @Tags courses
// @Produce json
// @Param id path int true "course id"
// @Success 200 {object} object
// @Failure 404 {object} util.ErrorResponse
// @Router /api/courses/{id} [get]
func (ctl *CourseController) GetCourse(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	course, err := ctl.CourseService.GetCourse(id)
	if err != nil {
		ctl.handleCourseError(c, err)
		return
	}

	claims := util.GetUserFromContext(c)
	includeAnswers := claims != nil && claims.Role == model.RoleTeacher && claims.UserID == course.TeacherID

	view := service.NewCourseView(course)
	tests := make([]TestView, 0, len(course.Tests))
	for i := range course.Tests {
		tests = append(tests, newTestView(&course.Tests[i], includeAnswers))
	}

	util.OK(c, gin.H{"course": view, "tests": tests})
}

// CreateCourse godoc
// @Summary สร้างหลักสูตร (ครูเท่านั้น)
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CourseInput true "ข้อมูลหลักสูตร"
// @Success 201 {object} object
// @Failure 400 {object} util.ErrorResponse
// @Router /api/courses [post]
func (ctl *CourseController) CreateCourse(c *gin.Context) {
	var input service.CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.ValidationFailed(c, err)
		return
	}

	claims := util.GetUserFromContext(c)
	course, err := ctl.CourseService.CreateCourse(c.Request.Context(), claims.UserID, input)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}

	util.Created(c, gin.H{
		"message": "สร้างหลักสูตรสำเร็จ",
		"course":  service.NewCourseView(course),
	})
}

// UpdateCourse godoc
// @Summary แก้ไขหลักสูตร (ครูเจ้าของเท่านั้น)
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Param body body service.CourseInput true "ข้อมูลหลักสูตร"
// @Success 200 {object} object
// @Failure 403 {object} util.ErrorResponse
// @Router /api/courses/{id} [put]
func (ctl *CourseController) UpdateCourse(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input service.CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.ValidationFailed(c, err)
		return
	}

	claims := util.GetUserFromContext(c)
	course, err := ctl.CourseService.UpdateCourse(c.Request.Context(), claims, id, input)
	if err != nil {
		ctl.handleCourseError(c, err)
		return
	}

	util.OK(c, gin.H{
		"message": "อัปเดตหลักสูตรสำเร็จ",
		"course":  service.NewCourseView(course),
	})
}

// DeleteCourse godoc
// @Summary ลบหลักสูตร (ครูเจ้าของเท่านั้น)
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 200 {object} object
// @Failure 403 {object} util.ErrorResponse
// @Router /api/courses/{id} [delete]
func (ctl *CourseController) DeleteCourse(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	claims := util.GetUserFromContext(c)
	if err := ctl.CourseService.DeleteCourse(c.Request.Context(), claims, id); err != nil {
		ctl.handleCourseError(c, err)
		return
	}

	util.OK(c, gin.H{"message": "ลบหลักสูตรสำเร็จ"})
}

// StartCourse godoc
// @Summary นักเรียนกดเริ่มเรียนหลักสูตร
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 200 {object} object
// @Router /api/courses/{id}/start [post]
func (ctl *CourseController) StartCourse(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	claims := util.GetUserFromContext(c)
	progress, err := ctl.CourseService.StartCourse(claims.UserID, id)
	if err != nil {
		ctl.handleCourseError(c, err)
		return
	}

	util.OK(c, gin.H{
		"message":  "เริ่มเรียนหลักสูตรแล้ว",
		"progress": progress,
	})
}

// UploadCover godoc
// @Summary อัปโหลดภาพปกหลักสูตร (ครูเจ้าของเท่านั้น)
// @Tags courses
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Param image formData file true "ไฟล์ภาพ"
// @Success 200 {object} object
// @Router /api/courses/{id}/cover [post]
func (ctl *CourseController) UploadCover(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		util.BadRequest(c, "กรุณาแนบไฟล์ภาพ")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	defer file.Close()

	claims := util.GetUserFromContext(c)
	url, err := ctl.CourseService.UploadCover(
		c.Request.Context(), claims, id,
		fileHeader.Filename, file, fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		ctl.handleCourseError(c, err)
		return
	}

	util.OK(c, gin.H{
		"message":    "อัปโหลดภาพปกสำเร็จ",
		"coverImage": url,
	})
}
