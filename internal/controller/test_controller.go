package controller

import (
	"elearn_backend/internal/model"
	"elearn_backend/internal/service"
	"elearn_backend/internal/util"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	TestService *service.TestService
}

func NewTestController(testService *service.TestService) *TestController {
	return &TestController{TestService: testService}
}

// OptionView ซ่อนเฉลยจากนักเรียน: isCorrect จะถูก serialize เฉพาะ
// เมื่อผู้เรียกเป็นครูเจ้าของหลักสูตร
type OptionView struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	IsCorrect *bool  `json:"isCorrect,omitempty"`
}

type QuestionView struct {
	ID           uint         `json:"id"`
	QuestionText string       `json:"questionText"`
	Options      []OptionView `json:"options"`
}

type TestView struct {
	ID           uint           `json:"id"`
	CourseID     uint           `json:"courseId"`
	Type         model.TestType `json:"type"`
	PassingScore *int           `json:"passingScore"`
	CreatedAt    time.Time      `json:"createdAt"`
	Questions    []QuestionView `json:"questions"`
}

func newTestView(t *model.Test, includeAnswers bool) TestView {
	view := TestView{
		ID:           t.ID,
		CourseID:     t.CourseID,
		Type:         t.Type,
		PassingScore: t.PassingScore,
		CreatedAt:    t.CreatedAt,
		Questions:    make([]QuestionView, 0, len(t.Questions)),
	}
	for _, q := range t.Questions {
		qv := QuestionView{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Options:      make([]OptionView, 0, len(q.Options)),
		}
		for _, o := range q.Options {
			ov := OptionView{ID: o.ID, Text: o.Text}
			if includeAnswers {
				correct := o.IsCorrect
				ov.IsCorrect = &correct
			}
			qv.Options = append(qv.Options, ov)
		}
		view.Questions = append(view.Questions, qv)
	}
	return view
}

// ScoreView คือคะแนนหนึ่งแถวพร้อมข้อมูลย่อของนักเรียน สำหรับหน้าครู
type ScoreView struct {
	ID      uint               `json:"id"`
	TestID  uint               `json:"testId"`
	UserID  uint               `json:"userId"`
	Score   int                `json:"score"`
	TakenAt time.Time          `json:"takenAt"`
	User    *model.UserSummary `json:"user,omitempty"`
}

func (ctl *TestController) handleTestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrTestNotFound):
		util.NotFound(c, "ไม่พบแบบทดสอบ")
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(c, "ไม่พบหลักสูตร")
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(c)
	case errors.Is(err, util.ErrTestHasNoQuestions):
		util.BadRequest(c, "แบบทดสอบนี้ยังไม่มีคำถาม")
	default:
		util.LogInternalError(c, err)
	}
}

// ListCourseTests godoc
// @Summary แบบทดสอบทั้งหมดของหลักสูตร
// @Tags tests
// @Produce json
// @Param id path int true "course id"
// @Success 200 {object} object
// @Router /api/courses/{id}/tests [get]
func (ctl *TestController) ListCourseTests(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}

	tests, err := ctl.TestService.ListByCourse(courseID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}

	claims := util.GetUserFromContext(c)
	includeAnswers := ctl.TestService.IsCourseOwner(claims, courseID)

	views := make([]TestView, 0, len(tests))
	for i := range tests {
		views = append(views, newTestView(&tests[i], includeAnswers))
	}
	util.OK(c, gin.H{"tests": views})
}

// CreateTest godoc
// @Summary สร้างแบบทดสอบพร้อมคำถามและตัวเลือก (ครูเจ้าของเท่านั้น)
// @Tags tests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Param body body service.TestInput true "แบบทดสอบ"
// @Success 201 {object} object
// @Failure 400 {object} util.ErrorResponse
// @Router /api/courses/{id}/tests [post]
func (ctl *TestController) CreateTest(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input service.TestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.ValidationFailed(c, err)
		return
	}

	claims := util.GetUserFromContext(c)
	test, err := ctl.TestService.CreateTest(claims, courseID, input)
	if err != nil {
		ctl.handleTestError(c, err)
		return
	}

	util.Created(c, gin.H{
		"message": "สร้างแบบทดสอบสำเร็จ",
		"test":    newTestView(test, true),
	})
}

// UpdateTest godoc
// @Summary แก้ไขแบบทดสอบและแทนที่ชุดคำถาม (ครูเจ้าของเท่านั้น)
// @Tags tests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param testId path int true "test id"
// @Param body body service.TestInput true "แบบทดสอบ"
// @Success 200 {object} object
// @Router /api/tests/{testId} [put]
func (ctl *TestController) UpdateTest(c *gin.Context) {
	testID, ok := pathID(c, "testId")
	if !ok {
		return
	}

	var input service.TestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.ValidationFailed(c, err)
		return
	}

	claims := util.GetUserFromContext(c)
	test, err := ctl.TestService.UpdateTest(claims, testID, input)
	if err != nil {
		ctl.handleTestError(c, err)
		return
	}

	util.OK(c, gin.H{
		"message": "อัปเดตแบบทดสอบสำเร็จ",
		"test":    newTestView(test, true),
	})
}

// DeleteTest godoc
// @Summary ลบแบบทดสอบ (ครูเจ้าของเท่านั้น)
// @Tags tests
// @Produce json
// @Security ApiKeyAuth
// @Param testId path int true "test id"
// @Success 200 {object} object
// @Router /api/tests/{testId} [delete]
func (ctl *TestController) DeleteTest(c *gin.Context) {
	testID, ok := pathID(c, "testId")
	if !ok {
		return
	}

	claims := util.GetUserFromContext(c)
	if err := ctl.TestService.DeleteTest(claims, testID); err != nil {
		ctl.handleTestError(c, err)
		return
	}

	util.OK(c, gin.H{"message": "ลบแบบทดสอบสำเร็จ"})
}

// GetTestQuestions godoc
// @Summary คำถามและตัวเลือกของแบบทดสอบ
// @Description นักเรียนจะไม่เห็น isCorrect เห็นเฉพาะครูเจ้าของหลักสูตร
// @Tags tests
// @Produce json
// @Param testId path int true "test id"
// @Success 200 {object} object
// @Failure 404 {object} util.ErrorResponse
// @Router /api/tests/{testId}/questions [get]
func (ctl *TestController) GetTestQuestions(c *gin.Context) {
	testID, ok := pathID(c, "testId")
	if !ok {
		return
	}

	test, err := ctl.TestService.GetWithQuestions(testID)
	if err != nil {
		ctl.handleTestError(c, err)
		return
	}

	claims := util.GetUserFromContext(c)
	includeAnswers := ctl.TestService.IsCourseOwner(claims, test.CourseID)

	view := newTestView(test, includeAnswers)
	util.OK(c, gin.H{"questions": view.Questions})
}

type SubmitRequest struct {
	Answers []service.AnswerInput `json:"answers" binding:"required,dive"`
}

// SubmitTest godoc
// @Summary ส่งคำตอบแบบทดสอบ
// @Description ตรวจคะแนน บันทึกทับคะแนนเดิม และอัปเดตความคืบหน้าหลักสูตร
// @Tags tests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param testId path int true "test id"
// @Param body body SubmitRequest true "คำตอบ"
// @Success 200 {object} service.SubmitResult
// @Failure 400 {object} util.ErrorResponse
// @Router /api/tests/{testId}/submit [post]
func (ctl *TestController) SubmitTest(c *gin.Context) {
	testID, ok := pathID(c, "testId")
	if !ok {
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(c, err)
		return
	}

	claims := util.GetUserFromContext(c)
	result, err := ctl.TestService.Submit(claims.UserID, testID, req.Answers)
	if err != nil {
		ctl.handleTestError(c, err)
		return
	}

	util.OK(c, gin.H{
		"message":        "ส่งคำตอบสำเร็จ",
		"score":          result.Score,
		"correctAnswers": result.CorrectAnswers,
		"totalQuestions": result.TotalQuestions,
	})
}

// ListTestScores godoc
// @Summary คะแนนทั้งหมดของแบบทดสอบ (ครูเจ้าของเท่านั้น)
// @Tags tests
// @Produce json
// @Security ApiKeyAuth
// @Param testId path int true "test id"
// @Success 200 {object} object
// @Failure 403 {object} util.ErrorResponse
// @Router /api/tests/{testId}/scores [get]
func (ctl *TestController) ListTestScores(c *gin.Context) {
	testID, ok := pathID(c, "testId")
	if !ok {
		return
	}

	claims := util.GetUserFromContext(c)
	scores, err := ctl.TestService.ListScores(claims, testID)
	if err != nil {
		ctl.handleTestError(c, err)
		return
	}

	views := make([]ScoreView, 0, len(scores))
	for _, sc := range scores {
		view := ScoreView{
			ID:      sc.ID,
			TestID:  sc.TestID,
			UserID:  sc.UserID,
			Score:   sc.Score,
			TakenAt: sc.TakenAt,
		}
		if sc.User != nil {
			summary := sc.User.Summary()
			view.User = &summary
		}
		views = append(views, view)
	}
	util.OK(c, gin.H{"scores": views})
}

// ExportTestScores godoc
// @Summary ดาวน์โหลดคะแนนเป็นไฟล์ xlsx (ครูเจ้าของเท่านั้น)
// @Tags tests
// @Produce octet-stream
// @Security ApiKeyAuth
// @Param testId path int true "test id"
// @Success 200 {file} file
// @Router /api/tests/{testId}/scores/export [get]
func (ctl *TestController) ExportTestScores(c *gin.Context) {
	testID, ok := pathID(c, "testId")
	if !ok {
		return
	}

	claims := util.GetUserFromContext(c)
	file, err := ctl.TestService.ExportScores(claims, testID)
	if err != nil {
		ctl.handleTestError(c, err)
		return
	}

	filename := fmt.Sprintf("test_%d_scores.xlsx", testID)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		util.LogInternalError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
