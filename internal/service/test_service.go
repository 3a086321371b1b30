package service

import (
	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type TestService struct {
	TestRepo     *repository.TestRepository
	CourseRepo   *repository.CourseRepository
	ScoreRepo    *repository.ScoreRepository
	ProgressRepo *repository.ProgressRepository
}

func NewTestService(testRepo *repository.TestRepository, courseRepo *repository.CourseRepository, scoreRepo *repository.ScoreRepository, progressRepo *repository.ProgressRepository) *TestService {
	return &TestService{
		TestRepo:     testRepo,
		CourseRepo:   courseRepo,
		ScoreRepo:    scoreRepo,
		ProgressRepo: progressRepo,
	}
}

type OptionInput struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

type QuestionInput struct {
	QuestionText string        `json:"questionText" binding:"required"`
	Options      []OptionInput `json:"options" binding:"required,min=2,dive"`
}

type TestInput struct {
	Type         model.TestType  `json:"type" binding:"required,oneof=pre post"`
	PassingScore *int            `json:"passingScore" binding:"omitempty,gte=0,lte=100"`
	Questions    []QuestionInput `json:"questions" binding:"required,min=1,dive"`
}

type AnswerInput struct {
	QuestionID       uint `json:"questionId" binding:"required"`
	SelectedOptionID uint `json:"selectedOptionId" binding:"required"`
}

type SubmitResult struct {
	Score          int `json:"score"`
	CorrectAnswers int `json:"correctAnswers"`
	TotalQuestions int `json:"totalQuestions"`
}

func buildQuestions(inputs []QuestionInput) []model.Question {
	questions := make([]model.Question, 0, len(inputs))
	for _, q := range inputs {
		question := model.Question{QuestionText: q.QuestionText}
		for _, o := range q.Options {
			question.Options = append(question.Options, model.Option{
				Text:      o.Text,
				IsCorrect: o.IsCorrect,
			})
		}
		questions = append(questions, question)
	}
	return questions
}

func (s *TestService) ownedCourse(claims *util.Claims, courseID uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	} else if err != nil {
		return nil, err
	}
	if course.TeacherID != claims.UserID {
		return nil, util.ErrPermissionDenied
	}
	return course, nil
}

// IsCourseOwner บอกว่า claims (อาจเป็น nil) เป็นครูเจ้าของหลักสูตรนี้ไหม
func (s *TestService) IsCourseOwner(claims *util.Claims, courseID uint) bool {
	if claims == nil || claims.Role != model.RoleTeacher {
		return false
	}
	course, err := s.CourseRepo.FindByID(courseID)
	return err == nil && course.TeacherID == claims.UserID
}

// CreateTest สร้างแบบทดสอบพร้อมคำถาม/ตัวเลือกซ้อนในหลักสูตรของครูผู้เรียก
func (s *TestService) CreateTest(claims *util.Claims, courseID uint, input TestInput) (*model.Test, error) {
	if _, err := s.ownedCourse(claims, courseID); err != nil {
		return nil, err
	}

	test := &model.Test{
		CourseID:     courseID,
		Type:         input.Type,
		PassingScore: input.PassingScore,
		Questions:    buildQuestions(input.Questions),
	}
	if err := s.TestRepo.Create(test); err != nil {
		return nil, err
	}
	return test, nil
}

// UpdateTest แก้ไขแบบทดสอบและแทนที่ชุดคำถามเดิมทั้งชุด
func (s *TestService) UpdateTest(claims *util.Claims, testID uint, input TestInput) (*model.Test, error) {
	test, err := s.TestRepo.FindByID(testID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTestNotFound
	} else if err != nil {
		return nil, err
	}

	if _, err := s.ownedCourse(claims, test.CourseID); err != nil {
		return nil, err
	}

	test.Type = input.Type
	test.PassingScore = input.PassingScore
	if err := s.TestRepo.Update(test); err != nil {
		return nil, err
	}
	if err := s.TestRepo.ReplaceQuestions(test.ID, buildQuestions(input.Questions)); err != nil {
		return nil, err
	}

	return s.TestRepo.FindByIDWithQuestions(test.ID)
}

func (s *TestService) DeleteTest(claims *util.Claims, testID uint) error {
	test, err := s.TestRepo.FindByID(testID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrTestNotFound
	} else if err != nil {
		return err
	}

	if _, err := s.ownedCourse(claims, test.CourseID); err != nil {
		return err
	}
	return s.TestRepo.Delete(testID)
}

func (s *TestService) ListByCourse(courseID uint) ([]model.Test, error) {
	return s.TestRepo.FindByCourse(courseID)
}

func (s *TestService) GetWithQuestions(testID uint) (*model.Test, error) {
	test, err := s.TestRepo.FindByIDWithQuestions(testID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTestNotFound
	}
	return test, err
}

// Submit ตรวจคำตอบ คิดคะแนนเป็นเปอร์เซ็นต์ (ปัดครึ่งขึ้น) บันทึกคะแนน
// แล้วอัปเดตความคืบหน้าของหลักสูตรตามชนิดแบบทดสอบ
//
// คำตอบที่อ้างคำถามนอกแบบทดสอบนี้จะถูกข้าม และถ้าส่งคำตอบซ้ำใน
// คำถามเดียวกันจะยึดค่าตัวสุดท้าย
func (s *TestService) Submit(userID, testID uint, answers []AnswerInput) (*SubmitResult, error) {
	test, err := s.TestRepo.FindByIDWithQuestions(testID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTestNotFound
	} else if err != nil {
		return nil, err
	}

	total := len(test.Questions)
	if total == 0 {
		return nil, util.ErrTestHasNoQuestions
	}

	picked := make(map[uint]uint, len(answers))
	for _, a := range answers {
		picked[a.QuestionID] = a.SelectedOptionID
	}

	correct := 0
	for _, q := range test.Questions {
		optionID, answered := picked[q.ID]
		if !answered {
			continue
		}
		for _, opt := range q.Options {
			if opt.ID == optionID {
				if opt.IsCorrect {
					correct++
				}
				break
			}
		}
	}

	score := int(math.Round(float64(correct) * 100 / float64(total)))

	if err := s.ScoreRepo.Upsert(&model.TestScore{
		TestID:  test.ID,
		UserID:  userID,
		Score:   score,
		TakenAt: time.Now(),
	}); err != nil {
		return nil, err
	}

	// การเขียนคะแนนกับความคืบหน้าเป็นคนละ upsert กัน ไม่ได้อยู่ใน
	// transaction เดียว (พฤติกรรมเดิมของระบบ)
	current := model.ProgressNotStarted
	if row, err := s.ProgressRepo.FindByCourseAndUser(test.CourseID, userID); err == nil {
		current = row.Status
	}
	if next, changed := model.NextProgress(current, test.Type, score, test.PassingThreshold()); changed {
		if err := s.ProgressRepo.Upsert(&model.CourseProgress{
			CourseID: test.CourseID,
			UserID:   userID,
			Status:   next,
		}); err != nil {
			return nil, err
		}
	}

	return &SubmitResult{Score: score, CorrectAnswers: correct, TotalQuestions: total}, nil
}

// ListScores ให้เฉพาะครูเจ้าของหลักสูตรดูคะแนนทั้งหมดของแบบทดสอบ
func (s *TestService) ListScores(claims *util.Claims, testID uint) ([]model.TestScore, error) {
	test, err := s.TestRepo.FindByID(testID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTestNotFound
	} else if err != nil {
		return nil, err
	}

	if _, err := s.ownedCourse(claims, test.CourseID); err != nil {
		return nil, err
	}
	return s.ScoreRepo.FindByTest(testID)
}

// ExportScores สร้างไฟล์ xlsx รายงานคะแนนของแบบทดสอบ
func (s *TestService) ExportScores(claims *util.Claims, testID uint) (*excelize.File, error) {
	scores, err := s.ListScores(claims, testID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Scores"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"User ID", "First Name", "Last Name", "Email", "Score", "Taken At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, sc := range scores {
		values := []interface{}{sc.UserID, "", "", "", sc.Score, sc.TakenAt.Format("2006-01-02 15:04:05")}
		if sc.User != nil {
			values[1] = sc.User.FirstName
			values[2] = sc.User.LastName
			values[3] = sc.User.Email
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	if err := f.SetColWidth(sheet, "A", "F", 20); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}
	return f, nil
}
