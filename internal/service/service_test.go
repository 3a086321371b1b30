package service

import (
	"elearn_backend/internal/config"
	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB เปิด sqlite in-memory แยกต่อ test พร้อม schema ครบ
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Test{},
		&model.Question{},
		&model.Option{},
		&model.TestScore{},
		&model.CourseProgress{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret-0123456789abcdef0123456789",
			ExpireTime: 24 * time.Hour,
		},
	}
}

var userSeq int

func seedUser(t *testing.T, db *gorm.DB, role model.UserRole) *model.User {
	t.Helper()
	userSeq++
	user := &model.User{
		Email:     fmt.Sprintf("user%d@example.com", userSeq),
		Password:  "hashed",
		FirstName: "สมชาย",
		LastName:  "ใจดี",
		Role:      role,
		IsActive:  true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedCourse(t *testing.T, db *gorm.DB, teacherID uint) *model.Course {
	t.Helper()
	course := &model.Course{
		Title:       "ภาษาไทยเบื้องต้น",
		Description: "หลักสูตรทดสอบ",
		TeacherID:   teacherID,
	}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return course
}

func claimsFor(user *model.User) *util.Claims {
	return &util.Claims{UserID: user.ID, Email: user.Email, Role: user.Role}
}

func newTestService(db *gorm.DB) *TestService {
	return NewTestService(
		repository.NewTestRepository(db),
		repository.NewCourseRepository(db),
		repository.NewScoreRepository(db),
		repository.NewProgressRepository(db),
	)
}

func newCourseService(db *gorm.DB) *CourseService {
	return NewCourseService(
		repository.NewCourseRepository(db),
		repository.NewProgressRepository(db),
		nil, // storage ไม่ใช้ใน test เหล่านี้
		nil, // ไม่มี redis = อ่านตรงจาก DB
	)
}

// questionSpec คือคำถามหนึ่งข้อกับ index ของตัวเลือกที่ถูก
type questionSpec struct {
	options int
	correct int
}

func seedTest(t *testing.T, db *gorm.DB, svc *TestService, claims *util.Claims, courseID uint, testType model.TestType, passing *int, specs []questionSpec) *model.Test {
	t.Helper()

	questions := make([]QuestionInput, 0, len(specs))
	for qi, spec := range specs {
		q := QuestionInput{QuestionText: fmt.Sprintf("คำถามข้อ %d", qi+1)}
		for oi := 0; oi < spec.options; oi++ {
			q.Options = append(q.Options, OptionInput{
				Text:      fmt.Sprintf("ตัวเลือก %d", oi+1),
				IsCorrect: oi == spec.correct,
			})
		}
		questions = append(questions, q)
	}

	test, err := svc.CreateTest(claims, courseID, TestInput{
		Type:         testType,
		PassingScore: passing,
		Questions:    questions,
	})
	if err != nil {
		t.Fatalf("seed test: %v", err)
	}
	return test
}

// correctAnswers เลือกคำตอบที่ถูกของ n ข้อแรก และคำตอบผิดของข้อที่เหลือ
func pickAnswers(t *testing.T, test *model.Test, correctCount int) []AnswerInput {
	t.Helper()

	answers := make([]AnswerInput, 0, len(test.Questions))
	for qi, q := range test.Questions {
		wantCorrect := qi < correctCount
		picked := false
		for _, opt := range q.Options {
			if opt.IsCorrect == wantCorrect {
				answers = append(answers, AnswerInput{QuestionID: q.ID, SelectedOptionID: opt.ID})
				picked = true
				break
			}
		}
		if !picked {
			t.Fatalf("question %d has no option with isCorrect=%v", q.ID, wantCorrect)
		}
	}
	return answers
}

func progressOf(t *testing.T, db *gorm.DB, courseID, userID uint) model.ProgressStatus {
	t.Helper()

	var row model.CourseProgress
	err := db.Where("course_id = ? AND user_id = ?", courseID, userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProgressNotStarted
	}
	if err != nil {
		t.Fatalf("read progress: %v", err)
	}
	return row.Status
}

func intPtr(v int) *int { return &v }
