package repository

import (
	"elearn_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScoreRepository struct {
	DB *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{DB: db}
}

// Upsert เขียนคะแนนแบบ atomic ต่อ (test_id, user_id) — แถวเดียวเสมอ
// การส่งซ้ำเขียนทับคะแนนเดิมและ refresh เวลา
func (r *ScoreRepository) Upsert(score *model.TestScore) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "test_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "taken_at", "updated_at"}),
	}).Create(score).Error
}

func (r *ScoreRepository) FindByUser(userID uint) ([]model.TestScore, error) {
	var scores []model.TestScore
	err := r.DB.Preload("Test").Where("user_id = ?", userID).Order("taken_at DESC").Find(&scores).Error
	return scores, err
}

// FindByUserForTeacher คืนเฉพาะคะแนนของแบบทดสอบในหลักสูตรที่ครูคนนั้นเป็นเจ้าของ
func (r *ScoreRepository) FindByUserForTeacher(userID, teacherID uint) ([]model.TestScore, error) {
	var scores []model.TestScore
	err := r.DB.Preload("Test").
		Joins("JOIN tests ON tests.id = test_scores.test_id").
		Joins("JOIN courses ON courses.id = tests.course_id").
		Where("test_scores.user_id = ? AND courses.teacher_id = ?", userID, teacherID).
		Order("test_scores.taken_at DESC").
		Find(&scores).Error
	return scores, err
}

func (r *ScoreRepository) FindByTest(testID uint) ([]model.TestScore, error) {
	var scores []model.TestScore
	err := r.DB.Preload("User").Where("test_id = ?", testID).Order("score DESC").Find(&scores).Error
	return scores, err
}

func (r *ScoreRepository) FindByTestAndUser(testID, userID uint) (*model.TestScore, error) {
	var score model.TestScore
	err := r.DB.Where("test_id = ? AND user_id = ?", testID, userID).First(&score).Error
	return &score, err
}
