package repository

import (
	"elearn_backend/internal/model"

	"gorm.io/gorm"
)

type TestRepository struct {
	DB *gorm.DB
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{DB: db}
}

// Create บันทึกแบบทดสอบพร้อมคำถามและตัวเลือกที่ซ้อนอยู่ในคราวเดียว
func (r *TestRepository) Create(test *model.Test) error {
	return r.DB.Create(test).Error
}

func (r *TestRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	err := r.DB.First(&test, id).Error
	return &test, err
}

func (r *TestRepository) FindByIDWithQuestions(id uint) (*model.Test, error) {
	var test model.Test
	err := r.DB.
		Preload("Questions").
		Preload("Questions.Options").
		First(&test, id).Error
	return &test, err
}

func (r *TestRepository) FindByCourse(courseID uint) ([]model.Test, error) {
	var tests []model.Test
	err := r.DB.
		Preload("Questions").
		Preload("Questions.Options").
		Where("course_id = ?", courseID).
		Order("id").
		Find(&tests).Error
	return tests, err
}

func (r *TestRepository) Update(test *model.Test) error {
	return r.DB.Omit("Questions").Save(test).Error
}

// ReplaceQuestions ลบคำถามเดิมทั้งชุดแล้วเขียนชุดใหม่แทน
func (r *TestRepository) ReplaceQuestions(testID uint, questions []model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		questionIDs := tx.Model(&model.Question{}).Select("id").Where("test_id = ?", testID)
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		if err := tx.Where("test_id = ?", testID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].ID = 0
			questions[i].TestID = testID
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *TestRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		questionIDs := tx.Model(&model.Question{}).Select("id").Where("test_id = ?", id)
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		if err := tx.Where("test_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("test_id = ?", id).Delete(&model.TestScore{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Test{}, id).Error
	})
}
