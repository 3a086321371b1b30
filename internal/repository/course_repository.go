package repository

import (
	"elearn_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Teacher").First(&course, id).Error
	return &course, err
}

// FindByIDWithTests โหลดหลักสูตรพร้อมแบบทดสอบ คำถาม และตัวเลือกทั้งหมด
func (r *CourseRepository) FindByIDWithTests(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.
		Preload("Teacher").
		Preload("Tests").
		Preload("Tests.Questions").
		Preload("Tests.Questions.Options").
		First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Teacher").Order("id").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByTeacher(teacherID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Teacher").Where("teacher_id = ?", teacherID).Order("id").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

// Delete ลบหลักสูตรพร้อมข้อมูลลูกทั้งหมด (tests, questions, options,
// scores, progress) ใน transaction เดียว
func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		testIDs := tx.Model(&model.Test{}).Select("id").Where("course_id = ?", id)
		questionIDs := tx.Model(&model.Question{}).Select("id").Where("test_id IN (?)", testIDs)

		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		if err := tx.Where("test_id IN (?)", testIDs).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("test_id IN (?)", testIDs).Delete(&model.TestScore{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.Test{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.CourseProgress{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Course{}, id).Error
	})
}
