package repository

import (
	"elearn_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Upsert บันทึกสถานะแบบ atomic ต่อ (course_id, user_id)
func (r *ProgressRepository) Upsert(progress *model.CourseProgress) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "course_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(progress).Error
}

func (r *ProgressRepository) FindByCourseAndUser(courseID, userID uint) (*model.CourseProgress, error) {
	var progress model.CourseProgress
	err := r.DB.Where("course_id = ? AND user_id = ?", courseID, userID).First(&progress).Error
	return &progress, err
}
