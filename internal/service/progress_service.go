package service

import (
	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	CourseRepo   *repository.CourseRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository, courseRepo *repository.CourseRepository) *ProgressService {
	return &ProgressService{ProgressRepo: progressRepo, CourseRepo: courseRepo}
}

// authorize: เจ้าของข้อมูลเอง หรือครูเจ้าของหลักสูตร
func (s *ProgressService) authorize(claims *util.Claims, course *model.Course, userID uint) error {
	if claims.UserID == userID {
		return nil
	}
	if claims.Role == model.RoleTeacher && course.TeacherID == claims.UserID {
		return nil
	}
	return util.ErrPermissionDenied
}

// Get คืนความคืบหน้าของนักเรียนในหลักสูตร ยังไม่มีแถว = "not started"
func (s *ProgressService) Get(claims *util.Claims, courseID, userID uint) (*model.CourseProgress, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	} else if err != nil {
		return nil, err
	}

	if err := s.authorize(claims, course, userID); err != nil {
		return nil, err
	}

	progress, err := s.ProgressRepo.FindByCourseAndUser(courseID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.CourseProgress{
			CourseID: courseID,
			UserID:   userID,
			Status:   model.ProgressNotStarted,
		}, nil
	}
	return progress, err
}

// Set กำหนดสถานะตรง ๆ (หน้าจอครู/หน้าจัดการ)
func (s *ProgressService) Set(claims *util.Claims, courseID, userID uint, status model.ProgressStatus) (*model.CourseProgress, error) {
	if !model.ValidProgressStatus(status) {
		return nil, util.ErrInvalidStatus
	}

	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	} else if err != nil {
		return nil, err
	}

	if err := s.authorize(claims, course, userID); err != nil {
		return nil, err
	}

	progress := &model.CourseProgress{CourseID: courseID, UserID: userID, Status: status}
	if err := s.ProgressRepo.Upsert(progress); err != nil {
		return nil, err
	}
	return progress, nil
}
