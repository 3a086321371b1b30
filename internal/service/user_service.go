package service

import (
	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo  *repository.UserRepository
	ScoreRepo *repository.ScoreRepository
}

func NewUserService(userRepo *repository.UserRepository, scoreRepo *repository.ScoreRepository) *UserService {
	return &UserService{UserRepo: userRepo, ScoreRepo: scoreRepo}
}

func (s *UserService) ListUsers() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

// GetUserScores คืนคะแนนของ userID ดูได้เฉพาะเจ้าของเอง
// ส่วนครูเห็นเฉพาะคะแนนของแบบทดสอบในหลักสูตรของตัวเอง
func (s *UserService) GetUserScores(claims *util.Claims, userID uint) ([]model.TestScore, error) {
	if claims.UserID == userID {
		return s.ScoreRepo.FindByUser(userID)
	}
	if claims.Role == model.RoleTeacher {
		return s.ScoreRepo.FindByUserForTeacher(userID, claims.UserID)
	}
	return nil, util.ErrPermissionDenied
}
