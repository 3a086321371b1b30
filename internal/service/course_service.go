package service

import (
	"context"
	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	courseCacheKey = "courses:all"
	courseCacheTTL = 5 * time.Minute
)

type CourseService struct {
	CourseRepo   *repository.CourseRepository
	ProgressRepo *repository.ProgressRepository
	Storage      *StorageService
	Redis        *redis.Client
}

func NewCourseService(courseRepo *repository.CourseRepository, progressRepo *repository.ProgressRepository, storage *StorageService, rdb *redis.Client) *CourseService {
	return &CourseService{
		CourseRepo:   courseRepo,
		ProgressRepo: progressRepo,
		Storage:      storage,
		Redis:        rdb,
	}
}

type CourseInput struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=5000"`
}

// CourseView คือรูปแบบหลักสูตรที่ส่งออกหน้า list/detail
// แนบเฉพาะข้อมูลย่อของครูผู้สอน
type CourseView struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	CoverImage  string             `json:"coverImage,omitempty"`
	TeacherID   uint               `json:"teacherId"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Teacher     *model.UserSummary `json:"teacher,omitempty"`
}

func NewCourseView(c *model.Course) CourseView {
	view := CourseView{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		CoverImage:  c.CoverImage,
		TeacherID:   c.TeacherID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.Teacher != nil {
		summary := c.Teacher.Summary()
		view.Teacher = &summary
	}
	return view
}

// ListCourses อ่านผ่าน cache รายการหลักสูตรทั้งหมดเป็นหน้า public
// ที่โดนยิงบ่อยที่สุดของระบบ
func (s *CourseService) ListCourses(ctx context.Context) ([]CourseView, error) {
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, courseCacheKey).Result(); err == nil {
			var cached []CourseView
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		}
	}

	courses, err := s.CourseRepo.FindAll()
	if err != nil {
		return nil, err
	}

	views := make([]CourseView, 0, len(courses))
	for i := range courses {
		views = append(views, NewCourseView(&courses[i]))
	}

	if s.Redis != nil {
		if data, err := json.Marshal(views); err == nil {
			s.Redis.Set(ctx, courseCacheKey, data, courseCacheTTL)
		}
	}
	return views, nil
}

func (s *CourseService) invalidateListCache(ctx context.Context) {
	if s.Redis != nil {
		s.Redis.Del(ctx, courseCacheKey)
	}
}

func (s *CourseService) GetCourse(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByIDWithTests(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

func (s *CourseService) ListByTeacher(teacherID uint) ([]CourseView, error) {
	courses, err := s.CourseRepo.FindByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	views := make([]CourseView, 0, len(courses))
	for i := range courses {
		views = append(views, NewCourseView(&courses[i]))
	}
	return views, nil
}

func (s *CourseService) CreateCourse(ctx context.Context, teacherID uint, input CourseInput) (*model.Course, error) {
	course := &model.Course{
		Title:       input.Title,
		Description: input.Description,
		TeacherID:   teacherID,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx)
	return course, nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, claims *util.Claims, id uint, input CourseInput) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	} else if err != nil {
		return nil, err
	}

	if course.TeacherID != claims.UserID {
		return nil, util.ErrPermissionDenied
	}

	course.Title = input.Title
	course.Description = input.Description
	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx)
	return course, nil
}

func (s *CourseService) DeleteCourse(ctx context.Context, claims *util.Claims, id uint) error {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrCourseNotFound
	} else if err != nil {
		return err
	}

	if course.TeacherID != claims.UserID {
		return util.ErrPermissionDenied
	}

	if err := s.CourseRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateListCache(ctx)
	return nil
}

// StartCourse คือ action "เริ่มเรียน" ของนักเรียน ตั้งสถานะเป็น
// in progress แต่จะไม่ลดสถานะหลักสูตรที่จบแล้ว
func (s *CourseService) StartCourse(userID, courseID uint) (*model.CourseProgress, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	current := model.ProgressNotStarted
	if row, err := s.ProgressRepo.FindByCourseAndUser(courseID, userID); err == nil {
		current = row.Status
	}

	next, changed := model.StartProgress(current)
	progress := &model.CourseProgress{CourseID: courseID, UserID: userID, Status: next}
	if changed {
		if err := s.ProgressRepo.Upsert(progress); err != nil {
			return nil, err
		}
	}
	return progress, nil
}

// UploadCover อัปโหลดภาพปกหลักสูตรขึ้น storage แล้วบันทึก URL
func (s *CourseService) UploadCover(ctx context.Context, claims *util.Claims, courseID uint, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", util.ErrCourseNotFound
	} else if err != nil {
		return "", err
	}

	if course.TeacherID != claims.UserID {
		return "", util.ErrPermissionDenied
	}

	objectName := fmt.Sprintf("covers/%d_%d%s", courseID, time.Now().UnixNano(), filepath.Ext(filename))
	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", err
	}

	course.CoverImage = url
	if err := s.CourseRepo.Update(course); err != nil {
		return "", err
	}
	s.invalidateListCache(ctx)
	return url, nil
}
