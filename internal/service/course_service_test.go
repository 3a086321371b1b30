package service

import (
	"context"
	"elearn_backend/internal/model"
	"elearn_backend/internal/util"
	"errors"
	"testing"
)

func TestUpdateCourseNonOwnerForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	owner := seedUser(t, db, model.RoleTeacher)
	other := seedUser(t, db, model.RoleTeacher)
	course := seedCourse(t, db, owner.ID)

	_, err := svc.UpdateCourse(context.Background(), claimsFor(other), course.ID, CourseInput{
		Title: "ชื่อใหม่",
	})
	if !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}

	// ข้อมูลเดิมต้องไม่ถูกแก้
	var stored model.Course
	if err := db.First(&stored, course.ID).Error; err != nil {
		t.Fatalf("reload course: %v", err)
	}
	if stored.Title != course.Title {
		t.Errorf("title = %q, want unchanged %q", stored.Title, course.Title)
	}
}

func TestDeleteCourseCascades(t *testing.T) {
	db := newTestDB(t)
	courseSvc := newCourseService(db)
	testSvc := newTestService(db)
	teacher := seedUser(t, db, model.RoleTeacher)
	student := seedUser(t, db, model.RoleStudent)
	course := seedCourse(t, db, teacher.ID)
	claims := claimsFor(teacher)

	test := seedTest(t, db, testSvc, claims, course.ID, model.TestTypePost, nil,
		[]questionSpec{{options: 2, correct: 0}})
	if _, err := testSvc.Submit(student.ID, test.ID, pickAnswers(t, test, 1)); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := courseSvc.DeleteCourse(context.Background(), claims, course.ID); err != nil {
		t.Fatalf("DeleteCourse: %v", err)
	}

	var tests, scores, progress, questions int64
	db.Model(&model.Test{}).Where("course_id = ?", course.ID).Count(&tests)
	db.Model(&model.TestScore{}).Where("test_id = ?", test.ID).Count(&scores)
	db.Model(&model.CourseProgress{}).Where("course_id = ?", course.ID).Count(&progress)
	db.Model(&model.Question{}).Where("test_id = ?", test.ID).Count(&questions)
	if tests != 0 || scores != 0 || progress != 0 || questions != 0 {
		t.Errorf("rows after delete: tests=%d scores=%d progress=%d questions=%d, want all 0",
			tests, scores, progress, questions)
	}

	if _, err := courseSvc.GetCourse(course.ID); !errors.Is(err, util.ErrCourseNotFound) {
		t.Errorf("GetCourse err = %v, want ErrCourseNotFound", err)
	}
}

func TestStartCourse(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	teacher := seedUser(t, db, model.RoleTeacher)
	student := seedUser(t, db, model.RoleStudent)
	course := seedCourse(t, db, teacher.ID)

	progress, err := svc.StartCourse(student.ID, course.ID)
	if err != nil {
		t.Fatalf("StartCourse: %v", err)
	}
	if progress.Status != model.ProgressInProgress {
		t.Errorf("status = %q, want %q", progress.Status, model.ProgressInProgress)
	}
	if got := progressOf(t, db, course.ID, student.ID); got != model.ProgressInProgress {
		t.Errorf("stored status = %q, want %q", got, model.ProgressInProgress)
	}
}

func TestStartCourseDoesNotRegressComplete(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	teacher := seedUser(t, db, model.RoleTeacher)
	student := seedUser(t, db, model.RoleStudent)
	course := seedCourse(t, db, teacher.ID)

	if err := svc.ProgressRepo.Upsert(&model.CourseProgress{
		CourseID: course.ID, UserID: student.ID, Status: model.ProgressComplete,
	}); err != nil {
		t.Fatalf("seed progress: %v", err)
	}

	progress, err := svc.StartCourse(student.ID, course.ID)
	if err != nil {
		t.Fatalf("StartCourse: %v", err)
	}
	if progress.Status != model.ProgressComplete {
		t.Errorf("status = %q, want %q", progress.Status, model.ProgressComplete)
	}
	if got := progressOf(t, db, course.ID, student.ID); got != model.ProgressComplete {
		t.Errorf("stored status = %q, want %q", got, model.ProgressComplete)
	}
}

func TestStartCourseUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	student := seedUser(t, db, model.RoleStudent)

	if _, err := svc.StartCourse(student.ID, 9999); !errors.Is(err, util.ErrCourseNotFound) {
		t.Errorf("err = %v, want ErrCourseNotFound", err)
	}
}

func TestListCoursesWithoutRedis(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	teacher := seedUser(t, db, model.RoleTeacher)
	seedCourse(t, db, teacher.ID)
	seedCourse(t, db, teacher.ID)

	views, err := svc.ListCourses(context.Background())
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(views) != 2 {
		t.Errorf("courses = %d, want 2", len(views))
	}
}

func TestProgressServiceAuthorization(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, model.RoleTeacher)
	other := seedUser(t, db, model.RoleTeacher)
	student := seedUser(t, db, model.RoleStudent)
	peer := seedUser(t, db, model.RoleStudent)
	course := seedCourse(t, db, owner.ID)

	svc := NewProgressService(newCourseService(db).ProgressRepo, newCourseService(db).CourseRepo)

	tests := []struct {
		name    string
		claims  *util.Claims
		wantErr error
	}{
		{"self", claimsFor(student), nil},
		{"course owner", claimsFor(owner), nil},
		{"other teacher", claimsFor(other), util.ErrPermissionDenied},
		{"other student", claimsFor(peer), util.ErrPermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress, err := svc.Get(tt.claims, course.ID, student.ID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			// ยังไม่มีแถว = not started
			if progress.Status != model.ProgressNotStarted {
				t.Errorf("status = %q, want %q", progress.Status, model.ProgressNotStarted)
			}
		})
	}
}

func TestSetProgressRejectsInvalidStatus(t *testing.T) {
	db := newTestDB(t)
	teacher := seedUser(t, db, model.RoleTeacher)
	course := seedCourse(t, db, teacher.ID)

	cs := newCourseService(db)
	svc := NewProgressService(cs.ProgressRepo, cs.CourseRepo)

	if _, err := svc.Set(claimsFor(teacher), course.ID, teacher.ID, "done"); !errors.Is(err, util.ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
}
