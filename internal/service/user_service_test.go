package service

import (
	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"
	"errors"
	"testing"
)

// นักเรียนดูคะแนนได้เฉพาะของตัวเอง ครูเห็นเฉพาะคะแนนของแบบทดสอบ
// ในหลักสูตรที่ตัวเองเป็นเจ้าของ
func TestGetUserScoresVisibility(t *testing.T) {
	db := newTestDB(t)
	testSvc := newTestService(db)
	svc := NewUserService(repository.NewUserRepository(db), repository.NewScoreRepository(db))

	teacherA := seedUser(t, db, model.RoleTeacher)
	teacherB := seedUser(t, db, model.RoleTeacher)
	student := seedUser(t, db, model.RoleStudent)
	peer := seedUser(t, db, model.RoleStudent)

	courseA := seedCourse(t, db, teacherA.ID)
	courseB := seedCourse(t, db, teacherB.ID)
	testA := seedTest(t, db, testSvc, claimsFor(teacherA), courseA.ID, model.TestTypePre, nil,
		[]questionSpec{{options: 2, correct: 0}})
	testB := seedTest(t, db, testSvc, claimsFor(teacherB), courseB.ID, model.TestTypePre, nil,
		[]questionSpec{{options: 2, correct: 0}})

	if _, err := testSvc.Submit(student.ID, testA.ID, pickAnswers(t, testA, 1)); err != nil {
		t.Fatalf("Submit testA: %v", err)
	}
	if _, err := testSvc.Submit(student.ID, testB.ID, pickAnswers(t, testB, 1)); err != nil {
		t.Fatalf("Submit testB: %v", err)
	}

	tests := []struct {
		name      string
		claims    *util.Claims
		wantErr   error
		wantTests []uint
	}{
		{"self sees all scores", claimsFor(student), nil, []uint{testA.ID, testB.ID}},
		{"other student forbidden", claimsFor(peer), util.ErrPermissionDenied, nil},
		{"teacher sees only own course", claimsFor(teacherA), nil, []uint{testA.ID}},
		{"other teacher sees only theirs", claimsFor(teacherB), nil, []uint{testB.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := svc.GetUserScores(tt.claims, student.ID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetUserScores: %v", err)
			}

			got := make(map[uint]bool, len(scores))
			for _, sc := range scores {
				got[sc.TestID] = true
			}
			if len(scores) != len(tt.wantTests) {
				t.Fatalf("scores = %d rows (%v), want tests %v", len(scores), got, tt.wantTests)
			}
			for _, id := range tt.wantTests {
				if !got[id] {
					t.Errorf("missing score for test %d, got %v", id, got)
				}
			}
		})
	}
}
