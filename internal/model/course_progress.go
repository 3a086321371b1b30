package model

type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "not started"
	ProgressInProgress ProgressStatus = "in progress"
	ProgressComplete   ProgressStatus = "complete"
)

func ValidProgressStatus(s ProgressStatus) bool {
	switch s {
	case ProgressNotStarted, ProgressInProgress, ProgressComplete:
		return true
	}
	return false
}

// CourseProgress มีได้แถวเดียวต่อ (course, user) สร้างเมื่อเกิด
// transition ครั้งแรก
type CourseProgress struct {
	BaseModel
	CourseID uint           `gorm:"not null;uniqueIndex:idx_progress_course_user" json:"courseId"`
	UserID   uint           `gorm:"not null;uniqueIndex:idx_progress_course_user" json:"userId"`
	Status   ProgressStatus `gorm:"size:20;not null;default:'not started'" json:"status"`
}

func (CourseProgress) TableName() string {
	return "course_progress"
}

// NextProgress คำนวณสถานะหลังส่งแบบทดสอบ คืน ok=false เมื่อไม่เกิด transition
//   - pre: ไป "in progress" เสมอ ไม่สนคะแนน
//   - post: คะแนนถึงเกณฑ์ → "complete", ไม่ถึง → คงเดิม
func NextProgress(current ProgressStatus, testType TestType, score, passingScore int) (ProgressStatus, bool) {
	switch testType {
	case TestTypePre:
		return ProgressInProgress, current != ProgressInProgress
	case TestTypePost:
		if score >= passingScore {
			return ProgressComplete, current != ProgressComplete
		}
	}
	return current, false
}

// StartProgress คำนวณสถานะจาก action "เริ่มเรียน" ของนักเรียน
// จะไม่ดึงหลักสูตรที่จบแล้วกลับมาเป็น in progress
func StartProgress(current ProgressStatus) (ProgressStatus, bool) {
	if current == ProgressComplete {
		return current, false
	}
	return ProgressInProgress, current != ProgressInProgress
}
