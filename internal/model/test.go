package model

type TestType string

const (
	TestTypePre  TestType = "pre"
	TestTypePost TestType = "post"
)

// DefaultPassingScore ใช้เมื่อแบบทดสอบ post ไม่ได้กำหนดเกณฑ์ผ่านไว้
const DefaultPassingScore = 70

type Test struct {
	BaseModel
	CourseID     uint       `gorm:"not null;index" json:"courseId"`
	Type         TestType   `gorm:"size:10;not null" json:"type"`
	PassingScore *int       `json:"passingScore"`
	Questions    []Question `gorm:"foreignKey:TestID" json:"questions,omitempty"`
}

func (Test) TableName() string {
	return "tests"
}

// PassingThreshold คืนเกณฑ์ผ่านของแบบทดสอบ (ค่า default 70 เมื่อไม่กำหนด)
func (t *Test) PassingThreshold() int {
	if t.PassingScore != nil {
		return *t.PassingScore
	}
	return DefaultPassingScore
}
