package model

import "time"

// TestScore เก็บคะแนนล่าสุดต่อ (test, user) — การส่งซ้ำจะเขียนทับ
type TestScore struct {
	BaseModel
	TestID  uint      `gorm:"not null;uniqueIndex:idx_score_test_user" json:"testId"`
	UserID  uint      `gorm:"not null;uniqueIndex:idx_score_test_user" json:"userId"`
	Score   int       `gorm:"not null" json:"score"`
	TakenAt time.Time `json:"takenAt"`
	Test    *Test     `gorm:"foreignKey:TestID" json:"-"`
	User    *User     `gorm:"foreignKey:UserID" json:"-"`
}

func (TestScore) TableName() string {
	return "test_scores"
}
