package model

type Question struct {
	BaseModel
	TestID       uint     `gorm:"not null;index" json:"testId"`
	QuestionText string   `gorm:"type:text;not null" json:"questionText"`
	Options      []Option `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
