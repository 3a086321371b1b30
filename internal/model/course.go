package model

type Course struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	CoverImage  string `gorm:"size:255" json:"coverImage"`
	TeacherID   uint   `gorm:"not null;index" json:"teacherId"`
	Teacher     *User  `gorm:"foreignKey:TeacherID" json:"-"`
	Tests       []Test `gorm:"foreignKey:CourseID" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}
