package model

// Course 课程目录，测验合成器只读取，不修改
// swagger:model Course
type Course struct {
	BaseModel
	Title         string `gorm:"size:255;not null" json:"title"`
	Description   string `gorm:"type:text" json:"description"`
	Level         string `gorm:"size:50;default:'Beginner'" json:"level"` // Beginner, Intermediate, Advanced
	DurationHours int    `gorm:"default:0" json:"durationHours"`
	InstructorID  uint   `gorm:"index;type:bigint unsigned" json:"instructorId"`
}

func (Course) TableName() string {
	return "courses"
}
