package model

import "time"

// Quiz 结课测验。标题由课程标题推导，(course_id, title) 唯一，保证查找或创建幂等
// swagger:model Quiz
type Quiz struct {
	BaseModel
	CourseID  uint           `gorm:"uniqueIndex:idx_course_title;type:bigint unsigned;not null" json:"courseId"`
	Title     string         `gorm:"uniqueIndex:idx_course_title;size:255;not null" json:"title"`
	Questions []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizQuestion 四选一题目，由合成器创建后不再修改
// swagger:model QuizQuestion
type QuizQuestion struct {
	BaseModel
	QuizID        uint   `gorm:"index;type:bigint unsigned;not null" json:"quizId"`
	Prompt        string `gorm:"type:text;not null" json:"prompt"`
	OptionA       string `gorm:"size:500;not null" json:"optionA"`
	OptionB       string `gorm:"size:500;not null" json:"optionB"`
	OptionC       string `gorm:"size:500;not null" json:"optionC"`
	OptionD       string `gorm:"size:500;not null" json:"optionD"`
	CorrectOption string `gorm:"size:1;not null" json:"-"` // A-D
	Order         int    `gorm:"default:0" json:"order"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "in_progress"
	AttemptCompleted  AttemptStatus = "completed"
)

// QuizAttempt 一个用户对一个测验的唯一一次作答，(quiz_id, user_id) 唯一索引挡住并发重复提交
// swagger:model QuizAttempt
type QuizAttempt struct {
	BaseModel
	QuizID      uint          `gorm:"uniqueIndex:idx_quiz_user;type:bigint unsigned;not null" json:"quizId"`
	UserID      uint          `gorm:"uniqueIndex:idx_quiz_user;type:bigint unsigned;not null" json:"userId"`
	Score       int           `gorm:"not null" json:"score"` // 0-100 百分比
	Status      AttemptStatus `gorm:"size:20;default:'in_progress'" json:"status"`
	StartedAt   time.Time     `json:"startedAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// QuizResult 判分结果，与 Attempt 同一事务写入，之后不再变更
// swagger:model QuizResult
type QuizResult struct {
	BaseModel
	AttemptID      uint      `gorm:"index;type:bigint unsigned;not null" json:"attemptId"`
	QuizID         uint      `gorm:"index;type:bigint unsigned;not null" json:"quizId"`
	UserID         uint      `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Score          int       `gorm:"not null" json:"score"` // 0-100 百分比
	TotalQuestions int       `gorm:"not null" json:"totalQuestions"`
	CorrectAnswers int       `gorm:"not null" json:"correctAnswers"`
	CompletedAt    time.Time `json:"completedAt"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
