package model

import "time"

// StatisticsRecord 聚合器扫描的持久化单元，每个已完成的作答一条，只追加不更新
// swagger:model StatisticsRecord
type StatisticsRecord struct {
	BaseModel
	QuizID             uint              `gorm:"index;type:bigint unsigned;not null" json:"quizId"`
	StudentID          uint              `gorm:"index;type:bigint unsigned;not null" json:"studentId"`
	Score              int               `gorm:"not null" json:"score"` // 0-100 百分比
	TotalQuestions     int               `gorm:"not null" json:"totalQuestions"`
	CorrectAnswers     int               `gorm:"not null" json:"correctAnswers"`
	CompletedAt        time.Time         `gorm:"index" json:"completedAt"`
	AvgTimePerQuestion float64           `gorm:"default:0" json:"avgTimePerQuestion"` // 秒
	Difficulty         string            `gorm:"size:20" json:"difficulty"`
	Outcomes           []QuestionOutcome `gorm:"foreignKey:RecordID" json:"outcomes,omitempty"`
}

func (StatisticsRecord) TableName() string {
	return "statistics_records"
}

// QuestionOutcome 每题对错的显式连接实体，替代无类型的 question->bool JSON
// swagger:model QuestionOutcome
type QuestionOutcome struct {
	BaseModel
	RecordID   uint `gorm:"index;type:bigint unsigned;not null" json:"recordId"`
	QuestionID uint `gorm:"index;type:bigint unsigned;not null" json:"questionId"`
	WasCorrect bool `gorm:"not null" json:"wasCorrect"`
}

func (QuestionOutcome) TableName() string {
	return "question_outcomes"
}
