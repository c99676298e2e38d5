package model

import "time"

// StatisticsFilter 聚合查询过滤条件，起止时间均为闭区间，quizID 为 0 表示全部测验
type StatisticsFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	QuizID    uint
}

// ScorePoint 精确分数直方图中的一个点
type ScorePoint struct {
	Score int `json:"score"`
	Count int `json:"count"`
}

// BucketDistribution 四档通过分布，字段顺序即展示顺序
type BucketDistribution struct {
	Excellent int `json:"excellent"` // >=90
	Good      int `json:"good"`      // >=75
	Average   int `json:"average"`   // >=60
	Poor      int `json:"poor"`      // <60
}

// QuestionDifficulty 单题难度，成功率为 0-100 百分比
type QuestionDifficulty struct {
	QuestionID         uint    `json:"questionId"`
	SuccessRatePercent float64 `json:"successRatePercent"`
}

// AggregatedStatistics 聚合器的三项输出
type AggregatedStatistics struct {
	ScoreHistogram     []ScorePoint         `json:"scoreHistogram"`
	BucketDistribution BucketDistribution   `json:"bucketDistribution"`
	DifficultyRanking  []QuestionDifficulty `json:"difficultyRanking"`
}

// StatisticsSummary 概要指标
type StatisticsSummary struct {
	TotalAttempts      int     `json:"totalAttempts"`
	AverageScore       float64 `json:"averageScore"`
	AvgTimePerQuestion float64 `json:"avgTimePerQuestion"`
	PassRatePercent    float64 `json:"passRatePercent"` // score >= 60
}

// DifficultyDistribution 五档题目难度分布，按成功率划分
type DifficultyDistribution struct {
	VeryEasy int `json:"veryEasy"` // >=90
	Easy     int `json:"easy"`     // >=75
	Medium   int `json:"medium"`   // >=60
	Hard     int `json:"hard"`     // >=40
	VeryHard int `json:"veryHard"` // <40
}

// QuestionAnalysis 题目分析结果
type QuestionAnalysis struct {
	HardestQuestion    string                 `json:"hardestQuestion"`
	EasiestQuestion    string                 `json:"easiestQuestion"`
	AverageSuccessRate float64                `json:"averageSuccessRate"`
	Distribution       DifficultyDistribution `json:"distribution"`
	Recommendations    []string               `json:"recommendations"`
}

// ChartSeries 图表适配结构，仅做格式转换不做计算
type ChartSeries struct {
	Labels   []string  `json:"labels"`
	Datasets []float64 `json:"datasets"`
}

// ExportRow CSV 导出的一行
type ExportRow struct {
	QuizID             uint
	QuizTitle          string
	StudentName        string
	Score              int
	TotalQuestions     int
	CorrectAnswers     int
	AvgTimePerQuestion float64
	CompletedAt        time.Time
}
