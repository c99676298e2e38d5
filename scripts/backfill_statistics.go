// 手动重建统计记录脚本
//
// 正常流程中 StatisticsRecord 与判分结果在同一事务内写入，无需此脚本。
// 仅在修复历史数据时使用，例如从旧系统批量导入 quiz_results 之后。
// 按题目的对错明细无法从结果行还原，重建出的记录不参与难度排行。
//
// 用法: go run scripts/backfill_statistics.go

package main

import (
	"log"
	"os"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/database"
	"learnhub_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func scoreBucket(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Good"
	case score >= 60:
		return "Average"
	default:
		return "Poor"
	}
}

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	var results []model.QuizResult
	if err := db.Find(&results).Error; err != nil {
		log.Fatalf("读取判分结果失败: %v", err)
	}

	created, skipped := 0, 0
	for _, res := range results {
		var count int64
		err := db.Model(&model.StatisticsRecord{}).
			Where("quiz_id = ? AND student_id = ? AND completed_at = ?", res.QuizID, res.UserID, res.CompletedAt).
			Count(&count).Error
		if err != nil {
			log.Printf("检查记录失败 (result %d): %v", res.ID, err)
			continue
		}
		if count > 0 {
			skipped++
			continue
		}

		record := model.StatisticsRecord{
			QuizID:         res.QuizID,
			StudentID:      res.UserID,
			Score:          res.Score,
			TotalQuestions: res.TotalQuestions,
			CorrectAnswers: res.CorrectAnswers,
			CompletedAt:    res.CompletedAt,
			Difficulty:     scoreBucket(res.Score),
		}
		if err := db.Create(&record).Error; err != nil {
			log.Printf("写入统计记录失败 (result %d): %v", res.ID, err)
			continue
		}
		created++
	}

	log.Printf("重建完成: 新增 %d 条，已存在 %d 条", created, skipped)
}
