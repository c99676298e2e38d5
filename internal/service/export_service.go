package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ExportService struct {
	Storage *StorageService
}

func NewExportService(storage *StorageService) *ExportService {
	return &ExportService{Storage: storage}
}

var csvHeader = []string{
	"Quiz ID",
	"Quiz Title",
	"Student",
	"Score",
	"Total Questions",
	"Correct Answers",
	"Avg Time Per Question",
	"Completed At",
}

// RenderCSV 逐行渲染导出数据，行序与输入一致
func (s *ExportService) RenderCSV(rows []model.ExportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatUint(uint64(row.QuizID), 10),
			row.QuizTitle,
			row.StudentName,
			fmt.Sprintf("%d%%", row.Score),
			strconv.Itoa(row.TotalQuestions),
			strconv.Itoa(row.CorrectAnswers),
			fmt.Sprintf("%.1fs", row.AvgTimePerQuestion),
			row.CompletedAt.Format(util.TimeFormat),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFilename 下载文件名，按当天日期命名
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("quiz_statistics_%s.csv", now.Format(util.DateFormat))
}

// Archive 把生成的 CSV 异步归档到对象存储。归档失败只记日志，不影响下载
func (s *ExportService) Archive(ctx context.Context, payload []byte, now time.Time) {
	if s.Storage == nil || !s.Storage.Enabled() {
		return
	}

	objectName := fmt.Sprintf("exports/quiz_statistics_%s_%s.csv", now.Format(util.DateFormat), uuid.New().String())
	url, err := s.Storage.Upload(ctx, objectName, bytes.NewReader(payload), int64(len(payload)), util.MimeCSV)
	if err != nil {
		logger.Log.Warn("export archive failed", zap.Error(err))
		return
	}
	logger.Log.Info("export archived", zap.String("url", url))
}

// HistogramSeries 直方图转图表序列，仅做格式转换
func HistogramSeries(histogram []model.ScorePoint) model.ChartSeries {
	series := model.ChartSeries{
		Labels:   make([]string, 0, len(histogram)),
		Datasets: make([]float64, 0, len(histogram)),
	}
	for _, point := range histogram {
		series.Labels = append(series.Labels, strconv.Itoa(point.Score))
		series.Datasets = append(series.Datasets, float64(point.Count))
	}
	return series
}

// BucketSeries 四档分布转图表序列，标签顺序固定
func BucketSeries(dist model.BucketDistribution) model.ChartSeries {
	return model.ChartSeries{
		Labels:   []string{"Excellent", "Good", "Average", "Poor"},
		Datasets: []float64{float64(dist.Excellent), float64(dist.Good), float64(dist.Average), float64(dist.Poor)},
	}
}

// DifficultySeries 难度排行转图表序列
func DifficultySeries(ranking []model.QuestionDifficulty) model.ChartSeries {
	series := model.ChartSeries{
		Labels:   make([]string, 0, len(ranking)),
		Datasets: make([]float64, 0, len(ranking)),
	}
	for _, entry := range ranking {
		series.Labels = append(series.Labels, fmt.Sprintf("Q%d", entry.QuestionID))
		series.Datasets = append(series.Datasets, entry.SuccessRatePercent)
	}
	return series
}
