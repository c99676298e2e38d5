package repository

import (
	"errors"

	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

// errScanLimit 终止 FindInBatches 的内部哨兵，不向调用方暴露
var errScanLimit = errors.New("statistics scan limit reached")

type StatisticsRepository struct {
	DB *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) *StatisticsRepository {
	return &StatisticsRepository{DB: db}
}

const scanBatchSize = 1000

// ListRecords 按过滤条件扫描统计记录，分批读取并受 maxRows 上限约束，
// 避免大数据量安装时一次性加载全部历史
func (r *StatisticsRepository) ListRecords(filter model.StatisticsFilter, maxRows int) ([]model.StatisticsRecord, error) {
	query := r.DB.Model(&model.StatisticsRecord{}).Preload("Outcomes")

	if filter.StartDate != nil {
		query = query.Where("completed_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("completed_at <= ?", *filter.EndDate)
	}
	if filter.QuizID > 0 {
		query = query.Where("quiz_id = ?", filter.QuizID)
	}

	records := make([]model.StatisticsRecord, 0)
	var batch []model.StatisticsRecord
	result := query.Order("completed_at asc, id asc").FindInBatches(&batch, scanBatchSize, func(tx *gorm.DB, batchNo int) error {
		for _, rec := range batch {
			if maxRows > 0 && len(records) >= maxRows {
				return errScanLimit
			}
			records = append(records, rec)
		}
		return nil
	})

	if result.Error != nil && !errors.Is(result.Error, errScanLimit) {
		return nil, result.Error
	}
	return records, nil
}
