package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type StatisticsService struct {
	StatsRepo *repository.StatisticsRepository
	QuizRepo  *repository.QuizRepository
	UserRepo  *repository.UserRepository
	Redis     *redis.Client
	Config    *config.Config
}

func NewStatisticsService(
	statsRepo *repository.StatisticsRepository,
	quizRepo *repository.QuizRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
	cfg *config.Config,
) *StatisticsService {
	return &StatisticsService{
		StatsRepo: statsRepo,
		QuizRepo:  quizRepo,
		UserRepo:  userRepo,
		Redis:     rdb,
		Config:    cfg,
	}
}

// bucketLabel 四档通过分布的标签，边界 90/75/60
func bucketLabel(score int) string {
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

// buildScoreHistogram 按精确整数分数计数，升序输出
func buildScoreHistogram(records []model.StatisticsRecord) []model.ScorePoint {
	counts := make(map[int]int)
	for _, rec := range records {
		counts[rec.Score]++
	}

	scores := make([]int, 0, len(counts))
	for score := range counts {
		scores = append(scores, score)
	}
	sort.Ints(scores)

	histogram := make([]model.ScorePoint, 0, len(scores))
	for _, score := range scores {
		histogram = append(histogram, model.ScorePoint{Score: score, Count: counts[score]})
	}
	return histogram
}

func bucketize(records []model.StatisticsRecord) model.BucketDistribution {
	var dist model.BucketDistribution
	for _, rec := range records {
		switch bucketLabel(rec.Score) {
		case "Excellent":
			dist.Excellent++
		case "Good":
			dist.Good++
		case "Average":
			dist.Average++
		default:
			dist.Poor++
		}
	}
	return dist
}

// questionRates 累加每题 (correct, total) 并换算成功率百分比，
// 升序排列（最难在前），成功率相同按题目 ID 升序，保证输出可复现。
// 窗口内没有出现过的题目不会产生条目
func questionRates(records []model.StatisticsRecord) []model.QuestionDifficulty {
	type tally struct {
		correct int
		total   int
	}
	tallies := make(map[uint]*tally)
	for _, rec := range records {
		for _, outcome := range rec.Outcomes {
			t, ok := tallies[outcome.QuestionID]
			if !ok {
				t = &tally{}
				tallies[outcome.QuestionID] = t
			}
			t.total++
			if outcome.WasCorrect {
				t.correct++
			}
		}
	}

	rates := make([]model.QuestionDifficulty, 0, len(tallies))
	for qid, t := range tallies {
		if t.total == 0 {
			continue
		}
		percent := float64(t.correct) / float64(t.total) * 100
		rates = append(rates, model.QuestionDifficulty{
			QuestionID:         qid,
			SuccessRatePercent: math.Round(percent*100) / 100,
		})
	}

	sort.Slice(rates, func(i, j int) bool {
		if rates[i].SuccessRatePercent != rates[j].SuccessRatePercent {
			return rates[i].SuccessRatePercent < rates[j].SuccessRatePercent
		}
		return rates[i].QuestionID < rates[j].QuestionID
	})
	return rates
}

// difficultyRankingSize 难度排行榜的最大条目数
const difficultyRankingSize = 10

func rankDifficulty(records []model.StatisticsRecord) []model.QuestionDifficulty {
	rates := questionRates(records)
	if len(rates) > difficultyRankingSize {
		rates = rates[:difficultyRankingSize]
	}
	return rates
}

func filterCacheKey(prefix string, filter model.StatisticsFilter) string {
	start, end := "", ""
	if filter.StartDate != nil {
		start = filter.StartDate.Format(util.DateFormat)
	}
	if filter.EndDate != nil {
		end = filter.EndDate.Format(util.DateFormat)
	}
	return fmt.Sprintf("stats:%s:%s:%s:%d", prefix, start, end, filter.QuizID)
}

func (s *StatisticsService) cacheTTL() time.Duration {
	return time.Duration(s.Config.Stats.CacheTTLSeconds) * time.Second
}

// lookupCache 读快照缓存，未命中或 redis 不可用时返回 false，聚合照常执行
func (s *StatisticsService) lookupCache(ctx context.Context, key string, dest interface{}) bool {
	if s.Redis == nil {
		return false
	}
	payload, err := s.Redis.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(payload, dest) == nil
}

func (s *StatisticsService) storeCache(ctx context.Context, key string, value interface{}) {
	if s.Redis == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, key, payload, s.cacheTTL()).Err(); err != nil {
		logger.Log.Warn("statistics cache write failed", zap.Error(err))
	}
}

// Aggregate 扫描过滤窗口内的统计记录，产出直方图、四档分布和难度排行。
// 记录只追加不修改，短 TTL 的 redis 快照缓存不会造成可见的不一致
func (s *StatisticsService) Aggregate(ctx context.Context, filter model.StatisticsFilter) (*model.AggregatedStatistics, error) {
	key := filterCacheKey("aggregate", filter)
	var cached model.AggregatedStatistics
	if s.lookupCache(ctx, key, &cached) {
		return &cached, nil
	}

	records, err := s.StatsRepo.ListRecords(filter, s.Config.Stats.MaxScanRows)
	if err != nil {
		return nil, err
	}

	stats := &model.AggregatedStatistics{
		ScoreHistogram:     buildScoreHistogram(records),
		BucketDistribution: bucketize(records),
		DifficultyRanking:  rankDifficulty(records),
	}

	s.storeCache(ctx, key, stats)
	return stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Summary 概要指标：总作答数、平均分、平均每题耗时、通过率（>=60 分）
func (s *StatisticsService) Summary(ctx context.Context, filter model.StatisticsFilter) (*model.StatisticsSummary, error) {
	key := filterCacheKey("summary", filter)
	var cached model.StatisticsSummary
	if s.lookupCache(ctx, key, &cached) {
		return &cached, nil
	}

	records, err := s.StatsRepo.ListRecords(filter, s.Config.Stats.MaxScanRows)
	if err != nil {
		return nil, err
	}

	summary := summarize(records)
	s.storeCache(ctx, key, summary)
	return summary, nil
}

func summarize(records []model.StatisticsRecord) *model.StatisticsSummary {
	summary := &model.StatisticsSummary{TotalAttempts: len(records)}
	if len(records) == 0 {
		return summary
	}

	var scoreSum, timeSum float64
	passed := 0
	for _, rec := range records {
		scoreSum += float64(rec.Score)
		timeSum += rec.AvgTimePerQuestion
		if rec.Score >= 60 {
			passed++
		}
	}

	n := float64(len(records))
	summary.AverageScore = round2(scoreSum / n)
	summary.AvgTimePerQuestion = round2(timeSum / n)
	summary.PassRatePercent = round2(float64(passed) / n * 100)
	return summary
}

// AnalyzeQuestions 题目分析：最难/最易题干、平均成功率、五档分布和派生建议
func (s *StatisticsService) AnalyzeQuestions(ctx context.Context, filter model.StatisticsFilter) (*model.QuestionAnalysis, error) {
	records, err := s.StatsRepo.ListRecords(filter, s.Config.Stats.MaxScanRows)
	if err != nil {
		return nil, err
	}

	rates := questionRates(records)
	analysis := &model.QuestionAnalysis{Recommendations: []string{}}
	if len(rates) == 0 {
		return analysis, nil
	}

	ids := make([]uint, 0, len(rates))
	percents := make([]float64, 0, len(rates))
	var sum float64
	for _, rate := range rates {
		ids = append(ids, rate.QuestionID)
		percents = append(percents, rate.SuccessRatePercent)
		sum += rate.SuccessRatePercent

		switch DifficultyTier(rate.SuccessRatePercent) {
		case "Very Easy":
			analysis.Distribution.VeryEasy++
		case "Easy":
			analysis.Distribution.Easy++
		case "Medium":
			analysis.Distribution.Medium++
		case "Hard":
			analysis.Distribution.Hard++
		default:
			analysis.Distribution.VeryHard++
		}
	}

	prompts, err := s.QuizRepo.FindPromptsByIDs(ids)
	if err != nil {
		return nil, err
	}

	analysis.HardestQuestion = questionLabel(rates[0].QuestionID, prompts)
	analysis.EasiestQuestion = questionLabel(rates[len(rates)-1].QuestionID, prompts)
	analysis.AverageSuccessRate = round2(sum / float64(len(rates)))
	analysis.Recommendations = Recommendations(percents)
	return analysis, nil
}

// questionLabel 题干缺失（题目已被外部生命周期移除）时退化为 ID 标签
func questionLabel(questionID uint, prompts map[uint]string) string {
	if prompt, ok := prompts[questionID]; ok && prompt != "" {
		return prompt
	}
	return fmt.Sprintf("Question %d", questionID)
}

// ExportRows 把过滤窗口内的记录解析成导出行，保持扫描顺序
func (s *StatisticsService) ExportRows(ctx context.Context, filter model.StatisticsFilter) ([]model.ExportRow, error) {
	records, err := s.StatsRepo.ListRecords(filter, s.Config.Stats.MaxScanRows)
	if err != nil {
		return nil, err
	}

	quizIDs := make([]uint, 0, len(records))
	studentIDs := make([]uint, 0, len(records))
	seenQuiz := make(map[uint]bool)
	seenStudent := make(map[uint]bool)
	for _, rec := range records {
		if !seenQuiz[rec.QuizID] {
			seenQuiz[rec.QuizID] = true
			quizIDs = append(quizIDs, rec.QuizID)
		}
		if !seenStudent[rec.StudentID] {
			seenStudent[rec.StudentID] = true
			studentIDs = append(studentIDs, rec.StudentID)
		}
	}

	titles, err := s.QuizRepo.FindTitlesByIDs(quizIDs)
	if err != nil {
		return nil, err
	}
	names, err := s.UserRepo.FindNamesByIDs(studentIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]model.ExportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, model.ExportRow{
			QuizID:             rec.QuizID,
			QuizTitle:          titles[rec.QuizID],
			StudentName:        names[rec.StudentID],
			Score:              rec.Score,
			TotalQuestions:     rec.TotalQuestions,
			CorrectAnswers:     rec.CorrectAnswers,
			AvgTimePerQuestion: rec.AvgTimePerQuestion,
			CompletedAt:        rec.CompletedAt,
		})
	}
	return rows, nil
}
