package controller

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	StatisticsService *service.StatisticsService
	ExportService     *service.ExportService
}

func NewStatisticsController(statisticsService *service.StatisticsService, exportService *service.ExportService) *StatisticsController {
	return &StatisticsController{
		StatisticsService: statisticsService,
		ExportService:     exportService,
	}
}

// parseFilter 解析查询参数，日期不合法时返回指明字段的错误
func parseFilter(ctx *gin.Context) (model.StatisticsFilter, error) {
	var filter model.StatisticsFilter

	if raw := ctx.Query("startDate"); raw != "" {
		start, err := time.ParseInLocation(util.DateFormat, raw, time.Local)
		if err != nil {
			return filter, fmt.Errorf("invalid startDate: expected %s", util.DateFormat)
		}
		filter.StartDate = &start
	}

	if raw := ctx.Query("endDate"); raw != "" {
		end, err := time.ParseInLocation(util.DateFormat, raw, time.Local)
		if err != nil {
			return filter, fmt.Errorf("invalid endDate: expected %s", util.DateFormat)
		}
		// 终止日期为闭区间，推进到当天最后一刻
		end = end.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &end
	}

	if raw := ctx.Query("quizId"); raw != "" {
		quizID := util.MustParseUint(raw)
		if quizID == 0 {
			return filter, fmt.Errorf("invalid quizId")
		}
		filter.QuizID = quizID
	}

	return filter, nil
}

// @Summary 聚合统计
// @Description 分数直方图、四档通过分布和 Top10 难题排行
// @Tags 统计
// @Produce json
// @Security ApiKeyAuth
// @Param startDate query string false "起始日期 YYYY-MM-DD"
// @Param endDate query string false "终止日期 YYYY-MM-DD"
// @Param quizId query int false "测验ID"
// @Success 200 {object} util.Response
// @Router /statistics [get]
func (c *StatisticsController) GetStatistics(ctx *gin.Context) {
	filter, err := parseFilter(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	stats, err := c.StatisticsService.Aggregate(ctx.Request.Context(), filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

// @Summary 统计概要
// @Description 总作答数、平均分、平均每题耗时和通过率
// @Tags 统计
// @Produce json
// @Security ApiKeyAuth
// @Param startDate query string false "起始日期 YYYY-MM-DD"
// @Param endDate query string false "终止日期 YYYY-MM-DD"
// @Param quizId query int false "测验ID"
// @Success 200 {object} util.Response
// @Router /statistics/summary [get]
func (c *StatisticsController) GetSummary(ctx *gin.Context) {
	filter, err := parseFilter(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	summary, err := c.StatisticsService.Summary(ctx.Request.Context(), filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}

// @Summary 题目分析
// @Description 最难/最易题目、平均成功率、五档难度分布和教学建议
// @Tags 统计
// @Produce json
// @Security ApiKeyAuth
// @Param startDate query string false "起始日期 YYYY-MM-DD"
// @Param endDate query string false "终止日期 YYYY-MM-DD"
// @Param quizId query int false "测验ID"
// @Success 200 {object} util.Response
// @Router /statistics/questions [get]
func (c *StatisticsController) GetQuestionAnalysis(ctx *gin.Context) {
	filter, err := parseFilter(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	analysis, err := c.StatisticsService.AnalyzeQuestions(ctx.Request.Context(), filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, analysis)
}

// @Summary 图表序列
// @Description 把聚合结果转为前端图表需要的 labels/datasets 结构
// @Tags 统计
// @Produce json
// @Security ApiKeyAuth
// @Param kind path string true "scores | buckets | difficulty"
// @Param startDate query string false "起始日期 YYYY-MM-DD"
// @Param endDate query string false "终止日期 YYYY-MM-DD"
// @Param quizId query int false "测验ID"
// @Success 200 {object} util.Response
// @Router /statistics/charts/{kind} [get]
func (c *StatisticsController) GetChart(ctx *gin.Context) {
	filter, err := parseFilter(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	kind := ctx.Param("kind")
	if kind != "scores" && kind != "buckets" && kind != "difficulty" {
		util.BadRequest(ctx, "invalid kind: expected scores, buckets or difficulty")
		return
	}

	stats, err := c.StatisticsService.Aggregate(ctx.Request.Context(), filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	var series model.ChartSeries
	switch kind {
	case "scores":
		series = service.HistogramSeries(stats.ScoreHistogram)
	case "buckets":
		series = service.BucketSeries(stats.BucketDistribution)
	case "difficulty":
		series = service.DifficultySeries(stats.DifficultyRanking)
	}

	util.Success(ctx, series)
}

// @Summary 导出 CSV
// @Description 导出过滤窗口内的原始统计记录
// @Tags 统计
// @Produce text/csv
// @Security ApiKeyAuth
// @Param startDate query string false "起始日期 YYYY-MM-DD"
// @Param endDate query string false "终止日期 YYYY-MM-DD"
// @Param quizId query int false "测验ID"
// @Success 200 {string} string "CSV 文件"
// @Router /statistics/export [get]
func (c *StatisticsController) ExportCSV(ctx *gin.Context) {
	filter, err := parseFilter(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rows, err := c.StatisticsService.ExportRows(ctx.Request.Context(), filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	payload, err := c.ExportService.RenderCSV(rows)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	// 归档不能挂在请求上下文上，响应写完后请求上下文即被取消
	now := time.Now()
	go c.ExportService.Archive(context.Background(), payload, now)

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", service.ExportFilename(now)))
	ctx.Data(http.StatusOK, util.MimeCSV, payload)
}
