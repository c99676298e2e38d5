package service

import (
	"testing"

	"learnhub_backend/internal/model"
)

func recordWithScore(score int) model.StatisticsRecord {
	return model.StatisticsRecord{Score: score}
}

func TestBucketLabel(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, "Excellent"},
		{90, "Excellent"},
		{89, "Good"},
		{75, "Good"},
		{74, "Average"},
		{60, "Average"},
		{59, "Poor"},
		{0, "Poor"},
	}

	for _, tc := range cases {
		if got := bucketLabel(tc.score); got != tc.want {
			t.Errorf("bucketLabel(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestBuildScoreHistogram(t *testing.T) {
	records := []model.StatisticsRecord{
		recordWithScore(80),
		recordWithScore(60),
		recordWithScore(80),
		recordWithScore(100),
	}

	histogram := buildScoreHistogram(records)
	want := []model.ScorePoint{{Score: 60, Count: 1}, {Score: 80, Count: 2}, {Score: 100, Count: 1}}

	if len(histogram) != len(want) {
		t.Fatalf("got %d points, want %d", len(histogram), len(want))
	}
	for i, point := range histogram {
		if point != want[i] {
			t.Errorf("histogram[%d] = %+v, want %+v", i, point, want[i])
		}
	}
}

func TestBucketize(t *testing.T) {
	records := []model.StatisticsRecord{
		recordWithScore(95),
		recordWithScore(70),
		recordWithScore(55),
	}

	dist := bucketize(records)
	want := model.BucketDistribution{Excellent: 1, Good: 0, Average: 1, Poor: 1}
	if dist != want {
		t.Errorf("bucketize = %+v, want %+v", dist, want)
	}

	total := dist.Excellent + dist.Good + dist.Average + dist.Poor
	if total != len(records) {
		t.Errorf("bucket sum = %d, want %d", total, len(records))
	}
}

func outcomeRecord(outcomes ...model.QuestionOutcome) model.StatisticsRecord {
	return model.StatisticsRecord{Outcomes: outcomes}
}

func TestQuestionRatesOrderingAndTieBreak(t *testing.T) {
	// 题 1 成功率 100%，题 2 和题 3 均为 50%，题 4 为 0%
	records := []model.StatisticsRecord{
		outcomeRecord(
			model.QuestionOutcome{QuestionID: 1, WasCorrect: true},
			model.QuestionOutcome{QuestionID: 2, WasCorrect: true},
			model.QuestionOutcome{QuestionID: 3, WasCorrect: false},
			model.QuestionOutcome{QuestionID: 4, WasCorrect: false},
		),
		outcomeRecord(
			model.QuestionOutcome{QuestionID: 1, WasCorrect: true},
			model.QuestionOutcome{QuestionID: 2, WasCorrect: false},
			model.QuestionOutcome{QuestionID: 3, WasCorrect: true},
			model.QuestionOutcome{QuestionID: 4, WasCorrect: false},
		),
	}

	rates := questionRates(records)
	if len(rates) != 4 {
		t.Fatalf("got %d entries, want 4", len(rates))
	}

	wantOrder := []uint{4, 2, 3, 1}
	for i, want := range wantOrder {
		if rates[i].QuestionID != want {
			t.Errorf("rates[%d].QuestionID = %d, want %d", i, rates[i].QuestionID, want)
		}
	}

	if rates[0].SuccessRatePercent != 0 {
		t.Errorf("hardest rate = %v, want 0", rates[0].SuccessRatePercent)
	}
	if rates[1].SuccessRatePercent != 50 || rates[2].SuccessRatePercent != 50 {
		t.Errorf("tied rates = %v, %v, want 50, 50", rates[1].SuccessRatePercent, rates[2].SuccessRatePercent)
	}
	if rates[3].SuccessRatePercent != 100 {
		t.Errorf("easiest rate = %v, want 100", rates[3].SuccessRatePercent)
	}
}

func TestRankDifficultyCapsAtTen(t *testing.T) {
	outcomes := make([]model.QuestionOutcome, 0, 15)
	for qid := uint(1); qid <= 15; qid++ {
		// 题目 ID 越大答对的人越多，构造单调的成功率
		outcomes = append(outcomes, model.QuestionOutcome{QuestionID: qid, WasCorrect: qid > 8})
	}
	records := []model.StatisticsRecord{outcomeRecord(outcomes...)}

	ranking := rankDifficulty(records)
	if len(ranking) != difficultyRankingSize {
		t.Fatalf("got %d entries, want %d", len(ranking), difficultyRankingSize)
	}
	for i := 1; i < len(ranking); i++ {
		if ranking[i].SuccessRatePercent < ranking[i-1].SuccessRatePercent {
			t.Errorf("ranking not ascending at index %d", i)
		}
	}
}

func TestQuestionRatesEmpty(t *testing.T) {
	if rates := questionRates(nil); len(rates) != 0 {
		t.Errorf("got %d entries for no records, want 0", len(rates))
	}
}

func TestSummarize(t *testing.T) {
	records := []model.StatisticsRecord{
		{Score: 90, AvgTimePerQuestion: 10},
		{Score: 60, AvgTimePerQuestion: 20},
		{Score: 30, AvgTimePerQuestion: 30},
	}

	summary := summarize(records)
	if summary.TotalAttempts != 3 {
		t.Errorf("TotalAttempts = %d, want 3", summary.TotalAttempts)
	}
	if summary.AverageScore != 60 {
		t.Errorf("AverageScore = %v, want 60", summary.AverageScore)
	}
	if summary.AvgTimePerQuestion != 20 {
		t.Errorf("AvgTimePerQuestion = %v, want 20", summary.AvgTimePerQuestion)
	}
	if summary.PassRatePercent != 66.67 {
		t.Errorf("PassRatePercent = %v, want 66.67", summary.PassRatePercent)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := summarize(nil)
	if summary.TotalAttempts != 0 || summary.AverageScore != 0 || summary.PassRatePercent != 0 {
		t.Errorf("empty summary = %+v, want zeros", summary)
	}
}

func TestQuestionLabelFallback(t *testing.T) {
	prompts := map[uint]string{1: "What is a goroutine?"}

	if got := questionLabel(1, prompts); got != "What is a goroutine?" {
		t.Errorf("questionLabel(1) = %q", got)
	}
	if got := questionLabel(7, prompts); got != "Question 7" {
		t.Errorf("questionLabel(7) = %q, want fallback label", got)
	}
}

func TestFilterCacheKey(t *testing.T) {
	empty := filterCacheKey("aggregate", model.StatisticsFilter{})
	if empty != "stats:aggregate:::0" {
		t.Errorf("empty filter key = %q", empty)
	}

	other := filterCacheKey("aggregate", model.StatisticsFilter{QuizID: 3})
	if empty == other {
		t.Error("different filters produced the same cache key")
	}
}
