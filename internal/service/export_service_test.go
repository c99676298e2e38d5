package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"learnhub_backend/internal/model"
)

func TestRenderCSV(t *testing.T) {
	completed := time.Date(2026, 3, 15, 14, 30, 5, 0, time.UTC)
	rows := []model.ExportRow{
		{
			QuizID:             7,
			QuizTitle:          "Quiz Final - Introduction to Go",
			StudentName:        "Alice",
			Score:              80,
			TotalQuestions:     5,
			CorrectAnswers:     4,
			AvgTimePerQuestion: 12.34,
			CompletedAt:        completed,
		},
		{
			QuizID:             7,
			QuizTitle:          "Quiz Final - Introduction to Go",
			StudentName:        "Bob",
			Score:              100,
			TotalQuestions:     5,
			CorrectAnswers:     5,
			AvgTimePerQuestion: 8,
			CompletedAt:        completed,
		},
	}

	svc := NewExportService(nil)
	payload, err := svc.RenderCSV(rows)
	if err != nil {
		t.Fatalf("RenderCSV: %v", err)
	}

	parsed, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}

	if len(parsed) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows", len(parsed))
	}
	if parsed[0][0] != "Quiz ID" || parsed[0][7] != "Completed At" {
		t.Errorf("unexpected header: %v", parsed[0])
	}

	first := parsed[1]
	if first[0] != "7" {
		t.Errorf("quiz id = %q, want 7", first[0])
	}
	if first[2] != "Alice" {
		t.Errorf("student = %q, want Alice", first[2])
	}
	if first[3] != "80%" {
		t.Errorf("score = %q, want 80%%", first[3])
	}
	if first[6] != "12.3s" {
		t.Errorf("avg time = %q, want 12.3s", first[6])
	}
	if first[7] != "2026-03-15 14:30:05" {
		t.Errorf("completed at = %q", first[7])
	}

	if parsed[2][2] != "Bob" {
		t.Errorf("row order changed: second row is %q", parsed[2][2])
	}
}

func TestRenderCSVEmpty(t *testing.T) {
	svc := NewExportService(nil)
	payload, err := svc.RenderCSV(nil)
	if err != nil {
		t.Fatalf("RenderCSV: %v", err)
	}

	parsed, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("got %d lines, want header only", len(parsed))
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	if got := ExportFilename(now); got != "quiz_statistics_2026-03-15.csv" {
		t.Errorf("ExportFilename = %q", got)
	}
}

func TestHistogramSeries(t *testing.T) {
	series := HistogramSeries([]model.ScorePoint{{Score: 60, Count: 2}, {Score: 80, Count: 1}})
	if len(series.Labels) != 2 || series.Labels[0] != "60" || series.Labels[1] != "80" {
		t.Errorf("labels = %v", series.Labels)
	}
	if series.Datasets[0] != 2 || series.Datasets[1] != 1 {
		t.Errorf("datasets = %v", series.Datasets)
	}
}

func TestBucketSeries(t *testing.T) {
	series := BucketSeries(model.BucketDistribution{Excellent: 1, Good: 2, Average: 3, Poor: 4})
	wantLabels := []string{"Excellent", "Good", "Average", "Poor"}
	for i, label := range wantLabels {
		if series.Labels[i] != label {
			t.Errorf("labels[%d] = %q, want %q", i, series.Labels[i], label)
		}
	}
	want := []float64{1, 2, 3, 4}
	for i, v := range want {
		if series.Datasets[i] != v {
			t.Errorf("datasets[%d] = %v, want %v", i, series.Datasets[i], v)
		}
	}
}

func TestDifficultySeries(t *testing.T) {
	series := DifficultySeries([]model.QuestionDifficulty{
		{QuestionID: 4, SuccessRatePercent: 12.5},
		{QuestionID: 9, SuccessRatePercent: 50},
	})
	if series.Labels[0] != "Q4" || series.Labels[1] != "Q9" {
		t.Errorf("labels = %v", series.Labels)
	}
	if series.Datasets[0] != 12.5 || series.Datasets[1] != 50 {
		t.Errorf("datasets = %v", series.Datasets)
	}
}
