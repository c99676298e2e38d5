package service

import (
	"errors"
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"
)

func TestCompletionQuizTitle(t *testing.T) {
	got := CompletionQuizTitle("Introduction to Go")
	want := "Quiz Final - Introduction to Go"
	if got != want {
		t.Errorf("CompletionQuizTitle = %q, want %q", got, want)
	}
}

func TestBuildCompletionQuestions(t *testing.T) {
	course := &model.Course{Title: "Relational Databases", Level: "Intermediate", DurationHours: 20}
	questions := buildCompletionQuestions(course)

	if len(questions) != completionQuestionCount {
		t.Fatalf("got %d questions, want %d", len(questions), completionQuestionCount)
	}

	wantCorrect := []string{"A", "B", "C", "B", "A"}
	for i, q := range questions {
		if q.CorrectOption != wantCorrect[i] {
			t.Errorf("question %d correct option = %q, want %q", i+1, q.CorrectOption, wantCorrect[i])
		}
		if q.Order != i+1 {
			t.Errorf("question %d order = %d, want %d", i+1, q.Order, i+1)
		}
		if q.Prompt == "" {
			t.Errorf("question %d has empty prompt", i+1)
		}
	}
}

func TestPercentScore(t *testing.T) {
	cases := []struct {
		correct, total, want int
	}{
		{5, 5, 100},
		{4, 5, 80},
		{3, 5, 60},
		{0, 5, 0},
		{1, 3, 33},
		{2, 3, 67},
		{0, 0, 0},
		{3, 0, 0},
	}

	for _, tc := range cases {
		if got := percentScore(tc.correct, tc.total); got != tc.want {
			t.Errorf("percentScore(%d, %d) = %d, want %d", tc.correct, tc.total, got, tc.want)
		}
	}
}

func fiveQuestions() []model.QuizQuestion {
	letters := []string{"A", "B", "C", "B", "A"}
	questions := make([]model.QuizQuestion, 0, len(letters))
	for i, letter := range letters {
		questions = append(questions, model.QuizQuestion{
			BaseModel:     model.BaseModel{ID: uint(i + 1)},
			CorrectOption: letter,
			Order:         i + 1,
		})
	}
	return questions
}

func TestScoreAnswersAllCorrect(t *testing.T) {
	correct, outcomes, err := scoreAnswers(fiveQuestions(), map[uint]string{
		1: "A", 2: "B", 3: "C", 4: "B", 5: "A",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if correct != 5 {
		t.Errorf("correct = %d, want 5", correct)
	}
	if len(outcomes) != 5 {
		t.Fatalf("got %d outcomes, want 5", len(outcomes))
	}
	for _, o := range outcomes {
		if !o.WasCorrect {
			t.Errorf("question %d marked incorrect", o.QuestionID)
		}
	}
}

func TestScoreAnswersPartial(t *testing.T) {
	correct, outcomes, err := scoreAnswers(fiveQuestions(), map[uint]string{
		1: "A", 2: "B", 3: "D", 4: "B", 5: "A",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if correct != 4 {
		t.Errorf("correct = %d, want 4", correct)
	}
	if outcomes[2].WasCorrect {
		t.Error("question 3 should be incorrect")
	}

	score := percentScore(correct, len(outcomes))
	if score != 80 {
		t.Errorf("score = %d, want 80", score)
	}
	level, _ := ClassifyLevel(float64(score))
	if level != LevelAdvanced {
		t.Errorf("level = %s, want %s", level, LevelAdvanced)
	}
}

func TestScoreAnswersUnansweredCountsWrong(t *testing.T) {
	correct, outcomes, err := scoreAnswers(fiveQuestions(), map[uint]string{1: "A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if correct != 1 {
		t.Errorf("correct = %d, want 1", correct)
	}
	if len(outcomes) != 5 {
		t.Errorf("got %d outcomes, want one per question", len(outcomes))
	}
}

func TestScoreAnswersNormalizesOption(t *testing.T) {
	correct, _, err := scoreAnswers(fiveQuestions(), map[uint]string{1: " a "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if correct != 1 {
		t.Errorf("correct = %d, want 1 after normalization", correct)
	}
}

func TestScoreAnswersUnknownQuestion(t *testing.T) {
	_, _, err := scoreAnswers(fiveQuestions(), map[uint]string{99: "A"})
	if !errors.Is(err, util.ErrUnknownQuestion) {
		t.Fatalf("err = %v, want ErrUnknownQuestion", err)
	}
}

func TestScoreAnswersInvalidOption(t *testing.T) {
	_, _, err := scoreAnswers(fiveQuestions(), map[uint]string{1: "E"})
	if !errors.Is(err, util.ErrInvalidOption) {
		t.Fatalf("err = %v, want ErrInvalidOption", err)
	}
}
