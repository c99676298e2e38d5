package service

import "testing"

func TestDifficultyTier(t *testing.T) {
	cases := []struct {
		rate float64
		want string
	}{
		{100, "Very Easy"},
		{90, "Very Easy"},
		{89.99, "Easy"},
		{75, "Easy"},
		{74.99, "Medium"},
		{60, "Medium"},
		{59.99, "Hard"},
		{40, "Hard"},
		{39.99, "Very Hard"},
		{0, "Very Hard"},
	}

	for _, tc := range cases {
		if got := DifficultyTier(tc.rate); got != tc.want {
			t.Errorf("DifficultyTier(%v) = %q, want %q", tc.rate, got, tc.want)
		}
	}
}

func TestRecommendationsEmpty(t *testing.T) {
	advice := Recommendations(nil)
	if advice == nil {
		t.Fatal("Recommendations(nil) returned nil, want empty slice")
	}
	if len(advice) != 0 {
		t.Fatalf("Recommendations(nil) = %v, want empty", advice)
	}
}

func TestRecommendationsLowAverage(t *testing.T) {
	advice := Recommendations([]float64{50, 55, 58})
	if len(advice) != 1 || advice[0] != adviceReviewDifficult {
		t.Fatalf("got %v, want only the review advice", advice)
	}
}

func TestRecommendationsTooManyVeryHard(t *testing.T) {
	// 5 题中有 2 题 (40%) 属于 Very Hard，平均分仍高于 60
	advice := Recommendations([]float64{20, 30, 85, 85, 85})
	found := false
	for _, a := range advice {
		if a == adviceRebalance {
			found = true
		}
	}
	if !found {
		t.Fatalf("got %v, want rebalance advice", advice)
	}
}

func TestRecommendationsTooManyVeryEasy(t *testing.T) {
	advice := Recommendations([]float64{95, 92, 98, 70})
	if len(advice) != 1 || advice[0] != adviceIncreaseChallenge {
		t.Fatalf("got %v, want only the challenge advice", advice)
	}
}

func TestRecommendationsBalancedQuiz(t *testing.T) {
	advice := Recommendations([]float64{65, 70, 75, 80})
	if len(advice) != 0 {
		t.Fatalf("got %v, want no advice for a balanced quiz", advice)
	}
}
