package service

import "testing"

func TestClassifyLevel(t *testing.T) {
	cases := []struct {
		score float64
		want  ResultLevel
	}{
		{100, LevelExpert},
		{90, LevelExpert},
		{89.999, LevelAdvanced},
		{75, LevelAdvanced},
		{74.5, LevelIntermediate},
		{60, LevelIntermediate},
		{59.999, LevelBeginner},
		{40, LevelBeginner},
		{39.999, LevelNovice},
		{0, LevelNovice},
	}

	for _, tc := range cases {
		got, message := ClassifyLevel(tc.score)
		if got != tc.want {
			t.Errorf("ClassifyLevel(%v) = %s, want %s", tc.score, got, tc.want)
		}
		if message == "" {
			t.Errorf("ClassifyLevel(%v) returned empty message", tc.score)
		}
	}
}

func TestClassifyLevelMessagesDiffer(t *testing.T) {
	seen := make(map[string]ResultLevel)
	for _, score := range []float64{95, 80, 65, 45, 10} {
		level, message := ClassifyLevel(score)
		if prev, ok := seen[message]; ok {
			t.Errorf("levels %s and %s share message %q", prev, level, message)
		}
		seen[message] = level
	}
}
