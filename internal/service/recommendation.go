package service

// DifficultyTier 按成功率百分比划分题目难度档位，边界与成绩等级一致
func DifficultyTier(successRatePercent float64) string {
	switch {
	case successRatePercent >= 90:
		return "Very Easy"
	case successRatePercent >= 75:
		return "Easy"
	case successRatePercent >= 60:
		return "Medium"
	case successRatePercent >= 40:
		return "Hard"
	default:
		return "Very Hard"
	}
}

const (
	adviceReviewDifficult   = "Average success rate is below 60%. Review the most difficult questions and consider adding supporting material."
	adviceRebalance         = "More than 30% of questions are very hard. Rebalance the quiz difficulty."
	adviceIncreaseChallenge = "More than 50% of questions are very easy. Increase the challenge to keep learners engaged."
)

// Recommendations 根据每题成功率派生教学建议，纯函数，不落库
func Recommendations(successRates []float64) []string {
	advice := make([]string, 0)
	if len(successRates) == 0 {
		return advice
	}

	var sum float64
	veryHard, veryEasy := 0, 0
	for _, rate := range successRates {
		sum += rate
		switch DifficultyTier(rate) {
		case "Very Hard":
			veryHard++
		case "Very Easy":
			veryEasy++
		}
	}

	total := float64(len(successRates))
	if sum/total < 60 {
		advice = append(advice, adviceReviewDifficult)
	}
	if float64(veryHard)/total > 0.3 {
		advice = append(advice, adviceRebalance)
	}
	if float64(veryEasy)/total > 0.5 {
		advice = append(advice, adviceIncreaseChallenge)
	}
	return advice
}
