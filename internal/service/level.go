package service

// ResultLevel 成绩等级
type ResultLevel string

const (
	LevelExpert       ResultLevel = "Expert"
	LevelAdvanced     ResultLevel = "Advanced"
	LevelIntermediate ResultLevel = "Intermediate"
	LevelBeginner     ResultLevel = "Beginner"
	LevelNovice       ResultLevel = "Novice"
)

// ClassifyLevel 把百分比分数映射到等级和固定提示语。
// 边界值归入更高档位，90 本身即 Expert。
func ClassifyLevel(score float64) (ResultLevel, string) {
	switch {
	case score >= 90:
		return LevelExpert, "Outstanding! You have mastered this course."
	case score >= 75:
		return LevelAdvanced, "Great job! You have a solid grasp of the material."
	case score >= 60:
		return LevelIntermediate, "Good work. Review the tougher topics to go further."
	case score >= 40:
		return LevelBeginner, "You passed the basics. Revisit the course material to strengthen your understanding."
	default:
		return LevelNovice, "Keep practicing. Going through the course again is recommended."
	}
}
