package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo    *repository.QuizRepository
	CourseRepo  *repository.CourseRepository
	AttemptRepo *repository.AttemptRepository
	DB          *gorm.DB
}

func NewQuizService(
	quizRepo *repository.QuizRepository,
	courseRepo *repository.CourseRepository,
	attemptRepo *repository.AttemptRepository,
	db *gorm.DB,
) *QuizService {
	return &QuizService{
		QuizRepo:    quizRepo,
		CourseRepo:  courseRepo,
		AttemptRepo: attemptRepo,
		DB:          db,
	}
}

// CompletionQuizTitle 由课程标题推导结课测验标题，查找或创建依赖它保持幂等
func CompletionQuizTitle(courseTitle string) string {
	return "Quiz Final - " + courseTitle
}

// completionQuestionCount 结课测验固定题量
const completionQuestionCount = 5

// buildCompletionQuestions 按固定模板生成题目，选项文案从课程字段插值，
// 每个槽位的正确选项字母固定：A B C B A
func buildCompletionQuestions(course *model.Course) []model.QuizQuestion {
	return []model.QuizQuestion{
		{
			Prompt:        fmt.Sprintf("What level is the course %q designed for?", course.Title),
			OptionA:       course.Level,
			OptionB:       "Complete beginners only",
			OptionC:       "University researchers",
			OptionD:       "No particular level",
			CorrectOption: "A",
			Order:         1,
		},
		{
			Prompt:        fmt.Sprintf("How many hours of guided study does %q include?", course.Title),
			OptionA:       fmt.Sprintf("%d hours", course.DurationHours*2+5),
			OptionB:       fmt.Sprintf("%d hours", course.DurationHours),
			OptionC:       fmt.Sprintf("%d hours", course.DurationHours+10),
			OptionD:       "It is self-paced with no estimate",
			CorrectOption: "B",
			Order:         2,
		},
		{
			Prompt:        fmt.Sprintf("Which practice consolidates the material of %q best?", course.Title),
			OptionA:       "Skipping the exercises",
			OptionB:       "Watching the lectures once",
			OptionC:       "Completing every exercise and reviewing mistakes",
			OptionD:       "Reading the summary only",
			CorrectOption: "C",
			Order:         3,
		},
		{
			Prompt:        fmt.Sprintf("After finishing %q, what is the recommended next step?", course.Title),
			OptionA:       "Put the material aside",
			OptionB:       fmt.Sprintf("Apply the %s-level concepts in a small project", course.Level),
			OptionC:       "Restart the course from scratch",
			OptionD:       "Wait for the certificate",
			CorrectOption: "B",
			Order:         4,
		},
		{
			Prompt:        fmt.Sprintf("Which statement about %q is true?", course.Title),
			OptionA:       fmt.Sprintf("It is a %d-hour course aimed at %s learners", course.DurationHours, course.Level),
			OptionB:       "It has no stated duration",
			OptionC:       "It is only available offline",
			OptionD:       "It requires no prior enrollment",
			CorrectOption: "A",
			Order:         5,
		},
	}
}

// EnsureCompletionQuiz 查找或创建课程的结课测验。并发调用依赖 (course_id, title)
// 唯一索引收敛到同一行，而不是先查后写
func (s *QuizService) EnsureCompletionQuiz(courseID uint) (*model.Quiz, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	title := CompletionQuizTitle(course.Title)
	quiz, err := s.QuizRepo.FindByCourseAndTitle(courseID, title)
	if err == nil {
		return quiz, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	quiz = &model.Quiz{
		CourseID:  courseID,
		Title:     title,
		Questions: buildCompletionQuestions(course),
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 并发创建被唯一索引挡下，读回先写入者的行
			return s.QuizRepo.FindByCourseAndTitle(courseID, title)
		}
		return nil, err
	}

	logger.Log.Info("completion quiz created",
		zap.Uint("courseId", courseID),
		zap.Uint("quizId", quiz.ID))
	return quiz, nil
}

type SubmitAttemptRequest struct {
	Answers          map[uint]string `json:"answers" binding:"required"`
	TimeSpentSeconds int             `json:"timeSpentSeconds"`
}

type SubmitAttemptResponse struct {
	Success        bool        `json:"success"`
	AttemptID      uint        `json:"attemptId"`
	Score          int         `json:"score"`
	CorrectAnswers int         `json:"correctAnswers"`
	TotalQuestions int         `json:"totalQuestions"`
	Level          ResultLevel `json:"level"`
	Message        string      `json:"message"`
}

// percentScore 正确数换算为 0-100 整数百分比，零题测验得 0
func percentScore(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// scoreAnswers 对照正确选项判分。未作答按错误计；引用不存在的题目或非法选项
// 是校验错误，由调用方透出 400
func scoreAnswers(questions []model.QuizQuestion, answers map[uint]string) (int, []model.QuestionOutcome, error) {
	known := make(map[uint]bool, len(questions))
	for _, q := range questions {
		known[q.ID] = true
	}
	for qid, option := range answers {
		if !known[qid] {
			return 0, nil, fmt.Errorf("%w: %d", util.ErrUnknownQuestion, qid)
		}
		normalized := strings.ToUpper(strings.TrimSpace(option))
		if normalized != "A" && normalized != "B" && normalized != "C" && normalized != "D" {
			return 0, nil, fmt.Errorf("%w: question %d", util.ErrInvalidOption, qid)
		}
	}

	correct := 0
	outcomes := make([]model.QuestionOutcome, 0, len(questions))
	for _, q := range questions {
		answer := strings.ToUpper(strings.TrimSpace(answers[q.ID]))
		wasCorrect := answer == q.CorrectOption
		if wasCorrect {
			correct++
		}
		outcomes = append(outcomes, model.QuestionOutcome{
			QuestionID: q.ID,
			WasCorrect: wasCorrect,
		})
	}
	return correct, outcomes, nil
}

// SubmitAttempt 判分并在同一事务内写入 Attempt、Result 和 StatisticsRecord，
// 不存在只写了一半的状态。每个 (user, quiz) 至多一次作答
func (s *QuizService) SubmitAttempt(quizID, userID uint, req SubmitAttemptRequest) (*SubmitAttemptResponse, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	exists, err := s.AttemptRepo.ExistsByQuizAndUser(quizID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrAlreadyAttempted
	}

	correct, outcomes, err := scoreAnswers(quiz.Questions, req.Answers)
	if err != nil {
		return nil, err
	}

	total := len(quiz.Questions)
	score := percentScore(correct, total)

	now := time.Now()
	avgTime := 0.0
	if req.TimeSpentSeconds > 0 && total > 0 {
		avgTime = float64(req.TimeSpentSeconds) / float64(total)
	}

	attempt := &model.QuizAttempt{
		QuizID:      quizID,
		UserID:      userID,
		Score:       score,
		Status:      model.AttemptCompleted,
		StartedAt:   now,
		CompletedAt: &now,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}

		result := &model.QuizResult{
			AttemptID:      attempt.ID,
			QuizID:         quizID,
			UserID:         userID,
			Score:          score,
			TotalQuestions: total,
			CorrectAnswers: correct,
			CompletedAt:    now,
		}
		if err := tx.Create(result).Error; err != nil {
			return err
		}

		record := &model.StatisticsRecord{
			QuizID:             quizID,
			StudentID:          userID,
			Score:              score,
			TotalQuestions:     total,
			CorrectAnswers:     correct,
			CompletedAt:        now,
			AvgTimePerQuestion: avgTime,
			Difficulty:         bucketLabel(score),
			Outcomes:           outcomes,
		}
		return tx.Create(record).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 两个并发提交只有一个能通过 (quiz_id, user_id) 唯一索引
			return nil, util.ErrAlreadyAttempted
		}
		return nil, err
	}

	level, message := ClassifyLevel(float64(score))
	logger.Log.Info("quiz attempt submitted",
		zap.Uint("quizId", quizID),
		zap.Uint("userId", userID),
		zap.Int("score", score))

	return &SubmitAttemptResponse{
		Success:        true,
		AttemptID:      attempt.ID,
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: total,
		Level:          level,
		Message:        message,
	}, nil
}
