package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("quiz_questions.`order` asc")
	}).First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) FindByCourseAndTitle(courseID uint, title string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("quiz_questions.`order` asc")
	}).Where("course_id = ? AND title = ?", courseID, title).First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// FindTitlesByIDs 批量查询测验标题，供导出拼装使用
func (r *QuizRepository) FindTitlesByIDs(ids []uint) (map[uint]string, error) {
	titles := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return titles, nil
	}

	var quizzes []model.Quiz
	if err := r.DB.Select("id", "title").Where("id IN ?", ids).Find(&quizzes).Error; err != nil {
		return nil, err
	}
	for _, q := range quizzes {
		titles[q.ID] = q.Title
	}
	return titles, nil
}

// FindPromptsByIDs 批量查询题干，供题目分析输出标签使用
func (r *QuizRepository) FindPromptsByIDs(ids []uint) (map[uint]string, error) {
	prompts := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return prompts, nil
	}

	var questions []model.QuizQuestion
	if err := r.DB.Select("id", "prompt").Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	for _, q := range questions {
		prompts[q.ID] = q.Prompt
	}
	return prompts, nil
}
