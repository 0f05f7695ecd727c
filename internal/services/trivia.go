package services

import (
	"errors"
	"strings"

	"trivia-api/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrQuestionNotFound = errors.New("question not found")
)

// TriviaService owns every store operation. Handlers never touch gorm
// directly, so tests can drive them against any database the service accepts.
type TriviaService struct {
	db *gorm.DB
}

func NewTriviaService(db *gorm.DB) *TriviaService {
	return &TriviaService{db: db}
}

// CategoriesByID returns all categories keyed by id, the shape every list
// response embeds. The map is empty, not nil, when no categories exist.
func (s *TriviaService) CategoriesByID() (map[uint]string, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]string, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat.Type
	}
	return byID, nil
}

func (s *TriviaService) GetCategory(id uint) (*models.Category, error) {
	var cat models.Category
	if err := s.db.First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &cat, nil
}

func (s *TriviaService) ListQuestions() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *TriviaService) QuestionsByCategory(categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("category = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// SearchQuestions matches term as a case-insensitive substring of the
// question text. Matching happens here rather than in SQL so behavior does
// not depend on the store's collation.
func (s *TriviaService) SearchQuestions(term string) ([]models.Question, error) {
	questions, err := s.ListQuestions()
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(term)
	matched := make([]models.Question, 0)
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q.Question), lowered) {
			matched = append(matched, q)
		}
	}
	return matched, nil
}

func (s *TriviaService) CreateQuestion(question *models.Question) error {
	return s.db.Create(question).Error
}

func (s *TriviaService) DeleteQuestion(id uint) error {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}
	return s.db.Delete(&question).Error
}

// NextQuizQuestion returns the lowest-id question outside previous, scoped to
// a category when categoryID is nonzero. The draw is deliberately
// deterministic: clients track previous ids, so a stable ordering still walks
// the full pool over a round. A nil question with nil error means the pool is
// exhausted.
func (s *TriviaService) NextQuizQuestion(categoryID uint, previous []uint) (*models.Question, error) {
	query := s.db.Order("id ASC")
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}
	if len(previous) > 0 {
		query = query.Where("id NOT IN ?", previous)
	}

	var question models.Question
	if err := query.First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}
