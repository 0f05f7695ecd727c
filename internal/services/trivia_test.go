package services

import (
	"path/filepath"
	"testing"

	"trivia-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *TriviaService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "trivia.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Question{}))

	return NewTriviaService(db)
}

// seedTrivia loads three categories and five questions; ids are assigned in
// creation order, so questions get ids 1 through 5.
func seedTrivia(t *testing.T, s *TriviaService) {
	t.Helper()

	categories := []models.Category{
		{Type: "Science"},
		{Type: "Art"},
		{Type: "History"},
	}
	require.NoError(t, s.db.Create(&categories).Error)

	questions := []models.Question{
		{Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 3, Difficulty: 1},
		{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 3, Difficulty: 2},
		{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
		{Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: 1, Difficulty: 4},
	}
	require.NoError(t, s.db.Create(&questions).Error)
}

func TestCategoriesByID(t *testing.T) {
	s := newTestService(t)
	seedTrivia(t, s)

	byID, err := s.CategoriesByID()
	require.NoError(t, err)
	assert.Equal(t, map[uint]string{1: "Science", 2: "Art", 3: "History"}, byID)
}

func TestCategoriesByIDEmpty(t *testing.T) {
	s := newTestService(t)

	byID, err := s.CategoriesByID()
	require.NoError(t, err)
	assert.NotNil(t, byID)
	assert.Empty(t, byID)
}

func TestGetCategory(t *testing.T) {
	s := newTestService(t)
	seedTrivia(t, s)

	cat, err := s.GetCategory(2)
	require.NoError(t, err)
	assert.Equal(t, "Art", cat.Type)

	_, err = s.GetCategory(999)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestListQuestionsOrderedByID(t *testing.T) {
	s := newTestService(t)
	seedTrivia(t, s)

	questions, err := s.ListQuestions()
	require.NoError(t, err)
	require.Len(t, questions, 5)
	for i, q := range questions {
		assert.Equal(t, uint(i+1), q.ID)
	}
}

func TestQuestionsByCategory(t *testing.T) {
	s := newTestService(t)
	seedTrivia(t, s)

	questions, err := s.QuestionsByCategory(1)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, uint(3), questions[0].ID)
	assert.Equal(t, uint(5), questions[1].ID)
}

func TestSearchQuestionsCaseInsensitive(t *testing.T) {
	s := newTestService(t)
	seedTrivia(t, s)

	// "TITLE" hits "entitled" in question 2 regardless of case.
	matched, err := s.SearchQuestions("TITLE")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, uint(2), matched[0].ID)
}

func TestSearchQuestionsNoMatch(t *testing.T) {
	s := newTestService(t)
	seedTrivia(t, s)

	matched, err := s.SearchQuestions("xyzzy")
	require.NoError(t, err)
	assert.NotNil(t, matched)
	assert.Empty(t, matched)
}

func TestCreateQuestionAcceptsOrphanCategory(t *testing.T) {
	s := newTestService(t)
	seedTrivia(t, s)

	q := models.Question{Question: "Orphaned?", Answer: "Yes", Category: 42, Difficulty: 5}
	require.NoError(t, s.CreateQuestion(&q))
	assert.NotZero(t, q.ID)

	questions, err := s.ListQuestions()
	require.NoError(t, err)
	assert.Len(t, questions, 6)
}

func TestDeleteQuestion(t *testing.T) {
	s := newTestService(t)
	seedTrivia(t, s)

	require.NoError(t, s.DeleteQuestion(1))

	questions, err := s.ListQuestions()
	require.NoError(t, err)
	assert.Len(t, questions, 4)
	for _, q := range questions {
		assert.NotEqual(t, uint(1), q.ID)
	}
}

func TestDeleteQuestionMissing(t *testing.T) {
	s := newTestService(t)
	seedTrivia(t, s)

	assert.ErrorIs(t, s.DeleteQuestion(999), ErrQuestionNotFound)
}

func TestNextQuizQuestion(t *testing.T) {
	s := newTestService(t)
	seedTrivia(t, s)

	// No previous questions: the lowest id wins.
	q, err := s.NextQuizQuestion(0, nil)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, uint(1), q.ID)

	// Previous ids are skipped.
	q, err = s.NextQuizQuestion(0, []uint{1, 2})
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, uint(3), q.ID)

	// Nonzero category scopes the pool.
	q, err = s.NextQuizQuestion(1, nil)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, uint(3), q.ID)

	q, err = s.NextQuizQuestion(1, []uint{3})
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, uint(5), q.ID)
}

func TestNextQuizQuestionExhausted(t *testing.T) {
	s := newTestService(t)
	seedTrivia(t, s)

	q, err := s.NextQuizQuestion(1, []uint{3, 5})
	require.NoError(t, err)
	assert.Nil(t, q)

	q, err = s.NextQuizQuestion(0, []uint{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Nil(t, q)
}
