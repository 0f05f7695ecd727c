package handlers

import (
	"net/http"

	"trivia-api/internal/models"

	"github.com/gin-gonic/gin"
)

const questionsPerPage = 10

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found"`
}

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

type CategoriesResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

// QuestionPageResponse is the paginated all-questions listing; it carries the
// category map alongside the page.
type QuestionPageResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory *uint             `json:"current_category"`
	Categories      map[uint]string   `json:"categories"`
}

// QuestionsResponse is shared by search and the category-scoped listing.
type QuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory *uint             `json:"current_category"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

func abortWithError(c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, ErrorResponse{
		Success: false,
		Error:   code,
		Message: errorMessages[code],
	})
}

// pageWindow slices a 1-indexed fixed-size page out of questions. Out-of-range
// pages yield an empty, non-nil slice so callers serialize [] rather than null.
func pageWindow(questions []models.Question, page int) []models.Question {
	start := (page - 1) * questionsPerPage
	if start < 0 || start >= len(questions) {
		return []models.Question{}
	}
	end := start + questionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}
