package handlers

import (
	"net/http"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	trivia *services.TriviaService
}

func NewQuizHandler(trivia *services.TriviaService) *QuizHandler {
	return &QuizHandler{trivia: trivia}
}

type QuizCategory struct {
	ID uint `json:"id"`
}

// QuizCategory.ID of zero draws from all categories.
type QuizRequest struct {
	PreviousQuestions []uint       `json:"previous_questions"`
	QuizCategory      QuizCategory `json:"quiz_category"`
}

type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *models.Question `json:"question,omitempty"`
}

// NextQuestion godoc
// @Summary      Draw the next quiz question
// @Description  Returns the next unseen question; success without a question field means the round is over
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Previous question ids and category"
// @Success      200 {object} QuizResponse
// @Failure      400 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	question, err := h.trivia.NextQuizQuestion(req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, QuizResponse{Success: true, Question: question})
}
