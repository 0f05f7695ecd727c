package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	trivia *services.TriviaService
}

func NewQuestionHandler(trivia *services.TriviaService) *QuestionHandler {
	return &QuestionHandler{trivia: trivia}
}

// No required tags: absent fields insert as zero values, and an unknown
// category id passes through unchecked.
type CreateQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type SearchRequest struct {
	SearchTerm string `json:"searchTerm" binding:"required" example:"title"`
}

// ListQuestions godoc
// @Summary      List questions, paginated
// @Description  Ten questions per page, ordered by id; 404 when the page is empty
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number, 1-indexed" default(1)
// @Success      200 {object} QuestionPageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	categories, err := h.trivia.CategoriesByID()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	questions, err := h.trivia.ListQuestions()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	// An empty window 404s even on page 1 of an empty table.
	current := pageWindow(questions, page)
	if len(current) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, QuestionPageResponse{
		Success:         true,
		Questions:       current,
		TotalQuestions:  len(questions),
		CurrentCategory: nil,
		Categories:      categories,
	})
}

// CreateQuestion godoc
// @Summary      Add a question
// @Description  Inserts a question; the created record is not echoed back
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      200 {object} SuccessResponse
// @Failure      400 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	question := models.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}
	if err := h.trivia.CreateQuestion(&question); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Description  Deleting an id that does not exist is unprocessable, not a 404
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} SuccessResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	if err := h.trivia.DeleteQuestion(uint(id)); err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			abortWithError(c, http.StatusUnprocessableEntity)
			return
		}
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// SearchQuestions godoc
// @Summary      Search questions
// @Description  Case-insensitive substring match over question text, unpaginated
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body SearchRequest true "Search term"
// @Success      200 {object} QuestionsResponse
// @Failure      400 {object} ErrorResponse
// @Router       /search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	matched, err := h.trivia.SearchQuestions(req.SearchTerm)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, QuestionsResponse{
		Success:         true,
		Questions:       matched,
		TotalQuestions:  len(matched),
		CurrentCategory: nil,
	})
}
