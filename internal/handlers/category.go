package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	trivia *services.TriviaService
}

func NewCategoryHandler(trivia *services.TriviaService) *CategoryHandler {
	return &CategoryHandler{trivia: trivia}
}

// ListCategories godoc
// @Summary      List all categories
// @Description  Returns every category as an id-to-type map
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.trivia.CategoriesByID()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Success: true, Categories: categories})
}

// ListCategoryQuestions godoc
// @Summary      List questions in a category
// @Description  Returns the first ten questions of the category
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} QuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	if _, err := h.trivia.GetCategory(uint(id)); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			abortWithError(c, http.StatusNotFound)
			return
		}
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	questions, err := h.trivia.QuestionsByCategory(uint(id))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	// Legacy contract: this route never reads a page parameter and only ever
	// serves the first window, and total_questions counts that window, not
	// all matches. An empty window is a normal 200 here, unlike /questions.
	current := pageWindow(questions, 1)
	categoryID := uint(id)
	c.JSON(http.StatusOK, QuestionsResponse{
		Success:         true,
		Questions:       current,
		TotalQuestions:  len(current),
		CurrentCategory: &categoryID,
	})
}
