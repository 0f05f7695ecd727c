package handlers

import (
	"trivia-api/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the handler layer onto a fresh engine. Tests build isolated
// instances against their own databases instead of sharing process state.
func NewRouter(trivia *services.TriviaService) *gin.Engine {
	categoryHandler := NewCategoryHandler(trivia)
	questionHandler := NewQuestionHandler(trivia)
	quizHandler := NewQuizHandler(trivia)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "PATCH", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.Use(legacyCORSHeaders())

	r.GET("/categories", categoryHandler.ListCategories)
	r.GET("/categories/:id/questions", categoryHandler.ListCategoryQuestions)
	r.GET("/questions", questionHandler.ListQuestions)
	r.POST("/questions", questionHandler.CreateQuestion)
	r.DELETE("/questions/:id", questionHandler.DeleteQuestion)
	r.POST("/search", questionHandler.SearchQuestions)
	r.POST("/quizzes", quizHandler.NextQuestion)

	return r
}

// legacyCORSHeaders repeats the allow-headers/allow-methods values on every
// response, not just preflight. Existing browser clients rely on seeing them
// on plain responses.
func legacyCORSHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, true")
		c.Header("Access-Control-Allow-Methods", "GET, PATCH, POST, DELETE, OPTIONS")
		c.Next()
	}
}
