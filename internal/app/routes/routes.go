package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/studentroster/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Student record routes
	students := v1.Group("/students")
	{
		students.GET("", studentController.SearchStudents)
		students.POST("", studentController.CreateStudent)
		students.PATCH("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
