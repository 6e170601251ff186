package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
		}))
	}

	health := NewHealthController(cfg.Database)
	router.GET("/health-check", health.Status)

	booksController := NewBooksController(cfg.BookStore)
	books := router.Group("/books")
	{
		books.POST("/add", booksController.CreateBook)
		books.GET("/get", booksController.GetAllBooks)
		books.PATCH("/edit/:id", booksController.UpdateBook)
		books.DELETE("/delete/:id", booksController.DeleteBook)
	}

	return router
}
