package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bookcatalog/internal/entities"
)

// BooksController exposes the catalog CRUD endpoints.
type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

// CreateBookRequest is the payload for adding a book. Binding rejects
// missing fields and ISBNs that are not exactly 13 characters, so malformed
// payloads never reach the store.
type CreateBookRequest struct {
	Title       string `json:"title" binding:"required"`
	ISBN        string `json:"isbn" binding:"required,len=13"`
	Author      string `json:"author" binding:"required"`
	Genre       string `json:"genre" binding:"required"`
	Description string `json:"description" binding:"required"`
	TotalPages  int    `json:"total_pages" binding:"required"`
	Publisher   string `json:"publisher" binding:"required"`
	PublishYear int    `json:"publish_year" binding:"required"`
}

// UpdateBookRequest is the partial payload for editing a book. Fields are
// pointers so an omitted field stays nil and keeps its prior value; an
// explicit null is treated the same as omission.
type UpdateBookRequest struct {
	Title       *string `json:"title"`
	ISBN        *string `json:"isbn" binding:"omitempty,len=13"`
	Author      *string `json:"author"`
	Genre       *string `json:"genre"`
	Description *string `json:"description"`
	TotalPages  *int    `json:"total_pages"`
	Publisher   *string `json:"publisher"`
	PublishYear *int    `json:"publish_year"`
}

// updates maps the supplied fields to their database columns.
func (r UpdateBookRequest) updates() map[string]any {
	u := make(map[string]any)
	if r.Title != nil {
		u["title"] = *r.Title
	}
	if r.ISBN != nil {
		u["isbn"] = *r.ISBN
	}
	if r.Author != nil {
		u["author"] = *r.Author
	}
	if r.Genre != nil {
		u["genre"] = *r.Genre
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	if r.TotalPages != nil {
		u["total_pages"] = *r.TotalPages
	}
	if r.Publisher != nil {
		u["publisher"] = *r.Publisher
	}
	if r.PublishYear != nil {
		u["publish_year"] = *r.PublishYear
	}
	return u
}

// CreateBook handles POST /books/add.
func (controller *BooksController) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, Message{Detail: err.Error()})
		return
	}

	taken, err := controller.store.IsISBNTaken(req.ISBN, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Message{Detail: err.Error()})
		return
	}
	if taken {
		c.JSON(http.StatusBadRequest, Message{Detail: "Book with this ISBN already exists"})
		return
	}

	book := &entities.Book{
		Title:       req.Title,
		ISBN:        req.ISBN,
		Author:      req.Author,
		Genre:       req.Genre,
		Description: req.Description,
		TotalPages:  req.TotalPages,
		Publisher:   req.Publisher,
		PublishYear: req.PublishYear,
	}

	if err := controller.store.CreateBook(book); err != nil {
		// The unique index catches inserts that raced past the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, Message{Detail: "Book with this ISBN already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, Message{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, Message{Detail: "Book added successfully"})
}

// GetAllBooks handles GET /books/get.
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	books, err := controller.store.GetAllBooks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, Message{Detail: err.Error()})
		return
	}
	c.JSON(http.StatusOK, books)
}

// UpdateBook handles PATCH /books/edit/:id. Only fields present in the
// payload are applied; everything else keeps its prior value.
func (controller *BooksController) UpdateBook(c *gin.Context) {
	id, ok := bookIDParam(c)
	if !ok {
		return
	}

	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, Message{Detail: err.Error()})
		return
	}

	if req.ISBN != nil {
		taken, err := controller.store.IsISBNTaken(*req.ISBN, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, Message{Detail: err.Error()})
			return
		}
		if taken {
			c.JSON(http.StatusBadRequest, Message{Detail: "Book with this ISBN already exists"})
			return
		}
	}

	book, err := controller.store.GetBookByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, Message{Detail: "Book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, Message{Detail: err.Error()})
		return
	}

	if err := controller.store.UpdateBook(book, req.updates()); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, Message{Detail: "Book with this ISBN already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, Message{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, Message{Detail: "Book updated successfully"})
}

// DeleteBook handles DELETE /books/delete/:id.
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := bookIDParam(c)
	if !ok {
		return
	}

	if _, err := controller.store.GetBookByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, Message{Detail: "Book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, Message{Detail: err.Error()})
		return
	}

	if err := controller.store.DeleteBook(id); err != nil {
		c.JSON(http.StatusInternalServerError, Message{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, Message{Detail: "Book deleted successfully"})
}
