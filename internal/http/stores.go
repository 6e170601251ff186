package http

import "bookcatalog/internal/entities"

// BookStore is the database surface the book controller depends on.
// Implemented by books.Repository; controllers only see this interface so
// tests can substitute lightweight fakes.
type BookStore interface {
	GetBookByID(id uint) (*entities.Book, error)
	GetAllBooks() ([]entities.Book, error)
	IsISBNTaken(isbn string, excludeID uint) (bool, error)
	CreateBook(book *entities.Book) error
	UpdateBook(book *entities.Book, updates map[string]any) error
	DeleteBook(id uint) error
}
