// Package books provides database operations for book catalog management.
package books

import (
	"gorm.io/gorm"

	"bookcatalog/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetBookByID retrieves a book by its primary key. Returns
// gorm.ErrRecordNotFound when no such book exists.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAllBooks retrieves every book in the catalog. The slice is never nil
// so an empty catalog serializes as an empty JSON array.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	err := r.db.Find(&books).Error
	return books, err
}

// IsISBNTaken reports whether any book other than excludeID already holds
// the given ISBN. Pass excludeID 0 to match against the whole catalog.
func (r *Repository) IsISBNTaken(isbn string, excludeID uint) (bool, error) {
	query := r.db.Model(&entities.Book{}).Where("isbn = ?", isbn)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateBook inserts a new book. created_at is stamped by the connection's
// NowFunc on insert.
func (r *Repository) CreateBook(book *entities.Book) error {
	return r.db.Create(book).Error
}

// UpdateBook applies the given column updates to an existing book. Columns
// absent from the map keep their prior values; created_at is never part of
// the map.
func (r *Repository) UpdateBook(book *entities.Book, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(book).Updates(updates).Error
}

// DeleteBook permanently removes a book.
func (r *Repository) DeleteBook(id uint) error {
	return r.db.Delete(&entities.Book{}, id).Error
}
