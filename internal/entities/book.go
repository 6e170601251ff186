package entities

import "time"

// Book is the single persisted entity of the catalog. The ISBN carries a
// unique index; the application-level pre-check in the handlers is only an
// optimization on top of it.
type Book struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:512" json:"title"`
	ISBN        string    `gorm:"column:isbn;uniqueIndex;size:13" json:"isbn"`
	Author      string    `gorm:"size:256" json:"author"`
	Genre       string    `gorm:"size:100" json:"genre"`
	Description string    `gorm:"type:text" json:"description"`
	TotalPages  int       `json:"total_pages"`
	Publisher   string    `gorm:"size:256" json:"publisher"`
	PublishYear int       `json:"publish_year"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Book) TableName() string {
	return "books"
}
