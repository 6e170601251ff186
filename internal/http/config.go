package http

import "bookcatalog/internal/database"

// RouterConfig contains all dependencies and configuration needed to create
// the HTTP router.
type RouterConfig struct {
	// Core dependencies
	BookStore BookStore
	Database  *database.Database

	// Origins allowed to call the API from a browser
	AllowedOrigins []string
}
