package app

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/mrvrecords/internal/server"
)

// Serve builds the handler for db and blocks until the server shuts down.
func (a *Application) Serve(db *gorm.DB) error {
	return server.Start(a.Handler(db))
}
