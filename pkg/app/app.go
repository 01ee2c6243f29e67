// Package app assembles the HTTP application from route and table
// registrations.
//
//	application := app.New().
//	    Routes(routes.RegisterAPI).
//	    Bootstrap(models.Bootstrap)
//
//	db, _ := database.Open("sqlite", "local.db")
//	_ = application.BootstrapTables(db)
//	http.ListenAndServe(":8000", application.Handler(db))
package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/mrvrecords/pkg/router"
)

// RoutesFunc registers routes backed by db.
type RoutesFunc func(r *router.Router, db *gorm.DB)

// BootstrapFunc creates whatever tables it owns. It must not drop data.
type BootstrapFunc func(db *gorm.DB) error

// Application is the central configuration object. Build one with New(),
// attach routes and table bootstraps, then hand it a database.
type Application struct {
	routesFns    []RoutesFunc
	bootstrapFns []BootstrapFunc
}

func New() *Application {
	return &Application{}
}

// Routes adds a route-registration callback. Callbacks run in order each
// time a handler is built.
func (a *Application) Routes(fn RoutesFunc) *Application {
	a.routesFns = append(a.routesFns, fn)
	return a
}

// Bootstrap adds a table-creation callback run by BootstrapTables.
func (a *Application) Bootstrap(fn BootstrapFunc) *Application {
	a.bootstrapFns = append(a.bootstrapFns, fn)
	return a
}

// BootstrapTables runs every bootstrap callback against db.
func (a *Application) BootstrapTables(db *gorm.DB) error {
	for _, fn := range a.bootstrapFns {
		if err := fn(db); err != nil {
			return fmt.Errorf("app: %w", err)
		}
	}
	return nil
}

// RouteList returns every API route without touching a database.
func (a *Application) RouteList() []router.RouteInfo {
	r := router.New()
	for _, fn := range a.routesFns {
		fn(r, nil)
	}
	return r.Routes()
}
