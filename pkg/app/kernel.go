package app

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/mrvrecords/config"
	"github.com/shashiranjanraj/mrvrecords/pkg/metrics"
	"github.com/shashiranjanraj/mrvrecords/pkg/middleware"
	"github.com/shashiranjanraj/mrvrecords/pkg/reqid"
	"github.com/shashiranjanraj/mrvrecords/pkg/router"
)

// Handler builds the HTTP handler with the global middleware stack and every
// registered route bound to db.
func (a *Application) Handler(db *gorm.DB) http.Handler {
	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics: total latency, labelled by route pattern
	//  2. Request ID: before anything logs
	//  3. Logger: request_id-tagged logger in the context
	//  4. CORS: fixed front-end origins with credentials, also on 500s
	//  5. Recovery: panics become a logged 500
	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions(config.CORSAllowedOrigins())))
	r.Use(middleware.Recovery)

	r.HandleFunc("/metrics", metrics.Handler())

	for _, fn := range a.routesFns {
		fn(r, db)
	}

	return r.Handler()
}
