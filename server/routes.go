// Package server exposes the GBFS / A* comparison over a JSON HTTP API.
//
// Routes:
//
//	POST /compare          body {"grid": ["R..X.", ".X...", "...XC"]}
//	GET  /compare/default  the reference city map
//	GET  /healthz          liveness probe
//
// Both compare routes accept ?format=geojson.
package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Route defines the parameters for an api endpoint.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// Routes are a collection of defined api endpoints.
type Routes []Route

// Router defines the required methods for retrieving api routes.
type Router interface {
	Routes() Routes
}

// NewRouter registers every route of every router on a gorilla/mux router.
// Requests are logged through logger; a nil logger disables request logging.
func NewRouter(logger *log.Logger, routers ...Router) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	for _, api := range routers {
		for _, route := range api.Routes() {
			var handler http.Handler = route.HandlerFunc
			if logger != nil {
				handler = Logger(logger, handler, route.Name)
			}
			router.
				Methods(route.Method).
				Path(route.Pattern).
				Name(route.Name).
				Handler(handler)
		}
	}
	return router
}

// Logger wraps inner and logs method, URI, route name and duration.
func Logger(logger *log.Logger, inner http.Handler, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		inner.ServeHTTP(w, r)
		logger.Printf("%s %s %s %s", r.Method, r.RequestURI, name, time.Since(start))
	})
}
